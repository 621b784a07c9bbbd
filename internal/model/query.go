package model

import "time"

// QueryStatus is the lifecycle state of a student query.
type QueryStatus string

const (
	QueryStatusPending  QueryStatus = "pending"
	QueryStatusResolved QueryStatus = "resolved"
)

// Query is a student question addressed to instructors. Queries are created
// by the student-facing system; this service only lists and resolves them.
type Query struct {
	ID          int64       `json:"id"`
	StudentID   string      `json:"studentId"`
	StudentName string      `json:"studentName"`
	Subject     string      `json:"subject"`
	Division    string      `json:"division"`
	Department  string      `json:"department"`
	Year        string      `json:"year"`
	Message     string      `json:"message"`
	Response    *string     `json:"response"`
	Status      QueryStatus `json:"status"`
	CreatedAt   time.Time   `json:"timestamp"`
}

// RespondQueryRequest is the payload for answering a student query.
type RespondQueryRequest struct {
	QueryID  int64  `json:"queryId" binding:"required"`
	Response string `json:"response" binding:"required"`
}
