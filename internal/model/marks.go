package model

import "time"

// Marks is one student's score for one paper, created exclusively by the
// marks import pipeline. StudentName is a denormalized copy taken from the
// uploaded file and is not validated against the students table. Repeated
// uploads create additional rows; nothing deduplicates them.
type Marks struct {
	ID          int64     `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Subject     string    `json:"subject"`
	Division    string    `json:"division"`
	Department  string    `json:"department"`
	Year        string    `json:"year"`
	Paper       string    `json:"paper"`
	Marks       float64   `json:"marks"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// UploadMarksRequest carries the class context of a marks upload as
// multipart form fields, alongside the file itself.
type UploadMarksRequest struct {
	Subject    string `form:"subject" binding:"required"`
	Division   string `form:"division" binding:"required"`
	Department string `form:"department" binding:"required"`
	Year       string `form:"year" binding:"required"`
	Paper      string `form:"paper" binding:"required"`
}

// Context converts the request into a ClassContext.
func (r UploadMarksRequest) Context() ClassContext {
	return ClassContext{
		Subject:    r.Subject,
		Division:   r.Division,
		Department: r.Department,
		Year:       r.Year,
	}
}

// ImportResult summarizes a successful marks import.
type ImportResult struct {
	Inserted int          `json:"inserted"`
	Context  ClassContext `json:"context"`
}
