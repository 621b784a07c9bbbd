package model

import "time"

// Student represents an enrolled student. Records are created by the
// enrollment process (seed tooling here), never through this API.
type Student struct {
	ID         int       `json:"id"`
	StudentID  string    `json:"studentId"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Division   string    `json:"division"`
	CreatedAt  time.Time `json:"created_at"`
}
