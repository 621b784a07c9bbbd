package model

// ClassContext identifies a specific course section. Records relate to each
// other by equality on this tuple; there are no foreign keys between the
// record kinds and orphaned references are tolerated by design.
type ClassContext struct {
	Subject    string `json:"subject"`
	Division   string `json:"division"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

// ClassStatsRequest is the payload for computing class statistics.
type ClassStatsRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Division   string `json:"division" binding:"required"`
	Department string `json:"department" binding:"required"`
	Year       string `json:"year" binding:"required"`
}

// Context converts the request into a ClassContext.
func (r ClassStatsRequest) Context() ClassContext {
	return ClassContext{
		Subject:    r.Subject,
		Division:   r.Division,
		Department: r.Department,
		Year:       r.Year,
	}
}

// ClassStats is the statistics summary for one class context.
type ClassStats struct {
	AvgMarks            int  `json:"avgMarks"`
	TotalStudents       int  `json:"totalStudents"`
	SubmissionsReceived int  `json:"submissionsReceived"`
	PendingQueries      int  `json:"pendingQueries"`
	FAModeSet           bool `json:"faModeSet"`
}

// FilterOptions holds the distinct dropdown values for the frontend,
// gathered from stored records, plus the fixed FA mode list.
type FilterOptions struct {
	Subjects    []string `json:"subjects"`
	Departments []string `json:"departments"`
	Years       []string `json:"years"`
	Divisions   []string `json:"divisions"`
	FAModes     []FAMode `json:"faModes"`
}
