package model

import "time"

// FAMode is the designated Formative Assessment method for a class context.
type FAMode string

const (
	FAModeOnlineQuiz   FAMode = "Online Quiz"
	FAModeOfflineTest  FAMode = "Offline Test"
	FAModeAssignment   FAMode = "Assignment"
	FAModePresentation FAMode = "Presentation"
	FAModePoster       FAMode = "Poster"
	FAModeOther        FAMode = "Other"
)

// FAModes is the fixed list surfaced by /api/init and accepted by the
// FA mode endpoints.
var FAModes = []FAMode{
	FAModeOnlineQuiz,
	FAModeOfflineTest,
	FAModeAssignment,
	FAModePresentation,
	FAModePoster,
	FAModeOther,
}

// ValidFAMode reports whether m is one of the fixed FA modes.
func ValidFAMode(m FAMode) bool {
	for _, mode := range FAModes {
		if m == mode {
			return true
		}
	}
	return false
}

// FASetting records the assessment mode chosen for a class context.
// At most one row exists per (subject, division, department, year) tuple.
type FASetting struct {
	ID         int64     `json:"id"`
	Subject    string    `json:"subject"`
	Division   string    `json:"division"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Mode       FAMode    `json:"mode"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SetFAModeRequest is the payload for designating an FA mode.
// Mode membership in FAModes is checked in the service, since the values
// contain spaces and do not fit a oneof binding tag.
type SetFAModeRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Division   string `json:"division" binding:"required"`
	Department string `json:"department" binding:"required"`
	Year       string `json:"year" binding:"required"`
	Mode       FAMode `json:"mode" binding:"required"`
}

// GetFAModeQuery carries the class context as query parameters.
type GetFAModeQuery struct {
	Subject    string `form:"subject" binding:"required"`
	Division   string `form:"division" binding:"required"`
	Department string `form:"department" binding:"required"`
	Year       string `form:"year" binding:"required"`
}
