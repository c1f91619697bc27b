package models

// Case statuses, mirrored by the case_status enum type in the database.
const (
	CaseStatusOpen             = "Open"
	CaseStatusInProgress       = "In Progress"
	CaseStatusClosed           = "Closed"
	CaseStatusUnderReview      = "Under Review"
	CaseStatusAwaitingJudgment = "Awaiting Judgment"
)

// ValidCaseStatus reports whether s is one of the case_status enum values.
func ValidCaseStatus(s string) bool {
	switch s {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusClosed,
		CaseStatusUnderReview, CaseStatusAwaitingJudgment:
		return true
	}
	return false
}

// Case matches the cases table. Client and lawyer references are nullable
// and set to NULL when the referenced row is deleted.
type Case struct {
	CaseID      int64  `json:"case_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ClientID    *int64 `json:"client_id"`
	LawyerID    *int64 `json:"lawyer_id"`
}
