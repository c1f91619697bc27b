package models

// Lawyer matches the lawyers table.
// Columns: lawyer_id, name, email (NOT NULL UNIQUE), experience_years,
// cases_won, cases_lost, phone, address, date_of_birth (NOT NULL), specialization
type Lawyer struct {
	LawyerID        int64   `json:"lawyer_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ExperienceYears int     `json:"experience_years"`
	CasesWon        int     `json:"cases_won"`
	CasesLost       int     `json:"cases_lost"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	DateOfBirth     string  `json:"date_of_birth"` // YYYY-MM-DD
	Specialization  *string `json:"specialization"`
}
