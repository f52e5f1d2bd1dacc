package model

import "time"

// ResidencyAny marks a program with no residency restriction.
const ResidencyAny = "Any"

// Program is one row of the aid program catalog. Programs are immutable
// after startup: they are seeded from CSV and loaded once into the catalog.
type Program struct {
	ID                 int       `json:"id"`
	Name               string    `json:"program_name"`
	ResidencyRequired  string    `json:"residency_required"`
	MinGPA             float64   `json:"min_gpa"`
	MaxIncome          float64   `json:"max_income"`
	EnrollmentRequired bool      `json:"enrollment_required"`
	AwardAmount        string    `json:"award_amount"`
	Deadline           string    `json:"deadline"`
	Description        string    `json:"description"`
	RequiredDocuments  []string  `json:"required_documents"`
	Position           int       `json:"-"`
	CreatedAt          time.Time `json:"-"`
}

// ProgramSummary is the public catalog listing shape.
type ProgramSummary struct {
	Name        string `json:"program_name"`
	AwardAmount string `json:"award_amount"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
}

// Summary strips eligibility criteria for public display.
func (p *Program) Summary() ProgramSummary {
	return ProgramSummary{
		Name:        p.Name,
		AwardAmount: p.AwardAmount,
		Deadline:    p.Deadline,
		Description: p.Description,
	}
}
