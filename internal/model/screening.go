package model

import "time"

// DocumentStatus is the submission state of a single required document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "Pending"
	DocumentReceived DocumentStatus = "Received"
)

// DocumentEntry tracks one required document within a screening checklist.
type DocumentEntry struct {
	Status     DocumentStatus `json:"status"`
	UploadedAt *time.Time     `json:"uploaded_at"`
}

// Checklist maps program name → document name → entry.
type Checklist map[string]map[string]DocumentEntry

// ApplicantProfile is the questionnaire input for one screening.
type ApplicantProfile struct {
	Residency        string  `json:"residency"`
	GPA              float64 `json:"gpa"`
	Income           float64 `json:"income"`
	EnrolledFullTime bool    `json:"enrolled_full_time"`
}

// Verdict is the eligibility determination for one applicant-program pair.
// Program award/deadline/description/documents are snapshotted so the report
// stays stable even if the catalog is later reseeded.
type Verdict struct {
	Program           string   `json:"program"`
	Eligible          bool     `json:"eligible"`
	Reasons           []string `json:"reasons"`
	AwardAmount       string   `json:"award_amount"`
	Deadline          string   `json:"deadline"`
	Description       string   `json:"description"`
	RequiredDocuments []string `json:"required_documents"`
}

// Screening is the full state of one applicant screening, stored in Redis
// under a UUID for the lifetime of the session.
type Screening struct {
	ID        string           `json:"id"`
	Profile   ApplicantProfile `json:"profile"`
	Verdicts  []Verdict        `json:"verdicts"`
	Documents Checklist        `json:"documents"`
	CreatedAt time.Time        `json:"created_at"`
}

// EligibleVerdicts returns the verdicts with no failed checks.
func (s *Screening) EligibleVerdicts() []Verdict {
	var out []Verdict
	for _, v := range s.Verdicts {
		if v.Eligible {
			out = append(out, v)
		}
	}
	return out
}

// IneligibleVerdicts returns the verdicts with at least one failed check.
func (s *Screening) IneligibleVerdicts() []Verdict {
	var out []Verdict
	for _, v := range s.Verdicts {
		if !v.Eligible {
			out = append(out, v)
		}
	}
	return out
}

// ScreeningRequest is the questionnaire payload. Absent numeric fields bind
// to zero rather than failing validation. ScreeningID may name an earlier
// screening so its document checklist carries over to the re-screen.
type ScreeningRequest struct {
	ScreeningID      string  `json:"screening_id" binding:"omitempty,uuid"`
	Residency        string  `json:"residency" binding:"omitempty,max=64"`
	GPA              float64 `json:"gpa" binding:"omitempty"`
	Income           float64 `json:"income" binding:"omitempty"`
	EnrolledFullTime bool    `json:"enrolled_full_time" binding:"omitempty"`
}

// Profile converts the request into an ApplicantProfile.
func (r *ScreeningRequest) Profile() ApplicantProfile {
	return ApplicantProfile{
		Residency:        r.Residency,
		GPA:              r.GPA,
		Income:           r.Income,
		EnrolledFullTime: r.EnrolledFullTime,
	}
}

// UploadDocumentRequest marks a checklist document as received.
type UploadDocumentRequest struct {
	Program  string `json:"program" binding:"required,max=128"`
	Document string `json:"document" binding:"required,max=128"`
}

// PromoteScreeningRequest persists a screening as a staff-visible student record.
type PromoteScreeningRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email,max=128"`
}
