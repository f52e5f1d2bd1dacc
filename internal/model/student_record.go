package model

import "time"

// VerdictRecord is a Verdict under staff management. Each required document
// lives in exactly one of SubmittedDocuments or MissingDocuments; the staff
// actions move names between the two lists and never leave a document in
// both or neither.
type VerdictRecord struct {
	Verdict
	Verified           bool     `json:"verified"`
	SubmittedDocuments []string `json:"submitted_documents"`
	MissingDocuments   []string `json:"missing_documents"`
}

// MarkSubmitted moves a document into the submitted list. Adding a name
// already present is a no-op.
func (v *VerdictRecord) MarkSubmitted(doc string) {
	v.MissingDocuments = removeName(v.MissingDocuments, doc)
	v.SubmittedDocuments = addName(v.SubmittedDocuments, doc)
}

// MarkMissing moves a document into the missing list. Removing a name that
// was never submitted is a no-op on that list.
func (v *VerdictRecord) MarkMissing(doc string) {
	v.SubmittedDocuments = removeName(v.SubmittedDocuments, doc)
	v.MissingDocuments = addName(v.MissingDocuments, doc)
}

func addName(list []string, name string) []string {
	for _, n := range list {
		if n == name {
			return list
		}
	}
	return append(list, name)
}

func removeName(list []string, name string) []string {
	for i, n := range list {
		if n == name {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// StudentRecord is a persisted case file: an applicant's verdicts and
// document status plus caseworker notes. Created when a screening is
// promoted; mutated by staff actions; never automatically deleted.
type StudentRecord struct {
	StudentID   string          `json:"student_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Verdicts    []VerdictRecord `json:"verdicts"`
	Notes       string          `json:"notes"`
	LastUpdated time.Time       `json:"last_updated"`
}

// FindVerdict returns the verdict record for a program name, or nil.
func (r *StudentRecord) FindVerdict(program string) *VerdictRecord {
	for i := range r.Verdicts {
		if r.Verdicts[i].Program == program {
			return &r.Verdicts[i]
		}
	}
	return nil
}

// EligibleCount returns how many programs the student is eligible for.
func (r *StudentRecord) EligibleCount() int {
	count := 0
	for _, v := range r.Verdicts {
		if v.Eligible {
			count++
		}
	}
	return count
}

// RecordSummary is the staff search result shape.
type RecordSummary struct {
	StudentID     string    `json:"student_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EligibleCount int       `json:"eligible_count"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Summary reduces a record for search listings.
func (r *StudentRecord) Summary() RecordSummary {
	return RecordSummary{
		StudentID:     r.StudentID,
		Name:          r.Name,
		Email:         r.Email,
		EligibleCount: r.EligibleCount(),
		LastUpdated:   r.LastUpdated,
	}
}

// RecordAction identifies a staff mutation on a student record.
type RecordAction string

const (
	ActionVerifyEligibility     RecordAction = "verify_eligibility"
	ActionAddDocument           RecordAction = "add_document"
	ActionRemoveDocument        RecordAction = "remove_document"
	ActionAddMissingDocument    RecordAction = "add_missing_document"
	ActionRemoveMissingDocument RecordAction = "remove_missing_document"
	ActionUpdateNotes           RecordAction = "update_notes"
)

// UpdateRecordRequest is the staff record mutation payload.
type UpdateRecordRequest struct {
	Action   RecordAction `json:"action" binding:"required,oneof=verify_eligibility add_document remove_document add_missing_document remove_missing_document update_notes"`
	Program  string       `json:"program" binding:"omitempty,max=128"`
	Document string       `json:"document" binding:"omitempty,max=128"`
	Verified *bool        `json:"verified" binding:"omitempty"`
	Notes    string       `json:"notes" binding:"omitempty,max=4000"`
}
