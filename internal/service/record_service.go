package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
)

// searchLimit caps staff search results.
const searchLimit = 10

// Record action errors.
var (
	ErrUnknownAction    = errors.New("unknown record action")
	ErrDocumentRequired = errors.New("document name is required for this action")
)

// RecordService manages persisted student case files for the staff dashboard.
type RecordService struct {
	recordRepo *repository.StudentRecordRepository
	log        zerolog.Logger
}

// NewRecordService creates a new RecordService.
func NewRecordService(recordRepo *repository.StudentRecordRepository, log zerolog.Logger) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		log:        log.With().Str("component", "record_service").Logger(),
	}
}

// Get retrieves a full record by student ID.
func (s *RecordService) Get(ctx context.Context, studentID string) (*model.StudentRecord, error) {
	return s.recordRepo.GetByID(ctx, studentID)
}

// Search returns up to ten record summaries matching the query by ID, name
// or email.
func (s *RecordService) Search(ctx context.Context, query string) ([]model.RecordSummary, error) {
	records, err := s.recordRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	return summarize(records), nil
}

// List returns summaries of every record.
func (s *RecordService) List(ctx context.Context) ([]model.RecordSummary, error) {
	records, err := s.recordRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(records), nil
}

// Promote persists a screening as a student record for staff tracking.
// Each verdict is augmented with submitted/missing document lists derived
// from the screening checklist: received documents start submitted,
// everything else starts missing.
func (s *RecordService) Promote(ctx context.Context, screening *model.Screening, name, email string) (*model.StudentRecord, error) {
	record := &model.StudentRecord{
		StudentID:   newStudentID(),
		Name:        name,
		Email:       email,
		Verdicts:    make([]model.VerdictRecord, 0, len(screening.Verdicts)),
		LastUpdated: time.Now().UTC(),
	}

	for _, v := range screening.Verdicts {
		vr := model.VerdictRecord{Verdict: v}
		checklist := screening.Documents[v.Program]
		for _, doc := range v.RequiredDocuments {
			if entry, ok := checklist[doc]; ok && entry.Status == model.DocumentReceived {
				vr.MarkSubmitted(doc)
			} else {
				vr.MarkMissing(doc)
			}
		}
		record.Verdicts = append(record.Verdicts, vr)
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("student_id", record.StudentID).
		Str("screening_id", screening.ID).
		Msg("Screening promoted to student record")

	return record, nil
}

// Update applies a staff action to a record and persists the result.
// Actions touching a program the record does not track are an explicit
// error; document list moves follow set semantics.
func (s *RecordService) Update(ctx context.Context, studentID string, req *model.UpdateRecordRequest) (*model.StudentRecord, error) {
	record, err := s.recordRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := applyAction(record, req); err != nil {
		return nil, err
	}

	record.LastUpdated = time.Now().UTC()
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("student_id", studentID).
		Str("action", string(req.Action)).
		Msg("Student record updated")

	return record, nil
}

// applyAction mutates a record per one staff action. Document list moves
// require a non-blank document name so an empty string never enters a list.
func applyAction(record *model.StudentRecord, req *model.UpdateRecordRequest) error {
	if req.Action == model.ActionUpdateNotes {
		record.Notes = req.Notes
		return nil
	}

	verdict := record.FindVerdict(req.Program)
	if verdict == nil {
		return ErrProgramNotTracked
	}

	switch req.Action {
	case model.ActionVerifyEligibility:
		verified := true
		if req.Verified != nil {
			verified = *req.Verified
		}
		verdict.Verified = verified
	case model.ActionAddDocument, model.ActionRemoveMissingDocument:
		if strings.TrimSpace(req.Document) == "" {
			return ErrDocumentRequired
		}
		verdict.MarkSubmitted(req.Document)
	case model.ActionRemoveDocument, model.ActionAddMissingDocument:
		if strings.TrimSpace(req.Document) == "" {
			return ErrDocumentRequired
		}
		verdict.MarkMissing(req.Document)
	default:
		return ErrUnknownAction
	}
	return nil
}

func summarize(records []model.StudentRecord) []model.RecordSummary {
	out := make([]model.RecordSummary, 0, len(records))
	for i := range records {
		out = append(out, records[i].Summary())
	}
	return out
}

// newStudentID generates a short human-readable case ID.
func newStudentID() string {
	return "SA-" + strings.ToUpper(uuid.New().String()[:8])
}
