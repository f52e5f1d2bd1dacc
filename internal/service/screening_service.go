package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/model"
)

// Screening errors.
var (
	ErrScreeningNotFound  = errors.New("screening not found or expired")
	ErrProgramNotTracked  = errors.New("program is not tracked by this screening")
	ErrDocumentNotTracked = errors.New("document is not on the checklist for this program")
)

// ScreeningService evaluates applicant profiles against the catalog and
// keeps screening state in Redis for the lifetime of the session.
type ScreeningService struct {
	cfg     *config.Config
	rdb     *redis.Client
	catalog *CatalogService
	log     zerolog.Logger
}

// NewScreeningService creates a new ScreeningService.
func NewScreeningService(cfg *config.Config, rdb *redis.Client, catalog *CatalogService, log zerolog.Logger) *ScreeningService {
	return &ScreeningService{
		cfg:     cfg,
		rdb:     rdb,
		catalog: catalog,
		log:     log.With().Str("component", "screening_service").Logger(),
	}
}

// Screen evaluates a profile and stores the resulting screening. When
// previousID names an existing screening, its ID and document checklist are
// carried over so re-screening never erases upload history; otherwise a new
// screening is created under a fresh UUID.
func (s *ScreeningService) Screen(ctx context.Context, profile model.ApplicantProfile, previousID string) (*model.Screening, error) {
	screening := &model.Screening{
		ID:        uuid.New().String(),
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}

	if previousID != "" {
		previous, err := s.Get(ctx, previousID)
		if err == nil {
			screening.ID = previous.ID
			screening.Documents = previous.Documents
			screening.CreatedAt = previous.CreatedAt
		} else if !errors.Is(err, ErrScreeningNotFound) {
			return nil, err
		}
	}

	screening.Verdicts = evaluateProfile(profile, s.catalog.Programs())
	screening.Documents = mergeChecklist(screening.Documents, screening.EligibleVerdicts())

	if err := s.save(ctx, screening); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("screening_id", screening.ID).
		Int("eligible", len(screening.EligibleVerdicts())).
		Int("programs", len(screening.Verdicts)).
		Msg("Screening evaluated")

	return screening, nil
}

// Get retrieves a screening by ID.
func (s *ScreeningService) Get(ctx context.Context, id string) (*model.Screening, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.ScreeningKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrScreeningNotFound
		}
		return nil, fmt.Errorf("get screening: %w", err)
	}

	screening := &model.Screening{}
	if err := json.Unmarshal([]byte(raw), screening); err != nil {
		return nil, fmt.Errorf("decode screening: %w", err)
	}
	return screening, nil
}

// RecordUpload marks a checklist document as received with the current
// timestamp. Unknown program or document names are an explicit error rather
// than an auto-create.
func (s *ScreeningService) RecordUpload(ctx context.Context, id, program, document string) (*model.DocumentEntry, error) {
	screening, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	docs, ok := screening.Documents[program]
	if !ok {
		return nil, ErrProgramNotTracked
	}
	if _, ok := docs[document]; !ok {
		return nil, ErrDocumentNotTracked
	}

	now := time.Now().UTC()
	entry := model.DocumentEntry{Status: model.DocumentReceived, UploadedAt: &now}
	docs[document] = entry

	if err := s.save(ctx, screening); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("screening_id", id).
		Str("program", program).
		Str("document", document).
		Msg("Document recorded")

	return &entry, nil
}

// Delete removes a screening, ending the applicant's session.
func (s *ScreeningService) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, config.CacheKey.ScreeningKey(id)).Err()
}

func (s *ScreeningService) save(ctx context.Context, screening *model.Screening) error {
	raw, err := json.Marshal(screening)
	if err != nil {
		return fmt.Errorf("encode screening: %w", err)
	}
	if err := s.rdb.Set(ctx, config.CacheKey.ScreeningKey(screening.ID), raw, s.cfg.ScreeningTTL).Err(); err != nil {
		return fmt.Errorf("store screening: %w", err)
	}
	return nil
}
