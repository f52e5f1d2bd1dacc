package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
)

var ErrEmptyCatalog = errors.New("program catalog is empty; run seed-catalog first")

// CatalogService holds the immutable in-memory aid program catalog.
// Load is called once at startup; after that the catalog is read-only and
// safe for concurrent use without locking.
type CatalogService struct {
	programRepo *repository.ProgramRepository
	log         zerolog.Logger
	programs    []model.Program
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(programRepo *repository.ProgramRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		programRepo: programRepo,
		log:         log.With().Str("component", "catalog_service").Logger(),
	}
}

// Load reads all programs from Postgres in seed order. Must be called before
// the server accepts traffic.
func (s *CatalogService) Load(ctx context.Context) error {
	programs, err := s.programRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load programs: %w", err)
	}
	if len(programs) == 0 {
		return ErrEmptyCatalog
	}
	s.programs = programs
	s.log.Info().Int("programs", len(programs)).Msg("Program catalog loaded")
	return nil
}

// Programs returns the catalog in order. Callers must not mutate the slice.
func (s *CatalogService) Programs() []model.Program {
	return s.programs
}

// Summaries returns the public listing of all programs.
func (s *CatalogService) Summaries() []model.ProgramSummary {
	out := make([]model.ProgramSummary, 0, len(s.programs))
	for i := range s.programs {
		out = append(out, s.programs[i].Summary())
	}
	return out
}
