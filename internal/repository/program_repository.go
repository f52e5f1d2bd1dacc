package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartaid/smartaid-backend/internal/model"
)

var ErrDuplicateProgram = errors.New("program with this name already exists")

// documentDelimiter joins required document names in the programs table,
// matching the source CSV format.
const documentDelimiter = ";"

// ProgramRepository handles aid program data access.
type ProgramRepository struct {
	pool *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

// GetAll retrieves every program in catalog (seed) order.
func (r *ProgramRepository) GetAll(ctx context.Context) ([]model.Program, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, residency_required, min_gpa, max_income, enrollment_required,
		        award_amount, deadline, description, required_documents, position, created_at
		 FROM programs ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []model.Program
	for rows.Next() {
		var p model.Program
		var docs string
		if err := rows.Scan(&p.ID, &p.Name, &p.ResidencyRequired, &p.MinGPA, &p.MaxIncome,
			&p.EnrollmentRequired, &p.AwardAmount, &p.Deadline, &p.Description,
			&docs, &p.Position, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.RequiredDocuments = splitDocuments(docs)
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// Create inserts a new program.
func (r *ProgramRepository) Create(ctx context.Context, p *model.Program) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO programs (name, residency_required, min_gpa, max_income, enrollment_required,
		                       award_amount, deadline, description, required_documents, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		p.Name, p.ResidencyRequired, p.MinGPA, p.MaxIncome, p.EnrollmentRequired,
		p.AwardAmount, p.Deadline, p.Description,
		strings.Join(p.RequiredDocuments, documentDelimiter), p.Position,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateProgram
		}
		return err
	}
	return nil
}

// DeleteAll clears the catalog before a reseed.
func (r *ProgramRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM programs`)
	return err
}

func splitDocuments(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, documentDelimiter)
	docs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			docs = append(docs, trimmed)
		}
	}
	return docs
}
