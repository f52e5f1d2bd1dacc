package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartaid/smartaid-backend/internal/model"
)

var ErrRecordNotFound = errors.New("student record not found")

// StudentRecordRepository persists case files. Each record is one row with
// the verdict list as JSONB, so concurrent staff edits to different students
// cannot clobber each other the way a whole-file store would.
type StudentRecordRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRecordRepository creates a new StudentRecordRepository.
func NewStudentRecordRepository(pool *pgxpool.Pool) *StudentRecordRepository {
	return &StudentRecordRepository{pool: pool}
}

// GetByID retrieves a record by student ID.
func (r *StudentRecordRepository) GetByID(ctx context.Context, studentID string) (*model.StudentRecord, error) {
	rec := &model.StudentRecord{}
	var verdicts []byte
	err := r.pool.QueryRow(ctx,
		`SELECT student_id, name, email, verdicts, notes, last_updated
		 FROM student_records WHERE student_id = $1`, studentID,
	).Scan(&rec.StudentID, &rec.Name, &rec.Email, &verdicts, &rec.Notes, &rec.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(verdicts, &rec.Verdicts); err != nil {
		return nil, fmt.Errorf("decode verdicts: %w", err)
	}
	return rec, nil
}

// Search returns up to limit record summaries whose ID, name or email
// contains the query, most recently updated first.
func (r *StudentRecordRepository) Search(ctx context.Context, query string, limit int) ([]model.StudentRecord, error) {
	pattern := "%" + query + "%"
	rows, err := r.pool.Query(ctx,
		`SELECT student_id, name, email, verdicts, notes, last_updated
		 FROM student_records
		 WHERE student_id ILIKE $1 OR name ILIKE $1 OR email ILIKE $1
		 ORDER BY last_updated DESC
		 LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// List returns every record, most recently updated first.
func (r *StudentRecordRepository) List(ctx context.Context) ([]model.StudentRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT student_id, name, email, verdicts, notes, last_updated
		 FROM student_records ORDER BY last_updated DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Create inserts a new record.
func (r *StudentRecordRepository) Create(ctx context.Context, rec *model.StudentRecord) error {
	verdicts, err := json.Marshal(rec.Verdicts)
	if err != nil {
		return fmt.Errorf("encode verdicts: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO student_records (student_id, name, email, verdicts, notes, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.StudentID, rec.Name, rec.Email, verdicts, rec.Notes, rec.LastUpdated)
	return err
}

// Update replaces a record's mutable fields. Last-write-wins at record
// granularity.
func (r *StudentRecordRepository) Update(ctx context.Context, rec *model.StudentRecord) error {
	verdicts, err := json.Marshal(rec.Verdicts)
	if err != nil {
		return fmt.Errorf("encode verdicts: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE student_records
		 SET name = $1, email = $2, verdicts = $3, notes = $4, last_updated = $5
		 WHERE student_id = $6`,
		rec.Name, rec.Email, verdicts, rec.Notes, rec.LastUpdated, rec.StudentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func scanRecords(rows pgx.Rows) ([]model.StudentRecord, error) {
	var records []model.StudentRecord
	for rows.Next() {
		var rec model.StudentRecord
		var verdicts []byte
		if err := rows.Scan(&rec.StudentID, &rec.Name, &rec.Email, &verdicts, &rec.Notes, &rec.LastUpdated); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(verdicts, &rec.Verdicts); err != nil {
			return nil, fmt.Errorf("decode verdicts: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
