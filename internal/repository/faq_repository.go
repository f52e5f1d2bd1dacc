package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartaid/smartaid-backend/internal/model"
)

// FaqRepository handles FAQ entries and the chat query log.
type FaqRepository struct {
	pool *pgxpool.Pool
}

// NewFaqRepository creates a new FaqRepository.
func NewFaqRepository(pool *pgxpool.Pool) *FaqRepository {
	return &FaqRepository{pool: pool}
}

// GetAll retrieves all FAQ entries in insertion order. The substring pass of
// the responder depends on this ordering.
func (r *FaqRepository) GetAll(ctx context.Context) ([]model.FaqEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, key, answer, position FROM faq_entries ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.FaqEntry
	for rows.Next() {
		var e model.FaqEntry
		if err := rows.Scan(&e.ID, &e.Key, &e.Answer, &e.Position); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Create inserts a new FAQ entry.
func (r *FaqRepository) Create(ctx context.Context, e *model.FaqEntry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO faq_entries (key, answer, position) VALUES ($1, $2, $3) RETURNING id`,
		e.Key, e.Answer, e.Position,
	).Scan(&e.ID)
}

// DeleteAll clears the FAQ table before a reseed.
func (r *FaqRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM faq_entries`)
	return err
}

// InsertChatQueries batch-inserts logged chatbot interactions. Called by the
// chat log worker with items drained from Redis.
func (r *FaqRepository) InsertChatQueries(ctx context.Context, queries []model.ChatQuery) error {
	if len(queries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, q := range queries {
		batch.Queue(
			`INSERT INTO chat_queries (question, matched_key, score, answered, asked_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			q.Question, q.MatchedKey, q.Score, q.Answered, q.AskedAt)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// ListChatQueries returns the most recent logged questions, optionally only
// the unanswered ones, for staff review.
func (r *FaqRepository) ListChatQueries(ctx context.Context, unansweredOnly bool, limit int) ([]model.ChatQuery, error) {
	query := `SELECT id, question, COALESCE(matched_key, ''), score, answered, asked_at FROM chat_queries`
	if unansweredOnly {
		query += ` WHERE answered = FALSE`
	}
	query += ` ORDER BY asked_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []model.ChatQuery
	for rows.Next() {
		var q model.ChatQuery
		if err := rows.Scan(&q.ID, &q.Question, &q.MatchedKey, &q.Score, &q.Answered, &q.AskedAt); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}
