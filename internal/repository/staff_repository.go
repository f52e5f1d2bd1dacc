package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartaid/smartaid-backend/internal/model"
)

var ErrDuplicateUsername = errors.New("staff user with this username already exists")

// StaffRepository handles staff account data access.
type StaffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

// GetByID retrieves a staff user by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int) (*model.StaffUser, error) {
	u := &model.StaffUser{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, name, password_hash, role, created_at, updated_at
		 FROM staff_users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByUsername retrieves a staff user by their unique username.
func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*model.StaffUser, error) {
	u := &model.StaffUser{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, name, password_hash, role, created_at, updated_at
		 FROM staff_users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new staff user.
func (r *StaffRepository) Create(ctx context.Context, u *model.StaffUser) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO staff_users (username, name, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Username, u.Name, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}
