package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// UserRepository handles user data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// List retrieves users ordered by full name, optionally filtered by role.
func (r *UserRepository) List(ctx context.Context, role string) ([]model.User, error) {
	query := `SELECT id, full_name, position, department, role, email FROM users`
	var args []any
	if role != "" {
		query += ` WHERE role = $1`
		args = append(args, role)
	}
	query += ` ORDER BY full_name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Position, &u.Department, &u.Role, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetFullName retrieves a user's full name.
func (r *UserRepository) GetFullName(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT full_name FROM users WHERE id = $1`, id).Scan(&name)
	return name, err
}

// Upsert inserts a user or refreshes an existing one with the same email.
func (r *UserRepository) Upsert(ctx context.Context, u *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (full_name, position, department, role, email)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE
		 SET full_name = EXCLUDED.full_name, position = EXCLUDED.position,
		     department = EXCLUDED.department, role = EXCLUDED.role
		 RETURNING id`,
		u.FullName, u.Position, u.Department, u.Role, u.Email,
	).Scan(&u.ID)
}
