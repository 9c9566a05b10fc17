package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// InstructionRepository handles instruction data access.
type InstructionRepository struct {
	pool *pgxpool.Pool
}

// NewInstructionRepository creates a new InstructionRepository.
func NewInstructionRepository(pool *pgxpool.Pool) *InstructionRepository {
	return &InstructionRepository{pool: pool}
}

// ListActive retrieves active instructions, newest update first.
func (r *InstructionRepository) ListActive(ctx context.Context, f model.InstructionFilter) ([]model.InstructionSummary, error) {
	query := `SELECT id, title, category, industry, profession, updated_at
		FROM instructions WHERE status = $1`
	args := []any{model.InstructionStatusActive}

	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Industry != "" {
		args = append(args, f.Industry)
		query += fmt.Sprintf(" AND industry = $%d", len(args))
	}
	query += " ORDER BY updated_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.InstructionSummary
	for rows.Next() {
		var s model.InstructionSummary
		var updated time.Time
		if err := rows.Scan(&s.ID, &s.Title, &s.Category, &s.Industry, &s.Profession, &updated); err != nil {
			return nil, err
		}
		s.LastUpdated = updated.Format(dateLayout)
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID retrieves a full instruction.
func (r *InstructionRepository) GetByID(ctx context.Context, id int64) (*model.Instruction, error) {
	in := &model.Instruction{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, category, industry, profession, content, status, COALESCE(created_by, 0), created_at, updated_at
		 FROM instructions WHERE id = $1`, id,
	).Scan(&in.ID, &in.Title, &in.Category, &in.Industry, &in.Profession, &in.Content,
		&in.Status, &in.CreatedBy, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return nil, err
	}
	in.LastUpdated = in.UpdatedAt.Format(dateLayout)
	return in, nil
}

// GetTitle retrieves an instruction's title.
func (r *InstructionRepository) GetTitle(ctx context.Context, id int64) (string, error) {
	var title string
	err := r.pool.QueryRow(ctx, `SELECT title FROM instructions WHERE id = $1`, id).Scan(&title)
	return title, err
}

// Create inserts a new active instruction.
func (r *InstructionRepository) Create(ctx context.Context, in *model.Instruction) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO instructions (title, category, industry, profession, content, created_by, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		in.Title, in.Category, in.Industry, in.Profession, in.Content, in.CreatedBy, model.InstructionStatusActive,
	).Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return mapFKViolation(err)
	}
	in.Status = model.InstructionStatusActive
	in.LastUpdated = in.UpdatedAt.Format(dateLayout)
	return nil
}

// UpdateContent replaces an instruction's title and content.
func (r *InstructionRepository) UpdateContent(ctx context.Context, id int64, title, content string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE instructions SET title = $1, content = $2, updated_at = NOW() WHERE id = $3`,
		title, content, id,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
