package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// ProgramRepository handles training program data access.
type ProgramRepository struct {
	pool *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

// ListActive retrieves active programs with enrolled student count and the
// average score of completed test sessions of those students.
func (r *ProgramRepository) ListActive(ctx context.Context) ([]model.ProgramSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.title, p.description, p.duration_hours, p.passing_score,
		        COUNT(DISTINCT ua.user_id) AS student_count,
		        COALESCE(AVG(CASE WHEN ts.status = 'completed' THEN ts.score END), 0)::float8 AS avg_progress
		 FROM training_programs p
		 LEFT JOIN user_assignments ua ON ua.program_id = p.id
		 LEFT JOIN test_sessions ts ON ts.user_id = ua.user_id
		 WHERE p.status = 'active'
		 GROUP BY p.id, p.title, p.description, p.duration_hours, p.passing_score
		 ORDER BY p.title`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []model.ProgramSummary
	for rows.Next() {
		var p model.ProgramSummary
		var hours int
		var progress float64
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &hours, &p.PassingScore, &p.Students, &progress); err != nil {
			return nil, err
		}
		p.Duration = fmt.Sprintf("%d hours", hours)
		p.Progress = int(progress)
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// GetTitle retrieves a program's title.
func (r *ProgramRepository) GetTitle(ctx context.Context, id int64) (string, error) {
	var title string
	err := r.pool.QueryRow(ctx, `SELECT title FROM training_programs WHERE id = $1`, id).Scan(&title)
	return title, err
}

// Create inserts a new active training program.
func (r *ProgramRepository) Create(ctx context.Context, title, description string, durationHours, passingScore int) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO training_programs (title, description, duration_hours, passing_score)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		title, description, durationHours, passingScore,
	).Scan(&id)
	return id, err
}
