package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// StatsRepository handles dashboard statistics data access.
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// GetSummary retrieves the high-level metrics for the dashboard.
func (r *StatsRepository) GetSummary(ctx context.Context) (*model.Stats, error) {
	s := &model.Stats{}
	var avg float64
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'student'),
			(SELECT COUNT(*) FROM test_sessions WHERE status = 'completed'),
			(SELECT COALESCE(AVG(score), 0)::float8 FROM test_sessions WHERE status = 'completed'),
			(SELECT COUNT(*) FROM instructions WHERE status = 'active')`,
	).Scan(&s.ActiveStudents, &s.CompletedTests, &avg, &s.TotalInstructions)
	if err != nil {
		return nil, err
	}
	s.AvgScore = int(avg)
	return s, nil
}
