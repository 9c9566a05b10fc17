package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// AssignmentRepository handles user assignment data access.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// ListByUser retrieves a user's assignments with the score of their latest
// completed test as progress, ordered by deadline.
func (r *AssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]model.UserAssignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ua.id, tp.title, ua.deadline, ua.status,
		        COALESCE((SELECT ts.score FROM test_sessions ts
		                  WHERE ts.user_id = ua.user_id AND ts.status = 'completed'
		                  ORDER BY ts.completed_at DESC LIMIT 1), 0) AS progress
		 FROM user_assignments ua
		 JOIN training_programs tp ON tp.id = ua.program_id
		 WHERE ua.user_id = $1
		 ORDER BY ua.deadline`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserAssignment
	for rows.Next() {
		var a model.UserAssignment
		var deadline *time.Time
		if err := rows.Scan(&a.ID, &a.Title, &deadline, &a.Status, &a.Progress); err != nil {
			return nil, err
		}
		a.Deadline = formatDate(deadline)
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListAll retrieves every assignment with student and program names.
func (r *AssignmentRepository) ListAll(ctx context.Context) ([]model.AssignmentOverview, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ua.id, u.full_name, tp.title, ua.deadline, ua.status
		 FROM user_assignments ua
		 JOIN users u ON u.id = ua.user_id
		 JOIN training_programs tp ON tp.id = ua.program_id
		 ORDER BY ua.deadline`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AssignmentOverview
	for rows.Next() {
		var a model.AssignmentOverview
		var deadline *time.Time
		if err := rows.Scan(&a.ID, &a.StudentName, &a.ProgramTitle, &deadline, &a.Status); err != nil {
			return nil, err
		}
		a.Deadline = formatDate(deadline)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create inserts a new assignment in the assigned state.
func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_assignments (user_id, program_id, assigned_by, deadline, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.UserID, a.ProgramID, a.AssignedBy, a.Deadline, model.AssignmentStatusAssigned,
	).Scan(&a.ID)
	if err != nil {
		return mapFKViolation(err)
	}
	a.Status = model.AssignmentStatusAssigned
	return nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
