package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/grading"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// TestSessionRepository handles test session and answer data access.
type TestSessionRepository struct {
	pool *pgxpool.Pool
}

// NewTestSessionRepository creates a new TestSessionRepository.
func NewTestSessionRepository(pool *pgxpool.Pool) *TestSessionRepository {
	return &TestSessionRepository{pool: pool}
}

// Create inserts a completed session without scores.
func (r *TestSessionRepository) Create(ctx context.Context, q Querier, s *model.TestSession) error {
	err := q.QueryRow(ctx,
		`INSERT INTO test_sessions (user_id, instruction_id, test_mode, status, total_questions, time_spent_seconds, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())
		 RETURNING id, completed_at`,
		s.UserID, s.InstructionID, s.TestMode, model.TestSessionStatusCompleted, s.TotalQuestions, s.TimeSpentSeconds,
	).Scan(&s.ID, &s.CompletedAt)
	if err != nil {
		return mapFKViolation(err)
	}
	s.Status = model.TestSessionStatusCompleted
	return nil
}

// InsertAnswers records every evaluation of a session in one batch.
func (r *TestSessionRepository) InsertAnswers(ctx context.Context, q Querier, sessionID int64, evals []grading.Evaluation) error {
	if len(evals) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, ev := range evals {
		batch.Queue(
			`INSERT INTO test_answers (session_id, question_id, user_answer, is_correct)
			 VALUES ($1, $2, $3, $4)`,
			sessionID, ev.QuestionID, ev.UserAnswer, ev.IsCorrect,
		)
	}
	return q.SendBatch(ctx, batch).Close()
}

// UpdateScore writes the aggregate grading fields of a session.
func (r *TestSessionRepository) UpdateScore(ctx context.Context, q Querier, s *model.TestSession) error {
	cmdTag, err := q.Exec(ctx,
		`UPDATE test_sessions
		 SET score = $1, correct_answers = $2, total_questions = $3
		 WHERE id = $4`,
		s.Score, s.CorrectAnswers, s.TotalQuestions, s.ID,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByUser retrieves a user's sessions, most recent first.
func (r *TestSessionRepository) ListByUser(ctx context.Context, userID int64) ([]model.TestSession, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, instruction_id, test_mode, status, total_questions, correct_answers,
		        score, time_spent_seconds, completed_at
		 FROM test_sessions
		 WHERE user_id = $1
		 ORDER BY completed_at DESC NULLS LAST, id DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.TestSession
	for rows.Next() {
		var s model.TestSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.InstructionID, &s.TestMode, &s.Status, &s.TotalQuestions,
			&s.CorrectAnswers, &s.Score, &s.TimeSpentSeconds, &s.CompletedAt); err != nil {
			return nil, err
		}
		s.Passed = grading.Passed(s.Score)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
