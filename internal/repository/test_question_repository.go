package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// TestQuestionRepository handles stored test question data access.
type TestQuestionRepository struct {
	pool *pgxpool.Pool
}

// NewTestQuestionRepository creates a new TestQuestionRepository.
func NewTestQuestionRepository(pool *pgxpool.Pool) *TestQuestionRepository {
	return &TestQuestionRepository{pool: pool}
}

// ListByInstruction retrieves all questions of an instruction ordered by id.
func (r *TestQuestionRepository) ListByInstruction(ctx context.Context, instructionID int64) ([]model.TestQuestion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, instruction_id, question, option_a, option_b, option_c, option_d, correct_answer
		 FROM test_questions
		 WHERE instruction_id = $1
		 ORDER BY id`, instructionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.TestQuestion
	for rows.Next() {
		var q model.TestQuestion
		if err := rows.Scan(&q.ID, &q.InstructionID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetCorrectAnswer retrieves the stored correct answer of a question.
// Returns pgx.ErrNoRows when the question does not exist.
func (r *TestQuestionRepository) GetCorrectAnswer(ctx context.Context, q Querier, questionID int64) (string, error) {
	var answer string
	err := q.QueryRow(ctx, `SELECT correct_answer FROM test_questions WHERE id = $1`, questionID).Scan(&answer)
	return answer, err
}

// ReplaceAll deletes an instruction's questions and inserts the given ones
// inside tx. IDs of the inserted questions are written back.
func (r *TestQuestionRepository) ReplaceAll(ctx context.Context, tx pgx.Tx, instructionID int64, questions []model.TestQuestion) error {
	if _, err := tx.Exec(ctx, `DELETE FROM test_questions WHERE instruction_id = $1`, instructionID); err != nil {
		return err
	}
	if len(questions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, q := range questions {
		batch.Queue(
			`INSERT INTO test_questions (instruction_id, question, option_a, option_b, option_c, option_d, correct_answer)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			instructionID, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range questions {
		if err := br.QueryRow().Scan(&questions[i].ID); err != nil {
			br.Close()
			return mapFKViolation(err)
		}
		questions[i].InstructionID = instructionID
	}
	return br.Close()
}
