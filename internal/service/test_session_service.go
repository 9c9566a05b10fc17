package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/grading"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/repository"
)

// ErrQuestionNotFound is returned when a submitted answer references a
// question that does not exist.
var ErrQuestionNotFound = errors.New("question not found")

// TestSessionService grades submitted tests and records them.
type TestSessionService struct {
	tx              *repository.TxRunner
	sessionRepo     *repository.TestSessionRepository
	questionRepo    *repository.TestQuestionRepository
	instructionRepo *repository.InstructionRepository
	activity        ActivityRecorder
	log             zerolog.Logger
}

// NewTestSessionService creates a new TestSessionService.
func NewTestSessionService(
	tx *repository.TxRunner,
	sessionRepo *repository.TestSessionRepository,
	questionRepo *repository.TestQuestionRepository,
	instructionRepo *repository.InstructionRepository,
	activity ActivityRecorder,
	log zerolog.Logger,
) *TestSessionService {
	return &TestSessionService{
		tx:              tx,
		sessionRepo:     sessionRepo,
		questionRepo:    questionRepo,
		instructionRepo: instructionRepo,
		activity:        activity,
		log:             log.With().Str("component", "test_session_service").Logger(),
	}
}

// Submit grades req and persists the session with every answer in a single
// transaction. Nothing is stored when any step fails.
func (s *TestSessionService) Submit(ctx context.Context, req model.SubmitTestSessionRequest) (*model.TestSessionResult, error) {
	mode := model.TestMode(req.TestMode)
	if mode == "" {
		mode = model.TestModePractice
	}

	answers := make([]grading.SubmittedAnswer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = grading.SubmittedAnswer{QuestionID: a.QuestionID, UserAnswer: a.UserAnswer}
	}

	session := &model.TestSession{
		UserID:           req.UserID,
		InstructionID:    req.InstructionID,
		TestMode:         mode,
		TotalQuestions:   len(answers),
		TimeSpentSeconds: req.TimeSpentSeconds,
	}

	var result *grading.Result
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		var err error
		result, err = grading.Grade(ctx, answers, func(ctx context.Context, questionID int64) (string, error) {
			answer, err := s.questionRepo.GetCorrectAnswer(ctx, tx, questionID)
			if errors.Is(err, pgx.ErrNoRows) {
				return "", ErrQuestionNotFound
			}
			return answer, err
		})
		if err != nil {
			return err
		}

		if err := s.sessionRepo.InsertAnswers(ctx, tx, session.ID, result.Evaluations); err != nil {
			return fmt.Errorf("insert answers: %w", err)
		}

		session.Score = result.Score
		session.CorrectAnswers = result.CorrectAnswers
		session.TotalQuestions = result.TotalQuestions
		if err := s.sessionRepo.UpdateScore(ctx, tx, session); err != nil {
			return fmt.Errorf("update score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("session_id", session.ID).
		Int64("user_id", session.UserID).
		Int("score", result.Score).
		Bool("passed", result.Passed).
		Msg("Test session graded")

	s.recordResult(ctx, session, result)

	return &model.TestSessionResult{
		SessionID:      session.ID,
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		Passed:         result.Passed,
	}, nil
}

func (s *TestSessionService) recordResult(ctx context.Context, session *model.TestSession, result *grading.Result) {
	title, err := s.instructionRepo.GetTitle(ctx, session.InstructionID)
	if err != nil {
		s.log.Warn().Err(err).Int64("instruction_id", session.InstructionID).Msg("Instruction title lookup failed")
		return
	}

	action := model.ActionFailedTest
	if result.Passed {
		action = model.ActionPassedTest
	}
	s.activity.Record(ctx, model.ActivityEntry{
		UserID:  session.UserID,
		Action:  action,
		Subject: title,
		Details: strPtr(fmt.Sprintf("Result: %d%%", result.Score)),
	})
}

// ListByUser returns a user's graded sessions, most recent first.
func (s *TestSessionService) ListByUser(ctx context.Context, userID int64) ([]model.TestSession, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []model.TestSession{}
	}
	return sessions, nil
}
