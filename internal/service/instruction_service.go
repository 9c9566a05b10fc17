package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/repository"
)

// DefaultCreatorID is credited for records created without an explicit author.
const DefaultCreatorID int64 = 1

// ErrInstructionNotFound is returned when an instruction does not exist.
var ErrInstructionNotFound = errors.New("instruction not found")

// InstructionService handles the instruction catalog and its stored tests.
type InstructionService struct {
	tx           *repository.TxRunner
	repo         *repository.InstructionRepository
	questionRepo *repository.TestQuestionRepository
	activity     ActivityRecorder
	rdb          *redis.Client
	cacheTTL     time.Duration
	log          zerolog.Logger
}

// NewInstructionService creates a new InstructionService.
func NewInstructionService(
	tx *repository.TxRunner,
	repo *repository.InstructionRepository,
	questionRepo *repository.TestQuestionRepository,
	activity ActivityRecorder,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *InstructionService {
	return &InstructionService{
		tx:           tx,
		repo:         repo,
		questionRepo: questionRepo,
		activity:     activity,
		rdb:          rdb,
		cacheTTL:     cacheTTL,
		log:          log.With().Str("component", "instruction_service").Logger(),
	}
}

// List returns active instructions matching f.
func (s *InstructionService) List(ctx context.Context, f model.InstructionFilter) ([]model.InstructionSummary, error) {
	list, err := s.repo.ListActive(ctx, f)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.InstructionSummary{}
	}
	return list, nil
}

// Get returns a single instruction with its content.
func (s *InstructionService) Get(ctx context.Context, id int64) (*model.Instruction, error) {
	in, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInstructionNotFound
	}
	return in, err
}

// Create stores a new active instruction and logs the action.
func (s *InstructionService) Create(ctx context.Context, req model.CreateInstructionRequest) (*model.Instruction, error) {
	createdBy := req.CreatedBy
	if createdBy == 0 {
		createdBy = DefaultCreatorID
	}

	in := &model.Instruction{
		Title:      req.Title,
		Category:   req.Category,
		Industry:   optional(req.Industry),
		Profession: optional(req.Profession),
		Content:    req.Content,
		Status:     model.InstructionStatusActive,
		CreatedBy:  createdBy,
	}
	if err := s.repo.Create(ctx, in); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, model.ActivityEntry{
		UserID:  createdBy,
		Action:  model.ActionCreatedInstruction,
		Subject: in.Title,
	})
	return in, nil
}

// Update replaces the title and content of an instruction.
func (s *InstructionService) Update(ctx context.Context, id int64, req model.UpdateInstructionRequest) error {
	err := s.repo.UpdateContent(ctx, id, req.Title, req.Content)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrInstructionNotFound
	}
	return err
}

// Questions returns the stored test questions of an instruction, served from
// Redis when cached.
func (s *InstructionService) Questions(ctx context.Context, id int64) ([]model.TestQuestionView, error) {
	key := config.CacheKey.InstructionQuestionsKey(id)

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached []model.TestQuestionView
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Int64("instruction_id", id).Msg("Question cache read failed")
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByInstruction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	views := make([]model.TestQuestionView, len(questions))
	for i, q := range questions {
		views[i] = q.View()
	}

	if payload, err := json.Marshal(views); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Int64("instruction_id", id).Msg("Question cache write failed")
		}
	}
	return views, nil
}

// ReplaceQuestions swaps all stored questions of an instruction atomically
// and drops the cached copy.
func (s *InstructionService) ReplaceQuestions(ctx context.Context, id int64, inputs []model.TestQuestionInput) ([]model.TestQuestionView, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	questions := make([]model.TestQuestion, len(inputs))
	for i, in := range inputs {
		questions[i] = model.TestQuestion{
			Question:      in.Question,
			OptionA:       in.Options[0],
			OptionB:       in.Options[1],
			OptionC:       in.Options[2],
			OptionD:       in.Options[3],
			CorrectAnswer: in.CorrectAnswer,
		}
	}

	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		return s.questionRepo.ReplaceAll(ctx, tx, id, questions)
	})
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, ErrInstructionNotFound
		}
		return nil, fmt.Errorf("replace questions: %w", err)
	}

	if err := s.rdb.Del(ctx, config.CacheKey.InstructionQuestionsKey(id)).Err(); err != nil {
		s.log.Warn().Err(err).Int64("instruction_id", id).Msg("Question cache invalidation failed")
	}

	s.log.Info().Int64("instruction_id", id).Int("questions", len(questions)).Msg("Test questions replaced")

	views := make([]model.TestQuestionView, len(questions))
	for i, q := range questions {
		views[i] = q.View()
	}
	return views, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
