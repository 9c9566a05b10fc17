package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/repository"
)

// UserService lists platform users.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns users ordered by name, optionally filtered by role.
func (s *UserService) List(ctx context.Context, role string) ([]model.User, error) {
	users, err := s.repo.List(ctx, role)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// ProgramService lists training programs.
type ProgramService struct {
	repo *repository.ProgramRepository
}

// NewProgramService creates a new ProgramService.
func NewProgramService(repo *repository.ProgramRepository) *ProgramService {
	return &ProgramService{repo: repo}
}

// List returns active programs with enrolment statistics.
func (s *ProgramService) List(ctx context.Context) ([]model.ProgramSummary, error) {
	programs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []model.ProgramSummary{}
	}
	return programs, nil
}

// AssignmentService assigns training programs to users.
type AssignmentService struct {
	repo        *repository.AssignmentRepository
	userRepo    *repository.UserRepository
	programRepo *repository.ProgramRepository
	activity    ActivityRecorder
	log         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(
	repo *repository.AssignmentRepository,
	userRepo *repository.UserRepository,
	programRepo *repository.ProgramRepository,
	activity ActivityRecorder,
	log zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		repo:        repo,
		userRepo:    userRepo,
		programRepo: programRepo,
		activity:    activity,
		log:         log.With().Str("component", "assignment_service").Logger(),
	}
}

// ListForUser returns a user's own assignments with progress.
func (s *AssignmentService) ListForUser(ctx context.Context, userID int64) ([]model.UserAssignment, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.UserAssignment{}
	}
	return list, nil
}

// ListAll returns every assignment for administrators.
func (s *AssignmentService) ListAll(ctx context.Context) ([]model.AssignmentOverview, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.AssignmentOverview{}
	}
	return list, nil
}

// AssignmentCreated is the outcome of Create.
type AssignmentCreated struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Create assigns a program to a user and logs the action. Unknown users or
// programs yield repository.ErrReferenceNotFound.
func (s *AssignmentService) Create(ctx context.Context, req model.CreateAssignmentRequest) (*AssignmentCreated, error) {
	a := &model.Assignment{
		UserID:     req.UserID,
		ProgramID:  req.ProgramID,
		AssignedBy: req.AssignedBy,
		Status:     model.AssignmentStatusAssigned,
	}
	if a.AssignedBy == 0 {
		a.AssignedBy = DefaultCreatorID
	}
	if req.Deadline != "" {
		d, err := time.Parse(time.DateOnly, req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("parse deadline: %w", err)
		}
		a.Deadline = &d
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	userName, err := s.userRepo.GetFullName(ctx, a.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrReferenceNotFound
		}
		return nil, err
	}

	if title, err := s.programRepo.GetTitle(ctx, a.ProgramID); err == nil {
		s.activity.Record(ctx, model.ActivityEntry{
			UserID:  a.UserID,
			Action:  model.ActionTrainingAssigned,
			Subject: title,
		})
	} else {
		s.log.Warn().Err(err).Int64("program_id", a.ProgramID).Msg("Program title lookup failed")
	}

	return &AssignmentCreated{
		ID:      a.ID,
		Message: "Assignment created for " + userName,
	}, nil
}
