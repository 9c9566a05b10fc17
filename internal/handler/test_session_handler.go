package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/repository"
	"github.com/stemsi/safetrain-backend/internal/response"
	"github.com/stemsi/safetrain-backend/internal/service"
	"github.com/stemsi/safetrain-backend/internal/validator"
)

// TestSessionService is the grading surface the handler depends on.
type TestSessionService interface {
	Submit(ctx context.Context, req model.SubmitTestSessionRequest) (*model.TestSessionResult, error)
	ListByUser(ctx context.Context, userID int64) ([]model.TestSession, error)
}

// TestSessionHandler handles test submission and history.
type TestSessionHandler struct {
	sessionService TestSessionService
	log            zerolog.Logger
}

// NewTestSessionHandler creates a new TestSessionHandler.
func NewTestSessionHandler(sessionService TestSessionService, log zerolog.Logger) *TestSessionHandler {
	return &TestSessionHandler{
		sessionService: sessionService,
		log:            log.With().Str("component", "test_session_handler").Logger(),
	}
}

// Submit godoc
// POST /api/v1/test-sessions
// Grades a finished test and records the session with its answers.
func (h *TestSessionHandler) Submit(c *gin.Context) {
	var req model.SubmitTestSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.sessionService.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			// The transaction was rolled back; the stored bank is out of step
			// with what the client was served.
			h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("Answer references a missing question")
			response.Fail(c, http.StatusInternalServerError, response.ErrUnknownQuestion)
		case errors.Is(err, repository.ErrReferenceNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrUnknownRef)
		default:
			failInternal(c, h.log, err, "Test session submission failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// ListByUser godoc
// GET /api/v1/test-sessions?user_id=
func (h *TestSessionHandler) ListByUser(c *gin.Context) {
	userID, present, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}
	if !present {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"user_id": "user_id is a required field"})
		return
	}

	sessions, err := h.sessionService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		failInternal(c, h.log, err, "List test sessions failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}
