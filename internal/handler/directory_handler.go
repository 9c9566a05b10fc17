package handler

import (
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

// DirectoryHandler serves users, training programs and assignments.
type DirectoryHandler struct {
	userService       *service.UserService
	programService    *service.ProgramService
	assignmentService *service.AssignmentService
	log               zerolog.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(
	userService *service.UserService,
	programService *service.ProgramService,
	assignmentService *service.AssignmentService,
	log zerolog.Logger,
) *DirectoryHandler {
	return &DirectoryHandler{
		userService:       userService,
		programService:    programService,
		assignmentService: assignmentService,
		log:               log.With().Str("component", "directory_handler").Logger(),
	}
}

// ListUsers godoc
// GET /api/v1/users?role=
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context(), c.Query("role"))
	if err != nil {
		failInternal(c, h.log, err, "List users failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ListPrograms godoc
// GET /api/v1/programs
func (h *DirectoryHandler) ListPrograms(c *gin.Context) {
	programs, err := h.programService.List(c.Request.Context())
	if err != nil {
		failInternal(c, h.log, err, "List programs failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"programs": programs})
}

// ListAssignments godoc
// GET /api/v1/assignments?user_id=
// With user_id returns that user's assignments, otherwise all of them.
func (h *DirectoryHandler) ListAssignments(c *gin.Context) {
	userID, present, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if present {
		list, err := h.assignmentService.ListForUser(ctx, userID)
		if err != nil {
			failInternal(c, h.log, err, "List user assignments failed")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"assignments": list})
		return
	}

	list, err := h.assignmentService.ListAll(ctx)
	if err != nil {
		failInternal(c, h.log, err, "List assignments failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignments": list})
}

// CreateAssignment godoc
// POST /api/v1/assignments
func (h *DirectoryHandler) CreateAssignment(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.assignmentService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownRef)
			return
		}
		failInternal(c, h.log, err, "Create assignment failed")
		return
	}

	response.Success(c, http.StatusCreated, created)
}
