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

// InstructionHandler handles the instruction catalog and stored tests.
type InstructionHandler struct {
	instructionService *service.InstructionService
	log                zerolog.Logger
}

// NewInstructionHandler creates a new InstructionHandler.
func NewInstructionHandler(instructionService *service.InstructionService, log zerolog.Logger) *InstructionHandler {
	return &InstructionHandler{
		instructionService: instructionService,
		log:                log.With().Str("component", "instruction_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/instructions?category=&industry=
func (h *InstructionHandler) List(c *gin.Context) {
	var filter model.InstructionFilter
	if fields := validator.BindQuery(c, &filter); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	list, err := h.instructionService.List(c.Request.Context(), filter)
	if err != nil {
		failInternal(c, h.log, err, "List instructions failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"instructions": list})
}

// Get godoc
// GET /api/v1/instructions/:id
func (h *InstructionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	in, err := h.instructionService.Get(c.Request.Context(), id)
	if err != nil {
		h.failLookup(c, err, "Get instruction failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"instruction": in})
}

// Create godoc
// POST /api/v1/instructions
func (h *InstructionHandler) Create(c *gin.Context) {
	var req model.CreateInstructionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	in, err := h.instructionService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownRef)
			return
		}
		failInternal(c, h.log, err, "Create instruction failed")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": in.ID, "message": "Instruction created"})
}

// Update godoc
// PUT /api/v1/instructions/:id
func (h *InstructionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateInstructionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.instructionService.Update(c.Request.Context(), id, req); err != nil {
		h.failLookup(c, err, "Update instruction failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Instruction updated"})
}

// Questions godoc
// GET /api/v1/instructions/:id/questions
func (h *InstructionHandler) Questions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	questions, err := h.instructionService.Questions(c.Request.Context(), id)
	if err != nil {
		h.failLookup(c, err, "List test questions failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// ReplaceQuestions godoc
// PUT /api/v1/instructions/:id/questions
// Replaces every stored test question of the instruction.
func (h *InstructionHandler) ReplaceQuestions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.ReplaceTestQuestionsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questions, err := h.instructionService.ReplaceQuestions(c.Request.Context(), id, req.Questions)
	if err != nil {
		h.failLookup(c, err, "Replace test questions failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

func (h *InstructionHandler) failLookup(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrInstructionNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	failInternal(c, h.log, err, msg)
}
