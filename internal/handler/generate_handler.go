package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/llm"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/response"
	"github.com/stemsi/safetrain-backend/internal/service"
	"github.com/stemsi/safetrain-backend/internal/validator"
)

// GenerateHandler serves test and instruction generation.
type GenerateHandler struct {
	testGenerator        *service.TestGeneratorService
	instructionGenerator *service.InstructionGeneratorService
	log                  zerolog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(
	testGenerator *service.TestGeneratorService,
	instructionGenerator *service.InstructionGeneratorService,
	log zerolog.Logger,
) *GenerateHandler {
	return &GenerateHandler{
		testGenerator:        testGenerator,
		instructionGenerator: instructionGenerator,
		log:                  log.With().Str("component", "generate_handler").Logger(),
	}
}

// GenerateTest godoc
// POST /api/v1/generate/test
// Draws questions from the question bank for a one-shot test.
func (h *GenerateHandler) GenerateTest(c *gin.Context) {
	var req model.GenerateTestRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.Success(c, http.StatusOK, h.testGenerator.Generate(req))
}

// GenerateInstruction godoc
// POST /api/v1/generate/instruction
// Drafts a safety instruction with the configured LLM.
func (h *GenerateHandler) GenerateInstruction(c *gin.Context) {
	var req model.GenerateInstructionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	draft, err := h.instructionGenerator.Generate(c.Request.Context(), req)
	if err != nil {
		var upstream *llm.UpstreamError
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			response.Fail(c, http.StatusServiceUnavailable, response.ErrGenerationUnavailable)
		case errors.As(err, &upstream):
			h.log.Warn().Err(err).Str("profession", req.Profession).Msg("Instruction generation failed")
			response.Fail(c, http.StatusBadGateway, response.ErrUpstream)
		default:
			failInternal(c, h.log, err, "Instruction generation failed")
		}
		return
	}

	response.Success(c, http.StatusOK, draft)
}
