package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/model"
)

// Completer produces a JSON completion for a system and user prompt.
type Completer interface {
	IsAvailable() bool
	CompleteJSON(ctx context.Context, system, user string, out any) error
}

const instructionSystemPrompt = "You are an occupational safety expert who writes workplace instructions " +
	"that comply with current labour protection regulations. Respond with a JSON object only."

var instructionTypeLabels = map[string]string{
	"iot":       "occupational safety instruction",
	"job":       "job description",
	"equipment": "equipment operating instruction",
}

// InstructionGeneratorService drafts instructions with an LLM.
type InstructionGeneratorService struct {
	llm Completer
	log zerolog.Logger
}

// NewInstructionGeneratorService creates a new InstructionGeneratorService.
func NewInstructionGeneratorService(llm Completer, log zerolog.Logger) *InstructionGeneratorService {
	return &InstructionGeneratorService{
		llm: llm,
		log: log.With().Str("component", "instruction_generator_service").Logger(),
	}
}

// IsAvailable reports whether generation is configured.
func (s *InstructionGeneratorService) IsAvailable() bool {
	return s.llm.IsAvailable()
}

// Generate asks the model for a draft. Missing title or content in the
// answer fall back to a generic title and empty content.
func (s *InstructionGeneratorService) Generate(ctx context.Context, req model.GenerateInstructionRequest) (*model.GeneratedInstruction, error) {
	kind := req.Type
	if kind == "" {
		kind = "iot"
	}

	var draft struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := s.llm.CompleteJSON(ctx, instructionSystemPrompt, buildInstructionPrompt(kind, req), &draft); err != nil {
		return nil, err
	}

	if strings.TrimSpace(draft.Title) == "" {
		draft.Title = "Instruction for " + req.Profession
	}

	s.log.Info().
		Str("type", kind).
		Str("profession", req.Profession).
		Int("content_len", len(draft.Content)).
		Msg("Instruction generated")

	return &model.GeneratedInstruction{
		Title:      draft.Title,
		Content:    draft.Content,
		Profession: req.Profession,
		Industry:   req.Industry,
		Type:       kind,
	}, nil
}

func buildInstructionPrompt(kind string, req model.GenerateInstructionRequest) string {
	label, ok := instructionTypeLabels[kind]
	if !ok {
		label = "instruction"
	}
	extra := req.AdditionalInfo
	if extra == "" {
		extra = "Not specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a detailed %s for the profession %q in the %q industry.\n\n", label, req.Profession, req.Industry)
	fmt.Fprintf(&b, "Additional information: %s\n\n", extra)
	b.WriteString("The instruction must contain these sections:\n")
	b.WriteString("1. General provisions\n")
	b.WriteString("2. Safety requirements before starting work\n")
	b.WriteString("3. Safety requirements during work\n")
	b.WriteString("4. Safety requirements in emergencies\n")
	b.WriteString("5. Safety requirements after finishing work\n\n")
	b.WriteString("Keep it specific and practical, cover the main risks and protective measures, ")
	b.WriteString("and use plain professional language.\n\n")
	b.WriteString(`Answer format: a JSON object with the fields "title" and "content".`)
	return b.String()
}
