package service

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/model"
	"github.com/stemsi/safetrain-backend/internal/questionbank"
)

// DefaultQuestionCount is used when a generate request omits questionCount.
const DefaultQuestionCount = 10

// DefaultCategory is used when a generate request omits category.
const DefaultCategory = "iot"

// TestGeneratorService builds one-shot tests from the question bank.
type TestGeneratorService struct {
	gen *questionbank.Generator
	log zerolog.Logger
}

// NewTestGeneratorService creates a new TestGeneratorService.
func NewTestGeneratorService(gen *questionbank.Generator, log zerolog.Logger) *TestGeneratorService {
	return &TestGeneratorService{
		gen: gen,
		log: log.With().Str("component", "test_generator_service").Logger(),
	}
}

// Generate applies request defaults and draws the questions.
func (s *TestGeneratorService) Generate(req model.GenerateTestRequest) *model.GenerateTestResponse {
	category := req.Category
	if category == "" {
		category = DefaultCategory
	}
	topic := questionbank.Topic(req.Topic)
	if topic == "" {
		topic = questionbank.DefaultTopic
	}
	count := DefaultQuestionCount
	if req.QuestionCount != nil {
		count = *req.QuestionCount
	}

	questions := s.gen.Generate(topic, count)

	s.log.Debug().
		Str("title", req.Title).
		Str("category", CategoryLabel(category, topic)).
		Str("topic", string(topic)).
		Int("requested", count).
		Int("generated", len(questions)).
		Msg("Test generated")

	return &model.GenerateTestResponse{
		Questions: questions,
		Message:   fmt.Sprintf("Generated %d questions", len(questions)),
	}
}

// CategoryLabel describes what a test category is about. The topic
// category is described by the topic itself.
func CategoryLabel(category string, topic questionbank.Topic) string {
	switch category {
	case "iot":
		return "occupational safety instructions"
	case "job-instruction":
		return "job instructions"
	case "profession":
		return "professional knowledge"
	case "program":
		return "training programs"
	case "topic":
		return topic.Name()
	default:
		return "general knowledge"
	}
}
