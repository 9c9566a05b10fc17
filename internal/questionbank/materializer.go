package questionbank

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GeneratedAnswer is an answer option of a materialized question.
type GeneratedAnswer struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// GeneratedQuestion is a one-shot, response-ready instance of a template.
type GeneratedQuestion struct {
	ID          string            `json:"id"`
	Text        string            `json:"text"`
	Type        QuestionType      `json:"type"`
	Answers     []GeneratedAnswer `json:"answers"`
	Explanation string            `json:"explanation"`
	Points      int               `json:"points"`
}

// IDSource produces the random suffix of a question identifier.
type IDSource func() string

// UUIDSuffix returns the first 8 hex characters of a random UUID.
func UUIDSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Materialize turns templates into generated questions, preserving order.
// Question ids have the form q_<position>_<suffix> with a 1-based position,
// answer ids are <question id>_a<position>. Answer order is never shuffled.
func Materialize(templates []Template, next IDSource) []GeneratedQuestion {
	if next == nil {
		next = UUIDSuffix
	}

	out := make([]GeneratedQuestion, len(templates))
	for i, t := range templates {
		qid := fmt.Sprintf("q_%d_%s", i+1, next())

		answers := make([]GeneratedAnswer, len(t.Answers))
		for j, a := range t.Answers {
			answers[j] = GeneratedAnswer{
				ID:        fmt.Sprintf("%s_a%d", qid, j+1),
				Text:      a.Text,
				IsCorrect: a.Correct,
			}
		}

		points := t.Points
		if points <= 0 {
			points = 1
		}

		out[i] = GeneratedQuestion{
			ID:          qid,
			Text:        t.Text,
			Type:        t.Type,
			Answers:     answers,
			Explanation: t.Explanation,
			Points:      points,
		}
	}
	return out
}
