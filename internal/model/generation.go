package model

import "github.com/stemsi/safetrain-backend/internal/questionbank"

// GenerateTestRequest is the payload for generating test questions.
type GenerateTestRequest struct {
	Title         string `json:"title" binding:"required"`
	Category      string `json:"category"`
	Topic         string `json:"topic"`
	QuestionCount *int   `json:"questionCount" binding:"omitempty,max=1000"`
}

// GenerateTestResponse carries the generated questions.
type GenerateTestResponse struct {
	Questions []questionbank.GeneratedQuestion `json:"questions"`
	Message   string                           `json:"message"`
}

// GenerateInstructionRequest is the payload for LLM instruction generation.
type GenerateInstructionRequest struct {
	Type           string `json:"type" binding:"omitempty,oneof=iot job equipment"`
	Profession     string `json:"profession" binding:"required,notblank,max=255"`
	Industry       string `json:"industry" binding:"max=255"`
	AdditionalInfo string `json:"additional_info" binding:"max=4000"`
}

// GeneratedInstruction is the LLM-produced instruction draft.
type GeneratedInstruction struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Profession string `json:"profession"`
	Industry   string `json:"industry"`
	Type       string `json:"type"`
}
