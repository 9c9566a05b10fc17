package model

import "time"

// InstructionStatus enumerates instruction lifecycle states.
type InstructionStatus string

const (
	InstructionStatusActive   InstructionStatus = "active"
	InstructionStatusArchived InstructionStatus = "archived"
)

// Instruction is a safety instruction document.
type Instruction struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	Industry    *string           `json:"industry"`
	Profession  *string           `json:"profession"`
	Content     string            `json:"content"`
	Status      InstructionStatus `json:"status"`
	CreatedBy   int64             `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	LastUpdated string            `json:"lastUpdated"`
}

// InstructionSummary is the catalog view of an instruction.
type InstructionSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Industry    *string `json:"industry"`
	Profession  *string `json:"profession"`
	LastUpdated string  `json:"lastUpdated"`
}

// InstructionFilter narrows the instruction catalog.
type InstructionFilter struct {
	Category string `form:"category" binding:"omitempty,max=100"`
	Industry string `form:"industry" binding:"omitempty,max=255"`
}

// CreateInstructionRequest is the payload for creating an instruction.
type CreateInstructionRequest struct {
	Title      string `json:"title" binding:"required,notblank,max=500"`
	Category   string `json:"category" binding:"required,notblank,max=100"`
	Industry   string `json:"industry" binding:"omitempty,max=255"`
	Profession string `json:"profession" binding:"omitempty,max=255"`
	Content    string `json:"content"`
	CreatedBy  int64  `json:"created_by" binding:"omitempty,min=1"`
}

// UpdateInstructionRequest is the payload for updating an instruction's text.
type UpdateInstructionRequest struct {
	Title   string `json:"title" binding:"required,notblank,max=500"`
	Content string `json:"content" binding:"required"`
}
