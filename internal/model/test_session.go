package model

import "time"

// TestMode enumerates how a test was taken.
type TestMode string

const (
	TestModePractice TestMode = "practice"
	TestModeTraining TestMode = "training"
	TestModeExam     TestMode = "exam"
)

// TestSessionStatus enumerates test session states.
type TestSessionStatus string

const (
	TestSessionStatusCompleted TestSessionStatus = "completed"
)

// TestSession is one graded attempt of a user at an instruction's test.
type TestSession struct {
	ID               int64             `json:"id"`
	UserID           int64             `json:"user_id"`
	InstructionID    int64             `json:"instruction_id"`
	TestMode         TestMode          `json:"test_mode"`
	Status           TestSessionStatus `json:"status"`
	TotalQuestions   int               `json:"total_questions"`
	CorrectAnswers   int               `json:"correct_answers"`
	Score            int               `json:"score"`
	Passed           bool              `json:"passed"`
	TimeSpentSeconds int               `json:"time_spent_seconds"`
	CompletedAt      *time.Time        `json:"completed_at"`
}

// SubmittedAnswerRequest is one answer in a test submission.
type SubmittedAnswerRequest struct {
	QuestionID int64  `json:"question_id" binding:"required,min=1"`
	UserAnswer string `json:"user_answer" binding:"max=500"`
}

// SubmitTestSessionRequest is the payload for grading a finished test.
type SubmitTestSessionRequest struct {
	UserID           int64                    `json:"user_id" binding:"required,min=1"`
	InstructionID    int64                    `json:"instruction_id" binding:"required,min=1"`
	TestMode         string                   `json:"test_mode" binding:"omitempty,oneof=practice training exam"`
	Answers          []SubmittedAnswerRequest `json:"answers" binding:"dive"`
	TimeSpentSeconds int                      `json:"time_spent_seconds" binding:"min=0"`
}

// TestSessionResult is the grading outcome returned to the caller.
type TestSessionResult struct {
	SessionID      int64 `json:"session_id"`
	Score          int   `json:"score"`
	CorrectAnswers int   `json:"correct_answers"`
	TotalQuestions int   `json:"total_questions"`
	Passed         bool  `json:"passed"`
}
