package model

import "strconv"

// TestQuestion is a stored four-option question attached to an instruction.
type TestQuestion struct {
	ID            int64  `json:"id"`
	InstructionID int64  `json:"instruction_id"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

// TestQuestionView is the client-facing shape of a stored question.
type TestQuestionView struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// View converts a stored question to its client-facing shape.
func (q TestQuestion) View() TestQuestionView {
	return TestQuestionView{
		ID:            strconv.FormatInt(q.ID, 10),
		Question:      q.Question,
		Options:       []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD},
		CorrectAnswer: q.CorrectAnswer,
	}
}

// TestQuestionInput is one question in a replace payload.
type TestQuestionInput struct {
	Question      string   `json:"question" binding:"required,min=1,max=2000"`
	Options       []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required,max=500"`
}

// ReplaceTestQuestionsRequest is the payload for bulk replacing an instruction's questions.
type ReplaceTestQuestionsRequest struct {
	Questions []TestQuestionInput `json:"questions" binding:"dive"`
}
