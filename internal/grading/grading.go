// Package grading scores submitted test answers against stored answer keys.
package grading

import (
	"context"
	"fmt"
)

// PassingScore is the minimum percentage that passes a test.
const PassingScore = 80

// SubmittedAnswer is one answer as sent by the test taker.
type SubmittedAnswer struct {
	QuestionID int64
	UserAnswer string
}

// Evaluation is the graded form of a SubmittedAnswer.
type Evaluation struct {
	QuestionID int64
	UserAnswer string
	IsCorrect  bool
}

// Result aggregates the evaluations of one grading call.
type Result struct {
	Evaluations    []Evaluation
	CorrectAnswers int
	TotalQuestions int
	Score          int
	Passed         bool
}

// AnswerLookup returns the stored correct answer of a question.
type AnswerLookup func(ctx context.Context, questionID int64) (string, error)

// Grade evaluates answers in submission order.
//
// An answer is correct only when it equals the stored value exactly; no
// trimming, case folding or partial credit is applied, multiple-answer
// questions included. The denominator is the number of submitted answers.
// The first lookup error aborts grading.
func Grade(ctx context.Context, answers []SubmittedAnswer, lookup AnswerLookup) (*Result, error) {
	res := &Result{
		Evaluations:    make([]Evaluation, 0, len(answers)),
		TotalQuestions: len(answers),
	}

	for _, a := range answers {
		correct, err := lookup(ctx, a.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("lookup answer for question %d: %w", a.QuestionID, err)
		}

		ok := a.UserAnswer == correct
		if ok {
			res.CorrectAnswers++
		}
		res.Evaluations = append(res.Evaluations, Evaluation{
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			IsCorrect:  ok,
		})
	}

	res.Score = Score(res.CorrectAnswers, res.TotalQuestions)
	res.Passed = Passed(res.Score)
	return res, nil
}

// Score returns floor(correct / total * 100), or 0 when total is 0.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return correct * 100 / total
}

// Passed reports whether score reaches PassingScore.
func Passed(score int) bool {
	return score >= PassingScore
}
