package model

// ProgramSummary is a training program with enrolment statistics.
type ProgramSummary struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Duration     string  `json:"duration"`
	PassingScore int     `json:"passingScore"`
	Students     int     `json:"students"`
	Progress     int     `json:"progress"`
}
