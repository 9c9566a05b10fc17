package model

import "time"

// AssignmentStatus enumerates assignment states.
type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "assigned"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

// Assignment links a user to a training program.
type Assignment struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"user_id"`
	ProgramID  int64            `json:"program_id"`
	AssignedBy int64            `json:"assigned_by"`
	Deadline   *time.Time       `json:"deadline"`
	Status     AssignmentStatus `json:"status"`
}

// UserAssignment is a listener's own view of an assignment.
type UserAssignment struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Deadline *string          `json:"deadline"`
	Status   AssignmentStatus `json:"status"`
	Progress int              `json:"progress"`
}

// AssignmentOverview is the administrator's view of an assignment.
type AssignmentOverview struct {
	ID           int64            `json:"id"`
	StudentName  string           `json:"studentName"`
	ProgramTitle string           `json:"programTitle"`
	Deadline     *string          `json:"deadline"`
	Status       AssignmentStatus `json:"status"`
}

// CreateAssignmentRequest is the payload for assigning a program to a user.
type CreateAssignmentRequest struct {
	UserID     int64  `json:"user_id" binding:"required,min=1"`
	ProgramID  int64  `json:"program_id" binding:"required,min=1"`
	AssignedBy int64  `json:"assigned_by" binding:"omitempty,min=1"`
	Deadline   string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}
