package model

import "time"

// Activity log actions.
const (
	ActionCreatedInstruction = "Created instruction"
	ActionTrainingAssigned   = "Training assigned"
	ActionPassedTest         = "Passed test"
	ActionFailedTest         = "Failed test"
)

// ActivityEntry is a single audit record.
type ActivityEntry struct {
	ID        int64     `json:"id,omitempty"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityView is the feed representation of an activity entry.
type ActivityView struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Action   string `json:"action"`
	Subject  string `json:"subject"`
	Time     string `json:"time"`
}

// ActivityQuery is the query string of the activity feed.
type ActivityQuery struct {
	Limit int `form:"limit"`
}
