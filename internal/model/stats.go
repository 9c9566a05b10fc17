package model

// Stats is the platform-wide dashboard summary.
type Stats struct {
	ActiveStudents    int `json:"activeStudents"`
	CompletedTests    int `json:"completedTests"`
	AvgScore          int `json:"avgScore"`
	TotalInstructions int `json:"totalInstructions"`
}
