package domain

import "time"

type Submission struct {
	ID             string    `json:"id"`
	EventID        string    `json:"eventId"`
	TeamName       string    `json:"teamName"`
	SubmitterEmail string    `json:"submitterEmail"`
	Title          string    `json:"title"`
	Link           string    `json:"link"`
	FileRefs       []string  `json:"fileRefs"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Review struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submissionId"`
	Score        float64   `json:"score"`
	Feedback     string    `json:"feedback"`
	JudgeEmail   string    `json:"judgeEmail"`
	JudgeName    string    `json:"judgeName"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TeamName  string    `json:"teamName"`
	CreatedAt time.Time `json:"createdAt"`
}
