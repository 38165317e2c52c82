package domain

import "time"

type EventType string

const (
	EventTypeGeneric   EventType = "event"
	EventTypeHackathon EventType = "hackathon"
)

type EventMode string

const (
	EventModeOnline  EventMode = "online"
	EventModeOffline EventMode = "offline"
	EventModeHybrid  EventMode = "hybrid"
)

type Event struct {
	ID   string `json:"id"`
	Code string `json:"eventCode"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`

	CreatorName  string `json:"creatorName"`
	CreatorEmail string `json:"creatorEmail"`

	StartsAt             time.Time `json:"startsAt"`
	EndsAt               time.Time `json:"endsAt"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`

	Mode  EventMode `json:"mode"`
	Venue string    `json:"venue"`

	TeamSizeMin     int `json:"teamSizeMin"`
	TeamSizeMax     int `json:"teamSizeMax"`
	MaxParticipants int `json:"maxParticipants"`

	Themes []string `json:"themes"`
	Tracks []string `json:"tracks"`

	SubmissionGuidelines string `json:"submissionGuidelines"`
	EvaluationCriteria   string `json:"evaluationCriteria"`
	PrizeDetails         string `json:"prizeDetails"`

	// AuthorizedJudges is the only gate on judge access. An empty list
	// authorizes nobody.
	AuthorizedJudges []string `json:"authorizedJudges"`

	Announcements []Announcement `json:"announcements"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Announcement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
