package request

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateEventRequest struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Type                 string    `json:"type"`
	CreatorName          string    `json:"creatorName"`
	CreatorEmail         string    `json:"creatorEmail"`
	StartsAt             time.Time `json:"startsAt"`
	EndsAt               time.Time `json:"endsAt"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`
	Mode                 string    `json:"mode"`
	Venue                string    `json:"venue"`
	TeamSizeMin          int       `json:"teamSizeMin"`
	TeamSizeMax          int       `json:"teamSizeMax"`
	MaxParticipants      int       `json:"maxParticipants"`
	Themes               []string  `json:"themes"`
	Tracks               []string  `json:"tracks"`
	SubmissionGuidelines string    `json:"submissionGuidelines"`
	EvaluationCriteria   string    `json:"evaluationCriteria"`
	PrizeDetails         string    `json:"prizeDetails"`
	AuthorizedJudges     []string  `json:"authorizedJudges"`
	EventCode            string    `json:"eventCode"`
}

func (req CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.Type, validation.Required, validation.In("event", "hackathon")),
		validation.Field(&req.CreatorEmail, validation.Required, is.Email),
		validation.Field(&req.StartsAt, validation.Required),
		validation.Field(&req.EndsAt, validation.Required),
		validation.Field(&req.Mode, validation.In("online", "offline", "hybrid")),
		validation.Field(&req.TeamSizeMin, validation.Min(0)),
		validation.Field(&req.TeamSizeMax, validation.Min(0)),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
		validation.Field(&req.EventCode, validation.Length(4, 12)),
	)
	if err != nil {
		return err
	}

	if req.EndsAt.Before(req.StartsAt) {
		return fmt.Errorf("endsAt must not be before startsAt")
	}
	if req.TeamSizeMax > 0 && req.TeamSizeMin > req.TeamSizeMax {
		return fmt.Errorf("teamSizeMin must not exceed teamSizeMax")
	}
	return validateEmails("authorizedJudges", req.AuthorizedJudges)
}

// UpdateEventRequest carries a partial update. Nil fields are left
// untouched on the stored event.
type UpdateEventRequest struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	Type                 *string    `json:"type"`
	CreatorName          *string    `json:"creatorName"`
	CreatorEmail         *string    `json:"creatorEmail"`
	StartsAt             *time.Time `json:"startsAt"`
	EndsAt               *time.Time `json:"endsAt"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	Mode                 *string    `json:"mode"`
	Venue                *string    `json:"venue"`
	TeamSizeMin          *int       `json:"teamSizeMin"`
	TeamSizeMax          *int       `json:"teamSizeMax"`
	MaxParticipants      *int       `json:"maxParticipants"`
	Themes               *[]string  `json:"themes"`
	Tracks               *[]string  `json:"tracks"`
	SubmissionGuidelines *string    `json:"submissionGuidelines"`
	EvaluationCriteria   *string    `json:"evaluationCriteria"`
	PrizeDetails         *string    `json:"prizeDetails"`
	AuthorizedJudges     *[]string  `json:"authorizedJudges"`
}

func (req UpdateEventRequest) Validate() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Length(2, 120)),
		validation.Field(&req.Type, validation.In("event", "hackathon")),
		validation.Field(&req.CreatorEmail, is.Email),
		validation.Field(&req.Mode, validation.In("online", "offline", "hybrid")),
		validation.Field(&req.TeamSizeMin, validation.Min(0)),
		validation.Field(&req.TeamSizeMax, validation.Min(0)),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.AuthorizedJudges != nil {
		return validateEmails("authorizedJudges", *req.AuthorizedJudges)
	}
	return nil
}

// Fields flattens the request into the column-agnostic field map the
// store layer consumes. Only fields present in the payload appear.
func (req UpdateEventRequest) Fields() map[string]any {
	fields := make(map[string]any)

	setIf := func(key string, ok bool, value any) {
		if ok {
			fields[key] = value
		}
	}

	setIf("title", req.Title != nil, deref(req.Title))
	setIf("description", req.Description != nil, deref(req.Description))
	setIf("type", req.Type != nil, deref(req.Type))
	setIf("creatorName", req.CreatorName != nil, deref(req.CreatorName))
	setIf("creatorEmail", req.CreatorEmail != nil, deref(req.CreatorEmail))
	setIf("startsAt", req.StartsAt != nil, derefTime(req.StartsAt))
	setIf("endsAt", req.EndsAt != nil, derefTime(req.EndsAt))
	setIf("registrationDeadline", req.RegistrationDeadline != nil, derefTime(req.RegistrationDeadline))
	setIf("mode", req.Mode != nil, deref(req.Mode))
	setIf("venue", req.Venue != nil, deref(req.Venue))
	setIf("teamSizeMin", req.TeamSizeMin != nil, derefInt(req.TeamSizeMin))
	setIf("teamSizeMax", req.TeamSizeMax != nil, derefInt(req.TeamSizeMax))
	setIf("maxParticipants", req.MaxParticipants != nil, derefInt(req.MaxParticipants))
	setIf("themes", req.Themes != nil, derefList(req.Themes))
	setIf("tracks", req.Tracks != nil, derefList(req.Tracks))
	setIf("submissionGuidelines", req.SubmissionGuidelines != nil, deref(req.SubmissionGuidelines))
	setIf("evaluationCriteria", req.EvaluationCriteria != nil, deref(req.EvaluationCriteria))
	setIf("prizeDetails", req.PrizeDetails != nil, deref(req.PrizeDetails))
	setIf("authorizedJudges", req.AuthorizedJudges != nil, derefList(req.AuthorizedJudges))

	return fields
}

type CreateAnnouncementRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (req CreateAnnouncementRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Text, validation.Required, validation.Length(1, 2000)),
	)
}

type ValidateJudgeRequest struct {
	Email string `json:"email"`
}

func (req ValidateJudgeRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

func validateEmails(field string, emails []string) error {
	for _, email := range emails {
		if err := is.Email.Validate(email); err != nil {
			return fmt.Errorf("%s: %q is not a valid email", field, email)
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefTime(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}

func derefList(p *[]string) []string {
	if p == nil {
		return nil
	}
	return *p
}
