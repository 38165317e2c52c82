package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateSubmissionRequest struct {
	EventID        string   `json:"eventId"`
	TeamName       string   `json:"teamName"`
	SubmitterEmail string   `json:"submitterEmail"`
	Title          string   `json:"title"`
	Link           string   `json:"link"`
	FileRefs       []string `json:"fileRefs"`
}

func (req CreateSubmissionRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.TeamName, validation.Required),
		validation.Field(&req.SubmitterEmail, validation.Required, is.Email),
		validation.Field(&req.Link, is.URL),
	)
}
