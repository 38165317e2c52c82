package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateRegistrationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TeamName string `json:"teamName"`
}

func (req CreateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}
