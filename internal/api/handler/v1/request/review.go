package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateReviewRequest struct {
	SubmissionID string  `json:"submissionId"`
	Score        float64 `json:"score"`
	Feedback     string  `json:"feedback"`
	JudgeEmail   string  `json:"judgeEmail"`
	JudgeName    string  `json:"judgeName"`
}

func (req CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.SubmissionID, validation.Required),
		validation.Field(&req.JudgeEmail, validation.Required, is.Email),
		validation.Field(&req.Score, validation.Min(0.0), validation.Max(10.0)),
	)
}
