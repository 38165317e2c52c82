package response

// ValidateJudgeResponse acknowledges a successful judge authorization
// check.
type ValidateJudgeResponse struct {
	OK bool `json:"ok"`
}

// JudgesResponse wraps the judge listing.
type JudgesResponse struct {
	Judges any `json:"judges"`
}
