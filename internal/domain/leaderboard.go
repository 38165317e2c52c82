package domain

// LeaderboardEntry is one ranked submission. AvgScore is nil when the
// submission has no reviews yet; a nil average is not the same as zero.
type LeaderboardEntry struct {
	Submission  Submission `json:"submission"`
	AvgScore    *float64   `json:"avgScore"`
	ReviewCount int        `json:"reviewCount"`
}

type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`

	// OverallAverage is the mean over every individual matching review
	// score, so a submission with more reviews weighs proportionally more.
	OverallAverage *float64 `json:"overallAverage"`
	EvaluatedCount int      `json:"evaluatedCount"`
}
