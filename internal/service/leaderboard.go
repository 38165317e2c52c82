package service

import (
	"sort"

	"github.com/hackboard/hackboard-api/internal/domain"
)

// ComputeLeaderboard derives a ranked leaderboard from raw submissions and
// reviews. It is a pure function: no caching, recomputed on every read.
//
// Reviews referencing submissions outside the given set are ignored. A
// submission with no reviews gets a nil average and always ranks below
// every reviewed submission, no matter how low the reviewed scores are.
func ComputeLeaderboard(submissions []domain.Submission, reviews []domain.Review) domain.Leaderboard {
	type accumulator struct {
		sum   float64
		count int
	}

	// Index reviews by submission in one pass so the whole computation is
	// O(submissions + reviews).
	bySubmission := make(map[string]*accumulator, len(submissions))
	for _, submission := range submissions {
		bySubmission[submission.ID] = &accumulator{}
	}

	var (
		totalSum   float64
		totalCount int
	)
	for _, review := range reviews {
		acc, ok := bySubmission[review.SubmissionID]
		if !ok {
			continue
		}
		acc.sum += review.Score
		acc.count++
		totalSum += review.Score
		totalCount++
	}

	entries := make([]domain.LeaderboardEntry, len(submissions))
	evaluated := 0
	for i, submission := range submissions {
		acc := bySubmission[submission.ID]
		entry := domain.LeaderboardEntry{
			Submission:  submission,
			ReviewCount: acc.count,
		}
		if acc.count > 0 {
			avg := acc.sum / float64(acc.count)
			entry.AvgScore = &avg
			evaluated++
		}
		entries[i] = entry
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.AvgScore != nil && b.AvgScore == nil:
			return true
		case a.AvgScore == nil && b.AvgScore != nil:
			return false
		case a.AvgScore != nil && b.AvgScore != nil && *a.AvgScore != *b.AvgScore:
			return *a.AvgScore > *b.AvgScore
		default:
			return a.ReviewCount > b.ReviewCount
		}
	})

	board := domain.Leaderboard{
		Entries:        entries,
		EvaluatedCount: evaluated,
	}
	if totalCount > 0 {
		overall := totalSum / float64(totalCount)
		board.OverallAverage = &overall
	}

	return board
}
