package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackboard/hackboard-api/internal/domain"
)

func TestComputeLeaderboard_AveragesScores(t *testing.T) {
	submissions := []domain.Submission{
		{ID: "s1", Title: "Alpha"},
	}
	reviews := []domain.Review{
		{ID: "r1", SubmissionID: "s1", Score: 8},
		{ID: "r2", SubmissionID: "s1", Score: 6},
		{ID: "r3", SubmissionID: "s1", Score: 10},
	}

	board := ComputeLeaderboard(submissions, reviews)

	require.Len(t, board.Entries, 1)
	entry := board.Entries[0]
	require.NotNil(t, entry.AvgScore)
	assert.InDelta(t, 8.0, *entry.AvgScore, 1e-9)
	assert.Equal(t, 3, entry.ReviewCount)
	assert.Equal(t, 1, board.EvaluatedCount)
}

func TestComputeLeaderboard_Ordering(t *testing.T) {
	submissions := []domain.Submission{
		{ID: "low", Title: "Low score"},
		{ID: "none", Title: "Never reviewed"},
		{ID: "high", Title: "High score"},
	}
	reviews := []domain.Review{
		{SubmissionID: "low", Score: 1},
		{SubmissionID: "high", Score: 9},
	}

	board := ComputeLeaderboard(submissions, reviews)

	require.Len(t, board.Entries, 3)
	assert.Equal(t, "high", board.Entries[0].Submission.ID)
	assert.Equal(t, "low", board.Entries[1].Submission.ID)

	// Even a score of 1 outranks an unreviewed submission.
	assert.Equal(t, "none", board.Entries[2].Submission.ID)
	assert.Nil(t, board.Entries[2].AvgScore)
}

func TestComputeLeaderboard_TieBrokenByReviewCount(t *testing.T) {
	submissions := []domain.Submission{
		{ID: "one-review"},
		{ID: "two-reviews"},
	}
	reviews := []domain.Review{
		{SubmissionID: "one-review", Score: 7},
		{SubmissionID: "two-reviews", Score: 7},
		{SubmissionID: "two-reviews", Score: 7},
	}

	board := ComputeLeaderboard(submissions, reviews)

	require.Len(t, board.Entries, 2)
	assert.Equal(t, "two-reviews", board.Entries[0].Submission.ID)
	assert.Equal(t, "one-review", board.Entries[1].Submission.ID)
}

func TestComputeLeaderboard_IgnoresForeignReviews(t *testing.T) {
	submissions := []domain.Submission{
		{ID: "s1"},
	}
	reviews := []domain.Review{
		{SubmissionID: "s1", Score: 5},
		{SubmissionID: "other-event", Score: 10},
	}

	board := ComputeLeaderboard(submissions, reviews)

	require.Len(t, board.Entries, 1)
	require.NotNil(t, board.Entries[0].AvgScore)
	assert.InDelta(t, 5.0, *board.Entries[0].AvgScore, 1e-9)

	// The overall average counts member reviews only.
	require.NotNil(t, board.OverallAverage)
	assert.InDelta(t, 5.0, *board.OverallAverage, 1e-9)
}

func TestComputeLeaderboard_OverallAverage(t *testing.T) {
	submissions := []domain.Submission{
		{ID: "s1"},
		{ID: "s2"},
		{ID: "s3"},
	}
	reviews := []domain.Review{
		{SubmissionID: "s1", Score: 10},
		{SubmissionID: "s1", Score: 8},
		{SubmissionID: "s2", Score: 3},
	}

	board := ComputeLeaderboard(submissions, reviews)

	// Overall average is over individual scores, not per-entry averages.
	require.NotNil(t, board.OverallAverage)
	assert.InDelta(t, 7.0, *board.OverallAverage, 1e-9)
	assert.Equal(t, 2, board.EvaluatedCount)
}

func TestComputeLeaderboard_Empty(t *testing.T) {
	board := ComputeLeaderboard(nil, nil)

	assert.Empty(t, board.Entries)
	assert.Nil(t, board.OverallAverage)
	assert.Zero(t, board.EvaluatedCount)
}
