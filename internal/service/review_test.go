package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackboard/hackboard-api/internal/domain"
)

func newReviewFixture(t *testing.T) (*ReviewService, *fakeReviewRepo) {
	t.Helper()

	eventRepo := newFakeEventRepo(domain.Event{
		ID:               "ev1",
		Code:             "CODE22",
		AuthorizedJudges: []string{"judge@example.com"},
	})
	submissionRepo := &fakeSubmissionRepo{submissions: []domain.Submission{
		{ID: "sub1", EventID: "ev1", Title: "Entry"},
	}}
	reviewRepo := &fakeReviewRepo{}

	return NewReviewService(reviewRepo, submissionRepo, eventRepo), reviewRepo
}

func TestCreateReview_AuthorizedJudge(t *testing.T) {
	svc, repo := newReviewFixture(t)

	created, err := svc.CreateReview(context.Background(), domain.Review{
		SubmissionID: "sub1",
		Score:        7.5,
		JudgeEmail:   "Judge@Example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, repo.reviews, 1)
}

func TestCreateReview_UnauthorizedJudge(t *testing.T) {
	svc, repo := newReviewFixture(t)

	_, err := svc.CreateReview(context.Background(), domain.Review{
		SubmissionID: "sub1",
		Score:        5,
		JudgeEmail:   "impostor@example.com",
	})

	assert.ErrorIs(t, err, ErrJudgeNotAuthorized)
	assert.Empty(t, repo.reviews)
}

func TestCreateReview_UnknownSubmission(t *testing.T) {
	svc, _ := newReviewFixture(t)

	_, err := svc.CreateReview(context.Background(), domain.Review{
		SubmissionID: "missing",
		Score:        5,
		JudgeEmail:   "judge@example.com",
	})

	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestCreateReview_ScoreRange(t *testing.T) {
	svc, _ := newReviewFixture(t)

	tests := []struct {
		name    string
		score   float64
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 10, false},
		{"negative", -0.1, true},
		{"too high", 10.5, true},
		{"NaN", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReview(context.Background(), domain.Review{
				SubmissionID: "sub1",
				Score:        tt.score,
				JudgeEmail:   "judge@example.com",
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrScoreOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateReview_DuplicateJudgeAllowed(t *testing.T) {
	svc, repo := newReviewFixture(t)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateReview(context.Background(), domain.Review{
			SubmissionID: "sub1",
			Score:        6,
			JudgeEmail:   "judge@example.com",
		})
		require.NoError(t, err)
	}

	assert.Len(t, repo.reviews, 2)
}

func TestCreateSubmission_RequiresEvent(t *testing.T) {
	eventRepo := newFakeEventRepo(domain.Event{ID: "ev1"})
	svc := NewSubmissionService(&fakeSubmissionRepo{}, eventRepo)

	created, err := svc.CreateSubmission(context.Background(), domain.Submission{
		EventID: "ev1",
		Title:   "Entry",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = svc.CreateSubmission(context.Background(), domain.Submission{
		EventID: "missing",
		Title:   "Orphan",
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}
