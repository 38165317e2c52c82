package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/hackboard/hackboard-api/internal/domain"
)

// ErrScoreOutOfRange rejects scores outside [0, 10] or non-finite values.
// The range is enforced server-side; clients are not trusted.
var ErrScoreOutOfRange = errors.New("score must be a finite number between 0 and 10")

const (
	minScore = 0
	maxScore = 10
)

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review domain.Review) (domain.Review, error)
}

type ReviewService struct {
	repo           ReviewRepository
	submissionRepo SubmissionRepository
	eventRepo      EventRepository
}

func NewReviewService(repo ReviewRepository, submissionRepo SubmissionRepository, eventRepo EventRepository) *ReviewService {
	return &ReviewService{
		repo:           repo,
		submissionRepo: submissionRepo,
		eventRepo:      eventRepo,
	}
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return reviews, nil
}

// CreateReview persists one judge's evaluation. The judge gate is enforced
// here on the write path, not just on the validate endpoint: the review's
// judge email must be on the submission's event authorized-judges list.
//
// A judge may review the same submission more than once; all of their
// reviews are kept and averaged by the leaderboard.
func (s *ReviewService) CreateReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	if math.IsNaN(review.Score) || math.IsInf(review.Score, 0) ||
		review.Score < minScore || review.Score > maxScore {
		return domain.Review{}, ErrScoreOutOfRange
	}

	submission, err := s.submissionRepo.FindByID(ctx, review.SubmissionID)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			return domain.Review{}, ErrSubmissionNotFound
		}

		return domain.Review{}, fmt.Errorf("s.submissionRepo.FindByID -> %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, submission.EventID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if !IsAuthorizedJudge(event, review.JudgeEmail) {
		return domain.Review{}, ErrJudgeNotAuthorized
	}

	review.ID = uuid.NewString()
	review.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
