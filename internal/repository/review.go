package repository

import (
	"context"
	"fmt"

	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/repository/dao"
)

type ReviewStore interface {
	ListReviews(ctx context.Context) ([]dao.Review, error)
	InsertReview(ctx context.Context, review dao.Review) (dao.Review, error)
}

type ReviewRepository struct {
	store ReviewStore
}

func NewReviewRepository(store ReviewStore) *ReviewRepository {
	return &ReviewRepository{
		store: store,
	}
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	found, err := r.store.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListReviews -> %w", err)
	}

	reviews := make([]domain.Review, len(found))
	for i, review := range found {
		reviews[i] = r.daoToDomain(review)
	}

	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	created, err := r.store.InsertReview(ctx, dao.Review{
		ID:           review.ID,
		SubmissionID: review.SubmissionID,
		Score:        review.Score,
		Feedback:     review.Feedback,
		JudgeEmail:   review.JudgeEmail,
		JudgeName:    review.JudgeName,
		CreatedAt:    review.CreatedAt,
	})
	if err != nil {
		return domain.Review{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *ReviewRepository) daoToDomain(v dao.Review) domain.Review {
	return domain.Review{
		ID:           v.ID,
		SubmissionID: v.SubmissionID,
		Score:        v.Score,
		Feedback:     v.Feedback,
		JudgeEmail:   v.JudgeEmail,
		JudgeName:    v.JudgeName,
		CreatedAt:    v.CreatedAt,
	}
}
