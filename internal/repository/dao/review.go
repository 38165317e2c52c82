package dao

import (
	"context"

	"gorm.io/gorm"
)

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{
		db: db,
	}
}

func (d *ReviewDAO) ListReviews(ctx context.Context) ([]Review, error) {
	var reviews []Review
	if err := d.db.WithContext(ctx).Order("created_at ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (d *ReviewDAO) InsertReview(ctx context.Context, review Review) (Review, error) {
	row := map[string]any{
		"id":            review.ID,
		"submission_id": review.SubmissionID,
		"score":         review.Score,
		"feedback":      review.Feedback,
		"judge_email":   review.JudgeEmail,
		"judge_name":    review.JudgeName,
		"created_at":    review.CreatedAt,
	}

	err := writeWithDriftRetry("reviews", row, requiredReviewColumns, func(payload map[string]any) error {
		return d.db.WithContext(ctx).Table("reviews").Create(&payload).Error
	})
	if err != nil {
		return Review{}, err
	}

	return review, nil
}
