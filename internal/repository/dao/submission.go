package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type SubmissionDAO struct {
	db *gorm.DB
}

func NewSubmissionDAO(db *gorm.DB) *SubmissionDAO {
	return &SubmissionDAO{
		db: db,
	}
}

func (d *SubmissionDAO) ListSubmissions(ctx context.Context, eventID string) ([]Submission, error) {
	query := d.db.WithContext(ctx).Order("created_at ASC")
	if eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}

	var submissions []Submission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

func (d *SubmissionDAO) FindSubmissionByID(ctx context.Context, id string) (Submission, error) {
	var submission Submission
	result := d.db.WithContext(ctx).Where("id = ?", id).First(&submission)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Submission{}, ErrSubmissionNotFound
		}

		return Submission{}, result.Error
	}

	return submission, nil
}

func (d *SubmissionDAO) InsertSubmission(ctx context.Context, submission Submission) (Submission, error) {
	row := map[string]any{
		"id":              submission.ID,
		"event_id":        submission.EventID,
		"team_name":       submission.TeamName,
		"submitter_email": submission.SubmitterEmail,
		"title":           submission.Title,
		"link":            submission.Link,
		"file_refs":       submission.FileRefs,
		"created_at":      submission.CreatedAt,
	}

	err := writeWithDriftRetry("submissions", row, requiredSubmissionColumns, func(payload map[string]any) error {
		return d.db.WithContext(ctx).Table("submissions").Create(&payload).Error
	})
	if err != nil {
		return Submission{}, err
	}

	return d.FindSubmissionByID(ctx, submission.ID)
}
