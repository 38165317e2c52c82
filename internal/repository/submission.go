package repository

import (
	"context"
	"fmt"

	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/repository/dao"
)

var ErrSubmissionNotFound = dao.ErrSubmissionNotFound

type SubmissionStore interface {
	ListSubmissions(ctx context.Context, eventID string) ([]dao.Submission, error)
	FindSubmissionByID(ctx context.Context, id string) (dao.Submission, error)
	InsertSubmission(ctx context.Context, submission dao.Submission) (dao.Submission, error)
}

type SubmissionRepository struct {
	store SubmissionStore
}

func NewSubmissionRepository(store SubmissionStore) *SubmissionRepository {
	return &SubmissionRepository{
		store: store,
	}
}

func (r *SubmissionRepository) List(ctx context.Context, eventID string) ([]domain.Submission, error) {
	found, err := r.store.ListSubmissions(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListSubmissions -> %w", err)
	}

	submissions := make([]domain.Submission, len(found))
	for i, submission := range found {
		submissions[i] = r.daoToDomain(submission)
	}

	return submissions, nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (domain.Submission, error) {
	found, err := r.store.FindSubmissionByID(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *SubmissionRepository) Create(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	created, err := r.store.InsertSubmission(ctx, dao.Submission{
		ID:             submission.ID,
		EventID:        submission.EventID,
		TeamName:       submission.TeamName,
		SubmitterEmail: submission.SubmitterEmail,
		Title:          submission.Title,
		Link:           submission.Link,
		FileRefs:       dao.StringList(submission.FileRefs),
		CreatedAt:      submission.CreatedAt,
	})
	if err != nil {
		return domain.Submission{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *SubmissionRepository) daoToDomain(s dao.Submission) domain.Submission {
	return domain.Submission{
		ID:             s.ID,
		EventID:        s.EventID,
		TeamName:       s.TeamName,
		SubmitterEmail: s.SubmitterEmail,
		Title:          s.Title,
		Link:           s.Link,
		FileRefs:       []string(s.FileRefs),
		CreatedAt:      s.CreatedAt,
	}
}
