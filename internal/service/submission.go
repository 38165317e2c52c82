package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/repository"
)

var ErrSubmissionNotFound = repository.ErrSubmissionNotFound

type SubmissionRepository interface {
	List(ctx context.Context, eventID string) ([]domain.Submission, error)
	FindByID(ctx context.Context, id string) (domain.Submission, error)
	Create(ctx context.Context, submission domain.Submission) (domain.Submission, error)
}

type SubmissionService struct {
	repo      SubmissionRepository
	eventRepo EventRepository
}

func NewSubmissionService(repo SubmissionRepository, eventRepo EventRepository) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, eventID string) ([]domain.Submission, error) {
	submissions, err := s.repo.List(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return submissions, nil
}

func (s *SubmissionService) CreateSubmission(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	if _, err := s.eventRepo.FindByID(ctx, submission.EventID); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return domain.Submission{}, ErrEventNotFound
		}

		return domain.Submission{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	submission.ID = uuid.NewString()
	submission.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, submission)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
