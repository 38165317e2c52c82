package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/repository"
)

var (
	ErrEventNotFound        = repository.ErrEventNotFound
	ErrEventCodeExists      = repository.ErrEventCodeExists
	ErrAnnouncementNotFound = repository.ErrAnnouncementNotFound

	ErrJudgeNotAuthorized = errors.New("email is not an authorized judge for this event")
)

type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (domain.Event, error)
	FindByCode(ctx context.Context, code string) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, id string, fields map[string]any) (domain.Event, error)
	Delete(ctx context.Context, id string) (domain.Event, error)
	AddAnnouncement(ctx context.Context, eventID string, announcement domain.Announcement) (domain.Announcement, error)
	RemoveAnnouncement(ctx context.Context, eventID, announcementID string) error
}

type EventService struct {
	repo           EventRepository
	submissionRepo SubmissionRepository
	reviewRepo     ReviewRepository
}

func NewEventService(repo EventRepository, submissionRepo SubmissionRepository, reviewRepo ReviewRepository) *EventService {
	return &EventService{
		repo:           repo,
		submissionRepo: submissionRepo,
		reviewRepo:     reviewRepo,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return events, nil
}

// GetEvent accepts either the internal id or the public event code.
func (s *EventService) GetEvent(ctx context.Context, idOrCode string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, idOrCode)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, ErrEventNotFound) {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event, err = s.repo.FindByCode(ctx, idOrCode)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	now := time.Now().UTC()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now
	event.Announcements = nil

	if event.Code == "" {
		code, err := s.assignUniqueCode(ctx)
		if err != nil {
			return domain.Event{}, err
		}
		event.Code = code
	} else if _, err := s.repo.FindByCode(ctx, event.Code); err == nil {
		return domain.Event{}, ErrEventCodeExists
	} else if !errors.Is(err, ErrEventNotFound) {
		return domain.Event{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// assignUniqueCode generates codes until one is free of collisions. The
// check-then-insert window is an accepted race: collisions among 6-char
// codes at human event volumes are rare, and the store's unique index is
// the final arbiter.
func (s *EventService) assignUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateEventCode()
		if err != nil {
			return "", err
		}

		_, err = s.repo.FindByCode(ctx, code)
		if errors.Is(err, ErrEventNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("s.repo.FindByCode -> %w", err)
		}
	}

	return "", ErrCodeExhausted
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, fields map[string]any) (domain.Event, error) {
	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) (domain.Event, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return removed, nil
}

func (s *EventService) AddAnnouncement(ctx context.Context, eventID, text, author string) (domain.Announcement, error) {
	announcement := domain.Announcement{
		ID:        uuid.NewString(),
		Text:      text,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.AddAnnouncement(ctx, eventID, announcement)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return domain.Announcement{}, ErrEventNotFound
		}

		return domain.Announcement{}, fmt.Errorf("s.repo.AddAnnouncement -> %w", err)
	}

	return created, nil
}

func (s *EventService) RemoveAnnouncement(ctx context.Context, eventID, announcementID string) error {
	err := s.repo.RemoveAnnouncement(ctx, eventID, announcementID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) || errors.Is(err, ErrAnnouncementNotFound) {
			return err
		}

		return fmt.Errorf("s.repo.RemoveAnnouncement -> %w", err)
	}

	return nil
}

// ValidateJudge checks whether email may evaluate the event. Unknown
// events surface ErrEventNotFound; a known event with an unauthorized
// email surfaces ErrJudgeNotAuthorized.
func (s *EventService) ValidateJudge(ctx context.Context, idOrCode, email string) error {
	event, err := s.GetEvent(ctx, idOrCode)
	if err != nil {
		return err
	}

	if !IsAuthorizedJudge(event, email) {
		return ErrJudgeNotAuthorized
	}

	return nil
}

// IsAuthorizedJudge reports whether email appears in the event's
// authorized-judges list, case-insensitively. An event with an empty list
// authorizes nobody.
func IsAuthorizedJudge(event domain.Event, email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}

	for _, judge := range event.AuthorizedJudges {
		if strings.ToLower(strings.TrimSpace(judge)) == email {
			return true
		}
	}

	return false
}

// GetLeaderboard recomputes the ranking for one event from its current
// submissions and reviews.
func (s *EventService) GetLeaderboard(ctx context.Context, idOrCode string) (domain.Leaderboard, error) {
	event, err := s.GetEvent(ctx, idOrCode)
	if err != nil {
		return domain.Leaderboard{}, err
	}

	submissions, err := s.submissionRepo.List(ctx, event.ID)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.submissionRepo.List -> %w", err)
	}

	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.reviewRepo.List -> %w", err)
	}

	return ComputeLeaderboard(submissions, reviews), nil
}
