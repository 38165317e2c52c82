package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hackboard/hackboard-api/internal/domain"
)

type RegistrationRepository interface {
	List(ctx context.Context, eventID string) ([]domain.Registration, error)
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
}

type RegistrationService struct {
	repo      RegistrationRepository
	eventRepo EventRepository
}

func NewRegistrationService(repo RegistrationRepository, eventRepo EventRepository) *RegistrationService {
	return &RegistrationService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *RegistrationService) ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	registrations, err := s.repo.List(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return registrations, nil
}

func (s *RegistrationService) CreateRegistration(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	if _, err := s.eventRepo.FindByID(ctx, registration.EventID); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return domain.Registration{}, ErrEventNotFound
		}

		return domain.Registration{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	registration.ID = uuid.NewString()
	registration.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, registration)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
