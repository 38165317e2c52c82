package repository

import (
	"context"
	"fmt"

	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/repository/dao"
)

type RegistrationStore interface {
	ListRegistrations(ctx context.Context, eventID string) ([]dao.Registration, error)
	InsertRegistration(ctx context.Context, registration dao.Registration) (dao.Registration, error)
}

type RegistrationRepository struct {
	store RegistrationStore
}

func NewRegistrationRepository(store RegistrationStore) *RegistrationRepository {
	return &RegistrationRepository{
		store: store,
	}
}

func (r *RegistrationRepository) List(ctx context.Context, eventID string) ([]domain.Registration, error) {
	found, err := r.store.ListRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListRegistrations -> %w", err)
	}

	registrations := make([]domain.Registration, len(found))
	for i, registration := range found {
		registrations[i] = r.daoToDomain(registration)
	}

	return registrations, nil
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.store.InsertRegistration(ctx, dao.Registration{
		ID:        registration.ID,
		EventID:   registration.EventID,
		Name:      registration.Name,
		Email:     registration.Email,
		TeamName:  registration.TeamName,
		CreatedAt: registration.CreatedAt,
	})
	if err != nil {
		return domain.Registration{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) daoToDomain(g dao.Registration) domain.Registration {
	return domain.Registration{
		ID:        g.ID,
		EventID:   g.EventID,
		Name:      g.Name,
		Email:     g.Email,
		TeamName:  g.TeamName,
		CreatedAt: g.CreatedAt,
	}
}
