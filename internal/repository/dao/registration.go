package dao

import (
	"context"

	"gorm.io/gorm"
)

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) ListRegistrations(ctx context.Context, eventID string) ([]Registration, error) {
	query := d.db.WithContext(ctx).Order("created_at ASC")
	if eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}

	var registrations []Registration
	if err := query.Find(&registrations).Error; err != nil {
		return nil, err
	}

	return registrations, nil
}

func (d *RegistrationDAO) InsertRegistration(ctx context.Context, registration Registration) (Registration, error) {
	row := map[string]any{
		"id":         registration.ID,
		"event_id":   registration.EventID,
		"name":       registration.Name,
		"email":      registration.Email,
		"team_name":  registration.TeamName,
		"created_at": registration.CreatedAt,
	}

	err := writeWithDriftRetry("registrations", row, requiredRegistrationColumns, func(payload map[string]any) error {
		return d.db.WithContext(ctx).Table("registrations").Create(&payload).Error
	})
	if err != nil {
		return Registration{}, err
	}

	return registration, nil
}
