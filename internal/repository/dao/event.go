package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	result := d.db.WithContext(ctx).
		Preload("Announcements").
		Order("created_at DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindEventByID(ctx context.Context, id string) (Event, error) {
	var event Event
	result := d.db.WithContext(ctx).
		Preload("Announcements").
		Where("id = ?", id).
		First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindEventByCode(ctx context.Context, code string) (Event, error) {
	var event Event
	result := d.db.WithContext(ctx).
		Preload("Announcements").
		Where("LOWER(event_code) = ?", strings.ToLower(code)).
		First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) InsertEvent(ctx context.Context, event Event) (Event, error) {
	row := eventRow(event)

	err := writeWithDriftRetry("events", row, requiredEventColumns, func(payload map[string]any) error {
		return d.db.WithContext(ctx).Table("events").Create(&payload).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Event{}, ErrEventCodeExists
		}

		return Event{}, err
	}

	return d.FindEventByID(ctx, event.ID)
}

func (d *EventDAO) UpdateEvent(ctx context.Context, id string, fields map[string]any) (Event, error) {
	if _, err := d.FindEventByID(ctx, id); err != nil {
		return Event{}, err
	}

	payload := translateEventFields(fields)
	payload["updated_at"] = time.Now().UTC()

	err := writeWithDriftRetry("events", payload, requiredEventColumns, func(p map[string]any) error {
		return d.db.WithContext(ctx).Table("events").Where("id = ?", id).Updates(p).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Event{}, ErrEventCodeExists
		}

		return Event{}, err
	}

	return d.FindEventByID(ctx, id)
}

func (d *EventDAO) DeleteEvent(ctx context.Context, id string) (Event, error) {
	event, err := d.FindEventByID(ctx, id)
	if err != nil {
		return Event{}, err
	}

	if err = d.db.WithContext(ctx).Where("event_id = ?", id).Delete(&Announcement{}).Error; err != nil {
		return Event{}, err
	}
	if err = d.db.WithContext(ctx).Where("id = ?", id).Delete(&Event{}).Error; err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) InsertAnnouncement(ctx context.Context, announcement Announcement) (Announcement, error) {
	if _, err := d.FindEventByID(ctx, announcement.EventID); err != nil {
		return Announcement{}, err
	}

	if err := d.db.WithContext(ctx).Create(&announcement).Error; err != nil {
		return Announcement{}, err
	}

	return announcement, nil
}

func (d *EventDAO) DeleteAnnouncement(ctx context.Context, eventID, announcementID string) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", announcementID, eventID).
		Delete(&Announcement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnnouncementNotFound
	}

	return nil
}

// eventRow flattens a record into a column-keyed payload so the drift shim
// can drop individual columns on retry. Announcements live in their own
// table and are not part of the row.
func eventRow(event Event) map[string]any {
	return map[string]any{
		"id":                    event.ID,
		"event_code":            event.Code,
		"title":                 event.Title,
		"description":           event.Description,
		"type":                  event.Type,
		"creator_name":          event.CreatorName,
		"creator_email":         event.CreatorEmail,
		"starts_at":             event.StartsAt,
		"ends_at":               event.EndsAt,
		"registration_deadline": event.RegistrationDeadline,
		"mode":                  event.Mode,
		"venue":                 event.Venue,
		"team_size_min":         event.TeamSizeMin,
		"team_size_max":         event.TeamSizeMax,
		"max_participants":      event.MaxParticipants,
		"themes":                event.Themes,
		"tracks":                event.Tracks,
		"submission_guidelines": event.SubmissionGuidelines,
		"evaluation_criteria":   event.EvaluationCriteria,
		"prize_details":         event.PrizeDetails,
		"authorized_judges":     event.AuthorizedJudges,
		"created_at":            event.CreatedAt,
		"updated_at":            event.UpdatedAt,
	}
}
