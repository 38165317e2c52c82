package repository

import (
	"context"
	"fmt"

	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/repository/dao"
)

var (
	ErrEventNotFound        = dao.ErrEventNotFound
	ErrEventCodeExists      = dao.ErrEventCodeExists
	ErrAnnouncementNotFound = dao.ErrAnnouncementNotFound
	ErrSchemaDrift          = dao.ErrSchemaDrift
)

// EventStore is implemented by both the Postgres DAO and the flat-file
// store. Which one backs the repository is decided once at startup.
type EventStore interface {
	ListEvents(ctx context.Context) ([]dao.Event, error)
	FindEventByID(ctx context.Context, id string) (dao.Event, error)
	FindEventByCode(ctx context.Context, code string) (dao.Event, error)
	InsertEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	UpdateEvent(ctx context.Context, id string, fields map[string]any) (dao.Event, error)
	DeleteEvent(ctx context.Context, id string) (dao.Event, error)
	InsertAnnouncement(ctx context.Context, announcement dao.Announcement) (dao.Announcement, error)
	DeleteAnnouncement(ctx context.Context, eventID, announcementID string) error
}

type EventRepository struct {
	store EventStore
}

func NewEventRepository(store EventStore) *EventRepository {
	return &EventRepository{
		store: store,
	}
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	found, err := r.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListEvents -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, event := range found {
		events[i] = r.daoToDomain(event)
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	found, err := r.store.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindByCode(ctx context.Context, code string) (domain.Event, error) {
	found, err := r.store.FindEventByCode(ctx, code)
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.store.InsertEvent(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, id string, fields map[string]any) (domain.Event, error) {
	updated, err := r.store.UpdateEvent(ctx, id, fields)
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) (domain.Event, error) {
	removed, err := r.store.DeleteEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(removed), nil
}

func (r *EventRepository) AddAnnouncement(ctx context.Context, eventID string, announcement domain.Announcement) (domain.Announcement, error) {
	created, err := r.store.InsertAnnouncement(ctx, dao.Announcement{
		ID:        announcement.ID,
		EventID:   eventID,
		Text:      announcement.Text,
		Author:    announcement.Author,
		CreatedAt: announcement.CreatedAt,
	})
	if err != nil {
		return domain.Announcement{}, err
	}

	return domain.Announcement{
		ID:        created.ID,
		Text:      created.Text,
		Author:    created.Author,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *EventRepository) RemoveAnnouncement(ctx context.Context, eventID, announcementID string) error {
	return r.store.DeleteAnnouncement(ctx, eventID, announcementID)
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:                   e.ID,
		Code:                 e.Code,
		Title:                e.Title,
		Description:          e.Description,
		Type:                 string(e.Type),
		CreatorName:          e.CreatorName,
		CreatorEmail:         e.CreatorEmail,
		StartsAt:             e.StartsAt,
		EndsAt:               e.EndsAt,
		RegistrationDeadline: e.RegistrationDeadline,
		Mode:                 string(e.Mode),
		Venue:                e.Venue,
		TeamSizeMin:          e.TeamSizeMin,
		TeamSizeMax:          e.TeamSizeMax,
		MaxParticipants:      e.MaxParticipants,
		Themes:               dao.StringList(e.Themes),
		Tracks:               dao.StringList(e.Tracks),
		SubmissionGuidelines: e.SubmissionGuidelines,
		EvaluationCriteria:   e.EvaluationCriteria,
		PrizeDetails:         e.PrizeDetails,
		AuthorizedJudges:     dao.StringList(e.AuthorizedJudges),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	announcements := make([]domain.Announcement, len(e.Announcements))
	for i, a := range e.Announcements {
		announcements[i] = domain.Announcement{
			ID:        a.ID,
			Text:      a.Text,
			Author:    a.Author,
			CreatedAt: a.CreatedAt,
		}
	}

	return domain.Event{
		ID:                   e.ID,
		Code:                 e.Code,
		Title:                e.Title,
		Description:          e.Description,
		Type:                 domain.EventType(e.Type),
		CreatorName:          e.CreatorName,
		CreatorEmail:         e.CreatorEmail,
		StartsAt:             e.StartsAt,
		EndsAt:               e.EndsAt,
		RegistrationDeadline: e.RegistrationDeadline,
		Mode:                 domain.EventMode(e.Mode),
		Venue:                e.Venue,
		TeamSizeMin:          e.TeamSizeMin,
		TeamSizeMax:          e.TeamSizeMax,
		MaxParticipants:      e.MaxParticipants,
		Themes:               []string(e.Themes),
		Tracks:               []string(e.Tracks),
		SubmissionGuidelines: e.SubmissionGuidelines,
		EvaluationCriteria:   e.EvaluationCriteria,
		PrizeDetails:         e.PrizeDetails,
		AuthorizedJudges:     []string(e.AuthorizedJudges),
		Announcements:        announcements,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
