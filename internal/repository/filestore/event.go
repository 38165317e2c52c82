package filestore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hackboard/hackboard-api/internal/repository/dao"
)

func (s *Store) ListEvents(ctx context.Context) ([]dao.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := readDoc[dao.Event](s.path(eventsFile))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	return events, nil
}

func (s *Store) FindEventByID(ctx context.Context, id string) (dao.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findEventLocked(func(e dao.Event) bool { return e.ID == id })
}

func (s *Store) FindEventByCode(ctx context.Context, code string) (dao.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findEventLocked(func(e dao.Event) bool {
		return strings.EqualFold(e.Code, code)
	})
}

func (s *Store) findEventLocked(match func(dao.Event) bool) (dao.Event, error) {
	events, err := readDoc[dao.Event](s.path(eventsFile))
	if err != nil {
		return dao.Event{}, err
	}

	for _, event := range events {
		if match(event) {
			return event, nil
		}
	}

	return dao.Event{}, dao.ErrEventNotFound
}

func (s *Store) InsertEvent(ctx context.Context, event dao.Event) (dao.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := readDoc[dao.Event](s.path(eventsFile))
	if err != nil {
		return dao.Event{}, err
	}

	for _, existing := range events {
		if strings.EqualFold(existing.Code, event.Code) {
			return dao.Event{}, dao.ErrEventCodeExists
		}
	}

	events = append(events, event)
	if err = writeDoc(s.path(eventsFile), events); err != nil {
		return dao.Event{}, err
	}

	return event, nil
}

func (s *Store) UpdateEvent(ctx context.Context, id string, fields map[string]any) (dao.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := readDoc[dao.Event](s.path(eventsFile))
	if err != nil {
		return dao.Event{}, err
	}

	for i := range events {
		if events[i].ID != id {
			continue
		}

		updated := events[i]
		applyEventFields(&updated, fields)

		// Codes stay unique across events, same as on insert.
		for j := range events {
			if j != i && strings.EqualFold(events[j].Code, updated.Code) {
				return dao.Event{}, dao.ErrEventCodeExists
			}
		}

		updated.UpdatedAt = time.Now().UTC()
		events[i] = updated

		if err = writeDoc(s.path(eventsFile), events); err != nil {
			return dao.Event{}, err
		}

		return events[i], nil
	}

	return dao.Event{}, dao.ErrEventNotFound
}

func (s *Store) DeleteEvent(ctx context.Context, id string) (dao.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := readDoc[dao.Event](s.path(eventsFile))
	if err != nil {
		return dao.Event{}, err
	}

	for i, event := range events {
		if event.ID != id {
			continue
		}

		events = append(events[:i], events[i+1:]...)
		if err = writeDoc(s.path(eventsFile), events); err != nil {
			return dao.Event{}, err
		}

		return event, nil
	}

	return dao.Event{}, dao.ErrEventNotFound
}

func (s *Store) InsertAnnouncement(ctx context.Context, announcement dao.Announcement) (dao.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := readDoc[dao.Event](s.path(eventsFile))
	if err != nil {
		return dao.Announcement{}, err
	}

	for i := range events {
		if events[i].ID != announcement.EventID {
			continue
		}

		events[i].Announcements = append(events[i].Announcements, announcement)
		if err = writeDoc(s.path(eventsFile), events); err != nil {
			return dao.Announcement{}, err
		}

		return announcement, nil
	}

	return dao.Announcement{}, dao.ErrEventNotFound
}

func (s *Store) DeleteAnnouncement(ctx context.Context, eventID, announcementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := readDoc[dao.Event](s.path(eventsFile))
	if err != nil {
		return err
	}

	for i := range events {
		if events[i].ID != eventID {
			continue
		}

		for j, announcement := range events[i].Announcements {
			if announcement.ID != announcementID {
				continue
			}

			events[i].Announcements = append(events[i].Announcements[:j], events[i].Announcements[j+1:]...)
			return writeDoc(s.path(eventsFile), events)
		}

		return dao.ErrAnnouncementNotFound
	}

	return dao.ErrEventNotFound
}

// applyEventFields merges a partial update onto a stored record. Keys are
// the camelCase client field names (snake_case accepted as well); the id
// and creation timestamp are never overwritable.
func applyEventFields(event *dao.Event, fields map[string]any) {
	for key, value := range fields {
		switch normalizeKey(key) {
		case "eventCode":
			setString(&event.Code, value)
		case "title":
			setString(&event.Title, value)
		case "description":
			setString(&event.Description, value)
		case "type":
			setString(&event.Type, value)
		case "creatorName":
			setString(&event.CreatorName, value)
		case "creatorEmail":
			setString(&event.CreatorEmail, value)
		case "startsAt":
			setTime(&event.StartsAt, value)
		case "endsAt":
			setTime(&event.EndsAt, value)
		case "registrationDeadline":
			setTime(&event.RegistrationDeadline, value)
		case "mode":
			setString(&event.Mode, value)
		case "venue":
			setString(&event.Venue, value)
		case "teamSizeMin":
			setInt(&event.TeamSizeMin, value)
		case "teamSizeMax":
			setInt(&event.TeamSizeMax, value)
		case "maxParticipants":
			setInt(&event.MaxParticipants, value)
		case "themes":
			setList(&event.Themes, value)
		case "tracks":
			setList(&event.Tracks, value)
		case "submissionGuidelines":
			setString(&event.SubmissionGuidelines, value)
		case "evaluationCriteria":
			setString(&event.EvaluationCriteria, value)
		case "prizeDetails":
			setString(&event.PrizeDetails, value)
		case "authorizedJudges":
			setList(&event.AuthorizedJudges, value)
		}
	}
}

func normalizeKey(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}

	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}

	return strings.Join(parts, "")
}

func setString(dst *string, value any) {
	if v, ok := value.(string); ok {
		*dst = v
	}
}

func setInt(dst *int, value any) {
	switch v := value.(type) {
	case int:
		*dst = v
	case float64:
		*dst = int(v)
	}
}

func setTime(dst *time.Time, value any) {
	if v, ok := value.(time.Time); ok {
		*dst = v
	}
}

func setList(dst *dao.StringList, value any) {
	switch v := value.(type) {
	case []string:
		*dst = dao.StringList(v)
	case dao.StringList:
		*dst = v
	}
}
