package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackboard/hackboard-api/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for service tests.
type fakeEventRepo struct {
	events map[string]domain.Event
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[string]domain.Event)}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (f *fakeEventRepo) List(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id string) (domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) FindByCode(_ context.Context, code string) (domain.Event, error) {
	for _, e := range f.events {
		if strings.EqualFold(e.Code, code) {
			return e, nil
		}
	}
	return domain.Event{}, ErrEventNotFound
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) Update(_ context.Context, id string, fields map[string]any) (domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}
	if title, ok := fields["title"].(string); ok {
		e.Title = title
	}
	f.events[id] = e
	return e, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) (domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}
	delete(f.events, id)
	return e, nil
}

func (f *fakeEventRepo) AddAnnouncement(_ context.Context, eventID string, a domain.Announcement) (domain.Announcement, error) {
	e, ok := f.events[eventID]
	if !ok {
		return domain.Announcement{}, ErrEventNotFound
	}
	e.Announcements = append(e.Announcements, a)
	f.events[eventID] = e
	return a, nil
}

func (f *fakeEventRepo) RemoveAnnouncement(_ context.Context, eventID, announcementID string) error {
	e, ok := f.events[eventID]
	if !ok {
		return ErrEventNotFound
	}
	for i, a := range e.Announcements {
		if a.ID == announcementID {
			e.Announcements = append(e.Announcements[:i], e.Announcements[i+1:]...)
			f.events[eventID] = e
			return nil
		}
	}
	return ErrAnnouncementNotFound
}

type fakeSubmissionRepo struct {
	submissions []domain.Submission
}

func (f *fakeSubmissionRepo) List(_ context.Context, eventID string) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range f.submissions {
		if eventID == "" || s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) FindByID(_ context.Context, id string) (domain.Submission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Submission{}, ErrSubmissionNotFound
}

func (f *fakeSubmissionRepo) Create(_ context.Context, s domain.Submission) (domain.Submission, error) {
	f.submissions = append(f.submissions, s)
	return s, nil
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (f *fakeReviewRepo) List(_ context.Context) ([]domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, r domain.Review) (domain.Review, error) {
	f.reviews = append(f.reviews, r)
	return r, nil
}

func newEventService(repo *fakeEventRepo) *EventService {
	return NewEventService(repo, &fakeSubmissionRepo{}, &fakeReviewRepo{})
}

func TestIsAuthorizedJudge(t *testing.T) {
	event := domain.Event{
		AuthorizedJudges: []string{"Judge@Example.com", "  second@example.com "},
	}

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"exact match", "Judge@Example.com", true},
		{"case insensitive", "judge@example.com", true},
		{"whitespace trimmed both sides", " SECOND@EXAMPLE.COM ", true},
		{"unknown email", "nobody@example.com", false},
		{"empty email", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthorizedJudge(event, tt.email))
		})
	}
}

func TestIsAuthorizedJudge_EmptyList(t *testing.T) {
	assert.False(t, IsAuthorizedJudge(domain.Event{}, "judge@example.com"))
}

func TestValidateJudge(t *testing.T) {
	repo := newFakeEventRepo(domain.Event{
		ID:               "ev1",
		Code:             "ABC234",
		AuthorizedJudges: []string{"judge@example.com"},
	})
	svc := newEventService(repo)

	err := svc.ValidateJudge(context.Background(), "ev1", "judge@example.com")
	assert.NoError(t, err)

	// The event code works in place of the id.
	err = svc.ValidateJudge(context.Background(), "abc234", "judge@example.com")
	assert.NoError(t, err)

	err = svc.ValidateJudge(context.Background(), "ev1", "impostor@example.com")
	assert.ErrorIs(t, err, ErrJudgeNotAuthorized)

	err = svc.ValidateJudge(context.Background(), "missing", "judge@example.com")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCreateEvent_AssignsCodeAndTimestamps(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newEventService(repo)

	created, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Hack Night"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.Code, codeLength)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

// collidingEventRepo reports the first `collisions` FindByCode lookups as
// taken, so code generation has to retry.
type collidingEventRepo struct {
	*fakeEventRepo
	collisions int
	calls      int
}

func (f *collidingEventRepo) FindByCode(ctx context.Context, code string) (domain.Event, error) {
	f.calls++
	if f.calls <= f.collisions {
		return domain.Event{ID: "taken", Code: code}, nil
	}
	return domain.Event{}, ErrEventNotFound
}

func TestCreateEvent_RetriesCollidingCodes(t *testing.T) {
	repo := &collidingEventRepo{fakeEventRepo: newFakeEventRepo(), collisions: 3}
	svc := NewEventService(repo, &fakeSubmissionRepo{}, &fakeReviewRepo{})

	created, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Busy Namespace"})
	require.NoError(t, err)

	assert.Len(t, created.Code, codeLength)
	assert.Equal(t, 4, repo.calls)
}

func TestCreateEvent_CodeExhaustion(t *testing.T) {
	repo := &collidingEventRepo{fakeEventRepo: newFakeEventRepo(), collisions: 1 << 30}
	svc := NewEventService(repo, &fakeSubmissionRepo{}, &fakeReviewRepo{})

	_, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Doomed"})

	// The failure is loud, never a silent reuse of a taken code.
	assert.ErrorIs(t, err, ErrCodeExhausted)
	assert.Equal(t, maxCodeAttempts, repo.calls)
	assert.Empty(t, repo.events)
}

func TestCreateEvent_RejectsTakenCode(t *testing.T) {
	repo := newFakeEventRepo(domain.Event{ID: "ev1", Code: "TAKEN2"})
	svc := newEventService(repo)

	_, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Dup", Code: "taken2"})
	assert.ErrorIs(t, err, ErrEventCodeExists)
}

func TestGetEvent_ByIDOrCode(t *testing.T) {
	repo := newFakeEventRepo(domain.Event{ID: "ev1", Code: "XYZ789", Title: "Demo Day"})
	svc := newEventService(repo)

	byID, err := svc.GetEvent(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Equal(t, "Demo Day", byID.Title)

	byCode, err := svc.GetEvent(context.Background(), "xyz789")
	require.NoError(t, err)
	assert.Equal(t, "Demo Day", byCode.Title)

	_, err = svc.GetEvent(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetLeaderboard_FiltersToEvent(t *testing.T) {
	repo := newFakeEventRepo(domain.Event{ID: "ev1", Code: "AAAAAA"})
	submissionRepo := &fakeSubmissionRepo{submissions: []domain.Submission{
		{ID: "s1", EventID: "ev1"},
		{ID: "s2", EventID: "other"},
	}}
	reviewRepo := &fakeReviewRepo{reviews: []domain.Review{
		{SubmissionID: "s1", Score: 9},
		{SubmissionID: "s2", Score: 1},
	}}
	svc := NewEventService(repo, submissionRepo, reviewRepo)

	board, err := svc.GetLeaderboard(context.Background(), "ev1")
	require.NoError(t, err)

	require.Len(t, board.Entries, 1)
	assert.Equal(t, "s1", board.Entries[0].Submission.ID)
	require.NotNil(t, board.OverallAverage)
	assert.InDelta(t, 9.0, *board.OverallAverage, 1e-9)
}

func TestRemoveAnnouncement(t *testing.T) {
	repo := newFakeEventRepo(domain.Event{
		ID:            "ev1",
		Announcements: []domain.Announcement{{ID: "a1", Text: "kickoff at 9"}},
	})
	svc := newEventService(repo)

	err := svc.RemoveAnnouncement(context.Background(), "ev1", "a1")
	assert.NoError(t, err)

	err = svc.RemoveAnnouncement(context.Background(), "ev1", "a1")
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}
