package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackboard/hackboard-api/internal/config"
	"github.com/hackboard/hackboard-api/internal/repository"
	"github.com/hackboard/hackboard-api/internal/repository/filestore"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "0",
			JWTSigningKey:      "test-signing-key",
			RequestTimeoutSecs: 5,
		},
		Gin:      &config.GinConfig{Mode: "test"},
		Postgres: &config.PostgresConfig{},
	}

	return NewServer(conf, &repository.Stores{
		Events:        store,
		Submissions:   store,
		Reviews:       store,
		Registrations: store,
		Users:         store,
	})
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())

	return out
}

func signupToken(t *testing.T, s *Server, email, role string) string {
	t.Helper()

	w := doJSON(t, s, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "correct-horse",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode[map[string]any](t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	return token
}

func createEvent(t *testing.T, s *Server, token string, judges []string) map[string]any {
	t.Helper()

	w := doJSON(t, s, http.MethodPost, "/api/events", token, map[string]any{
		"title":            "Spring Hackathon",
		"type":             "hackathon",
		"creatorEmail":     "organizer@example.com",
		"startsAt":         "2026-09-01T09:00:00Z",
		"endsAt":           "2026-09-02T18:00:00Z",
		"mode":             "hybrid",
		"authorizedJudges": judges,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decode[map[string]any](t, w)
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupAndLogin(t *testing.T) {
	s := newTestServer(t)

	token := signupToken(t, s, "organizer@example.com", "organizer")
	assert.NotEmpty(t, token)

	// Duplicate email is rejected.
	w := doJSON(t, s, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Again",
		"email":    "Organizer@Example.com",
		"password": "another-pass",
		"role":     "organizer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "organizer@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "organizer@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEventRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/events", "", map[string]any{
		"title":        "No Token",
		"type":         "event",
		"creatorEmail": "organizer@example.com",
		"startsAt":     "2026-09-01T09:00:00Z",
		"endsAt":       "2026-09-02T18:00:00Z",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEventLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := signupToken(t, s, "organizer@example.com", "organizer")

	event := createEvent(t, s, token, []string{"judge@example.com"})
	id, _ := event["id"].(string)
	code, _ := event["eventCode"].(string)
	require.NotEmpty(t, id)
	require.Len(t, code, 6)

	// Fetch by code, case-insensitively.
	w := doJSON(t, s, http.MethodGet, "/api/events/"+code, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode[map[string]any](t, w)
	assert.Equal(t, id, fetched["id"])

	// Partial update leaves other fields alone.
	w = doJSON(t, s, http.MethodPut, "/api/events/"+id, token, map[string]any{
		"venue": "Building 7",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "Building 7", updated["venue"])
	assert.Equal(t, "Spring Hackathon", updated["title"])

	// List shows the event.
	w = doJSON(t, s, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	events := decode[[]map[string]any](t, w)
	require.Len(t, events, 1)

	// Delete returns the removed record, then 404s.
	w = doJSON(t, s, http.MethodDelete, "/api/events/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/events/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateJudge(t *testing.T) {
	s := newTestServer(t)
	token := signupToken(t, s, "organizer@example.com", "organizer")
	event := createEvent(t, s, token, []string{"judge@example.com"})
	code, _ := event["eventCode"].(string)

	w := doJSON(t, s, http.MethodPost, "/api/events/"+code+"/validate-judge", "", map[string]any{
		"email": "JUDGE@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/events/"+code+"/validate-judge", "", map[string]any{
		"email": "impostor@example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/events/NOPE42/validate-judge", "", map[string]any{
		"email": "judge@example.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmissionReviewLeaderboardFlow(t *testing.T) {
	s := newTestServer(t)
	token := signupToken(t, s, "organizer@example.com", "organizer")
	event := createEvent(t, s, token, []string{"judge@example.com"})
	eventID, _ := event["id"].(string)

	submit := func(team, title string) string {
		w := doJSON(t, s, http.MethodPost, "/api/submissions", "", map[string]any{
			"eventId":        eventID,
			"teamName":       team,
			"submitterEmail": team + "@example.com",
			"title":          title,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[map[string]any](t, w)
		id, _ := created["id"].(string)
		return id
	}

	alpha := submit("alpha", "Project Alpha")
	beta := submit("beta", "Project Beta")
	submit("gamma", "Never Reviewed")

	review := func(submissionID string, score float64) *httptest.ResponseRecorder {
		return doJSON(t, s, http.MethodPost, "/api/reviews", "", map[string]any{
			"submissionId": submissionID,
			"score":        score,
			"judgeEmail":   "judge@example.com",
		})
	}

	require.Equal(t, http.StatusCreated, review(alpha, 8).Code)
	require.Equal(t, http.StatusCreated, review(alpha, 6).Code)
	require.Equal(t, http.StatusCreated, review(alpha, 10).Code)
	require.Equal(t, http.StatusCreated, review(beta, 9).Code)

	// Unauthorized judge is blocked on the write path.
	w := doJSON(t, s, http.MethodPost, "/api/reviews", "", map[string]any{
		"submissionId": alpha,
		"score":        10,
		"judgeEmail":   "impostor@example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Out-of-range score never lands.
	assert.Equal(t, http.StatusBadRequest, review(alpha, 11).Code)

	w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/events/%v/leaderboard", eventID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	board := decode[struct {
		Entries []struct {
			Submission  map[string]any `json:"submission"`
			AvgScore    *float64       `json:"avgScore"`
			ReviewCount int            `json:"reviewCount"`
		} `json:"entries"`
		EvaluatedCount int `json:"evaluatedCount"`
	}](t, w)

	require.Len(t, board.Entries, 3)
	assert.Equal(t, 2, board.EvaluatedCount)

	// beta (9.0) outranks alpha (8.0); gamma sits last with no average.
	assert.Equal(t, "Project Beta", board.Entries[0].Submission["title"])
	require.NotNil(t, board.Entries[1].AvgScore)
	assert.InDelta(t, 8.0, *board.Entries[1].AvgScore, 1e-9)
	assert.Equal(t, 3, board.Entries[1].ReviewCount)
	assert.Nil(t, board.Entries[2].AvgScore)
}

func TestAnnouncements(t *testing.T) {
	s := newTestServer(t)
	token := signupToken(t, s, "organizer@example.com", "organizer")
	event := createEvent(t, s, token, nil)
	eventID, _ := event["id"].(string)

	w := doJSON(t, s, http.MethodPost, "/api/events/"+eventID+"/announcements", token, map[string]any{
		"text":   "kickoff at 9",
		"author": "organizer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	announcement := decode[map[string]any](t, w)
	announcementID, _ := announcement["id"].(string)
	require.NotEmpty(t, announcementID)

	// Author defaults to the authenticated user's email.
	w = doJSON(t, s, http.MethodPost, "/api/events/"+eventID+"/announcements", token, map[string]any{
		"text": "judging starts soon",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	anonymous := decode[map[string]any](t, w)
	assert.Equal(t, "organizer@example.com", anonymous["author"])

	w = doJSON(t, s, http.MethodDelete, "/api/events/"+eventID+"/announcements/"+announcementID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/api/events/"+eventID+"/announcements/"+announcementID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegistrations(t *testing.T) {
	s := newTestServer(t)
	token := signupToken(t, s, "organizer@example.com", "organizer")
	event := createEvent(t, s, token, nil)
	eventID, _ := event["id"].(string)

	w := doJSON(t, s, http.MethodPost, "/api/events/"+eventID+"/registrations", "", map[string]any{
		"name":     "Participant One",
		"email":    "p1@example.com",
		"teamName": "alpha",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/events/"+eventID+"/registrations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	registrations := decode[[]map[string]any](t, w)
	require.Len(t, registrations, 1)
	assert.Equal(t, "Participant One", registrations[0]["name"])

	w = doJSON(t, s, http.MethodPost, "/api/events/missing/registrations", "", map[string]any{
		"name":  "Lost",
		"email": "lost@example.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListJudges(t *testing.T) {
	s := newTestServer(t)
	signupToken(t, s, "judge@example.com", "judge")
	signupToken(t, s, "participant@example.com", "participant")

	w := doJSON(t, s, http.MethodGet, "/api/judges", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The payload is wrapped in a judges envelope.
	body := decode[struct {
		Judges []map[string]any `json:"judges"`
	}](t, w)
	require.Len(t, body.Judges, 1)
	assert.Equal(t, "judge@example.com", body.Judges[0]["email"])

	// Password hashes never leave the API.
	_, exposed := body.Judges[0]["password"]
	assert.False(t, exposed)
}
