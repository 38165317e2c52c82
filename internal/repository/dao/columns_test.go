package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateEventFields(t *testing.T) {
	payload := translateEventFields(map[string]any{
		"title":        "Renamed",
		"prizeDetails": "swag",
		"event_code":   "ABC234",
		"themes":       []string{"ai", "health"},
	})

	assert.Equal(t, "Renamed", payload["title"])
	assert.Equal(t, "swag", payload["prize_details"])
	assert.Equal(t, "ABC234", payload["event_code"])
	assert.Equal(t, StringList{"ai", "health"}, payload["themes"])
}

func TestTranslateEventFields_ImmutableColumns(t *testing.T) {
	payload := translateEventFields(map[string]any{
		"id":        "attacker-chosen",
		"createdAt": "2020-01-01",
		"title":     "ok",
	})

	assert.NotContains(t, payload, "id")
	assert.NotContains(t, payload, "created_at")
	assert.Contains(t, payload, "title")
}

func TestTranslateEventFields_DropsUnknownFields(t *testing.T) {
	payload := translateEventFields(map[string]any{
		"title":        "ok",
		"evilColumn":   "nope",
		"another_junk": 1,
	})

	assert.Len(t, payload, 1)
	assert.Contains(t, payload, "title")
}
