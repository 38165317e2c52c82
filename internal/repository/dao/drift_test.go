package dao

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func undefinedColumnErr(column string) error {
	return &pgconn.PgError{
		Code:    pgerrcode.UndefinedColumn,
		Message: fmt.Sprintf("column %q of relation \"events\" does not exist", column),
	}
}

func TestWriteWithDriftRetry_DropsUnknownColumn(t *testing.T) {
	payload := map[string]any{
		"id":            "ev1",
		"title":         "Hack Night",
		"prize_details": "cash",
	}

	var attempts int
	err := writeWithDriftRetry("events", payload, requiredEventColumns, func(p map[string]any) error {
		attempts++
		if _, ok := p["prize_details"]; ok {
			return undefinedColumnErr("prize_details")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NotContains(t, payload, "prize_details")
	assert.Contains(t, payload, "title")
}

func TestWriteWithDriftRetry_DropsMultipleColumns(t *testing.T) {
	payload := map[string]any{
		"id":     "ev1",
		"themes": "[]",
		"tracks": "[]",
	}

	err := writeWithDriftRetry("events", payload, requiredEventColumns, func(p map[string]any) error {
		if _, ok := p["themes"]; ok {
			return undefinedColumnErr("themes")
		}
		if _, ok := p["tracks"]; ok {
			return undefinedColumnErr("tracks")
		}
		return nil
	})

	require.NoError(t, err)
	assert.NotContains(t, payload, "themes")
	assert.NotContains(t, payload, "tracks")
}

func TestWriteWithDriftRetry_NeverDropsRequiredColumn(t *testing.T) {
	payload := map[string]any{"id": "ev1"}

	err := writeWithDriftRetry("events", payload, requiredEventColumns, func(map[string]any) error {
		return undefinedColumnErr("id")
	})

	require.Error(t, err)
	assert.Contains(t, payload, "id")
}

func TestWriteWithDriftRetry_NeverDropsSameColumnTwice(t *testing.T) {
	payload := map[string]any{
		"id":    "ev1",
		"venue": "main hall",
	}

	var attempts int
	err := writeWithDriftRetry("events", payload, requiredEventColumns, func(map[string]any) error {
		attempts++
		// Keep rejecting venue even after it was dropped.
		return undefinedColumnErr("venue")
	})

	require.ErrorIs(t, err, ErrSchemaDrift)
	assert.Equal(t, 2, attempts)
}

func TestWriteWithDriftRetry_UnrelatedErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection reset")
	payload := map[string]any{"id": "ev1"}

	err := writeWithDriftRetry("events", payload, requiredEventColumns, func(map[string]any) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestWriteWithDriftRetry_CamelCasePayloadKey(t *testing.T) {
	// Stores that keep camelCase keys still converge when the backend
	// reports the snake_case column name.
	payload := map[string]any{
		"id":           "ev1",
		"prizeDetails": "cash",
	}

	err := writeWithDriftRetry("events", payload, requiredEventColumns, func(p map[string]any) error {
		if _, ok := p["prizeDetails"]; ok {
			return undefinedColumnErr("prize_details")
		}
		return nil
	})

	require.NoError(t, err)
	assert.NotContains(t, payload, "prizeDetails")
}

func TestUndefinedColumn(t *testing.T) {
	column, ok := undefinedColumn(undefinedColumnErr("prize_details"))
	require.True(t, ok)
	assert.Equal(t, "prize_details", column)

	// Same error code without the relation clause.
	column, ok = undefinedColumn(&pgconn.PgError{
		Code:    pgerrcode.UndefinedColumn,
		Message: `column "venue" does not exist`,
	})
	require.True(t, ok)
	assert.Equal(t, "venue", column)

	_, ok = undefinedColumn(errors.New("not a pg error"))
	assert.False(t, ok)

	_, ok = undefinedColumn(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.False(t, ok)
}

func TestCaseConversion(t *testing.T) {
	assert.Equal(t, "prize_details", camelToSnake("prizeDetails"))
	assert.Equal(t, "prizeDetails", snakeToCamel("prize_details"))
	assert.Equal(t, "title", camelToSnake("title"))
	assert.Equal(t, "title", snakeToCamel("title"))
}
