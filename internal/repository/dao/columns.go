package dao

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// eventColumns is the single translation table between the camelCase field
// names clients use and the snake_case columns of the events table. The
// adapter is the only place this mapping lives.
var eventColumns = map[string]string{
	"id":                   "id",
	"eventCode":            "event_code",
	"title":                "title",
	"description":          "description",
	"type":                 "type",
	"creatorName":          "creator_name",
	"creatorEmail":         "creator_email",
	"startsAt":             "starts_at",
	"endsAt":               "ends_at",
	"registrationDeadline": "registration_deadline",
	"mode":                 "mode",
	"venue":                "venue",
	"teamSizeMin":          "team_size_min",
	"teamSizeMax":          "team_size_max",
	"maxParticipants":      "max_participants",
	"themes":               "themes",
	"tracks":               "tracks",
	"submissionGuidelines": "submission_guidelines",
	"evaluationCriteria":   "evaluation_criteria",
	"prizeDetails":         "prize_details",
	"authorizedJudges":     "authorized_judges",
	"createdAt":            "created_at",
	"updatedAt":            "updated_at",
}

// Columns the drift shim must never drop. Losing one of these silently
// would corrupt the record, so a rejection fails the write instead.
var (
	requiredEventColumns = map[string]bool{
		"id":            true,
		"event_code":    true,
		"title":         true,
		"creator_email": true,
		"created_at":    true,
		"updated_at":    true,
	}
	requiredSubmissionColumns = map[string]bool{
		"id":         true,
		"event_id":   true,
		"title":      true,
		"created_at": true,
	}
	requiredReviewColumns = map[string]bool{
		"id":            true,
		"submission_id": true,
		"score":         true,
		"judge_email":   true,
		"created_at":    true,
	}
	requiredRegistrationColumns = map[string]bool{
		"id":         true,
		"event_id":   true,
		"email":      true,
		"created_at": true,
	}
)

// translateEventFields converts a partial update keyed by client field names
// into a column-keyed payload. Both camelCase and snake_case keys are
// accepted; anything unknown is dropped with a warning rather than passed
// through to the store.
func translateEventFields(fields map[string]any) map[string]any {
	payload := make(map[string]any, len(fields))
	for key, value := range fields {
		column, ok := eventColumns[key]
		if !ok {
			column, ok = eventColumns[snakeToCamel(key)]
		}
		if !ok {
			zap.L().Warn("ignoring unknown event field", zap.String("field", key))
			continue
		}
		if v, isList := value.([]string); isList {
			value = StringList(v)
		}
		payload[column] = value
	}

	// The id and creation timestamp are never overwritable via update.
	delete(payload, "id")
	delete(payload, "created_at")

	return payload
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
