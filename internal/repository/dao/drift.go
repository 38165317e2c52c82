package dao

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// maxDriftAttempts bounds the drop-and-retry loop for writes rejected
// because of schema drift.
const maxDriftAttempts = 6

// Postgres reports an unknown column as e.g.
//
//	column "prize_details" of relation "events" does not exist
//
// The error code identifies the condition; the column name still has to be
// pulled out of the message text.
var undefinedColumnExp = regexp2.MustCompile(`column "([^"]+)"(?: of relation "[^"]+")? does not exist`, regexp2.None)

// writeWithDriftRetry runs exec against payload, removing columns the
// backing schema rejects as unknown and retrying. This is a compatibility
// shim for stores whose schema lags the application's field set, not a
// correctness mechanism: every dropped field is logged, required columns
// are never dropped, and a field is never removed twice in one chain.
func writeWithDriftRetry(table string, payload map[string]any, required map[string]bool, exec func(map[string]any) error) error {
	dropped := make(map[string]bool)

	for attempt := 0; attempt < maxDriftAttempts; attempt++ {
		err := exec(payload)
		if err == nil {
			return nil
		}

		column, ok := undefinedColumn(err)
		if !ok {
			// Not a drift error. Surface it as-is.
			return err
		}

		if required[column] {
			return fmt.Errorf("store rejected required field %q on %v -> %w", column, table, err)
		}
		if dropped[column] {
			return fmt.Errorf("store rejected already-dropped field %q on %v -> %w", column, table, ErrSchemaDrift)
		}

		key, found := locatePayloadKey(payload, column)
		if !found {
			return fmt.Errorf("store rejected field %q absent from payload on %v -> %w", column, table, ErrSchemaDrift)
		}

		zap.L().Warn("dropping field rejected by store schema",
			zap.String("table", table),
			zap.String("column", column),
			zap.String("payload_key", key))

		delete(payload, key)
		dropped[column] = true
	}

	return fmt.Errorf("write to %v did not converge after %v attempts -> %w", table, maxDriftAttempts, ErrSchemaDrift)
}

func undefinedColumn(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UndefinedColumn {
		return "", false
	}

	m, matchErr := undefinedColumnExp.FindStringMatch(pgErr.Message)
	if matchErr != nil || m == nil {
		return "", false
	}

	return m.GroupByNumber(1).String(), true
}

// locatePayloadKey finds the payload key matching a rejected column,
// checking the exact name first and then its naming-convention variants.
func locatePayloadKey(payload map[string]any, column string) (string, bool) {
	candidates := []string{column, snakeToCamel(column), camelToSnake(column)}
	for _, candidate := range candidates {
		if _, ok := payload[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}
