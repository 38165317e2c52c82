package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger. Production gets JSON output,
// everything else gets the human-friendly development encoder.
func Init(environment string) error {
	var (
		lg  *zap.Logger
		err error
	)

	switch environment {
	case "production", "prod":
		lg, err = zap.NewProduction()
	default:
		lg, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(lg)

	return nil
}
