package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// InitLogger creates the application logger for the given environment.
// Production environments get JSON output at info level; everything
// else gets a human-readable development logger at debug level.
func InitLogger(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if env == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.With(zap.String("env", env)), nil
}
