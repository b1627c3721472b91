package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger: human-readable console output in
// development, JSON elsewhere.
func New(environment string) zerolog.Logger {
	level := zerolog.InfoLevel
	if strings.EqualFold(environment, "development") {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if strings.EqualFold(environment, "development") {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		logger = zerolog.New(writer)
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Str("service", "mining-reports-service").Logger()
}
