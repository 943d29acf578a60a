// Package logger configures the application's structured logging.
//
// It uses zerolog throughout: a human-friendly console writer in the
// local environment and plain JSON everywhere else. It also provides
// the specialized logger used by the pgx query tracer.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application's main logger for the given environment.
//
// In "local", output is pretty-printed to stderr for development.
// In any other environment, output is JSON on stdout so it can be
// shipped by the hosting platform's log collector.
func New(env string) zerolog.Logger {
	if env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
// It tags entries with a component field so SQL logs are filterable.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "pgx").Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level
// scale (tracelog.LogLevelNone..Trace, expressed as an int so this
// package does not import pgx).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}
