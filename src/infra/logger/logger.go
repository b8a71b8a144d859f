// Package logger provides structured logging using zerolog.
//
// Usage:
//
//	log := logger.New(cfg.Log)
//	log.Info().Int("port", 3000).Msg("server starting")
//	log.Error().Err(err).Msg("failed to connect")
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lightbnb/src/infra/config"
)

// New creates a logger writing to stdout based on the provided configuration.
func New(cfg config.LogConfig) *zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a logger that writes to the specified writer.
// This is useful for testing or writing logs to files.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *zerolog.Logger {
	level := ParseLevel(cfg.Level)

	out := w
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	return &l
}

// ParseLevel converts a string log level to a zerolog.Level.
// Defaults to Info if the level is not recognized.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithRequestID returns a child logger tagging every entry with the request ID.
func WithRequestID(log *zerolog.Logger, requestID string) *zerolog.Logger {
	l := log.With().Str("request_id", requestID).Logger()
	return &l
}

// FromContext returns the request logger attached by the HTTP middleware,
// or fallback when ctx carries none.
func FromContext(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}

// WithComponent returns a child logger tagging every entry with a component name.
func WithComponent(log *zerolog.Logger, component string) *zerolog.Logger {
	l := log.With().Str("component", component).Logger()
	return &l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
