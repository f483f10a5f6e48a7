// Package logging provides the shared, structured logger for composer.
//
// It wraps [log/slog] behind a single initialization point so every package
// writes through the same handler and level. Two environment variables
// control it:
//
//   - COMPOSER_LOG_LEVEL: debug, info, warn or error (default info).
//   - COMPOSER_LOG_FILE: append log output to this file instead of stderr.
//     The interactive compose box owns the terminal, so pointing logs at a
//     file is the usual way to watch them while composing.
//
// Usage:
//
//	log := logging.New("people")
//	log.Info("loaded directory", "path", p, "count", n)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component. An empty component returns the
// base logger. The base logger is created on first use.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(openOutput(os.Getenv("COMPOSER_LOG_FILE")), &slog.HandlerOptions{
			Level: parseLevel(os.Getenv("COMPOSER_LOG_LEVEL")),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// openOutput opens path for appending. Any failure falls back to stderr so
// logging never stops the program from starting.
func openOutput(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// parseLevel converts a level name to a [slog.Level]. Matching is
// case-insensitive; unknown names mean info.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
