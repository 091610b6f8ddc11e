// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable consulted for the default log level.
const EnvLogLevel = "LOG_LEVEL"

// ParseLevel converts a level name (debug, info, warn, error) into a slog.Level.
// Unknown or empty names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New creates a logger writing to w, tagged with the module name and version.
func New(w io.Writer, name, version string, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(
		slog.String("name", name),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a text logger on stderr as the slog
// default. The level comes from LOG_LEVEL.
func SetDefaultStructuredLogger(name, version string) {
	SetDefaultLoggerWithLevel(name, version, os.Getenv(EnvLogLevel), false)
}

// SetDefaultLoggerWithLevel installs a logger on stderr as the slog default
// using the given level name and handler format.
func SetDefaultLoggerWithLevel(name, version, level string, json bool) {
	slog.SetDefault(New(os.Stderr, name, version, ParseLevel(level), json))
}
