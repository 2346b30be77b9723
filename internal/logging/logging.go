// Package logging configures log/slog for healthdsl binaries.
//
// Logs are JSON on stderr and carry the module name and version. The level is
// read from the caller (flag or config) and falls back to LOG_LEVEL.
//
//	logging.SetDefaultStructuredLoggerWithLevel("healthdsl", version, "debug")
//	slog.Debug("sample recorded", "id", id)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelEnvVar is consulted when no explicit level is given
const LevelEnvVar = "LOG_LEVEL"

// ParseLogLevel converts a level name (case-insensitive) to a slog.Level
// Unknown or empty names map to info
func ParseLogLevel(level string) slog.Level {
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

// NewStructuredLogger creates a JSON logger on stderr
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newStructuredLogger(os.Stderr, module, version, level)
}

func newStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	lvl := ParseLogLevel(level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})

	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs the structured logger as the slog default,
// taking the level from LOG_LEVEL
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, "")
}

// SetDefaultStructuredLoggerWithLevel installs the structured logger with an explicit level
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}
