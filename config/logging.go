package config

import (
	"io"
	"log/slog"
	"strings"
)

// EnvLogLevel selects the log level: debug, info, warn or error.
const EnvLogLevel = "LOG_LEVEL"

// LogLevel parses a level name. Unknown or empty names yield slog.LevelInfo.
func LogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// NewLogger creates the process logger writing text records to w.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
