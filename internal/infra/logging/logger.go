// Package logging provides the diagnostic logger for the uninstaller.
// Diagnostics go to stderr only; the uninstaller must not create files,
// so there is no log file sink.
package logging

import (
	"io"
	"log/slog"
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w at the given level.
// Status lines for the user go to stdout separately; this logger carries
// diagnostics only.
func New(w io.Writer, levelStr string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
	}))
}
