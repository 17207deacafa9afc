// Package logging builds the slog loggers used by this module. It wraps
// log/slog to provide either JSON output for machine consumption or
// tint-colored text output for terminals.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// Log formats supported by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Log levels supported by New.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// New creates a logger writing to w. format selects the handler: FormatJSON
// produces one JSON object per line, FormatText produces tint's human-readable
// output. Unrecognized formats fall back to JSON; unrecognized levels fall
// back to info.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)

	var handler slog.Handler
	switch strings.ToLower(format) {
	case FormatText:
		handler = tint.NewHandler(w, &tint.Options{Level: lvl})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	}
	return slog.New(handler)
}

// ParseLevel converts a level string to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
