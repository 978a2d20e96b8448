package config

import (
	"io"
	"log/slog"
)

// NewLogger creates a slog.Logger honoring the configured level and format.
// It does not touch the global logger; the caller decides whether to install
// it as the default.
func (c Config) NewLogger(out io.Writer) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}
