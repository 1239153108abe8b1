package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// NewCLILogger returns a slog.Logger writing colorized, single-line
// records to stderr. Diagnostics go to stderr so piped report output
// stays clean.
func NewCLILogger(level string) *slog.Logger {
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      ParseLogLevel(level),
		TimeFormat: time.Kitchen,
	})
	return slog.New(h)
}

func SetDefaultCLILogger(level string) {
	slog.SetDefault(NewCLILogger(level))
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
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
