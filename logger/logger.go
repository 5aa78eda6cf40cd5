// Package logger provides structured logging setup for applications
// embedding the Leitner scheduler.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/leitner/config"
)

// Setup initializes the application's logging based on the provided
// configuration. It creates a structured JSON logger with the configured
// log level, writing to stdout, and sets it as the default logger.
//
// An unrecognized log level falls back to info with a warning rather than
// failing setup.
func Setup(cfg config.LoggingConfig) (*slog.Logger, error) {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		// Use a temporary text logger so the warning is visible before
		// the real handler exists.
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Set this logger as the default so slog package functions
	// (slog.Info, slog.Error, etc.) use it directly.
	slog.SetDefault(logger)

	return logger, nil
}
