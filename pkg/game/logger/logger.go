package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"escaperoom/pkg/game/config"
)

// Setup configures the global slog logger from the config and tags it with a fresh session id
func Setup(cfg config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	lvl, err := cfg.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := WithSession(slog.New(handler), uuid.NewString())

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// WithSession adds a session id to logger context
func WithSession(logger *slog.Logger, id string) *slog.Logger {
	return logger.With("session", id)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
