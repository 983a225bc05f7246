// Package log provides structured logging setup and the standard field names
// used across the client.
package log

import (
	"log/slog"
	"os"
)

// Config holds logger configuration
type Config struct {
	Level   slog.Level
	Handler slog.Handler
}

// New creates a slog logger with the given configuration, defaulting to a
// text handler on stdout.
func New(config Config) *slog.Logger {
	handler := config.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: config.Level,
		})
	}
	return slog.New(handler)
}

// SetDefault installs logger as the process default.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(FieldComponent, component)
}
