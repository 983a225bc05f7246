// Package cli provides common initialization utilities and terminal
// rendering for the expense client.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/girijakangutkar/Expense-report-client/internal/config"
	applog "github.com/girijakangutkar/Expense-report-client/internal/log"
)

// SetupLogger initializes structured logging and sets the default logger.
// Diagnostics go to stderr so report output stays pipeable.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := applog.New(applog.Config{
		Level:   level,
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}
