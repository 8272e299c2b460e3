// Package cli provides common startup utilities shared by the command
// entrypoints: env loading, logger setup, and config validation.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"tally/internal/backend"
	"tally/internal/config"
	applog "tally/internal/log"
)

// SetupLogger initializes structured logging at the given level and
// installs it as the process default.
func SetupLogger(level string) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(level),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenBackend opens the configured storage slot or exits the process
// on failure.
func OpenBackend(logger *applog.Logger, cfg *config.Config) *backend.Result {
	res, err := backend.Open(logger.Logger, backend.Config{
		Type:         backend.Type(cfg.StoreBackend),
		StorePath:    cfg.StorePath,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize storage backend",
			applog.FieldError, err,
			applog.FieldBackend, cfg.StoreBackend)
		os.Exit(1)
	}
	return res
}
