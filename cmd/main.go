package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/nmakharadze/roster/internal/repositories"
	"github.com/nmakharadze/roster/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	if level, err := log.ParseLevel(config.Logging.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	store, err := newStore(config, logger)
	if err != nil {
		logger.Fatalf("failed to initialize storage: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Store:  store,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "roster",
		Usage:    "Manage user records with pluggable storage",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrInvalidUser) {
			// Rejected input is reported, not fatal.
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}

// newStore builds the storage strategy selected by the configuration.
func newStore(config *shared.Config, logger *log.Logger) (repositories.Store, error) {
	switch config.Storage.Backend {
	case "memory":
		logger.Debug("using in-memory store")
		return repositories.NewMemoryStore(), nil

	case "file", "":
		logger.Debug("using file store", "csv", config.Storage.CSVPath, "json", config.Storage.JSONPath)
		return repositories.NewFileStore(config.Storage.CSVPath, config.Storage.JSONPath), nil

	case "sqlite":
		db, err := shared.NewDatabase(config.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Debug("using sqlite store", "path", config.Database.Path)
		return repositories.NewSQLiteStore(db), nil

	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownBackend, config.Storage.Backend)
	}
}
