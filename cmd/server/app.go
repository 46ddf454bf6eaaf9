package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/4insec/pasaka-api/internal/bible"
	"github.com/4insec/pasaka-api/internal/config"
	"github.com/4insec/pasaka-api/internal/platform/postgres"
	"github.com/4insec/pasaka-api/internal/service/auth"
	"github.com/4insec/pasaka-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	accountStore store.AccountStore
	bibleStore   *bible.Store

	// Services
	credentialService *auth.CredentialService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Load the Bible text; the server cannot operate without it.
	bibleStore, err := bible.Load(cfg.Bible.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load Bible data from %s: %w", cfg.Bible.Path, err)
	}
	app.bibleStore = bibleStore
	logger.Info("Bible data loaded",
		"path", cfg.Bible.Path,
		"books", len(bibleStore.Books()))

	// Initialize stores
	app.accountStore = postgres.NewAccountStore(db, logger)

	// Initialize the credential service with the Argon2 password hasher.
	app.credentialService = auth.NewCredentialService(
		app.accountStore,
		auth.NewArgon2Hasher(),
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
