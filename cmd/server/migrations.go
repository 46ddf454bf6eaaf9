package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/4insec/pasaka-api/internal/platform/postgres/migrations"
)

// runMigrations applies any pending database migrations from the embedded
// migration files. It is called once at startup, before the server begins
// accepting requests.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	migrationLogger := logger.With("component", "migrations")

	startTime := time.Now()
	migrationLogger.Info("Applying pending migrations")

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		migrationLogger.Error("Migration failed", "error", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		migrationLogger.Warn("Failed to retrieve migration version", "error", err)
	} else {
		migrationLogger.Info("Migrations applied",
			"version", version,
			"duration_ms", time.Since(startTime).Milliseconds())
	}

	return nil
}
