package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every embedded *.up.sql file that is not yet recorded in
// schema_migrations, in file name order, each inside its own transaction.
func Migrate(database *sql.DB) error {
	if _, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	filenames, err := upMigrations()
	if err != nil {
		return err
	}

	applied := 0
	for _, filename := range filenames {
		version := extractVersion(filename)

		var exists int
		if err := database.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		if err := applyMigration(database, version, filename); err != nil {
			return err
		}
		applied++
		slog.Info("applied migration", "version", version, "file", filename)
	}

	slog.Debug("migrations up to date", "applied", applied, "total", len(filenames))
	return nil
}

func upMigrations() ([]string, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	var filenames []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			filenames = append(filenames, entry.Name())
		}
	}
	sort.Strings(filenames)
	return filenames, nil
}

func applyMigration(database *sql.DB, version int, filename string) error {
	content, err := migrationsFS.ReadFile("migrations/" + filename)
	if err != nil {
		return fmt.Errorf("reading migration %s: %w", filename, err)
	}

	transaction, err := database.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
	}
	defer transaction.Rollback()

	if _, err := transaction.Exec(string(content)); err != nil {
		return fmt.Errorf("executing migration %s: %w", filename, err)
	}
	if _, err := transaction.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return fmt.Errorf("recording migration %d: %w", version, err)
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", version, err)
	}
	return nil
}

func extractVersion(filename string) int {
	var version int
	fmt.Sscanf(filename, "%d_", &version)
	return version
}
