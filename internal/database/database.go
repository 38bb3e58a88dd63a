package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens the SQLite document database at databasePath, creating the
// parent directory when needed. ":memory:" opens a private in-memory database.
func Open(databasePath string) (*sql.DB, error) {
	if databasePath != ":memory:" {
		directory := filepath.Dir(databasePath)
		if err := os.MkdirAll(directory, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every document write replaces a whole row; a single connection keeps
	// in-memory databases shared and file databases free of SQLITE_BUSY.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA journal_mode=WAL"); err != nil {
		database.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return database, nil
}
