package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Storage keys for every persisted document.
const (
	KeySettings         = "settings"
	KeySettingsMigrated = "settings_migrated"
	KeyCalendar         = "calendar"
	KeyNotes            = "notes"
	KeyTransferChild1   = "transfer_child1"
	KeyTransferChild2   = "transfer_child2"
	KeyTransferPets     = "transfer_pets"
	KeyHouseNotes       = "house_notes"
	KeyCleaningTasks    = "cleaning_tasks"
)

// DocumentRepository is a key-value store of serialized documents. Each key
// holds one whole document that is replaced on every write.
type DocumentRepository interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type SQLiteDocumentRepository struct {
	database *sql.DB
}

func NewDocumentRepository(database *sql.DB) *SQLiteDocumentRepository {
	return &SQLiteDocumentRepository{database: database}
}

func (repository *SQLiteDocumentRepository) Load(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := repository.database.QueryRowContext(ctx,
		"SELECT value FROM documents WHERE key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading document %s: %w", key, err)
	}
	return value, true, nil
}

func (repository *SQLiteDocumentRepository) Save(ctx context.Context, key string, value string) error {
	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", key, err)
	}
	return nil
}

func (repository *SQLiteDocumentRepository) Delete(ctx context.Context, key string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM documents WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting document %s: %w", key, err)
	}
	return nil
}

// LoadJSON decodes the document stored under key into target. It reports
// false when the key is absent or the stored value is not valid JSON for
// target; malformed documents are never returned as errors.
func LoadJSON(ctx context.Context, documents DocumentRepository, key string, target any) (bool, error) {
	value, found, err := documents.Load(ctx, key)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal([]byte(value), target); err != nil {
		slog.Warn("ignoring malformed document", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// LoadJSONList decodes the array stored under key one element at a time.
// Elements that do not decode as T are dropped; a value that is not a JSON
// array is treated as absent.
func LoadJSONList[T any](ctx context.Context, documents DocumentRepository, key string) ([]T, bool, error) {
	var elements []json.RawMessage
	found, err := LoadJSON(ctx, documents, key, &elements)
	if err != nil || !found {
		return nil, false, err
	}

	items := make([]T, 0, len(elements))
	for i, element := range elements {
		var item T
		if err := json.Unmarshal(element, &item); err != nil {
			slog.Warn("dropping malformed element", "key", key, "index", i, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, true, nil
}

// SaveJSON serializes value and stores it under key, replacing the old document.
func SaveJSON(ctx context.Context, documents DocumentRepository, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", key, err)
	}
	return documents.Save(ctx, key, string(data))
}
