package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/repository"
)

type SettingsService struct {
	documents repository.DocumentRepository
	mu        sync.Mutex
}

func NewSettingsService(documents repository.DocumentRepository) *SettingsService {
	return &SettingsService{documents: documents}
}

// Migrate discards any settings document written before the migration flag
// existed. Older builds stored wrong default names, so the purge runs once;
// the persisted flag keeps later calls from touching saved settings.
func (service *SettingsService) Migrate(ctx context.Context) error {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.migrateLocked(ctx)
}

func (service *SettingsService) migrateLocked(ctx context.Context) error {
	var migrated bool
	found, err := repository.LoadJSON(ctx, service.documents, repository.KeySettingsMigrated, &migrated)
	if err != nil {
		return fmt.Errorf("checking settings migration: %w", err)
	}
	if found && migrated {
		return nil
	}

	if err := service.documents.Delete(ctx, repository.KeySettings); err != nil {
		return fmt.Errorf("purging legacy settings: %w", err)
	}
	if err := repository.SaveJSON(ctx, service.documents, repository.KeySettingsMigrated, true); err != nil {
		return fmt.Errorf("recording settings migration: %w", err)
	}
	slog.Info("purged legacy settings document")
	return nil
}

// Get returns the stored settings, or the defaults when nothing valid is stored.
func (service *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	if err := service.migrateLocked(ctx); err != nil {
		return models.Settings{}, err
	}

	var settings models.Settings
	found, err := repository.LoadJSON(ctx, service.documents, repository.KeySettings, &settings)
	if err != nil {
		return models.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	if !found {
		return models.DefaultSettings(), nil
	}
	return normalizeSettings(settings), nil
}

// Save trims every name, falls back to the default for blank ones and
// replaces the stored document.
func (service *SettingsService) Save(ctx context.Context, settings models.Settings) (models.Settings, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	if err := service.migrateLocked(ctx); err != nil {
		return models.Settings{}, err
	}

	settings = normalizeSettings(settings)
	if err := repository.SaveJSON(ctx, service.documents, repository.KeySettings, settings); err != nil {
		return models.Settings{}, fmt.Errorf("saving settings: %w", err)
	}
	return settings, nil
}

func normalizeSettings(settings models.Settings) models.Settings {
	defaults := models.DefaultSettings()
	return models.Settings{
		ParentA: trimOrDefault(settings.ParentA, defaults.ParentA),
		ParentB: trimOrDefault(settings.ParentB, defaults.ParentB),
		Child1:  trimOrDefault(settings.Child1, defaults.Child1),
		Child2:  trimOrDefault(settings.Child2, defaults.Child2),
	}
}

func trimOrDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
