package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/portretcoach/overdracht-dashboard/internal/models"
)

type contextKey string

const SettingsContextKey contextKey = "settings"

type SettingsGetter interface {
	Get(ctx context.Context) (models.Settings, error)
}

// InjectSettings loads the household settings once per request and stores
// them in the request context. Requests proceed with the default names when
// loading fails.
func InjectSettings(settings SettingsGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, err := settings.Get(r.Context())
			if err != nil {
				slog.Error("loading settings for request", "error", err)
				current = models.DefaultSettings()
			}

			ctx := context.WithValue(r.Context(), SettingsContextKey, current)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSettings returns the settings stored by InjectSettings, or the defaults
// when the middleware did not run.
func GetSettings(ctx context.Context) models.Settings {
	settings, ok := ctx.Value(SettingsContextKey).(models.Settings)
	if !ok {
		return models.DefaultSettings()
	}
	return settings
}
