package handlers

import (
	"log/slog"
	"net/http"

	"github.com/portretcoach/overdracht-dashboard/internal/middleware"
	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (handler *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.GetSettings(r.Context()))
}

func (handler *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !parseForm(w, r) {
		return
	}

	saved, err := handler.settingsService.Save(ctx, models.Settings{
		ParentA: r.FormValue("parent_a"),
		ParentB: r.FormValue("parent_b"),
		Child1:  r.FormValue("child_1"),
		Child2:  r.FormValue("child_2"),
	})
	if err != nil {
		slog.Error("saving settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
