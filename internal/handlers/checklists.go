package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

// Checklist names as they appear in URLs.
const (
	ChecklistTransferChild1 = "transfer-child1"
	ChecklistTransferChild2 = "transfer-child2"
	ChecklistTransferPets   = "transfer-pets"
	ChecklistHouse          = "house"
	ChecklistCleaning       = "cleaning"
)

type ChecklistHandler struct {
	checklists map[string]*services.Checklist
	cleaning   *services.CleaningChecklist
}

// NewChecklistHandler serves the named checklists plus the cleaning list,
// which is registered under ChecklistCleaning.
func NewChecklistHandler(checklists map[string]*services.Checklist, cleaning *services.CleaningChecklist) *ChecklistHandler {
	all := make(map[string]*services.Checklist, len(checklists)+1)
	for name, checklist := range checklists {
		all[name] = checklist
	}
	all[ChecklistCleaning] = cleaning.Checklist
	return &ChecklistHandler{checklists: all, cleaning: cleaning}
}

type checklistResponse struct {
	Name         string                   `json:"name"`
	Items        []models.ChecklistItem   `json:"items"`
	EmptyMessage string                   `json:"emptyMessage,omitempty"`
	Progress     *models.CleaningProgress `json:"progress,omitempty"`
}

func (handler *ChecklistHandler) respond(w http.ResponseWriter, name string, items []models.ChecklistItem) {
	response := checklistResponse{Name: name, Items: items}
	if len(items) == 0 {
		response.EmptyMessage = handler.checklists[name].EmptyMessage()
	}
	if name == ChecklistCleaning {
		progress := services.ProgressOf(items)
		response.Progress = &progress
	}
	writeJSON(w, http.StatusOK, response)
}

func (handler *ChecklistHandler) lookup(w http.ResponseWriter, r *http.Request) (string, *services.Checklist, bool) {
	name := chi.URLParam(r, "list")
	checklist, ok := handler.checklists[name]
	if !ok {
		writeError(w, http.StatusNotFound, "checklist not found")
		return "", nil, false
	}
	return name, checklist, true
}

func (handler *ChecklistHandler) List(w http.ResponseWriter, r *http.Request) {
	name, checklist, ok := handler.lookup(w, r)
	if !ok {
		return
	}

	items, err := checklist.List(r.Context())
	if err != nil {
		slog.Error("listing checklist", "error", err, "list", name)
		writeError(w, http.StatusInternalServerError, "failed to load checklist")
		return
	}
	handler.respond(w, name, items)
}

func (handler *ChecklistHandler) Add(w http.ResponseWriter, r *http.Request) {
	name, checklist, ok := handler.lookup(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	items, err := checklist.Add(r.Context(), r.FormValue("text"))
	if err != nil {
		slog.Error("adding checklist item", "error", err, "list", name)
		writeError(w, http.StatusInternalServerError, "failed to save checklist")
		return
	}
	handler.respond(w, name, items)
}

func (handler *ChecklistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	name, checklist, ok := handler.lookup(w, r)
	if !ok {
		return
	}

	items, err := checklist.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("toggling checklist item", "error", err, "list", name)
		writeError(w, http.StatusInternalServerError, "failed to save checklist")
		return
	}
	handler.respond(w, name, items)
}

func (handler *ChecklistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name, checklist, ok := handler.lookup(w, r)
	if !ok {
		return
	}

	items, err := checklist.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("removing checklist item", "error", err, "list", name)
		writeError(w, http.StatusInternalServerError, "failed to save checklist")
		return
	}
	handler.respond(w, name, items)
}

func (handler *ChecklistHandler) CleaningProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := handler.cleaning.Progress(r.Context())
	if err != nil {
		slog.Error("computing cleaning progress", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load checklist")
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (handler *ChecklistHandler) CleaningReset(w http.ResponseWriter, r *http.Request) {
	items, err := handler.cleaning.ResetAll(r.Context())
	if err != nil {
		slog.Error("resetting cleaning checklist", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save checklist")
		return
	}
	handler.respond(w, ChecklistCleaning, items)
}
