package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portretcoach/overdracht-dashboard/internal/middleware"
	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

type NotesHandler struct {
	notesLog        *services.NotesLog
	calendarService *services.CalendarService
}

func NewNotesHandler(notesLog *services.NotesLog, calendarService *services.CalendarService) *NotesHandler {
	return &NotesHandler{notesLog: notesLog, calendarService: calendarService}
}

type notesResponse struct {
	Notes        []models.NoteView `json:"notes"`
	EmptyMessage string            `json:"emptyMessage,omitempty"`
}

func (handler *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r)
}

func (handler *NotesHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !parseForm(w, r) {
		return
	}

	if _, err := handler.notesLog.Add(ctx, r.FormValue("date"), r.FormValue("text")); err != nil {
		slog.Error("adding note", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save note")
		return
	}
	handler.respond(w, r)
}

func (handler *NotesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := handler.notesLog.Remove(ctx, chi.URLParam(r, "id")); err != nil {
		slog.Error("removing note", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save notes")
		return
	}
	handler.respond(w, r)
}

// respond writes the notes newest first, each labelled with the parent on
// duty that day.
func (handler *NotesHandler) respond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assignments, err := handler.calendarService.All(ctx)
	if err != nil {
		slog.Error("loading calendar for notes", "error", err)
		assignments = models.CalendarAssignments{}
	}

	views, err := handler.notesLog.ListDecorated(ctx, middleware.GetSettings(ctx), assignments)
	if err != nil {
		slog.Error("listing notes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load notes")
		return
	}

	response := notesResponse{Notes: views}
	if len(views) == 0 {
		response.EmptyMessage = services.NotesEmptyMessage
	}
	writeJSON(w, http.StatusOK, response)
}
