package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

type CalendarHandler struct {
	calendarService *services.CalendarService
	today           func() time.Time
}

func NewCalendarHandler(calendarService *services.CalendarService, today func() time.Time) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService, today: today}
}

func (handler *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	assignments, err := handler.calendarService.Range(ctx, from, to)
	if err != nil {
		slog.Error("finding calendar assignments", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load calendar")
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (handler *CalendarHandler) Assign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !parseForm(w, r) {
		return
	}

	date := chi.URLParam(r, "date")
	parent := models.Parent(r.FormValue("parent"))

	assignments, err := handler.calendarService.Assign(ctx, date, parent)
	if errors.Is(err, services.ErrInvalidAssignment) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("assigning calendar day", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to save calendar")
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (handler *CalendarHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	date := chi.URLParam(r, "date")

	assignments, err := handler.calendarService.Clear(ctx, date)
	if err != nil {
		slog.Error("clearing calendar day", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to save calendar")
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

// FillWeek assigns the rotation parent to the open days of the week
// containing ?date, or the current week.
func (handler *CalendarHandler) FillWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	day := handler.today()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := services.ParseDate(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	assignments, err := handler.calendarService.FillWeekFromRotation(ctx, day)
	if err != nil {
		slog.Error("filling week from rotation", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save calendar")
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}
