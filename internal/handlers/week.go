package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/portretcoach/overdracht-dashboard/internal/middleware"
	"github.com/portretcoach/overdracht-dashboard/internal/models"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

type WeekHandler struct {
	calendarService *services.CalendarService
	today           func() time.Time
}

func NewWeekHandler(calendarService *services.CalendarService, today func() time.Time) *WeekHandler {
	return &WeekHandler{calendarService: calendarService, today: today}
}

type weekResponse struct {
	models.WeekAssignment
	Days []models.WeekDay `json:"days"`
}

// Overview returns the rotation parent and the seven-day strip for the week
// containing ?date, or today when no date is given.
func (handler *WeekHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	today := handler.today()
	day := today
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := services.ParseDate(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	days, err := handler.calendarService.WeekStrip(ctx, day, today)
	if err != nil {
		slog.Error("building week strip", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load week")
		return
	}

	writeJSON(w, http.StatusOK, weekResponse{
		WeekAssignment: services.CurrentWeekAssignment(day, middleware.GetSettings(ctx)),
		Days:           days,
	})
}
