package handlers

import (
	"log/slog"
	"net/http"

	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

type ICalHandler struct {
	exporter     *services.CalendarExporter
	calendarName string
}

func NewICalHandler(exporter *services.CalendarExporter, calendarName string) *ICalHandler {
	return &ICalHandler{exporter: exporter, calendarName: calendarName}
}

func (handler *ICalHandler) Feed(w http.ResponseWriter, r *http.Request) {
	data, err := handler.exporter.Export(r.Context(), handler.calendarName)
	if err != nil {
		slog.Error("exporting calendar", "error", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=overdracht.ics")
	w.Write([]byte(data))
}
