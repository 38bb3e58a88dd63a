package server

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/portretcoach/overdracht-dashboard/internal/config"
	"github.com/portretcoach/overdracht-dashboard/internal/handlers"
	"github.com/portretcoach/overdracht-dashboard/internal/middleware"
	"github.com/portretcoach/overdracht-dashboard/internal/repository"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

const calendarName = "Overdracht"

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(database *sql.DB, cfg config.Config) *Server {
	documents := repository.NewDocumentRepository(database)

	location := cfg.Location
	if location == nil {
		location = time.Local
	}
	today := func() time.Time {
		return time.Now().In(location)
	}

	settingsService := services.NewSettingsService(documents)
	calendarService := services.NewCalendarService(documents)
	notesLog := services.NewNotesLog(documents)
	cleaning := services.NewCleaningChecklist(documents)
	checklists := map[string]*services.Checklist{
		handlers.ChecklistTransferChild1: services.NewChecklist(documents, repository.KeyTransferChild1, "Geen notities."),
		handlers.ChecklistTransferChild2: services.NewChecklist(documents, repository.KeyTransferChild2, "Geen notities."),
		handlers.ChecklistTransferPets:   services.NewChecklist(documents, repository.KeyTransferPets, "Geen notities."),
		handlers.ChecklistHouse:          services.NewChecklist(documents, repository.KeyHouseNotes, "Geen notities over het huis."),
	}
	exporter := services.NewCalendarExporter(settingsService, calendarService, notesLog)

	settingsHandler := handlers.NewSettingsHandler(settingsService)
	weekHandler := handlers.NewWeekHandler(calendarService, today)
	calendarHandler := handlers.NewCalendarHandler(calendarService, today)
	checklistHandler := handlers.NewChecklistHandler(checklists, cleaning)
	notesHandler := handlers.NewNotesHandler(notesLog, calendarService)
	icalHandler := handlers.NewICalHandler(exporter, calendarName)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/calendar.ics", icalHandler.Feed)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.InjectSettings(settingsService))

		r.Get("/settings", settingsHandler.Get)
		r.Post("/settings", settingsHandler.Update)

		r.Get("/week", weekHandler.Overview)

		r.Get("/calendar", calendarHandler.List)
		r.Post("/calendar/fill", calendarHandler.FillWeek)
		r.Post("/calendar/{date}", calendarHandler.Assign)
		r.Delete("/calendar/{date}", calendarHandler.Clear)

		r.Get("/checklists/cleaning/progress", checklistHandler.CleaningProgress)
		r.Post("/checklists/cleaning/reset", checklistHandler.CleaningReset)
		r.Get("/checklists/{list}", checklistHandler.List)
		r.Post("/checklists/{list}", checklistHandler.Add)
		r.Post("/checklists/{list}/{id}/toggle", checklistHandler.Toggle)
		r.Delete("/checklists/{list}/{id}", checklistHandler.Remove)

		r.Get("/notes", notesHandler.List)
		r.Post("/notes", notesHandler.Add)
		r.Delete("/notes/{id}", notesHandler.Remove)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

func (server *Server) Handler() http.Handler {
	return server.router
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address, "ical", server.config.BaseURL+"/calendar.ics")
	return http.ListenAndServe(address, server.router)
}
