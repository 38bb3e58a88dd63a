package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/portretcoach/overdracht-dashboard/internal/config"
	"github.com/portretcoach/overdracht-dashboard/internal/database"
	"github.com/portretcoach/overdracht-dashboard/internal/repository"
	"github.com/portretcoach/overdracht-dashboard/internal/server"
	"github.com/portretcoach/overdracht-dashboard/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	settingsService := services.NewSettingsService(repository.NewDocumentRepository(db))
	if err := settingsService.Migrate(context.Background()); err != nil {
		slog.Error("migrating settings", "error", err)
		os.Exit(1)
	}

	srv := server.New(db, cfg)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
