package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath string
	BaseURL      string
	LogLevel     string
	Port         string
	Location     *time.Location
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are applied first without overriding variables that
// are already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	timezone := envOrDefault("TIMEZONE", "Europe/Amsterdam")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return Config{}, fmt.Errorf("loading timezone %q: %w", timezone, err)
	}

	config := Config{
		DatabasePath: envOrDefault("DATABASE_PATH", "./data/overdracht.db"),
		BaseURL:      strings.TrimRight(envOrDefault("BASE_URL", "http://localhost:8080"), "/"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		Port:         envOrDefault("PORT", "8080"),
		Location:     location,
	}

	if _, err := config.SlogLevel(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (config Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", config.LogLevel, err)
	}
	return level, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
