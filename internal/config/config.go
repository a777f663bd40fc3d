// Package config loads runner settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the few knobs the runner and the HTTP demos use. Everything
// has a working default; the env vars exist so the compose profiles can
// override them.
type Config struct {
	// LogLevel sets the runner logger verbosity.
	LogLevel string
	// ChatBaseURL points the chat demo at a live endpoint instead of its
	// local httptest server.
	ChatBaseURL string
	// WeatherBaseURL does the same for the weather demo.
	WeatherBaseURL string
	// ListenAddr is where the ServeMux pattern demo binds when run as a
	// server instead of against httptest.
	ListenAddr string
	// HTTPTimeoutSeconds bounds every demo HTTP call.
	HTTPTimeoutSeconds int
}

// Load reads the environment. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           "info",
		ListenAddr:         ":8090",
		HTTPTimeoutSeconds: 10,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CHAT_BASE_URL"); v != "" {
		cfg.ChatBaseURL = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.WeatherBaseURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be an integer: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got %d", parsed)
		}
		cfg.HTTPTimeoutSeconds = parsed
	}

	return cfg, nil
}
