// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DevAPIKey is the development fallback accepted when no API keys are
// configured. Set API_KEYS in any real deployment.
const DevAPIKey = "demo-api-key-change-in-production"

// Config is the full service configuration.
type Config struct {
	Server    Server
	Auth      Auth
	RateLimit RateLimit
	Log       Log
}

// Server configures the HTTP listener.
type Server struct {
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Auth configures API-key authentication.
type Auth struct {
	// APIKeys lists the accepted X-API-Key values, comma separated in the
	// environment. Empty falls back to DevAPIKey.
	APIKeys []string `env:"API_KEYS" envSeparator:","`
}

// RateLimit configures the per-key request limiter.
type RateLimit struct {
	// MaxRequests per Window per API key; requests beyond it get 429.
	MaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"5"`
	Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1s"`
}

// Log configures logging.
type Log struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Pretty switches to the human-readable console writer for local
	// development; the default is JSON lines.
	Pretty bool `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	config.Auth.APIKeys = cleanKeys(config.Auth.APIKeys)
	if len(config.Auth.APIKeys) == 0 {
		config.Auth.APIKeys = []string{DevAPIKey}
	}

	if config.RateLimit.MaxRequests <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be positive, got %d", config.RateLimit.MaxRequests)
	}
	if config.RateLimit.Window <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", config.RateLimit.Window)
	}

	return config, nil
}

// cleanKeys trims surrounding whitespace and drops empty entries, so
// "key-a, key-b," parses to two keys.
func cleanKeys(keys []string) []string {
	cleaned := make([]string, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key != "" {
			cleaned = append(cleaned, key)
		}
	}
	return cleaned
}
