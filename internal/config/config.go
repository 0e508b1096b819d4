// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for optional settings.
const (
	DefaultListenAddr     = ":8080"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultJobTimeout     = 10 * time.Minute
	DefaultHTTPTimeout    = 30 * time.Second
)

// Config holds everything the service needs to talk to its collaborators.
type Config struct {
	ListenAddr string

	MarketAPIBase string
	RenderAPIBase string

	AnthropicAPIKey string
	AnthropicModel  string

	JobTimeout  time.Duration
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:      envOr("LISTEN_ADDR", DefaultListenAddr),
		MarketAPIBase:   os.Getenv("MARKET_API_BASE"),
		RenderAPIBase:   os.Getenv("RENDER_API_BASE"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", DefaultAnthropicModel),
		JobTimeout:      DefaultJobTimeout,
		HTTPTimeout:     DefaultHTTPTimeout,
	}

	if raw := os.Getenv("JOB_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse JOB_TIMEOUT: %w", err)
		}
		cfg.JobTimeout = d
	}
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.MarketAPIBase == "" {
		return fmt.Errorf("MARKET_API_BASE is required")
	}
	if c.RenderAPIBase == "" {
		return fmt.Errorf("RENDER_API_BASE is required")
	}
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
