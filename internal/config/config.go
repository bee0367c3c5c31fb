package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config captures runtime configuration sourced from environment variables.
type Config struct {
	Environment  string
	HTTPPort     string
	DatabasePath string

	// Gemini backend. An empty API key disables generation; the brain then
	// answers every deferred command with the fixed fallback reply.
	GeminiAPIKey string
	GeminiModel  string

	// AlertURLs are shoutrrr destination URLs notified when a session
	// escalates to tarpit or ink. Comma separated, may be empty.
	AlertURLs []string
}

// Load reads env vars and falls back to defaults so the server can boot
// with zero configuration.
func Load() (Config, error) {
	cfg := Config{
		Environment:  getEnv("KRAKEN_ENV", "development"),
		HTTPPort:     getEnv("KRAKEN_HTTP_PORT", "8000"),
		DatabasePath: getEnv("KRAKEN_DB_PATH", filepath.Join("data", "brain.db")),
		GeminiAPIKey: getEnv("KRAKEN_GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("KRAKEN_GEMINI_MODEL", "gemini-2.0-flash"),
		AlertURLs:    splitList(getEnv("KRAKEN_ALERT_URLS", "")),
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure data directory: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
