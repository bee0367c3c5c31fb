package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("KRAKEN_DB_PATH", filepath.Join(tmp, "data", "brain.db"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Nil(t, cfg.AlertURLs)

	// The data directory is created so sqlite can open the file.
	assert.DirExists(t, filepath.Join(tmp, "data"))
}

func TestLoadOverridesAndAlertList(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("KRAKEN_DB_PATH", filepath.Join(tmp, "brain.db"))
	t.Setenv("KRAKEN_ENV", "production")
	t.Setenv("KRAKEN_HTTP_PORT", "9000")
	t.Setenv("KRAKEN_ALERT_URLS", "discord://token@id, slack://x/y/z ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, []string{"discord://token@id", "slack://x/y/z"}, cfg.AlertURLs)
}
