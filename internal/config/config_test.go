package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "file:sms.db?cache=shared&mode=rwc", cfg.Database.DSN)
	assert.Equal(t, 100, cfg.Dashboard.RecentLimit)
	assert.Equal(t, int64(1<<20), cfg.Webhook.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "server.log", cfg.Logging.Path)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_DSN", "file:other.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "file:other.db", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset variables keep their defaults
	assert.Equal(t, 100, cfg.Dashboard.RecentLimit)
	assert.Equal(t, "server.log", cfg.Logging.Path)
}

func TestFromEnvInvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := FromEnv(context.Background())
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"server": {"port": 9090, "host": "0.0.0.0"},
		"database": {"dsn": "file:test.db"},
		"dashboard": {"recent_limit": 50},
		"logging": {"level": "warn", "path": "test.log"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
	assert.Equal(t, 50, cfg.Dashboard.RecentLimit)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	// Relative path rejected
	_, err := LoadConfig("config.json")
	assert.Error(t, err)

	// Missing file
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	// Invalid JSON
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
