package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  name: ecommerce\n"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "log", cfg.Worker.Publisher)
	assert.Equal(t, 2*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, "ecommerce.events.", cfg.Redis.StreamPrefix)
	assert.Equal(t, 3, cfg.Database.Retry.MaxAttempts)
	assert.False(t, cfg.Validation.StrictDocuments)
	assert.Equal(t, 1000, cfg.Import.BatchSize)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
app:
  env: production
server:
  port: "9090"
worker:
  publisher: nats
validation:
  strict_documents: true
`))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "nats", cfg.Worker.Publisher)
	assert.True(t, cfg.Validation.StrictDocuments)
	assert.True(t, cfg.IsProduction())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("ECOMMERCE_SERVER_PORT", "7070")
	t.Setenv("ECOMMERCE_WORKER_PUBLISHER", "redis")

	cfg, err := Load(writeConfig(t, "server:\n  port: \"9090\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Worker.Publisher)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	_, err := Load(writeConfig(t, "worker:\n  publisher: kafka\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker.publisher")

	_, err = Load(writeConfig(t, "import:\n  batch_size: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import.batch_size")
}
