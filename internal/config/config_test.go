package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "CONTENT_FILE", "IMAGES_DIR", "LOG_LEVEL", "LOG_FILE",
		"CHROME_PATH", "PROBE_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "./images", cfg.Server.ImagesDir)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "", cfg.Content.File)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 60*time.Second, cfg.Probe.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CONTENT_FILE", "portfolio.yaml")
	t.Setenv("PROBE_TIMEOUT_SECONDS", "15")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "portfolio.yaml", cfg.Content.File)
	assert.Equal(t, 15*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout, "invalid ints fall back to the default")
}

func TestValidate(t *testing.T) {
	t.Run("Should reject a non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "http")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Should reject an unknown gin mode", func(t *testing.T) {
		t.Setenv("GIN_MODE", "verbose")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Should reject a non-positive probe timeout", func(t *testing.T) {
		t.Setenv("PROBE_TIMEOUT_SECONDS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
