package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 1668, cfg.Render.Size)
	assert.Equal(t, 17, cfg.Render.QuietZone)
	assert.Equal(t, "H", cfg.Render.ErrorCorrection)
	assert.Equal(t, 35, cfg.Logo.Scale)
	assert.Equal(t, 40.0, cfg.Logo.Radius)
	assert.Equal(t, 8.0, cfg.Logo.Border)
	assert.Equal(t, int64(5<<20), cfg.Logo.MaxUploadBytes)
	assert.Equal(t, 30*time.Minute, cfg.Logo.CacheTTL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrstudio.yaml")
	content := "server:\n  port: 9090\nrender:\n  size: 800\n  quiet_zone: 10\nlogo:\n  cache_ttl: 5m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 800, cfg.Render.Size)
	assert.Equal(t, 10, cfg.Render.QuietZone)
	assert.Equal(t, 5*time.Minute, cfg.Logo.CacheTTL)
	assert.Equal(t, 35, cfg.Logo.Scale)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("QRSTUDIO_RENDER_SIZE", "1000")
	t.Setenv("PORT", "3000")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Render.Size)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Render.QuietZone = cfg.Render.Size
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logo.Scale = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}
