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

func TestDefaults(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "/server", c.Server.Prefix)
	assert.Equal(t, int64(32<<20), c.MaxUploadBytes())
	assert.Equal(t, []string{"*"}, c.CORS.AllowOrigins)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  prefix: /mock
  max_upload_mb: 4
  shutdown_timeout: 3s
log:
  level: debug
cors:
  allow_origins: ["http://localhost:19006"]
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Addr())
	assert.Equal(t, "/mock", c.Server.Prefix)
	assert.Equal(t, "release", c.Server.Mode)
	assert.Equal(t, int64(4<<20), c.MaxUploadBytes())
	assert.Equal(t, 3*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.Console)
	assert.Equal(t, []string{"http://localhost:19006"}, c.CORS.AllowOrigins)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("PORT", "7000")
	t.Setenv("API_PREFIX", "/v2")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example,")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", c.Addr())
	assert.Equal(t, "/v2", c.Server.Prefix)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORS.AllowOrigins)
}

func TestBadIntEnvIgnored(t *testing.T) {
	t.Setenv("PORT", "eighty")
	c, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 8080, c.Server.Port)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not, a, map]"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server:\n  port: 70000\n"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = Load(writeConfig(t, "server:\n  prefix: server\n"))
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
