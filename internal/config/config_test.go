package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ALCOVE_SERVER_URL", "ALCOVE_TIMEOUT_SECONDS", "ALCOVE_LOG_LEVEL", "ALCOVE_LOG_DIR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, strings.HasSuffix(cfg.LogPath(), filepath.FromSlash("/alcove.log")))
}

func TestLoad_ReadsFileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server_url = "https://books.example.com"
timeout_seconds = 30
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://books.example.com", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `server_url = "https://file.example.com"`)
	t.Setenv("ALCOVE_SERVER_URL", "https://env.example.com")
	t.Setenv("ALCOVE_TIMEOUT_SECONDS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server_url = [broken")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BlankAndNegativeValuesFallBack(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server_url = "   "
timeout_seconds = -4
log_level = ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestExpandPath_Tilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")
	assert.Error(t, err)
}
