package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Equal(t, defaultTheme, got.Theme)
}

func TestLoad_MalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = [oops"), 0o644))

	got := Load(path)
	assert.Equal(t, defaultTheme, got.Theme)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	require.NoError(t, Save(path, Prefs{Theme: "Slate"}))
	got := Load(path)
	assert.Equal(t, "Slate", got.Theme)
}

func TestLoad_BlankThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`theme = "  "`), 0o644))

	got := Load(path)
	assert.Equal(t, defaultTheme, got.Theme)
}
