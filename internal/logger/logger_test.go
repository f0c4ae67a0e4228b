package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesStructuredLines(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log, err := Init(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	log.Info().Str("view", "catalogue").Msg("mounted")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "mounted", line["message"])
	assert.Equal(t, "catalogue", line["view"])
}

func TestInit_CreatesLogFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "state", "alcove.log")
	log, err := Init(Options{Path: path})
	require.NoError(t, err)

	log.Info().Msg("boot")
	assert.FileExists(t, path)
}

func TestGet_BeforeInitIsNoop(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// Must not panic, must not write anywhere.
	log := Get()
	log.Error().Msg("dropped")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}
