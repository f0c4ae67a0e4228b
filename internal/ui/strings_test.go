package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a ver...", truncate("a very long title", 8))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "whole", truncate("  whole  ", 0))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Volume Number", titleCase("volume_number"))
	assert.Equal(t, "Isbn", titleCase("isbn"))
	assert.Equal(t, "", titleCase("  "))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "ab", padRight("ab", 0))
}
