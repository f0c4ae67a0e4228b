package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"Nightfox", "Kanagawa", "Slate"}, ThemeNames())
}

func TestNextThemeCycles(t *testing.T) {
	assert.Equal(t, "Kanagawa", NextTheme("Nightfox"))
	assert.Equal(t, "Slate", NextTheme("Kanagawa"))
	assert.Equal(t, "Nightfox", NextTheme("Slate"))
	assert.Equal(t, "Nightfox", NextTheme("Unknown"))
}

func TestGetThemeFallsBackToNightfox(t *testing.T) {
	assert.Equal(t, "Slate", GetTheme("Slate").Name)
	assert.Equal(t, "Nightfox", GetTheme("Unknown").Name)
	assert.Equal(t, "Nightfox", GetTheme("").Name)
}

func TestEveryThemeDefinesRoleColors(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, role := range []string{"admin", "editor", "reader"} {
			assert.NotEmpty(t, theme.RoleColors[role], "%s/%s", name, role)
		}
	}
}
