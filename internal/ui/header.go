package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar: logo, session, collection counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string
	parts = append(parts, bg.Render("alcove", styles.Logo))
	parts = append(parts, bg.Render(viewTitle(m.currentView), styles.AccentText))

	// Session summary with role badges.
	if m.user != nil {
		parts = append(parts, bg.Render(m.user.Username, styles.Text))
		for _, role := range m.user.Roles {
			parts = append(parts, styles.RoleStyle(role).Render(role))
		}
	} else {
		parts = append(parts, bg.Render("not signed in", styles.MutedText))
	}

	// Collection counts once signed in and loaded.
	if m.user != nil && len(m.data.books)+len(m.data.shelves) > 0 {
		parts = append(parts,
			bg.Render("Books:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.data.books)), styles.Text),
			bg.Render("Shelves:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.data.shelves)), styles.Text),
		)
	}

	// Active filter indicator.
	if m.currentView == ViewCatalogue && !m.filter.IsZero() {
		parts = append(parts, bg.Render("FILTERED", styles.WarningText.Bold(true)))
	}

	// Transient error display.
	if m.errorMsg != "" {
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.errorMsg, 60), styles.DangerText),
		)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar renders the command hints bar for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogin:
		commands = []cmd{
			{"tab", "Next field"},
			{"enter", "Sign in"},
			{"ctrl+r", "Register"},
			{"ctrl+c", "Quit"},
		}
	case ViewRegister:
		commands = []cmd{
			{"tab", "Next field"},
			{"enter", "Create"},
			{"esc", "Sign in"},
			{"ctrl+c", "Quit"},
		}
	case ViewCatalogue:
		commands = []cmd{
			{"/", "Search"},
			{"r", "Reset"},
			{"enter", "Details"},
			{"a/e/d", "Add/Edit/Delete"},
			{"j/k", "Navigate"},
			{"b", "Shelves"},
			{"s", "Settings"},
			{"?", "More"},
		}
	case ViewShelves:
		commands = []cmd{
			{"enter", "Open"},
			{"a/e/d", "Add/Rename/Delete"},
			{"j/k", "Navigate"},
			{"c", "Catalogue"},
			{"s", "Settings"},
			{"?", "More"},
		}
	case ViewShelfDetail:
		commands = []cmd{
			{"a", "Add book"},
			{"e/d", "Edit/Delete"},
			{"j/k", "Navigate"},
			{"esc", "Shelves"},
			{"?", "More"},
		}
	case ViewSettings:
		commands = []cmd{
			{"h/l", "Switch tab"},
			{"a/e/d", "Add/Edit/Delete"},
			{"j/k", "Navigate"},
			{"c", "Catalogue"},
			{"?", "More"},
		}
	case ViewNotFound:
		commands = []cmd{
			{"w", "Home"},
			{"q", "Quit"},
		}
	default: // ViewHome
		commands = []cmd{
			{"c", "Catalogue"},
			{"b", "Bookshelves"},
			{"s", "Settings"},
			{"O", "Sign out"},
			{"?", "More"},
			{"q", "Quit"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// renderCentered centers a muted one-liner in the content area.
func (m Model) renderCentered(text string) string {
	msg := m.theme.Styles().MutedText.Render(text)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, msg)
}
