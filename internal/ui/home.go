package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHome renders the welcome view.
func (m Model) renderHome() string {
	styles := m.theme.Styles()

	name := "there"
	if m.user != nil {
		name = m.user.DisplayName()
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("alcove"))
	b.WriteString(styles.MutedText.Render("  ·  a home for your books"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("Welcome back, %s.", name)))
	b.WriteString("\n\n")

	b.WriteString(styles.Text.Render(fmt.Sprintf(
		"%d books across %d bookshelves",
		len(m.data.books), len(m.data.shelves))))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(
		"%d categories · %d series",
		len(m.data.categories), len(m.data.series))))
	b.WriteString("\n\n")

	shortcut := func(k, desc string) string {
		return styles.AccentText.Render(padRight(k, 4)) + styles.MutedText.Render(desc)
	}
	b.WriteString(shortcut("c", "browse the catalogue"))
	b.WriteString("\n")
	b.WriteString(shortcut("b", "walk the bookshelves"))
	b.WriteString("\n")
	b.WriteString(shortcut("s", "manage shelves, categories and series"))
	b.WriteString("\n")
	b.WriteString(shortcut("?", "all keyboard shortcuts"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderNotFound renders the catch-all view for unknown destinations.
func (m Model) renderNotFound() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render("Nothing shelved here"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("The page you were looking for does not exist."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Press w to go home."))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
