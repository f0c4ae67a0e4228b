package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// refreshCmd is what modals return when a mutation succeeded: the owning
// view re-fetches everything rather than patching its local copy.
func refreshCmd() tea.Msg {
	return refreshMsg{}
}

// renderModalBox centers titled modal content over the whole viewport.
func renderModalBox(theme Theme, title, content string, modalWidth, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", max(modalWidth-6, 10))))
	b.WriteString("\n\n")
	b.WriteString(content)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Background(lipgloss.Color(theme.Surface)).
		Padding(1, 2).
		Width(modalWidth).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// confirmModal asks for confirmation before running a destructive command.
type confirmModal struct {
	title   string
	message []string
	confirm tea.Cmd
	phase   formPhase
	errMsg  string
}

func newConfirmModal(title string, message []string, confirm tea.Cmd) *confirmModal {
	return &confirmModal{title: title, message: message, confirm: confirm}
}

// Update implements Modal.
func (m *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		if msg.err != nil {
			m.phase = formIdle
			m.errMsg = msg.err.Error()
			return m, nil, false
		}
		if msg.denied {
			m.phase = formIdle
			m.errMsg = "the server refused the request"
			return m, nil, false
		}
		return m, refreshCmd, true

	case tea.KeyMsg:
		if m.phase == formSubmitting {
			return m, nil, false
		}
		switch {
		case key.Matches(msg, keys.Escape):
			return m, nil, true
		case key.Matches(msg, keys.Confirm), msg.String() == "y":
			m.phase = formSubmitting
			m.errMsg = ""
			return m, m.confirm, false
		case msg.String() == "n":
			return m, nil, true
		}
	}
	return m, nil, false
}

// View implements Modal.
func (m *confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	for _, line := range m.message {
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.phase == formSubmitting:
		b.WriteString(styles.MutedText.Render("Working..."))
	case m.errMsg != "":
		b.WriteString(styles.DangerText.Render(m.errMsg))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("enter/y confirm · esc/n cancel"))
	default:
		b.WriteString(styles.MutedText.Render("enter/y confirm · esc/n cancel"))
	}

	return renderModalBox(theme, m.title, b.String(), 52, width, height)
}
