package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginForm is the sign-in view's state.
type loginForm struct {
	inputs [2]textinput.Model
	focus  int
	phase  formPhase
	errMsg string
}

func newLoginForm() loginForm {
	var f loginForm
	f.inputs[0] = newFormInput("Username", 150)
	f.inputs[1] = newPasswordInput("Password")
	f.inputs[0].Focus()
	return f
}

// reset clears the form for a fresh sign-in attempt, keeping the username.
func (f *loginForm) reset() {
	f.inputs[1].SetValue("")
	f.phase = formIdle
	f.errMsg = ""
	f.inputs[f.focus].Blur()
	f.focus = 0
	f.inputs[0].Focus()
}

// handleLoginKey processes keyboard input for the sign-in view.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.loginForm
	if f.phase == formSubmitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		username := strings.TrimSpace(f.inputs[0].Value())
		password := f.inputs[1].Value()
		if username == "" || password == "" {
			f.errMsg = "Username and password are required"
			return m, nil
		}
		f.phase = formSubmitting
		f.errMsg = ""
		return m, loginCmd(m.ctx, m.session, username, password)

	case key.Matches(msg, m.keys.Tab), msg.String() == "down":
		f.focus = focusIndex(f.inputs[:], f.focus, 1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab), msg.String() == "up":
		f.focus = focusIndex(f.inputs[:], f.focus, -1)
		return m, nil

	case msg.String() == "ctrl+r":
		m.registerForm.reset()
		m.currentView = ViewRegister
		return m, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

// renderLogin renders the sign-in view.
func (m Model) renderLogin() string {
	styles := m.theme.Styles()
	f := m.loginForm

	label := func(idx int, text string) string {
		text = padRight(text+":", 10)
		if idx == f.focus {
			return styles.AccentText.Render(text)
		}
		return styles.MutedText.Render(text)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Sign In"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 46)))
	b.WriteString("\n\n")
	b.WriteString(label(0, "Username") + f.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(label(1, "Password") + f.inputs[1].View())
	b.WriteString("\n\n")

	switch {
	case f.phase == formSubmitting:
		b.WriteString(styles.MutedText.Render("Signing in..."))
	case f.errMsg != "":
		b.WriteString(styles.DangerText.Render(f.errMsg))
	default:
		b.WriteString(styles.MutedText.Render("enter sign in · ctrl+r register"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 2).
		Width(54).
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
