package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmwhalen/alcove/internal/library"
)

// Field order in the registration form.
const (
	regFieldFirst = iota
	regFieldLast
	regFieldUsername
	regFieldEmail
	regFieldPassword
	regFieldConfirm
	regFieldCount
)

// registerForm is the new-account view's state.
type registerForm struct {
	inputs [regFieldCount]textinput.Model
	focus  int
	phase  formPhase
	errMsg string
}

func newRegisterForm() registerForm {
	var f registerForm
	f.inputs[regFieldFirst] = newFormInput("First name", 150)
	f.inputs[regFieldLast] = newFormInput("Last name", 150)
	f.inputs[regFieldUsername] = newFormInput("Username", 150)
	f.inputs[regFieldEmail] = newFormInput("Email", 254)
	f.inputs[regFieldPassword] = newPasswordInput("Password")
	f.inputs[regFieldConfirm] = newPasswordInput("Confirm password")
	f.inputs[regFieldFirst].Focus()
	return f
}

// reset clears the form.
func (f *registerForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.phase = formIdle
	f.errMsg = ""
	f.focus = regFieldFirst
	f.inputs[regFieldFirst].Focus()
}

// profile assembles the registration payload from the form fields.
func (f *registerForm) profile() library.RegisterProfile {
	return library.RegisterProfile{
		FirstName: strings.TrimSpace(f.inputs[regFieldFirst].Value()),
		LastName:  strings.TrimSpace(f.inputs[regFieldLast].Value()),
		Username:  strings.TrimSpace(f.inputs[regFieldUsername].Value()),
		Email:     strings.TrimSpace(f.inputs[regFieldEmail].Value()),
		Password:  f.inputs[regFieldPassword].Value(),
	}
}

// handleRegisterKey processes keyboard input for the registration view.
func (m Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.registerForm
	if f.phase == formSubmitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		profile := f.profile()
		if err := validate.Struct(profile); err != nil {
			f.errMsg = validationProblem(err)
			return m, nil
		}
		if profile.Password != f.inputs[regFieldConfirm].Value() {
			f.errMsg = "Passwords do not match"
			return m, nil
		}
		f.phase = formSubmitting
		f.errMsg = ""
		return m, registerCmd(m.ctx, m.session, profile)

	case key.Matches(msg, m.keys.Tab), msg.String() == "down":
		f.focus = focusIndex(f.inputs[:], f.focus, 1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab), msg.String() == "up":
		f.focus = focusIndex(f.inputs[:], f.focus, -1)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.loginForm.reset()
		m.currentView = ViewLogin
		return m, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

// renderRegister renders the registration view.
func (m Model) renderRegister() string {
	styles := m.theme.Styles()
	f := m.registerForm

	labels := [regFieldCount]string{"First", "Last", "Username", "Email", "Password", "Confirm"}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Create Account"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 48)))
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := padRight(labels[i]+":", 10)
		if i == f.focus {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case f.phase == formSubmitting:
		b.WriteString(styles.MutedText.Render("Creating account..."))
	case f.errMsg != "":
		b.WriteString(styles.DangerText.Render(f.errMsg))
	default:
		b.WriteString(styles.MutedText.Render("enter create account · esc back to sign in"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 2).
		Width(56).
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
