package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmwhalen/alcove/internal/library"
)

// entityKind selects which single-field record an entityModal edits.
type entityKind int

const (
	kindBookshelf entityKind = iota
	kindCategory
	kindSeries
)

func (k entityKind) label() string {
	switch k {
	case kindBookshelf:
		return "Bookshelf"
	case kindCategory:
		return "Category"
	default:
		return "Series"
	}
}

func (k entityKind) fieldLabel() string {
	if k == kindSeries {
		return "Title"
	}
	return "Name"
}

// entityModal is the shared add/edit form for bookshelves, categories and
// series. They are all a single required text field.
type entityModal struct {
	ctx    context.Context
	api    library.Catalogue
	kind   entityKind
	id     int64 // zero creates, positive updates
	input  textinput.Model
	phase  formPhase
	errMsg string
}

func newEntityModal(ctx context.Context, api library.Catalogue, kind entityKind, id int64, value string) *entityModal {
	input := newFormInput(kind.fieldLabel(), 120)
	input.SetValue(value)
	input.Focus()
	return &entityModal{ctx: ctx, api: api, kind: kind, id: id, input: input}
}

func (m *entityModal) submit() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.errMsg = m.kind.fieldLabel() + " is required"
		return nil
	}
	m.phase = formSubmitting
	m.errMsg = ""
	switch m.kind {
	case kindBookshelf:
		return saveShelfCmd(m.ctx, m.api, library.Bookshelf{ID: m.id, Name: value})
	case kindCategory:
		return saveCategoryCmd(m.ctx, m.api, library.Category{ID: m.id, Name: value})
	default:
		return saveSeriesCmd(m.ctx, m.api, library.Series{ID: m.id, Title: value})
	}
}

// Update implements Modal.
func (m *entityModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		if msg.err != nil {
			m.phase = formIdle
			m.errMsg = msg.err.Error()
			return m, nil, false
		}
		if msg.denied {
			m.phase = formIdle
			m.errMsg = "the server refused this " + strings.ToLower(m.kind.label())
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
		case key.Matches(msg, keys.Confirm):
			return m, m.submit(), false
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd, false
	}
	return m, nil, false
}

// View implements Modal.
func (m *entityModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := "Add " + m.kind.label()
	if m.id > 0 {
		title = "Edit " + m.kind.label()
	}

	var b strings.Builder
	b.WriteString(styles.MutedText.Render(m.kind.fieldLabel() + ": "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.phase == formSubmitting:
		b.WriteString(styles.MutedText.Render("Saving..."))
	case m.errMsg != "":
		b.WriteString(styles.DangerText.Render(m.errMsg))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("enter save · esc cancel"))
	default:
		b.WriteString(styles.MutedText.Render("enter save · esc cancel"))
	}

	return renderModalBox(theme, title, b.String(), 56, width, height)
}
