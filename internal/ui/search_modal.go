package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmwhalen/alcove/internal/library"
)

// Field order in the search form.
const (
	searchFieldTitle = iota
	searchFieldAuthor
	searchFieldShelf
	searchFieldCategory
	searchFieldSeries
	searchFieldCount
)

// searchModal edits the catalogue's client-side book filter. It never talks
// to the backend; applying it hands a BookFilter back to the catalogue view.
type searchModal struct {
	inputs     [2]textinput.Model
	shelfPick  picker
	catPick    picker
	seriesPick picker
	focus      int
}

func newSearchModal(data collections, current library.BookFilter) *searchModal {
	m := &searchModal{}
	m.inputs[searchFieldTitle] = newFormInput("Title contains", 120)
	m.inputs[searchFieldAuthor] = newFormInput("Author contains", 120)
	m.inputs[searchFieldTitle].SetValue(current.Title)
	m.inputs[searchFieldAuthor].SetValue(current.Author)

	// Reference pickers use the none entry to mean no constraint.
	m.shelfPick = newPicker(withAnyOption(shelfOptions(data.shelves)))
	m.shelfPick.selectID(current.Bookshelf)
	m.catPick = newPicker(categoryOptions(data.categories, "(any)"))
	m.catPick.selectID(current.Category)
	m.seriesPick = newPicker(seriesOptions(data.series, "(any)"))
	m.seriesPick.selectID(current.Series)

	m.inputs[searchFieldTitle].Focus()
	return m
}

// withAnyOption prepends the unconstrained entry to a picker option set.
func withAnyOption(opts []pickOption) []pickOption {
	return append([]pickOption{{label: "(any)"}}, opts...)
}

func (m *searchModal) isPickerField(idx int) bool {
	return idx >= searchFieldShelf
}

func (m *searchModal) moveFocus(delta int) {
	if !m.isPickerField(m.focus) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + searchFieldCount) % searchFieldCount
	if !m.isPickerField(m.focus) {
		m.inputs[m.focus].Focus()
	}
}

func (m *searchModal) cyclePicker(delta int) {
	switch m.focus {
	case searchFieldShelf:
		m.shelfPick.cycle(delta)
	case searchFieldCategory:
		m.catPick.cycle(delta)
	case searchFieldSeries:
		m.seriesPick.cycle(delta)
	}
}

func (m *searchModal) filter() library.BookFilter {
	return library.BookFilter{
		Title:     strings.TrimSpace(m.inputs[searchFieldTitle].Value()),
		Author:    strings.TrimSpace(m.inputs[searchFieldAuthor].Value()),
		Bookshelf: m.shelfPick.selected().id,
		Category:  m.catPick.selected().id,
		Series:    m.seriesPick.selected().id,
	}
}

// Update implements Modal.
func (m *searchModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return m, nil, true
	case key.Matches(keyMsg, keys.Confirm):
		applied := m.filter()
		return m, func() tea.Msg { return filterAppliedMsg{filter: applied} }, true
	case key.Matches(keyMsg, keys.Tab):
		m.moveFocus(1)
		return m, nil, false
	case key.Matches(keyMsg, keys.ShiftTab):
		m.moveFocus(-1)
		return m, nil, false
	}

	if m.isPickerField(m.focus) {
		switch keyMsg.String() {
		case "left", "h":
			m.cyclePicker(-1)
		case "right", "l", " ":
			m.cyclePicker(1)
		case "up", "k":
			m.moveFocus(-1)
		case "down", "j":
			m.moveFocus(1)
		}
		return m, nil, false
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd, false
}

// View implements Modal.
func (m *searchModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	label := func(idx int, text string) string {
		text = padRight(text+":", 11)
		if idx == m.focus {
			return styles.AccentText.Render(text)
		}
		return styles.MutedText.Render(text)
	}
	pickerView := func(idx int, p picker) string {
		value := p.selected().label
		if idx == m.focus {
			return styles.Selected.Render(" < " + value + " > ")
		}
		return styles.Text.Render(value)
	}

	var b strings.Builder
	b.WriteString(label(searchFieldTitle, "Title") + m.inputs[searchFieldTitle].View())
	b.WriteString("\n")
	b.WriteString(label(searchFieldAuthor, "Author") + m.inputs[searchFieldAuthor].View())
	b.WriteString("\n\n")
	b.WriteString(label(searchFieldShelf, "Bookshelf") + pickerView(searchFieldShelf, m.shelfPick))
	b.WriteString("\n")
	b.WriteString(label(searchFieldCategory, "Category") + pickerView(searchFieldCategory, m.catPick))
	b.WriteString("\n")
	b.WriteString(label(searchFieldSeries, "Series") + pickerView(searchFieldSeries, m.seriesPick))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Blank fields match everything; criteria combine."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("enter apply · esc cancel"))

	return renderModalBox(theme, "Search Catalogue", b.String(), 60, width, height)
}
