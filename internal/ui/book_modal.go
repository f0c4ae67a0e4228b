package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmwhalen/alcove/internal/library"
)

// Field order in the book form.
const (
	bookFieldISBN = iota
	bookFieldTitle
	bookFieldSubtitle
	bookFieldAuthor
	bookFieldVolume
	bookFieldShelf
	bookFieldCategory
	bookFieldSeries
	bookFieldCount
)

// bookModal is the add/edit form for a book. The text fields are followed by
// three cycling reference pickers, and ctrl+l runs the ISBN metadata lookup
// to prefill empty fields.
type bookModal struct {
	ctx  context.Context
	api  library.Catalogue
	book library.Book // ID > 0 means edit

	inputs     [5]textinput.Model
	shelfPick  picker
	catPick    picker
	seriesPick picker
	focus      int

	phase   formPhase
	looking bool
	errMsg  string
	infoMsg string
}

func newBookModal(ctx context.Context, api library.Catalogue, data collections, book library.Book) *bookModal {
	m := &bookModal{ctx: ctx, api: api, book: book}

	m.inputs[bookFieldISBN] = newFormInput("978...", 17)
	m.inputs[bookFieldTitle] = newFormInput("Title", 200)
	m.inputs[bookFieldSubtitle] = newFormInput("Subtitle", 200)
	m.inputs[bookFieldAuthor] = newFormInput("Author", 120)
	m.inputs[bookFieldVolume] = newFormInput("Volume number", 5)

	m.inputs[bookFieldISBN].SetValue(book.ISBN)
	m.inputs[bookFieldTitle].SetValue(book.Title)
	m.inputs[bookFieldSubtitle].SetValue(book.Subtitle)
	m.inputs[bookFieldAuthor].SetValue(book.Author)
	if book.VolumeNumber != nil {
		m.inputs[bookFieldVolume].SetValue(strconv.Itoa(*book.VolumeNumber))
	}

	m.shelfPick = newPicker(shelfOptions(data.shelves))
	m.shelfPick.selectID(book.Bookshelf)
	m.catPick = newPicker(categoryOptions(data.categories, "(none)"))
	if book.Category != nil {
		m.catPick.selectID(*book.Category)
	}
	m.seriesPick = newPicker(seriesOptions(data.series, "(none)"))
	if book.Series != nil {
		m.seriesPick.selectID(*book.Series)
	}

	m.inputs[bookFieldISBN].Focus()
	return m
}

func (m *bookModal) isPickerField(idx int) bool {
	return idx >= bookFieldShelf
}

func (m *bookModal) moveFocus(delta int) {
	if !m.isPickerField(m.focus) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + bookFieldCount) % bookFieldCount
	if !m.isPickerField(m.focus) {
		m.inputs[m.focus].Focus()
	}
}

func (m *bookModal) cyclePicker(delta int) {
	switch m.focus {
	case bookFieldShelf:
		m.shelfPick.cycle(delta)
	case bookFieldCategory:
		m.catPick.cycle(delta)
	case bookFieldSeries:
		m.seriesPick.cycle(delta)
	}
}

// assemble builds the payload from the form state, or reports a problem.
func (m *bookModal) assemble() (library.Book, string) {
	book := m.book
	book.ISBN = strings.TrimSpace(m.inputs[bookFieldISBN].Value())
	book.Title = strings.TrimSpace(m.inputs[bookFieldTitle].Value())
	book.Subtitle = strings.TrimSpace(m.inputs[bookFieldSubtitle].Value())
	book.Author = strings.TrimSpace(m.inputs[bookFieldAuthor].Value())

	if book.Title == "" {
		return book, "Title is required"
	}

	shelf := m.shelfPick.selected()
	if shelf.id == 0 {
		return book, "Every book needs a bookshelf; create one first"
	}
	book.Bookshelf = shelf.id
	book.Category = m.catPick.selectedRef()
	book.Series = m.seriesPick.selectedRef()

	book.VolumeNumber = nil
	if vol := strings.TrimSpace(m.inputs[bookFieldVolume].Value()); vol != "" {
		n, err := strconv.Atoi(vol)
		if err != nil || n < 0 {
			return book, "Volume number must be a whole number"
		}
		book.VolumeNumber = &n
	}
	return book, ""
}

func (m *bookModal) submit() tea.Cmd {
	book, problem := m.assemble()
	if problem != "" {
		m.errMsg = problem
		return nil
	}
	m.phase = formSubmitting
	m.errMsg = ""
	m.infoMsg = ""
	return saveBookCmd(m.ctx, m.api, book)
}

func (m *bookModal) lookup() tea.Cmd {
	isbn := strings.TrimSpace(m.inputs[bookFieldISBN].Value())
	if isbn == "" {
		m.errMsg = "Enter an ISBN to look up"
		return nil
	}
	m.looking = true
	m.errMsg = ""
	m.infoMsg = ""
	return lookupISBNCmd(m.ctx, m.api, isbn)
}

// applyLookup prefills empty text fields from lookup metadata.
func (m *bookModal) applyLookup(info library.VolumeInfo) {
	if m.inputs[bookFieldTitle].Value() == "" {
		m.inputs[bookFieldTitle].SetValue(info.Title)
	}
	if m.inputs[bookFieldSubtitle].Value() == "" {
		m.inputs[bookFieldSubtitle].SetValue(info.Subtitle)
	}
	if m.inputs[bookFieldAuthor].Value() == "" && len(info.Authors) > 0 {
		m.inputs[bookFieldAuthor].SetValue(strings.Join(info.Authors, ", "))
	}
}

// Update implements Modal.
func (m *bookModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		if msg.err != nil {
			m.phase = formIdle
			m.errMsg = msg.err.Error()
			return m, nil, false
		}
		if msg.denied {
			m.phase = formIdle
			m.errMsg = "the server refused this book"
			return m, nil, false
		}
		return m, refreshCmd, true

	case lookupMsg:
		m.looking = false
		switch {
		case msg.err != nil:
			m.errMsg = msg.err.Error()
		case msg.info == nil:
			m.infoMsg = "No metadata found for that ISBN"
		default:
			m.applyLookup(*msg.info)
			m.infoMsg = "Prefilled from ISBN lookup"
		}
		return m, nil, false

	case tea.KeyMsg:
		if m.phase == formSubmitting {
			return m, nil, false
		}
		switch {
		case key.Matches(msg, keys.Escape):
			return m, nil, true
		case key.Matches(msg, keys.Confirm):
			return m, m.submit(), false
		case key.Matches(msg, keys.Tab):
			m.moveFocus(1)
			return m, nil, false
		case key.Matches(msg, keys.ShiftTab):
			m.moveFocus(-1)
			return m, nil, false
		case msg.String() == "ctrl+l":
			return m, m.lookup(), false
		}
		if m.isPickerField(m.focus) {
			switch msg.String() {
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
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd, false
	}
	return m, nil, false
}

// View implements Modal.
func (m *bookModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := "Add Book"
	if m.book.ID > 0 {
		title = "Edit Book"
	}

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
	b.WriteString(label(bookFieldISBN, "ISBN") + m.inputs[bookFieldISBN].View())
	b.WriteString(styles.FaintText.Render("  ctrl+l lookup"))
	b.WriteString("\n")
	b.WriteString(label(bookFieldTitle, "Title") + m.inputs[bookFieldTitle].View())
	b.WriteString("\n")
	b.WriteString(label(bookFieldSubtitle, "Subtitle") + m.inputs[bookFieldSubtitle].View())
	b.WriteString("\n")
	b.WriteString(label(bookFieldAuthor, "Author") + m.inputs[bookFieldAuthor].View())
	b.WriteString("\n")
	b.WriteString(label(bookFieldVolume, "Volume") + m.inputs[bookFieldVolume].View())
	b.WriteString("\n\n")
	b.WriteString(label(bookFieldShelf, "Bookshelf") + pickerView(bookFieldShelf, m.shelfPick))
	b.WriteString("\n")
	b.WriteString(label(bookFieldCategory, "Category") + pickerView(bookFieldCategory, m.catPick))
	b.WriteString("\n")
	b.WriteString(label(bookFieldSeries, "Series") + pickerView(bookFieldSeries, m.seriesPick))
	b.WriteString("\n\n")

	switch {
	case m.phase == formSubmitting:
		b.WriteString(styles.MutedText.Render("Saving..."))
	case m.looking:
		b.WriteString(styles.MutedText.Render("Looking up ISBN..."))
	case m.errMsg != "":
		b.WriteString(styles.DangerText.Render(m.errMsg))
	case m.infoMsg != "":
		b.WriteString(styles.InfoText.Render(m.infoMsg))
	default:
		b.WriteString(styles.MutedText.Render("tab next field · enter save · esc cancel"))
	}

	return renderModalBox(theme, title, b.String(), 64, width, height)
}
