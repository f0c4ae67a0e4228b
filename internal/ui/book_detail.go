package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmwhalen/alcove/internal/library"
)

// bookDetailModal shows a single book's full record, including the lookup
// metadata that only the detail endpoint returns.
type bookDetailModal struct {
	book library.Book
}

func newBookDetailModal(book library.Book) *bookDetailModal {
	return &bookDetailModal{book: book}
}

// Update implements Modal. The detail view is read-only: any dismiss key
// closes it.
func (m *bookDetailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	if key.Matches(keyMsg, keys.Escape) || key.Matches(keyMsg, keys.Confirm) || keyMsg.String() == "q" {
		return m, nil, true
	}
	return m, nil, false
}

// View implements Modal.
func (m *bookDetailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	book := m.book

	field := func(label, value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return styles.MutedText.Render(padRight(label+":", 12)) + styles.Text.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(field("Title", book.DisplayTitle()))
	b.WriteString(field("Subtitle", book.Subtitle))
	b.WriteString(field("Author", book.PrimaryAuthor()))
	b.WriteString(field("ISBN", book.ISBN))
	b.WriteString(field("Bookshelf", book.BookshelfName))
	b.WriteString(field("Category", book.CategoryName))
	if book.SeriesTitle != "" {
		series := book.SeriesTitle
		if book.VolumeNumber != nil {
			series += " · volume " + strconv.Itoa(*book.VolumeNumber)
		}
		b.WriteString(field("Series", series))
	}

	if info := book.GoogleData; info != nil {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Lookup Metadata"))
		b.WriteString("\n")
		b.WriteString(field("Publisher", info.Publisher))
		b.WriteString(field("Published", info.PublishedDate))
		if info.PageCount > 0 {
			b.WriteString(field("Pages", fmt.Sprintf("%d", info.PageCount)))
		}
		if len(info.Categories) > 0 {
			b.WriteString(field("Subjects", strings.Join(info.Categories, ", ")))
		}
		if desc := strings.TrimSpace(info.Description); desc != "" {
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render(truncate(desc, 320)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("esc close"))

	return renderModalBox(theme, fmt.Sprintf("Book #%d", book.ID), b.String(), 64, width, height)
}
