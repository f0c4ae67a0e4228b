package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmwhalen/alcove/internal/library"
)

// bookDetailMsg carries the detail fetch behind the book details modal. The
// list payload lacks the lookup metadata, so opening details re-fetches.
type bookDetailMsg struct {
	book *library.Book
	err  error
}

func openBookDetailCmd(ctx context.Context, api library.Catalogue, id int64) tea.Cmd {
	return func() tea.Msg {
		book, err := api.GetBook(ctx, id)
		return bookDetailMsg{book: book, err: err}
	}
}

// filteredBooks applies the active search filter to the loaded catalogue.
func (m Model) filteredBooks() []library.Book {
	return library.FilterBooks(m.data.books, m.filter)
}

// selectedBook returns the book under the catalogue cursor, or nil.
func (m Model) selectedBook() *library.Book {
	books := m.filteredBooks()
	if m.selectedRow < 0 || m.selectedRow >= len(books) {
		return nil
	}
	return &books[m.selectedRow]
}

// handleCatalogueKey processes keyboard input for the catalogue view.
func (m Model) handleCatalogueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	books := m.filteredBooks()

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < len(books)-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		m.selectedRow = max(len(books)-1, 0)

	case "/":
		m.modal = newSearchModal(m.data, m.filter)

	case "r":
		m.filter = library.BookFilter{}
		m.selectedRow = 0

	case "enter":
		if book := m.selectedBook(); book != nil {
			m.loading = true
			return m, openBookDetailCmd(m.ctx, m.api, book.ID)
		}

	case "a":
		if len(m.data.shelves) == 0 {
			m.errorMsg = "Create a bookshelf before adding books"
			return m, nil
		}
		m.modal = newBookModal(m.ctx, m.api, m.data, library.Book{})

	case "e":
		if book := m.selectedBook(); book != nil {
			m.modal = newBookModal(m.ctx, m.api, m.data, *book)
		}

	case "d":
		if book := m.selectedBook(); book != nil {
			m.modal = newConfirmModal(
				"Delete Book",
				[]string{fmt.Sprintf("Delete %q by %s?", book.DisplayTitle(), ternary(book.PrimaryAuthor() != "", book.PrimaryAuthor(), "unknown author"))},
				deleteBookCmd(m.ctx, m.api, book.ID),
			)
		}
	}

	return m, nil
}

// renderCatalogue renders the catalogue view.
func (m Model) renderCatalogue() string {
	books := m.filteredBooks()

	title := fmt.Sprintf("Catalogue · %d books", len(m.data.books))
	if !m.filter.IsZero() {
		title = fmt.Sprintf("Catalogue · %d of %d books", len(books), len(m.data.books))
	}

	if len(m.data.books) == 0 {
		return m.renderTitledBox(title,
			m.emptyHint("No books yet. Press a to catalogue your first one."),
			m.width, m.contentHeight(), true)
	}
	if len(books) == 0 {
		return m.renderTitledBox(title,
			m.emptyHint("No books match the filter. Press r to reset it."),
			m.width, m.contentHeight(), true)
	}

	innerWidth := m.width - 2
	var lines []string
	for i, book := range books {
		content := m.formatBookRow(book, innerWidth, i == m.selectedRow, true)
		lines = append(lines, m.renderListRow(content, innerWidth, i == m.selectedRow))
	}

	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, m.contentHeight(), true)
}

// formatBookRow formats one catalogue row.
// Format: "#ID Title — Author · Shelf [Series #vol]"
func (m Model) formatBookRow(book library.Book, width int, selected, showShelf bool) string {
	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)

	var idStyle, titleStyle, sepStyle, metaStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle = selText
		titleStyle = selText
		sepStyle = selText
		metaStyle = selText
	} else {
		styles := m.theme.Styles()
		idStyle = styles.MutedText
		titleStyle = styles.Text
		sepStyle = styles.FaintText
		metaStyle = styles.MutedText
	}

	var meta []string
	if author := book.PrimaryAuthor(); author != "" {
		meta = append(meta, author)
	}
	if showShelf && book.BookshelfName != "" {
		meta = append(meta, book.BookshelfName)
	}
	if book.SeriesTitle != "" {
		series := book.SeriesTitle
		if book.VolumeNumber != nil {
			series = fmt.Sprintf("%s #%d", series, *book.VolumeNumber)
		}
		meta = append(meta, series)
	}
	metaStr := strings.Join(meta, " · ")

	idStr := fmt.Sprintf("#%d", book.ID)
	titleWidth := max(width-len(idStr)-len(metaStr)-5, 10)

	row := bg.Render(idStr, idStyle) + bg.Space() +
		bg.Render(truncate(book.DisplayTitle(), titleWidth), titleStyle)
	if metaStr != "" {
		row += bg.Render(" · ", sepStyle) + bg.Render(truncate(metaStr, width/2), metaStyle)
	}
	return row
}

// emptyHint renders a muted placeholder line for an empty list box.
func (m Model) emptyHint(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Render(text)
}
