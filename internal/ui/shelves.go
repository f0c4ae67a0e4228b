package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmwhalen/alcove/internal/library"
)

// selectedShelf returns the shelf under the list cursor, or nil.
func (m Model) selectedShelf() *library.Bookshelf {
	if m.shelfRow < 0 || m.shelfRow >= len(m.data.shelves) {
		return nil
	}
	return &m.data.shelves[m.shelfRow]
}

// handleShelvesKey processes keyboard input for the bookshelf list view.
func (m Model) handleShelvesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.shelfRow < len(m.data.shelves)-1 {
			m.shelfRow++
		}
	case "k", "up":
		if m.shelfRow > 0 {
			m.shelfRow--
		}
	case "g", "home":
		m.shelfRow = 0
	case "G", "end":
		m.shelfRow = max(len(m.data.shelves)-1, 0)

	case "enter":
		if shelf := m.selectedShelf(); shelf != nil {
			m.shelfID = shelf.ID
			m.shelfBookRow = 0
			return m, m.navigate(ViewShelfDetail)
		}

	case "a":
		m.modal = newEntityModal(m.ctx, m.api, kindBookshelf, 0, "")

	case "e":
		if shelf := m.selectedShelf(); shelf != nil {
			m.modal = newEntityModal(m.ctx, m.api, kindBookshelf, shelf.ID, shelf.Name)
		}

	case "d":
		if shelf := m.selectedShelf(); shelf != nil {
			m.modal = m.confirmShelfDelete(*shelf)
		}
	}

	return m, nil
}

// confirmShelfDelete builds the cascade-warning confirmation for a shelf.
func (m Model) confirmShelfDelete(shelf library.Bookshelf) Modal {
	count := m.data.booksOnShelf(shelf.ID)
	message := []string{fmt.Sprintf("Delete bookshelf %q?", shelf.Name)}
	if count > 0 {
		message = append(message,
			fmt.Sprintf("The %d books on it will be deleted with it.", count))
	}
	return newConfirmModal("Delete Bookshelf", message, deleteShelfCmd(m.ctx, m.api, shelf.ID))
}

// renderShelves renders the bookshelf list view.
func (m Model) renderShelves() string {
	title := fmt.Sprintf("Bookshelves · %d", len(m.data.shelves))

	if len(m.data.shelves) == 0 {
		return m.renderTitledBox(title,
			m.emptyHint("No bookshelves yet. Press a to add one."),
			m.width, m.contentHeight(), true)
	}

	innerWidth := m.width - 2
	styles := m.theme.Styles()

	var lines []string
	for i, shelf := range m.data.shelves {
		count := m.data.booksOnShelf(shelf.ID)
		selected := i == m.shelfRow

		bgColor := m.theme.SurfaceAlt
		nameStyle := styles.Text
		countStyle := styles.MutedText
		if selected {
			bgColor = m.theme.SelectionBg
			sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
			nameStyle = sel
			countStyle = sel
		}
		bg := NewBgStyle(bgColor)

		content := bg.Render(truncate(shelf.Name, innerWidth-16), nameStyle) +
			bg.Render(" · ", countStyle) +
			bg.Render(fmt.Sprintf("%d books", count), countStyle)
		lines = append(lines, m.renderListRow(content, innerWidth, selected))
	}

	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, m.contentHeight(), true)
}

// selectedShelfBook returns the book under the shelf detail cursor, or nil.
func (m Model) selectedShelfBook() *library.Book {
	if m.shelfBookRow < 0 || m.shelfBookRow >= len(m.shelfBooks) {
		return nil
	}
	return &m.shelfBooks[m.shelfBookRow]
}

// handleShelfDetailKey processes keyboard input for the shelf detail view.
func (m Model) handleShelfDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.shelfBookRow < len(m.shelfBooks)-1 {
			m.shelfBookRow++
		}
	case "k", "up":
		if m.shelfBookRow > 0 {
			m.shelfBookRow--
		}
	case "g", "home":
		m.shelfBookRow = 0
	case "G", "end":
		m.shelfBookRow = max(len(m.shelfBooks)-1, 0)

	case "enter":
		if book := m.selectedShelfBook(); book != nil {
			m.loading = true
			return m, openBookDetailCmd(m.ctx, m.api, book.ID)
		}

	case "a":
		if m.shelfDetail != nil {
			m.modal = newBookModal(m.ctx, m.api, m.data, library.Book{Bookshelf: m.shelfDetail.ID})
		}

	case "e":
		if book := m.selectedShelfBook(); book != nil {
			m.modal = newBookModal(m.ctx, m.api, m.data, *book)
		}

	case "d":
		if book := m.selectedShelfBook(); book != nil {
			m.modal = newConfirmModal(
				"Delete Book",
				[]string{fmt.Sprintf("Delete %q from this shelf?", book.DisplayTitle())},
				deleteBookCmd(m.ctx, m.api, book.ID),
			)
		}
	}

	return m, nil
}

// renderShelfDetail renders one shelf and its books.
func (m Model) renderShelfDetail() string {
	if m.shelfDetail == nil {
		return m.renderCentered("Loading bookshelf...")
	}

	title := fmt.Sprintf("%s · %d books", m.shelfDetail.Name, len(m.shelfBooks))

	if len(m.shelfBooks) == 0 {
		return m.renderTitledBox(title,
			m.emptyHint("This shelf is empty. Press a to add a book to it."),
			m.width, m.contentHeight(), true)
	}

	innerWidth := m.width - 2
	var lines []string
	for i, book := range m.shelfBooks {
		content := m.formatBookRow(book, innerWidth, i == m.shelfBookRow, false)
		lines = append(lines, m.renderListRow(content, innerWidth, i == m.shelfBookRow))
	}

	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, m.contentHeight(), true)
}
