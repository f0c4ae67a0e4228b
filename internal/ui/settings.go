package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings tabs.
const (
	tabShelves = iota
	tabCategories
	tabSeries
	tabCount
)

func tabLabel(tab int) string {
	switch tab {
	case tabShelves:
		return "Bookshelves"
	case tabCategories:
		return "Categories"
	default:
		return "Series"
	}
}

// settingsRowCount returns the number of rows on the active tab.
func (m Model) settingsRowCount() int {
	switch m.settingsTab {
	case tabShelves:
		return len(m.data.shelves)
	case tabCategories:
		return len(m.data.categories)
	default:
		return len(m.data.series)
	}
}

// settingsRowLabel returns the display label of a row on the active tab.
func (m Model) settingsRowLabel(row int) string {
	switch m.settingsTab {
	case tabShelves:
		return m.data.shelves[row].Name
	case tabCategories:
		return m.data.categories[row].Name
	default:
		return m.data.series[row].Title
	}
}

// handleSettingsKey processes keyboard input for the settings view.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.settingsRowCount()

	switch msg.String() {
	case "h", "left", "shift+tab":
		m.settingsTab = (m.settingsTab - 1 + tabCount) % tabCount
		m.settingsRow = 0
	case "l", "right", "tab":
		m.settingsTab = (m.settingsTab + 1) % tabCount
		m.settingsRow = 0

	case "j", "down":
		if m.settingsRow < count-1 {
			m.settingsRow++
		}
	case "k", "up":
		if m.settingsRow > 0 {
			m.settingsRow--
		}
	case "g", "home":
		m.settingsRow = 0
	case "G", "end":
		m.settingsRow = max(count-1, 0)

	case "a":
		m.modal = newEntityModal(m.ctx, m.api, m.settingsKind(), 0, "")

	case "e":
		if m.settingsRow < count {
			id, label := m.settingsRowRecord(m.settingsRow)
			m.modal = newEntityModal(m.ctx, m.api, m.settingsKind(), id, label)
		}

	case "d":
		if m.settingsRow < count {
			m.modal = m.confirmSettingsDelete(m.settingsRow)
		}
	}

	return m, nil
}

func (m Model) settingsKind() entityKind {
	switch m.settingsTab {
	case tabShelves:
		return kindBookshelf
	case tabCategories:
		return kindCategory
	default:
		return kindSeries
	}
}

// settingsRowRecord returns the id and label of a row on the active tab.
func (m Model) settingsRowRecord(row int) (int64, string) {
	switch m.settingsTab {
	case tabShelves:
		return m.data.shelves[row].ID, m.data.shelves[row].Name
	case tabCategories:
		return m.data.categories[row].ID, m.data.categories[row].Name
	default:
		return m.data.series[row].ID, m.data.series[row].Title
	}
}

// confirmSettingsDelete builds the delete confirmation for the active tab.
// Shelf deletion cascades to its books; category and series deletion only
// clears the reference on affected books.
func (m Model) confirmSettingsDelete(row int) Modal {
	if m.settingsTab == tabShelves {
		return m.confirmShelfDelete(m.data.shelves[row])
	}

	id, label := m.settingsRowRecord(row)
	kind := m.settingsKind()
	message := []string{
		fmt.Sprintf("Delete %s %q?", strings.ToLower(kind.label()), label),
		"Books keep their records; the reference is cleared.",
	}
	if kind == kindCategory {
		return newConfirmModal("Delete Category", message, deleteCategoryCmd(m.ctx, m.api, id))
	}
	return newConfirmModal("Delete Series", message, deleteSeriesCmd(m.ctx, m.api, id))
}

// renderSettings renders the tabbed reference-data managers.
func (m Model) renderSettings() string {
	styles := m.theme.Styles()

	// Tab bar
	var tabs []string
	for tab := 0; tab < tabCount; tab++ {
		label := " " + tabLabel(tab) + " "
		if tab == m.settingsTab {
			tabs = append(tabs, styles.Selected.Bold(true).Render(label))
		} else {
			tabs = append(tabs, styles.MutedText.Render(label))
		}
	}
	tabBar := strings.Join(tabs, styles.FaintText.Render("│"))

	// Active collection
	count := m.settingsRowCount()
	title := fmt.Sprintf("%s · %d", tabLabel(m.settingsTab), count)
	boxHeight := m.contentHeight() - 1

	var body string
	if count == 0 {
		body = m.emptyHint("Nothing here yet. Press a to add one.")
	} else {
		innerWidth := m.width - 2
		var lines []string
		for i := 0; i < count; i++ {
			selected := i == m.settingsRow
			bgColor := m.theme.SurfaceAlt
			style := styles.Text
			if selected {
				bgColor = m.theme.SelectionBg
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
			}
			bg := NewBgStyle(bgColor)
			content := bg.Render(truncate(m.settingsRowLabel(i), innerWidth-4), style)
			lines = append(lines, m.renderListRow(content, innerWidth, selected))
		}
		body = strings.Join(lines, "\n")
	}

	return tabBar + "\n" + m.renderTitledBox(title, body, m.width, boxHeight, true)
}
