package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/tmwhalen/alcove/internal/library"
	"github.com/tmwhalen/alcove/internal/prefs"
	"github.com/tmwhalen/alcove/internal/session"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    library.Catalogue
	Session   *session.Store
	ThemeName string
	PrefsPath string
	Logger    zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	api       library.Catalogue
	session   *session.Store
	prefsPath string
	log       zerolog.Logger
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Session state
	booted bool // startup identity check resolved
	user   *library.User

	// Data state
	data     collections
	loading  bool
	spin     spinner.Model
	errorMsg string

	// Catalogue state
	filter      library.BookFilter
	selectedRow int

	// Shelves state
	shelfRow     int
	shelfID      int64 // target of the shelf detail view
	shelfDetail  *library.Bookshelf
	shelfBooks   []library.Book
	shelfBookRow int

	// Settings state
	settingsTab int // 0 shelves, 1 categories, 2 series
	settingsRow int

	// Form views
	loginForm    loginForm
	registerForm registerForm

	// Modal dialog, nil when closed
	modal Modal

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:          ctx,
		api:          opts.Client,
		session:      opts.Session,
		prefsPath:    prefsPath,
		log:          opts.Logger,
		keys:         DefaultKeyMap(),
		theme:        theme,
		spin:         sp,
		currentView:  ViewLogin,
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		bootCmd(m.ctx, m.session),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case sessionMsg:
		return m.handleSession(msg)

	case loginMsg:
		return m.handleLogin(msg)

	case registerMsg:
		return m.handleRegister(msg)

	case logoutMsg:
		m.user = nil
		m.data = collections{}
		m.loginForm.reset()
		m.currentView = ViewLogin
		return m, nil

	case collectionsMsg:
		m.loading = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		m.errorMsg = ""
		m.data = msg.data
		m.clampSelections()
		return m, nil

	case shelfDetailMsg:
		m.loading = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		if msg.shelf == nil {
			m.currentView = ViewNotFound
			return m, nil
		}
		m.errorMsg = ""
		m.shelfDetail = msg.shelf
		m.shelfBooks = msg.books
		if m.shelfBookRow >= len(m.shelfBooks) {
			m.shelfBookRow = max(len(m.shelfBooks)-1, 0)
		}
		return m, nil

	case bookDetailMsg:
		m.loading = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		if msg.book == nil {
			m.errorMsg = "That book no longer exists"
			return m, m.refresh()
		}
		m.modal = newBookDetailModal(*msg.book)
		return m, nil

	case refreshMsg:
		m.loading = true
		return m, m.refresh()

	case filterAppliedMsg:
		m.filter = msg.filter
		m.selectedRow = 0
		return m, nil

	case saveDoneMsg, lookupMsg:
		return m.updateModal(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch {
	case m.showHelp:
		b.WriteString(m.renderHelp())
	case m.modal != nil:
		b.WriteString(m.modal.View(m.theme, m.width, m.contentHeight()))
	default:
		b.WriteString(m.renderContent())
	}
	return b.String()
}

// contentHeight is the viewport height below the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 1)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	if !m.booted {
		return m.renderCentered(m.spin.View() + " Checking session...")
	}
	if m.loading {
		return m.renderCentered(m.spin.View() + " Loading...")
	}

	switch m.currentView {
	case ViewHome:
		return m.renderHome()
	case ViewCatalogue:
		return m.renderCatalogue()
	case ViewShelves:
		return m.renderShelves()
	case ViewShelfDetail:
		return m.renderShelfDetail()
	case ViewSettings:
		return m.renderSettings()
	case ViewLogin:
		return m.renderLogin()
	case ViewRegister:
		return m.renderRegister()
	default:
		return m.renderNotFound()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even with a form or modal open.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}

	// Form views own the keyboard while active.
	switch m.currentView {
	case ViewLogin:
		return m.handleLoginKey(msg)
	case ViewRegister:
		return m.handleRegisterKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.log.Debug().Err(err).Msg("save theme preference failed")
			}
		}
		return m, nil

	case "w":
		return m, m.navigate(ViewHome)

	case "c":
		return m, m.navigate(ViewCatalogue)

	case "b":
		return m, m.navigate(ViewShelves)

	case "s":
		return m, m.navigate(ViewSettings)

	case "O":
		return m, logoutCmd(m.ctx, m.session)

	case "esc":
		if m.currentView == ViewShelfDetail {
			return m, m.navigate(ViewShelves)
		}
		return m, m.navigate(ViewHome)
	}

	// View-specific keys
	switch m.currentView {
	case ViewCatalogue:
		return m.handleCatalogueKey(msg)
	case ViewShelves:
		return m.handleShelvesKey(msg)
	case ViewShelfDetail:
		return m.handleShelfDetailKey(msg)
	case ViewSettings:
		return m.handleSettingsKey(msg)
	}

	return m, nil
}

// updateModal forwards a message to the open modal.
func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		return m, nil
	}
	modal, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = modal
	}
	return m, cmd
}

// navigate switches to a view through the authorization gate and kicks off
// the fetch its content needs.
func (m *Model) navigate(v View) tea.Cmd {
	target := resolveView(v, m.user)
	if target == ViewLogin && m.currentView != ViewLogin {
		m.loginForm.reset()
	}
	m.currentView = target
	m.errorMsg = ""

	switch target {
	case ViewCatalogue, ViewShelves, ViewSettings, ViewHome:
		m.loading = true
		return loadCollectionsCmd(m.ctx, m.api)
	case ViewShelfDetail:
		m.loading = true
		return loadShelfCmd(m.ctx, m.api, m.shelfID)
	}
	return nil
}

// refresh re-fetches the data behind the current view.
func (m *Model) refresh() tea.Cmd {
	switch m.currentView {
	case ViewShelfDetail:
		return tea.Batch(
			loadShelfCmd(m.ctx, m.api, m.shelfID),
			loadCollectionsCmd(m.ctx, m.api),
		)
	case ViewHome, ViewCatalogue, ViewShelves, ViewSettings:
		return loadCollectionsCmd(m.ctx, m.api)
	}
	return nil
}

// clampSelections keeps list cursors inside the freshly loaded collections.
func (m *Model) clampSelections() {
	if n := len(m.filteredBooks()); m.selectedRow >= n {
		m.selectedRow = max(n-1, 0)
	}
	if n := len(m.data.shelves); m.shelfRow >= n {
		m.shelfRow = max(n-1, 0)
	}
	if n := m.settingsRowCount(); m.settingsRow >= n {
		m.settingsRow = max(n-1, 0)
	}
}

func (m Model) handleSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	m.booted = true
	if msg.err != nil {
		m.errorMsg = msg.err.Error()
		m.currentView = ViewLogin
		return m, nil
	}
	m.user = msg.user
	if m.user == nil {
		m.currentView = ViewLogin
		return m, nil
	}
	return m, m.navigate(ViewHome)
}

func (m Model) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	m.loginForm.phase = formIdle
	if msg.err != nil {
		m.loginForm.errMsg = msg.err.Error()
		return m, nil
	}
	if msg.user == nil {
		m.loginForm.errMsg = "Invalid username or password"
		return m, nil
	}
	m.user = msg.user
	m.loginForm.reset()
	return m, m.navigate(ViewHome)
}

func (m Model) handleRegister(msg registerMsg) (tea.Model, tea.Cmd) {
	m.registerForm.phase = formIdle
	if msg.err != nil {
		m.registerForm.errMsg = msg.err.Error()
		return m, nil
	}
	if msg.user == nil {
		m.registerForm.errMsg = "Registration was refused; the username may be taken"
		return m, nil
	}
	m.user = msg.user
	m.registerForm.reset()
	return m, m.navigate(ViewHome)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
