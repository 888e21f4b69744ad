package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sebastiantruijens/moviedeck/internal/model"
	"github.com/sebastiantruijens/moviedeck/internal/store"
)

// Options wires the TUI to its collaborators
type Options struct {
	Store *store.Store
	// PosterURL resolves a movie's image path to a full URL
	PosterURL func(image string) string
	// OpenURL hands a URL to the system browser
	OpenURL        func(url string) error
	Logger         *slog.Logger
	AlertTTL       time.Duration
	SearchDebounce time.Duration
}

// Model is the bubbletea model of the movie browser. All application
// state lives in the store; Model only keeps widget and layout state.
type Model struct {
	ctx       context.Context
	store     *store.Store
	posterURL func(string) string
	openURL   func(string) error
	logger    *slog.Logger

	keys      keyMap
	help      help.Model
	textInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	pager     paginator.Model

	theme  themeName
	styles styles

	alertTTL  time.Duration
	debounce  time.Duration
	searchSeq int

	status string
	cursor int
	width  int
	height int
}

// New creates the TUI model. ctx bounds the catalog fetches; cancel it on exit.
func New(ctx context.Context, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.PosterURL == nil {
		opts.PosterURL = func(image string) string { return image }
	}
	if opts.OpenURL == nil {
		opts.OpenURL = func(string) error { return errors.New("no browser available") }
	}
	if opts.AlertTTL <= 0 {
		opts.AlertTTL = time.Second
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = 300 * time.Millisecond
	}

	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 40

	// Create explicit key mappings for Option+Backspace (Alt+Backspace)
	ti.KeyMap.DeleteWordBackward = key.NewBinding(
		key.WithKeys("alt+backspace", "ctrl+w"),
	)
	ti.KeyMap.DeleteWordBackward.SetEnabled(true)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	pg := paginator.New()
	pg.Type = paginator.Dots

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		posterURL: opts.PosterURL,
		openURL:   opts.OpenURL,
		logger:    opts.Logger.With("component", "tui"),
		keys:      defaultKeyMap(),
		help:      help.New(),
		textInput: ti,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		pager:     pg,
		alertTTL:  opts.AlertTTL,
		debounce:  opts.SearchDebounce,
		width:     80,
		height:    24,
	}
	m.applyTheme(themeDark)
	return m
}

// Init starts the spinner and the initial catalog fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadMovies())
}

func (m Model) loadMovies() tea.Cmd {
	return func() tea.Msg {
		return moviesLoadedMsg{err: m.store.LoadMovies(m.ctx)}
	}
}

func (m Model) expireAlert(alert *model.Alert) tea.Cmd {
	if alert == nil {
		return nil
	}
	id := alert.ID
	return tea.Tick(m.alertTTL, func(time.Time) tea.Msg {
		return alertExpiredMsg{id: id}
	})
}

// Update handles messages and user input
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textInput.Width = max(10, min(60, msg.Width-10))
		m.resizeViewport()

		perPage := store.PerPageForBreakpoint(store.BreakpointForWidth(msg.Width))
		if err := m.store.SetPerPage(perPage); err != nil {
			m.logger.Warn("set per page", "error", err)
		}
		m.clampCursor()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case moviesLoadedMsg:
		switch {
		case msg.err == nil:
			m.status = ""
		case errors.Is(msg.err, store.ErrLoadSuperseded):
			// a newer reload owns the result
		case errors.Is(msg.err, context.Canceled):
			// the program is shutting down
		default:
			m.status = "Could not load movies. Press r to retry."
		}
		m.clampCursor()

	case alertExpiredMsg:
		m.store.ExpireAlert(msg.id)

	case searchSettledMsg:
		if msg.seq == m.searchSeq {
			m.store.SetPage(1)
			m.cursor = 0
		}

	case openBrowserMsg:
		if msg.err != nil {
			m.logger.Warn("open browser", "error", msg.err)
			m.status = fmt.Sprintf("Failed to open browser: %v", msg.err)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.textInput.Focused() {
		return m.handleSearchKey(msg)
	}

	if m.store.Snapshot().ModalOpen {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		cmd := m.textInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		m.store.SetPage(m.store.Snapshot().PaginationPage - 1)
		m.cursor = 0

	case key.Matches(msg, m.keys.NextPage):
		m.store.SetPage(m.store.Snapshot().PaginationPage + 1)
		m.cursor = 0

	case key.Matches(msg, m.keys.FirstPage):
		m.store.SetPage(1)
		m.cursor = 0

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.store.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Open):
		if movie, ok := m.current(); ok {
			if err := m.store.OpenDetail(movie.ID); err != nil {
				m.logger.Warn("open detail", "error", err)
				break
			}
			m.resizeViewport()
		}

	case key.Matches(msg, m.keys.Favorite):
		if movie, ok := m.current(); ok {
			return m, m.addFavorite(movie.ID)
		}

	case key.Matches(msg, m.keys.Unfavorite):
		if movie, ok := m.current(); ok {
			alert := m.store.RemoveFromFavorite(movie.ID)
			m.clampCursor()
			return m, m.expireAlert(alert)
		}

	case key.Matches(msg, m.keys.SwitchList):
		next := model.PageFavorite
		if m.store.Snapshot().CurrentPage == model.PageFavorite {
			next = model.PageMenu
		}
		if err := m.store.SetCurrentPage(next); err != nil {
			m.logger.Warn("switch list", "error", err)
		}
		m.store.SetPage(1)
		m.cursor = 0

	case key.Matches(msg, m.keys.ViewMode):
		next := model.ViewList
		if m.store.Snapshot().ViewMode == model.ViewList {
			next = model.ViewCard
		}
		if err := m.store.SetViewMode(next); err != nil {
			m.logger.Warn("switch view mode", "error", err)
		}

	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(m.theme.toggle())

	case key.Matches(msg, m.keys.Dismiss):
		m.store.DismissAlert()

	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		return m, m.loadMovies()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleSearchKey feeds the search box. The keyword reaches the store on
// every keystroke; only the jump back to page one waits for typing to pause.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.textInput.Blur()
		return m, nil
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	value := m.textInput.Value()
	if value == before {
		return m, cmd
	}

	m.store.SetSearchKeyword(value)
	m.clampCursor()
	m.searchSeq++
	seq := m.searchSeq
	settle := tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq}
	})
	return m, tea.Batch(cmd, settle)
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Open):
		m.store.CloseDetail()
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		if selected := m.store.Snapshot().SelectedMovie; selected != nil {
			cmd := m.addFavorite(selected.ID)
			m.resizeViewport()
			return m, cmd
		}

	case key.Matches(msg, m.keys.Dismiss):
		m.store.DismissAlert()

	case key.Matches(msg, m.keys.Browser):
		selected := m.store.Snapshot().SelectedMovie
		if selected == nil {
			return m, nil
		}
		posterURL := m.posterURL(selected.Image)
		if posterURL == "" {
			return m, nil
		}
		open := m.openURL
		return m, func() tea.Msg {
			return openBrowserMsg{err: open(posterURL)}
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) addFavorite(id int) tea.Cmd {
	alert, err := m.store.AddToFavorite(id)
	if err != nil {
		m.logger.Warn("add favorite", "error", err)
		return nil
	}
	return m.expireAlert(alert)
}

// current returns the movie under the cursor
func (m Model) current() (model.Movie, bool) {
	visible := m.store.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Movie{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.store.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) applyTheme(name themeName) {
	m.theme = name
	m.styles = newStyles(name)
	m.spinner.Style = m.styles.highlighted
	m.textInput.PromptStyle = m.styles.highlighted
	m.pager.ActiveDot = m.styles.highlighted.Render("•")
	m.pager.InactiveDot = m.styles.mutedText.Render("•")
}

func (m *Model) resizeViewport() {
	frameW, frameH := m.styles.modal.GetFrameSize()
	m.viewport.Width = max(20, m.width-frameW-4)
	m.viewport.Height = max(5, m.height-frameH-8)
	m.viewport.Style = lipgloss.NewStyle()
	if selected := m.store.Snapshot().SelectedMovie; selected != nil {
		m.viewport.SetContent(m.formatMovieDetails(*selected))
		m.viewport.GotoTop()
	}
}
