package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/smsshield/internal/prefs"
	"github.com/five82/smsshield/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *state.Controller
	Health     *state.Health
	Logger     *slog.Logger
	Endpoint   string
	ThemeName  string
	Layout     string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *state.Controller
	health     *state.Health
	logger     *slog.Logger
	endpoint   string
	prefsPath  string
	layout     string

	// UI state
	keys       keyMap
	theme      Theme
	nav        state.Navigation
	menuCursor int
	width      int
	height     int
	ready      bool

	// Components
	input    textarea.Model
	spinner  spinner.Model
	spinning bool
	about    viewport.Model
	help     help.Model

	// Overlays
	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	controller := opts.Controller
	if controller == nil {
		controller = state.NewController(nil, logger)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	keys := DefaultKeyMap()
	m := Model{
		ctx:        ctx,
		controller: controller,
		health:     opts.Health,
		logger:     logger.With("component", "ui"),
		endpoint:   opts.Endpoint,
		prefsPath:  opts.PrefsPath,
		layout:     opts.Layout,
		keys:       keys,
		theme:      GetTheme(themeName),
		input:      newInput(keys),
		spinner:    newSpinner(),
		about:      newAboutViewport(),
		help:       help.New(),
	}
	m.input.SetValue(controller.Snapshot().Input)
	m.input.Focus()
	m.applyInputTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.health != nil {
		return tea.Batch(textarea.Blink, tickCmd(DefaultUIInterval))
	}
	return textarea.Blink
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
		m.layoutComponents()
		return m, nil

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case tickMsg:
		// Redraw so the backend indicator follows the health poller.
		return m, tickCmd(DefaultUIInterval)

	case resolvedMsg:
		// The controller already holds the outcome; View reads it from the
		// next snapshot.
		return m, nil
	}

	if m.typing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	opts.Context = ctx
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// layoutComponents sizes the input and About viewport to the window.
func (m *Model) layoutComponents() {
	m.resizeInput()
	m.help.Width = m.width

	width := m.contentWidth()
	m.about.Width = width
	// header, menu, title block and footer
	m.about.Height = max(m.height-m.chromeHeight()-4, 3)
	m.about.SetContent(m.renderAboutBody(width))
}

func (m Model) chromeHeight() int {
	h := 3 // header, spacer, footer
	if m.compact() && m.nav.MenuOpen {
		h += len(state.Views) + 1
	}
	return h
}

// handleKey routes keyboard input. Overlays capture keys first, then the
// open menu, then global bindings, then the focused view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.modal != nil {
		var (
			cmd    tea.Cmd
			closed bool
		)
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.compact() && m.nav.MenuOpen {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextView):
		m.nav.NextView()
		return m.afterNavigate()
	case key.Matches(msg, m.keys.PrevView):
		m.nav.PrevView()
		return m.afterNavigate()
	case key.Matches(msg, m.keys.ToggleMenu):
		return m.toggleMenu()
	case key.Matches(msg, m.keys.CycleTheme) && (msg.String() != "T" || !m.typing()):
		return m.cycleTheme()
	case msg.String() == "f1":
		m.showHelp = true
		return m, nil
	}

	if m.typing() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case msg.String() == "m":
		return m.toggleMenu()
	case key.Matches(msg, m.keys.ViewClassifier):
		m.nav.SelectView(state.ViewClassifier, false)
		return m.afterNavigate()
	case key.Matches(msg, m.keys.ViewAbout):
		m.nav.SelectView(state.ViewAbout, false)
		return m.afterNavigate()
	}

	switch m.nav.Active {
	case state.ViewClassifier:
		if key.Matches(msg, m.keys.Focus) || key.Matches(msg, m.keys.Confirm) {
			cmd := m.input.Focus()
			return m, cmd
		}
	case state.ViewAbout:
		return m.handleAboutKey(msg)
	}
	return m, nil
}

// handleInputKey handles keys while the input box has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.controller.SetInput(m.input.Value())
	return m, cmd
}

// handleMenuKey handles keys while the compact menu is open.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(state.Views)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.nav.SelectView(state.Views[m.menuCursor], true)
		return m.afterNavigate()
	case key.Matches(msg, m.keys.ViewClassifier):
		m.nav.SelectView(state.ViewClassifier, true)
		return m.afterNavigate()
	case key.Matches(msg, m.keys.ViewAbout):
		m.nav.SelectView(state.ViewAbout, true)
		return m.afterNavigate()
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ToggleMenu), msg.String() == "m":
		return m.toggleMenu()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// handleAboutKey scrolls the About viewport.
func (m Model) handleAboutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.about.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.about.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.about.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.about.PageDown()
	}
	return m, nil
}

func (m Model) toggleMenu() (tea.Model, tea.Cmd) {
	if !m.compact() {
		return m, nil
	}
	m.nav.ToggleMenu()
	if m.nav.MenuOpen {
		for i, v := range state.Views {
			if v == m.nav.Active {
				m.menuCursor = i
			}
		}
	}
	m.layoutComponents()
	return m, nil
}

// afterNavigate moves focus to match the newly active view.
func (m Model) afterNavigate() (tea.Model, tea.Cmd) {
	m.layoutComponents()
	if m.nav.Active == state.ViewClassifier {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	m.about.GotoTop()
	return m, nil
}

// cycleTheme switches to the next theme and persists the choice.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyInputTheme()
	m.layoutComponents()
	if m.prefsPath != "" {
		p := prefs.Prefs{Theme: m.theme.Name, Layout: m.layout}
		if err := prefs.Save(m.prefsPath, p); err != nil {
			m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
		}
	}
	return m, nil
}

// renderMain renders the navigation bar, the active view and the footer.
func (m Model) renderMain() string {
	snap := m.controller.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.compact() && m.nav.MenuOpen {
		b.WriteString(m.renderMenu())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var body string
	switch m.nav.Active {
	case state.ViewAbout:
		body = m.renderAbout()
	default:
		body = m.renderClassifier(snap)
	}
	body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)

	footer := m.renderFooter()
	bodyHeight := max(m.height-m.chromeHeight(), 1)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// renderFooter renders key hints, backend reachability and the endpoint.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	hints := m.help.ShortHelpView(m.keys.ShortHelp())

	var right []string
	if m.health != nil {
		right = append(right, m.renderHealth())
	}
	if m.endpoint != "" {
		right = append(right, styles.Footer.Render(truncateMiddle(m.endpoint, max(m.width/3, 12))))
	}
	if len(right) == 0 {
		return hints
	}
	endpoint := strings.Join(right, "  ")
	gap := m.width - lipgloss.Width(hints) - lipgloss.Width(endpoint) - 1
	if gap < 1 {
		return truncate(hints, m.width)
	}
	return hints + strings.Repeat(" ", gap) + endpoint
}

func (m Model) renderHealth() string {
	styles := m.theme.Styles()
	snap := m.health.Snapshot()
	switch {
	case !snap.Checked:
		return styles.FaintText.Render("○ checking")
	case snap.Reachable:
		return styles.SuccessText.Render("● online " + snap.CheckedAt.Format(healthTimeFormat))
	default:
		return styles.DangerText.Render("● offline " + snap.CheckedAt.Format(healthTimeFormat))
	}
}
