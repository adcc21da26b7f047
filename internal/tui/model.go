package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/diogo/quoteweb/internal/api"
	"github.com/diogo/quoteweb/internal/logging"
	"github.com/diogo/quoteweb/internal/render"
	"github.com/diogo/quoteweb/internal/viewstate"
)

// maxCardWidth keeps long quotes readable on wide terminals
const maxCardWidth = 72

// revealInterval is the delay between entrance effect frames
const revealInterval = 70 * time.Millisecond

// Message types for the TUI
type (
	// quoteMsg carries the result of fetch request
	quoteMsg struct {
		request uint64
		result  api.FetchResult
	}
	// copyResetMsg is delivered CopyResetDelay after copy seq
	copyResetMsg struct {
		seq uint64
	}
	// revealTickMsg advances the entrance effect of the quote with token
	revealTickMsg struct {
		token uint64
	}
)

// Options configures the quote widget
type Options struct {
	Fetcher   api.QuoteFetcher
	Clipboard Clipboard
	Logger    *log.Logger
	// Theme is a render.TUITheme name; empty keeps the current theme
	Theme string
	// CopyResetDelay overrides viewstate.CopyResetDelay (tests only)
	CopyResetDelay time.Duration
}

// fetchGuard cancels the previous in-flight fetch when a new one starts.
// It is shared by every copy of the Model.
type fetchGuard struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

func (g *fetchGuard) start() context.Context {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	return ctx
}

func (g *fetchGuard) stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Model represents the TUI state
type Model struct {
	fetcher   api.QuoteFetcher
	clipboard Clipboard
	logger    *log.Logger
	guard     *fetchGuard

	// UI components
	spinner spinner.Model

	// State
	state          viewstate.State
	lastErr        error
	revealFrame    int
	copyResetDelay time.Duration
	themeName      string
	ready          bool

	// Dimensions
	width  int
	height int
}

// NewModel creates a new quote widget model
func NewModel(opts Options) Model {
	if opts.Theme != "" && render.SetTUITheme(opts.Theme) {
		UpdateTheme()
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	delay := opts.CopyResetDelay
	if delay <= 0 {
		delay = viewstate.CopyResetDelay
	}

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		fetcher:        opts.Fetcher,
		clipboard:      clip,
		logger:         logger,
		guard:          &fetchGuard{},
		spinner:        s,
		state:          viewstate.Initial(),
		copyResetDelay: delay,
		themeName:      render.GetTUITheme().Name,
	}
}

// State returns the current view state
func (m Model) State() viewstate.State {
	return m.state
}

// Init starts the initial fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchQuote(m.state.Request()),
	)
}

// fetchQuote returns a command that resolves request through the fetcher.
// Any fetch still in flight is cancelled first.
func (m Model) fetchQuote(request uint64) tea.Cmd {
	ctx := m.guard.start()
	fetcher := m.fetcher
	return func() tea.Msg {
		return quoteMsg{request: request, result: fetcher.FetchQuote(ctx)}
	}
}

// clearCopied returns a command that resets the copied indicator after d
func clearCopied(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}

// revealTick returns a command that advances the entrance effect
func revealTick(token uint64) tea.Cmd {
	return tea.Tick(revealInterval, func(time.Time) tea.Msg {
		return revealTickMsg{token: token}
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.guard.stop()
			return m, tea.Quit

		case "n", "enter", " ":
			return m.requestQuote()

		case "c", "y":
			return m.copyQuote()

		case "t":
			m.themeName = render.NextTUIThemeName(m.themeName)
			render.SetTUITheme(m.themeName)
			UpdateTheme()
			m.spinner.Style = loadingStyle
			return m, nil
		}

	case quoteMsg:
		next, ok := m.state.Resolve(msg.request, msg.result)
		if !ok {
			m.logger.Debug("discarding stale quote", "request", msg.request, "latest", m.state.Request())
			return m, nil
		}
		m.state = next
		m.lastErr = msg.result.Err
		m.revealFrame = 0
		if msg.result.Fallback {
			m.logger.Warn("showing fallback quote", "err", msg.result.Err)
		}
		return m, revealTick(m.state.Token())

	case copyResetMsg:
		m.state = m.state.ClearCopied(msg.seq)
		return m, nil

	case revealTickMsg:
		if msg.token != m.state.Token() || m.revealFrame >= len(revealColors) {
			return m, nil
		}
		m.revealFrame++
		return m, revealTick(msg.token)

	case spinner.TickMsg:
		if m.state.IsLoading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// requestQuote moves to Loading and starts a fetch
func (m Model) requestQuote() (tea.Model, tea.Cmd) {
	m.state = m.state.Begin()
	m.lastErr = nil
	return m, tea.Batch(
		m.fetchQuote(m.state.Request()),
		m.spinner.Tick,
	)
}

// copyQuote writes the current quote to the clipboard.
// Failures are logged only; the indicator stays off.
func (m Model) copyQuote() (tea.Model, tea.Cmd) {
	if !m.state.CanCopy() {
		return m, nil
	}

	if err := m.clipboard.WriteAll(m.state.Quote().ClipboardText()); err != nil {
		m.logger.Error("failed to copy quote", "err", err)
		return m, nil
	}

	next, seq, _ := m.state.Copy()
	m.state = next
	return m, clearCopied(m.copyResetDelay, seq)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	width := m.cardWidth()
	innerWidth := width - cardStyle.GetHorizontalFrameSize()

	sections := []string{
		titleStyle.Width(innerWidth).Align(lipgloss.Center).Render("✦ Random Quote Generator"),
		m.renderQuote(innerWidth),
		m.renderButtons(innerWidth),
	}

	if m.state.Phase() == viewstate.Error {
		sections = append(sections, advisoryStyle.Width(innerWidth).Align(lipgloss.Center).Render(m.state.Message()))
		if hint := failureHint(m.lastErr); hint != "" {
			sections = append(sections, hintStyle.Width(innerWidth).Align(lipgloss.Center).Render(hint))
		}
	}

	card := cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center, sections...))

	content := lipgloss.JoinVertical(lipgloss.Center, card, m.renderStatusBar(width))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// cardWidth returns the outer width of the card for the current terminal
func (m Model) cardWidth() int {
	width := m.width - 4
	if width > maxCardWidth {
		width = maxCardWidth
	}
	if width < 30 {
		width = 30
	}
	return width
}

// renderQuote renders the quote panel, or the spinner before the first quote
func (m Model) renderQuote(width int) string {
	panelWidth := width - quotePanelStyle.GetHorizontalFrameSize()
	q := m.state.Quote()

	if !m.state.HasQuote() {
		loading := fmt.Sprintf("%s Fetching a quote...", m.spinner.View())
		return quotePanelStyle.Width(width).Render(loadingStyle.Width(panelWidth).Align(lipgloss.Center).Render(loading))
	}

	textStyle := quoteTextStyle
	switch {
	case m.state.IsLoading():
		textStyle = textStyle.Foreground(colorTextMute)
	case m.revealFrame < len(revealColors):
		textStyle = textStyle.Foreground(revealColors[m.revealFrame])
	}

	lines := []string{textStyle.Width(panelWidth).Align(lipgloss.Center).Render(`"` + q.Text + `"`)}
	if q.Author != "" {
		lines = append(lines, authorStyle.Width(panelWidth).Align(lipgloss.Right).Render("- "+q.Author))
	}
	if m.state.IsLoading() {
		lines = append(lines, loadingStyle.Width(panelWidth).Align(lipgloss.Center).Render(m.spinner.View()))
	}

	return quotePanelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderButtons renders the two actions
func (m Model) renderButtons(width int) string {
	newBtn := buttonNewStyle.Render("[n] Get New Quote")

	var copyBtn string
	switch {
	case m.state.Copied():
		copyBtn = buttonCopiedStyle.Render("✓ Copied!")
	case m.state.CanCopy():
		copyBtn = buttonCopyStyle.Render("[c] Copy Quote")
	default:
		copyBtn = buttonMutedStyle.Render("[c] Copy Quote")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, newBtn, "  ", copyBtn)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"n", "New"},
		{"c", "Copy"},
		{"t", m.themeName},
		{"q", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	if src := m.state.Source(); src != "" {
		items = append(items, statusDescStyle.Render("via "+src))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// Run starts the quote widget in the alternate screen
func Run(opts Options) error {
	m := NewModel(opts)
	defer m.guard.stop()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
