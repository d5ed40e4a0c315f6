package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/mgutz/logxi/v1"

	"github.com/diogo/auctiondapp/internal/actor"
	"github.com/diogo/auctiondapp/internal/dom"
	"github.com/diogo/auctiondapp/internal/handler"
	"github.com/diogo/auctiondapp/internal/logging"
)

type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// greetDoneMsg is sent when one greet call has completed
type greetDoneMsg struct {
	err error
}

// Model represents the TUI state
type Model struct {
	handler *handler.GreetHandler
	page    *dom.MemoryPage
	ctx     context.Context
	logger  log.Logger

	title    string
	subtitle string

	// UI components
	input   textinput.Model
	spinner spinner.Model
	focus   focusTarget

	// State
	inFlight int
	width    int
}

// Option configures the model
type Option func(*Model)

// WithLogger sets where failed calls are logged
func WithLogger(logger log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithContext sets the context for greet calls
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// WithSubtitle sets the header subtitle, usually the endpoint
func WithSubtitle(subtitle string) Option {
	return func(m *Model) {
		m.subtitle = subtitle
	}
}

// NewModel creates the greet TUI model
func NewModel(greeter actor.Greeter, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = "› "
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorTextMute)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	m := Model{
		title:   "auction_dapp",
		ctx:     context.Background(),
		input:   ti,
		spinner: s,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}

	m.page = dom.NewMemoryPage(handler.ButtonID, handler.InputID, handler.OutputID)
	m.handler = handler.NewGreetHandler(greeter, m.page, handler.WithLogger(m.logger))
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Greeting returns the text currently shown in the greeting element
func (m Model) Greeting() string {
	return m.page.Text(handler.OutputID)
}

// Loading reports whether any call is still in flight
func (m Model) Loading() bool {
	return m.inFlight > 0
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 12; w > 10 {
			m.input.Width = w
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab":
			m = m.toggleFocus()
			return m, nil

		case "enter":
			return m.submit()

		case " ":
			if m.focus == focusButton {
				return m.submit()
			}
		}

		if m.focus == focusInput {
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case greetDoneMsg:
		m.inFlight--
		if m.inFlight < 0 {
			m.inFlight = 0
		}
		if msg.err != nil {
			m.logger.Error("greet failed", "err", msg.err)
		}

	case spinner.TickMsg:
		if m.inFlight > 0 {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) toggleFocus() Model {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.input.Focus()
	}
	return m
}

// submit is the button press: the input is copied to the page, read by the
// handler, and the greet call is handed to bubbletea as a command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	cmd := m.clickCmd()
	if cmd == nil {
		return m, nil
	}
	m.inFlight++
	if m.inFlight == 1 {
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m, cmd
}

func (m Model) clickCmd() tea.Cmd {
	_ = m.page.SetValue(handler.InputID, m.input.Value())
	call, err := m.handler.Begin()
	if err != nil {
		m.logger.Error("greet failed", "err", err)
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return greetDoneMsg{err: call(ctx)}
	}
}

// View renders the TUI
func (m Model) View() string {
	var sections []string

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("✦ "+m.title),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.subtitle),
	)
	sections = append(sections, headerStyle.Render(header))

	input := lipgloss.JoinVertical(lipgloss.Left,
		inputLabelStyle.Render("Enter your name:"),
		m.input.View(),
	)
	sections = append(sections, inputPanelStyle.Render(input))

	button := buttonStyle
	if m.focus == focusButton {
		button = buttonFocusedStyle
	}
	sections = append(sections, button.Render("Click Me!"))

	greeting := m.Greeting()
	if m.inFlight > 0 {
		greeting = strings.TrimSpace(greeting + " " + m.spinner.View())
	}
	sections = append(sections, greetingStyle.Render(greeting))

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatusBar() string {
	items := []string{
		statusKeyStyle.Render("enter") + " greet",
		statusKeyStyle.Render("tab") + " focus",
		statusKeyStyle.Render("esc") + " quit",
	}
	return statusBarStyle.Render(strings.Join(items, "  •  "))
}

// Run starts the greet TUI
func Run(greeter actor.Greeter, opts ...Option) error {
	p := tea.NewProgram(NewModel(greeter, opts...))
	_, err := p.Run()
	return err
}
