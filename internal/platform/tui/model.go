package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/game"
)

// Options configure a board model.
type Options struct {
	Config         core.RuntimeConfig
	Theme          game.Theme
	BannerDuration time.Duration
	Logger         *log.Logger

	// Renderer styles the output; SSH sessions pass one bound to the
	// session. Nil uses the default renderer.
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes the board. Empty disables
	// screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a mines session.
type Model struct {
	session  *game.Session
	display  *game.ScreenDisplay
	painter  *Painter
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	cursorX  int
	cursorY  int
	status   string // last screenshot result
	quitting bool
}

// NewModel creates the model and starts the first game.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := opts.Config.FieldSize()
	display := game.NewScreenDisplay(core.NewScreen(w, h), opts.Theme)
	session, err := game.NewSession(opts.Config, display, logger)
	if err != nil {
		return Model{}, err
	}

	painter := NewPainter(opts.Renderer)
	hm := help.New()
	hm.Styles.ShortKey = painter.Renderer().NewStyle().Bold(true)
	hm.Styles.ShortDesc = painter.Renderer().NewStyle().Faint(true)
	hm.Styles.ShortSeparator = painter.Renderer().NewStyle().Faint(true)
	hm.Width = w

	return Model{
		session: session,
		display: display,
		painter: painter,
		keys:    DefaultKeyMap(),
		help:    hm,
		opts:    opts,
		logger:  logger,
		cursorX: w / 2,
		cursorY: h / 2,
	}, nil
}

// Session returns the underlying game session.
func (m Model) Session() *game.Session {
	return m.session
}

// Cursor returns the keyboard cursor position.
func (m Model) Cursor() (int, int) {
	return m.cursorX, m.cursorY
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("mines")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		ev, ok := MapMouse(msg)
		if !ok {
			return m, nil
		}
		if m.session.Field().InBounds(ev.X, ev.Y) {
			m.cursorX, m.cursorY = ev.X, ev.Y
		}
		return m.handle(ev)

	case tea.WindowSizeMsg:
		// The field keeps the size it was created with.
		m.help.Width = msg.Width
		return m, nil

	case BannerDoneMsg:
		if m.session.Phase() == game.PhaseOver && m.session.Games() == msg.Game {
			m.session.Start()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.session.Field()

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		return m.handle(core.Quit())
	case core.ActionUp:
		m.cursorY = core.Clamp(m.cursorY-1, 0, f.Height()-1)
	case core.ActionDown:
		m.cursorY = core.Clamp(m.cursorY+1, 0, f.Height()-1)
	case core.ActionLeft:
		m.cursorX = core.Clamp(m.cursorX-1, 0, f.Width()-1)
	case core.ActionRight:
		m.cursorX = core.Clamp(m.cursorX+1, 0, f.Width()-1)
	case core.ActionOpen:
		return m.handle(core.OpenAt(m.cursorX, m.cursorY))
	case core.ActionFlag:
		return m.handle(core.FlagAt(m.cursorX, m.cursorY))
	case core.ActionRestart:
		return m.handle(core.Restart())
	case core.ActionScreenshot:
		m.status = m.saveScreenshot()
	}

	return m, nil
}

// handle passes an event to the session and turns the step into a command.
func (m Model) handle(ev core.Event) (tea.Model, tea.Cmd) {
	switch m.session.Handle(ev) {
	case game.StepQuit:
		m.quitting = true
		return m, tea.Quit
	case game.StepOver:
		return m, bannerCmd(m.opts.BannerDuration, m.session.Games())
	}
	return m, nil
}

// saveScreenshot writes the current board to a file and returns a status
// message.
func (m Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Error("cannot create screenshot directory", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("mines_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.display.Screen().String()), 0o600); err != nil {
		m.logger.Error("cannot save screenshot", "path", path, "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cx, cy := m.cursorX, m.cursorY
	if m.session.Phase() == game.PhaseOver {
		cx, cy = -1, -1
	}
	board := m.painter.RenderScreen(m.display.Screen(), cx, cy)
	return board + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	f := m.session.Field()
	line := fmt.Sprintf("Flags %d/%d", f.Flags(), f.Bombs())
	if m.status != "" {
		line += "  " + m.status
	}
	line += "  " + m.help.View(m.keys)
	return m.painter.Renderer().NewStyle().MaxWidth(m.help.Width).Render(line)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
