package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/effects"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Muter is implemented by audio players that can be silenced at runtime.
type Muter interface {
	SetMuted(muted bool)
}

// Options configures the terminal frontend.
type Options struct {
	Session *sim.Session
	Effects *effects.Executor
	Clock   *sim.Clock
	Muter   Muter // optional
	Muted   bool  // initial mute state
	Logger  *log.Logger
	Config  core.RuntimeConfig

	// ScreenshotDir defaults to ~/.flappy/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one flappy session.
type Model struct {
	session       *sim.Session
	fx            *effects.Executor
	clock         *sim.Clock
	muter         Muter
	muted         bool
	logger        *log.Logger
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	screenshotDir string
	status        string
	quitting      bool
}

// NewModel creates a model for the given session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fx := opts.Effects
	if fx == nil {
		fx = effects.New(nil, nil, logger)
	}
	clock := opts.Clock
	if clock == nil {
		clock = sim.NewClock(0)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	}

	cfg := opts.Config
	h := help.New()
	h.ShowAll = false

	return Model{
		session:       opts.Session,
		fx:            fx,
		clock:         clock,
		muter:         opts.Muter,
		muted:         opts.Muted,
		logger:        logger,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		screenshotDir: dir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		if m.muter != nil {
			m.muter.SetMuted(m.muted)
		}

	case key.Matches(msg, m.keys.Tap):
		m.tap()
	}

	return m, nil
}

// tap routes a tap to the session and executes the resulting events.
// Taps refused by the session are dropped silently.
func (m Model) tap() {
	m.fx.Apply(m.session.HandleTap())
}

// handleResize processes window resize events. The last row holds the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.clock.Tick(now)
	m.fx.Apply(m.session.Step(delta))
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	DrawFrame(m.screen, m.session.Snapshot())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.screenshotDir, "error", err)
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("flappy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.session.Snapshot())

	footer := m.help.View(m.keys)
	if m.muted {
		footer += "  [muted]"
	}
	if m.status != "" {
		footer += "  " + m.status
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // click to flap
	)

	_, err := p.Run()
	return err
}
