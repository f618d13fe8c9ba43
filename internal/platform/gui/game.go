// Package gui is the desktop window frontend. It draws simulation frames
// with ebiten and feeds taps from the keyboard, mouse, touch and gamepads.
package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-flappy/internal/platform/effects"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Muter is implemented by audio players that can be silenced at runtime.
type Muter interface {
	SetMuted(muted bool)
}

// Options configures the window frontend.
type Options struct {
	Session *sim.Session
	Effects *effects.Executor
	Clock   *sim.Clock
	Muter   Muter
	Muted   bool
	Logger  *log.Logger

	TPS   int     // updates per second, default 60
	Zoom  float64 // window size relative to the field, default 1
	Debug bool    // show the debug overlay
}

// Game implements ebiten.Game for one session.
type Game struct {
	session *sim.Session
	fx      *effects.Executor
	clock   *sim.Clock
	muter   Muter
	muted   bool
	logger  *log.Logger
	fonts   *Fonts
	debug   bool
	now     func() time.Time
}

// NewGame creates a game for the given session.
func NewGame(opts Options) (*Game, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("gui: session is required")
	}
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

	f := opts.Session.Snapshot()
	fonts, err := LoadFonts(f.Width / 288)
	if err != nil {
		return nil, err
	}

	return &Game{
		session: opts.Session,
		fx:      fx,
		clock:   clock,
		muter:   opts.Muter,
		muted:   opts.Muted,
		logger:  logger,
		fonts:   fonts,
		debug:   opts.Debug,
		now:     time.Now,
	}, nil
}

// Update reads input and advances the simulation by the elapsed wall time.
func (g *Game) Update() error {
	if IsQuitJustPressed() {
		return ebiten.Termination
	}
	if IsMuteJustPressed() {
		g.muted = !g.muted
		if g.muter != nil {
			g.muter.SetMuted(g.muted)
		}
		g.logger.Debug("mute toggled", "muted", g.muted)
	}
	if IsDebugJustPressed() {
		g.debug = !g.debug
	}
	if IsTapJustPressed() {
		g.fx.Apply(g.session.HandleTap())
	}

	delta := g.clock.Tick(g.now())
	g.fx.Apply(g.session.Step(delta))
	return nil
}

// Draw renders the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Snapshot()
	drawFrame(screen, f, g.fonts)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"TPS: %0.2f  FPS: %0.2f\nmode: %s  frames: %d\nbird y: %0.1f v: %0.2f rot: %0.0f\npipes: %d  muted: %v",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			f.Mode, f.FramesElapsed,
			f.Bird.Y, f.Bird.Velocity, f.Bird.Rotation,
			len(f.Field.Pipes), g.muted,
		))
	}
}

// Layout keeps the logical screen at field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.session.Snapshot()
	return int(f.Width), int(f.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	f := opts.Session.Snapshot()
	ebiten.SetWindowSize(int(f.Width*zoom), int(f.Height*zoom))
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	g.logger.Info("window opened", "width", int(f.Width*zoom), "height", int(f.Height*zoom), "tps", tps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
