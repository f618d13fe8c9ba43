package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/W/Up/Click - Flap, start, restart after game over
  M                - Toggle sound
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --seed 7 --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs go nowhere by default.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	g, err := newGame(logger)
	if err != nil {
		return err
	}

	runErr := tui.Run(tui.Options{
		Session: g.session,
		Effects: g.fx,
		Clock:   g.clock,
		Muter:   g.sound,
		Muted:   flagMute,
		Logger:  logger,
		Config:  cfg,
	})

	if err := g.Close(); err != nil {
		logger.Warn("shutdown", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
