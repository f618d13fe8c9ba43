package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
)

var (
	flagZoom  float64
	flagTPS   int
	flagDebug bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Space/W/Up/Click/Touch - Flap, start, restart after game over
  M                      - Toggle sound
  F3                     - Toggle debug overlay
  Esc/Q                  - Quit

Examples:
  flappy window
  flappy window --zoom 0.75 --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagZoom, "zoom", 1, "Window size relative to the field")
	windowCmd.Flags().IntVar(&flagTPS, "tps", 60, "Updates per second")
	windowCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := newGame(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}()

	return gui.Run(gui.Options{
		Session: g.session,
		Effects: g.fx,
		Clock:   g.clock,
		Muter:   g.sound,
		Muted:   flagMute,
		Logger:  logger,
		TPS:     flagTPS,
		Zoom:    flagZoom,
		Debug:   flagDebug,
	})
}
