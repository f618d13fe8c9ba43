// flappy is a Flappy Bird clone for the terminal and the desktop.
//
// Usage:
//
//	flappy [play]            - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy scores            - Show run history and the best score
//	flappy config            - Print the effective game configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML
//	--seed <value>      - RNG seed for reproducible pipe placement
//	--db <path>         - Scores database (default: ~/.flappy/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//	--mute              - Start with sound off
//	--sfx <dir>         - Directory with start/flap/score/hit/die .wav files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
	flagSFXDir   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap to fly between the pipes",
	Long: `Flappy is a side-scrolling one-button game. Tap to flap, fly through
the gaps between the pipes and do not touch the ground.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  scores   - View run history and the best score
  config   - Print the effective configuration

Examples:
  flappy
  flappy window --zoom 0.75
  flappy play --seed 42 --mute
  flappy scores --limit 20
  flappy config > ~/.flappy/configs/flappy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound muted")
	pf.StringVar(&flagSFXDir, "sfx", "", "Directory with .wav files overriding the built-in sounds")

	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
