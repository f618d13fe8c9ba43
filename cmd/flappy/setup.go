package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/effects"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// game bundles everything a frontend needs to run one session.
type game struct {
	session *sim.Session
	fx      *effects.Executor
	clock   *sim.Clock
	sound   *audio.SoundManager
	store   *storage.Store
}

// newGame loads the config, opens storage and audio, and creates the session.
// Storage and audio failures are logged and the game runs without them.
func newGame(logger *log.Logger) (*game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	params := sim.NewParams(cfg)

	g := &game{clock: sim.NewClock(params.MaxDelta)}

	// A nil *storage.Store must not reach the executor as a non-nil interface.
	var scores effects.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, best score unavailable", "path", flagDBPath, "error", err)
	} else {
		g.store = store
		scores = store
	}

	g.sound = audio.NewSoundManager()
	if err := g.sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	if flagSFXDir != "" {
		n, err := g.sound.LoadDir(flagSFXDir)
		if err != nil {
			logger.Warn("some sound files could not be loaded", "dir", flagSFXDir, "error", err)
		}
		logger.Debug("sound files loaded", "dir", flagSFXDir, "count", n)
	}
	g.sound.SetMuted(flagMute)

	g.fx = effects.New(g.sound, scores, logger)
	best, ok := g.fx.LoadBest()

	g.session = sim.NewSession(sim.Options{
		Params:        params,
		Rand:          sim.NewRand(flagSeed),
		Best:          best,
		BestAvailable: ok,
	})
	logger.Info("session ready", "seed", flagSeed, "best", best, "best_available", ok)
	return g, nil
}

// Close releases audio and storage.
func (g *game) Close() error {
	g.sound.Cleanup()
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			return fmt.Errorf("failed to close scores database: %w", err)
		}
	}
	return nil
}
