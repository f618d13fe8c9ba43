// Package effects executes the events emitted by the simulation against
// the audio player and the score store. Failures are logged and dropped.
package effects

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// ScoreStore is the persistence the executor writes to.
// *storage.Store satisfies it.
type ScoreStore interface {
	ReadBest() (int, error)
	WriteBest(best int) error
	SaveRun(score int) (string, error)
}

// Executor applies simulation events.
type Executor struct {
	player audio.Player
	store  ScoreStore
	logger *log.Logger
}

// New creates an executor. A nil player discards cues, a nil store
// disables persistence and a nil logger discards log output.
func New(player audio.Player, store ScoreStore, logger *log.Logger) *Executor {
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Executor{
		player: player,
		store:  store,
		logger: logger,
	}
}

// LoadBest reads the persisted best score. The second result is false when
// no store is configured or the read failed, in which case frontends show
// only the current score.
func (e *Executor) LoadBest() (int, bool) {
	if e.store == nil {
		return 0, false
	}
	best, err := e.store.ReadBest()
	if err != nil {
		e.logger.Warn("could not read best score", "error", err)
		return 0, false
	}
	return best, true
}

// Apply executes events in order.
func (e *Executor) Apply(events []sim.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case sim.PlayCue:
			e.player.Play(ev.Cue)

		case sim.PersistBest:
			if e.store == nil {
				continue
			}
			if err := e.store.WriteBest(ev.Best); err != nil {
				e.logger.Warn("could not save best score", "best", ev.Best, "error", err)
				continue
			}
			e.logger.Info("new best score", "best", ev.Best)

		case sim.RunFinished:
			// Empty runs are not worth a row in the history
			if e.store == nil || ev.Score <= 0 {
				continue
			}
			id, err := e.store.SaveRun(ev.Score)
			if err != nil {
				e.logger.Warn("could not save run", "score", ev.Score, "error", err)
				continue
			}
			e.logger.Debug("run saved", "id", id, "score", ev.Score)

		default:
			e.logger.Debug("unhandled event", "event", ev)
		}
	}
}
