package effects

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

type recordingPlayer struct {
	cues []sim.Cue
}

func (p *recordingPlayer) Play(c sim.Cue) { p.cues = append(p.cues, c) }

type fakeStore struct {
	best     int
	runs     []int
	readErr  error
	writeErr error
	saveErr  error
}

func (s *fakeStore) ReadBest() (int, error) { return s.best, s.readErr }

func (s *fakeStore) WriteBest(best int) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.best = best
	return nil
}

func (s *fakeStore) SaveRun(score int) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.runs = append(s.runs, score)
	return "run-id", nil
}

func newLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestApplyPlaysCues(t *testing.T) {
	player := &recordingPlayer{}
	e := New(player, nil, nil)

	e.Apply([]sim.Event{
		sim.PlayCue{Cue: sim.CueStart},
		sim.PlayCue{Cue: sim.CueFlap},
		sim.PlayCue{Cue: sim.CueScore},
	})

	assert.Equal(t, []sim.Cue{sim.CueStart, sim.CueFlap, sim.CueScore}, player.cues)
}

func TestApplyPersists(t *testing.T) {
	store := &fakeStore{best: 2}
	e := New(nil, store, nil)

	e.Apply([]sim.Event{sim.RunFinished{Score: 5}, sim.PersistBest{Best: 5}})

	assert.Equal(t, 5, store.best)
	assert.Equal(t, []int{5}, store.runs)
}

func TestApplySkipsEmptyRuns(t *testing.T) {
	store := &fakeStore{}
	e := New(nil, store, nil)

	e.Apply([]sim.Event{sim.RunFinished{Score: 0}})

	assert.Empty(t, store.runs)
}

func TestApplyLogsStorageFailures(t *testing.T) {
	var buf bytes.Buffer
	store := &fakeStore{
		writeErr: errors.New("disk full"),
		saveErr:  errors.New("disk full"),
	}
	player := &recordingPlayer{}
	e := New(player, store, newLogger(&buf))

	require.NotPanics(t, func() {
		e.Apply([]sim.Event{
			sim.RunFinished{Score: 3},
			sim.PersistBest{Best: 3},
			sim.PlayCue{Cue: sim.CueDie},
		})
	})

	assert.Contains(t, buf.String(), "could not save run")
	assert.Contains(t, buf.String(), "could not save best score")
	assert.Equal(t, []sim.Cue{sim.CueDie}, player.cues, "cues still play after storage errors")
}

func TestLoadBest(t *testing.T) {
	tests := []struct {
		name          string
		store         ScoreStore
		expectedBest  int
		expectedAvail bool
	}{
		{"no store", nil, 0, false},
		{"fresh store", &fakeStore{}, 0, true},
		{"stored best", &fakeStore{best: 9}, 9, true},
		{"read failure", &fakeStore{best: 9, readErr: errors.New("locked")}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			best, ok := New(nil, tc.store, nil).LoadBest()
			assert.Equal(t, tc.expectedBest, best)
			assert.Equal(t, tc.expectedAvail, ok)
		})
	}
}

func TestSessionIntegration(t *testing.T) {
	store := &fakeStore{best: 0}
	player := &recordingPlayer{}
	e := New(player, store, nil)

	best, ok := e.LoadBest()
	s := sim.NewSession(sim.Options{Params: sim.DefaultParams(), Best: best, BestAvailable: ok})

	e.Apply(s.HandleTap())
	for i := 0; i < 1000 && s.Mode() == sim.ModePlaying; i++ {
		e.Apply(s.Step(1.0 / 60))
	}

	require.Equal(t, sim.ModeGameOver, s.Mode())
	assert.Equal(t, sim.CueStart, player.cues[0])
	assert.Empty(t, store.runs, "zero-score run is not saved")
}
