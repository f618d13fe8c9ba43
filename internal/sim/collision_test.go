package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestEvaluate(t *testing.T) {
	g := PipeGeometry{Width: 52, TopHeight: 100, Gap: 170}
	head := &Obstacle{X: 0, GapTopY: -50} // gap spans y 50..220

	tests := []struct {
		name     string
		bird     core.Circle
		head     *Obstacle
		armed    bool
		expected Outcome
	}{
		{"no obstacle", core.Circle{X: 10, Y: -55, R: 5}, nil, true, Outcome{}},
		{"above roof inside band", core.Circle{X: 2, Y: -55, R: 5}, head, true, Outcome{Fatal: true}},
		{"touching roof", core.Circle{X: 20, Y: 55, R: 5}, head, true, Outcome{Fatal: true}},
		{"touching floor", core.Circle{X: 20, Y: 215, R: 5}, head, true, Outcome{Fatal: true}},
		{"inside gap", core.Circle{X: 20, Y: 120, R: 5}, head, true, Outcome{}},
		{"not yet entered", core.Circle{X: -10, Y: -55, R: 5}, head, true, Outcome{}},
		{"leading edge at band start", core.Circle{X: -5, Y: -55, R: 5}, head, true, Outcome{Fatal: true}},
		{"past band armed", core.Circle{X: 60, Y: -55, R: 5}, head, true, Outcome{Scored: true}},
		{"past band disarmed", core.Circle{X: 60, Y: 120, R: 5}, head, false, Outcome{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.bird, tc.head, g, tc.armed)
			assert.Equal(t, tc.expected, got)
			assert.False(t, got.Fatal && got.Scored)
		})
	}
}

type refereeFixture struct {
	p       Params
	out     *Outbox
	bird    *Bird
	field   *PipeField
	score   *ScoreState
	overlay *Overlay
	ref     *Referee
}

func newRefereeFixture() *refereeFixture {
	p := DefaultParams()
	f := &refereeFixture{p: p, out: &Outbox{}, score: &ScoreState{}}
	f.bird = NewBird(p, NewGround(p), f.out)
	f.field = NewPipeField(p, fixedRand(0.5))
	f.overlay = NewOverlay(p)
	f.ref = NewReferee(f.bird, f.field, f.score, f.overlay, f.out)
	return f
}

func TestRefereeScoresOnce(t *testing.T) {
	f := newRefereeFixture()
	// Head band ends behind the bird's leading edge.
	f.field.pipes = append(f.field.pipes, Obstacle{X: f.p.BirdX - f.p.PipeWidth, GapTopY: -300})

	var events []Event
	for i := 0; i < 10; i++ {
		f.ref.Step(frame, ModePlaying)
		events = append(events, f.out.Drain()...)
	}

	assert.Equal(t, 1, f.score.Current)
	assert.Equal(t, 1, countCue(events, CueScore))
	assert.False(t, f.field.Armed())
	assert.False(t, f.out.Crashed())
}

func TestRefereeFatalHit(t *testing.T) {
	f := newRefereeFixture()
	// Gap sits far below the bird: roof = -2*BaseOffset + PipeHeight.
	f.field.pipes = append(f.field.pipes, Obstacle{X: f.p.BirdX, GapTopY: -2 * f.p.BaseOffset})

	f.ref.Step(frame, ModePlaying)

	assert.True(t, f.out.Crashed())
	assert.Equal(t, []Cue{CueHit}, cuesOf(f.out.Drain()))
	assert.Equal(t, 1.0, f.overlay.FlashOpacity())
	assert.Zero(t, f.score.Current)

	snap := f.ref.Snapshot().(RefereeSnapshot)
	assert.True(t, snap.Last.Fatal)
}

func TestRefereeIdleOutsidePlaying(t *testing.T) {
	f := newRefereeFixture()
	f.field.pipes = append(f.field.pipes, Obstacle{X: f.p.BirdX, GapTopY: -2 * f.p.BaseOffset})

	f.ref.Step(frame, ModeReady)
	f.ref.Step(frame, ModeGameOver)

	assert.False(t, f.out.Crashed())
	assert.Empty(t, f.out.Drain())
}

func TestRefereeSkipsAfterGroundCrash(t *testing.T) {
	f := newRefereeFixture()
	f.field.pipes = append(f.field.pipes, Obstacle{X: f.p.BirdX, GapTopY: -2 * f.p.BaseOffset})
	f.out.RaiseCrash()

	f.ref.Step(frame, ModePlaying)

	require.True(t, f.out.Crashed())
	assert.Empty(t, f.out.Drain(), "no hit cue after a ground crash")
}
