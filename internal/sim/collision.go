package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// Outcome is the result of testing the bird against the head obstacle.
// Fatal and Scored are never both true.
type Outcome struct {
	Fatal  bool
	Scored bool
}

// Evaluate tests the bird against a single obstacle.
//
// Once the bird's leading edge enters the obstacle's horizontal band, any
// part of the bird outside the gap is fatal. Once the leading edge has
// cleared the band, the obstacle scores if armed is set.
func Evaluate(bird core.Circle, head *Obstacle, g PipeGeometry, armed bool) Outcome {
	if head == nil {
		return Outcome{}
	}

	band := core.NewBand(head.X, g.Width)
	if bird.Right() < band.Min {
		return Outcome{}
	}

	if bird.Right() < band.Max {
		roof := g.Roof(*head)
		floor := g.Floor(*head)
		if bird.Top() <= roof || bird.Bottom() >= floor {
			return Outcome{Fatal: true}
		}
		return Outcome{}
	}

	if armed {
		return Outcome{Scored: true}
	}
	return Outcome{}
}

// Referee applies Evaluate once per playing frame: it scores passed
// obstacles and raises a crash on fatal contact.
type Referee struct {
	bird    *Bird
	field   *PipeField
	score   *ScoreState
	overlay *Overlay
	out     *Outbox
	last    Outcome
}

// NewReferee wires a referee to the entities it judges.
func NewReferee(bird *Bird, field *PipeField, score *ScoreState, overlay *Overlay, out *Outbox) *Referee {
	return &Referee{
		bird:    bird,
		field:   field,
		score:   score,
		overlay: overlay,
		out:     out,
	}
}

// Step evaluates the head obstacle. A crash already raised this frame
// (ground contact) skips evaluation.
func (r *Referee) Step(_ float64, mode Mode) {
	r.last = Outcome{}
	if mode != ModePlaying || r.out.Crashed() {
		return
	}

	var head *Obstacle
	if o, ok := r.field.Head(); ok {
		head = &o
	}

	r.last = Evaluate(r.bird.Collider(), head, r.field.Geometry(), r.field.Armed())
	switch {
	case r.last.Fatal:
		r.out.Cue(CueHit)
		r.overlay.Flash()
		r.out.RaiseCrash()
	case r.last.Scored:
		r.score.Increment()
		r.field.Disarm()
		r.out.Cue(CueScore)
	}
}

// RefereeSnapshot exposes the last outcome, for debugging overlays.
type RefereeSnapshot struct {
	Last Outcome
}

// IsSnapshot implements Snapshot.
func (RefereeSnapshot) IsSnapshot() {}

// Snapshot returns the last outcome.
func (r *Referee) Snapshot() Snapshot {
	return RefereeSnapshot{Last: r.last}
}
