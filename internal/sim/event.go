package sim

// Cue identifies a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CueFlap
	CueScore
	CueHit
	CueDie
)

// Cues lists every cue, in declaration order.
var Cues = []Cue{CueStart, CueFlap, CueScore, CueHit, CueDie}

// String returns the cue name, which is also its sound file stem.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	case CueDie:
		return "die"
	default:
		return "unknown"
	}
}

// Event is an effect command emitted by the simulation.
// The frontend executes events after each step; the simulation never
// observes their outcome.
type Event interface {
	isEvent()
}

// PlayCue asks for a fire-and-forget sound effect.
type PlayCue struct {
	Cue Cue
}

// PersistBest asks for the best score to be written to storage.
type PersistBest struct {
	Best int
}

// RunFinished reports the final score of a run when it ends.
type RunFinished struct {
	Score int
}

func (PlayCue) isEvent()     {}
func (PersistBest) isEvent() {}
func (RunFinished) isEvent() {}

// Outbox collects events and the crash signal raised during a frame.
type Outbox struct {
	events  []Event
	crashed bool
}

// Emit queues an event.
func (o *Outbox) Emit(e Event) {
	o.events = append(o.events, e)
}

// Cue queues a PlayCue event.
func (o *Outbox) Cue(c Cue) {
	o.Emit(PlayCue{Cue: c})
}

// RaiseCrash signals that the bird hit a pipe or the ground.
func (o *Outbox) RaiseCrash() {
	o.crashed = true
}

// Crashed reports whether a crash was raised and not yet taken.
func (o *Outbox) Crashed() bool {
	return o.crashed
}

// TakeCrash returns and clears the crash signal.
func (o *Outbox) TakeCrash() bool {
	c := o.crashed
	o.crashed = false
	return c
}

// Drain returns the queued events and empties the queue.
func (o *Outbox) Drain() []Event {
	if len(o.events) == 0 {
		return nil
	}
	events := o.events
	o.events = nil
	return events
}
