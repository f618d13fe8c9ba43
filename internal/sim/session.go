package sim

// Options configures a new Session.
type Options struct {
	Params Params
	Rand   Rand // nil uses a time-seeded generator

	// Best is the persisted best score. BestAvailable is false when
	// storage could not be read.
	Best          int
	BestAvailable bool
}

// Session is the game state machine. It owns every entity, steps them in
// a fixed order once per frame and routes tap actions by mode.
type Session struct {
	p    Params
	mode Mode

	out     *Outbox
	score   *ScoreState
	ground  *Ground
	bird    *Bird
	field   *PipeField
	overlay *Overlay
	referee *Referee

	entities []Entity
	frames   int
}

// NewSession creates a session in Ready mode.
func NewSession(opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	s := &Session{
		p:    opts.Params,
		mode: ModeReady,
		out:  &Outbox{},
		score: &ScoreState{
			Best:          opts.Best,
			BestAvailable: opts.BestAvailable,
		},
	}

	s.ground = NewGround(s.p)
	s.bird = NewBird(s.p, s.ground, s.out)
	s.field = NewPipeField(s.p, rng)
	s.overlay = NewOverlay(s.p)
	s.referee = NewReferee(s.bird, s.field, s.score, s.overlay, s.out)

	// Update order within a frame.
	s.entities = []Entity{s.bird, s.referee, s.ground, s.field, s.overlay}
	return s
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// CanTap reports whether a tap would be accepted now. Taps are refused
// during game over until the panel has settled.
func (s *Session) CanTap() bool {
	return s.mode != ModeGameOver || s.overlay.Settled()
}

// HandleTap routes a tap action by mode and returns the events it produced.
// A tap refused by CanTap is a no-op.
func (s *Session) HandleTap() []Event {
	if !s.CanTap() {
		return nil
	}

	switch s.mode {
	case ModeReady:
		s.mode = ModePlaying
		s.out.Cue(CueStart)
	case ModePlaying:
		s.bird.Flap()
	case ModeGameOver:
		s.reset()
	}
	return s.out.Drain()
}

// reset returns to Ready for a new run. The best score is kept.
func (s *Session) reset() {
	s.mode = ModeReady
	s.bird.Reset()
	s.field.Clear()
	s.score.ResetCurrent()
	s.overlay.Reset()
	s.out.TakeCrash()
}

// Step advances every entity by delta seconds and returns the events
// produced during the frame. Negative deltas are treated as 0.
func (s *Session) Step(delta float64) []Event {
	if delta < 0 {
		delta = 0
	}
	s.frames++

	for _, e := range s.entities {
		e.Step(delta, s.mode)
		if s.out.TakeCrash() && s.mode == ModePlaying {
			s.gameOver()
		}
	}
	return s.out.Drain()
}

// gameOver ends the run and queues its persistence events.
func (s *Session) gameOver() {
	s.mode = ModeGameOver
	s.out.Emit(RunFinished{Score: s.score.Current})
	if s.score.Finish() {
		s.out.Emit(PersistBest{Best: s.score.Best})
	}
}

// Score returns a copy of the score state.
func (s *Session) Score() ScoreState {
	return *s.score
}

// Frames returns the number of steps taken since creation.
func (s *Session) Frames() int {
	return s.frames
}

// Frame is a read-only snapshot of everything a frontend draws.
type Frame struct {
	Mode    Mode
	Bird    BirdSnapshot
	Ground  GroundSnapshot
	Field   FieldSnapshot
	Overlay OverlaySnapshot
	Score   ScoreState
	Width   float64
	Height  float64

	FramesElapsed int
	CanTap        bool
}

// Snapshot collects the post-step state of every entity.
func (s *Session) Snapshot() Frame {
	f := Frame{
		Mode:   s.mode,
		Score:  *s.score,
		Width:  s.p.FieldWidth,
		Height: s.p.FieldHeight,

		FramesElapsed: s.frames,
		CanTap:        s.CanTap(),
	}
	for _, e := range s.entities {
		switch snap := e.Snapshot().(type) {
		case BirdSnapshot:
			f.Bird = snap
		case GroundSnapshot:
			f.Ground = snap
		case FieldSnapshot:
			f.Field = snap
		case OverlaySnapshot:
			f.Overlay = snap
		}
	}
	return f
}

// Bird exposes the bird, for tests and debugging tools.
func (s *Session) Bird() *Bird { return s.bird }

// Field exposes the pipe field, for tests and debugging tools.
func (s *Session) Field() *PipeField { return s.field }
