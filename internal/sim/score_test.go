package sim

import "testing"

func TestScoreBestIsMonotonic(t *testing.T) {
	s := ScoreState{Best: 5}

	runs := []struct {
		score    int
		improved bool
		best     int
	}{
		{3, false, 5},
		{5, false, 5},
		{8, true, 8},
		{0, false, 8},
	}

	for _, r := range runs {
		s.ResetCurrent()
		for i := 0; i < r.score; i++ {
			s.Increment()
		}
		if got := s.Finish(); got != r.improved {
			t.Errorf("Finish() after %d = %v, expected %v", r.score, got, r.improved)
		}
		if s.Best != r.best {
			t.Errorf("Best after %d = %d, expected %d", r.score, s.Best, r.best)
		}
	}
}

func TestOutboxDrain(t *testing.T) {
	var o Outbox

	if o.Drain() != nil {
		t.Error("Drain() on empty outbox should return nil")
	}

	o.Cue(CueFlap)
	o.Emit(PersistBest{Best: 3})
	got := o.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain() returned %d events, expected 2", len(got))
	}
	if got[0] != (PlayCue{Cue: CueFlap}) {
		t.Errorf("got %v, expected flap cue", got[0])
	}
	if o.Drain() != nil {
		t.Error("second Drain() should be empty")
	}
}

func TestCueNames(t *testing.T) {
	expected := []string{"start", "flap", "score", "hit", "die"}
	for i, c := range Cues {
		if c.String() != expected[i] {
			t.Errorf("Cue(%d).String() = %q, expected %q", c, c.String(), expected[i])
		}
	}
}
