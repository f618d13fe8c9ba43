package sim

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

const frame = 1.0 / 60

func cuesOf(events []Event) []Cue {
	var cues []Cue
	for _, e := range events {
		if pc, ok := e.(PlayCue); ok {
			cues = append(cues, pc.Cue)
		}
	}
	return cues
}

func countCue(events []Event, c Cue) int {
	n := 0
	for _, got := range cuesOf(events) {
		if got == c {
			n++
		}
	}
	return n
}

func newTestBird() (*Bird, *Outbox, Params) {
	p := DefaultParams()
	out := &Outbox{}
	return NewBird(p, NewGround(p), out), out, p
}
