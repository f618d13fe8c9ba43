package sim

import "time"

// Clock turns wall-clock timestamps into per-frame deltas in seconds.
type Clock struct {
	last     time.Time
	started  bool
	maxDelta float64
}

// NewClock creates a clock that clamps deltas to maxDelta seconds.
// A maxDelta of 0 disables clamping.
func NewClock(maxDelta float64) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Tick records now and returns the seconds elapsed since the previous tick.
// The first tick returns 0, as does a timestamp earlier than the previous one.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	delta := now.Sub(c.last).Seconds()
	c.last = now

	if delta < 0 {
		return 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		return c.maxDelta
	}
	return delta
}

// Reset forgets the previous timestamp so the next tick returns 0.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
