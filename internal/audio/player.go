// Package audio plays the simulation's sound cues through the system
// speaker using beep. Every operation degrades to a no-op when no audio
// device is available.
package audio

import "github.com/vovakirdan/tui-flappy/internal/sim"

// Player plays sound cues. Play never blocks and never reports failure.
type Player interface {
	Play(cue sim.Cue)
}

// Nop is a Player that discards every cue.
type Nop struct{}

// Play implements Player.
func (Nop) Play(sim.Cue) {}
