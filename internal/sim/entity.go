package sim

import (
	"math/rand"
	"time"
)

// Entity is one simulated object advanced once per frame.
type Entity interface {
	// Step advances the entity by delta seconds under the given mode.
	Step(delta float64, mode Mode)

	// Snapshot returns a read-only copy of the entity's drawable state.
	Snapshot() Snapshot
}

// Snapshot is implemented by every entity snapshot type.
type Snapshot interface {
	IsSnapshot()
}

// Rand is the random source used for pipe placement.
// *math/rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded generator. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
