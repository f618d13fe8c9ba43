package sim

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rotation limits in degrees.
const (
	maxRiseAngle = -25.0
	maxDiveAngle = 90.0
)

const degToRad = math.Pi / 180

// Bird is the player avatar. Its x position is fixed; it moves vertically
// under gravity and flap impulses.
type Bird struct {
	p      Params
	ground *Ground
	out    *Outbox

	x, y     float64
	velocity float64 // positive = falling
	rotation float64 // degrees, positive = nose down
	frame    int     // animation frame index
	ticks    int     // frames stepped, drives cosmetic cadence

	dieCuePlayed bool
}

// NewBird creates a bird at its start position resting above ground.
func NewBird(p Params, ground *Ground, out *Outbox) *Bird {
	b := &Bird{p: p, ground: ground, out: out, x: p.BirdX}
	b.Reset()
	return b
}

// Reset restores the start position and clears velocity, rotation and the die cue latch.
func (b *Bird) Reset() {
	b.y = b.p.BirdStartY
	b.velocity = 0
	b.rotation = 0
	b.frame = 0
	b.dieCuePlayed = false
}

// Step advances the bird by one frame.
func (b *Bird) Step(delta float64, mode Mode) {
	f := b.ticks
	b.ticks++

	switch mode {
	case ModeReady:
		// Idle bob; purely cosmetic, no gravity
		b.rotation = 0
		if f%b.p.ReadyBobEvery == 0 {
			b.y += math.Sin(float64(f)*degToRad) * b.p.BobAmplitude
			b.frame++
		}

	case ModePlaying:
		if f%b.p.FlapAnimEvery == 0 {
			b.frame++
		}
		b.integrate(delta, b.p.Gravity)
		if b.onGround() {
			b.out.RaiseCrash()
		}

	case ModeGameOver:
		b.frame = 1
		if !b.onGround() {
			b.integrate(delta, 2*b.p.Gravity)
		}
		if b.onGround() {
			b.velocity = 0
			b.y = b.ground.Line() - b.clearance()
			b.rotation = maxDiveAngle
			if !b.dieCuePlayed {
				b.out.Cue(CueDie)
				b.dieCuePlayed = true
			}
		}
	}

	b.frame %= b.p.BirdFrames
}

// integrate applies gravity then moves by the new velocity.
func (b *Bird) integrate(delta, gravity float64) {
	scaled := delta * b.p.TimeScale
	b.velocity += gravity * scaled
	b.y += b.velocity * scaled
	b.updateRotation()
}

// updateRotation maps velocity to a nose angle: rising tilts up to
// maxRiseAngle at full thrust, falling tilts down to maxDiveAngle at twice thrust.
func (b *Bird) updateRotation() {
	if b.velocity <= 0 {
		b.rotation = math.Max(maxRiseAngle, maxRiseAngle*b.velocity/-b.p.Thrust)
		return
	}
	b.rotation = math.Min(maxDiveAngle, maxDiveAngle*b.velocity/(2*b.p.Thrust))
}

// Flap sets the upward impulse. It is suppressed while the bird is at or
// above the top of the field. Returns whether the flap was applied.
func (b *Bird) Flap() bool {
	if b.y <= 0 {
		return false
	}
	b.velocity = -b.p.Thrust
	b.out.Cue(CueFlap)
	return true
}

// clearance is the distance from the bird's center to the ground contact point.
func (b *Bird) clearance() float64 {
	return b.p.BirdWidth / 2
}

func (b *Bird) onGround() bool {
	return b.y+b.clearance() >= b.ground.Line()
}

// Radius returns the collision radius: the average of the sprite's half
// width and half height.
func (b *Bird) Radius() float64 {
	return (b.p.BirdWidth/2 + b.p.BirdHeight/2) / 2
}

// Collider returns the bird's collision circle.
func (b *Bird) Collider() core.Circle {
	return core.Circle{X: b.x, Y: b.y, R: b.Radius()}
}

// Velocity returns the current vertical velocity.
func (b *Bird) Velocity() float64 {
	return b.velocity
}

// Y returns the current vertical position of the bird's center.
func (b *Bird) Y() float64 {
	return b.y
}

// BirdSnapshot is the drawable state of the bird.
type BirdSnapshot struct {
	X, Y     float64
	Velocity float64
	Rotation float64
	Frame    int
	Radius   float64
	Width    float64
	Height   float64
}

// IsSnapshot implements Snapshot.
func (BirdSnapshot) IsSnapshot() {}

// Snapshot returns the bird's drawable state.
func (b *Bird) Snapshot() Snapshot {
	return BirdSnapshot{
		X:        b.x,
		Y:        b.y,
		Velocity: b.velocity,
		Rotation: b.rotation,
		Frame:    b.frame,
		Radius:   b.Radius(),
		Width:    b.p.BirdWidth,
		Height:   b.p.BirdHeight,
	}
}
