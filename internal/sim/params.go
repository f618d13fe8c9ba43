// Package sim implements the frame-stepped flappy simulation: the bird,
// the scrolling ground, the pipe field, collision and scoring, the cosmetic
// overlay and the Ready/Playing/GameOver state machine that drives them.
//
// The package performs no I/O. Audio cues and score persistence are returned
// from Session.Step and Session.HandleTap as Event values for the caller to execute.
package sim

import "github.com/vovakirdan/tui-flappy/internal/config"

// Params holds every tunable in world units (scaled pixels, seconds).
type Params struct {
	FieldWidth  float64
	FieldHeight float64

	Gravity     float64 // velocity gained per normalized frame
	Thrust      float64 // upward velocity set by a flap
	TimeScale   float64 // normalized frames per second
	ScrollSpeed float64 // pipe and ground displacement per normalized frame
	MaxDelta    float64 // clock clamp, 0 = unlimited

	BirdX        float64
	BirdStartY   float64
	BirdWidth    float64
	BirdHeight   float64
	BirdFrames   int
	BobAmplitude float64

	PipeWidth     float64
	PipeHeight    float64
	Gap           float64
	SpawnInterval float64
	BaseOffset    float64
	MinFactor     float64
	MaxFactor     float64

	GroundWidth  float64
	GroundHeight float64

	PanelHeight   float64
	FlashDecay    float64
	SettleSpeed   float64
	SettleEpsilon float64
	ReadyBobEvery int
	FlapAnimEvery int
	TapBlinkEvery int
}

// NewParams scales a loaded configuration into world units.
func NewParams(cfg config.FlappyConfig) Params {
	s := cfg.World.Scale
	return Params{
		FieldWidth:  cfg.World.Width * s,
		FieldHeight: cfg.World.Height * s,

		Gravity:     cfg.Physics.Gravity * s,
		Thrust:      cfg.Physics.Thrust * s,
		TimeScale:   cfg.Physics.TimeScale,
		ScrollSpeed: cfg.Physics.ScrollSpeed * s,
		MaxDelta:    cfg.Physics.MaxDelta,

		BirdX:        cfg.Bird.StartX * s,
		BirdStartY:   cfg.Bird.StartY * s,
		BirdWidth:    cfg.Bird.Width * s,
		BirdHeight:   cfg.Bird.Height * s,
		BirdFrames:   cfg.Bird.Frames,
		BobAmplitude: s,

		PipeWidth:     cfg.Pipes.Width * s,
		PipeHeight:    cfg.Pipes.Height * s,
		Gap:           cfg.Pipes.Gap * s,
		SpawnInterval: cfg.Pipes.SpawnInterval,
		BaseOffset:    cfg.Pipes.BaseOffset * s,
		MinFactor:     cfg.Pipes.MinFactor,
		MaxFactor:     cfg.Pipes.MaxFactor,

		GroundWidth:  cfg.Ground.Width * s,
		GroundHeight: cfg.Ground.Height * s,

		PanelHeight:   cfg.Overlay.PanelHeight * s,
		FlashDecay:    cfg.Overlay.FlashDecay,
		SettleSpeed:   cfg.Overlay.SettleSpeed,
		SettleEpsilon: cfg.Overlay.SettleEpsilon,
		ReadyBobEvery: cfg.Overlay.ReadyBobEvery,
		FlapAnimEvery: cfg.Overlay.FlapAnimEvery,
		TapBlinkEvery: cfg.Overlay.TapBlinkEvery,
	}
}

// DefaultParams returns the scaled built-in configuration.
func DefaultParams() Params {
	return NewParams(config.DefaultFlappyConfig())
}

// GroundLine returns the y-coordinate of the top of the ground band.
func (p Params) GroundLine() float64 {
	return p.FieldHeight - p.GroundHeight
}
