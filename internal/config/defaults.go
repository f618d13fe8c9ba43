package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors the
// embedded defaults/flappy.yaml and is used when that file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Scale:  2,
			Width:  276,
			Height: 414,
		},
		Physics: PhysicsConfig{
			Gravity:     0.08,
			Thrust:      2.5,
			TimeScale:   60,
			ScrollSpeed: 1.5,
			MaxDelta:    0.25,
		},
		Bird: BirdConfig{
			StartX: 50,
			StartY: 100,
			Width:  34,
			Height: 24,
			Frames: 4,
		},
		Pipes: PipesConfig{
			Width:         52,
			Height:        400,
			Gap:           85,
			SpawnInterval: 1.7,
			BaseOffset:    210,
			MinFactor:     1.0,
			MaxFactor:     1.8,
		},
		Ground: GroundConfig{
			Width:  224,
			Height: 56,
		},
		Overlay: OverlayConfig{
			PanelHeight:   38,
			FlashDecay:    0.05,
			SettleSpeed:   0.15,
			SettleEpsilon: 1,
			ReadyBobEvery: 10,
			FlapAnimEvery: 5,
			TapBlinkEvery: 40,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
