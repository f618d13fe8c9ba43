// Package config provides YAML-based game configuration loading
// and validation for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Bird    BirdConfig    `yaml:"bird"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Ground  GroundConfig  `yaml:"ground"`
	Overlay OverlayConfig `yaml:"overlay"`
}

// WorldConfig defines the visible field and the global scale factor.
type WorldConfig struct {
	Scale  float64 `yaml:"scale"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	Thrust      float64 `yaml:"thrust"`
	TimeScale   float64 `yaml:"time_scale"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
	MaxDelta    float64 `yaml:"max_delta"`
}

// BirdConfig defines the avatar sprite and start position.
type BirdConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Frames int     `yaml:"frames"`
}

// PipesConfig defines obstacle geometry and spawning.
type PipesConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Gap           float64 `yaml:"gap"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	BaseOffset    float64 `yaml:"base_offset"`
	MinFactor     float64 `yaml:"min_factor"`
	MaxFactor     float64 `yaml:"max_factor"`
}

// GroundConfig defines the scrolling floor sprite.
type GroundConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// OverlayConfig defines cosmetic cadences and the game-over panel settle.
type OverlayConfig struct {
	PanelHeight   float64 `yaml:"panel_height"`
	FlashDecay    float64 `yaml:"flash_decay"`
	SettleSpeed   float64 `yaml:"settle_speed"`
	SettleEpsilon float64 `yaml:"settle_epsilon"`
	ReadyBobEvery int     `yaml:"ready_bob_every"`
	FlapAnimEvery int     `yaml:"flap_anim_every"`
	TapBlinkEvery int     `yaml:"tap_blink_every"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.scale", c.World.Scale},
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.thrust", c.Physics.Thrust},
		{"physics.time_scale", c.Physics.TimeScale},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
		{"bird.width", c.Bird.Width},
		{"bird.height", c.Bird.Height},
		{"pipes.width", c.Pipes.Width},
		{"pipes.height", c.Pipes.Height},
		{"pipes.gap", c.Pipes.Gap},
		{"pipes.spawn_interval", c.Pipes.SpawnInterval},
		{"ground.width", c.Ground.Width},
		{"ground.height", c.Ground.Height},
		{"overlay.settle_speed", c.Overlay.SettleSpeed},
		{"overlay.settle_epsilon", c.Overlay.SettleEpsilon},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.v)
		}
	}

	if c.Physics.MaxDelta < 0 {
		return fmt.Errorf("%w: physics.max_delta must not be negative, got %v", ErrInvalid, c.Physics.MaxDelta)
	}
	if c.Overlay.SettleSpeed > 1 {
		return fmt.Errorf("%w: overlay.settle_speed must be at most 1, got %v", ErrInvalid, c.Overlay.SettleSpeed)
	}
	if c.Pipes.MinFactor > c.Pipes.MaxFactor {
		return fmt.Errorf("%w: pipes.min_factor %v exceeds pipes.max_factor %v",
			ErrInvalid, c.Pipes.MinFactor, c.Pipes.MaxFactor)
	}
	if c.Bird.Frames < 1 {
		return fmt.Errorf("%w: bird.frames must be at least 1, got %d", ErrInvalid, c.Bird.Frames)
	}
	if c.Overlay.ReadyBobEvery < 1 || c.Overlay.FlapAnimEvery < 1 || c.Overlay.TapBlinkEvery < 1 {
		return fmt.Errorf("%w: overlay cadences must be at least 1 frame", ErrInvalid)
	}
	return nil
}
