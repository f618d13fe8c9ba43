package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), cfg)
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("pipes:\n  spawn_interval: 2.5\nworld:\n  scale: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Pipes.SpawnInterval)
	assert.Equal(t, 1.0, cfg.World.Scale)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultFlappyConfig().Pipes.Gap, cfg.Pipes.Gap)
	assert.Equal(t, DefaultFlappyConfig().Physics, cfg.Physics)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("pipes: [unterminated"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero spawn interval", func(c *FlappyConfig) { c.Pipes.SpawnInterval = 0 }},
		{"negative scroll speed", func(c *FlappyConfig) { c.Physics.ScrollSpeed = -1 }},
		{"zero gap", func(c *FlappyConfig) { c.Pipes.Gap = 0 }},
		{"inverted factors", func(c *FlappyConfig) { c.Pipes.MinFactor, c.Pipes.MaxFactor = 2, 1 }},
		{"no bird frames", func(c *FlappyConfig) { c.Bird.Frames = 0 }},
		{"negative max delta", func(c *FlappyConfig) { c.Physics.MaxDelta = -0.1 }},
		{"settle overshoots", func(c *FlappyConfig) { c.Overlay.SettleSpeed = 1.5 }},
		{"zero blink cadence", func(c *FlappyConfig) { c.Overlay.TapBlinkEvery = 0 }},
	}

	require.NoError(t, DefaultFlappyConfig().Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  thrust: 3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Physics.Thrust)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pipes:\n  gap: -5\n"), 0o600))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), cfg)

	// Local ./configs file is picked up
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", configFile), []byte("pipes:\n  gap: 90\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Pipes.Gap)

	// User config wins over the local one
	userDir := filepath.Join(home, ".flappy", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, configFile), []byte("pipes:\n  gap: 95\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 95.0, cfg.Pipes.Gap)

	// A broken user file is skipped
	require.NoError(t, os.WriteFile(filepath.Join(userDir, configFile), []byte("pipes: ["), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Pipes.Gap)
}

func TestMarshalProducesLoadableYAML(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "spawn_interval: 1.7")

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), cfg)
}
