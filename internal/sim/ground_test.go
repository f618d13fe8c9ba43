package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroundWraps(t *testing.T) {
	p := DefaultParams()
	g := NewGround(p)

	for i := 0; i < 1000; i++ {
		g.Step(frame, ModePlaying)
		require.LessOrEqual(t, g.Offset(), 0.0)
		require.Greater(t, g.Offset(), -p.GroundWidth)
	}
}

func TestGroundLargeDeltaWraps(t *testing.T) {
	p := DefaultParams()
	g := NewGround(p)

	g.Step(10, ModePlaying)

	assert.Greater(t, g.Offset(), -p.GroundWidth)
	assert.LessOrEqual(t, g.Offset(), 0.0)
}

func TestGroundIdleOutsidePlaying(t *testing.T) {
	g := NewGround(DefaultParams())

	g.Step(frame, ModeReady)
	g.Step(frame, ModeGameOver)

	assert.Zero(t, g.Offset())
}

func TestGroundLine(t *testing.T) {
	p := DefaultParams()
	g := NewGround(p)

	assert.Equal(t, p.FieldHeight-p.GroundHeight, g.Line())
	snap := g.Snapshot().(GroundSnapshot)
	assert.Equal(t, g.Line(), snap.Line)
	assert.Equal(t, p.GroundWidth, snap.TileWidth)
}
