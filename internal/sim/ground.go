package sim

// Ground is the looping floor band. Its top edge is the bird's death line.
type Ground struct {
	p      Params
	offset float64 // in (-tile width, 0]
}

// NewGround creates a ground scroller at offset 0.
func NewGround(p Params) *Ground {
	return &Ground{p: p}
}

// Step scrolls the ground left while playing.
func (g *Ground) Step(delta float64, mode Mode) {
	if mode != ModePlaying {
		return
	}
	g.offset -= g.p.ScrollSpeed * delta * g.p.TimeScale
	for g.offset <= -g.p.GroundWidth {
		g.offset += g.p.GroundWidth
	}
}

// Line returns the y-coordinate of the ground surface.
func (g *Ground) Line() float64 {
	return g.p.GroundLine()
}

// Offset returns the current scroll offset.
func (g *Ground) Offset() float64 {
	return g.offset
}

// GroundSnapshot is the drawable state of the ground. Two tiles are drawn
// side by side starting at Offset.
type GroundSnapshot struct {
	Offset    float64
	Line      float64
	TileWidth float64
	Height    float64
}

// IsSnapshot implements Snapshot.
func (GroundSnapshot) IsSnapshot() {}

// Snapshot returns the ground's drawable state.
func (g *Ground) Snapshot() Snapshot {
	return GroundSnapshot{
		Offset:    g.offset,
		Line:      g.Line(),
		TileWidth: g.p.GroundWidth,
		Height:    g.p.GroundHeight,
	}
}
