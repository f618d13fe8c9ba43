package sim

// spawnEpsilon absorbs float drift when summing many small deltas, so that
// N frames of interval/N seconds always reach the spawn interval.
const spawnEpsilon = 1e-9

// Obstacle is one top/bottom pipe pair. GapTopY is the y-coordinate of the
// top pipe's upper edge; the gap opens TopHeight below it.
type Obstacle struct {
	X       float64
	GapTopY float64
}

// PipeGeometry holds the dimensions shared by every obstacle.
type PipeGeometry struct {
	Width     float64
	TopHeight float64
	Gap       float64
}

// Roof returns the y-coordinate of the top of the gap.
func (g PipeGeometry) Roof(o Obstacle) float64 {
	return o.GapTopY + g.TopHeight
}

// Floor returns the y-coordinate of the bottom of the gap.
func (g PipeGeometry) Floor(o Obstacle) float64 {
	return g.Roof(o) + g.Gap
}

// PipeField spawns, scrolls and recycles obstacles. Pipes are kept ordered
// by x ascending: spawns append at the right edge, removal only happens at the head.
type PipeField struct {
	p          Params
	rng        Rand
	pipes      []Obstacle
	sinceSpawn float64
	spawned    int
	armed      bool // head obstacle may still be scored
}

// NewPipeField creates an empty field.
func NewPipeField(p Params, rng Rand) *PipeField {
	pf := &PipeField{
		p:     p,
		rng:   rng,
		pipes: make([]Obstacle, 0, 8),
	}
	pf.Clear()
	return pf
}

// Clear removes all obstacles, restarts the spawn timer and re-arms scoring.
func (pf *PipeField) Clear() {
	pf.pipes = pf.pipes[:0]
	pf.sinceSpawn = 0
	pf.armed = true
}

// Step spawns, scrolls and recycles obstacles while playing.
func (pf *PipeField) Step(delta float64, mode Mode) {
	if mode != ModePlaying {
		return
	}

	pf.sinceSpawn += delta
	if pf.sinceSpawn+spawnEpsilon >= pf.p.SpawnInterval {
		pf.spawn()
		pf.sinceSpawn = 0
	}

	dx := pf.p.ScrollSpeed * delta * pf.p.TimeScale
	for i := range pf.pipes {
		pf.pipes[i].X -= dx
	}

	if len(pf.pipes) > 0 && pf.pipes[0].X < -pf.p.PipeWidth {
		pf.pipes = pf.pipes[1:]
		pf.armed = true
	}
}

// spawn appends an obstacle at the right edge of the field with a randomized gap.
func (pf *PipeField) spawn() {
	factor := pf.p.MinFactor + pf.rng.Float64()*(pf.p.MaxFactor-pf.p.MinFactor)
	pf.pipes = append(pf.pipes, Obstacle{
		X:       pf.p.FieldWidth,
		GapTopY: -pf.p.BaseOffset * factor,
	})
	pf.spawned++
}

// Head returns the leftmost obstacle, the only one ever tested for collision.
func (pf *PipeField) Head() (Obstacle, bool) {
	if len(pf.pipes) == 0 {
		return Obstacle{}, false
	}
	return pf.pipes[0], true
}

// Armed reports whether the head obstacle has not been scored yet.
func (pf *PipeField) Armed() bool {
	return pf.armed
}

// Disarm marks the head obstacle as scored.
func (pf *PipeField) Disarm() {
	pf.armed = false
}

// Geometry returns the dimensions shared by every obstacle.
func (pf *PipeField) Geometry() PipeGeometry {
	return PipeGeometry{
		Width:     pf.p.PipeWidth,
		TopHeight: pf.p.PipeHeight,
		Gap:       pf.p.Gap,
	}
}

// Len returns the number of obstacles on the field.
func (pf *PipeField) Len() int {
	return len(pf.pipes)
}

// Spawned returns how many obstacles have been spawned since creation.
func (pf *PipeField) Spawned() int {
	return pf.spawned
}

// FieldSnapshot is the drawable state of the pipe field.
type FieldSnapshot struct {
	Pipes      []Obstacle
	Geometry   PipeGeometry
	PipeHeight float64 // bottom pipe sprite height, equal to the top one
}

// IsSnapshot implements Snapshot.
func (FieldSnapshot) IsSnapshot() {}

// Snapshot returns a copy of the obstacle list.
func (pf *PipeField) Snapshot() Snapshot {
	pipes := make([]Obstacle, len(pf.pipes))
	copy(pipes, pf.pipes)
	return FieldSnapshot{
		Pipes:      pipes,
		Geometry:   pf.Geometry(),
		PipeHeight: pf.p.PipeHeight,
	}
}
