package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Glyphs for the terminal renderer
const (
	PipeChar       = '█'
	PipeCapChar    = '▓'
	GroundTopChar  = '▀'
	GroundChar     = '░'
	GroundDarkChar = '▒'
	BirdBodyChar   = '@'
)

// Wing animation frames, indexed by the bird's frame counter.
var wingFrames = []rune{'v', '-', '^', '-'}

// Screen flash density ramp from faint to full.
var flashRamp = []rune{'░', '▒', '▓', '█'}

// groundStripes is the number of stripes drawn per ground tile.
const groundStripes = 8

// panel dimensions in cells
const (
	panelWidth  = 24
	panelHeight = 7
)

// viewport maps world coordinates onto screen cells.
// The field is stretched to fill the screen on both axes.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, f sim.Frame) viewport {
	if f.Width <= 0 || f.Height <= 0 {
		return viewport{}
	}
	return viewport{
		sx: float64(dst.Width()) / f.Width,
		sy: float64(dst.Height()) / f.Height,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// DrawFrame renders a simulation snapshot into dst.
func DrawFrame(dst *core.Screen, f sim.Frame) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(dst, f)

	for _, p := range f.Field.Pipes {
		drawPipe(dst, v, p, f.Field.Geometry, f.Ground.Line)
	}
	drawGround(dst, v, f.Ground)
	drawBird(dst, v, f.Bird)

	switch f.Mode {
	case sim.ModeReady:
		drawReady(dst, f)
	case sim.ModePlaying:
		dst.DrawTextCentered(1, fmt.Sprintf(" %d ", f.Score.Current), core.ColorText)
	case sim.ModeGameOver:
		drawPanel(dst, v, f)
	}

	drawFlash(dst, f.Overlay.Flash)
}

// drawPipe draws the top pipe above the gap and the bottom pipe below it,
// clipped to the ground line. The pipe end facing the gap gets a cap row.
func drawPipe(dst *core.Screen, v viewport, p sim.Obstacle, g sim.PipeGeometry, groundLine float64) {
	x0 := v.col(p.X)
	x1 := max(v.col(p.X+g.Width), x0+1)

	roof := g.Roof(p)
	floor := g.Floor(p)

	topStart := max(0, v.row(p.GapTopY))
	topEnd := v.row(roof)
	bottomStart := v.row(floor)
	bottomEnd := min(v.row(floor+g.TopHeight), v.row(groundLine))

	for x := x0; x < x1; x++ {
		for y := topStart; y < topEnd; y++ {
			dst.SetCell(x, y, PipeChar, core.ColorPipe)
		}
		if topEnd > 0 {
			dst.SetCell(x, topEnd-1, PipeCapChar, core.ColorPipeCap)
		}
		for y := bottomStart; y < bottomEnd; y++ {
			dst.SetCell(x, y, PipeChar, core.ColorPipe)
		}
		if bottomEnd > bottomStart {
			dst.SetCell(x, bottomStart, PipeCapChar, core.ColorPipeCap)
		}
	}
}

// drawGround draws the ground band with stripes that scroll with its offset.
func drawGround(dst *core.Screen, v viewport, g sim.GroundSnapshot) {
	top := v.row(g.Line)
	stripe := g.TileWidth / groundStripes

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, top, GroundTopChar, core.ColorGround)
		if stripe <= 0 || v.sx == 0 {
			continue
		}

		worldX := float64(x)/v.sx - g.Offset
		r, c := GroundChar, core.ColorGround
		if int(math.Floor(worldX/stripe))%2 == 1 {
			r, c = GroundDarkChar, core.ColorGroundDark
		}
		for y := top + 1; y < dst.Height(); y++ {
			dst.SetCell(x, y, r, c)
		}
	}
}

// drawBird draws wing, body and beak. The beak leans with the rotation.
func drawBird(dst *core.Screen, v viewport, b sim.BirdSnapshot) {
	x := v.col(b.X)
	y := v.row(b.Y)

	wing := wingFrames[0]
	if b.Frame >= 0 && b.Frame < len(wingFrames) {
		wing = wingFrames[b.Frame]
	}

	dst.SetCell(x-1, y, wing, core.ColorBird)
	dst.SetCell(x, y, BirdBodyChar, core.ColorBird)
	dst.SetCell(x+1, y, BeakGlyph(b.Rotation), core.ColorBeak)
}

// BeakGlyph returns the beak character for a rotation in degrees.
func BeakGlyph(rotation float64) rune {
	switch {
	case rotation < -10:
		return '/'
	case rotation >= 60:
		return 'v'
	case rotation > 10:
		return '\\'
	default:
		return '>'
	}
}

func drawReady(dst *core.Screen, f sim.Frame) {
	y := dst.Height() / 3
	dst.DrawTextCentered(y, "GET READY", core.ColorText)
	if f.Score.BestAvailable && f.Score.Best > 0 {
		dst.DrawTextCentered(y+1, fmt.Sprintf("best %d", f.Score.Best), core.ColorGray)
	}
	drawTapHint(dst, y+3, f.Overlay.TapFrame)
}

func drawTapHint(dst *core.Screen, y, frame int) {
	c := core.ColorText
	if frame == 1 {
		c = core.ColorGray
	}
	dst.DrawTextCentered(y, "tap: space / w / up / click", c)
}

// drawPanel draws the game-over panel at its animated position.
// The best score line is omitted when the best score could not be loaded.
func drawPanel(dst *core.Screen, v viewport, f sim.Frame) {
	if !f.Overlay.PanelShown {
		return
	}

	w := min(panelWidth, dst.Width())
	h := panelHeight
	r := core.NewRect((dst.Width()-w)/2, v.row(f.Overlay.PanelY), w, h)

	dst.DrawRect(r, ' ', core.ColorPanel)
	dst.DrawBox(r, core.ColorPanel)
	dst.DrawTextCentered(r.Y+1, "GAME OVER", core.ColorHit)
	dst.DrawTextCentered(r.Y+3, fmt.Sprintf("SCORE %4d", f.Score.Current), core.ColorText)
	if f.Score.BestAvailable {
		dst.DrawTextCentered(r.Y+4, fmt.Sprintf("BEST  %4d", f.Score.Best), core.ColorText)
	}

	if f.CanTap {
		drawTapHint(dst, r.Bottom()+1, f.Overlay.TapFrame)
	}
}

// drawFlash covers the screen with a fill whose density follows the opacity.
func drawFlash(dst *core.Screen, opacity float64) {
	if opacity <= 0 {
		return
	}
	i := int(opacity * float64(len(flashRamp)))
	if i == 0 {
		return
	}
	i = min(i, len(flashRamp)) - 1
	dst.Fill(flashRamp[i], core.ColorFlash)
}
