package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

var (
	skyColor        = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	pipeColor       = color.RGBA{0x5e, 0xbe, 0x2c, 0xff}
	pipeCapColor    = color.RGBA{0x3f, 0x8a, 0x1c, 0xff}
	pipeEdgeColor   = color.RGBA{0x2b, 0x4d, 0x12, 0xff}
	groundColor     = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	groundDarkColor = color.RGBA{0xc8, 0xbf, 0x74, 0xff}
	grassColor      = color.RGBA{0x73, 0xbf, 0x2e, 0xff}
	birdColor       = color.RGBA{0xf8, 0xd0, 0x2c, 0xff}
	wingColor       = color.RGBA{0xf4, 0xa4, 0x1c, 0xff}
	beakColor       = color.RGBA{0xf0, 0x5a, 0x28, 0xff}
	eyeColor        = color.White
	panelColor      = color.RGBA{0xde, 0xd8, 0x95, 0xf0}
	panelEdgeColor  = color.RGBA{0x54, 0x38, 0x47, 0xff}
	textColor       = color.White
	shadowColor     = color.RGBA{0, 0, 0, 0x90}
	hitColor        = color.RGBA{0xe0, 0x44, 0x2c, 0xff}
)

// capHeight is the height of a pipe's lip in field units.
const capHeight = 24

// wingLift is the wing offset per bird animation frame.
var wingLift = []float32{-4, 0, 4, 0}

func drawFrame(screen *ebiten.Image, f sim.Frame, fonts *Fonts) {
	screen.Fill(skyColor)

	for _, p := range f.Field.Pipes {
		drawPipe(screen, p, f.Field.Geometry, f.Ground.Line)
	}
	drawGround(screen, f)
	drawBird(screen, f.Bird)

	switch f.Mode {
	case sim.ModeReady:
		drawReady(screen, f, fonts)
	case sim.ModePlaying:
		drawCentered(screen, fmt.Sprint(f.Score.Current), fonts.Score, f.Height/8, textColor)
	case sim.ModeGameOver:
		drawPanel(screen, f, fonts)
	}

	if f.Overlay.Flash > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(f.Width), float32(f.Height), FlashColor(f.Overlay.Flash), false)
	}
}

func drawPipe(screen *ebiten.Image, p sim.Obstacle, g sim.PipeGeometry, groundLine float64) {
	x, w := float32(p.X), float32(g.Width)
	roof := float32(g.Roof(p))
	floor := float32(g.Floor(p))
	top := float32(p.GapTopY)
	bottom := float32(math.Min(float64(floor)+g.TopHeight, groundLine))

	vector.DrawFilledRect(screen, x, top, w, roof-top, pipeColor, false)
	vector.DrawFilledRect(screen, x-4, roof-capHeight, w+8, capHeight, pipeCapColor, false)
	vector.StrokeRect(screen, x-4, roof-capHeight, w+8, capHeight, 2, pipeEdgeColor, false)

	if bottom > floor {
		vector.DrawFilledRect(screen, x, floor, w, bottom-floor, pipeColor, false)
		vector.DrawFilledRect(screen, x-4, floor, w+8, capHeight, pipeCapColor, false)
		vector.StrokeRect(screen, x-4, floor, w+8, capHeight, 2, pipeEdgeColor, false)
	}
}

// drawGround draws the ground band. Stripes scroll with the ground offset.
func drawGround(screen *ebiten.Image, f sim.Frame) {
	g := f.Ground
	line := float32(g.Line)
	h := float32(f.Height - g.Line)
	vector.DrawFilledRect(screen, 0, line, float32(f.Width), h, groundColor, false)

	stripe := g.TileWidth / 8
	if stripe > 0 {
		start := math.Mod(g.Offset, 2*stripe) - 2*stripe
		for x := start; x < f.Width; x += 2 * stripe {
			vector.DrawFilledRect(screen, float32(x), line+12, float32(stripe), h-12, groundDarkColor, false)
		}
	}
	vector.DrawFilledRect(screen, 0, line, float32(f.Width), 12, grassColor, false)
	vector.StrokeLine(screen, 0, line, float32(f.Width), line, 2, pipeEdgeColor, false)
}

// drawBird draws the body as a circle with the beak and eye placed
// along the bird's heading.
func drawBird(screen *ebiten.Image, b sim.BirdSnapshot) {
	cx, cy := float32(b.X), float32(b.Y)
	r := float32(b.Radius)

	lift := wingLift[0]
	if b.Frame >= 0 && b.Frame < len(wingLift) {
		lift = wingLift[b.Frame]
	}

	vector.DrawFilledCircle(screen, cx, cy, r, birdColor, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, panelEdgeColor, true)

	wx, wy := Heading(b.Rotation, -r*0.4, lift)
	vector.DrawFilledCircle(screen, cx+wx, cy+wy, r*0.45, wingColor, true)

	bx, by := Heading(b.Rotation, r*1.3, 0)
	vector.StrokeLine(screen, cx, cy, cx+bx, cy+by, r*0.45, beakColor, true)

	ex, ey := Heading(b.Rotation, r*0.4, -r*0.4)
	vector.DrawFilledCircle(screen, cx+ex, cy+ey, r*0.22, eyeColor, true)
}

// Heading rotates the offset (dx, dy) by rotation degrees. Positive
// rotation turns the bird nose down, which is clockwise on screen.
func Heading(rotation float64, dx, dy float32) (float32, float32) {
	rad := rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := float64(dx)*cos - float64(dy)*sin
	y := float64(dx)*sin + float64(dy)*cos
	return float32(x), float32(y)
}

func drawReady(screen *ebiten.Image, f sim.Frame, fonts *Fonts) {
	y := f.Height / 3
	drawCentered(screen, "GET READY", fonts.Score, y, textColor)
	if f.Score.BestAvailable && f.Score.Best > 0 {
		drawCentered(screen, fmt.Sprintf("best %d", f.Score.Best), fonts.Small, y+48, textColor)
	}
	drawTapHint(screen, f, fonts, y+120)
}

func drawTapHint(screen *ebiten.Image, f sim.Frame, fonts *Fonts, y float64) {
	c := color.Color(textColor)
	if f.Overlay.TapFrame == 1 {
		c = shadowColor
	}
	drawCentered(screen, "tap, click or press space", fonts.Small, y, c)
}

// drawPanel draws the game-over panel at its animated height.
// The best line is omitted when the best score could not be loaded.
func drawPanel(screen *ebiten.Image, f sim.Frame, fonts *Fonts) {
	if !f.Overlay.PanelShown {
		return
	}

	w := float32(f.Width * 0.7)
	h := float32(max(f.Overlay.PanelHeight, 160))
	x := (float32(f.Width) - w) / 2
	y := float32(f.Overlay.PanelY)

	drawCentered(screen, "GAME OVER", fonts.Score, float64(y)-24, hitColor)

	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 4, panelEdgeColor, false)

	line := float64(y) + float64(h)/3
	drawCentered(screen, fmt.Sprintf("SCORE  %d", f.Score.Current), fonts.Small, line, panelEdgeColor)
	if f.Score.BestAvailable {
		drawCentered(screen, fmt.Sprintf("BEST  %d", f.Score.Best), fonts.Small, line+float64(h)/3, panelEdgeColor)
	}

	if f.CanTap {
		drawTapHint(screen, f, fonts, float64(y+h)+40)
	}
}

// drawCentered draws s horizontally centered with its baseline at y and a
// drop shadow behind it.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y float64, c color.Color) {
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	x := (screen.Bounds().Dx() - w) / 2

	text.Draw(screen, s, face, x+2, int(y)+2, shadowColor)
	text.Draw(screen, s, face, x, int(y), c)
}

// FlashColor returns the white overlay for a flash opacity in [0, 1].
func FlashColor(opacity float64) color.Color {
	a := core.ClampF(opacity, 0, 1)
	v := uint8(math.Round(a * 0xff))
	// premultiplied alpha
	return color.RGBA{v, v, v, v}
}
