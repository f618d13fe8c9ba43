package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the terminal renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorBeak
	ColorGround
	ColorGroundDark
	ColorText
	ColorPanel
	ColorFlash
	ColorHit
	ColorGray
)

// String returns the palette name, used in screenshots and debugging output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorPipe:
		return "pipe"
	case ColorPipeCap:
		return "pipe-cap"
	case ColorBird:
		return "bird"
	case ColorBeak:
		return "beak"
	case ColorGround:
		return "ground"
	case ColorGroundDark:
		return "ground-dark"
	case ColorText:
		return "text"
	case ColorPanel:
		return "panel"
	case ColorFlash:
		return "flash"
	case ColorHit:
		return "hit"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
