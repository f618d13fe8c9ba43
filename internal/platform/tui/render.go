package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps the core palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorSky:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorPipe:       lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorPipeCap:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorBird:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorBeak:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorGround:     lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorGroundDark: lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPanel:      lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorFlash:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorHit:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
