package gui

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used by the window frontend.
type Fonts struct {
	Score font.Face // large digits for the running score
	Small font.Face // panel and hint text
}

// LoadFonts parses the embedded Go fonts at sizes scaled for the field.
func LoadFonts(scale float64) (*Fonts, error) {
	const dpi = 72

	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot parse score font: %w", err)
	}
	score, err := opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    24 * scale,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("gui: cannot create score font face: %w", err)
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot parse text font: %w", err)
	}
	small := truetype.NewFace(regular, &truetype.Options{
		Size:    10 * scale,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	return &Fonts{Score: score, Small: small}, nil
}
