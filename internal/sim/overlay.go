package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// Overlay owns the cosmetic UI state: the hit flash, the sliding game-over
// panel and the blinking tap hint. The panel position gates restarts.
type Overlay struct {
	p Params

	flash      float64
	flashFresh bool // triggered this frame; decay starts next frame

	animating   bool
	panelY      float64
	panelTarget float64

	tapFrame int
	ticks    int
}

// NewOverlay creates an idle overlay.
func NewOverlay(p Params) *Overlay {
	return &Overlay{p: p}
}

// Flash starts a full-opacity screen flash.
func (o *Overlay) Flash() {
	o.flash = 1
	o.flashFresh = true
}

// Reset stops the game-over panel animation.
func (o *Overlay) Reset() {
	o.animating = false
	o.panelY = 0
	o.panelTarget = 0
}

// Step decays the flash, blinks the tap hint and slides the game-over panel.
func (o *Overlay) Step(_ float64, mode Mode) {
	f := o.ticks
	o.ticks++

	if o.flashFresh {
		o.flashFresh = false
	} else if o.flash > 0 {
		o.flash -= o.p.FlashDecay
		if o.flash < 0 {
			o.flash = 0
		}
	}

	if mode != ModePlaying && f%o.p.TapBlinkEvery == 0 {
		o.tapFrame = (o.tapFrame + 1) % 2
	}

	if mode == ModeGameOver {
		if !o.animating {
			o.animating = true
			o.panelY = o.p.FieldHeight
			o.panelTarget = (o.p.FieldHeight - o.p.PanelHeight) / 2
		}
		o.panelY += (o.panelTarget - o.panelY) * o.p.SettleSpeed
	}
}

// Settled reports whether the game-over panel has reached its resting place.
func (o *Overlay) Settled() bool {
	return o.animating && core.ApproxEqual(o.panelY, o.panelTarget, o.p.SettleEpsilon)
}

// FlashOpacity returns the current flash opacity in [0, 1].
func (o *Overlay) FlashOpacity() float64 {
	return o.flash
}

// OverlaySnapshot is the drawable UI state.
type OverlaySnapshot struct {
	Flash       float64
	PanelShown  bool
	PanelY      float64
	PanelTarget float64
	PanelHeight float64
	Settled     bool
	TapFrame    int
}

// IsSnapshot implements Snapshot.
func (OverlaySnapshot) IsSnapshot() {}

// Snapshot returns the overlay's drawable state.
func (o *Overlay) Snapshot() Snapshot {
	return OverlaySnapshot{
		Flash:       o.flash,
		PanelShown:  o.animating,
		PanelY:      o.panelY,
		PanelTarget: o.panelTarget,
		PanelHeight: o.p.PanelHeight,
		Settled:     o.Settled(),
		TapFrame:    o.tapFrame,
	}
}
