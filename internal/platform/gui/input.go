package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tapKeys are the keys that flap, start and restart.
var tapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}

// IsTapJustPressed reports whether a tap started this tick from the
// keyboard, the left mouse button, a touch or a gamepad face button.
func IsTapJustPressed() bool {
	for _, k := range tapKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			return true
		}
	}
	return false
}

// IsQuitJustPressed reports whether the player asked to close the window.
func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// IsMuteJustPressed reports whether the mute toggle was pressed.
func IsMuteJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

// IsDebugJustPressed reports whether the debug overlay toggle was pressed.
func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
