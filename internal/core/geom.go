// Package core provides fundamental types and utilities shared by the
// simulation and its frontends. It contains no external dependencies
// (especially no Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box used for drawing into a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Band is a closed interval [Min, Max] on one axis.
// Collision tests work on independent horizontal and vertical bands.
type Band struct {
	Min, Max float64
}

// NewBand creates a band starting at start with the given extent.
func NewBand(start, extent float64) Band {
	return Band{Min: start, Max: start + extent}
}

// Contains reports whether v lies inside the band, edges included.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Size returns the length of the band.
func (b Band) Size() float64 {
	return b.Max - b.Min
}

// Circle is a circular collider used for the bird.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Left returns the x-coordinate of the leftmost point.
func (c Circle) Left() float64 { return c.X - c.R }

// Right returns the x-coordinate of the rightmost point.
func (c Circle) Right() float64 { return c.X + c.R }

// Top returns the y-coordinate of the topmost point.
func (c Circle) Top() float64 { return c.Y - c.R }

// Bottom returns the y-coordinate of the lowest point.
func (c Circle) Bottom() float64 { return c.Y + c.R }

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ApproxEqual reports whether a and b differ by less than eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
