// Package core provides fundamental types and utilities for the dasher runtime.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// game logic pure and testable.
package core

import "math"

// Vec2 is a point or offset in world pixels.
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// At returns the rectangle moved so its top-left corner sits at p.
func (r Rect) At(p Vec2) Rect {
	return Rect{X: p.X, Y: p.Y, W: r.W, H: r.H}
}

// Inset shrinks the rectangle by pad on every side.
// A pad of exactly half a dimension collapses it to a line or a point; a larger
// pad gives a negative size.
func (r Rect) Inset(pad float64) Rect {
	return Rect{X: r.X + pad, Y: r.Y + pad, W: r.W - 2*pad, H: r.H - 2*pad}
}

// Overlaps returns true if the two rectangles intersect under open intervals:
// rectangles that only share an edge or a corner do not overlap. A zero-size
// rectangle still overlaps one whose interior strictly contains it.
func (r Rect) Overlaps(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Finite reports whether every component is a finite number.
func (r Rect) Finite() bool {
	return Finite(r.X) && Finite(r.Y) && Finite(r.W) && Finite(r.H)
}

// Finite reports whether v is neither NaN nor an infinity.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
