// Package core provides fundamental types and utilities for the AnyPang
// platform. It contains no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

// Rect is an axis-aligned area of the screen, used for layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenterIn returns r moved so it is centered inside outer.
// Rectangles larger than outer are pinned to outer's top-left corner.
func (r Rect) CenterIn(outer Rect) Rect {
	r.X = outer.X + max(0, (outer.W-r.W)/2)
	r.Y = outer.Y + max(0, (outer.H-r.H)/2)
	return r
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
