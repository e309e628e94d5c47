// Package core provides the leaf building blocks of the simulation: hitbox
// geometry, fixed-capacity entity lists and button edge tracking. It has no
// external dependencies (especially no Bubble Tea) to keep game logic pure
// and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectF builds a hitbox from a float position. Coordinates are truncated
// toward zero, matching how the display addresses pixels.
func RectF(x, y float64, w, h int) Rect {
	return Rect{X: int(x), Y: int(y), W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are half-open: rectangles that only share a border do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right() &&
		r.Bottom() > other.Y && r.Y < other.Bottom()
}

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
