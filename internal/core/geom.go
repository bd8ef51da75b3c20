// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned collision rectangle in grid coordinates.
// Boxes are values; owners recompute them whenever they move.
type Box struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (b Box) Bottom() int {
	return b.Y + b.H
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Overlaps returns true if this box intersects another.
// Both axes use half-open intervals, so boxes that only share an edge do
// not overlap. A box with no area never overlaps anything.
func (b Box) Overlaps(other Box) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	return b.X < other.Right() && b.Right() > other.X &&
		b.Y < other.Bottom() && b.Bottom() > other.Y
}

// Overlaps is the free-function form of Box.Overlaps.
func Overlaps(a, b Box) bool {
	return a.Overlaps(b)
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W, H: b.H}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
