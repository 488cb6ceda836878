// Package core provides the platform types shared by games and front ends:
// runtime configuration, input frames, and a colored screen buffer.
// It has no terminal or network dependencies so game logic stays testable.
package core

import "cmp"

// Rect is an axis-aligned area of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rectangle centered inside r.
// The result may extend past r when it does not fit.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, max(r.W-2*n, 0), max(r.H-2*n, 0))
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
