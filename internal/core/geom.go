// Package core provides fundamental types and utilities shared by the puzzle
// engine and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) so the engine stays pure and testable.
package core

// Rect is an axis-aligned area of the screen, measured in character cells.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: Max(0, r.W-2*n),
		H: Max(0, r.H-2*n),
	}
}

// Cell splits the rectangle into an n×n grid of equal cells and returns the
// cell containing (x, y). Leftover columns/rows on the right and bottom edges
// belong to no cell.
func (r Rect) Cell(x, y, n int) (row, column int, ok bool) {
	if n <= 0 || !r.Contains(x, y) {
		return 0, 0, false
	}
	cw, ch := r.W/n, r.H/n
	if cw == 0 || ch == 0 {
		return 0, 0, false
	}
	column = (x - r.X) / cw
	row = (y - r.Y) / ch
	if column >= n || row >= n {
		return 0, 0, false
	}
	return row, column, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
