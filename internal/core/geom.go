// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Cell is an integer grid coordinate. The origin is the top-left corner and
// Y grows downward.
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Point is a floating-point coordinate, used for rotation centers that can
// sit between cells.
type Point struct {
	X, Y float64
}

// Add returns the point shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Translate returns a new slice with every cell shifted by (dx, dy).
// The input slice is never modified.
func Translate(cells []Cell, dx, dy int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = c.Add(dx, dy)
	}
	return out
}

// RotateCW returns cells rotated 90 degrees clockwise around center:
// (x', y') = (-(y-cy)+cx, (x-cx)+cy).
func RotateCW(cells []Cell, center Point) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		x, y := float64(c.X), float64(c.Y)
		out[i] = Cell{
			X: roundToInt(-(y - center.Y) + center.X),
			Y: roundToInt((x - center.X) + center.Y),
		}
	}
	return out
}

// RotateCCW returns cells rotated 90 degrees counter-clockwise around center.
// It is the inverse of RotateCW.
func RotateCCW(cells []Cell, center Point) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		x, y := float64(c.X), float64(c.Y)
		out[i] = Cell{
			X: roundToInt((y - center.Y) + center.X),
			Y: roundToInt(-(x - center.X) + center.Y),
		}
	}
	return out
}

// roundToInt snaps a rotated coordinate to the grid. Centers are always
// chosen so rotated coordinates land on whole numbers; rounding only
// absorbs floating-point noise.
func roundToInt(v float64) int {
	return int(math.Round(v))
}

// ContainsCell reports whether c is one of cells.
func ContainsCell(cells []Cell, c Cell) bool {
	for _, other := range cells {
		if other == c {
			return true
		}
	}
	return false
}

// SameCells reports whether a and b hold the same set of cells, ignoring order.
func SameCells(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for _, c := range a {
		if !ContainsCell(b, c) {
			return false
		}
	}
	return true
}

// MaxX returns the largest X among cells, or 0 for an empty slice.
func MaxX(cells []Cell) int {
	maxX := 0
	for i, c := range cells {
		if i == 0 || c.X > maxX {
			maxX = c.X
		}
	}
	return maxX
}

// Rect represents an axis-aligned rectangle on the screen.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
