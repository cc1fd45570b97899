package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Shape is a piece template positioned at the top-left of the board.
type Shape struct {
	Name   string
	Cells  [4]core.Cell
	Center core.Point
	Color  core.Color
}

// Shapes lists the seven pieces a session draws from.
var Shapes = []Shape{
	{Name: "I", Cells: [4]core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, Center: core.Point{X: 1.5, Y: 0.5}, Color: core.ColorCyan},
	{Name: "J", Cells: [4]core.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, Center: core.Point{X: 1, Y: 1}, Color: core.ColorBlue},
	{Name: "L", Cells: [4]core.Cell{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, Center: core.Point{X: 1, Y: 1}, Color: core.ColorOrange},
	{Name: "O", Cells: [4]core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, Center: core.Point{X: 0.5, Y: 0.5}, Color: core.ColorYellow},
	{Name: "S", Cells: [4]core.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, Center: core.Point{X: 1, Y: 1}, Color: core.ColorGreen},
	{Name: "T", Cells: [4]core.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, Center: core.Point{X: 1, Y: 1}, Color: core.ColorMagenta},
	{Name: "Z", Cells: [4]core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}, Center: core.Point{X: 1, Y: 1}, Color: core.ColorRed},
}

// ShapeByName looks up a shape by its letter.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// MaxX returns the rightmost column of the shape.
func (s Shape) MaxX() int {
	return core.MaxX(s.Cells[:])
}
