package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func fillRow(b *Board, y int, color core.Color) {
	for x := 0; x < b.Width(); x++ {
		b.AddBlock([]core.Cell{{X: x, Y: y}}, color)
	}
}

func TestBoardContainsBlock(t *testing.T) {
	b := NewBoard(4, 6)
	b.AddBlock([]core.Cell{{X: 1, Y: 5}, {X: 2, Y: 5}}, core.ColorRed)

	assert.True(t, b.ContainsBlock(core.Cell{X: 1, Y: 5}))
	assert.True(t, b.ContainsBlock(core.Cell{X: 2, Y: 5}))
	assert.False(t, b.ContainsBlock(core.Cell{X: 3, Y: 5}))

	color, ok := b.ColorAt(core.Cell{X: 2, Y: 5})
	assert.True(t, ok)
	assert.Equal(t, core.ColorRed, color)

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.ContainsBlock(core.Cell{X: 1, Y: 5}))
}

func TestCheckForLine(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *Board)
		lines    int
		expected []core.Cell
	}{
		{
			name:     "empty board",
			setup:    func(b *Board) {},
			lines:    0,
			expected: nil,
		},
		{
			name: "partial row stays",
			setup: func(b *Board) {
				b.AddBlock([]core.Cell{{X: 0, Y: 4}, {X: 1, Y: 4}}, core.ColorRed)
			},
			lines:    0,
			expected: []core.Cell{{X: 0, Y: 4}, {X: 1, Y: 4}},
		},
		{
			name: "bottom row falls away",
			setup: func(b *Board) {
				fillRow(b, 4, core.ColorRed)
				b.AddBlock([]core.Cell{{X: 0, Y: 3}, {X: 1, Y: 2}}, core.ColorBlue)
			},
			lines:    1,
			expected: []core.Cell{{X: 0, Y: 4}, {X: 1, Y: 3}},
		},
		{
			name: "two separated rows",
			setup: func(b *Board) {
				fillRow(b, 2, core.ColorRed)
				fillRow(b, 4, core.ColorRed)
				b.AddBlock([]core.Cell{{X: 0, Y: 3}, {X: 2, Y: 1}}, core.ColorBlue)
			},
			lines:    2,
			expected: []core.Cell{{X: 0, Y: 4}, {X: 2, Y: 3}},
		},
		{
			name: "stacked rows",
			setup: func(b *Board) {
				fillRow(b, 3, core.ColorRed)
				fillRow(b, 4, core.ColorRed)
				b.AddBlock([]core.Cell{{X: 1, Y: 2}}, core.ColorBlue)
			},
			lines:    2,
			expected: []core.Cell{{X: 1, Y: 4}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(3, 5)
			tc.setup(b)

			assert.Equal(t, tc.lines, b.CheckForLine())
			assert.Empty(t, b.FullRows())

			var cells []core.Cell
			for _, blk := range b.Blocks() {
				cells = append(cells, blk.Cell)
			}
			assert.True(t, core.SameCells(cells, tc.expected), "blocks = %v, expected %v", cells, tc.expected)
		})
	}
}

func TestCheckForLineKeepsColors(t *testing.T) {
	b := NewBoard(2, 3)
	fillRow(b, 2, core.ColorRed)
	b.AddBlock([]core.Cell{{X: 1, Y: 1}}, core.ColorGreen)

	assert.Equal(t, 1, b.CheckForLine())
	color, ok := b.ColorAt(core.Cell{X: 1, Y: 2})
	assert.True(t, ok)
	assert.Equal(t, core.ColorGreen, color)
}

func TestCheckFailure(t *testing.T) {
	tests := []struct {
		y        int
		expected bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{5, false},
	}

	for _, tc := range tests {
		b := NewBoard(4, 6)
		b.AddBlock([]core.Cell{{X: 2, Y: tc.y}}, core.ColorRed)
		assert.Equal(t, tc.expected, b.CheckFailure(), "block at row %d", tc.y)
	}
}

func TestValidAndBlockedBelow(t *testing.T) {
	b := NewBoard(4, 6)
	b.AddBlock([]core.Cell{{X: 1, Y: 5}}, core.ColorRed)

	assert.True(t, b.Valid([]core.Cell{{X: 0, Y: 0}, {X: 3, Y: 5}}))
	assert.False(t, b.Valid([]core.Cell{{X: -1, Y: 0}}), "left of the board")
	assert.False(t, b.Valid([]core.Cell{{X: 4, Y: 0}}), "right of the board")
	assert.False(t, b.Valid([]core.Cell{{X: 0, Y: -1}}), "above the board")
	assert.False(t, b.Valid([]core.Cell{{X: 0, Y: 6}}), "below the board")
	assert.False(t, b.Valid([]core.Cell{{X: 1, Y: 5}}), "on a block")

	assert.False(t, b.BlockedBelow([]core.Cell{{X: 0, Y: 5}}))
	assert.True(t, b.BlockedBelow([]core.Cell{{X: 0, Y: 6}}), "past the floor")
	assert.True(t, b.BlockedBelow([]core.Cell{{X: 1, Y: 5}}), "on a block")
}

func TestDropProjection(t *testing.T) {
	b := NewBoard(10, 22)
	b.AddBlock([]core.Cell{{X: 3, Y: 5}}, core.ColorRed)

	assert.Equal(t, []core.Cell{{X: 3, Y: 4}}, b.DropProjection([]core.Cell{{X: 3, Y: 0}}))
	assert.Equal(t, []core.Cell{{X: 4, Y: 21}}, b.DropProjection([]core.Cell{{X: 4, Y: 0}}), "empty column drops to the floor")
	assert.Equal(t, []core.Cell{{X: 3, Y: 21}}, b.DropProjection([]core.Cell{{X: 3, Y: 7}}), "blocks above are ignored")

	// The nearest obstacle across all columns wins.
	got := b.DropProjection([]core.Cell{{X: 2, Y: 0}, {X: 3, Y: 0}})
	assert.Equal(t, []core.Cell{{X: 2, Y: 4}, {X: 3, Y: 4}}, got)

	assert.Nil(t, b.DropProjection(nil))
}

func TestPoints(t *testing.T) {
	tests := []struct {
		lines, expected int
	}{
		{0, 0},
		{1, 1000},
		{2, 6000},
		{3, 16000},
		{4, 32000},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Points(tc.lines), "Points(%d)", tc.lines)
	}
}
