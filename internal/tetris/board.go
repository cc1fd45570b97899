// Package tetris implements the falling-block puzzle engine: the board of
// settled blocks, the active piece, scoring and the game session that ties
// them together. It has no dependency on Bubble Tea.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Block is a settled cell together with the color of the piece it came from.
type Block struct {
	core.Cell
	Color core.Color
}

// Board holds every block that has settled. No two blocks share a cell.
type Board struct {
	width  int
	height int
	blocks []Block
}

// NewBoard creates an empty board. height includes the hidden spawn rows.
func NewBoard(width, height int) *Board {
	return &Board{width: width, height: height}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells, spawn rows included.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of settled blocks.
func (b *Board) Len() int {
	return len(b.blocks)
}

// Blocks returns a copy of the settled blocks.
func (b *Board) Blocks() []Block {
	out := make([]Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// AddBlock settles cells with the given color. Overlap is not checked; the
// caller only commits positions that passed collision.
func (b *Board) AddBlock(cells []core.Cell, color core.Color) {
	for _, c := range cells {
		b.blocks = append(b.blocks, Block{Cell: c, Color: color})
	}
}

// ContainsBlock reports whether a settled block occupies c.
func (b *Board) ContainsBlock(c core.Cell) bool {
	_, ok := b.ColorAt(c)
	return ok
}

// ColorAt returns the color of the block at c, if any.
func (b *Board) ColorAt(c core.Cell) (core.Color, bool) {
	for _, blk := range b.blocks {
		if blk.Cell == c {
			return blk.Color, true
		}
	}
	return core.ColorDefault, false
}

// CheckFailure reports whether any block has settled in the two spawn rows.
func (b *Board) CheckFailure() bool {
	for _, blk := range b.blocks {
		if blk.Y == 0 || blk.Y == 1 {
			return true
		}
	}
	return false
}

// CheckForLine removes every full row, dropping the rows above each one by a
// single row, and returns how many rows were removed.
func (b *Board) CheckForLine() int {
	cleared := 0
	for i := 0; i < b.height; i++ {
		row := b.firstFullRow()
		if row < 0 {
			break
		}
		b.destroyLine(row)
		cleared++
	}
	return cleared
}

// FullRows returns the full rows in ascending order.
func (b *Board) FullRows() []int {
	counts := b.rowCounts()
	var rows []int
	for y := 0; y < b.height; y++ {
		if counts[y] == b.width {
			rows = append(rows, y)
		}
	}
	return rows
}

func (b *Board) firstFullRow() int {
	if rows := b.FullRows(); len(rows) > 0 {
		return rows[0]
	}
	return -1
}

// rowCounts returns how many distinct in-bounds columns are filled per row.
func (b *Board) rowCounts() map[int]int {
	seen := make(map[core.Cell]struct{}, len(b.blocks))
	counts := make(map[int]int)
	for _, blk := range b.blocks {
		if blk.X < 0 || blk.X >= b.width {
			continue
		}
		if _, dup := seen[blk.Cell]; dup {
			continue
		}
		seen[blk.Cell] = struct{}{}
		counts[blk.Y]++
	}
	return counts
}

func (b *Board) destroyLine(row int) {
	kept := b.blocks[:0]
	for _, blk := range b.blocks {
		switch {
		case blk.Y == row:
			continue
		case blk.Y < row:
			blk.Y++
		}
		kept = append(kept, blk)
	}
	b.blocks = kept
}

// Valid reports whether every cell lies inside the board and on an empty cell.
func (b *Board) Valid(cells []core.Cell) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= b.width || c.Y < 0 || c.Y >= b.height {
			return false
		}
		if b.ContainsBlock(c) {
			return false
		}
	}
	return true
}

// BlockedBelow reports whether cells have run into the floor or a settled
// block. A soft drop that proposes such cells locks the piece instead.
func (b *Board) BlockedBelow(cells []core.Cell) bool {
	for _, c := range cells {
		if c.Y > b.height-1 || b.ContainsBlock(c) {
			return true
		}
	}
	return false
}

// DropProjection returns where cells would come to rest if dropped straight
// down.
func (b *Board) DropProjection(cells []core.Cell) []core.Cell {
	if len(cells) == 0 {
		return nil
	}

	offset := b.height + 1
	for _, c := range cells {
		floor := b.height
		for _, blk := range b.blocks {
			if blk.X == c.X && blk.Y > c.Y && blk.Y < floor {
				floor = blk.Y
			}
		}
		if d := floor - c.Y; d < offset {
			offset = d
		}
	}
	return core.Translate(cells, 0, offset-1)
}

// Clear removes every block.
func (b *Board) Clear() {
	b.blocks = nil
}
