package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceState tracks a piece through its lifecycle.
type PieceState int

const (
	PieceSpawned   PieceState = iota // Created, shown in the next panel
	PieceActive                      // Under player control on the board
	PieceLocked                      // Committed to the board
	PieceAbandoned                   // Dropped without locking when the player quit
)

// String returns the state name.
func (s PieceState) String() string {
	switch s {
	case PieceSpawned:
		return "spawned"
	case PieceActive:
		return "active"
	case PieceLocked:
		return "locked"
	case PieceAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Piece is the falling piece. Every move builds the proposed cells as a new
// slice and swaps them in only when the board accepts them.
type Piece struct {
	shape      Shape
	offset     int
	blocks     []core.Cell
	center     core.Point
	projection []core.Cell
	state      PieceState
}

// NewPiece creates a piece of the given shape shifted right by offset columns.
func NewPiece(shape Shape, offset int) *Piece {
	return &Piece{
		shape:  shape,
		offset: offset,
		blocks: core.Translate(shape.Cells[:], offset, 0),
		center: shape.Center.Add(float64(offset), 0),
		state:  PieceSpawned,
	}
}

// RandomPiece picks a shape uniformly from rng and an offset that keeps the
// piece inside a board of the given width.
func RandomPiece(rng *rand.Rand, width int) *Piece {
	shape := Shapes[rng.Intn(len(Shapes))]
	return NewPiece(shape, rng.Intn(width-shape.MaxX()))
}

// Spawn puts the piece under control on b.
func (p *Piece) Spawn(b *Board) {
	p.state = PieceActive
	p.UpdateProjection(b)
}

// Shape returns the piece template.
func (p *Piece) Shape() Shape {
	return p.shape
}

// Offset returns the spawn column offset.
func (p *Piece) Offset() int {
	return p.offset
}

// Color returns the piece color.
func (p *Piece) Color() core.Color {
	return p.shape.Color
}

// Blocks returns a copy of the committed cells.
func (p *Piece) Blocks() []core.Cell {
	return core.Translate(p.blocks, 0, 0)
}

// Center returns the rotation center.
func (p *Piece) Center() core.Point {
	return p.center
}

// Projection returns where the piece would land on a hard drop.
func (p *Piece) Projection() []core.Cell {
	return core.Translate(p.projection, 0, 0)
}

// State returns the lifecycle state.
func (p *Piece) State() PieceState {
	return p.state
}

// MoveLeft shifts the piece one column left. It reports whether it moved.
func (p *Piece) MoveLeft(b *Board) bool {
	return p.propose(b, core.Translate(p.blocks, -1, 0), p.center.Add(-1, 0))
}

// MoveRight shifts the piece one column right.
func (p *Piece) MoveRight(b *Board) bool {
	return p.propose(b, core.Translate(p.blocks, 1, 0), p.center.Add(1, 0))
}

// RotateLeft turns the piece counter-clockwise around its center.
func (p *Piece) RotateLeft(b *Board) bool {
	return p.propose(b, core.RotateCCW(p.blocks, p.center), p.center)
}

// RotateRight turns the piece clockwise around its center.
func (p *Piece) RotateRight(b *Board) bool {
	return p.propose(b, core.RotateCW(p.blocks, p.center), p.center)
}

// MoveDown soft-drops the piece one row. It returns true when the piece has
// come to rest and must be locked.
func (p *Piece) MoveDown(b *Board) bool {
	next := core.Translate(p.blocks, 0, 1)
	if b.BlockedBelow(next) {
		return true
	}
	p.propose(b, next, p.center.Add(0, 1))
	return false
}

// HardDrop moves the piece straight to its projection.
func (p *Piece) HardDrop(b *Board) {
	p.UpdateProjection(b)
	if len(p.projection) == 0 || len(p.blocks) == 0 {
		return
	}
	dy := p.projection[0].Y - p.blocks[0].Y
	p.blocks = core.Translate(p.projection, 0, 0)
	p.center = p.center.Add(0, float64(dy))
}

// Lock commits the piece cells to b.
func (p *Piece) Lock(b *Board) {
	b.AddBlock(p.blocks, p.shape.Color)
	p.state = PieceLocked
}

// Abandon ends control without touching the board.
func (p *Piece) Abandon() {
	p.state = PieceAbandoned
}

// UpdateProjection recomputes the landing position on b.
func (p *Piece) UpdateProjection(b *Board) {
	p.projection = b.DropProjection(p.blocks)
}

func (p *Piece) propose(b *Board, next []core.Cell, center core.Point) bool {
	if p.state != PieceActive || !b.Valid(next) {
		return false
	}
	p.blocks = next
	p.center = center
	p.UpdateProjection(b)
	return true
}
