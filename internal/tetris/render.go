package tetris

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2 // Each board cell is two columns wide
	panelCells = 4 // Side panels are four cells wide
	panelRows  = 2 // and two cells tall
	scoreChunk = 8 // Score digits per panel line
)

var (
	emptyCell = []rune("[]")
	solidCell = []rune("██")
)

// CellOrigin maps a board cell to its screen column and row relative to the
// top-left corner of the board box.
func CellOrigin(x, y int) (col, row int) {
	return x*cellWidth + 1, y + 1
}

// Size returns the screen area a session with the given board size needs.
func Size(width, height int) (w, h int) {
	return (width+1)*cellWidth + panelCells*cellWidth + 2, height + 2
}

// Render draws the session centered on dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	w, h := Size(s.board.Width(), s.board.Height())
	if dst.Width() < w || dst.Height() < h {
		renderTooSmall(dst, w, h)
		return
	}

	ox := (dst.Width() - w) / 2
	oy := (dst.Height() - h) / 2

	s.renderFrame(dst, ox, oy)
	s.renderBoard(dst, ox, oy)
	s.renderNext(dst, ox, oy)
	s.renderScore(dst, ox, oy)
	s.renderOverlays(dst, ox, oy)
}

func renderTooSmall(dst *core.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderFrame draws the board box, the side panels and their labels.
func (s *Session) renderFrame(dst *core.Screen, ox, oy int) {
	bw, bh := s.board.Width(), s.board.Height()
	panelX := ox + (bw+1)*cellWidth
	panelW := panelCells*cellWidth + 2
	panelH := panelRows + 2

	dst.DrawBoxColor(core.NewRect(ox, oy, bw*cellWidth+2, bh+2), core.ColorGray)
	dst.DrawBoxColor(core.NewRect(panelX, oy, panelW, panelH), core.ColorGray)
	dst.DrawBoxColor(core.NewRect(panelX, oy+panelH, panelW, panelH), core.ColorGray)

	// Spawn rows
	markX := ox + bw*cellWidth + 1
	dst.SetCell(markX, oy+1, '!', core.ColorDarkRed)
	dst.SetCell(markX, oy+2, '!', core.ColorDarkRed)

	dst.DrawTextColor(ox+bw*cellWidth+3, oy, "NEXT", core.ColorDarkCyan)
	dst.DrawTextColor(ox+bw*cellWidth+3, oy+panelH, "SCORE", core.ColorDarkCyan)
}

func (s *Session) renderBoard(dst *core.Screen, ox, oy int) {
	for y := 0; y < s.board.Height(); y++ {
		for x := 0; x < s.board.Width(); x++ {
			drawCell(dst, ox, oy, core.Cell{X: x, Y: y}, emptyCell, core.ColorDarkGray)
		}
	}

	for _, blk := range s.board.blocks {
		drawCell(dst, ox, oy, blk.Cell, solidCell, blk.Color)
	}

	if s.active == nil || s.active.State() != PieceActive {
		return
	}

	if s.settings.DropProjection {
		for _, c := range s.active.projection {
			if !core.ContainsCell(s.active.blocks, c) {
				drawCell(dst, ox, oy, c, emptyCell, s.active.Color())
			}
		}
	}
	for _, c := range s.active.blocks {
		drawCell(dst, ox, oy, c, solidCell, s.active.Color())
	}
}

// renderNext draws the next piece at the top-left of its panel.
func (s *Session) renderNext(dst *core.Screen, ox, oy int) {
	px := s.board.Width() + 1
	for y := 0; y < panelRows; y++ {
		for x := 0; x < panelCells; x++ {
			drawCell(dst, ox, oy, core.Cell{X: px + x, Y: y}, emptyCell, core.ColorDarkGray)
		}
	}
	if s.next == nil {
		return
	}
	for _, c := range s.next.shape.Cells {
		drawCell(dst, ox, oy, c.Add(px, 0), solidCell, s.next.Color())
	}
}

// renderScore writes the score in chunks of eight digits, one per panel line.
func (s *Session) renderScore(dst *core.Screen, ox, oy int) {
	px := s.board.Width() + 1
	top := panelRows + 2
	for y := 0; y < panelRows; y++ {
		for x := 0; x < panelCells; x++ {
			drawCell(dst, ox, oy, core.Cell{X: px + x, Y: top + y}, emptyCell, core.ColorDarkGray)
		}
	}

	for i, seg := range ScoreSegments(s.score) {
		col, row := CellOrigin(px, top+i)
		dst.ClearRegion(core.NewRect(ox+col, oy+row, panelCells*cellWidth, 1))
		dst.DrawText(ox+col, oy+row, seg)
	}
}

// ScoreSegments splits the decimal score into chunks of eight characters.
func ScoreSegments(score int) []string {
	digits := strconv.Itoa(score)
	var segs []string
	for len(digits) > scoreChunk {
		segs = append(segs, digits[:scoreChunk])
		digits = digits[scoreChunk:]
	}
	return append(segs, digits)
}

func (s *Session) renderOverlays(dst *core.Screen, ox, oy int) {
	col, _ := CellOrigin(s.board.Width(), 0)
	centerX := ox + col/2
	centerY := oy + (s.board.Height()+2)/2

	switch s.state {
	case StatePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case StateOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Score: %d", s.score), "Press Enter")
	}
}

// drawCell draws a two-column glyph at board cell c.
func drawCell(dst *core.Screen, ox, oy int, c core.Cell, glyph []rune, color core.Color) {
	col, row := CellOrigin(c.X, c.Y)
	for i, r := range glyph {
		dst.SetCell(ox+col+i, oy+row, r, color)
	}
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.ClearRegion(box)
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
