package anypang

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/anypang/internal/core"
	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
)

const (
	cellWidth  = 3 // bracket, token, bracket
	hudHeight  = 3
	boardW     = pang.Size*cellWidth + 2
	boardH     = pang.Size + 2
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

// tokenStyles maps token types to glyphs and colors: blue, red, green,
// yellow and dark gems.
var tokenStyles = [pang.TypeCount]struct {
	glyph rune
	color core.Color
}{
	{'●', core.ColorBrightBlue},
	{'◆', core.ColorBrightRed},
	{'▲', core.ColorBrightGreen},
	{'■', core.ColorBrightYellow},
	{'★', core.ColorMagenta},
}

const flashGlyph = '✸'

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight
	board := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, boardX)
	dst.DrawBox(board, core.ColorGray)
	if g.state != nil {
		g.renderTokens(dst, boardX, boardY)
		g.renderMarkers(dst, boardX, boardY)
	}
	dst.DrawTextCentered(boardY+boardH, "←↑↓→ move  space select  h hint  x drop  p pause", core.ColorGray)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

// renderHUD draws the title, score and chain info.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawStyledText(boardX+(boardW-utf8.RuneCountInString(title))/2, 0, title, core.ColorBrightWhite, core.AttrBold)

	st := g.State()
	dst.DrawText(boardX, 1, "Score: "+FormatScore(st.Score))
	moves := fmt.Sprintf("Moves: %d", st.Moves)
	dst.DrawText(boardX+boardW-len(moves), 1, moves)

	var info string
	switch {
	case g.combo > 1:
		info = fmt.Sprintf("Chain x%d  +%s", g.combo, FormatScore(g.lastGain))
		dst.DrawStyledText(boardX, 2, info, core.ColorBrightYellow, core.AttrBold)
	case g.lastGain > 0 && g.animating():
		info = "+" + FormatScore(g.lastGain)
		dst.DrawColoredText(boardX, 2, info, core.ColorBrightGreen)
	default:
		info = fmt.Sprintf("Best chain: %d", g.bestChain)
		dst.DrawColoredText(boardX, 2, info, core.ColorGray)
	}

	if g.mode == ModeEndless {
		r := fmt.Sprintf("Reshuffles: %d", g.reshuffles)
		dst.DrawColoredText(boardX+boardW-len(r), 2, r, core.ColorGray)
	}
}

// cellOrigin returns the screen position of the left bracket of a cell
// drawn at the given board row. Row 0 is the bottom of the board.
func cellOrigin(boardX, boardY, x int, row float64) (int, int) {
	r := int(math.Round(row))
	return boardX + 1 + x*cellWidth, boardY + 1 + (pang.Size - 1 - r)
}

// renderTokens draws every token at its animated row.
func (g *Game) renderTokens(dst *core.Screen, boardX, boardY int) {
	b := g.state.Board()
	dist := g.currentFall()

	for y := range pang.Size {
		for x := range pang.Size {
			cell := b.At(pang.C(x, y))
			row := displayRow(cell, dist)
			if row > float64(pang.Size-1) {
				continue // still above the board
			}
			sx, sy := cellOrigin(boardX, boardY, x, row)
			style := tokenStyles[cell.Type]
			dst.SetColored(sx+1, sy, style.glyph, style.color)
		}
	}

	for y := range pang.Size {
		for x := range pang.Size {
			t, ok := g.flashingAt(pang.C(x, y))
			if !ok {
				continue
			}
			sx, sy := cellOrigin(boardX, boardY, x, float64(y))
			dst.SetCell(sx+1, sy, core.Cell{Rune: flashGlyph, Color: tokenStyles[t].color, Attr: core.AttrBold})
		}
	}
}

// renderMarkers draws the hint, rejected swap, selection and cursor.
func (g *Game) renderMarkers(dst *core.Screen, boardX, boardY int) {
	bracket := func(c pang.Coord, left, right rune, color core.Color) {
		sx, sy := cellOrigin(boardX, boardY, c.X, float64(c.Y))
		dst.SetCell(sx, sy, core.Cell{Rune: left, Color: color, Attr: core.AttrBold})
		dst.SetCell(sx+2, sy, core.Cell{Rune: right, Color: color, Attr: core.AttrBold})
	}

	if g.hinting {
		bracket(g.hint.A, '(', ')', core.ColorBrightYellow)
		bracket(g.hint.B, '(', ')', core.ColorBrightYellow)
	}
	if g.rejectTicks > 0 {
		bracket(g.rejected.A, '×', '×', core.ColorRed)
		bracket(g.rejected.B, '×', '×', core.ColorRed)
	}
	if g.selecting {
		bracket(g.selected, '[', ']', core.ColorBrightCyan)
	}

	if g.gameOver {
		return
	}
	sx, sy := cellOrigin(boardX, boardY, g.cursor.X, float64(g.cursor.Y))
	for i := range cellWidth {
		c := dst.GetCell(sx+i, sy)
		c.Attr |= core.AttrReverse
		dst.SetCell(sx+i, sy, c)
	}
}

// renderOverlays draws game state overlays over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.err != nil:
		g.drawOverlay(dst, board, "BOARD ERROR", g.err.Error(), "Press R to restart")
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.drawOverlay(dst, board,
			"NO MOVES LEFT",
			"Score: "+FormatScore(g.score),
			fmt.Sprintf("Best chain: %d", g.bestChain),
			"Press R to restart")
	}
}

// drawOverlay draws a text box centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2).CenterIn(board)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		dst.DrawStyledText(x, box.Y+1+i, line, core.ColorBrightWhite, core.AttrBold)
	}
}
