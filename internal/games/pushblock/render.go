package pushblock

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/pushblock/internal/core"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 3
	hintLines = 1
)

// glyph is how one grid cell is drawn.
type glyph struct {
	text string
	fg   core.Color
}

var (
	glyphEmpty      = glyph{" .", core.ColorDarkGray}
	glyphStatic     = glyph{"██", core.ColorGray}
	glyphMoveable   = glyph{"[]", core.ColorYellow}
	glyphSatisfied  = glyph{"[]", core.ColorBrightGreen}
	glyphPlayer     = glyph{"<>", core.ColorBrightCyan}
	glyphPlayerPull = glyph{"<>", core.ColorBrightMagenta}
	glyphTarget     = glyph{"()", core.ColorRed}
	glyphCleared    = glyph{"**", core.ColorBrightYellow}
)

// minScreenSize returns the smallest terminal that fits the board and HUD.
func (g *Game) minScreenSize() (int, int) {
	w := g.grid.Cols()*cellWidth + 2
	if w < 36 {
		w = 36
	}
	h := hudHeight + g.grid.Rows() + 2 + hintLines
	return w, h
}

// boardRect returns the outer frame of the board, centered horizontally.
func (g *Game) boardRect() core.Rect {
	w := g.grid.Cols()*cellWidth + 2
	h := g.grid.Rows() + 2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.grid == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	dst.DrawTextCenteredColor(board.Bottom(), g.Controls(), core.ColorDarkGray)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score, level and the pull indicator.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextCenteredColor(0, "PUSH BLOCK", core.ColorBrightWhite)

	left := fmt.Sprintf("Score: %d", g.progress.Score())
	dst.DrawText(board.X, 1, left)

	pull, pullColor := "Pull: Off", core.ColorGray
	if g.PullMode() {
		pull, pullColor = "Pull: On", core.ColorBrightMagenta
	}
	right := fmt.Sprintf("Lv %d  ", g.progress.Level())
	rx := board.Right() - utf8.RuneCountInString(right) - utf8.RuneCountInString(pull)
	if rx < board.X+utf8.RuneCountInString(left)+1 {
		rx = board.X + utf8.RuneCountInString(left) + 1
	}
	dst.DrawText(rx, 1, right)
	dst.DrawTextColor(rx+utf8.RuneCountInString(right), 1, pull, pullColor)

	if text := g.banner.Text(); text != "" {
		dst.DrawTextCenteredColor(2, text, core.ColorBrightYellow)
	}
}

// renderBoard draws the frame and every cell.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBoxColor(board, core.ColorWhite)

	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			gl := g.cellGlyph(r, c)
			x := board.X + 1 + c*cellWidth
			y := board.Y + 1 + r
			dst.DrawTextColor(x, y, gl.text, gl.fg)
		}
	}
}

// cellGlyph picks the glyph for a cell from occupancy, target mask and
// active highlight.
func (g *Game) cellGlyph(r, c int) glyph {
	kind, _ := g.grid.Get(r, c)
	target := g.grid.IsTarget(r, c)
	fl := g.visuals.Flash(r, c)

	var gl glyph
	switch kind {
	case engine.StaticBlock:
		gl = glyphStatic
	case engine.MoveableBlock:
		gl = glyphMoveable
		if target {
			gl = glyphSatisfied
		}
	case engine.Player:
		gl = glyphPlayer
		if g.PullMode() {
			gl = glyphPlayerPull
		}
	default:
		gl = glyphEmpty
		if target {
			gl = glyphTarget
		}
		if fl == FlashRemove {
			gl = glyphCleared
		}
	}

	if fl == FlashSpawn {
		gl.fg = core.ColorBrightWhite
	}
	return gl
}

// renderOverlays draws the pause panel and the game over panel.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch g.phase {
	case PhaseStop:
		g.drawOverlay(dst, cx, cy, "PAUSED", "P: resume", "B: back to title")
	case PhaseEnd:
		g.drawOverlay(dst, cx, cy, "GAME OVER", g.endReason, fmt.Sprintf("Score: %d", g.progress.Score()))
	}
}

// drawOverlay draws a centered text panel.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Pull | P: Pause | Q: Quit"
}
