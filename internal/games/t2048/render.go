package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3

	boardW = Size*cellWidth + 1
	boardH = Size*cellHeight + 1

	minScreenW = boardW + 2
	minScreenH = boardH + hudHeight + 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	renderBoard(dst, g.engine.Grid(), boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
	dst.DrawTextCentered(boardY+boardH+1, g.Controls(), core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

// renderHUD draws title, score, best tile and move count above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextCentered(0, "2048", core.ColorBrightWhite)

	state := g.engine.State()
	score := fmt.Sprintf("Score: %d", state.Score)
	dst.DrawText(boardX, 1, score)

	best := fmt.Sprintf("Best: %d", state.MaxTile)
	dst.DrawTextColored(boardX+boardW-runewidth.StringWidth(best), 1, best, core.TileColor(state.MaxTile))

	dst.DrawTextCentered(2, fmt.Sprintf("Moves: %d", state.Moves), core.ColorGray)
}

// renderBoard draws the grid lines and tile values.
func renderBoard(dst *core.Screen, grid *Grid, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, junction(x, y), core.ColorGray)
			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range Size {
		for c := range Size {
			val := grid.At(r, c)
			inner := core.NewRect(boardX+c*cellWidth+1, boardY+r*cellHeight+1, cellWidth-1, cellHeight-1)
			color := core.TileColor(val)
			// Fill the cell so the platform can paint a tile background.
			dst.DrawRect(inner, ' ', color)
			if val == 0 {
				continue
			}

			text := strconv.Itoa(val)
			pad := max((inner.W-runewidth.StringWidth(text))/2, 0)
			dst.DrawTextColored(inner.X+pad, inner.Y, text, color)
		}
	}
}

// junction picks the box-drawing rune for grid intersection (x, y).
func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, core.ColorYellow, "PAUSED", "Press P to resume")
	case g.engine.GameOver():
		drawOverlay(dst, board, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.engine.Score()),
			"Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, runewidth.StringWidth(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(cx-runewidth.StringWidth(line)/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}

// RenderText draws a grid as plain text, one row per line, using "." for
// empty cells. Used by the MCP tools and the CLI.
func RenderText(grid *Grid) string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			cell := "."
			if v := grid.At(r, c); v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(runewidth.FillLeft(cell, 6))
		}
	}
	return sb.String()
}
