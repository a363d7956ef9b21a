package game

import (
	"fmt"

	"github.com/terminal-arcade/goldrush/internal/core"
	"github.com/terminal-arcade/goldrush/internal/sim"
)

// Each world tile maps to two character cells horizontally and one
// vertically, so the 20x15 grid fits a standard 80x24 terminal with room
// for the HUD.
const (
	tileCols  = 2
	hudHeight = 2

	mapCols = sim.GridWidth * tileCols
	mapRows = sim.GridHeight
)

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if dst.Width() < mapCols || dst.Height() < mapRows+hudHeight {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - mapCols) / 2
	offY := hudHeight

	g.renderGrid(dst, offX, offY)
	g.renderEntities(dst, offX, offY)

	st := g.state
	switch {
	case st.GameWon:
		g.renderOverlay(dst, "You escaped!", fmt.Sprintf("Final Score: %d", st.Score))
	case st.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.state
	hud := fmt.Sprintf(" Gold Rush — Score: %d  Lives: %d  Gold: %d/%d",
		st.Score, st.Lives, st.GoldCollected, st.Grid.GoldTotal())
	if st.LevelComplete && !st.GameWon {
		hud += "  EXIT OPEN!"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws tiles, open holes, and gold.
func (g *Game) renderGrid(dst *core.Screen, offX, offY int) {
	st := g.state
	for y := 0; y < sim.GridHeight; y++ {
		sy := offY + (sim.GridHeight - 1 - y)
		for x := 0; x < sim.GridWidth; x++ {
			c := sim.Cell{X: x, Y: y}
			sx := offX + x*tileCols

			if st.Holes.Covers(c) {
				// Shade the hole as the refill approaches.
				if st.Holes.Progress(c) > 0.75 {
					dst.SetColored(sx, sy, '░', core.ColorOrange)
					dst.SetColored(sx+1, sy, '░', core.ColorOrange)
				}
				continue
			}

			var r rune
			var col core.Color
			switch st.Grid.Tile(c) {
			case sim.SolidBrick:
				r, col = '█', core.ColorGray
			case sim.Brick:
				r, col = '▒', core.ColorOrange
			case sim.Ladder:
				r, col = 'H', core.ColorCyan
			case sim.ExitLadder:
				r, col = 'H', core.ColorBrightGreen
			case sim.Rope:
				r, col = '─', core.ColorYellow
			default:
				if st.Grid.HasGold(c) {
					dst.SetColored(sx, sy, '$', core.ColorBrightYellow)
				}
				continue
			}
			dst.SetColored(sx, sy, r, col)
			dst.SetColored(sx+1, sy, r, col)

			if st.Grid.HasGold(c) {
				dst.SetColored(sx, sy, '$', core.ColorBrightYellow)
			}
		}
	}
}

// renderEntities draws the player and live enemies on top of the grid.
func (g *Game) renderEntities(dst *core.Screen, offX, offY int) {
	st := g.state
	for _, en := range st.Enemies {
		if !en.Alive {
			continue
		}
		r, col := 'M', core.ColorBrightRed
		if en.Trapped {
			r, col = 'm', core.ColorRed
		}
		drawEntity(dst, en, r, col, offX, offY)
	}
	drawEntity(dst, st.Player, '@', core.ColorBrightWhite, offX, offY)
}

func drawEntity(dst *core.Screen, e *sim.Entity, r rune, col core.Color, offX, offY int) {
	sx := offX + int((e.X+sim.EntityWidth/2)/sim.TileSize*tileCols)
	sy := offY + (sim.GridHeight - 1 - sim.WorldToGrid(e.Y+sim.EntityHeight/2))
	dst.SetColored(sx, sy, r, col)
}

// renderOverlay draws a centered boxed message over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			edgeY := y == boxY || y == boxY+boxH-1
			edgeX := x == boxX || x == boxX+boxW-1
			switch {
			case edgeY && edgeX:
				dst.Set(x, y, '+')
			case edgeY:
				dst.Set(x, y, '-')
			case edgeX:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
