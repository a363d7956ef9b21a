package sim

import "math"

// World and grid dimensions. The simulation runs in a fixed world
// coordinate space regardless of terminal size; the renderer maps world
// units to character cells.
const (
	GridWidth  = 20 // Tiles horizontally
	GridHeight = 15 // Tiles vertically

	TileSize    = 40.0 // World units per tile
	WorldWidth  = GridWidth * TileSize
	WorldHeight = GridHeight * TileSize

	// Entity bounding box, slightly smaller than a tile so entities fit
	// through single-tile gaps.
	EntityWidth  = TileSize * 0.8
	EntityHeight = TileSize * 0.95
)

// Cell is a grid coordinate. Y grows upward: row 0 is the bottom of the
// world.
type Cell struct {
	X, Y int
}

// WorldToGrid converts a world coordinate to a grid index.
func WorldToGrid(v float64) int {
	return int(math.Floor(v / TileSize))
}

// Grid holds the static tile matrix and the gold-presence matrix for one
// level. It is immutable after load except for hole refills restoring dug
// bricks and the one-time exit-ladder reveal.
type Grid struct {
	tiles     [GridHeight][GridWidth]Tile
	gold      [GridHeight][GridWidth]bool
	goldTotal int
}

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// Tile returns the stored tile kind at the cell. Out-of-bounds cells
// resolve as SolidBrick so the world edge is impassable. This is the raw
// grid view; use State.TileAt for the hole-aware view.
func (g *Grid) Tile(c Cell) Tile {
	if !g.InBounds(c) {
		return SolidBrick
	}
	return g.tiles[c.Y][c.X]
}

// setTile overwrites a cell. Only the dig/refill cycle and the exit-ladder
// reveal go through here.
func (g *Grid) setTile(c Cell, t Tile) {
	if g.InBounds(c) {
		g.tiles[c.Y][c.X] = t
	}
}

// HasGold reports whether an uncollected gold piece sits at the cell.
func (g *Grid) HasGold(c Cell) bool {
	return g.InBounds(c) && g.gold[c.Y][c.X]
}

// TakeGold removes the gold piece at the cell, reporting whether one was
// there.
func (g *Grid) TakeGold(c Cell) bool {
	if !g.HasGold(c) {
		return false
	}
	g.gold[c.Y][c.X] = false
	return true
}

// GoldTotal returns the number of gold pieces placed at level load.
// The total is fixed for the session; it never increases.
func (g *Grid) GoldTotal() int {
	return g.goldTotal
}

// RevealExitLadders converts the reveal spots in the top row to
// ExitLadder. Exit ladders appear above top-area ladders; if the layout
// yields none, a single ladder is placed at the top center as a fallback.
// Returns the revealed cells.
func (g *Grid) RevealExitLadders() []Cell {
	var revealed []Cell
	top := GridHeight - 1
	for x := 0; x < GridWidth; x++ {
		if g.tiles[top-1][x] != Ladder {
			continue
		}
		if g.tiles[top][x] == Empty || g.tiles[top][x] == Ladder {
			g.tiles[top][x] = ExitLadder
			revealed = append(revealed, Cell{X: x, Y: top})
		}
	}
	if len(revealed) == 0 {
		center := GridWidth / 2
		if g.tiles[top-1][center] == Ladder || g.tiles[top-1][center] == Empty {
			g.tiles[top][center] = ExitLadder
			revealed = append(revealed, Cell{X: center, Y: top})
		}
	}
	return revealed
}
