package sim

import "github.com/terminal-arcade/goldrush/internal/core"

// Spatial queries shared by the player, the enemies, and the physics
// resolver. All queries go through TileAt so open holes read as empty
// space everywhere.

// TileAt returns the effective tile at a world coordinate. Open holes
// mask their brick to Empty; out-of-bounds coordinates read as SolidBrick.
func (s *State) TileAt(x, y float64) Tile {
	c := Cell{X: WorldToGrid(x), Y: WorldToGrid(y)}
	if !s.Grid.InBounds(c) {
		return SolidBrick
	}
	if s.Holes.Covers(c) {
		return Empty
	}
	return s.Grid.Tile(c)
}

// canMoveTo reports whether an entity-sized box at (x, y) is free of
// solid tiles. Samples a 3x3 grid over the box: corners, edge midpoints,
// and center.
func (s *State) canMoveTo(x, y float64) bool {
	xs := [3]float64{x, x + EntityWidth/2, x + EntityWidth}
	ys := [3]float64{y, y + EntityHeight/2, y + EntityHeight}
	for _, px := range xs {
		for _, py := range ys {
			if s.TileAt(px, py).Solid() {
				return false
			}
		}
	}
	return true
}

// onGround reports whether the entity is supported from below, either by
// a solid tile one unit under its feet or by a trapped enemy's head.
func (s *State) onGround(e *Entity) bool {
	checkY := e.Y - 1
	for _, fx := range [3]float64{0.1, 0.5, 0.9} {
		if s.TileAt(e.X+EntityWidth*fx, checkY).Solid() {
			return true
		}
	}
	for _, en := range s.Enemies {
		if en == e || !en.Trapped {
			continue
		}
		headY := en.Y + TileSize*0.9
		if core.AbsF(e.Y-headY) < 5 &&
			e.X+EntityWidth > en.X && e.X < en.X+EntityWidth {
			return true
		}
	}
	return false
}

// onLadder reports whether the entity's center column overlaps a ladder.
// Samples near the feet, middle, and head.
func (s *State) onLadder(e *Entity) bool {
	cx := e.CenterX()
	for _, fy := range [3]float64{0.1, 0.5, 0.9} {
		if s.TileAt(cx, e.Y+EntityHeight*fy).Climbable() {
			return true
		}
	}
	return false
}

// onRope reports whether the entity hangs on a rope: the tile at its
// vertical center is a rope and its feet sit within a narrow band of the
// rope row.
func (s *State) onRope(e *Entity) bool {
	cx := e.CenterX()
	cy := e.Y + EntityHeight*0.5
	if s.TileAt(cx, cy) != Rope {
		return false
	}
	ropeRowY := float64(WorldToGrid(cy)) * TileSize
	return core.AbsF(e.Y-ropeRowY) < TileSize*0.3
}
