package sim

// Hole is a dug-out brick that will refill after a countdown.
type Hole struct {
	Remaining float64
	original  Tile
}

// HoleRegistry tracks every open hole in the level, keyed by grid cell.
// The registry owns the dig/refill lifecycle; the grid keeps its brick tile
// while a hole is open and TileAt masks it to Empty.
type HoleRegistry struct {
	holes      map[Cell]*Hole
	refillTime float64
}

func newHoleRegistry(refillTime float64) *HoleRegistry {
	return &HoleRegistry{
		holes:      make(map[Cell]*Hole),
		refillTime: refillTime,
	}
}

// Dig opens a hole at the cell. It fails when the cell is not a diggable
// brick or a hole is already open there.
func (r *HoleRegistry) Dig(g *Grid, c Cell) bool {
	if !g.Tile(c).Diggable() {
		return false
	}
	if _, open := r.holes[c]; open {
		return false
	}
	r.holes[c] = &Hole{Remaining: r.refillTime, original: g.Tile(c)}
	return true
}

// Covers reports whether an open hole masks the cell.
func (r *HoleRegistry) Covers(c Cell) bool {
	_, ok := r.holes[c]
	return ok
}

// Remaining returns the seconds left before the hole at the cell refills,
// or zero if no hole is open there.
func (r *HoleRegistry) Remaining(c Cell) float64 {
	if h, ok := r.holes[c]; ok {
		return h.Remaining
	}
	return 0
}

// Progress returns how far along the refill countdown is, from 0 (just
// dug) to 1 (about to close). Used by renderers to shade closing holes.
func (r *HoleRegistry) Progress(c Cell) float64 {
	h, ok := r.holes[c]
	if !ok || r.refillTime <= 0 {
		return 0
	}
	return 1 - h.Remaining/r.refillTime
}

// Len returns the number of open holes.
func (r *HoleRegistry) Len() int {
	return len(r.holes)
}

// Tick advances every hole's countdown and closes expired ones, restoring
// the original brick in the grid. Returns the cells that refilled this
// tick so the caller can resolve entities caught inside.
func (r *HoleRegistry) Tick(dt float64, g *Grid) []Cell {
	var refilled []Cell
	for c, h := range r.holes {
		h.Remaining -= dt
		if h.Remaining <= 0 {
			g.setTile(c, h.original)
			delete(r.holes, c)
			refilled = append(refilled, c)
		}
	}
	return refilled
}
