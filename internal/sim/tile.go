// Package sim implements the platformer simulation: a tile-grid world with
// diggable bricks, ladders and ropes, a player, and pursuing enemies. The
// package is pure game logic with no terminal or rendering dependencies;
// the platform layer drives it one tick at a time and reads its state back
// for display.
package sim

// Tile is the kind of a single grid cell. The kind determines passability:
// Brick and SolidBrick block movement, everything else is passable at the
// query level (the physics resolver enforces climb/slide restrictions).
type Tile uint8

const (
	Empty      Tile = iota
	Brick           // Diggable
	Ladder
	Rope            // Horizontal traversal
	SolidBrick      // Indestructible
	ExitLadder      // Appears after collecting all gold
)

// Diggable reports whether the tile can be dug out. Only plain bricks are.
func (t Tile) Diggable() bool {
	return t == Brick
}

// Solid reports whether the tile blocks movement.
func (t Tile) Solid() bool {
	return t == Brick || t == SolidBrick
}

// Climbable reports whether the tile supports vertical climbing.
func (t Tile) Climbable() bool {
	return t == Ladder || t == ExitLadder
}

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Brick:
		return "brick"
	case Ladder:
		return "ladder"
	case Rope:
		return "rope"
	case SolidBrick:
		return "solid"
	case ExitLadder:
		return "exit"
	default:
		return "unknown"
	}
}
