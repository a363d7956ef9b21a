package sim

import "github.com/terminal-arcade/goldrush/internal/core"

// Role distinguishes the player from pursuers. Both share the same
// movement physics; only input sources and hole interaction differ.
type Role uint8

const (
	RolePlayer Role = iota
	RoleEnemy
)

// Entity is a movable actor in the world. Position is the bottom-left
// corner of the bounding box in world units; Y grows upward.
type Entity struct {
	Role  Role
	Index int // Enemy slot, 0 for the player

	X, Y   float64
	VX, VY float64

	Climbing  bool
	OnRope    bool
	Falling   bool
	Jumping   bool
	FaceRight bool

	// Trapped entities sit in a hole until the timer runs out or the
	// hole refills on top of them.
	Trapped   bool
	TrapTimer float64
	TrapCell  Cell

	// Dead enemies respawn after a delay. The player never uses these;
	// losing the player costs a life instead.
	Alive        bool
	RespawnTimer float64

	Spawn Cell
}

func newEntity(role Role, index int, spawn Cell) *Entity {
	e := &Entity{Role: role, Index: index, Spawn: spawn, FaceRight: true}
	e.placeAt(spawn)
	e.Alive = true
	return e
}

// placeAt moves the entity to a grid cell, centering the narrower
// bounding box with a small inset from the cell's left edge.
func (e *Entity) placeAt(c Cell) {
	e.X = float64(c.X)*TileSize + TileSize*0.1
	e.Y = float64(c.Y) * TileSize
	e.VX, e.VY = 0, 0
	e.Climbing = false
	e.OnRope = false
	e.Falling = false
	e.Jumping = false
	e.Trapped = false
	e.TrapTimer = 0
}

// Box returns the entity's world-space bounding box.
func (e *Entity) Box() core.Rect {
	return core.NewRect(e.X, e.Y, EntityWidth, EntityHeight)
}

// CenterX returns the horizontal center of the bounding box.
func (e *Entity) CenterX() float64 {
	return e.X + EntityWidth/2
}

// BodyCell returns the grid cell containing the entity's lower body.
func (e *Entity) BodyCell() Cell {
	return Cell{X: WorldToGrid(e.CenterX()), Y: WorldToGrid(e.Y)}
}

// kill marks an enemy dead and schedules its respawn.
func (e *Entity) kill(respawnDelay float64) {
	e.Alive = false
	e.RespawnTimer = respawnDelay
	e.VX, e.VY = 0, 0
	e.Trapped = false
	e.TrapTimer = 0
}

// respawn revives the entity at its spawn cell with the given initial
// horizontal velocity.
func (e *Entity) respawn(vx float64) {
	e.placeAt(e.Spawn)
	e.Alive = true
	e.RespawnTimer = 0
	e.VX = vx
	e.FaceRight = vx >= 0
}
