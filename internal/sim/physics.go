package sim

// resolveMovement integrates one tick of motion for an entity and resolves
// collisions against the grid. Axes are resolved separately: vertical
// first with snap-to-tile landing, then horizontal with wall snapping.
// Trapped entities skip motion entirely and only run their escape timer.
func (s *State) resolveMovement(e *Entity, dt float64) {
	if e.Trapped {
		s.tickTrapped(e, dt)
		return
	}

	// Gravity applies unless the entity holds a ladder or rope.
	if !e.Climbing && !e.OnRope {
		e.VY -= s.tuning.Gravity * dt
	}

	oldY := e.Y
	newX := e.X + e.VX*dt
	newY := e.Y + e.VY*dt

	// Vertical pass. Two samples slightly inside the left/right edges at
	// the leading edge (feet when falling, head when rising).
	if e.VY != 0 {
		left := newX + TileSize*0.1
		right := newX + EntityWidth - TileSize*0.1
		leadY := newY
		if e.VY > 0 {
			leadY = newY + EntityHeight
		}
		solid := s.TileAt(left, leadY).Solid() || s.TileAt(right, leadY).Solid()

		if e.VY < 0 {
			collision := solid
			headLanding := false
			// A trapped enemy's head is a platform: land exactly on it
			// when crossing its level with horizontal overlap.
			for _, en := range s.Enemies {
				if en == e || !en.Trapped {
					continue
				}
				headY := en.Y + TileSize*0.9
				if newY <= headY && oldY >= headY &&
					newX+EntityWidth > en.X && newX < en.X+EntityWidth {
					collision = true
					headLanding = true
					newY = headY
					break
				}
			}
			if collision {
				if !headLanding {
					newY = float64(WorldToGrid(leadY)+1) * TileSize
				}
				e.VY = 0
				e.Falling = false
				e.Jumping = false
			} else if !e.Climbing && !e.OnRope {
				e.Falling = true
			}
		} else if solid {
			newY = float64(WorldToGrid(leadY))*TileSize - EntityHeight
			e.VY = 0
		}
	}

	// Horizontal pass. Three samples down the leading edge.
	if e.VX != 0 {
		leadX := newX
		if e.VX > 0 {
			leadX = newX + EntityWidth
		}
		samples := [3]Tile{
			s.TileAt(leadX, newY+TileSize*0.1),
			s.TileAt(leadX, newY+EntityHeight*0.5),
			s.TileAt(leadX, newY+EntityHeight*0.9),
		}
		solid := false
		traversal := false
		for _, t := range samples {
			if t.Solid() {
				solid = true
			}
			if t == Ladder || t == Rope {
				traversal = true
			}
		}
		// Climbing or rope-hanging entities may squeeze past a wall when
		// part of their edge still overlaps the ladder/rope column.
		if solid && !((e.Climbing || e.OnRope) && traversal) {
			gx := WorldToGrid(leadX)
			if e.VX < 0 {
				newX = float64(gx+1) * TileSize
			} else {
				newX = float64(gx)*TileSize - EntityWidth
			}
			e.VX = 0
		}
	}

	e.X = newX
	e.Y = newY

	// World bounds. Side walls clamp; falling past the bottom costs the
	// player a life and kills an enemy.
	if e.X < 0 {
		e.X = 0
	}
	if e.X+EntityWidth > WorldWidth {
		e.X = WorldWidth - EntityWidth
	}
	if e.Y < -TileSize {
		e.Y = 0
		e.VY = 0
		if e.Role == RolePlayer {
			s.logger.Debug("player fell off the level")
			s.loseLife()
		} else {
			s.logger.Debug("enemy fell off the level", "enemy", e.Index)
			e.kill(s.tuning.RespawnDelay)
			return
		}
	}

	if e.Falling && e.VY == 0 && s.onGround(e) {
		e.Falling = false
		e.Jumping = false
	}

	// Falling into an open hole traps the entity, centered in the cell.
	feet := Cell{X: WorldToGrid(e.CenterX()), Y: WorldToGrid(e.Y + 1)}
	if e.Falling && !e.Trapped && s.Holes.Covers(feet) {
		s.logger.Debug("entity trapped", "role", e.Role, "x", feet.X, "y", feet.Y)
		e.Trapped = true
		e.TrapCell = feet
		// Escape just before the refill so a timely second dig can still
		// bury an enemy.
		e.TrapTimer = s.Holes.Remaining(feet) - 0.1
		if e.TrapTimer < 0 {
			e.TrapTimer = 0.01
		}
		e.X = float64(feet.X)*TileSize + (TileSize-EntityWidth)/2
		e.Y = float64(feet.Y) * TileSize
		e.VX, e.VY = 0, 0
		e.Falling = false
		e.Climbing = false
	}
}

// tickTrapped runs the escape countdown for an entity stuck in a hole.
// When the hole is already gone at expiry, an enemy dies and the player is
// freed with a small upward nudge out of the restored brick.
func (s *State) tickTrapped(e *Entity, dt float64) {
	e.TrapTimer -= dt
	e.VX, e.VY = 0, 0
	if e.TrapTimer > 0 {
		return
	}
	c := Cell{X: WorldToGrid(e.CenterX()), Y: WorldToGrid(e.Y)}
	if s.Holes.Covers(c) {
		// Hole outlived the escape timer; stay put until it refills.
		e.TrapTimer = 0.01
		return
	}
	if e.Role == RoleEnemy {
		s.logger.Debug("enemy buried by refilled hole", "enemy", e.Index)
		e.kill(s.tuning.RespawnDelay)
		return
	}
	s.logger.Debug("player freed from refilled hole")
	e.Trapped = false
	e.Y += 5
	e.Falling = true
}
