package sim

import "github.com/terminal-arcade/goldrush/internal/core"

// Enemy pursuit AI. Each enemy independently chases the player using the
// same movement rules the player has: ladders for vertical travel, ropes
// for horizontal travel, and plain running otherwise. Decisions are
// re-evaluated every tick from the current positions; there is no path
// memory.

// aiDeadzone stops horizontal jitter when the enemy is nearly aligned
// with the player.
const aiDeadzone = TileSize * 0.2

// updateEnemies advances respawn timers, runs pursuit and physics for
// live enemies, and resolves player contact.
func (s *State) updateEnemies(dt float64) {
	for _, en := range s.Enemies {
		if !en.Alive {
			en.RespawnTimer -= dt
			if en.RespawnTimer <= 0 {
				en.respawn(s.patrolVX())
				s.logger.Debug("enemy respawned", "enemy", en.Index)
			}
			continue
		}
		if en.Trapped {
			// Physics still runs the escape timer.
			s.resolveMovement(en, dt)
			continue
		}
		s.pursue(en)
		s.resolveMovement(en, dt)
		s.checkPlayerContact(en)
	}
}

// patrolVX picks a random initial direction at half speed for a freshly
// respawned enemy.
func (s *State) patrolVX() float64 {
	v := s.tuning.EnemySpeed / 2
	if s.rng.Intn(2) == 0 {
		return -v
	}
	return v
}

// pursue decides the enemy's velocities for this tick.
//
// Priorities: when the player is clearly above or below, reach a ladder
// (or ride a rope near the player's level); when roughly level, close the
// horizontal gap, creeping at half speed while straddling a ladder.
// Hazard avoidance then cancels moves that would drop the enemy off an
// edge the player is not below, or walk it into an open hole.
func (s *State) pursue(e *Entity) {
	p := s.Player
	diffX := p.X - e.X
	diffY := p.Y - e.Y

	centerX := e.CenterX()
	feetY := e.Y
	headGY := WorldToGrid(e.Y + EntityHeight)

	e.OnRope = s.onRope(e)

	var vx, vy float64
	climb := false

	ladderAtFeet := s.TileAt(centerX, feetY) == Ladder
	ladderBelow := ladderAtFeet || s.TileAt(centerX, feetY-1) == Ladder
	ladderAbove := false
	for y := headGY; y < GridHeight; y++ {
		t := s.TileAt(centerX, float64(y)*TileSize+1)
		if t == Ladder {
			ladderAbove = true
			break
		}
		if t.Solid() {
			break // Path blocked
		}
	}
	ropeAtLevel := s.TileAt(centerX, e.Y+EntityHeight*0.5) == Rope

	canLeft := s.canMoveTo(e.X-1, e.Y)
	canRight := s.canMoveTo(e.X+1, e.Y)

	if core.AbsF(diffY) > TileSize*0.75 {
		// Player is clearly above or below.
		switch {
		case diffY > 0 && ladderAbove:
			vy = s.tuning.ClimbSpeed
			climb = true
		case diffY < 0 && ladderBelow:
			vy = -s.tuning.ClimbSpeed
			climb = true
		case ropeAtLevel && core.AbsF(diffY) < TileSize*1.5:
			if diffX > aiDeadzone && canRight {
				vx = s.tuning.RopeSpeed
			} else if diffX < -aiDeadzone && canLeft {
				vx = -s.tuning.RopeSpeed
			}
		default:
			// No route up or down from here; close in horizontally.
			if diffX > aiDeadzone && canRight {
				vx = s.tuning.EnemySpeed
			} else if diffX < -aiDeadzone && canLeft {
				vx = -s.tuning.EnemySpeed
			}
		}
	} else {
		// Player is roughly level.
		switch {
		case e.OnRope:
			if diffX > aiDeadzone && canRight {
				vx = s.tuning.RopeSpeed
			} else if diffX < -aiDeadzone && canLeft {
				vx = -s.tuning.RopeSpeed
			}
			// Hold the rope line, nudging back to the rope row when
			// slightly off.
			ropeGY := WorldToGrid(e.Y + EntityHeight*0.5)
			if ropeGY >= 0 && ropeGY < GridHeight {
				ropeY := float64(ropeGY) * TileSize
				if core.AbsF(e.Y-ropeY) > 1 {
					e.Y += (ropeY - e.Y) * 0.1
				}
				e.VY = 0
				e.Falling = false
			}
		case ladderAtFeet && core.AbsF(diffX) < TileSize*0.6:
			// Straddling a ladder next to the player: creep sideways.
			if diffX > aiDeadzone && canRight {
				vx = s.tuning.EnemySpeed / 2
			} else if diffX < -aiDeadzone && canLeft {
				vx = -s.tuning.EnemySpeed / 2
			}
		default:
			if diffX > aiDeadzone && canRight {
				vx = s.tuning.EnemySpeed
			} else if diffX < -aiDeadzone && canLeft {
				vx = -s.tuning.EnemySpeed
			}
		}
	}

	// Hazard avoidance for planned horizontal moves.
	if !climb && !e.OnRope && vx != 0 && !e.Falling {
		ahead := TileSize * 0.6
		if vx < 0 {
			ahead = -ahead
		}
		nextX := centerX + ahead
		belowNext := s.TileAt(nextX, feetY-1)
		atNextFeet := s.TileAt(nextX, feetY)
		holeBelowNext := s.Holes.Covers(Cell{X: WorldToGrid(nextX), Y: WorldToGrid(feetY - 1)})

		// Refuse a blind drop unless the player is clearly below.
		if belowNext == Empty && !holeBelowNext &&
			atNextFeet != Ladder && atNextFeet != Rope {
			if diffY > -TileSize {
				vx = 0
			}
		}
		// Never walk straight into an open hole.
		if s.Holes.Covers(Cell{X: WorldToGrid(nextX), Y: WorldToGrid(feetY)}) &&
			atNextFeet != Ladder && atNextFeet != Rope {
			vx = 0
		}
	}

	e.VX = vx
	e.VY = vy
	e.Climbing = climb
	if vx != 0 {
		e.FaceRight = vx > 0
	}
}

// checkPlayerContact handles an enemy touching the player: a life is
// lost, and unless the game ends both the player and that enemy return to
// their spawns.
func (s *State) checkPlayerContact(en *Entity) {
	p := s.Player
	if s.GameOver || s.GameWon || p.Trapped {
		return
	}
	if !p.Box().Intersects(en.Box()) {
		return
	}
	s.logger.Debug("player caught", "enemy", en.Index, "lives", s.Lives-1)
	s.Lives--
	if s.Lives <= 0 {
		s.GameOver = true
		s.logger.Info("game over", "score", s.Score)
		return
	}
	p.placeAt(p.Spawn)
	en.respawn(s.patrolVX())
}
