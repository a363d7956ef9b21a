package sim

import "github.com/terminal-arcade/goldrush/internal/core"

// handleInput translates the held-action frame into player velocities and
// one-shot actions. Movement actions are level-triggered; jump and dig are
// edge-triggered and consumed from the frame.
func (s *State) handleInput(in *core.InputFrame) {
	p := s.Player
	if s.GameOver || s.GameWon || p.Trapped || !p.Alive {
		return
	}

	p.VX = 0
	onLadder := s.onLadder(p)
	p.OnRope = s.onRope(p)

	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)
	if left {
		if p.OnRope {
			p.VX = -s.tuning.RopeSpeed
		} else if !p.Climbing {
			p.VX = -s.tuning.PlayerSpeed
		}
		p.FaceRight = false
		if !p.OnRope {
			p.Climbing = false
		}
	}
	if right {
		if p.OnRope {
			p.VX = s.tuning.RopeSpeed
		} else if !p.Climbing {
			p.VX = s.tuning.PlayerSpeed
		}
		p.FaceRight = true
		if !p.OnRope {
			p.Climbing = false
		}
	}

	if onLadder {
		p.Falling = false
		p.OnRope = false // Ladder takes precedence over rope
		switch {
		case in.Has(core.ActionUp):
			p.VY = s.tuning.ClimbSpeed
			p.Climbing = true
		case in.Has(core.ActionDown):
			p.VY = -s.tuning.ClimbSpeed
			p.Climbing = true
		default:
			p.VY = 0
			p.Climbing = false
		}
	} else {
		p.Climbing = false
	}

	// Settle onto the rope only when the feet row actually holds one,
	// not while merely falling past it.
	if p.OnRope {
		c := Cell{X: WorldToGrid(p.X + TileSize*0.4), Y: WorldToGrid(p.Y + TileSize*0.1)}
		if s.Grid.Tile(c) == Rope {
			p.VY = 0
			p.Climbing = false
			p.Falling = false
		}
	}

	if in.Has(core.ActionJump) && s.onGround(p) && !p.Climbing && !p.OnRope && !p.Falling {
		p.VY = s.tuning.JumpImpulse
		p.Jumping = true
		p.Falling = false
		in.Consume(core.ActionJump)
	}

	// Digging requires stable footing: a supporting tile below, or
	// hanging on a ladder or rope. The target is the row below, one
	// column to the side.
	below := s.TileAt(p.X+TileSize*0.4, p.Y-1)
	canStand := below.Solid() || below == Ladder || below == Rope ||
		s.onLadder(p) || s.onRope(p)
	if canStand && !p.Falling && !p.Climbing {
		target := Cell{X: WorldToGrid(p.X + TileSize*0.4), Y: WorldToGrid(p.Y) - 1}
		switch {
		case in.Has(core.ActionDigLeft):
			target.X--
			s.dig(target)
			in.Consume(core.ActionDigLeft)
		case in.Has(core.ActionDigRight):
			target.X++
			s.dig(target)
			in.Consume(core.ActionDigRight)
		}
	}
}

func (s *State) dig(c Cell) {
	if s.Holes.Dig(s.Grid, c) {
		s.logger.Debug("hole dug", "x", c.X, "y", c.Y)
		return
	}
	// Not diggable or already open; the attempt only shows up in the log.
	s.logger.Debug("dig rejected", "x", c.X, "y", c.Y)
}

// updatePlayer runs player physics, then gold pickup and the exit check.
func (s *State) updatePlayer(dt float64) {
	p := s.Player
	if !p.Alive {
		return
	}
	s.resolveMovement(p, dt)
	s.collectGold()
	s.checkExit()
}

// collectGold scans the 3x3 cell neighborhood around the player's center
// and picks up any gold whose pickup box overlaps the player.
func (s *State) collectGold() {
	p := s.Player
	box := p.Box()
	cx := WorldToGrid(p.CenterX())
	cy := WorldToGrid(p.Y + EntityHeight/2)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c := Cell{X: cx + dx, Y: cy + dy}
			if !s.Grid.HasGold(c) {
				continue
			}
			goldBox := core.NewRect(
				float64(c.X)*TileSize+TileSize*0.2,
				float64(c.Y)*TileSize+TileSize*0.2,
				TileSize*0.6, TileSize*0.6,
			)
			if box.Intersects(goldBox) && s.Grid.TakeGold(c) {
				s.GoldCollected++
				s.Score += s.tuning.GoldPoints
				s.logger.Debug("gold collected",
					"score", s.Score,
					"gold", s.GoldCollected,
					"total", s.Grid.GoldTotal())
			}
		}
	}
}

// checkExit wins the game once the level is complete and the player
// overlaps an exit ladder in the top two rows.
func (s *State) checkExit() {
	if !s.LevelComplete || s.GameWon {
		return
	}
	p := s.Player
	headY := p.Y + TileSize*0.9
	if WorldToGrid(headY) < GridHeight-2 {
		return
	}
	cx := p.CenterX()
	if s.TileAt(cx, headY) == ExitLadder || s.TileAt(cx, p.Y+1) == ExitLadder {
		s.GameWon = true
		s.logger.Info("player reached the exit", "score", s.Score)
	}
}
