package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/terminal-arcade/goldrush/internal/core"
)

// Tuning holds every gameplay constant. Values are world units (pixels)
// and seconds; speeds are units per second.
type Tuning struct {
	PlayerSpeed float64
	EnemySpeed  float64
	ClimbSpeed  float64
	RopeSpeed   float64
	Gravity     float64
	JumpImpulse float64

	EnemyCount    int
	Lives         int
	DigRefillTime float64 // Seconds until a dug hole closes
	RespawnDelay  float64 // Seconds a dead enemy waits before respawning
	GoldPoints    int

	// MaxDelta caps a single simulation step so a stalled frame cannot
	// tunnel entities through tiles.
	MaxDelta float64
}

// DefaultTuning returns the standard game balance.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:   150,
		EnemySpeed:    120,
		ClimbSpeed:    150,
		RopeSpeed:     150,
		Gravity:       500,
		JumpImpulse:   10,
		EnemyCount:    3,
		Lives:         3,
		DigRefillTime: 7,
		RespawnDelay:  3,
		GoldPoints:    100,
		MaxDelta:      0.1,
	}
}

// State is the full simulation: grid, holes, entities, and session
// counters. It is not safe for concurrent use; the caller owns the tick
// loop.
type State struct {
	tuning Tuning
	layout [GridHeight]string
	rng    *rand.Rand
	logger *log.Logger

	Grid    *Grid
	Holes   *HoleRegistry
	Player  *Entity
	Enemies []*Entity

	Score         int
	Lives         int
	GoldCollected int
	LevelComplete bool
	GameOver      bool
	GameWon       bool

	Tick uint64
}

// NewState builds a fresh simulation with the default level layout.
// The seed fixes enemy respawn directions, making runs reproducible.
// A nil logger disables logging.
func NewState(t Tuning, seed int64, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if t.EnemyCount < 0 {
		t.EnemyCount = 0
	}
	s := &State{
		tuning: t,
		layout: defaultLayout,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
	s.Reset()
	return s
}

// Tuning returns the gameplay constants the state was built with.
func (s *State) Tuning() Tuning {
	return s.tuning
}

// Reset reloads the level and restores the session to its initial state.
// The RNG is not reseeded, so a restart continues the same random stream.
func (s *State) Reset() {
	grid, playerSpawn, enemySpawns, report := LoadLevel(s.layout, s.tuning.EnemyCount)
	if report.PlayerFallback {
		s.logger.Warn("layout has no player marker, using fallback spawn",
			"x", playerSpawn.X, "y", playerSpawn.Y)
	}
	if report.EnemyFallbacks > 0 {
		s.logger.Warn("layout has no enemy markers, using fallback spawns",
			"enemies", report.EnemyFallbacks)
	}
	s.Grid = grid
	s.Holes = newHoleRegistry(s.tuning.DigRefillTime)
	s.Player = newEntity(RolePlayer, 0, playerSpawn)
	s.Enemies = s.Enemies[:0]
	for i, c := range enemySpawns {
		s.Enemies = append(s.Enemies, newEntity(RoleEnemy, i, c))
	}
	s.Score = 0
	s.Lives = s.tuning.Lives
	s.GoldCollected = 0
	s.LevelComplete = false
	s.GameOver = false
	s.GameWon = false
	s.Tick = 0
	s.logger.Debug("level loaded",
		"gold", grid.GoldTotal(),
		"enemies", len(s.Enemies))
}

// Step advances the simulation by dt seconds. The order within a tick is
// fixed: player input, player physics and pickups, enemies, hole decay,
// then the completion check. Once the game is over or won the world
// freezes until Reset.
func (s *State) Step(in *core.InputFrame, dt float64) {
	if dt <= 0 {
		return
	}
	if dt > s.tuning.MaxDelta {
		dt = s.tuning.MaxDelta
	}
	s.Tick++
	if s.GameOver || s.GameWon {
		return
	}

	s.handleInput(in)
	s.updatePlayer(dt)
	s.updateEnemies(dt)
	s.updateHoles(dt)
	s.checkLevelCompletion()
}

// updateHoles advances refill timers and resolves entities caught in
// cells that closed this tick.
func (s *State) updateHoles(dt float64) {
	refilled := s.Holes.Tick(dt, s.Grid)
	for _, c := range refilled {
		s.logger.Debug("hole refilled", "x", c.X, "y", c.Y)

		p := s.Player
		if p.Trapped && p.BodyCell() == c {
			s.logger.Debug("player freed from refilled hole")
			p.Trapped = false
			p.Y += 5 // Nudge clear of the restored brick
			p.Falling = true
		}
		for _, en := range s.Enemies {
			if en.Alive && en.Trapped && en.BodyCell() == c {
				s.logger.Debug("enemy buried by refilled hole", "enemy", en.Index)
				en.kill(s.tuning.RespawnDelay)
			}
		}
	}
}

// checkLevelCompletion reveals the exit once every gold piece is
// collected.
func (s *State) checkLevelCompletion() {
	if s.LevelComplete || s.Grid.GoldTotal() == 0 {
		return
	}
	if s.GoldCollected < s.Grid.GoldTotal() {
		return
	}
	s.LevelComplete = true
	revealed := s.Grid.RevealExitLadders()
	s.logger.Info("all gold collected, exit revealed", "ladders", len(revealed))
}

// loseLife deducts a life after the player falls off the level or is
// caught, ending the game at zero and otherwise respawning at the start.
func (s *State) loseLife() {
	s.Lives--
	if s.Lives <= 0 {
		s.GameOver = true
		s.logger.Info("game over", "score", s.Score)
		return
	}
	s.Player.placeAt(s.Player.Spawn)
}
