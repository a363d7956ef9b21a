// Package game adapts the goldrush simulation to the platform contract:
// fixed-tick stepping, abstract input actions, and screen-buffer
// rendering. All gameplay rules live in the sim package; this layer owns
// pausing, restarting, and presentation.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/terminal-arcade/goldrush/internal/config"
	"github.com/terminal-arcade/goldrush/internal/core"
	"github.com/terminal-arcade/goldrush/internal/sim"
)

// ID identifies the game for CLI commands and score storage.
const ID = "goldrush"

// Game wraps a simulation state behind the platform's game contract.
type Game struct {
	cfg     config.Config
	logger  *log.Logger
	runtime core.RuntimeConfig
	state   *sim.State
	paused  bool
}

// New creates a game with the given configuration. The logger may be nil.
func New(cfg config.Config, logger *log.Logger) *Game {
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Gold Rush"
}

// Tuning converts a loaded configuration into simulation constants.
func Tuning(cfg config.Config) sim.Tuning {
	t := sim.DefaultTuning()
	t.PlayerSpeed = cfg.Physics.PlayerSpeed
	t.EnemySpeed = cfg.Physics.EnemySpeed
	t.ClimbSpeed = cfg.Physics.ClimbSpeed
	t.RopeSpeed = cfg.Physics.RopeSpeed
	t.Gravity = cfg.Physics.Gravity
	t.JumpImpulse = cfg.Physics.JumpImpulse
	t.MaxDelta = cfg.Physics.MaxDelta
	t.Lives = cfg.Gameplay.Lives
	t.EnemyCount = cfg.Gameplay.Enemies
	t.DigRefillTime = cfg.Gameplay.DigRefillTime
	t.RespawnDelay = cfg.Gameplay.RespawnDelay
	t.GoldPoints = cfg.Gameplay.GoldPoints
	return t
}

// Reset initializes or restarts the game state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.runtime = rc
	seed := rand.New(rand.NewSource(rc.Seed)).Int63()
	g.state = sim.NewState(Tuning(g.cfg), seed, g.logger)
	g.paused = false
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && (g.state.GameOver || g.state.GameWon) {
		// Restart keeps the RNG stream so runs stay reproducible from
		// the original seed.
		g.state.Reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		in.Consume(core.ActionPause)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := 1.0 / float64(g.runtime.TickRate)
	g.state.Step(&in, dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Won:      g.state.GameWon,
		Paused:   g.paused,
	}
}

// Snapshot exposes the underlying simulation snapshot for tests and the
// scoreboard.
func (g *Game) Snapshot() sim.Snapshot {
	return g.state.Snapshot()
}
