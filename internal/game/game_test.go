package game

import (
	"strings"
	"testing"

	"github.com/terminal-arcade/goldrush/internal/config"
	"github.com/terminal-arcade/goldrush/internal/core"
	"github.com/terminal-arcade/goldrush/internal/sim"
)

func newTestGame() *Game {
	g := New(config.DefaultConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func TestTuningFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Gameplay.Lives = 5
	cfg.Physics.Gravity = 250

	tuning := Tuning(cfg)

	if tuning.Lives != 5 {
		t.Errorf("lives = %d, want 5", tuning.Lives)
	}
	if tuning.Gravity != 250 {
		t.Errorf("gravity = %v, want 250", tuning.Gravity)
	}
	if tuning.GoldPoints != 100 {
		t.Errorf("gold points = %d, want default 100", tuning.GoldPoints)
	}
}

func TestStepAdvancesSimulation(t *testing.T) {
	g := newTestGame()

	res := g.Step(core.NewInputFrame())

	if res.State.GameOver || res.State.Won {
		t.Error("fresh game should not be over")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, want 1", g.Snapshot().Tick)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != before.Tick {
		t.Error("simulation must not advance while paused")
	}

	in2 := core.NewInputFrame()
	in2.Set(core.ActionPause)
	if res := g.Step(in2); res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame()
	g.state.GameOver = true
	g.state.Score = 300

	// Restart is ignored mid-game, honored after game over.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.GameOver {
		t.Error("restart should clear game over")
	}
	if res.State.Score != 0 {
		t.Errorf("score after restart = %d, want 0", res.State.Score)
	}
}

func TestRenderDrawsHUDAndWorld(t *testing.T) {
	g := newTestGame()
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Gold Rush") {
		t.Errorf("HUD missing title: %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(0), "Lives: 3") {
		t.Errorf("HUD missing lives: %q", dst.Row(0))
	}
	// Bottom grid row is solid wall.
	bottom := dst.Row(hudHeight + sim.GridHeight - 1)
	if !strings.Contains(bottom, "█") {
		t.Errorf("bottom row should show solid bricks: %q", bottom)
	}
	// The player marker is somewhere on screen.
	if !strings.Contains(dst.String(), "@") {
		t.Error("player marker missing from render")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame()
	dst := core.NewScreen(30, 10)

	g.Render(dst)

	if !strings.Contains(dst.String(), "too small") {
		t.Error("small screens should show the resize overlay")
	}
}
