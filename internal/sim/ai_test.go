package sim

import (
	"testing"

	"github.com/terminal-arcade/goldrush/internal/core"
)

func TestEnemyChasesLevelPlayer(t *testing.T) {
	tuning := DefaultTuning()
	tuning.EnemyCount = 1
	s := newScenario(tuning, map[int]string{
		1: "SBBBBBBBBBBBBBBBBBBS",
		2: "EEEEXEEEEEEEEEPEEEEE",
	})
	en := s.Enemies[0]
	startX := en.X

	in := core.NewInputFrame()
	s.Step(&in, testDt)

	if en.VX != tuning.EnemySpeed {
		t.Errorf("enemy vx = %v, want full speed toward player", en.VX)
	}
	if !en.FaceRight {
		t.Error("enemy should face the player")
	}

	stepN(s, &in, 60)
	if en.X <= startX {
		t.Errorf("enemy should close the gap, x=%v start=%v", en.X, startX)
	}
}

func TestEnemyDeadzoneStopsJitter(t *testing.T) {
	tuning := DefaultTuning()
	tuning.EnemyCount = 1
	s := newScenario(tuning, map[int]string{
		1: "SBBBBBBBBBBBBBBBBBBS",
		2: "EEEEXEEEEEEEEEPEEEEE",
	})
	en := s.Enemies[0]
	en.X = s.Player.X + 5 // Within the deadzone

	s.pursue(en)

	if en.VX != 0 {
		t.Errorf("enemy vx = %v, want 0 inside the deadzone", en.VX)
	}
}

func TestEnemyAvoidsBlindDrop(t *testing.T) {
	// Enemy and player on separate platforms at the same height: the
	// enemy must stop at the edge rather than fall where the player
	// is not below.
	tuning := DefaultTuning()
	tuning.EnemyCount = 1
	s := newScenario(tuning, map[int]string{
		5: "EEBBBBBEEEEEBBBBBEEE",
		6: "EEEXEEEEEEEEEEPEEEEE",
	})
	en := s.Enemies[0]

	in := core.NewInputFrame()
	stepN(s, &in, 300)

	if en.Y != 6*TileSize {
		t.Fatalf("enemy should stay on its platform, y=%v", en.Y)
	}
	if en.Trapped || en.Falling {
		t.Error("enemy should not walk off the edge")
	}
	if en.X+EntityWidth > 7*TileSize+1 {
		t.Errorf("enemy should stop at the platform edge, x=%v", en.X)
	}
}

func TestEnemyFallsIntoDugHole(t *testing.T) {
	tuning := DefaultTuning()
	tuning.EnemyCount = 1
	s := newScenario(tuning, map[int]string{
		1: "SBBBBBBBBBBBBBBBBBBS",
		2: "EEEEXEEEEEEEEEPEEEEE",
	})
	en := s.Enemies[0]
	if !s.Holes.Dig(s.Grid, Cell{X: 8, Y: 1}) {
		t.Fatal("setup dig failed")
	}

	in := core.NewInputFrame()
	for i := 0; i < 300 && !en.Trapped; i++ {
		s.Step(&in, testDt)
	}

	if !en.Trapped {
		t.Fatal("enemy chasing across an open hole should fall in")
	}
	if en.X != 8*TileSize+(TileSize-EntityWidth)/2 || en.Y != TileSize {
		t.Errorf("trapped enemy should be centered in the hole, got (%v, %v)", en.X, en.Y)
	}
}

func TestEnemyClimbsTowardPlayerAbove(t *testing.T) {
	tuning := DefaultTuning()
	tuning.EnemyCount = 1
	s := newScenario(tuning, map[int]string{
		1: "SBBBBBBBBBBBBBBBBBBS",
		2: "EEEEEEEEEEXEEEEEEEEE",
		3: "EEEEEEEEEELEEEEEEEEE",
		4: "EEEEEEEEEELEEEEEEEEE",
		5: "EEEEEEEEEBLBEEEEEEEE",
		6: "EEEEEEEEEPEEEEEEEEEE",
	})
	en := s.Enemies[0]
	startY := en.Y

	in := core.NewInputFrame()
	s.Step(&in, testDt)

	if !en.Climbing {
		t.Fatal("enemy below a ladder leading to the player should climb")
	}
	if en.VY != tuning.ClimbSpeed {
		t.Errorf("enemy vy = %v, want climb speed", en.VY)
	}

	stepN(s, &in, 90)
	if en.Y <= startY+TileSize {
		t.Errorf("enemy should have climbed, y=%v start=%v", en.Y, startY)
	}
}

func TestEnemyRidesRope(t *testing.T) {
	tuning := DefaultTuning()
	tuning.EnemyCount = 1
	s := newScenario(tuning, map[int]string{
		5: "EERRRRRRRRRRRRRRRREE",
	})
	en := s.Enemies[0]
	p := s.Player

	// Hang both on the rope row, player to the right.
	en.X = 4*TileSize + TileSize*0.1
	en.Y = 5 * TileSize
	p.X = 12*TileSize + TileSize*0.1
	p.Y = 5 * TileSize

	s.pursue(en)

	if !en.OnRope {
		t.Fatal("enemy on the rope row should register as hanging")
	}
	if en.VX != tuning.RopeSpeed {
		t.Errorf("enemy vx on rope = %v, want rope speed", en.VX)
	}
	if en.VY != 0 || en.Falling {
		t.Error("enemy on a rope must not fall")
	}
}
