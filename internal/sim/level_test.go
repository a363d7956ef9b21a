package sim

import "testing"

func TestLoadDefaultLevel(t *testing.T) {
	g, playerSpawn, enemySpawns, report := LoadLevel(defaultLayout, 3)

	if report.PlayerFallback || report.EnemyFallbacks != 0 {
		t.Errorf("default layout should need no fallbacks, got %+v", report)
	}
	if playerSpawn != (Cell{X: 9, Y: 2}) {
		t.Errorf("player spawn = %v, want (9,2)", playerSpawn)
	}
	if len(enemySpawns) != 3 {
		t.Fatalf("enemy spawns = %d, want 3", len(enemySpawns))
	}
	want := []Cell{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	for i, c := range want {
		if enemySpawns[i] != c {
			t.Errorf("enemy spawn %d = %v, want %v", i, enemySpawns[i], c)
		}
	}

	if g.GoldTotal() != 18 {
		t.Errorf("gold total = %d, want 18", g.GoldTotal())
	}
	// Gold rests one cell above each marker brick.
	for _, c := range []Cell{{X: 2, Y: 4}, {X: 1, Y: 13}, {X: 17, Y: 9}} {
		if !g.HasGold(c) {
			t.Errorf("expected gold at %v", c)
		}
		if g.Tile(Cell{X: c.X, Y: c.Y - 1}) != Brick {
			t.Errorf("expected brick under gold at %v", c)
		}
	}

	for x := 0; x < GridWidth; x++ {
		if g.Tile(Cell{X: x, Y: 0}) != SolidBrick {
			t.Errorf("bottom row at x=%d should be solid", x)
		}
	}
}

func TestTileOutOfBounds(t *testing.T) {
	g, _, _, _ := LoadLevel(defaultLayout, 0)

	cells := []Cell{
		{X: -1, Y: 5},
		{X: GridWidth, Y: 5},
		{X: 5, Y: -1},
		{X: 5, Y: GridHeight},
	}
	for _, c := range cells {
		if g.Tile(c) != SolidBrick {
			t.Errorf("out-of-bounds tile %v = %v, want solid", c, g.Tile(c))
		}
	}
}

func TestLoadLevelSpawnFallbacks(t *testing.T) {
	// A layout without spawn markers must still produce usable spawns.
	var layout [GridHeight]string
	for i := range layout {
		layout[i] = "EEEEEEEEEEEEEEEEEEEE"
	}
	layout[GridHeight-1] = "SSSSSSSSSSSSSSSSSSSS"

	_, playerSpawn, enemySpawns, report := LoadLevel(layout, 2)

	if playerSpawn != (Cell{X: 1, Y: 3}) {
		t.Errorf("fallback player spawn = %v, want (1,3)", playerSpawn)
	}
	if len(enemySpawns) != 2 {
		t.Fatalf("fallback enemy spawns = %d, want 2", len(enemySpawns))
	}
	if enemySpawns[0] != (Cell{X: GridWidth - 2, Y: 2}) {
		t.Errorf("fallback enemy spawn 0 = %v", enemySpawns[0])
	}
	if !report.PlayerFallback {
		t.Error("report should note the missing player marker")
	}
	if report.EnemyFallbacks != 2 {
		t.Errorf("report enemy fallbacks = %d, want 2", report.EnemyFallbacks)
	}
}

func TestRevealExitLadders(t *testing.T) {
	// The default layout has no ladder in the second row from the top,
	// so the reveal uses the top-center fallback.
	g, _, _, _ := LoadLevel(defaultLayout, 0)

	revealed := g.RevealExitLadders()

	if len(revealed) != 1 {
		t.Fatalf("revealed = %d ladders, want 1", len(revealed))
	}
	if g.Tile(Cell{X: GridWidth / 2, Y: GridHeight - 1}) != ExitLadder {
		t.Errorf("expected exit ladder at top center, got %v",
			g.Tile(Cell{X: GridWidth / 2, Y: GridHeight - 1}))
	}
}

func TestRevealExitLaddersFallback(t *testing.T) {
	// No ladders near the top: a single exit appears at top center.
	var layout [GridHeight]string
	for i := range layout {
		layout[i] = "EEEEEEEEEEEEEEEEEEEE"
	}
	layout[GridHeight-1] = "SSSSSSSSSSSSSSSSSSSS"
	g, _, _, _ := LoadLevel(layout, 0)

	revealed := g.RevealExitLadders()

	if len(revealed) != 1 {
		t.Fatalf("revealed = %d ladders, want 1", len(revealed))
	}
	if revealed[0] != (Cell{X: GridWidth / 2, Y: GridHeight - 1}) {
		t.Errorf("fallback exit at %v, want top center", revealed[0])
	}
}
