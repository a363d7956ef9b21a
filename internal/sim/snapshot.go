package sim

// EntitySnapshot is a copy of one entity's observable state.
type EntitySnapshot struct {
	X, Y      float64
	Alive     bool
	Trapped   bool
	Climbing  bool
	OnRope    bool
	Falling   bool
	FaceRight bool
}

// Snapshot is a point-in-time copy of the simulation, used by tests to
// compare runs and by the scoreboard to read final results. Two states
// stepped with identical tuning, seed, and inputs produce identical
// snapshots.
type Snapshot struct {
	Tick          uint64
	Score         int
	Lives         int
	GoldCollected int
	GoldTotal     int
	OpenHoles     int
	LevelComplete bool
	GameOver      bool
	GameWon       bool
	Player        EntitySnapshot
	Enemies       []EntitySnapshot
}

func snapshotEntity(e *Entity) EntitySnapshot {
	return EntitySnapshot{
		X:         e.X,
		Y:         e.Y,
		Alive:     e.Alive,
		Trapped:   e.Trapped,
		Climbing:  e.Climbing,
		OnRope:    e.OnRope,
		Falling:   e.Falling,
		FaceRight: e.FaceRight,
	}
}

// Snapshot copies the observable simulation state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.Tick,
		Score:         s.Score,
		Lives:         s.Lives,
		GoldCollected: s.GoldCollected,
		GoldTotal:     s.Grid.GoldTotal(),
		OpenHoles:     s.Holes.Len(),
		LevelComplete: s.LevelComplete,
		GameOver:      s.GameOver,
		GameWon:       s.GameWon,
		Player:        snapshotEntity(s.Player),
	}
	for _, en := range s.Enemies {
		snap.Enemies = append(snap.Enemies, snapshotEntity(en))
	}
	return snap
}
