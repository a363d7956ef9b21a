// Package config provides YAML-based game configuration loading and
// difficulty presets for the goldrush platformer.
package config

// Config contains all tunable parameters for a game session.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Physics defines movement parameters in world units per second.
type Physics struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	ClimbSpeed  float64 `yaml:"climb_speed"`
	RopeSpeed   float64 `yaml:"rope_speed"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	MaxDelta    float64 `yaml:"max_delta"` // Per-tick time cap in seconds
}

// Gameplay defines session rules.
type Gameplay struct {
	Lives         int     `yaml:"lives"`
	Enemies       int     `yaml:"enemies"`
	DigRefillTime float64 `yaml:"dig_refill_time"` // Seconds before a hole closes
	RespawnDelay  float64 `yaml:"respawn_delay"`   // Seconds before a dead enemy returns
	GoldPoints    int     `yaml:"gold_points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the name maps to a known preset.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
