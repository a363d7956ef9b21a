package config

import (
	_ "embed"
)

//go:embed defaults/goldrush.yaml
var defaultGoldrushYAML []byte

// DefaultConfig returns the default game configuration.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			PlayerSpeed: 150,
			EnemySpeed:  120,
			ClimbSpeed:  150,
			RopeSpeed:   150,
			Gravity:     500,
			JumpImpulse: 10,
			MaxDelta:    0.1,
		},
		Gameplay: Gameplay{
			Lives:         3,
			Enemies:       3,
			DigRefillTime: 7.0,
			RespawnDelay:  3.0,
			GoldPoints:    100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGoldrushYAML
}
