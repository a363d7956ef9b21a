package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := DefaultConfig()
	if cfg.Physics.PlayerSpeed != def.Physics.PlayerSpeed {
		t.Errorf("PlayerSpeed = %v, expected %v", cfg.Physics.PlayerSpeed, def.Physics.PlayerSpeed)
	}
	if cfg.Gameplay.Lives != def.Gameplay.Lives {
		t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, def.Gameplay.Lives)
	}
	if cfg.Gameplay.DigRefillTime != def.Gameplay.DigRefillTime {
		t.Errorf("DigRefillTime = %v, expected %v", cfg.Gameplay.DigRefillTime, def.Gameplay.DigRefillTime)
	}
}

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, or the
	// config printed by the CLI would not reflect actual defaults.
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults diverge from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
physics:
  player_speed: 200
  gravity: 400
gameplay:
  lives: 7
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Physics.PlayerSpeed != 200 {
		t.Errorf("PlayerSpeed = %v, expected 200", cfg.Physics.PlayerSpeed)
	}
	if cfg.Physics.Gravity != 400 {
		t.Errorf("Gravity = %v, expected 400", cfg.Physics.Gravity)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/goldrush.yaml")
	if err == nil {
		t.Error("Load with missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || cfg.Gameplay.Enemies != 2 {
		t.Errorf("Easy preset: lives=%d enemies=%d", cfg.Gameplay.Lives, cfg.Gameplay.Enemies)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Gameplay.Enemies != 4 {
		t.Errorf("Hard preset: lives=%d enemies=%d", cfg.Gameplay.Lives, cfg.Gameplay.Enemies)
	}

	// Normal leaves the config untouched
	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.Gameplay.Lives != DefaultConfig().Gameplay.Lives {
		t.Errorf("Normal preset should not change lives, got %d", cfg.Gameplay.Lives)
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, expected true", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(\"nightmare\") = true, expected false")
	}
}
