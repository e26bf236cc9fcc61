package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	content := `
physics:
  gravity: 777
  jump_impulse: 1111
gameplay:
  lives: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner failed: %v", err)
	}
	if cfg.Physics.Gravity != 777 {
		t.Errorf("Gravity = %d, want 777", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != 1111 {
		t.Errorf("JumpImpulse = %d, want 1111", cfg.Physics.JumpImpulse)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, want 5", cfg.Gameplay.Lives)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadRunnerRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a mapping"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadRunner(path); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

// The embedded YAML and the hardcoded fallback must describe the same game.
func TestEmbeddedDefaultMatchesFallback(t *testing.T) {
	var fromYAML RunnerConfig
	if err := yaml.Unmarshal(DefaultRunnerYAML(), &fromYAML); err != nil {
		t.Fatalf("Embedded default failed to parse: %v", err)
	}
	if fromYAML != DefaultRunnerConfig() {
		t.Errorf("Embedded default diverges from DefaultRunnerConfig:\nyaml: %+v\ncode: %+v", fromYAML, DefaultRunnerConfig())
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	t.Run("easy", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyEasy)
		if !cfg.Difficulty.Enabled {
			t.Error("Easy preset should keep progression enabled")
		}
		if cfg.Gameplay.Lives != 4 {
			t.Errorf("Lives = %d, want 4", cfg.Gameplay.Lives)
		}
		if cfg.World.BaseScrollSpeed != 400 {
			t.Errorf("BaseScrollSpeed = %d, want 400", cfg.World.BaseScrollSpeed)
		}
	})

	t.Run("hard", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyHard)
		if cfg.Difficulty.InitialLevel != 0.7 {
			t.Errorf("InitialLevel = %f, want 0.7", cfg.Difficulty.InitialLevel)
		}
		if cfg.Gameplay.Lives != 2 {
			t.Errorf("Lives = %d, want 2", cfg.Gameplay.Lives)
		}
		if cfg.Boss.AttackCooldown != 50 {
			t.Errorf("AttackCooldown = %d, want 50", cfg.Boss.AttackCooldown)
		}
	})

	t.Run("fixed disables progression", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyFixed)
		if cfg.Difficulty.Enabled {
			t.Error("Fixed preset should disable progression")
		}
		if cfg.Gameplay.Lives != 3 {
			t.Errorf("Fixed preset should not touch lives, got %d", cfg.Gameplay.Lives)
		}
	})

	t.Run("normal", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyNormal)
		if cfg.Difficulty.InitialLevel != 0.3 {
			t.Errorf("InitialLevel = %f, want 0.3", cfg.Difficulty.InitialLevel)
		}
	})
}

func TestRunnerConfigPathPrefersCustom(t *testing.T) {
	if got := RunnerConfigPath("/tmp/custom.yaml"); got != "/tmp/custom.yaml" {
		t.Errorf("RunnerConfigPath = %q, want the explicit path back", got)
	}
}
