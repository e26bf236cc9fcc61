package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration. The values
// mirror defaults/runner.yaml; this is the hardcoded fallback if the
// embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      300,
			JumpImpulse:  2500,
			MaxFallSpeed: 4000,
		},
		World: RunnerWorld{
			BaseScrollSpeed: 500,
			MaxScrollSpeed:  1200,
			LevelDistance:   400,
			DespawnMargin:   8,
		},
		Runner: RunnerPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Spawn: RunnerSpawn{
			EnemyBaseSpeed: 300,
		},
		Boss: RunnerBoss{
			StompDamage:     10,
			StompBounce:     2000,
			StompKnockback:  3,
			AttackCooldown:  60,
			Phase2Cooldown:  36,
			ProjectileSpeed: 700,
			SpreadArc:       350,
		},
		Gameplay: RunnerGameplay{
			Lives:                3,
			InvulnerabilityTicks: 120,
			TickScore:            1,
			LevelBonus:           250,
			BossBonus:            1000,
			TouchBonus:           25,
			InterludeTicks:       90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				SpacingReduction: 12,
			},
		},
	}
}

// DefaultRunnerYAML returns the embedded default config file, for the
// config export command.
func DefaultRunnerYAML() []byte {
	out := make([]byte, len(defaultRunnerYAML))
	copy(out, defaultRunnerYAML)
	return out
}
