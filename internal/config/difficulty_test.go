package config

import (
	"math"
	"testing"
)

func progressionConfig(ptype string, maxAt int) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: ptype, MaxAt: maxAt},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, SpacingReduction: 20},
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	tests := []struct {
		name  string
		cfg   DifficultyConfig
		score int
		ticks int
		want  float64
	}{
		{
			name:  "disabled stays at initial",
			cfg:   DifficultyConfig{Enabled: false, InitialLevel: 0.4},
			score: 99999,
			want:  0.4,
		},
		{
			name:  "type none stays at initial",
			cfg:   DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: "none"}},
			score: 99999,
			want:  0.2,
		},
		{
			name: "score at zero",
			cfg:  progressionConfig("score", 1000),
			want: 0.0,
		},
		{
			name:  "score halfway",
			cfg:   progressionConfig("score", 1000),
			score: 500,
			want:  0.5,
		},
		{
			name:  "score clamps past max",
			cfg:   progressionConfig("score", 1000),
			score: 5000,
			want:  1.0,
		},
		{
			name:  "time halfway",
			cfg:   progressionConfig("time", 600),
			ticks: 300,
			want:  0.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			got := d.Level(tc.score, tc.ticks)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Level(%d, %d) = %f, want %f", tc.score, tc.ticks, got, tc.want)
			}
		})
	}
}

func TestDifficultyLevelInterpolatesFromInitial(t *testing.T) {
	cfg := progressionConfig("score", 1000)
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	// Halfway progress covers half the remaining headroom above the start.
	got := d.Level(500, 0)
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(500, 0) = %f, want 0.75", got)
	}
	if got := d.Level(1000, 0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Level(1000, 0) = %f, want 1.0", got)
	}
}

func TestDifficultySpeedScaling(t *testing.T) {
	d := NewDifficultyManager(progressionConfig("score", 1000))

	if got := d.Speed(2.0, 0, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Speed at level 0 = %f, want 2.0", got)
	}
	// Max difficulty applies the full multiplier: 2.0 * (1 + 0.5).
	if got := d.Speed(2.0, 1000, 0); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("Speed at level 1 = %f, want 3.0", got)
	}
}

func TestDifficultySpacingFloor(t *testing.T) {
	cfg := progressionConfig("score", 1000)
	cfg.Scaling.SpacingReduction = 100
	d := NewDifficultyManager(cfg)

	if got := d.Spacing(60, 0, 0); got != 60 {
		t.Errorf("Spacing at level 0 = %d, want 60", got)
	}
	// 60 - 100 would go negative; the floor keeps it playable.
	if got := d.Spacing(60, 1000, 0); got != 15 {
		t.Errorf("Spacing at level 1 = %d, want floor 15", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: false})

	d.SetInitialLevel(1.7)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Level after SetInitialLevel(1.7) = %f, want 1.0", got)
	}
	d.SetInitialLevel(-0.3)
	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("Level after SetInitialLevel(-0.3) = %f, want 0.0", got)
	}
}

func TestInitialLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyFixed, 0.0},
	}

	for _, tc := range tests {
		if got := InitialLevelForPreset(tc.preset); got != tc.want {
			t.Errorf("InitialLevelForPreset(%s) = %f, want %f", tc.preset, got, tc.want)
		}
	}
}
