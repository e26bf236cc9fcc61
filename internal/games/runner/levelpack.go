package runner

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// levelPackFile mirrors the on-disk YAML shape of a custom level pack.
type levelPackFile struct {
	Name   string          `yaml:"name"`
	Levels []levelPackSpec `yaml:"levels"`
}

// levelPackSpec is one level entry. Ratio fields use 1.0 as the baseline
// and are converted to permille internally.
type levelPackSpec struct {
	Name           string  `yaml:"name"`
	Kind           string  `yaml:"kind"`            // "normal" (default) or "boss"
	Boss           string  `yaml:"boss"`            // warden, howler, shade, tyrant
	Difficulty     float64 `yaml:"difficulty"`      // Spawn density, 1.0 = baseline
	SpeedScale     float64 `yaml:"speed_scale"`     // Scroll speed, 1.0 = base
	ObstaclePeriod int     `yaml:"obstacle_period"` // Cells between obstacles
	EnemyPeriod    int     `yaml:"enemy_period"`    // Cells between enemies
}

// LoadLevelPack reads and validates a level table from a YAML file.
// The returned table is safe to install with SetLevelTable.
func LoadLevelPack(path string) (*Table, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from an explicit CLI flag
	if err != nil {
		return nil, fmt.Errorf("read level pack: %w", err)
	}

	var file levelPackFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse level pack: %w", err)
	}

	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("level pack %q contains no levels", file.Name)
	}

	levels := make([]Level, 0, len(file.Levels))
	for i, spec := range file.Levels {
		lvl, err := buildLevel(spec)
		if err != nil {
			return nil, fmt.Errorf("level %d (%q): %w", i, spec.Name, err)
		}
		levels = append(levels, lvl)
	}
	return &Table{levels: levels}, nil
}

// buildLevel converts one YAML entry into a Level, applying defaults and
// rejecting values the simulation cannot run with.
func buildLevel(spec levelPackSpec) (Level, error) {
	lvl := Level{
		Name:           spec.Name,
		Kind:           LevelNormal,
		Difficulty:     permille(spec.Difficulty, 1000),
		SpeedScale:     permille(spec.SpeedScale, 1000),
		ObstaclePeriod: spec.ObstaclePeriod,
		EnemyPeriod:    spec.EnemyPeriod,
	}
	if lvl.Name == "" {
		return Level{}, fmt.Errorf("missing name")
	}
	if lvl.ObstaclePeriod <= 0 {
		lvl.ObstaclePeriod = 40
	}
	if lvl.EnemyPeriod <= 0 {
		lvl.EnemyPeriod = 90
	}
	if lvl.Difficulty <= 0 || lvl.SpeedScale <= 0 {
		return Level{}, fmt.Errorf("difficulty and speed_scale must be positive")
	}

	switch spec.Kind {
	case "", "normal":
		if spec.Boss != "" {
			return Level{}, fmt.Errorf("boss %q set on a normal level", spec.Boss)
		}
	case "boss":
		kind, ok := BossKindFromName(spec.Boss)
		if !ok || kind == BossNone {
			return Level{}, fmt.Errorf("unknown boss %q", spec.Boss)
		}
		lvl.Kind = LevelBoss
		lvl.Boss = kind
	default:
		return Level{}, fmt.Errorf("unknown kind %q", spec.Kind)
	}
	return lvl, nil
}

// permille converts a ratio to permille, substituting def for the zero
// value so omitted fields mean "baseline".
func permille(ratio float64, def int) int {
	if ratio == 0 {
		return def
	}
	return int(math.Round(ratio * 1000))
}
