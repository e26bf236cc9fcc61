// Package config provides YAML-based game configuration loading and
// difficulty management for the runner platform.
package config

// RunnerConfig contains all configuration for the runner game.
// World-unit fields are fixed-point integers scaled by 1000, matching the
// simulation's coordinate space; plain cell or tick counts say so.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	World      RunnerWorld      `yaml:"world"`
	Runner     RunnerPlayer     `yaml:"runner"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Boss       RunnerBoss       `yaml:"boss"`
	Gameplay   RunnerGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines vertical motion parameters.
type RunnerPhysics struct {
	Gravity      int `yaml:"gravity"`        // Added to fall speed each airborne tick
	JumpImpulse  int `yaml:"jump_impulse"`   // Upward speed applied by a jump
	MaxFallSpeed int `yaml:"max_fall_speed"` // Terminal fall speed
}

// RunnerWorld defines scrolling and level geometry.
type RunnerWorld struct {
	BaseScrollSpeed int `yaml:"base_scroll_speed"` // Scroll per tick before level scaling
	MaxScrollSpeed  int `yaml:"max_scroll_speed"`  // Hard cap on scroll per tick
	LevelDistance   int `yaml:"level_distance"`    // Cells to scroll to clear a normal level
	DespawnMargin   int `yaml:"despawn_margin"`    // Cells past the viewport before culling
}

// RunnerPlayer defines the player body.
type RunnerPlayer struct {
	X            int `yaml:"x"`             // Screen column the runner is pinned to
	Width        int `yaml:"width"`         // Cells
	Height       int `yaml:"height"`        // Cells
	GroundOffset int `yaml:"ground_offset"` // Rows between ground line and screen bottom
}

// RunnerSpawn defines enemy spawning parameters.
type RunnerSpawn struct {
	EnemyBaseSpeed int `yaml:"enemy_base_speed"` // Enemy speed before kind and level scaling
}

// RunnerBoss defines boss fight parameters.
type RunnerBoss struct {
	StompDamage     int `yaml:"stomp_damage"`     // Health removed per stomp
	StompBounce     int `yaml:"stomp_bounce"`     // Upward speed granted by a stomp
	StompKnockback  int `yaml:"stomp_knockback"`  // Cells the boss is shoved forward
	AttackCooldown  int `yaml:"attack_cooldown"`  // Ticks between shots, phase 1
	Phase2Cooldown  int `yaml:"phase2_cooldown"`  // Ticks between shots, phase 2
	ProjectileSpeed int `yaml:"projectile_speed"` // Shot speed along its aim line
	SpreadArc       int `yaml:"spread_arc"`       // Fan half-angle in milliradians
}

// RunnerGameplay defines lives, scoring, and pacing.
type RunnerGameplay struct {
	Lives                int `yaml:"lives"`
	InvulnerabilityTicks int `yaml:"invulnerability_ticks"` // Immunity window after a hit
	TickScore            int `yaml:"tick_score"`            // Score per survived tick
	LevelBonus           int `yaml:"level_bonus"`           // Score per cleared level
	BossBonus            int `yaml:"boss_bonus"`            // Score per defeated boss
	TouchBonus           int `yaml:"touch_bonus"`           // Score per neutral obstacle touched
	InterludeTicks       int `yaml:"interlude_ticks"`       // Pause between levels
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn period reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
