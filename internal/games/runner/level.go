package runner

import (
	"errors"
	"fmt"
)

// ErrLevelIndex reports a level lookup outside the table.
var ErrLevelIndex = errors.New("runner: level index out of range")

// LevelKind distinguishes gauntlet levels from boss encounters.
type LevelKind int

const (
	LevelNormal LevelKind = iota // Distance-based completion
	LevelBoss                    // Completion by boss defeat
)

// String returns the level kind name.
func (k LevelKind) String() string {
	if k == LevelBoss {
		return "boss"
	}
	return "normal"
}

// Level is one immutable entry of the level table.
//
// Difficulty and SpeedScale are permille values (1000 = x1.0) so spawn math
// stays in integers. ObstaclePeriod and EnemyPeriod are distances in cells
// between spawns before difficulty scaling; they are unused on boss levels.
type Level struct {
	Name           string
	Kind           LevelKind
	Difficulty     int
	SpeedScale     int
	ObstaclePeriod int
	EnemyPeriod    int
	Boss           BossKind
}

// Table is an immutable ordered set of levels. All access goes through Get,
// which bounds-checks the index.
type Table struct {
	levels []Level
}

// Count returns the number of levels in the table.
func (t *Table) Count() int {
	return len(t.levels)
}

// Get returns the level at the given index, or ErrLevelIndex when the index
// falls outside the table.
func (t *Table) Get(index int) (Level, error) {
	if index < 0 || index >= len(t.levels) {
		return Level{}, fmt.Errorf("%w: %d (table has %d levels)", ErrLevelIndex, index, len(t.levels))
	}
	return t.levels[index], nil
}

// Names returns the level names in order, for selectors and listings.
func (t *Table) Names() []string {
	names := make([]string, len(t.levels))
	for i, lvl := range t.levels {
		names[i] = lvl.Name
	}
	return names
}

// builtinLevels is the campaign: sixteen gauntlets and four boss keeps.
// Difficulty and scroll speed rise monotonically; spawn periods tighten.
var builtinLevels = []Level{
	{Name: "Meadow Run", Kind: LevelNormal, Difficulty: 1000, SpeedScale: 1000, ObstaclePeriod: 48, EnemyPeriod: 110},
	{Name: "Dry Gulch", Kind: LevelNormal, Difficulty: 1050, SpeedScale: 1050, ObstaclePeriod: 46, EnemyPeriod: 106},
	{Name: "Crate Yard", Kind: LevelNormal, Difficulty: 1100, SpeedScale: 1100, ObstaclePeriod: 44, EnemyPeriod: 102},
	{Name: "Spike Alley", Kind: LevelNormal, Difficulty: 1150, SpeedScale: 1150, ObstaclePeriod: 42, EnemyPeriod: 98},
	{Name: "Warden's Gate", Kind: LevelBoss, Difficulty: 1200, SpeedScale: 1200, Boss: BossWarden},
	{Name: "Long Flats", Kind: LevelNormal, Difficulty: 1250, SpeedScale: 1250, ObstaclePeriod: 40, EnemyPeriod: 94},
	{Name: "Rockfall Road", Kind: LevelNormal, Difficulty: 1300, SpeedScale: 1300, ObstaclePeriod: 38, EnemyPeriod: 90},
	{Name: "Pylon Field", Kind: LevelNormal, Difficulty: 1350, SpeedScale: 1350, ObstaclePeriod: 36, EnemyPeriod: 86},
	{Name: "Night Sprint", Kind: LevelNormal, Difficulty: 1400, SpeedScale: 1400, ObstaclePeriod: 34, EnemyPeriod: 82},
	{Name: "Howler's Roost", Kind: LevelBoss, Difficulty: 1450, SpeedScale: 1450, Boss: BossHowler},
	{Name: "Scrap Line", Kind: LevelNormal, Difficulty: 1500, SpeedScale: 1500, ObstaclePeriod: 32, EnemyPeriod: 78},
	{Name: "Twin Hazards", Kind: LevelNormal, Difficulty: 1550, SpeedScale: 1550, ObstaclePeriod: 31, EnemyPeriod: 74},
	{Name: "Gauntlet North", Kind: LevelNormal, Difficulty: 1600, SpeedScale: 1600, ObstaclePeriod: 30, EnemyPeriod: 70},
	{Name: "Swarm Stretch", Kind: LevelNormal, Difficulty: 1650, SpeedScale: 1650, ObstaclePeriod: 29, EnemyPeriod: 66},
	{Name: "Shade Hollow", Kind: LevelBoss, Difficulty: 1700, SpeedScale: 1700, Boss: BossShade},
	{Name: "Redline Mile", Kind: LevelNormal, Difficulty: 1750, SpeedScale: 1750, ObstaclePeriod: 28, EnemyPeriod: 64},
	{Name: "Broken Causeway", Kind: LevelNormal, Difficulty: 1800, SpeedScale: 1800, ObstaclePeriod: 27, EnemyPeriod: 62},
	{Name: "Last Flats", Kind: LevelNormal, Difficulty: 1850, SpeedScale: 1850, ObstaclePeriod: 26, EnemyPeriod: 60},
	{Name: "Final Approach", Kind: LevelNormal, Difficulty: 1900, SpeedScale: 1900, ObstaclePeriod: 26, EnemyPeriod: 60},
	{Name: "Tyrant's Keep", Kind: LevelBoss, Difficulty: 2000, SpeedScale: 2000, Boss: BossTyrant},
}

// BuiltinTable returns the built-in campaign table.
func BuiltinTable() *Table {
	return &Table{levels: builtinLevels}
}
