package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Game phase constants
const (
	PhaseMenu          = "menu"          // Title card, waiting for the first jump
	PhasePlaying       = "playing"       // Simulation running
	PhaseLevelComplete = "levelcomplete" // Interlude countdown between levels
	PhaseGameOver      = "gameover"      // Out of lives or boss escaped
	PhaseVictory       = "victory"       // Final campaign level cleared
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Fixed level table, victory at the end
	ModeEndless                  // Table wraps forever, difficulty keeps rising
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the level index to begin the run at, set via CLI
var startLevel int

// levelTable stores a custom level table set via CLI; nil means builtin
var levelTable *Table

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the level index runs begin at. Callers validate the
// index against the active table before setting it.
func SetStartLevel(index int) {
	if index < 0 {
		index = 0
	}
	startLevel = index
}

// SetLevelTable installs a custom level table, or restores the builtin
// one when nil. Callers validate the table before installing it.
func SetLevelTable(t *Table) {
	levelTable = t
}

// ActiveTable returns the table new runs will use: the installed custom
// pack, or the builtin campaign.
func ActiveTable() *Table {
	if levelTable != nil {
		return levelTable
	}
	return BuiltinTable()
}

// Game implements the side-scrolling runner logic.
type Game struct {
	// Game mode
	mode GameMode

	// World objects
	runner      *Runner
	obstacles   []*Obstacle
	enemies     []*Enemy
	projectiles []*Projectile
	boss        *Boss
	spawner     *Spawner

	// Progress
	phase          string
	paused         bool
	score          int
	lives          int
	levelIndex     int
	endlessCycle   int // Number of times the table has wrapped (endless mode)
	tickCount      int
	interludeTicks int   // Countdown between levels
	distance       Fixed // Distance scrolled within the current level
	cameraX        Fixed // World x of the left viewport edge
	scrollSpeed    Fixed // Scroll applied on the current tick

	// Level set
	table *Table
	level Level

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager

	// Layout (computed from screen size)
	groundY        int // Y row of the ground line
	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// Events raised during the current tick
	events []core.Event
}

// New creates a new runner game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new runner game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "runner_endless"
	}
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Skyline Runner (Endless)"
	}
	return "Skyline Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	// Initialize difficulty manager (drives endless mode scaling)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Level table: custom pack if installed, builtin otherwise
	g.table = levelTable
	if g.table == nil {
		g.table = BuiltinTable()
	}

	// Calculate layout
	g.groundY = runtime.ScreenH - cfg.Runner.GroundOffset

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Initialize run state
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.endlessCycle = 0
	g.tickCount = 0
	g.interludeTicks = 0
	g.paused = false
	g.events = nil

	first := startLevel
	if first >= g.table.Count() {
		first = 0
	}
	if g.enterLevel(first) {
		g.phase = PhaseMenu
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.phase == PhaseGameOver || g.phase == PhaseVictory) {
		g.Reset(g.runtime)
		return g.result()
	}

	// Title card: the first jump starts the run and is consumed by it
	if g.phase == PhaseMenu {
		if in.Has(core.ActionJump) {
			g.phase = PhasePlaying
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}

	// Don't update if paused or in a terminal phase
	if g.paused || g.phase == PhaseGameOver || g.phase == PhaseVictory {
		return g.result()
	}

	// Interlude between levels
	if g.phase == PhaseLevelComplete {
		g.interludeTicks--
		if g.interludeTicks <= 0 {
			g.advanceLevel()
		}
		return g.result()
	}

	g.tickCount++

	g.stepRunnerPhysics(in)
	g.stepScroll()
	g.stepSpawns()
	g.stepEntities()
	if g.phase == PhasePlaying {
		g.resolveCollisions()
	}
	if g.phase == PhasePlaying {
		g.stepProgress()
	}

	return g.result()
}

// result packages the current state and any events raised this tick.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// stepRunnerPhysics runs one tick of runner movement. The invulnerability
// window counts down here, before anything this tick can consume it.
func (g *Game) stepRunnerPhysics(in core.InputFrame) {
	if g.runner.InvulnTicks > 0 {
		g.runner.InvulnTicks--
	}
	floor := ToFixed(g.groundY - g.runner.H)
	jumped := g.runner.Integrate(
		in.Has(core.ActionJump),
		Fixed(g.cfg.Physics.Gravity),
		Fixed(g.cfg.Physics.MaxFallSpeed),
		Fixed(g.cfg.Physics.JumpImpulse),
		floor,
	)
	if jumped {
		g.events = append(g.events, core.EventJump)
	}
}

// stepScroll advances the camera and pins the runner to its screen column.
func (g *Game) stepScroll() {
	g.scrollSpeed = g.currentScroll()
	g.cameraX = g.cameraX.Add(g.scrollSpeed)
	g.distance = g.distance.Add(g.scrollSpeed)
	g.runner.X = g.cameraX.Add(ToFixed(g.cfg.Runner.X))
}

// currentScroll returns this tick's scroll speed: the base speed scaled by
// the level, boosted by dynamic difficulty in endless mode, and capped.
func (g *Game) currentScroll() Fixed {
	speed := Fixed(g.cfg.World.BaseScrollSpeed).Mul(g.level.SpeedScale).Div(1000)
	if g.mode == ModeEndless {
		mult := int(math.Round(g.difficulty.Speed(1.0, g.score, g.tickCount) * 1000))
		speed = speed.Mul(mult).Div(1000)
	}
	limit := Fixed(g.cfg.World.MaxScrollSpeed)
	if speed > limit {
		speed = limit
	}
	return speed
}

// stepEntities advances and culls enemies, the boss, and projectiles.
// Boss attacks fire here, before collisions are resolved.
func (g *Game) stepEntities() {
	left := g.cameraX.Sub(ToFixed(g.cfg.World.DespawnMargin))
	right := g.cameraX.Add(ToFixed(g.runtime.ScreenW + g.cfg.World.DespawnMargin))

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		e.Advance(g.tickCount)
		if e.X.Add(ToFixed(e.W)) < left {
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept

	keptObs := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.X.Add(ToFixed(o.W)) < left {
			continue
		}
		keptObs = append(keptObs, o)
	}
	g.obstacles = keptObs

	g.stepBoss()
	if g.phase != PhasePlaying {
		return
	}

	keptPr := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Advance(g.tickCount)
		if p.X.Add(ToFixed(p.W)) < left || p.X > right {
			continue
		}
		keptPr = append(keptPr, p)
	}
	g.projectiles = keptPr
}

// resolveCollisions checks the runner against every entity. The boss is
// checked first so a stomp wins over anything else touching the runner
// on the same tick.
func (g *Game) resolveCollisions() {
	rbox := g.runner.Bounds()

	if b := g.boss; b != nil && rbox.Overlaps(b.Bounds()) {
		if g.runner.Descending() && g.runner.InvulnTicks == 0 {
			g.stompBoss(b)
		} else if b.LethalTo(g.runner) {
			g.damageRunner()
		}
		if g.phase != PhasePlaying {
			return
		}
	}

	for _, o := range g.obstacles {
		if !rbox.Overlaps(o.Bounds()) {
			continue
		}
		if o.Kind.Lethal() {
			g.damageRunner()
			if g.phase != PhasePlaying {
				return
			}
		} else if !o.Touched {
			o.Touched = true
			g.score += g.cfg.Gameplay.TouchBonus
			g.events = append(g.events, core.EventPickup)
		}
	}

	// Enemies and projectiles are consumed by a hit that lands. During the
	// invulnerability window they pass through and survive.
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if rbox.Overlaps(e.Bounds()) && g.damageRunner() {
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept

	keptPr := g.projectiles[:0]
	for _, p := range g.projectiles {
		if rbox.Overlaps(p.Bounds()) && g.damageRunner() {
			continue
		}
		keptPr = append(keptPr, p)
	}
	g.projectiles = keptPr
}

// damageRunner applies one hit if the runner is vulnerable. Reports
// whether the hit landed.
func (g *Game) damageRunner() bool {
	if g.runner.InvulnTicks > 0 {
		return false
	}
	g.lives--
	g.runner.InvulnTicks = g.cfg.Gameplay.InvulnerabilityTicks
	g.events = append(g.events, core.EventDamage)
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.events = append(g.events, core.EventGameOver)
	}
	return true
}

// stepProgress awards survival score and checks level completion.
func (g *Game) stepProgress() {
	g.score += g.cfg.Gameplay.TickScore
	if g.level.Kind == LevelNormal && g.distance > ToFixed(g.cfg.World.LevelDistance) {
		g.completeLevel()
	}
}

// completeLevel awards the clear bonus and moves to the interlude, or
// straight to victory on the last campaign level.
func (g *Game) completeLevel() {
	g.score += g.cfg.Gameplay.LevelBonus
	g.events = append(g.events, core.EventLevelComplete)
	if g.mode == ModeCampaign && g.levelIndex == g.table.Count()-1 {
		g.phase = PhaseVictory
		g.events = append(g.events, core.EventVictory)
		return
	}
	g.phase = PhaseLevelComplete
	g.interludeTicks = g.cfg.Gameplay.InterludeTicks
}

// advanceLevel moves to the next level after the interlude, wrapping the
// table in endless mode.
func (g *Game) advanceLevel() {
	next := g.levelIndex + 1
	if next >= g.table.Count() {
		next = 0
		g.endlessCycle++
	}
	if g.enterLevel(next) {
		g.phase = PhasePlaying
	}
}

// enterLevel resets the world for the given level index. A bad index ends
// the run; tables installed via the CLI are validated up front, so that
// path only guards internal mistakes.
func (g *Game) enterLevel(index int) bool {
	lvl, err := g.table.Get(index)
	if err != nil {
		g.phase = PhaseGameOver
		return false
	}
	g.levelIndex = index
	g.level = lvl

	g.obstacles = nil
	g.enemies = nil
	g.projectiles = nil
	g.boss = nil
	g.distance = 0
	g.cameraX = 0

	floor := ToFixed(g.groundY - g.cfg.Runner.Height)
	g.runner = &Runner{
		X:        ToFixed(g.cfg.Runner.X),
		Y:        floor,
		W:        g.cfg.Runner.Width,
		H:        g.cfg.Runner.Height,
		Grounded: true,
	}

	// Each level draws from its own deterministic stream so replays with
	// the same seed stay exact across level transitions.
	g.spawner = NewSpawner(g.runtime.Seed+int64(g.effectiveLevelIndex()+1)*7919, lvl)
	g.scrollSpeed = g.currentScroll()

	if lvl.Kind == LevelBoss {
		g.spawnBoss(lvl.Boss)
	}
	return true
}

// effectiveLevelIndex returns the level index including endless wraps, so
// enemy speed keeps climbing across cycles.
func (g *Game) effectiveLevelIndex() int {
	return g.levelIndex + g.endlessCycle*g.table.Count()
}

// effectiveDifficulty returns the level's spawn difficulty in permille.
func (g *Game) effectiveDifficulty() int {
	return g.level.Difficulty
}

// obstaclePeriod returns the obstacle spawn period in cells, shrunk by
// dynamic difficulty in endless mode.
func (g *Game) obstaclePeriod() int {
	if g.mode == ModeEndless {
		return g.difficulty.Spacing(g.level.ObstaclePeriod, g.score, g.tickCount)
	}
	return g.level.ObstaclePeriod
}

// enemyPeriod returns the enemy spawn period in cells, shrunk by dynamic
// difficulty in endless mode.
func (g *Game) enemyPeriod() int {
	if g.mode == ModeEndless {
		return g.difficulty.Spacing(g.level.EnemyPeriod, g.score, g.tickCount)
	}
	return g.level.EnemyPeriod
}

// State returns the current game state. Level counts endless wraps, so
// a second-cycle run reports indexes past the table size.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.effectiveLevelIndex(),
		Ticks:    g.tickCount,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseVictory,
		Victory:  g.phase == PhaseVictory,
		Paused:   g.paused,
	}
}

// Lives returns the remaining lives, for HUD display.
func (g *Game) Lives() int {
	return g.lives
}

// Phase returns the current phase string.
func (g *Game) Phase() string {
	return g.phase
}

// LevelName returns the active level's display name.
func (g *Game) LevelName() string {
	return g.level.Name
}

// Register the games with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
	registry.Register("runner_endless", func() registry.Game {
		return NewEndless()
	})
}
