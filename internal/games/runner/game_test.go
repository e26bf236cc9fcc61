package runner

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// startRun resets the game and consumes the title card so the next Step
// runs simulation.
func startRun(g *Game, seed int64) {
	g.Reset(testRuntime(seed))
	start := core.NewInputFrame()
	start.Set(core.ActionJump)
	g.Step(start)
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical runs
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%37 == 0 || i%53 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := New()
		startRun(g, 12345)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	startRun(g, 42)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in = jump
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.phase != PhaseMenu {
		t.Errorf("Reset should return to the menu phase, got %s", g.phase)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.levelIndex != 0 {
		t.Errorf("Reset should reset levelIndex, got %d", g.levelIndex)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("Reset should restore lives to %d, got %d", g.cfg.Gameplay.Lives, g.lives)
	}
}

func TestMenuStartConsumesJump(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.phase != PhaseMenu {
		t.Fatalf("expected menu phase after reset, got %s", g.phase)
	}

	start := core.NewInputFrame()
	start.Set(core.ActionJump)
	g.Step(start)

	if g.phase != PhasePlaying {
		t.Fatalf("jump should start the run, got phase %s", g.phase)
	}
	// The starting press must not also launch a jump
	if !g.runner.Grounded || g.runner.VY != 0 {
		t.Errorf("starting press leaked into physics: grounded=%v vy=%d", g.runner.Grounded, g.runner.VY)
	}
	if g.tickCount != 0 {
		t.Errorf("menu tick should not advance the simulation, got tickCount=%d", g.tickCount)
	}
}

func TestJumpImpulseAndGravity(t *testing.T) {
	g := New()
	startRun(g, 1)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	impulse := Fixed(g.cfg.Physics.JumpImpulse)
	if g.runner.VY != -impulse {
		t.Fatalf("jump tick: VY = %d, want %d", g.runner.VY, -impulse)
	}
	if g.runner.Grounded {
		t.Fatal("runner should be airborne after jumping")
	}

	g.Step(core.NewInputFrame())
	want := -impulse.Add(Fixed(g.cfg.Physics.Gravity))
	if g.runner.VY != want {
		t.Errorf("tick after jump: VY = %d, want %d", g.runner.VY, want)
	}

	// Jump requests while airborne are ignored
	g.Step(jump)
	want = want.Add(Fixed(g.cfg.Physics.Gravity))
	if g.runner.VY != want {
		t.Errorf("airborne jump should be ignored: VY = %d, want %d", g.runner.VY, want)
	}
}

func TestLandingRestoresGround(t *testing.T) {
	g := New()
	startRun(g, 1)

	floor := ToFixed(g.groundY - g.runner.H)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	landed := false
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
		if g.runner.Grounded {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("runner never landed")
	}
	if g.runner.Y != floor {
		t.Errorf("landing should clamp to the floor: Y = %d, want %d", g.runner.Y, floor)
	}
	if g.runner.VY != 0 {
		t.Errorf("landing should zero VY, got %d", g.runner.VY)
	}
}

func TestCeilingClamp(t *testing.T) {
	r := &Runner{Y: ToFixed(1), VY: -ToFixed(5), W: 3, H: 3}
	r.Integrate(false, 300, 4000, 2500, ToFixed(19))

	if r.Y != 0 {
		t.Errorf("ceiling should clamp Y to 0, got %d", r.Y)
	}
	if r.VY != 0 {
		t.Errorf("ceiling should zero VY, got %d", r.VY)
	}
}

func TestMaxFallSpeed(t *testing.T) {
	r := &Runner{Y: 0, VY: 0, W: 3, H: 3}
	maxFall := Fixed(4000)
	for i := 0; i < 50; i++ {
		r.Integrate(false, 300, maxFall, 2500, ToFixed(1000))
	}
	if r.VY != maxFall {
		t.Errorf("fall speed should cap at %d, got %d", maxFall, r.VY)
	}
}

func TestBoxEdgeTouchIsNotOverlap(t *testing.T) {
	a := NewBox(0, 0, 2, 2)
	b := NewBox(ToFixed(2), 0, 2, 2)
	if a.Overlaps(b) {
		t.Error("boxes sharing an edge should not overlap")
	}
	c := NewBox(ToFixed(2)-1, 0, 2, 2)
	if !a.Overlaps(c) {
		t.Error("boxes intruding by one unit should overlap")
	}
}

func TestObstacleSpawnsAtViewportEdge(t *testing.T) {
	g := New()
	startRun(g, 7)

	var spawnedAt Fixed
	found := false
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
		if len(g.obstacles) > 0 {
			spawnedAt = g.obstacles[0].X
			found = true
			break
		}
	}

	if !found {
		t.Fatal("no obstacle spawned within 200 ticks")
	}
	wantX := g.cameraX.Add(ToFixed(g.runtime.ScreenW))
	if spawnedAt != wantX {
		t.Errorf("obstacle spawned at %d, want viewport edge %d", spawnedAt, wantX)
	}
	if len(g.obstacles) != 1 {
		t.Errorf("expected a single obstacle on the spawn tick, got %d", len(g.obstacles))
	}

	// Static in world space: only the camera carries it across the screen
	camBefore := g.cameraX
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.obstacles[0].X != spawnedAt {
		t.Errorf("obstacle moved in world space: %d -> %d", spawnedAt, g.obstacles[0].X)
	}
	if g.cameraX == camBefore {
		t.Error("camera should advance while playing")
	}
}

func TestNeutralObstacleTouchBonusOnce(t *testing.T) {
	g := New()
	startRun(g, 1)

	o := &Obstacle{Kind: ObstacleCrate, X: g.runner.X, Y: g.runner.Y, W: 2, H: 2}
	g.obstacles = append(g.obstacles, o)

	before := g.score
	g.resolveCollisions()

	if g.score != before+g.cfg.Gameplay.TouchBonus {
		t.Errorf("touch bonus not granted: score %d, want %d", g.score, before+g.cfg.Gameplay.TouchBonus)
	}
	if !o.Touched {
		t.Error("obstacle should be marked touched")
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("neutral touch should not cost a life, lives=%d", g.lives)
	}

	// Second contact is free but grants nothing
	before = g.score
	g.resolveCollisions()
	if g.score != before {
		t.Errorf("touch bonus granted twice: score %d, want %d", g.score, before)
	}
}

func TestLethalObstaclePersistsAfterHit(t *testing.T) {
	g := New()
	startRun(g, 1)

	g.obstacles = append(g.obstacles, &Obstacle{Kind: ObstacleSpikes, X: g.runner.X, Y: g.runner.Y, W: 3, H: 1})

	g.resolveCollisions()

	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("lethal obstacle should cost a life, lives=%d", g.lives)
	}
	if g.runner.InvulnTicks != g.cfg.Gameplay.InvulnerabilityTicks {
		t.Errorf("hit should start the immunity window, got %d", g.runner.InvulnTicks)
	}
	if len(g.obstacles) != 1 {
		t.Errorf("obstacles persist after a hit, got %d", len(g.obstacles))
	}
	if !containsEvent(g.events, core.EventDamage) {
		t.Error("damage event not raised")
	}
}

func TestEnemyHitConsumedAndImmunityHolds(t *testing.T) {
	g := New()
	startRun(g, 1)

	g.enemies = append(g.enemies, &Enemy{Kind: EnemyWalker, X: g.runner.X, Y: g.runner.Y, W: 2, H: 2, Dir: -1})
	g.resolveCollisions()

	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Fatalf("enemy contact should cost a life, lives=%d", g.lives)
	}
	if len(g.enemies) != 0 {
		t.Errorf("enemy should be consumed by the hit, got %d", len(g.enemies))
	}

	// While immune, a second enemy passes through and survives
	g.enemies = append(g.enemies, &Enemy{Kind: EnemyStalker, X: g.runner.X, Y: g.runner.Y, W: 2, H: 2, Dir: -1})
	g.resolveCollisions()

	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("immune contact should not cost a life, lives=%d", g.lives)
	}
	if len(g.enemies) != 1 {
		t.Errorf("immune contact should not consume the enemy, got %d", len(g.enemies))
	}
}

func TestLastLifeEndsRunImmediately(t *testing.T) {
	g := New()
	startRun(g, 1)

	g.lives = 1
	g.projectiles = append(g.projectiles, &Projectile{X: g.runner.X, Y: g.runner.Y, W: 1, H: 1})
	g.resolveCollisions()

	if g.phase != PhaseGameOver {
		t.Errorf("losing the last life should end the run, phase=%s", g.phase)
	}
	if g.lives != 0 {
		t.Errorf("lives should clamp at 0, got %d", g.lives)
	}
	if !containsEvent(g.events, core.EventGameOver) {
		t.Error("game over event not raised")
	}
}

func TestBossLevelSpawnsSingleBoss(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	if g.level.Kind != LevelBoss {
		t.Fatalf("level 4 should be a boss level, got %s", g.level.Kind)
	}
	if g.boss == nil {
		t.Fatal("boss level should spawn a boss on entry")
	}
	if g.boss.Kind != BossWarden {
		t.Errorf("level 4 boss = %s, want warden", g.boss.Kind)
	}
	if g.boss.Health != g.boss.MaxHealth {
		t.Errorf("boss should spawn at full health: %d/%d", g.boss.Health, g.boss.MaxHealth)
	}
	if len(g.obstacles) != 0 || len(g.enemies) != 0 {
		t.Error("boss level entry should start with an empty field")
	}

	// Boss levels spawn no obstacles or enemies
	g.phase = PhasePlaying
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.obstacles) != 0 || len(g.enemies) != 0 {
		t.Errorf("boss level spawned %d obstacles and %d enemies", len(g.obstacles), len(g.enemies))
	}
}

// placeBossOnRunner moves the boss so its box overlaps the runner's.
func placeBossOnRunner(g *Game) *Boss {
	b := g.boss
	b.X = g.runner.X
	b.Y = g.runner.Y
	return b
}

func TestStompDamagesAndBounces(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying

	b := placeBossOnRunner(g)
	g.runner.VY = 500 // Descending
	before := b.Health

	g.resolveCollisions()

	if b.Health != before-g.cfg.Boss.StompDamage {
		t.Errorf("stomp damage: health %d, want %d", b.Health, before-g.cfg.Boss.StompDamage)
	}
	if g.runner.VY != -Fixed(g.cfg.Boss.StompBounce) {
		t.Errorf("stomp bounce: VY %d, want %d", g.runner.VY, -Fixed(g.cfg.Boss.StompBounce))
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("stomp should not cost a life, lives=%d", g.lives)
	}
	if !containsEvent(g.events, core.EventStomp) {
		t.Error("stomp event not raised")
	}
}

func TestFiveStompsDefeatWarden(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying
	g.cfg.Boss.StompDamage = 10

	b := placeBossOnRunner(g)
	if b.Health != 50 {
		t.Fatalf("warden health %d, want 50", b.Health)
	}

	for i := 1; i <= 5; i++ {
		// Each stomp bounces the runner and shoves the boss; line the
		// boxes back up so every hit is a fresh valid stomp
		g.runner.X = b.X
		g.runner.Y = b.Y
		g.runner.VY = 500

		g.resolveCollisions()

		if want := 50 - 10*i; b.Health != want {
			t.Fatalf("after stomp %d: health %d, want %d", i, b.Health, want)
		}
	}

	if g.boss != nil {
		t.Error("boss should be removed after the fifth stomp")
	}
	if g.phase != PhaseLevelComplete {
		t.Errorf("fifth stomp should complete the level, phase=%s", g.phase)
	}
}

func TestBossSideContactIsLethal(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying

	placeBossOnRunner(g)
	g.runner.VY = 0 // Not descending: contact, not a stomp

	g.resolveCollisions()

	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("side contact should cost a life, lives=%d", g.lives)
	}
	if g.boss == nil || g.boss.Health != g.boss.MaxHealth {
		t.Error("side contact should not damage the boss")
	}
}

func TestBossPhaseTwoAtHalfHealth(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying

	b := placeBossOnRunner(g)
	b.Health = b.MaxHealth/2 + 5 // One stomp drops it to half or below
	g.runner.VY = 500

	g.resolveCollisions()

	if b.Phase != 2 {
		t.Errorf("boss should enter phase 2 at half health, phase=%d health=%d/%d", b.Phase, b.Health, b.MaxHealth)
	}
}

func TestBossDefeatCompletesLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying

	b := placeBossOnRunner(g)
	b.Health = g.cfg.Boss.StompDamage // One stomp kills
	g.runner.VY = 500
	before := g.score

	g.resolveCollisions()

	if g.boss != nil {
		t.Error("defeated boss should be removed immediately")
	}
	wantScore := before + g.cfg.Gameplay.BossBonus + g.cfg.Gameplay.LevelBonus
	if g.score != wantScore {
		t.Errorf("defeat should grant boss and level bonuses: score %d, want %d", g.score, wantScore)
	}
	if g.phase != PhaseLevelComplete {
		t.Errorf("boss defeat should complete the level, phase=%s", g.phase)
	}
	if !containsEvent(g.events, core.EventBossDefeated) {
		t.Error("boss defeated event not raised")
	}
}

func TestFinalBossDefeatWinsCampaign(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	last := g.table.Count() - 1
	if !g.enterLevel(last) {
		t.Fatalf("enterLevel(%d) failed", last)
	}
	g.phase = PhasePlaying

	b := placeBossOnRunner(g)
	b.Health = g.cfg.Boss.StompDamage
	g.runner.VY = 500

	g.resolveCollisions()

	if g.phase != PhaseVictory {
		t.Errorf("final boss defeat should win the campaign, phase=%s", g.phase)
	}
	if !containsEvent(g.events, core.EventVictory) {
		t.Error("victory event not raised")
	}
}

func TestBossEscapeEndsRun(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying

	// Drop the boss far behind the camera; the next boss step sees it
	// leave past the trailing edge.
	g.boss.AnchorX = g.cameraX.Sub(ToFixed(30))

	g.stepBoss()

	if g.phase != PhaseGameOver {
		t.Errorf("boss escape should end the run, phase=%s", g.phase)
	}
	if !containsEvent(g.events, core.EventGameOver) {
		t.Error("game over event not raised on escape")
	}
}

func TestBossShotAimsAtRunner(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying

	b := g.boss
	b.X = g.runner.X.Add(ToFixed(20))
	b.Y = g.runner.Y.Sub(ToFixed(4))

	g.fireBossShot(b)

	if len(g.projectiles) != 1 {
		t.Fatalf("phase 1 shot should fire one projectile, got %d", len(g.projectiles))
	}
	p := g.projectiles[0]
	if p.VX >= 0 {
		t.Errorf("shot should travel toward the runner on the left, VX=%d", p.VX)
	}
	speed := math.Hypot(float64(p.VX), float64(p.VY))
	want := float64(g.cfg.Boss.ProjectileSpeed)
	if math.Abs(speed-want) > 2 {
		t.Errorf("shot speed %f, want about %f", speed, want)
	}
	if !containsEvent(g.events, core.EventShot) {
		t.Error("shot event not raised")
	}
}

func TestBossSpreadFiresThreeInPhaseTwo(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(19) { // Tyrant has spread shots
		t.Fatal("enterLevel(19) failed")
	}
	g.phase = PhasePlaying

	b := g.boss
	b.X = g.runner.X.Add(ToFixed(20))
	b.Phase = 2

	g.fireBossShot(b)

	if len(g.projectiles) != 3 {
		t.Errorf("phase 2 spread should fire three projectiles, got %d", len(g.projectiles))
	}
}

func TestZeroLengthAimSkipsShot(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if !g.enterLevel(4) {
		t.Fatal("enterLevel(4) failed")
	}
	g.phase = PhasePlaying

	// Align the boss center exactly with the runner center
	b := g.boss
	b.X = g.runner.X.Add(ToFixed(g.runner.W).Div(2)).Sub(ToFixed(b.W).Div(2))
	b.Y = g.runner.Y.Add(ToFixed(g.runner.H).Div(2)).Sub(ToFixed(b.H).Div(2))

	g.fireBossShot(b)

	if len(g.projectiles) != 0 {
		t.Errorf("zero-length aim should skip the shot, got %d projectiles", len(g.projectiles))
	}
}

func TestLevelCompleteInterludeAdvances(t *testing.T) {
	g := New()
	startRun(g, 1)

	g.distance = ToFixed(g.cfg.World.LevelDistance + 1)
	before := g.score
	g.stepProgress()

	if g.phase != PhaseLevelComplete {
		t.Fatalf("crossing the level distance should complete it, phase=%s", g.phase)
	}
	if g.score != before+g.cfg.Gameplay.TickScore+g.cfg.Gameplay.LevelBonus {
		t.Errorf("level bonus not granted, score=%d", g.score)
	}
	if g.interludeTicks != g.cfg.Gameplay.InterludeTicks {
		t.Fatalf("interlude countdown not armed, got %d", g.interludeTicks)
	}

	// The countdown runs without advancing the simulation clock
	tickBefore := g.tickCount
	for i := 0; i < g.cfg.Gameplay.InterludeTicks; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.tickCount != tickBefore {
		t.Errorf("interlude should not advance tickCount, got %d", g.tickCount)
	}
	if g.phase != PhasePlaying {
		t.Errorf("interlude should end in the playing phase, got %s", g.phase)
	}
	if g.levelIndex != 1 {
		t.Errorf("interlude should advance to level 1, got %d", g.levelIndex)
	}
	if g.distance != 0 || g.cameraX != 0 {
		t.Errorf("level entry should rewind the scroll, distance=%d cameraX=%d", g.distance, g.cameraX)
	}
}

func TestEndlessWrapsTable(t *testing.T) {
	g := NewEndless()
	g.Reset(testRuntime(1))
	last := g.table.Count() - 1
	if !g.enterLevel(last) {
		t.Fatalf("enterLevel(%d) failed", last)
	}
	g.phase = PhasePlaying

	g.completeLevel()
	if g.phase != PhaseLevelComplete {
		t.Fatalf("endless mode has no victory, phase=%s", g.phase)
	}

	g.advanceLevel()
	if g.levelIndex != 0 {
		t.Errorf("endless should wrap to level 0, got %d", g.levelIndex)
	}
	if g.endlessCycle != 1 {
		t.Errorf("wrap should count a cycle, got %d", g.endlessCycle)
	}
}

func TestCampaignVictoryOnLastNormalLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// A one-normal-level table makes distance completion the campaign end
	g.table = &Table{levels: []Level{{
		Name: "Only", Kind: LevelNormal, Difficulty: 1000, SpeedScale: 1000,
		ObstaclePeriod: 48, EnemyPeriod: 110,
	}}}
	if !g.enterLevel(0) {
		t.Fatal("enterLevel(0) failed")
	}
	g.phase = PhasePlaying

	g.distance = ToFixed(g.cfg.World.LevelDistance + 1)
	g.stepProgress()

	if g.phase != PhaseVictory {
		t.Errorf("last level completion should win the campaign, phase=%s", g.phase)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	startRun(g, 1)
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("pause action should pause the game")
	}

	tick := g.tickCount
	camera := g.cameraX
	g.Step(core.NewInputFrame())
	if g.tickCount != tick || g.cameraX != camera {
		t.Error("paused game should not advance")
	}

	// The resume tick itself runs the simulation again
	g.Step(pause)
	if g.paused {
		t.Fatal("second pause action should resume")
	}
	if g.tickCount != tick+1 {
		t.Errorf("resumed game should advance, tickCount=%d want %d", g.tickCount, tick+1)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	startRun(g, 1)

	g.phase = PhaseGameOver
	g.score = 500

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.phase != PhaseMenu {
		t.Errorf("restart should return to the menu, phase=%s", g.phase)
	}
	if g.score != 0 {
		t.Errorf("restart should clear the score, got %d", g.score)
	}
}

func TestStepReportsJumpEvent(t *testing.T) {
	g := New()
	startRun(g, 1)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	res := g.Step(jump)

	if !containsEvent(res.Events, core.EventJump) {
		t.Error("jump event missing from step result")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := New()
	startRun(g, 99)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	for i := 0; i < 150; i++ {
		in := core.NewInputFrame()
		if i%41 == 0 {
			in = jump
		}
		g.Step(in)
	}

	snap := g.Snapshot()
	want := snap.Hash()

	// Diverge, then restore
	for i := 0; i < 50; i++ {
		g.Step(jump)
	}
	g.ApplySnapshot(snap)

	restored := g.Snapshot()
	if got := restored.Hash(); got != want {
		t.Errorf("snapshot round trip drifted: got %d, want %d", got, want)
	}
}

func TestLevelTableBounds(t *testing.T) {
	table := BuiltinTable()

	if table.Count() != 20 {
		t.Fatalf("builtin table has %d levels, want 20", table.Count())
	}

	for _, idx := range []int{-1, table.Count()} {
		if _, err := table.Get(idx); !errors.Is(err, ErrLevelIndex) {
			t.Errorf("Get(%d) error = %v, want ErrLevelIndex", idx, err)
		}
	}

	bossAt := map[int]BossKind{4: BossWarden, 9: BossHowler, 14: BossShade, 19: BossTyrant}
	for i := 0; i < table.Count(); i++ {
		lvl, err := table.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if want, ok := bossAt[i]; ok {
			if lvl.Kind != LevelBoss || lvl.Boss != want {
				t.Errorf("level %d = %s/%s, want boss %s", i, lvl.Kind, lvl.Boss, want)
			}
		} else if lvl.Kind != LevelNormal {
			t.Errorf("level %d should be a normal level, got %s", i, lvl.Kind)
		}
	}
}

func TestFrameReportsVisibleEntitiesOnly(t *testing.T) {
	g := New()
	startRun(g, 1)

	g.obstacles = append(g.obstacles,
		&Obstacle{Kind: ObstacleCrate, X: g.cameraX.Add(ToFixed(10)), Y: ToFixed(18), W: 2, H: 2},
		&Obstacle{Kind: ObstacleRock, X: g.cameraX.Add(ToFixed(200)), Y: ToFixed(19), W: 2, H: 1},
	)

	f := g.Frame()

	if len(f.Entities) != 1 {
		t.Fatalf("expected only the on-screen obstacle, got %d entities", len(f.Entities))
	}
	if f.Entities[0].Kind != "crate" || f.Entities[0].X != 10 {
		t.Errorf("unexpected entity %+v", f.Entities[0])
	}
	if f.BossHealth != -1 {
		t.Errorf("no boss active, BossHealth=%d", f.BossHealth)
	}
	if f.Runner.X != g.cfg.Runner.X {
		t.Errorf("runner column %d, want %d", f.Runner.X, g.cfg.Runner.X)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}

	if got := screen.Get(0, g.groundY); got != GroundChar {
		t.Errorf("Ground line should be drawn, got %q at row %d", got, g.groundY)
	}
	if !strings.Contains(str, "Score: 0") {
		t.Error("HUD should show the score")
	}
}

func containsEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
