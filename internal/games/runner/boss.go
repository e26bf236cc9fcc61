package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// BossKind identifies a boss encounter type.
type BossKind int

const (
	BossNone BossKind = iota
	BossWarden
	BossHowler
	BossShade
	BossTyrant
)

// String returns the boss kind name.
func (k BossKind) String() string {
	switch k {
	case BossWarden:
		return "warden"
	case BossHowler:
		return "howler"
	case BossShade:
		return "shade"
	case BossTyrant:
		return "tyrant"
	default:
		return "none"
	}
}

// BossKindFromName maps a name to a boss kind. Used by level pack loading.
func BossKindFromName(name string) (BossKind, bool) {
	switch name {
	case "warden":
		return BossWarden, true
	case "howler":
		return BossHowler, true
	case "shade":
		return BossShade, true
	case "tyrant":
		return BossTyrant, true
	default:
		return BossNone, false
	}
}

// BossState is the attack state machine position.
type BossState int

const (
	BossIdle      BossState = iota // Approaching, no shot fired yet
	BossAttacking                  // Holding station and firing
	BossDefeated                   // Terminal
)

// bossSpec is the per-kind tuning block.
type bossSpec struct {
	W, H          int
	Health        int
	SwayAmp       int // Horizontal oscillation around the anchor, cells
	SwayPeriod    int // Ticks per full sway cycle
	BobAmp        int // Vertical oscillation around the base row, cells
	BobPeriod     int
	HoldPercent   int // Screen column (percent of width) the boss holds
	TrackRate     int // Permille of scroll speed the anchor keeps while holding
	CooldownScale int // Permille applied to the configured attack cooldown
	Spread        bool // Fires a 3-shot fan in phase 2
}

// bossSpecFor returns the tuning for a boss kind.
func bossSpecFor(kind BossKind) bossSpec {
	switch kind {
	case BossHowler:
		return bossSpec{W: 6, H: 4, Health: 50, BobAmp: 2, BobPeriod: 90, HoldPercent: 62, TrackRate: 900, CooldownScale: 1000}
	case BossShade:
		return bossSpec{W: 6, H: 4, Health: 50, SwayAmp: 2, SwayPeriod: 150, BobAmp: 2, BobPeriod: 70, HoldPercent: 60, TrackRate: 900, CooldownScale: 900, Spread: true}
	case BossTyrant:
		return bossSpec{W: 8, H: 5, Health: 80, SwayAmp: 3, SwayPeriod: 100, BobAmp: 2, BobPeriod: 80, HoldPercent: 58, TrackRate: 920, CooldownScale: 800, Spread: true}
	default: // BossWarden
		return bossSpec{W: 6, H: 4, Health: 50, SwayAmp: 4, SwayPeriod: 120, HoldPercent: 62, TrackRate: 900, CooldownScale: 1000}
	}
}

// Boss is the singleton adversary of a boss level. AnchorX and BaseY are the
// movement pattern's reference point; X and Y are the pattern applied to it.
type Boss struct {
	Kind           BossKind
	X, Y           Fixed
	W, H           int
	AnchorX, BaseY Fixed
	Health         int
	MaxHealth      int
	Phase          int // 1, then 2 once health drops to half
	State          BossState
	LastAttackTick int
	SpawnTick      int
}

// Advance applies the periodic movement pattern around the anchor point.
// Anchor tracking itself is driven by the state machine step, not here.
func (b *Boss) Advance(tick int) {
	spec := bossSpecFor(b.Kind)
	elapsed := tick - b.SpawnTick
	b.X = b.AnchorX.Add(sineOffset(elapsed, spec.SwayPeriod, spec.SwayAmp))
	b.Y = b.BaseY.Add(sineOffset(elapsed, spec.BobPeriod, spec.BobAmp))
}

// Bounds returns the boss's collision box.
func (b *Boss) Bounds() Box {
	return NewBox(b.X, b.Y, b.W, b.H)
}

// LethalTo reports whether contact damages the runner. Side contact is
// lethal like any other hazard; a descending runner stomps instead.
func (b *Boss) LethalTo(r *Runner) bool {
	return !r.Descending()
}

// HealthFraction returns health as permille of max, for display.
func (b *Boss) HealthFraction() int {
	if b.MaxHealth <= 0 {
		return 0
	}
	return b.Health * 1000 / b.MaxHealth
}

// spawnBoss creates the level's boss just off the right viewport edge.
func (g *Game) spawnBoss(kind BossKind) {
	spec := bossSpecFor(kind)
	baseY := ToFixed(g.groundY - spec.H - 3)
	b := &Boss{
		Kind:           kind,
		W:              spec.W,
		H:              spec.H,
		AnchorX:        g.cameraX.Add(ToFixed(g.runtime.ScreenW)),
		BaseY:          baseY,
		Health:         spec.Health,
		MaxHealth:      spec.Health,
		Phase:          1,
		State:          BossIdle,
		LastAttackTick: g.tickCount,
		SpawnTick:      g.tickCount,
	}
	b.Advance(g.tickCount)
	g.boss = b
}

// Boss approach speed while closing on the hold column, fixed-point cells
// per tick relative to the world.
const bossApproachSpeed = Fixed(400)

// stepBoss runs one tick of the boss state machine: anchor tracking, the
// movement pattern, the escape check, and attack cooldown.
func (g *Game) stepBoss() {
	b := g.boss
	if b == nil {
		return
	}
	spec := bossSpecFor(b.Kind)

	// Anchor logistics: dash in from the right edge to the hold column, then
	// track the camera slightly slower than it scrolls. The shortfall is the
	// fight's shot clock: an undefeated boss slides toward the trailing edge.
	hold := g.cameraX.Add(ToFixed(g.runtime.ScreenW * spec.HoldPercent / 100))
	if b.AnchorX > hold {
		b.AnchorX = b.AnchorX.Sub(bossApproachSpeed)
	} else {
		b.AnchorX = b.AnchorX.Add(g.scrollSpeed.Mul(spec.TrackRate).Div(1000))
	}

	b.Advance(g.tickCount)

	// Escape: trailing edge of the camera passed the boss. Passive play
	// fails the level.
	if b.X.Add(ToFixed(b.W)) < g.cameraX {
		g.phase = PhaseGameOver
		g.events = append(g.events, core.EventGameOver)
		return
	}

	if g.tickCount-b.LastAttackTick >= g.attackCooldown(b) {
		g.fireBossShot(b)
		b.LastAttackTick = g.tickCount
		b.State = BossAttacking
	}
}

// attackCooldown returns the boss's current shot interval in ticks.
func (g *Game) attackCooldown(b *Boss) int {
	spec := bossSpecFor(b.Kind)
	base := g.cfg.Boss.AttackCooldown
	if b.Phase >= 2 {
		base = g.cfg.Boss.Phase2Cooldown
	}
	cd := base * spec.CooldownScale / 1000
	if cd < 1 {
		cd = 1
	}
	return cd
}

// fireBossShot fires one projectile aimed at the runner's current position.
// Phase-2 spread bosses fan two extra shots around the aimed one. A
// zero-length aim vector skips the shot entirely.
func (g *Game) fireBossShot(b *Boss) {
	fromX := float64(b.X.Add(ToFixed(b.W).Div(2)))
	fromY := float64(b.Y.Add(ToFixed(b.H).Div(2)))
	toX := float64(g.runner.X.Add(ToFixed(g.runner.W).Div(2)))
	toY := float64(g.runner.Y.Add(ToFixed(g.runner.H).Div(2)))

	dx := toX - fromX
	dy := toY - fromY
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	angle := math.Atan2(dy, dx)
	offsets := []float64{0}
	if b.Phase >= 2 && bossSpecFor(b.Kind).Spread {
		rad := float64(g.cfg.Boss.SpreadArc) / 1000
		offsets = []float64{0, -rad, rad}
	}

	speed := float64(g.cfg.Boss.ProjectileSpeed)
	for _, off := range offsets {
		g.projectiles = append(g.projectiles, &Projectile{
			X:  Fixed(fromX),
			Y:  Fixed(fromY),
			VX: Fixed(math.Round(math.Cos(angle+off) * speed)),
			VY: Fixed(math.Round(math.Sin(angle+off) * speed)),
			W:  1,
			H:  1,
		})
	}
	g.events = append(g.events, core.EventShot)
}

// stompBoss applies one valid stomp: fixed damage, an upward bounce for the
// runner, and a forward shove that buys the player more fight window.
func (g *Game) stompBoss(b *Boss) {
	b.Health -= g.cfg.Boss.StompDamage
	if b.Health < 0 {
		b.Health = 0
	}
	g.runner.VY = -Fixed(g.cfg.Boss.StompBounce)
	g.runner.Grounded = false
	b.AnchorX = b.AnchorX.Add(ToFixed(g.cfg.Boss.StompKnockback))
	g.events = append(g.events, core.EventStomp)

	if b.Health == 0 {
		b.State = BossDefeated
		g.boss = nil
		g.score += g.cfg.Gameplay.BossBonus
		g.events = append(g.events, core.EventBossDefeated)
		g.completeLevel()
		return
	}
	if b.Phase == 1 && b.Health*2 <= b.MaxHealth {
		b.Phase = 2
	}
}
