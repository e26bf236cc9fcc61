package runner

import "math"

// entity is the capability surface shared by everything the runner can
// collide with. Advance applies per-tick self-movement as a function of the
// monotonic tick counter; LethalTo decides whether touching the entity harms
// the runner in its current state.
type entity interface {
	Advance(tick int)
	Bounds() Box
	LethalTo(r *Runner) bool
}

// ObstacleKind identifies a member of the fixed obstacle set.
type ObstacleKind int

const (
	ObstacleCrate ObstacleKind = iota // Neutral, climb bonus on touch
	ObstacleRock                      // Neutral, low profile
	ObstacleSpikes                    // Lethal floor hazard
	ObstaclePylon                     // Lethal tall hazard
	obstacleKindCount                 // Sentinel for uniform selection
)

// Lethal reports whether the obstacle kind damages the runner.
func (k ObstacleKind) Lethal() bool {
	return k == ObstacleSpikes || k == ObstaclePylon
}

// Size returns the obstacle's footprint in cells.
func (k ObstacleKind) Size() (w, h int) {
	switch k {
	case ObstacleCrate:
		return 2, 2
	case ObstacleRock:
		return 2, 1
	case ObstacleSpikes:
		return 3, 1
	case ObstaclePylon:
		return 1, 3
	default:
		return 1, 1
	}
}

// String returns the obstacle kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleCrate:
		return "crate"
	case ObstacleRock:
		return "rock"
	case ObstacleSpikes:
		return "spikes"
	case ObstaclePylon:
		return "pylon"
	default:
		return "?"
	}
}

// Obstacle is a static world hazard or prop. It never moves; the camera
// scrolls past it.
type Obstacle struct {
	Kind    ObstacleKind
	X, Y    Fixed
	W, H    int
	Touched bool // Neutral touch bonus already granted
}

// Advance does nothing; obstacles are static in world space.
func (o *Obstacle) Advance(tick int) {}

// Bounds returns the obstacle's collision box.
func (o *Obstacle) Bounds() Box {
	return NewBox(o.X, o.Y, o.W, o.H)
}

// LethalTo reports whether contact damages the runner.
func (o *Obstacle) LethalTo(r *Runner) bool {
	return o.Kind.Lethal()
}

// EnemyKind identifies a member of the fixed enemy set.
type EnemyKind int

const (
	EnemyWalker  EnemyKind = iota // Marches left along the ground
	EnemyFlyer                    // Airborne with a sinusoidal bob
	EnemyStalker                  // Faster ground unit
	enemyKindCount                // Sentinel for uniform selection
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyWalker:
		return "walker"
	case EnemyFlyer:
		return "flyer"
	case EnemyStalker:
		return "stalker"
	default:
		return "?"
	}
}

// Size returns the enemy's footprint in cells.
func (k EnemyKind) Size() (w, h int) {
	switch k {
	case EnemyFlyer:
		return 2, 1
	default:
		return 2, 2
	}
}

// speedScale returns the kind's speed multiplier in permille.
func (k EnemyKind) speedScale() int {
	switch k {
	case EnemyStalker:
		return 1500
	case EnemyFlyer:
		return 800
	default:
		return 1000
	}
}

// Flyer bob tuning.
const (
	flyerBobAmp    = 2  // cells
	flyerBobPeriod = 48 // ticks
	flyerHover     = 5  // cells above the ground line
)

// Enemy is a mobile hazard. Dir is -1 for the only current behavior
// (advancing on the runner); speed is a positive magnitude.
type Enemy struct {
	Kind      EnemyKind
	X         Fixed
	Y         Fixed
	BaseY     Fixed // Bob center for flyers, resting Y otherwise
	W, H      int
	Speed     Fixed
	Dir       int
	SpawnTick int // Phase reference for the bob pattern
}

// Advance moves the enemy one tick.
func (e *Enemy) Advance(tick int) {
	e.X = e.X.Add(e.Speed.Mul(e.Dir))
	if e.Kind == EnemyFlyer {
		e.Y = e.BaseY.Add(sineOffset(tick-e.SpawnTick, flyerBobPeriod, flyerBobAmp))
	}
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() Box {
	return NewBox(e.X, e.Y, e.W, e.H)
}

// LethalTo reports whether contact damages the runner. All enemies do.
func (e *Enemy) LethalTo(r *Runner) bool {
	return true
}

// Projectile is a boss-fired shot travelling on a straight line.
type Projectile struct {
	X, Y   Fixed
	VX, VY Fixed
	W, H   int
}

// Advance moves the projectile along its velocity.
func (p *Projectile) Advance(tick int) {
	p.X = p.X.Add(p.VX)
	p.Y = p.Y.Add(p.VY)
}

// Bounds returns the projectile's collision box.
func (p *Projectile) Bounds() Box {
	return NewBox(p.X, p.Y, p.W, p.H)
}

// LethalTo reports whether contact damages the runner. All projectiles do.
func (p *Projectile) LethalTo(r *Runner) bool {
	return true
}

// sineOffset returns a vertical displacement for tick-driven bob patterns.
// It is a pure function of integer state, so identical inputs always produce
// identical offsets.
func sineOffset(elapsed, period, ampCells int) Fixed {
	if period <= 0 || ampCells <= 0 {
		return 0
	}
	angle := 2 * math.Pi * float64(elapsed%period) / float64(period)
	return Fixed(math.Round(math.Sin(angle) * float64(ampCells) * Scale))
}
