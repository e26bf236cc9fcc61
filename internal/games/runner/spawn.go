package runner

// Spawner decides when the next obstacle and enemy enter the world. Each
// stream keeps a distance threshold; once the scrolled distance passes it,
// one entity spawns just past the right viewport edge and the threshold
// moves forward by the level's period scaled by its difficulty.
type Spawner struct {
	NextObstacleAt Fixed
	NextEnemyAt    Fixed
	RNG            *SimpleRNG
}

// NewSpawner returns a spawner primed so nothing appears before the first
// full period has scrolled by.
func NewSpawner(seed int64, lvl Level) *Spawner {
	s := &Spawner{RNG: NewSimpleRNG(seed)}
	s.NextObstacleAt = spawnInterval(lvl.ObstaclePeriod, lvl.Difficulty)
	s.NextEnemyAt = spawnInterval(lvl.EnemyPeriod, lvl.Difficulty)
	return s
}

// spawnInterval converts a period in cells and a permille difficulty into
// a distance gap. Higher difficulty shrinks the gap.
func spawnInterval(periodCells, difficulty int) Fixed {
	if difficulty <= 0 {
		difficulty = 1000
	}
	return ToFixed(periodCells).Mul(1000).Div(difficulty)
}

// stepSpawns advances both spawn streams for the current tick. Boss levels
// spawn nothing; the boss is the level's entire population.
func (g *Game) stepSpawns() {
	if g.level.Kind != LevelNormal {
		return
	}
	edge := g.cameraX.Add(ToFixed(g.runtime.ScreenW))
	if g.distance > g.spawner.NextObstacleAt {
		g.spawnObstacle(edge)
		g.spawner.NextObstacleAt = g.spawner.NextObstacleAt.Add(spawnInterval(g.obstaclePeriod(), g.effectiveDifficulty()))
	}
	if g.distance > g.spawner.NextEnemyAt {
		g.spawnEnemy(edge)
		g.spawner.NextEnemyAt = g.spawner.NextEnemyAt.Add(spawnInterval(g.enemyPeriod(), g.effectiveDifficulty()))
	}
}

// spawnObstacle places one uniformly chosen obstacle on the ground at x.
func (g *Game) spawnObstacle(x Fixed) {
	kind := ObstacleKind(g.spawner.RNG.Intn(int(obstacleKindCount)))
	w, h := kind.Size()
	g.obstacles = append(g.obstacles, &Obstacle{
		Kind: kind,
		X:    x,
		Y:    ToFixed(g.groundY - h),
		W:    w,
		H:    h,
	})
}

// spawnEnemy places one uniformly chosen enemy at x, moving left. Flyers
// hover above the ground and bob; walkers and stalkers patrol it.
func (g *Game) spawnEnemy(x Fixed) {
	kind := EnemyKind(g.spawner.RNG.Intn(int(enemyKindCount)))
	w, h := kind.Size()
	y := ToFixed(g.groundY - h)
	if kind == EnemyFlyer {
		y = ToFixed(g.groundY - h - flyerHover)
	}
	speed := Fixed(g.cfg.Spawn.EnemyBaseSpeed).Mul(kind.speedScale()).Div(1000)
	speed = speed.Mul(10 + g.effectiveLevelIndex()).Div(10)
	g.enemies = append(g.enemies, &Enemy{
		Kind:      kind,
		X:         x,
		Y:         y,
		BaseY:     y,
		W:         w,
		H:         h,
		Speed:     speed,
		Dir:       -1,
		SpawnTick: g.tickCount,
	})
}

// SimpleRNG is a small deterministic linear congruential generator. The
// whole simulation draws from it so runs replay exactly from a seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	if seed == 0 {
		seed = 1
	}
	return &SimpleRNG{state: uint64(seed)} //#nosec G115 -- deliberate conversion for RNG seeding
}

// Next returns the next pseudo-random number.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a pseudo-random number in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive here
}

// State exposes the raw generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores the generator to a snapshotted state.
func (r *SimpleRNG) SetState(s uint64) {
	if s == 0 {
		s = 1
	}
	r.state = s
}
