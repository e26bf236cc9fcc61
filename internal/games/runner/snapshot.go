package runner

// Snapshot contains the complete game state for replay/save support.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick           uint64
	Phase          string
	Paused         int
	Score          int
	Lives          int
	LevelIndex     int
	InterludeTicks int

	// Game mode and endless tracking
	Mode         int // 0=Campaign, 1=Endless
	EndlessCycle int

	// World scroll
	Distance    int
	CameraX     int
	ScrollSpeed int

	// Runner body
	RunnerX        int
	RunnerY        int
	RunnerVY       int
	RunnerGrounded int
	InvulnTicks    int

	// Spawn stream thresholds
	NextObstacleAt int
	NextEnemyAt    int

	// Obstacle state (each obstacle is 6 ints: Kind, X, Y, W, H, Touched)
	ObstacleCount int
	ObstacleData  []int

	// Enemy state (each enemy is 9 ints: Kind, X, Y, BaseY, W, H, Speed, Dir, SpawnTick)
	EnemyCount int
	EnemyData  []int

	// Projectile state (each projectile is 6 ints: X, Y, VX, VY, W, H)
	ProjectileCount int
	ProjectileData  []int

	// Boss state: empty when absent, otherwise 13 ints
	// (Kind, X, Y, AnchorX, BaseY, W, H, Health, MaxHealth, Phase, State, LastAttackTick, SpawnTick)
	BossData []int

	// RNG state for the spawner
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacleData := make([]int, len(g.obstacles)*6)
	for i, o := range g.obstacles {
		idx := i * 6
		obstacleData[idx] = int(o.Kind)
		obstacleData[idx+1] = int(o.X)
		obstacleData[idx+2] = int(o.Y)
		obstacleData[idx+3] = o.W
		obstacleData[idx+4] = o.H
		if o.Touched {
			obstacleData[idx+5] = 1
		}
	}

	enemyData := make([]int, len(g.enemies)*9)
	for i, e := range g.enemies {
		idx := i * 9
		enemyData[idx] = int(e.Kind)
		enemyData[idx+1] = int(e.X)
		enemyData[idx+2] = int(e.Y)
		enemyData[idx+3] = int(e.BaseY)
		enemyData[idx+4] = e.W
		enemyData[idx+5] = e.H
		enemyData[idx+6] = int(e.Speed)
		enemyData[idx+7] = e.Dir
		enemyData[idx+8] = e.SpawnTick
	}

	projectileData := make([]int, len(g.projectiles)*6)
	for i, p := range g.projectiles {
		idx := i * 6
		projectileData[idx] = int(p.X)
		projectileData[idx+1] = int(p.Y)
		projectileData[idx+2] = int(p.VX)
		projectileData[idx+3] = int(p.VY)
		projectileData[idx+4] = p.W
		projectileData[idx+5] = p.H
	}

	var bossData []int
	if b := g.boss; b != nil {
		bossData = []int{
			int(b.Kind), int(b.X), int(b.Y), int(b.AnchorX), int(b.BaseY),
			b.W, b.H, b.Health, b.MaxHealth, b.Phase, int(b.State),
			b.LastAttackTick, b.SpawnTick,
		}
	}

	grounded := 0
	if g.runner.Grounded {
		grounded = 1
	}
	paused := 0
	if g.paused {
		paused = 1
	}

	return Snapshot{
		Tick:           uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:          g.phase,
		Paused:         paused,
		Score:          g.score,
		Lives:          g.lives,
		LevelIndex:     g.levelIndex,
		InterludeTicks: g.interludeTicks,

		Mode:         int(g.mode),
		EndlessCycle: g.endlessCycle,

		Distance:    int(g.distance),
		CameraX:     int(g.cameraX),
		ScrollSpeed: int(g.scrollSpeed),

		RunnerX:        int(g.runner.X),
		RunnerY:        int(g.runner.Y),
		RunnerVY:       int(g.runner.VY),
		RunnerGrounded: grounded,
		InvulnTicks:    g.runner.InvulnTicks,

		NextObstacleAt: int(g.spawner.NextObstacleAt),
		NextEnemyAt:    int(g.spawner.NextEnemyAt),

		ObstacleCount:   len(g.obstacles),
		ObstacleData:    obstacleData,
		EnemyCount:      len(g.enemies),
		EnemyData:       enemyData,
		ProjectileCount: len(g.projectiles),
		ProjectileData:  projectileData,
		BossData:        bossData,

		RNGState: g.spawner.RNG.State(),
	}
}

// ApplySnapshot restores game state from a snapshot. The level table and
// config are not part of the snapshot; the receiver keeps its own.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.phase = snap.Phase
	g.paused = snap.Paused == 1
	g.score = snap.Score
	g.lives = snap.Lives
	g.interludeTicks = snap.InterludeTicks

	g.mode = GameMode(snap.Mode)
	g.endlessCycle = snap.EndlessCycle

	if lvl, err := g.table.Get(snap.LevelIndex); err == nil {
		g.levelIndex = snap.LevelIndex
		g.level = lvl
	}

	g.distance = Fixed(snap.Distance)
	g.cameraX = Fixed(snap.CameraX)
	g.scrollSpeed = Fixed(snap.ScrollSpeed)

	g.runner.X = Fixed(snap.RunnerX)
	g.runner.Y = Fixed(snap.RunnerY)
	g.runner.VY = Fixed(snap.RunnerVY)
	g.runner.Grounded = snap.RunnerGrounded == 1
	g.runner.InvulnTicks = snap.InvulnTicks

	g.spawner.NextObstacleAt = Fixed(snap.NextObstacleAt)
	g.spawner.NextEnemyAt = Fixed(snap.NextEnemyAt)

	g.obstacles = make([]*Obstacle, 0, snap.ObstacleCount)
	for i := range snap.ObstacleCount {
		idx := i * 6
		if idx+5 >= len(snap.ObstacleData) {
			break
		}
		g.obstacles = append(g.obstacles, &Obstacle{
			Kind:    ObstacleKind(snap.ObstacleData[idx]),
			X:       Fixed(snap.ObstacleData[idx+1]),
			Y:       Fixed(snap.ObstacleData[idx+2]),
			W:       snap.ObstacleData[idx+3],
			H:       snap.ObstacleData[idx+4],
			Touched: snap.ObstacleData[idx+5] == 1,
		})
	}

	g.enemies = make([]*Enemy, 0, snap.EnemyCount)
	for i := range snap.EnemyCount {
		idx := i * 9
		if idx+8 >= len(snap.EnemyData) {
			break
		}
		g.enemies = append(g.enemies, &Enemy{
			Kind:      EnemyKind(snap.EnemyData[idx]),
			X:         Fixed(snap.EnemyData[idx+1]),
			Y:         Fixed(snap.EnemyData[idx+2]),
			BaseY:     Fixed(snap.EnemyData[idx+3]),
			W:         snap.EnemyData[idx+4],
			H:         snap.EnemyData[idx+5],
			Speed:     Fixed(snap.EnemyData[idx+6]),
			Dir:       snap.EnemyData[idx+7],
			SpawnTick: snap.EnemyData[idx+8],
		})
	}

	g.projectiles = make([]*Projectile, 0, snap.ProjectileCount)
	for i := range snap.ProjectileCount {
		idx := i * 6
		if idx+5 >= len(snap.ProjectileData) {
			break
		}
		g.projectiles = append(g.projectiles, &Projectile{
			X:  Fixed(snap.ProjectileData[idx]),
			Y:  Fixed(snap.ProjectileData[idx+1]),
			VX: Fixed(snap.ProjectileData[idx+2]),
			VY: Fixed(snap.ProjectileData[idx+3]),
			W:  snap.ProjectileData[idx+4],
			H:  snap.ProjectileData[idx+5],
		})
	}

	g.boss = nil
	if len(snap.BossData) == 13 {
		g.boss = &Boss{
			Kind:           BossKind(snap.BossData[0]),
			X:              Fixed(snap.BossData[1]),
			Y:              Fixed(snap.BossData[2]),
			AnchorX:        Fixed(snap.BossData[3]),
			BaseY:          Fixed(snap.BossData[4]),
			W:              snap.BossData[5],
			H:              snap.BossData[6],
			Health:         snap.BossData[7],
			MaxHealth:      snap.BossData[8],
			Phase:          snap.BossData[9],
			State:          BossState(snap.BossData[10]),
			LastAttackTick: snap.BossData[11],
			SpawnTick:      snap.BossData[12],
		}
	}

	g.spawner.RNG.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Paused)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InterludeTicks)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndlessCycle)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Distance)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CameraX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScrollSpeed)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RunnerX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RunnerY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RunnerVY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RunnerGrounded)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InvulnTicks)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextObstacleAt)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextEnemyAt)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BossData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
