package runner

// FrameEntity is one visible world object, positioned in screen cells
// relative to the left viewport edge.
type FrameEntity struct {
	Kind string
	X, Y int
	W, H int
}

// Frame is a structured view of the current tick for headless consumers:
// everything visible in the viewport plus run progress, without the
// rendering concerns of Render.
type Frame struct {
	Phase      string
	Score      int
	Lives      int
	LevelIndex int
	LevelName  string
	Distance   int // Cells scrolled within the current level
	BossHealth int // Permille of max health, -1 when no boss is active
	Runner     FrameEntity
	Entities   []FrameEntity
}

// Frame returns the structured view of the current state.
func (g *Game) Frame() Frame {
	f := Frame{
		Phase:      g.phase,
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		LevelName:  g.level.Name,
		Distance:   g.distance.ToCell(),
		BossHealth: -1,
		Runner: FrameEntity{
			Kind: "runner",
			X:    g.runner.X.Sub(g.cameraX).ToCell(),
			Y:    g.runner.Y.ToCellRounded(),
			W:    g.runner.W,
			H:    g.runner.H,
		},
	}

	for _, o := range g.obstacles {
		f.appendVisible(g, o.Kind.String(), o.X, o.Y, o.W, o.H)
	}
	for _, e := range g.enemies {
		f.appendVisible(g, e.Kind.String(), e.X, e.Y, e.W, e.H)
	}
	for _, p := range g.projectiles {
		f.appendVisible(g, "shot", p.X, p.Y, p.W, p.H)
	}
	if b := g.boss; b != nil {
		f.BossHealth = b.HealthFraction()
		f.appendVisible(g, b.Kind.String(), b.X, b.Y, b.W, b.H)
	}

	return f
}

// appendVisible adds an entity if any part of it falls inside the viewport.
func (f *Frame) appendVisible(g *Game, kind string, x, y Fixed, w, h int) {
	sx := x.Sub(g.cameraX).ToCell()
	if sx+w <= 0 || sx >= g.runtime.ScreenW {
		return
	}
	f.Entities = append(f.Entities, FrameEntity{
		Kind: kind,
		X:    sx,
		Y:    y.ToCellRounded(),
		W:    w,
		H:    h,
	})
}
