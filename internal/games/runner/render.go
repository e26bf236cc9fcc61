package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar     = '─'
	RunnerHead     = '@'
	RunnerBody     = '#'
	RunnerLeg1     = '/'
	RunnerLeg2     = '\\'
	CrateChar      = '▓'
	RockChar       = '◆'
	SpikeChar      = '▲'
	PylonChar      = '║'
	WalkerChar     = 'ω'
	FlyerChar      = 'v'
	StalkerChar    = 'Ж'
	ProjectileChar = '•'
	BossChar       = '█'
	BossEyeChar    = '◉'
	HeartChar      = '♥'
	StarChar       = '·'
	HazeChar       = '~'
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.drawBackdrop(dst)

	// Ground line
	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	for _, o := range g.obstacles {
		g.drawObstacle(dst, o)
	}
	for _, e := range g.enemies {
		g.drawEnemy(dst, e)
	}
	for _, p := range g.projectiles {
		sx := p.X.Sub(g.cameraX).ToCell()
		dst.SetCell(sx, p.Y.ToCellRounded(), ProjectileChar, core.ColorBrightYellow)
	}
	if g.boss != nil {
		g.drawBoss(dst, g.boss)
	}
	g.drawRunner(dst)

	g.drawHUD(dst)

	switch {
	case g.phase == PhaseMenu:
		g.drawCenteredMessage(dst, strings.ToUpper(g.Title()), "Press SPACE to run")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseLevelComplete:
		g.drawCenteredMessage(dst, "LEVEL CLEAR", fmt.Sprintf("Next: %s", g.nextLevelName()))
	case g.phase == PhaseVictory:
		g.drawCenteredMessage(dst, "VICTORY", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.phase == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawBackdrop draws the parallax sky: sparse far stars and a nearer haze
// band, scrolling at a quarter and half of the camera speed. Placement is
// a pure hash of the world column, so the pattern is stable as it scrolls
// and touches no simulation state.
func (g *Game) drawBackdrop(dst *core.Screen) {
	skyBottom := g.groundY - 5
	if skyBottom < 3 {
		return
	}

	farShift := g.cameraX.Div(4).ToCell()
	nearShift := g.cameraX.Div(2).ToCell()

	for x := range dst.Width() {
		if far := backdropHash(x + farShift); far%9 == 0 {
			y := 2 + (far/9)%(skyBottom-2)
			dst.SetCell(x, y, StarChar, core.ColorGray)
		}
		if near := backdropHash(x + nearShift + 1<<16); near%5 == 0 {
			dst.SetCell(x, skyBottom+(near/5)%2, HazeChar, core.ColorBlue)
		}
	}
}

// backdropHash scatters backdrop glyphs from a world column index.
func backdropHash(n int) int {
	h := n * 2654435761
	h ^= h >> 13
	if h < 0 {
		h = -h
	}
	return h
}

// drawRunner draws the player sprite. During the invulnerability window the
// sprite blinks by skipping every other animation beat.
func (g *Game) drawRunner(dst *core.Screen) {
	if g.runner.InvulnTicks > 0 && (g.tickCount/4)%2 == 0 {
		return
	}

	x := g.runner.X.Sub(g.cameraX).ToCell()
	y := g.runner.Y.ToCellRounded()

	dst.SetCell(x+1, y, RunnerHead, core.ColorBrightWhite)
	dst.SetCell(x, y+1, RunnerLeg1, core.ColorWhite)
	dst.SetCell(x+1, y+1, RunnerBody, core.ColorWhite)
	dst.SetCell(x+2, y+1, RunnerLeg2, core.ColorWhite)

	if g.runner.Grounded {
		// Alternate legs while running
		if (g.tickCount/6)%2 == 0 {
			dst.SetCell(x, y+2, RunnerLeg1, core.ColorWhite)
			dst.SetCell(x+2, y+2, RunnerLeg2, core.ColorWhite)
		} else {
			dst.SetCell(x+1, y+2, RunnerLeg1, core.ColorWhite)
			dst.SetCell(x+2, y+2, RunnerLeg2, core.ColorWhite)
		}
	} else {
		// Tucked while airborne
		dst.SetCell(x, y+2, RunnerLeg2, core.ColorWhite)
		dst.SetCell(x+2, y+2, RunnerLeg1, core.ColorWhite)
	}
}

// drawObstacle draws one obstacle at its camera-relative position.
func (g *Game) drawObstacle(dst *core.Screen, o *Obstacle) {
	sx := o.X.Sub(g.cameraX).ToCell()
	sy := o.Y.ToCell()

	var glyph rune
	var color core.Color
	switch o.Kind {
	case ObstacleCrate:
		glyph, color = CrateChar, core.ColorYellow
	case ObstacleRock:
		glyph, color = RockChar, core.ColorGray
	case ObstacleSpikes:
		glyph, color = SpikeChar, core.ColorBrightRed
	case ObstaclePylon:
		glyph, color = PylonChar, core.ColorRed
	default:
		glyph, color = '?', core.ColorDefault
	}

	for dy := range o.H {
		for dx := range o.W {
			dst.SetCell(sx+dx, sy+dy, glyph, color)
		}
	}
}

// drawEnemy draws one enemy at its camera-relative position.
func (g *Game) drawEnemy(dst *core.Screen, e *Enemy) {
	sx := e.X.Sub(g.cameraX).ToCell()
	sy := e.Y.ToCellRounded()

	var glyph rune
	var color core.Color
	switch e.Kind {
	case EnemyFlyer:
		glyph, color = FlyerChar, core.ColorBrightCyan
	case EnemyStalker:
		glyph, color = StalkerChar, core.ColorBrightMagenta
	default:
		glyph, color = WalkerChar, core.ColorMagenta
	}

	for dy := range e.H {
		for dx := range e.W {
			dst.SetCell(sx+dx, sy+dy, glyph, color)
		}
	}
}

// drawBoss draws the boss body with an eye row, red in phase 2.
func (g *Game) drawBoss(dst *core.Screen, b *Boss) {
	sx := b.X.Sub(g.cameraX).ToCell()
	sy := b.Y.ToCellRounded()

	color := core.ColorMagenta
	if b.Phase >= 2 {
		color = core.ColorBrightRed
	}

	for dy := range b.H {
		for dx := range b.W {
			dst.SetCell(sx+dx, sy+dy, BossChar, color)
		}
	}
	eyeY := sy + 1
	dst.SetCell(sx+1, eyeY, BossEyeChar, core.ColorBrightWhite)
	dst.SetCell(sx+b.W-2, eyeY, BossEyeChar, core.ColorBrightWhite)
}

// drawHUD draws the score line and, on boss levels, the boss health bar.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	hearts := strings.Repeat(string(HeartChar), g.lives)
	dst.DrawTextColored(dst.Width()-g.cfg.Gameplay.Lives-4, 0, hearts, core.ColorBrightRed)

	name := fmt.Sprintf(" %s ", g.level.Name)
	dst.DrawText((dst.Width()-len([]rune(name)))/2, 0, name)

	if g.level.Kind == LevelNormal {
		total := g.cfg.World.LevelDistance
		done := g.distance.ToCell()
		if done > total {
			done = total
		}
		dst.DrawText(2, 1, fmt.Sprintf(" %d/%d ", done, total))
	}

	if b := g.boss; b != nil {
		g.drawBossBar(dst, b)
	}
}

// drawBossBar draws a 20-segment health bar under the HUD line.
func (g *Game) drawBossBar(dst *core.Screen, b *Boss) {
	const segments = 20
	filled := b.HealthFraction() * segments / 1000
	if filled < 0 {
		filled = 0
	}
	if b.Health > 0 && filled == 0 {
		filled = 1
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", segments-filled)
	x := (dst.Width() - segments - 7) / 2
	dst.DrawText(x, 1, "BOSS [")
	color := core.ColorBrightGreen
	switch {
	case b.HealthFraction() <= 250:
		color = core.ColorBrightRed
	case b.HealthFraction() <= 500:
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(x+6, 1, bar, color)
	dst.DrawText(x+6+segments, 1, "]")
}

// nextLevelName returns the display name of the level after the current
// one, wrapping like advanceLevel does.
func (g *Game) nextLevelName() string {
	next := (g.levelIndex + 1) % g.table.Count()
	lvl, err := g.table.Get(next)
	if err != nil {
		return "?"
	}
	return lvl.Name
}

// drawCenteredMessage draws a boxed title and subtitle over the playfield.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
