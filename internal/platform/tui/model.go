package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/audio"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/session"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Model is the Bubble Tea model that drives one game instance.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Player
	player     session.Identity
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // outcome persisted for the current game over
}

// NewModel creates a Bubble Tea model for the given game. The sound
// player may be nil for silent play.
func NewModel(game registry.Game, store *storage.Store, sound *audio.Player, player session.Identity, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// ConfigReloadedMsg tells a running game that its config file changed
// on disk. Sent by the file watcher in --watch mode.
type ConfigReloadedMsg struct{}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ConfigReloadedMsg:
		// Watch mode is for tuning: restart the run so the edited
		// values take effect immediately
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Esc/b leaves a finished or paused run without quitting the program
	if action := m.keyMapper.MapKeyToMenuAction(msg); action == MenuActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The world is sized from the screen, so a live run restarts on resize
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, tea.Quit
	}

	// Restart gets a fresh seed so the next run differs
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		m.sound.HandleEvents(result.Events)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveOutcome()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveOutcome records the finished run: the bare score for the
// leaderboard and a full run row with attribution.
func (m *Model) saveOutcome() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunEntry{
		GameID:       m.game.ID(),
		Player:       m.player.Name,
		Score:        m.gameState.Score,
		LevelReached: m.gameState.Level,
		Victory:      m.gameState.Victory,
		Duration:     m.gameState.Ticks,
	})
}

// saveScreenshot dumps the current screen buffer to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the run to return to the
// menu rather than quitting.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player quit the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// RunResult tells the caller how a game session ended.
type RunResult struct {
	BackToMenu bool
}

// Program wraps the Bubble Tea program for one game so callers can
// inject messages from outside the terminal loop, such as config
// reload notifications from a file watcher.
type Program struct {
	p *tea.Program
}

// NewProgram builds the program for one game without starting it.
func NewProgram(game registry.Game, store *storage.Store, sound *audio.Player, player session.Identity, cfg core.RuntimeConfig) *Program {
	model := NewModel(game, store, sound, player, cfg)

	return &Program{
		p: tea.NewProgram(
			model,
			tea.WithAltScreen(),
		),
	}
}

// NotifyConfigReload asks the running game to restart with the freshly
// edited config. Safe to call from any goroutine.
func (pr *Program) NotifyConfigReload() {
	pr.p.Send(ConfigReloadedMsg{})
}

// Run blocks until the player quits or backs out.
func (pr *Program) Run() (RunResult, error) {
	finalModel, err := pr.p.Run()
	if err != nil {
		return RunResult{}, err
	}

	if m, ok := finalModel.(Model); ok {
		return RunResult{BackToMenu: m.BackToMenu()}, nil
	}
	return RunResult{}, nil
}

// Run starts the Bubble Tea program for one game and blocks until the
// player quits or backs out.
func Run(game registry.Game, store *storage.Store, sound *audio.Player, player session.Identity, cfg core.RuntimeConfig) (RunResult, error) {
	return NewProgram(game, store, sound, player, cfg).Run()
}
