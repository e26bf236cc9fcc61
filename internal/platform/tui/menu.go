package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// RunMode is the play mode picked in the menu.
type RunMode int

const (
	RunModeCampaign RunMode = iota
	RunModeEndless
)

// Selection holds what the player picked in the menu.
type Selection struct {
	Mode       RunMode
	StartLevel int // 0-based index into the active level table
}

// GameID returns the registry id for the selected mode.
func (s Selection) GameID() string {
	if s.Mode == RunModeEndless {
		return "runner_endless"
	}
	return "runner"
}

// menu cursor rows for the top-level view
const (
	menuRowCampaign = iota
	menuRowEndless
	menuRowLevelSelect
	menuRowScores
	menuRowQuit
	menuRowCount
)

// MenuModel is the Bubble Tea model for the title menu: mode choice
// plus the level selector.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	table         *runner.Table

	selected       *Selection
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a menu over the active level table.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		table:     runner.ActiveTable(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleTopKey(action)
}

func (m MenuModel) handleTopKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuRowCount-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case menuRowCampaign:
			m.selected = &Selection{Mode: RunModeCampaign}
			return m, tea.Quit
		case menuRowEndless:
			m.selected = &Selection{Mode: RunModeEndless}
			return m, tea.Quit
		case menuRowLevelSelect:
			m.inLevelSelect = true
			m.levelCursor = 0
		case menuRowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuRowQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	count := m.table.Count()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}

	case MenuActionDown:
		if m.levelCursor < count-1 {
			m.levelCursor++
		}

	case MenuActionSelect:
		m.selected = &Selection{Mode: RunModeCampaign, StartLevel: m.levelCursor}
		return m, tea.Quit

	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewTop()
}

func (m MenuModel) viewTop() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S K Y L I N E   R U N N E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Campaign (%d levels)", m.table.Count()),
		"Endless Mode",
		"Select Level...",
		"High Scores",
		"Quit",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, name := range m.table.Names() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		marker := ""
		if lvl, err := m.table.Get(i); err == nil && lvl.Kind == runner.LevelBoss {
			marker = "  [boss]"
		}

		line := fmt.Sprintf("%s%2d. %s%s", cursor, i+1, name, marker)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil when nothing was picked.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the player opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by any resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the outcome of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the title menu and returns what the player picked.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
