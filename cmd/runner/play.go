package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/audio"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/session"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelPack  string
	flagEndless    bool
	flagWatch      bool
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run directly, skipping the title menu.

Controls:
  Space/Up/W - Jump (starts the run from the title card)
  P          - Pause
  R          - Restart (after game over)
  Esc/B      - Back out of a paused or finished run
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Extra life, gentler scroll, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer lives, faster scroll, starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  runner play
  runner play --endless
  runner play --level 5
  runner play --difficulty hard
  runner play --levels ./mypack.yaml
  runner play --config ./my-runner.yaml --watch
  runner play --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at the given level (1-based, campaign)")
	playCmd.Flags().StringVar(&flagLevelPack, "levels", "", "Path to a custom level pack YAML")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode: the campaign loops and keeps speeding up")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Watch the config file and restart the run on change")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play synthesized sound effects")
}

// applyGameSetup installs the level pack, config path, difficulty, and
// start level from the flags. Shared by play and menu.
func applyGameSetup() error {
	if flagLevelPack != "" {
		table, err := runner.LoadLevelPack(flagLevelPack)
		if err != nil {
			return fmt.Errorf("cannot load level pack: %w", err)
		}
		runner.SetLevelTable(table)
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	if flagLevel != 0 {
		count := runner.ActiveTable().Count()
		if flagLevel < 1 || flagLevel > count {
			return fmt.Errorf("level %d out of range: the table has %d levels", flagLevel, count)
		}
		runner.SetStartLevel(flagLevel - 1)
	} else {
		runner.SetStartLevel(0)
	}

	return nil
}

// terminalSize returns the current terminal dimensions, with defaults
// when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openSound initializes the audio player when --sound is set. Returns
// nil (silent play) when disabled or when no device is available.
func openSound() *audio.Player {
	if !flagSound {
		return nil
	}

	sound := audio.NewPlayer()
	if err := sound.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil
	}
	return sound
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := applyGameSetup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID := "runner"
	if flagEndless {
		gameID = "runner_endless"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := openSound()
	program := tui.NewProgram(game, store, sound, session.Local(), cfg)

	// In watch mode, edits to the config file restart the run with the
	// new values; handy for tuning physics
	if flagWatch {
		path := config.RunnerConfigPath(flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: no config file on disk to watch (using built-in defaults)")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			watchErr := config.WatchRunner(ctx, path,
				func(config.RunnerConfig) { program.NotifyConfigReload() },
				nil,
			)
			if watchErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", watchErr)
			}
		}
	}

	_, runErr := program.Run()

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
