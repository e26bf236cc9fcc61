package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var flagLevelsPack string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level table",
	Long: `Shows the campaign level table: name, kind, and tuning.

With --levels a custom pack is listed instead, which doubles as a
validity check for pack authors.

Examples:
  runner levels
  runner levels --levels ./mypack.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsPack, "levels", "", "Path to a custom level pack YAML")
}

func runLevels(_ *cobra.Command, _ []string) {
	table := runner.BuiltinTable()

	if flagLevelsPack != "" {
		custom, err := runner.LoadLevelPack(flagLevelsPack)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		table = custom
		fmt.Printf("Level pack: %s\n", flagLevelsPack)
	} else {
		fmt.Println("Built-in campaign:")
	}
	fmt.Println()

	// Column width follows the longest name
	maxNameLen := 4 // "Name" header
	for _, name := range table.Names() {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-12s  %-10s  %s\n", "#", maxNameLen, "Name", "Kind", "Difficulty", "Speed")
	fmt.Printf("  %-3s  %-*s  %-12s  %-10s  %s\n", "-", maxNameLen, "----", "----", "----------", "-----")

	for i := 0; i < table.Count(); i++ {
		lvl, err := table.Get(i)
		if err != nil {
			continue
		}

		kind := lvl.Kind.String()
		if lvl.Kind == runner.LevelBoss {
			kind = fmt.Sprintf("boss:%s", lvl.Boss)
		}

		fmt.Printf("  %-3d  %-*s  %-12s  %-10s  x%.2f\n",
			i+1, maxNameLen, lvl.Name, kind,
			fmt.Sprintf("%.2f", float64(lvl.Difficulty)/1000),
			float64(lvl.SpeedScale)/1000)
	}

	fmt.Println()
	fmt.Printf("%d levels. Run 'runner play --level <n>' to start from a specific one.\n", table.Count())
}
