// runner is a side-scrolling platform game played in the terminal.
//
// Usage:
//
//	runner play              - Play the campaign (or endless with --endless)
//	runner menu              - Start the interactive title menu
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show recorded scores and runs
//	runner levels            - List the level table
//	runner config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Skyline Runner - a terminal platform runner",
	Long: `Skyline Runner is a terminal platform game: sprint through a
scrolling gauntlet of obstacles and enemies, survive the boss keeps,
and finish the campaign, or see how far endless mode takes you.

Available commands:
  play     - Play directly (campaign, endless, custom level packs)
  menu     - Interactive title menu
  serve    - Start SSH server for remote play
  scores   - View recorded scores and runs
  levels   - List the level table
  config   - Print the default config YAML

Examples:
  runner play
  runner play --endless
  runner play --level 5 --difficulty hard
  runner play --levels ./mypack.yaml
  runner menu
  runner serve --ssh :2222
  runner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
