package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagScoresRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded scores and runs",
	Long: `Display the top scores and most recent runs.

With no argument both modes are shown. Pass "campaign" or "endless"
to narrow to one mode.

Examples:
  runner scores
  runner scores campaign
  runner scores endless --recent 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 5, "How many recent runs to show per mode")
}

// scoreModeIDs maps the CLI mode argument to registry game ids.
func scoreModeIDs(arg string) ([]string, error) {
	switch arg {
	case "":
		return []string{"runner", "runner_endless"}, nil
	case "campaign":
		return []string{"runner"}, nil
	case "endless":
		return []string{"runner_endless"}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want campaign or endless)", arg)
	}
}

func modeTitle(gameID string) string {
	if gameID == "runner_endless" {
		return "Endless"
	}
	return "Campaign"
}

func runScores(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}

	gameIDs, err := scoreModeIDs(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for i, gameID := range gameIDs {
		if i > 0 {
			fmt.Println()
		}
		printModeScores(store, gameID)
	}

	if arg == "" {
		printOverallStats(store)
	}
}

// printOverallStats sums recorded games across every mode.
func printOverallStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil || len(stats) == 0 {
		return
	}

	total := 0
	var last time.Time
	for _, s := range stats {
		total += s.GamesCount
		if s.LastPlayed.After(last) {
			last = s.LastPlayed
		}
	}

	fmt.Println()
	fmt.Printf("Total games recorded: %d", total)
	if !last.IsZero() {
		fmt.Printf(" (last played %s)", last.Format("2006-01-02 15:04"))
	}
	fmt.Println()
}

func printModeScores(store *storage.Store, gameID string) {
	fmt.Printf("=== %s ===\n\n", modeTitle(gameID))

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if best, err := store.BestRun(gameID); err == nil && best != nil {
		who := best.Player
		if who == "" {
			who = "anonymous"
		}
		outcome := "crashed"
		if best.Victory {
			outcome = "won"
		}
		fmt.Println()
		fmt.Printf("Best run: %d by %s (level %d, %s)\n", best.Score, who, best.LevelReached+1, outcome)
	}

	if victories, err := store.VictoryCount(gameID); err == nil && victories > 0 {
		fmt.Printf("Campaign victories: %d\n", victories)
	}

	runs, err := store.RecentRuns(gameID, flagScoresRecent)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-10s  %-12s  %-5s  %-8s  %s\n", "Score", "Player", "Lvl", "Result", "Date")
	for _, r := range runs {
		who := r.Player
		if who == "" {
			who = "-"
		}
		outcome := "crash"
		if r.Victory {
			outcome = "victory"
		}
		fmt.Printf("  %-10d  %-12s  %-5d  %-8s  %s\n",
			r.Score, who, r.LevelReached+1, outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
