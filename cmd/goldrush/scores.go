package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/terminal-arcade/goldrush/internal/platform/tui"
	"github.com/terminal-arcade/goldrush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the best recorded runs and overall statistics.

On a terminal this opens an interactive scoreboard; use --plain for a
scriptable listing.

Examples:
  goldrush scores
  goldrush scores --plain --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show in plain output")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain listing instead of the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Interactive scoreboard when attached to a terminal; GetSize fails
	// on pipes and redirects, which fall through to the plain listing.
	if !flagScoresPlain {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			if sbErr := tui.RunScoreboard(store, w, h); sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
				os.Exit(1)
			}
			return
		}
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Gold Rush - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'goldrush play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Gold", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "----")

	for i, r := range runs {
		gold := fmt.Sprintf("%d/%d", r.Gold, r.GoldTotal)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %-8s  %s\n", i+1, r.Score, gold, r.Outcome, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.0f\n",
		stats.Runs, stats.Wins, stats.HighScore, stats.AvgScore)
}
