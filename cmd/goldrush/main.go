// goldrush is a terminal rendition of the classic dig-and-collect
// platformer: grab every gold bag, dodge the guards, and escape up the
// exit ladder.
//
// Usage:
//
//	goldrush play            - Play in the current terminal
//	goldrush serve           - Start SSH server for remote play
//	goldrush scores          - Show best runs
//	goldrush config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.goldrush/runs.db)
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
	Use:   "goldrush",
	Short: "Gold Rush - Dig, collect, escape",
	Long: `Gold Rush is a terminal platformer. Guide the runner through a maze of
bricks, ladders, and ropes, dig holes to trap the guards, collect every
gold bag, and climb the exit ladder that appears at the top.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best runs and statistics
  config   - Print the default configuration

Examples:
  goldrush play
  goldrush play --difficulty hard
  goldrush serve --ssh :2222
  goldrush scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.goldrush/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
