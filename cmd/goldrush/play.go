package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/terminal-arcade/goldrush/internal/config"
	"github.com/terminal-arcade/goldrush/internal/core"
	"github.com/terminal-arcade/goldrush/internal/game"
	"github.com/terminal-arcade/goldrush/internal/platform/tui"
	"github.com/terminal-arcade/goldrush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a round of Gold Rush.

Controls:
  A/D, Left/Right  - Run
  W/S, Up/Down     - Climb ladders
  Space            - Jump
  Q / E            - Dig below-left / below-right
  P                - Pause
  R                - Restart (after game over)
  Esc/Ctrl+C       - Quit

Difficulty presets:
  easy   - 5 lives, 2 guards, slow refill
  normal - 3 lives, 3 guards
  hard   - 2 lives, 4 fast guards, quick refill

Examples:
  goldrush play
  goldrush play --difficulty easy
  goldrush play --config ./my-goldrush.yaml
  goldrush play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug log to file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	// The TUI owns the terminal, so the debug log goes to a file or nowhere.
	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, ferr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", ferr)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game.New(cfg, logger), store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
