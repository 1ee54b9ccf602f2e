package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/platform/tui"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run straight away.

Controls:
  Space/Up/W  - Jump (also starts a run, or the next one after game over)
  Enter/R     - Start, or play again after game over
  P/Esc       - Pause and resume
  Esc         - Close after game over
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wide obstacle gaps, gentle speed-up
  normal - The tuning from the config file
  hard   - Dense obstacles, steep speed-up
  fixed  - No speed-up, for practice

Each difficulty keeps its own scoreboard and best score.

Examples:
  coinrun play
  coinrun play --difficulty hard
  coinrun play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	runnerCfg, preset, err := loadRunner(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err = tui.Run(tui.Options{
		Runner:  runnerCfg,
		Board:   string(preset),
		Store:   store,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the view to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// openStore opens the scores database. Without it the game still works,
// with best scores kept in memory for the session.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
