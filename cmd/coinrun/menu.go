package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start Coin Runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a run.
Closing a run brings you back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected difficulty
  Tab          - Scoreboard
  Q            - Quit

Examples:
  coinrun menu
  coinrun menu --fps 30
  coinrun menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	board := string(config.DifficultyNormal)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			if store == nil {
				fmt.Fprintln(os.Stderr, "Scoreboard unavailable: no scores database")
				continue
			}
			goBack, sbErr := tui.RunScoreboard(store, board, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return sbErr
		}

		runnerCfg, preset, err := loadRunner(flagConfig, string(menuResult.Preset))
		if err != nil {
			return err
		}
		board = string(preset)

		err = tui.Run(tui.Options{
			Runner:  runnerCfg,
			Board:   board,
			Store:   store,
			Runtime: cfg,
			Logger:  logger,
		})
		if err != nil {
			logger.Error("run failed", "board", board, "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
