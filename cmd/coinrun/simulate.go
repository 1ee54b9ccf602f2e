package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/coin-runner/internal/runner"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

var (
	flagSeconds int
	flagSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play a headless run",
	Long: `Runs the game without a terminal UI, driven by the autopilot, as fast
as the machine allows. Game time advances one tick per step, so the result
is the same on every machine for a given config.

The run stops at game over or after --seconds of game time.

Examples:
  coinrun simulate
  coinrun simulate --difficulty hard --seconds 120
  coinrun simulate --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().IntVar(&flagSeconds, "seconds", 60, "Game time limit in seconds")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run on the difficulty's board")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	runnerCfg, preset, err := loadRunner(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	board := string(preset)

	var summary runner.Summary
	opts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithGameOverHandler(func(sum runner.Summary) { summary = sum }),
	}

	var best runner.BestScoreStore = runner.NewMemoryStore(0)
	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()

		best = store.BestScores(board)
		opts = append(opts, runner.WithGameOverHandler(func(sum runner.Summary) {
			summary = sum
			if _, err := store.SaveSummary(board, sum); err != nil {
				logger.Warn("could not save run", "run", sum.RunID, "error", err)
			}
		}))
	}

	session := runner.NewSession(runnerCfg, best, opts...)
	pilot := runner.NewAutopilot(runnerCfg)

	ticks := flagSeconds * runnerCfg.TickRate
	started := time.Now()
	for range ticks {
		session.Apply(pilot.Next(session))
		session.Tick()
		if session.Phase() == runner.PhaseGameOver {
			break
		}
	}
	survived := session.Phase() != runner.PhaseGameOver
	session.RequestClose()

	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()

	outcome := "crashed"
	if survived {
		outcome = "reached the time limit"
	}
	p.Fprintf(out, "Autopilot on %s %s after %s of game time.\n", board, outcome, formatDuration(summary.Elapsed))
	p.Fprintf(out, "  Score: %d\n", summary.FinalScore)
	p.Fprintf(out, "  Coins: %d\n", summary.FinalCoins)
	if summary.NewBest {
		p.Fprintf(out, "  Best:  %d (new)\n", summary.BestScore)
	} else {
		p.Fprintf(out, "  Best:  %d\n", summary.BestScore)
	}
	p.Fprintf(out, "  Simulated in %s\n", time.Since(started).Round(time.Millisecond))
	return nil
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
