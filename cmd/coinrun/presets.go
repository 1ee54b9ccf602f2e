package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/platform/tui"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows every difficulty preset with its tuning and the best score on its board.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) {
	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()

	// Best scores are optional here; a missing database just hides them.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("no scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	p.Fprintln(out, "Difficulty presets:")
	p.Fprintln(out)
	p.Fprintf(out, "  %-7s  %-9s  %-7s  %-6s  %-6s  %s\n", "Name", "Interval", "Step", "Max", "Best", "Description")
	p.Fprintf(out, "  %-7s  %-9s  %-7s  %-6s  %-6s  %s\n", "----", "--------", "----", "---", "----", "-----------")

	for _, item := range tui.DefaultMenuItems() {
		cfg := config.DefaultRunnerConfig()
		config.ApplyPreset(&cfg, item.Preset)

		best := "-"
		if store != nil {
			if score, err := store.BestScore(string(item.Preset)); err == nil && score > 0 {
				best = p.Sprintf("%d", score)
			}
		}

		p.Fprintf(out, "  %-7s  %-9s  %-7s  %-6s  %-6s  %s\n",
			item.Preset,
			p.Sprintf("%dms", cfg.Obstacles.BaseIntervalMs),
			p.Sprintf("+%.2f", cfg.Difficulty.SpeedStep),
			p.Sprintf("x%.1f", cfg.Difficulty.MaxSpeed),
			best,
			item.Description,
		)
	}

	p.Fprintln(out)
	p.Fprintln(out, "Run 'coinrun play --difficulty <name>' to play a preset.")
}
