package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

var (
	flagLimit  int
	flagReset  bool
	flagRecent bool
	flagAll    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a difficulty board",
	Long: `Display the top scores recorded on a board. Every difficulty preset
has its own board; without an argument the normal board is shown.

Examples:
  coinrun scores
  coinrun scores hard --limit 20
  coinrun scores --recent
  coinrun scores --all
  coinrun scores easy --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete every run and the best score of the board")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Summarize every board that has runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	board := string(config.DifficultyNormal)
	if len(args) == 1 {
		board = args[0]
	}
	if config.ParsePreset(board) == "" {
		return fmt.Errorf("unknown board %q (want easy, normal, hard or fixed)", board)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ClearScores(board); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		p.Fprintf(out, "Cleared the %s board.\n", board)
		return nil
	}

	if flagAll {
		return printBoards(p, out, store)
	}

	title := "High Scores"
	fetch := store.TopScores
	if flagRecent {
		title = "Recent Runs"
		fetch = store.RecentRuns
	}

	runs, err := fetch(board, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	p.Fprintf(out, "%s - %s\n\n", title, board)

	if len(runs) == 0 {
		p.Fprintln(out, "No scores recorded yet.")
		p.Fprintln(out)
		p.Fprintf(out, "Play 'coinrun play --difficulty %s' to set the first high score!\n", board)
		return nil
	}

	p.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Coins", "Time", "Date")
	p.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		p.Fprintf(out, "  %-4d  %-8d  %-6d  %-8s  %s\n",
			i+1, r.Score, r.Coins, formatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	p.Fprintln(out)
	if high, err := store.HighScore(board); err == nil {
		p.Fprintf(out, "Best: %d\n", high)
	}
	if stats, err := store.GetBoardStats(board); err == nil {
		p.Fprintf(out, "Runs: %d   Average: %.1f   Coins: %d\n",
			stats.RunsCount, stats.AvgScore, stats.TotalCoins)
	}
	return nil
}

// printBoards prints one stats line per board with recorded runs.
func printBoards(p *message.Printer, out io.Writer, store *storage.Store) error {
	boards, err := store.Boards()
	if err != nil {
		return fmt.Errorf("listing boards: %w", err)
	}
	if len(boards) == 0 {
		p.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	p.Fprintf(out, "  %-7s  %-6s  %-8s  %-8s  %-6s  %s\n", "Board", "Runs", "Best", "Average", "Coins", "Last played")
	p.Fprintf(out, "  %-7s  %-6s  %-8s  %-8s  %-6s  %s\n", "-----", "----", "----", "-------", "-----", "-----------")
	for _, board := range boards {
		stats, err := store.GetBoardStats(board)
		if err != nil {
			return fmt.Errorf("board %s: %w", board, err)
		}
		p.Fprintf(out, "  %-7s  %-6d  %-8d  %-8.1f  %-6d  %s\n",
			board, stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalCoins,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
