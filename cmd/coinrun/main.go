// coinrun is an endless runner for the terminal: jump over obstacles,
// collect coins and chase the best score.
//
// Usage:
//
//	coinrun play              - Play a run
//	coinrun menu              - Pick a difficulty interactively
//	coinrun scores [board]    - Show high scores for a difficulty board
//	coinrun presets           - List difficulty presets
//	coinrun simulate          - Let the autopilot play a headless run
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.coinrun/scores.db)
//	--log <path>    - Write debug logs to a file
//
// Flag defaults can also be set with COINRUN_FPS, COINRUN_DB, COINRUN_LOG
// and COINRUN_DIFFICULTY.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-runner/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogFile string

	settings config.Settings
	logFile  *os.File
)

// logger writes to the --log file, or nowhere.
var logger = log.New(io.Discard)

func main() {
	var err error
	settings, err = config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	err = rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinrun",
	Short: "Coin Runner - an endless runner in your terminal",
	Long: `Coin Runner is a terminal endless runner. Obstacles scroll in from
the right: jump over them, grab the coins floating above the ground and
keep going as the pace picks up.

Available commands:
  play      - Start a run directly
  menu      - Interactive difficulty picker
  scores    - View high scores
  presets   - List difficulty presets
  simulate  - Watch the autopilot play without a terminal UI

Examples:
  coinrun play
  coinrun play --difficulty hard
  coinrun menu
  coinrun scores easy
  coinrun simulate --seconds 60`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coinrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup fills unset flags from the environment and opens the log file.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("fps") && settings.FPS > 0 {
		flagFPS = settings.FPS
	}
	if !flags.Changed("db") && settings.DBPath != "" {
		flagDBPath = settings.DBPath
	}
	if !flags.Changed("log") {
		flagLogFile = settings.LogFile
	}

	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinrun",
		Level:           log.DebugLevel,
	})
	return nil
}

// loadRunner loads the runner config and applies a difficulty preset.
// An empty preset falls back to COINRUN_DIFFICULTY, then to the config as loaded.
func loadRunner(path, difficulty string) (config.RunnerConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadRunner(path, config.WithSkipHandler(func(skipped string, err error) {
		fmt.Fprintf(os.Stderr, "Warning: skipping config %s: %v\n", skipped, err)
		logger.Warn("skipping config file", "path", skipped, "error", err)
	}))
	if err != nil {
		return cfg, "", err
	}

	if difficulty == "" {
		difficulty = settings.Difficulty
	}
	preset := config.DifficultyNormal
	if difficulty != "" {
		preset = config.ParsePreset(difficulty)
		if preset == "" {
			return cfg, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, preset, nil
}
