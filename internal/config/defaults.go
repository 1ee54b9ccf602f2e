package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		TickRate: 60,
		Field: FieldConfig{
			Width:  800,
			Height: 200,
		},
		Player: PlayerConfig{
			X:              40,
			Width:          48,
			Height:         50,
			JumpHeight:     110,
			JumpDurationMs: 600,
		},
		Obstacles: ObstacleConfig{
			Width:          30,
			Height:         40,
			BaseDurationMs: 2000,
			BaseIntervalMs: 2000,
			MinIntervalMs:  1000,
			IntervalStepMs: 15,
		},
		Coins: CoinConfig{
			Width:          30,
			Height:         30,
			Elevation:      70,
			BaseDurationMs: 3000,
			IntervalMs:     3000,
		},
		Scoring: ScoringConfig{
			CoinReward:     2,
			PassReward:     1,
			ProgressTarget: 50,
		},
		Difficulty: DifficultyConfig{
			Milestone: 5,
			SpeedStep: 0.1,
			MaxSpeed:  4.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
