// Package config provides YAML-based tuning for the runner, difficulty
// presets and process settings read from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// RunnerConfig contains all tuning for the runner.
type RunnerConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Coins      CoinConfig       `yaml:"coins"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical playfield. Units are abstract pixels with
// the y axis growing downward; the ground is the bottom edge.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's box and jump arc.
type PlayerConfig struct {
	X              float64 `yaml:"x"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	JumpHeight     float64 `yaml:"jump_height"`
	JumpDurationMs int     `yaml:"jump_duration_ms"`
}

// ObstacleConfig defines obstacle size and cadence.
type ObstacleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BaseDurationMs int     `yaml:"base_duration_ms"` // On-screen time at multiplier 1.0
	BaseIntervalMs int     `yaml:"base_interval_ms"` // Spawn interval at score 0
	MinIntervalMs  int     `yaml:"min_interval_ms"`  // Floor for the spawn interval
	IntervalStepMs int     `yaml:"interval_step_ms"` // Interval reduction per point of score
}

// CoinConfig defines coin size, placement and cadence.
type CoinConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Elevation      float64 `yaml:"elevation"` // Gap between the ground and the coin's bottom edge
	BaseDurationMs int     `yaml:"base_duration_ms"`
	IntervalMs     int     `yaml:"interval_ms"`
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	CoinReward     int `yaml:"coin_reward"`
	PassReward     int `yaml:"pass_reward"`     // Awarded when an obstacle leaves the field untouched
	ProgressTarget int `yaml:"progress_target"` // Score at which the progress bar is full
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	Milestone int     `yaml:"milestone"`  // Score step that triggers a speed-up
	SpeedStep float64 `yaml:"speed_step"` // Multiplier increase per milestone
	MaxSpeed  float64 `yaml:"max_speed"`  // Multiplier ceiling
}

// TickInterval returns the duration of one simulation tick.
func (c RunnerConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// JumpDuration returns how long a jump keeps the player airborne.
func (p PlayerConfig) JumpDuration() time.Duration {
	return time.Duration(p.JumpDurationMs) * time.Millisecond
}

// BaseDuration returns the obstacle on-screen time at multiplier 1.0.
func (o ObstacleConfig) BaseDuration() time.Duration {
	return time.Duration(o.BaseDurationMs) * time.Millisecond
}

// BaseDuration returns the coin on-screen time at multiplier 1.0.
func (c CoinConfig) BaseDuration() time.Duration {
	return time.Duration(c.BaseDurationMs) * time.Millisecond
}

// Interval returns the coin spawn interval.
func (c CoinConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Validate reports every invalid setting at once.
func (c RunnerConfig) Validate() error {
	el := errors.NewErrorList()

	if c.TickRate <= 0 {
		el.Add(fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		el.Add(fmt.Errorf("field must have a positive size, got %gx%g", c.Field.Width, c.Field.Height))
	}

	el.Add(c.Player.validate(c.Field))
	el.Add(c.Obstacles.validate())
	el.Add(c.Coins.validate(c.Field))

	if c.Scoring.CoinReward < 0 || c.Scoring.PassReward < 0 {
		el.Add(fmt.Errorf("scoring rewards must not be negative"))
	}
	if c.Scoring.ProgressTarget <= 0 {
		el.Add(fmt.Errorf("scoring.progress_target must be positive"))
	}
	if c.Difficulty.Milestone <= 0 {
		el.Add(fmt.Errorf("difficulty.milestone must be positive"))
	}
	if c.Difficulty.SpeedStep < 0 {
		el.Add(fmt.Errorf("difficulty.speed_step must not be negative"))
	}
	if c.Difficulty.MaxSpeed < 1.0 {
		el.Add(fmt.Errorf("difficulty.max_speed must be at least 1.0, got %g", c.Difficulty.MaxSpeed))
	}

	return el.Err()
}

func (p PlayerConfig) validate(field FieldConfig) error {
	el := errors.NewErrorList()

	if p.Width <= 0 || p.Height <= 0 {
		el.Add(fmt.Errorf("player must have a positive size"))
	}
	if p.X < 0 || p.X+p.Width > field.Width {
		el.Add(fmt.Errorf("player.x places the player outside the field"))
	}
	if p.JumpHeight < 0 || p.JumpHeight+p.Height > field.Height {
		el.Add(fmt.Errorf("player.jump_height must keep the player inside the field"))
	}
	if p.JumpDurationMs <= 0 {
		el.Add(fmt.Errorf("player.jump_duration_ms must be positive"))
	}

	return el.Err()
}

func (o ObstacleConfig) validate() error {
	el := errors.NewErrorList()

	if o.Width <= 0 || o.Height <= 0 {
		el.Add(fmt.Errorf("obstacles must have a positive size"))
	}
	if o.BaseDurationMs <= 0 {
		el.Add(fmt.Errorf("obstacles.base_duration_ms must be positive"))
	}
	if o.MinIntervalMs <= 0 {
		el.Add(fmt.Errorf("obstacles.min_interval_ms must be positive"))
	}
	if o.BaseIntervalMs < o.MinIntervalMs {
		el.Add(fmt.Errorf("obstacles.base_interval_ms must not be below min_interval_ms"))
	}
	if o.IntervalStepMs < 0 {
		el.Add(fmt.Errorf("obstacles.interval_step_ms must not be negative"))
	}

	return el.Err()
}

func (c CoinConfig) validate(field FieldConfig) error {
	el := errors.NewErrorList()

	if c.Width <= 0 || c.Height <= 0 {
		el.Add(fmt.Errorf("coins must have a positive size"))
	}
	if c.Elevation < 0 || c.Elevation+c.Height > field.Height {
		el.Add(fmt.Errorf("coins.elevation must keep coins inside the field"))
	}
	if c.BaseDurationMs <= 0 {
		el.Add(fmt.Errorf("coins.base_duration_ms must be positive"))
	}
	if c.IntervalMs <= 0 {
		el.Add(fmt.Errorf("coins.interval_ms must be positive"))
	}

	return el.Err()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseIntervalMs = 2500
		cfg.Obstacles.MinIntervalMs = 1400
		cfg.Difficulty.SpeedStep = 0.05
		cfg.Difficulty.MaxSpeed = 2.5
	case DifficultyHard:
		cfg.Obstacles.BaseIntervalMs = 1600
		cfg.Obstacles.MinIntervalMs = 800
		cfg.Difficulty.SpeedStep = 0.2
	case DifficultyFixed:
		cfg.Difficulty.SpeedStep = 0
		cfg.Obstacles.IntervalStepMs = 0
	}
}
