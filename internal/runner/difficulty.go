package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
)

// Difficulty maps the cumulative score to a speed multiplier and spawn cadence.
//
// Two knobs move independently: the multiplier shortens entity TTLs, while the
// obstacle spawn interval shrinks with the raw score. Both only change when a
// milestone is crossed.
type Difficulty struct {
	cfg       config.DifficultyConfig
	obstacles config.ObstacleConfig
	coins     config.CoinConfig

	milestones       int // Milestones already applied this run
	multiplier       float64
	obstacleInterval time.Duration
}

// NewDifficulty creates a controller at baseline.
func NewDifficulty(cfg config.RunnerConfig) *Difficulty {
	d := &Difficulty{
		cfg:       cfg.Difficulty,
		obstacles: cfg.Obstacles,
		coins:     cfg.Coins,
	}
	d.Reset()
	return d
}

// Reset returns to multiplier 1.0 and the score-0 obstacle interval.
func (d *Difficulty) Reset() {
	d.milestones = 0
	d.multiplier = 1.0
	d.obstacleInterval = d.ObstacleIntervalFor(0)
}

// Observe applies every milestone reached by score that has not been applied
// yet. It reports whether anything changed; repeated calls at the same score
// are no-ops.
func (d *Difficulty) Observe(score int) bool {
	if d.cfg.Milestone <= 0 || score <= 0 {
		return false
	}
	reached := score / d.cfg.Milestone
	if reached <= d.milestones {
		return false
	}
	d.milestones = reached
	d.multiplier = math.Min(d.cfg.MaxSpeed, 1.0+float64(d.milestones)*d.cfg.SpeedStep)
	d.obstacleInterval = d.ObstacleIntervalFor(score)
	return true
}

// Multiplier returns the current speed multiplier (always >= 1.0).
func (d *Difficulty) Multiplier() float64 {
	return d.multiplier
}

// ObstacleInterval returns the spawn interval set at the last milestone.
func (d *Difficulty) ObstacleInterval() time.Duration {
	return d.obstacleInterval
}

// ObstacleIntervalFor returns max(min, base - score*step).
func (d *Difficulty) ObstacleIntervalFor(score int) time.Duration {
	ms := max(d.obstacles.MinIntervalMs, d.obstacles.BaseIntervalMs-score*d.obstacles.IntervalStepMs)
	return time.Duration(ms) * time.Millisecond
}

// CoinInterval returns the coin spawn interval. It does not follow the score.
func (d *Difficulty) CoinInterval() time.Duration {
	return d.coins.Interval()
}

// ObstacleTTL returns how long an obstacle spawned now stays on the field.
func (d *Difficulty) ObstacleTTL() time.Duration {
	return scaleDuration(d.obstacles.BaseDuration(), d.multiplier)
}

// CoinTTL returns how long a coin spawned now stays on the field.
func (d *Difficulty) CoinTTL() time.Duration {
	return scaleDuration(d.coins.BaseDuration(), d.multiplier)
}

func scaleDuration(base time.Duration, multiplier float64) time.Duration {
	if multiplier < 1.0 {
		multiplier = 1.0
	}
	return time.Duration(float64(base) / multiplier)
}
