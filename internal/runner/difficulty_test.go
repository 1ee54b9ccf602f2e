package runner

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
)

func TestDifficultyBaseline(t *testing.T) {
	d := NewDifficulty(config.DefaultRunnerConfig())

	if d.Multiplier() != 1.0 {
		t.Errorf("Multiplier() = %v, expected 1.0", d.Multiplier())
	}
	if d.ObstacleInterval() != 2000*time.Millisecond {
		t.Errorf("ObstacleInterval() = %v, expected 2s", d.ObstacleInterval())
	}
	if d.CoinInterval() != 3000*time.Millisecond {
		t.Errorf("CoinInterval() = %v, expected 3s", d.CoinInterval())
	}
	if d.ObstacleTTL() != 2*time.Second || d.CoinTTL() != 3*time.Second {
		t.Errorf("TTLs = %v, %v, expected 2s, 3s", d.ObstacleTTL(), d.CoinTTL())
	}
}

func TestDifficultyFirstMilestone(t *testing.T) {
	d := NewDifficulty(config.DefaultRunnerConfig())

	for score := 1; score < 5; score++ {
		if d.Observe(score) {
			t.Errorf("Observe(%d) = true before the first milestone", score)
		}
	}

	if !d.Observe(5) {
		t.Fatal("Observe(5) = false, expected true")
	}
	if math.Abs(d.Multiplier()-1.1) > 1e-9 {
		t.Errorf("Multiplier() = %v, expected 1.1", d.Multiplier())
	}
	if d.ObstacleInterval() != 1925*time.Millisecond {
		t.Errorf("ObstacleInterval() = %v, expected 1925ms", d.ObstacleInterval())
	}
}

func TestDifficultyMilestoneAppliedOnce(t *testing.T) {
	d := NewDifficulty(config.DefaultRunnerConfig())
	d.Observe(5)

	for _, score := range []int{5, 6, 7, 5} {
		if d.Observe(score) {
			t.Errorf("Observe(%d) re-applied milestone", score)
		}
	}
	if math.Abs(d.Multiplier()-1.1) > 1e-9 {
		t.Errorf("Multiplier() = %v, expected 1.1", d.Multiplier())
	}
}

func TestDifficultySkippedMilestonesCount(t *testing.T) {
	d := NewDifficulty(config.DefaultRunnerConfig())

	// A coin can jump the score from 4 to 6 and from 9 to 11.
	d.Observe(6)
	d.Observe(11)

	if math.Abs(d.Multiplier()-1.2) > 1e-9 {
		t.Errorf("Multiplier() = %v, expected 1.2", d.Multiplier())
	}
	if d.ObstacleInterval() != 1835*time.Millisecond {
		t.Errorf("ObstacleInterval() = %v, expected 1835ms", d.ObstacleInterval())
	}
}

func TestDifficultyCaps(t *testing.T) {
	d := NewDifficulty(config.DefaultRunnerConfig())

	for score := 1; score <= 500; score++ {
		d.Observe(score)
		if d.Multiplier() > 4.0 {
			t.Fatalf("Multiplier() = %v at score %d, exceeds max", d.Multiplier(), score)
		}
		if d.ObstacleInterval() < time.Second {
			t.Fatalf("ObstacleInterval() = %v at score %d, below min", d.ObstacleInterval(), score)
		}
	}

	if d.Multiplier() != 4.0 {
		t.Errorf("Multiplier() = %v, expected 4.0", d.Multiplier())
	}
	if d.ObstacleInterval() != time.Second {
		t.Errorf("ObstacleInterval() = %v, expected 1s", d.ObstacleInterval())
	}
	if d.ObstacleTTL() != 500*time.Millisecond {
		t.Errorf("ObstacleTTL() = %v, expected 500ms", d.ObstacleTTL())
	}
	if d.CoinInterval() != 3*time.Second {
		t.Errorf("CoinInterval() = %v, expected unchanged 3s", d.CoinInterval())
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficulty(config.DefaultRunnerConfig())
	d.Observe(20)

	d.Reset()

	if d.Multiplier() != 1.0 || d.ObstacleInterval() != 2*time.Second {
		t.Errorf("after Reset: multiplier %v, interval %v", d.Multiplier(), d.ObstacleInterval())
	}
	if !d.Observe(5) {
		t.Error("Observe(5) after Reset = false, expected milestone to apply again")
	}
}

func TestDifficultyObstacleIntervalFor(t *testing.T) {
	d := NewDifficulty(config.DefaultRunnerConfig())

	tests := []struct {
		score    int
		expected time.Duration
	}{
		{0, 2000 * time.Millisecond},
		{5, 1925 * time.Millisecond},
		{10, 1850 * time.Millisecond},
		{66, 1010 * time.Millisecond},
		{67, 1000 * time.Millisecond},
		{1000, 1000 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := d.ObstacleIntervalFor(tt.score); got != tt.expected {
			t.Errorf("ObstacleIntervalFor(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyFixedPreset(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	d := NewDifficulty(cfg)

	d.Observe(50)

	if d.Multiplier() != 1.0 {
		t.Errorf("Multiplier() = %v, expected 1.0", d.Multiplier())
	}
	if d.ObstacleInterval() != 2*time.Second {
		t.Errorf("ObstacleInterval() = %v, expected 2s", d.ObstacleInterval())
	}
}
