package runner

import (
	"time"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Live reports whether a run is in progress (running or paused).
func (p Phase) Live() bool {
	return p == PhaseRunning || p == PhasePaused
}

// Snapshot is the read-only view handed to the renderer once per tick.
type Snapshot struct {
	Phase         Phase
	RunID         string
	Score         int
	Coins         int
	BestScore     int
	Progress      float64 // min(score/target, 1)
	Multiplier    float64
	PlayerJumping bool
	Player        core.Box
	Obstacles     []core.Box
	CoinBoxes     []core.Box
	NewBest       bool          // The finished run beat the stored best; GameOver only
	Elapsed       time.Duration // Game time of the current run
	Warning       string        // Last non-fatal integration problem, if any
}

// Summary is emitted once when a run ends.
type Summary struct {
	RunID      string
	FinalScore int
	FinalCoins int
	BestScore  int
	NewBest    bool
	Elapsed    time.Duration
}
