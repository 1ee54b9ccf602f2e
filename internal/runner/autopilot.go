package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
)

// Autopilot plays a session without a human: it jumps so the player is high
// enough by the time the nearest obstacle reaches it.
type Autopilot struct {
	lead       time.Duration // Jump when the next obstacle is this close in time
	fieldWidth float64
	playerX    float64
	playerW    float64
}

// NewAutopilot derives the jump timing from the player's arc and the obstacle height.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	jump := cfg.Player.JumpDuration()

	// Fraction of the jump after which the lift exceeds the obstacle height:
	// 4h·t(1-t) = H  =>  t = (1 - sqrt(1 - H/h)) / 2
	// Aim one unit above the obstacle.
	clearAt := 0.5
	if h, target := cfg.Player.JumpHeight, cfg.Obstacles.Height+1; h > target {
		clearAt = (1 - math.Sqrt(1-target/h)) / 2
	}

	return &Autopilot{
		lead:       time.Duration(clearAt*float64(jump)) + cfg.TickInterval(),
		fieldWidth: cfg.Field.Width,
		playerX:    cfg.Player.X,
		playerW:    cfg.Player.Width,
	}
}

// Next returns the intents for the coming tick.
func (a *Autopilot) Next(s *Session) core.InputFrame {
	frame := core.NewInputFrame()

	switch s.Phase() {
	case PhaseIdle:
		frame.Set(core.ActionStart)
		return frame
	case PhaseRunning:
	default:
		return frame
	}

	if s.player.Jumping {
		return frame
	}

	now := s.Now()
	playerRight := a.playerX + a.playerW
	for _, e := range s.entities.ActiveObstacles(now) {
		box := e.Box(now, a.fieldWidth)
		if box.Left < playerRight {
			continue
		}
		if a.timeToReach(e, box, playerRight) <= a.lead {
			frame.Set(core.ActionJump)
			break
		}
	}

	return frame
}

// timeToReach returns how long until the obstacle's left edge reaches x.
func (a *Autopilot) timeToReach(e Entity, box core.Box, x float64) time.Duration {
	if e.TTL <= 0 {
		return 0
	}
	speed := (a.fieldWidth + e.Size.W) / float64(e.TTL) // units per nanosecond
	return time.Duration((box.Left - x) / speed)
}
