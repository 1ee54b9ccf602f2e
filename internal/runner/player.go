package runner

import (
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
)

// Player is the jump state of the runner. The session owns it exclusively.
type Player struct {
	Jumping   bool
	JumpStart time.Duration // Game time the current jump began; meaningless when grounded
}

// body describes the player's fixed geometry.
type body struct {
	x, w, h    float64
	ground     float64
	jumpHeight float64
	jumpTime   time.Duration
}

func newBody(cfg config.RunnerConfig) body {
	return body{
		x:          cfg.Player.X,
		w:          cfg.Player.Width,
		h:          cfg.Player.Height,
		ground:     cfg.Field.Height,
		jumpHeight: cfg.Player.JumpHeight,
		jumpTime:   cfg.Player.JumpDuration(),
	}
}

// lift returns how far above the ground the player is at now.
// The arc is a parabola peaking at jumpHeight halfway through the jump.
func (b body) lift(p Player, now time.Duration) float64 {
	if !p.Jumping || b.jumpTime <= 0 {
		return 0
	}
	t := float64(now-p.JumpStart) / float64(b.jumpTime)
	if t <= 0 || t >= 1 {
		return 0
	}
	return 4 * b.jumpHeight * t * (1 - t)
}

// box returns the player's bounding box at now.
func (b body) box(p Player, now time.Duration) core.Box {
	grounded := core.NewBox(b.x, b.ground-b.h, b.w, b.h)
	return grounded.Translate(0, -b.lift(p, now))
}

// landed reports whether the current jump has finished at now.
func (b body) landed(p Player, now time.Duration) bool {
	return p.Jumping && now-p.JumpStart >= b.jumpTime
}
