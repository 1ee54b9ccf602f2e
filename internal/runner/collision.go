package runner

import (
	"slices"
	"time"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// Collider is an entity id paired with its box at the moment of evaluation.
type Collider struct {
	ID  uint64
	Box core.Box
}

// Result is the outcome of one collision pass.
type Result struct {
	Collided         bool
	ObstacleID       uint64   // Lowest-id obstacle hit; zero when Collided is false
	CollectedCoinIDs []uint64 // Every coin touched, ascending
}

// Evaluate tests the player box against obstacles and coins.
// The result depends only on the boxes, never on slice order.
func Evaluate(player core.Box, obstacles, coins []Collider) Result {
	var res Result

	for _, o := range obstacles {
		if !player.Intersects(o.Box) {
			continue
		}
		if !res.Collided || o.ID < res.ObstacleID {
			res.Collided = true
			res.ObstacleID = o.ID
		}
	}

	for _, c := range coins {
		if player.Intersects(c.Box) {
			res.CollectedCoinIDs = append(res.CollectedCoinIDs, c.ID)
		}
	}
	slices.Sort(res.CollectedCoinIDs)

	return res
}

// Colliders converts entities to colliders at now.
func Colliders(entities []Entity, now time.Duration, fieldWidth float64) []Collider {
	out := make([]Collider, len(entities))
	for i, e := range entities {
		out[i] = Collider{ID: e.ID, Box: e.Box(now, fieldWidth)}
	}
	return out
}
