package runner

import (
	"time"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// Kind distinguishes the two entity types.
type Kind int

const (
	KindObstacle Kind = iota
	KindCoin
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Size is the width, height and vertical placement of a spawned entity.
type Size struct {
	W, H float64
	Top  float64 // Top edge in field units
}

// Entity is an obstacle or coin travelling right to left across the field.
// Its position is never stored: it is derived from elapsed game time, so
// rendering and collision always agree.
type Entity struct {
	ID        uint64
	Kind      Kind
	SpawnTime time.Duration
	TTL       time.Duration // Fixed at spawn from the multiplier in effect then
	Size      Size
}

// Expired reports whether the entity's lifetime has elapsed at now.
func (e Entity) Expired(now time.Duration) bool {
	return now-e.SpawnTime >= e.TTL
}

// Progress returns the fraction of the lifetime elapsed at now, in [0, 1].
func (e Entity) Progress(now time.Duration) float64 {
	if e.TTL <= 0 {
		return 1
	}
	return core.ClampF(float64(now-e.SpawnTime)/float64(e.TTL), 0, 1)
}

// Box returns the bounding box at now. The entity enters with its left edge on
// the right field boundary and leaves fully past x=0 exactly when its TTL ends.
func (e Entity) Box(now time.Duration, fieldWidth float64) core.Box {
	travel := fieldWidth + e.Size.W
	x := fieldWidth - travel*e.Progress(now)
	return core.NewBox(x, e.Size.Top, e.Size.W, e.Size.H)
}

// Registry owns the live obstacles and coins of one session.
// Entities are kept in id order, which is also spawn order.
type Registry struct {
	obstacleSize Size
	coinSize     Size
	nextID       uint64
	obstacles    []Entity
	coins        []Entity
}

// NewRegistry creates an empty registry that spawns entities of the given sizes.
func NewRegistry(obstacle, coin Size) *Registry {
	return &Registry{
		obstacleSize: obstacle,
		coinSize:     coin,
		nextID:       1,
		obstacles:    make([]Entity, 0, 8),
		coins:        make([]Entity, 0, 8),
	}
}

// SpawnObstacle admits a new obstacle and returns it.
func (r *Registry) SpawnObstacle(now, ttl time.Duration) Entity {
	e := r.newEntity(KindObstacle, now, ttl, r.obstacleSize)
	r.obstacles = append(r.obstacles, e)
	return e
}

// SpawnCoin admits a new coin and returns it.
func (r *Registry) SpawnCoin(now, ttl time.Duration) Entity {
	e := r.newEntity(KindCoin, now, ttl, r.coinSize)
	r.coins = append(r.coins, e)
	return e
}

func (r *Registry) newEntity(kind Kind, now, ttl time.Duration, size Size) Entity {
	e := Entity{
		ID:        r.nextID,
		Kind:      kind,
		SpawnTime: now,
		TTL:       ttl,
		Size:      size,
	}
	r.nextID++
	return e
}

// RemoveExpired drops every entity whose TTL has elapsed at now and returns
// them, obstacles first, each group in id order.
func (r *Registry) RemoveExpired(now time.Duration) []Entity {
	var expired []Entity
	r.obstacles, expired = partitionExpired(r.obstacles, now, expired)
	r.coins, expired = partitionExpired(r.coins, now, expired)
	return expired
}

func partitionExpired(list []Entity, now time.Duration, expired []Entity) ([]Entity, []Entity) {
	live := list[:0]
	for _, e := range list {
		if e.Expired(now) {
			expired = append(expired, e)
			continue
		}
		live = append(live, e)
	}
	return live, expired
}

// Remove deletes the entity with the given id. Unknown ids are ignored, so
// expiry and collision may both try to remove the same entity.
func (r *Registry) Remove(id uint64) {
	r.obstacles = removeID(r.obstacles, id)
	r.coins = removeID(r.coins, id)
}

func removeID(list []Entity, id uint64) []Entity {
	for i, e := range list {
		if e.ID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// ActiveObstacles returns the obstacles still alive at now.
func (r *Registry) ActiveObstacles(now time.Duration) []Entity {
	return active(r.obstacles, now)
}

// ActiveCoins returns the coins still alive at now.
func (r *Registry) ActiveCoins(now time.Duration) []Entity {
	return active(r.coins, now)
}

func active(list []Entity, now time.Duration) []Entity {
	out := make([]Entity, 0, len(list))
	for _, e := range list {
		if !e.Expired(now) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of stored entities, expired or not.
func (r *Registry) Len() int {
	return len(r.obstacles) + len(r.coins)
}

// Clear removes every entity and restarts id allocation.
func (r *Registry) Clear() {
	r.obstacles = r.obstacles[:0]
	r.coins = r.coins[:0]
	r.nextID = 1
}
