package runner

// BestScoreStore persists the best score across sessions.
// Get is called once per run start; Set only when a run beats the stored value.
type BestScoreStore interface {
	Get() (int, error)
	Set(score int) error
}

// MemoryStore is an in-process BestScoreStore.
type MemoryStore struct {
	best int
	sets int // Set calls, for tests
}

// NewMemoryStore creates a store holding best.
func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

// Get returns the stored best score.
func (m *MemoryStore) Get() (int, error) {
	return m.best, nil
}

// Set replaces the stored best score.
func (m *MemoryStore) Set(score int) error {
	m.best = score
	m.sets++
	return nil
}

var _ BestScoreStore = (*MemoryStore)(nil)
