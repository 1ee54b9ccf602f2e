package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
)

// Session is one game view: it owns the clock, timers, entities and counters
// and moves through Idle -> Running <-> Paused -> GameOver.
//
// Redundant intents (jumping mid-air, pausing while idle, ...) are silent
// no-ops. No method returns an error.
type Session struct {
	cfg        config.RunnerConfig
	store      BestScoreStore
	logger     *log.Logger
	onGameOver func(Summary)
	newRunID   func() string

	phase         Phase
	clock         *Clock
	obstacleTimer *Timer
	coinTimer     *Timer
	entities      *Registry
	difficulty    *Difficulty
	body          body
	player        Player

	runID    string
	score    int
	coins    int
	best     int
	progress float64
	summary  *Summary
	warning  string
	fallback bool // No store was given; best scores live in memory only
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for phase changes and store warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGameOverHandler registers a callback invoked once per finished run.
func WithGameOverHandler(fn func(Summary)) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// WithRunIDs replaces the run id generator.
func WithRunIDs(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newRunID = fn
		}
	}
}

// NewSession creates an idle session. A nil store falls back to an in-memory
// best score and records a warning.
func NewSession(cfg config.RunnerConfig, store BestScoreStore, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		store:      store,
		logger:     log.New(io.Discard),
		newRunID:   uuid.NewString,
		phase:      PhaseIdle,
		clock:      NewClock(cfg.TickInterval()),
		difficulty: NewDifficulty(cfg),
		body:       newBody(cfg),
		entities: NewRegistry(
			Size{W: cfg.Obstacles.Width, H: cfg.Obstacles.Height, Top: cfg.Field.Height - cfg.Obstacles.Height},
			Size{W: cfg.Coins.Width, H: cfg.Coins.Height, Top: cfg.Field.Height - cfg.Coins.Elevation - cfg.Coins.Height},
		),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = NewMemoryStore(0)
		s.fallback = true
		s.warn("best score store unavailable, scores will not persist", nil)
	}

	return s
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Apply dispatches every intent in the frame, in arrival order.
func (s *Session) Apply(frame core.InputFrame) {
	for _, a := range frame.Actions() {
		switch a {
		case core.ActionJump:
			s.RequestJump()
		case core.ActionPause:
			s.RequestPauseToggle()
		case core.ActionStart:
			s.RequestStart()
		case core.ActionClose:
			s.RequestClose()
		}
	}
}

// RequestStart starts a run from Idle, or restarts after game over.
func (s *Session) RequestStart() {
	switch s.phase {
	case PhaseIdle:
		s.start()
	case PhaseGameOver:
		s.teardown()
		s.start()
	}
}

// RequestJump jumps when running and grounded. From Idle it starts a run,
// and after game over it starts the next one.
func (s *Session) RequestJump() {
	switch s.phase {
	case PhaseIdle:
		s.start()
	case PhaseGameOver:
		s.teardown()
		s.start()
	case PhaseRunning:
		if s.player.Jumping {
			return
		}
		s.player = Player{Jumping: true, JumpStart: s.clock.Now()}
	}
}

// RequestPauseToggle flips between Running and Paused.
func (s *Session) RequestPauseToggle() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
		s.logger.Debug("paused", "run", s.runID, "at", s.clock.Now())
	case PhasePaused:
		s.phase = PhaseRunning
		s.logger.Debug("resumed", "run", s.runID, "at", s.clock.Now())
	}
}

// RequestClose tears the session down to Idle. A live run is ended first so
// its best score is still recorded. Closing an idle session does nothing.
func (s *Session) RequestClose() {
	switch s.phase {
	case PhaseRunning, PhasePaused:
		s.endGame(s.clock.Now())
		s.teardown()
	case PhaseGameOver:
		s.teardown()
	}
}

// Tick advances the game by one fixed step: the game clock moves, due spawn
// timers fire, then Update runs. Outside Running a tick does nothing.
func (s *Session) Tick() {
	if s.phase != PhaseRunning {
		return
	}
	now := s.clock.Advance()
	s.clock.Fire()
	s.Update(now)
}

// Update evaluates the world at game time now: expiry, obstacle collision,
// coin collection, then difficulty. It keeps no clock of its own.
func (s *Session) Update(now time.Duration) {
	if s.phase != PhaseRunning {
		return
	}

	if s.body.landed(s.player, now) {
		s.player = Player{}
	}

	prev := s.score
	for _, e := range s.entities.RemoveExpired(now) {
		if e.Kind == KindObstacle {
			s.score += s.cfg.Scoring.PassReward
		}
	}

	res := Evaluate(
		s.body.box(s.player, now),
		Colliders(s.entities.ActiveObstacles(now), now, s.cfg.Field.Width),
		Colliders(s.entities.ActiveCoins(now), now, s.cfg.Field.Width),
	)
	if res.Collided {
		s.logger.Debug("collision", "run", s.runID, "obstacle", res.ObstacleID, "at", now)
		s.endGame(now)
		return
	}

	for _, id := range res.CollectedCoinIDs {
		s.entities.Remove(id)
		s.coins++
		s.score += s.cfg.Scoring.CoinReward
	}

	s.progress = min(float64(s.score)/float64(s.cfg.Scoring.ProgressTarget), 1.0)

	if s.score != prev && s.difficulty.Observe(s.score) {
		interval := s.difficulty.ObstacleInterval()
		if s.obstacleTimer != nil {
			s.obstacleTimer.Reschedule(now, interval)
		}
		s.logger.Debug("speed up",
			"run", s.runID,
			"score", s.score,
			"multiplier", s.difficulty.Multiplier(),
			"obstacle_interval", interval,
		)
	}
}

// start resets every counter and arms the spawn timers.
func (s *Session) start() {
	s.clock.Reset()
	s.entities.Clear()
	s.difficulty.Reset()
	s.player = Player{}
	s.score = 0
	s.coins = 0
	s.progress = 0
	s.summary = nil
	s.runID = s.newRunID()

	if best, err := s.store.Get(); err != nil {
		s.warn("could not read best score", err)
	} else {
		s.best = best
		if !s.fallback {
			s.warning = ""
		}
	}

	s.obstacleTimer = s.clock.Every(s.difficulty.ObstacleInterval(), s.spawnObstacle)
	s.coinTimer = s.clock.Every(s.difficulty.CoinInterval(), s.spawnCoin)

	s.phase = PhaseRunning
	s.logger.Debug("run started", "run", s.runID, "best", s.best)
}

func (s *Session) spawnObstacle(now time.Duration) {
	if s.phase != PhaseRunning {
		return
	}
	s.entities.SpawnObstacle(now, s.difficulty.ObstacleTTL())
}

func (s *Session) spawnCoin(now time.Duration) {
	if s.phase != PhaseRunning {
		return
	}
	s.entities.SpawnCoin(now, s.difficulty.CoinTTL())
}

// endGame cancels every timer, settles the best score and emits the summary.
func (s *Session) endGame(now time.Duration) {
	onField := s.entities.Len()
	s.clock.Stop()
	s.obstacleTimer = nil
	s.coinTimer = nil
	s.entities.Clear()
	s.player = Player{}

	newBest := s.score > s.best
	if newBest {
		s.best = s.score
		if err := s.store.Set(s.score); err != nil {
			s.warn("could not save best score", err)
		}
	}

	summary := Summary{
		RunID:      s.runID,
		FinalScore: s.score,
		FinalCoins: s.coins,
		BestScore:  s.best,
		NewBest:    newBest,
		Elapsed:    now,
	}
	s.summary = &summary
	s.phase = PhaseGameOver

	s.logger.Info("run over",
		"run", s.runID,
		"score", s.score,
		"coins", s.coins,
		"best", s.best,
		"elapsed", now,
		"on_field", onField,
	)
	if s.onGameOver != nil {
		s.onGameOver(summary)
	}
}

// teardown discards the run and returns to Idle. Safe to call repeatedly.
func (s *Session) teardown() {
	s.clock.Reset()
	s.obstacleTimer = nil
	s.coinTimer = nil
	s.entities.Clear()
	s.difficulty.Reset()
	s.player = Player{}
	s.score = 0
	s.coins = 0
	s.progress = 0
	s.summary = nil
	s.runID = ""
	s.phase = PhaseIdle
}

func (s *Session) warn(msg string, err error) {
	if err != nil {
		s.logger.Warn(msg, "error", err)
		s.warning = fmt.Sprintf("%s: %v", msg, err)
		return
	}
	s.logger.Warn(msg)
	s.warning = msg
}

// Summary returns the result of the run that just ended.
// It is only available in GameOver.
func (s *Session) Summary() (Summary, bool) {
	if s.summary == nil {
		return Summary{}, false
	}
	return *s.summary, true
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Coins returns the coins collected this run.
func (s *Session) Coins() int {
	return s.coins
}

// BestScore returns the best score known to the session.
func (s *Session) BestScore() int {
	return s.best
}

// Multiplier returns the current speed multiplier.
func (s *Session) Multiplier() float64 {
	return s.difficulty.Multiplier()
}

// Now returns the game clock.
func (s *Session) Now() time.Duration {
	return s.clock.Now()
}

// Warning returns the last non-fatal integration problem, if any.
func (s *Session) Warning() string {
	return s.warning
}

// Snapshot returns a read-only view of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	now := s.clock.Now()
	width := s.cfg.Field.Width

	obstacles := s.entities.ActiveObstacles(now)
	coins := s.entities.ActiveCoins(now)

	snap := Snapshot{
		Phase:         s.phase,
		RunID:         s.runID,
		Score:         s.score,
		Coins:         s.coins,
		BestScore:     s.best,
		Progress:      s.progress,
		Multiplier:    s.difficulty.Multiplier(),
		PlayerJumping: s.player.Jumping,
		Player:        s.body.box(s.player, now),
		Obstacles:     make([]core.Box, len(obstacles)),
		CoinBoxes:     make([]core.Box, len(coins)),
		Elapsed:       now,
		Warning:       s.warning,
	}
	if s.summary != nil {
		snap.NewBest = s.summary.NewBest
	}
	for i, e := range obstacles {
		snap.Obstacles[i] = e.Box(now, width)
	}
	for i, e := range coins {
		snap.CoinBoxes[i] = e.Box(now, width)
	}
	return snap
}
