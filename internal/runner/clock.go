// Package runner implements the endless-runner engine: the game clock and
// spawn timers, the entity registry, collision evaluation, the difficulty ramp
// and the session state machine that ties them together.
//
// Everything here is single-threaded. The platform layer owns the real-time
// tick source and calls into a Session from one goroutine only.
package runner

import "time"

// Clock is the session's game clock. It advances in fixed steps and only
// when the session asks it to, so time spent paused never reaches the game.
type Clock struct {
	step   time.Duration
	now    time.Duration
	timers []*Timer
}

// NewClock creates a clock that advances by step on every Advance call.
func NewClock(step time.Duration) *Clock {
	if step <= 0 {
		step = time.Second / 60
	}
	return &Clock{step: step}
}

// Now returns the current game time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves the game clock forward by one tick and returns the new time.
func (c *Clock) Advance() time.Duration {
	c.now += c.step
	return c.now
}

// Every registers a periodic timer whose first firing is one interval from now.
// Timers fire in registration order.
func (c *Clock) Every(interval time.Duration, fn func(now time.Duration)) *Timer {
	t := &Timer{
		interval: interval,
		next:     c.now + interval,
		fn:       fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Fire runs every timer whose deadline has been reached.
// A timer fires at most once per call; missed periods are not replayed.
func (c *Clock) Fire() {
	for _, t := range c.timers {
		if t.stopped || c.now < t.next {
			continue
		}
		t.next = c.now + t.interval
		t.fn(c.now)
	}
}

// Stop cancels every timer. No callback runs after Stop returns.
func (c *Clock) Stop() {
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = nil
}

// Reset cancels all timers and rewinds the clock to zero.
func (c *Clock) Reset() {
	c.Stop()
	c.now = 0
}

// Timer is a periodic callback scheduled on a Clock.
type Timer struct {
	interval time.Duration
	next     time.Duration
	fn       func(now time.Duration)
	stopped  bool
}

// Interval returns the current firing period.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Next returns the game time of the next firing.
func (t *Timer) Next() time.Duration {
	return t.next
}

// Reschedule changes the period. The next firing moves to now+interval;
// nothing fires retroactively.
func (t *Timer) Reschedule(now, interval time.Duration) {
	t.interval = interval
	t.next = now + interval
}

// Stop cancels the timer. Stopping twice is a no-op.
func (t *Timer) Stop() {
	t.stopped = true
}
