package t2048

import "time"

// TickCooldown suppresses move input for a fixed number of ticks after an
// accepted keypress. It is the tick-driven form of the input busy flag.
type TickCooldown struct {
	window    int
	remaining int
}

// NewTickCooldown creates a guard that stays busy for window ticks.
func NewTickCooldown(window int) *TickCooldown {
	return &TickCooldown{window: window}
}

// Busy reports whether moves are currently suppressed.
func (c *TickCooldown) Busy() bool {
	return c.remaining > 0
}

// Trigger starts the window.
func (c *TickCooldown) Trigger() {
	c.remaining = c.window
}

// Tick advances the guard by one simulation tick.
func (c *TickCooldown) Tick() {
	if c.remaining > 0 {
		c.remaining--
	}
}

// Reset clears the guard.
func (c *TickCooldown) Reset() {
	c.remaining = 0
}

// Cooldown is the wall-clock busy flag used by network sessions, where moves
// arrive as requests rather than ticks.
type Cooldown struct {
	window time.Duration
	until  time.Time
	now    func() time.Time
}

// NewCooldown creates a guard with the given window. A nil now uses time.Now.
func NewCooldown(window time.Duration, now func() time.Time) *Cooldown {
	if now == nil {
		now = time.Now
	}
	return &Cooldown{window: window, now: now}
}

// TryAcquire returns false while the window from the previous accepted call
// is still open; otherwise it opens a new window and returns true.
func (c *Cooldown) TryAcquire() bool {
	t := c.now()
	if t.Before(c.until) {
		return false
	}
	c.until = t.Add(c.window)
	return true
}

// Remaining returns how long the guard stays busy.
func (c *Cooldown) Remaining() time.Duration {
	d := c.until.Sub(c.now())
	if d < 0 {
		return 0
	}
	return d
}
