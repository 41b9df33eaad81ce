// Package cooldown provides the timer primitives driven by explicit Update calls.
package cooldown

import "time"

// Cooldown is a re-triggerable timer. It is ready once its period has
// elapsed since the last trigger.
type Cooldown struct {
	period    time.Duration
	remaining time.Duration
}

// New creates a cooldown that is ready immediately.
func New(period time.Duration) *Cooldown {
	return &Cooldown{period: period}
}

// Period returns the cooldown length.
func (c *Cooldown) Period() time.Duration { return c.period }

// IsReady reports whether the period has elapsed.
func (c *Cooldown) IsReady() bool { return c.remaining <= 0 }

// Remaining returns the time left until ready.
func (c *Cooldown) Remaining() time.Duration { return max(c.remaining, 0) }

func (c *Cooldown) Update(elapsed time.Duration) {
	if c.remaining > 0 {
		c.remaining -= elapsed
	}
}

// Reset makes the cooldown ready now.
func (c *Cooldown) Reset() { c.remaining = 0 }

// Trigger restarts the period unconditionally.
func (c *Cooldown) Trigger() { c.remaining = c.period }

// TryTrigger restarts the period if the cooldown is ready.
func (c *Cooldown) TryTrigger() bool {
	if !c.IsReady() {
		return false
	}
	c.Trigger()
	return true
}

// CountDown runs once from its duration down to zero.
type CountDown struct {
	duration  time.Duration
	remaining time.Duration
}

// NewCountDown creates a running countdown.
func NewCountDown(d time.Duration) *CountDown {
	return &CountDown{duration: d, remaining: d}
}

func (c *CountDown) Duration() time.Duration  { return c.duration }
func (c *CountDown) IsOver() bool             { return c.remaining <= 0 }
func (c *CountDown) Remaining() time.Duration { return max(c.remaining, 0) }

func (c *CountDown) Update(elapsed time.Duration) {
	if c.remaining > 0 {
		c.remaining -= elapsed
	}
}

// Reset restarts the countdown from its full duration.
func (c *CountDown) Reset() { c.remaining = c.duration }

// Clear ends the countdown immediately.
func (c *CountDown) Clear() { c.remaining = 0 }

// Increase extends the remaining time by d.
func (c *CountDown) Increase(d time.Duration) { c.remaining += d }
