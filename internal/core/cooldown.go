package core

import "time"

// Cooldown is a debounce timer. The zero value has never fired and is ready.
type Cooldown struct {
	Period time.Duration
	last   time.Time
	fired  bool
}

// NewCooldown returns a ready cooldown with the given period.
func NewCooldown(period time.Duration) Cooldown {
	return Cooldown{Period: period}
}

// Ready reports whether at least Period has elapsed since the last fire.
func (c *Cooldown) Ready(now time.Time) bool {
	if !c.fired {
		return true
	}
	return now.Sub(c.last) > c.Period
}

// Active reports whether the cooldown fired less than or exactly Period ago.
func (c *Cooldown) Active(now time.Time) bool {
	return !c.Ready(now)
}

// TryFire fires the cooldown if it is ready and reports whether it did.
func (c *Cooldown) TryFire(now time.Time) bool {
	if !c.Ready(now) {
		return false
	}
	c.Fire(now)
	return true
}

// Fire stamps the cooldown unconditionally.
func (c *Cooldown) Fire(now time.Time) {
	c.last = now
	c.fired = true
}

// Reset makes the cooldown ready again.
func (c *Cooldown) Reset() {
	c.fired = false
	c.last = time.Time{}
}

// LastFired returns the time of the last fire, if any.
func (c *Cooldown) LastFired() (time.Time, bool) {
	return c.last, c.fired
}
