package level

import "time"

// ScoreTracker counts potions toward a level's target and times the exit
// once the target is reached.
type ScoreTracker struct {
	Value      int
	Target     int
	LeaveDelay time.Duration
	Transition time.Duration

	winAt  time.Time
	hasWin bool
}

// NewScoreTracker creates a tracker for target potions.
func NewScoreTracker(target int, leaveDelay, transition time.Duration) *ScoreTracker {
	return &ScoreTracker{Target: target, LeaveDelay: leaveDelay, Transition: transition}
}

// Increase adds a potion. Reaching the target stamps the win time; this
// happens on that exact pickup and never again.
func (s *ScoreTracker) Increase(now time.Time) {
	s.Value++
	if s.Value == s.Target && !s.hasWin {
		s.winAt = now
		s.hasWin = true
	}
}

// Won reports whether the target has been reached.
func (s *ScoreTracker) Won() bool {
	return s.Value == s.Target
}

// WinAt returns when the target was reached.
func (s *ScoreTracker) WinAt() (time.Time, bool) {
	return s.winAt, s.hasWin
}

// Remaining returns how many potions are left to collect.
func (s *ScoreTracker) Remaining() int {
	return max(s.Target-s.Value, 0)
}

// QuitTransition reports whether now falls inside the fade-out window that
// ends at the leave time.
func (s *ScoreTracker) QuitTransition(now time.Time) bool {
	if !s.hasWin {
		return false
	}
	elapsed := now.Sub(s.winAt)
	return elapsed >= s.LeaveDelay-s.Transition && elapsed <= s.LeaveDelay
}

// IsTimeToLeave reports whether the leave delay after the win has passed.
func (s *ScoreTracker) IsTimeToLeave(now time.Time) bool {
	if !s.hasWin {
		return false
	}
	return now.Sub(s.winAt) >= s.LeaveDelay
}

// Reset clears the count and the win stamp.
func (s *ScoreTracker) Reset() {
	s.Value = 0
	s.winAt = time.Time{}
	s.hasWin = false
}
