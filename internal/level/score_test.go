package level

import (
	"testing"
	"time"
)

var t0 = time.Unix(1_700_000_000, 0)

func TestScoreTrackerWinsOnce(t *testing.T) {
	s := NewScoreTracker(3, 5*time.Second, time.Second)

	for i := 1; i <= 2; i++ {
		s.Increase(t0.Add(time.Duration(i) * time.Second))
		if s.Won() {
			t.Fatalf("won after %d potions", i)
		}
		if _, ok := s.WinAt(); ok {
			t.Fatalf("win stamped before the target, after %d potions", i)
		}
	}

	winTime := t0.Add(3 * time.Second)
	s.Increase(winTime)
	if !s.Won() {
		t.Fatal("should win on reaching the target")
	}
	at, ok := s.WinAt()
	if !ok || !at.Equal(winTime) {
		t.Errorf("WinAt = %v, %v; expected %v", at, ok, winTime)
	}

	s.Increase(t0.Add(4 * time.Second))
	if s.Won() {
		t.Error("Won should only hold at exactly the target")
	}
	if at, _ := s.WinAt(); !at.Equal(winTime) {
		t.Error("win stamp should never move after the transition")
	}
}

func TestScoreTrackerLeaveTiming(t *testing.T) {
	s := NewScoreTracker(1, 5*time.Second, time.Second)
	if s.IsTimeToLeave(t0.Add(time.Hour)) || s.QuitTransition(t0) {
		t.Fatal("no timing before a win")
	}
	s.Increase(t0)

	tests := []struct {
		offset     time.Duration
		transition bool
		leave      bool
	}{
		{0, false, false},
		{3999 * time.Millisecond, false, false},
		{4 * time.Second, true, false},
		{4500 * time.Millisecond, true, false},
		{5 * time.Second, true, true},
		{6 * time.Second, false, true},
	}

	for _, tc := range tests {
		now := t0.Add(tc.offset)
		if got := s.QuitTransition(now); got != tc.transition {
			t.Errorf("QuitTransition(+%v) = %v, expected %v", tc.offset, got, tc.transition)
		}
		if got := s.IsTimeToLeave(now); got != tc.leave {
			t.Errorf("IsTimeToLeave(+%v) = %v, expected %v", tc.offset, got, tc.leave)
		}
	}
}

func TestScoreTrackerReset(t *testing.T) {
	s := NewScoreTracker(2, time.Second, 0)
	s.Increase(t0)
	s.Increase(t0)
	s.Reset()

	if s.Value != 0 || s.Won() || s.Remaining() != 2 {
		t.Errorf("after Reset: value=%d won=%v remaining=%d", s.Value, s.Won(), s.Remaining())
	}
	if _, ok := s.WinAt(); ok {
		t.Error("Reset should clear the win stamp")
	}
}
