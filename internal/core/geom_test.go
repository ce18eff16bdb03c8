package core

import "testing"

func TestRectIntersects(t *testing.T) {
	hud := NewRect(0, 0, 20, 3)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"player under the box", NewRect(5, 1, 2, 2), true},
		{"touching the right edge", NewRect(20, 0, 2, 2), false},
		{"just below", NewRect(5, 3, 2, 2), false},
		{"straddling the corner", NewRect(19, 2, 4, 4), true},
		{"empty rect", NewRect(5, 1, 0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hud.Intersects(tt.r); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.r.Intersects(hud); got != tt.want {
				t.Errorf("Intersects is not symmetric: got %v", got)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	inside := [][2]int{{2, 3}, {5, 4}, {3, 3}}
	outside := [][2]int{{1, 3}, {6, 3}, {2, 5}, {2, 2}}

	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, want true", p[0], p[1])
		}
	}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, want false", p[0], p[1])
		}
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"inside", NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
		{"off the left", NewRect(-2, 1, 5, 2), NewRect(0, 1, 3, 2)},
		{"past the bottom right", NewRect(8, 8, 5, 5), NewRect(8, 8, 2, 2)},
		{"fully outside", NewRect(12, 0, 3, 3), Rect{X: 12, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Clip(10, 10)
			if got != tt.want {
				t.Errorf("Clip = %+v, want %+v", got, tt.want)
			}
		})
	}

	if !NewRect(12, 0, 3, 3).Clip(10, 10).Empty() {
		t.Error("a rect outside the screen should clip to empty")
	}
}
