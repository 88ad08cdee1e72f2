package utils

import "testing"

func TestRectOverlapsExcludesSharedEdge(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same rect", NewRect(0, 0, 10, 10), true},
		{"partial overlap", NewRect(5, 5, 10, 10), true},
		{"touching right edge", NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 10, 10, 10), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"contained", NewRect(2, 2, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := NewRect(100, 100, 64, 128)
	hb := r.Inflate(-r.W*0.2, -r.H*0.75)

	if hb.CenterX() != r.CenterX() || hb.CenterY() != r.CenterY() {
		t.Errorf("center moved: %v,%v -> %v,%v", r.CenterX(), r.CenterY(), hb.CenterX(), hb.CenterY())
	}
	if hb.W != 64*0.8 || hb.H != 32 {
		t.Errorf("unexpected inflated size %vx%v", hb.W, hb.H)
	}
}

func TestRectFromMidBottom(t *testing.T) {
	r := RectFromMidBottom(50, 200, 20, 40)
	mx, by := r.MidBottom()
	if mx != 50 || by != 200 {
		t.Errorf("MidBottom = (%v, %v), want (50, 200)", mx, by)
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 64, 64)
	if !r.Contains(0, 0) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(64, 10) || r.Contains(10, 64) {
		t.Error("right/bottom edge should be outside")
	}
}
