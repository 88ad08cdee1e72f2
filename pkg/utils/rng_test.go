package utils

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if v := r.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN out of range: %d", v)
		}
		if v := r.Range(0.4, 0.5); v < 0.4 || v >= 0.5 {
			t.Fatalf("Range out of range: %v", v)
		}
	}
	if r.IntN(0) != 0 {
		t.Error("IntN(0) should return 0")
	}
	if r.Range(3, 3) != 3 {
		t.Error("empty range should return min")
	}
}
