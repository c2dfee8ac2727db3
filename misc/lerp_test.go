package misc

import "testing"

func TestLerpFloat64(t *testing.T) {
	tests := []struct {
		v1, v2, fraction, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-2, 2, 0.25, -1},
		{5, 5, 0.7, 5},
	}
	for _, tt := range tests {
		if got := LerpFloat64(tt.v1, tt.v2, tt.fraction); got != tt.want {
			t.Errorf("LerpFloat64(%v, %v, %v) = %v, want %v", tt.v1, tt.v2, tt.fraction, got, tt.want)
		}
	}
}

func TestEaseOutExpo(t *testing.T) {
	if got := EaseOutExpo(1); got != 1 {
		t.Errorf("EaseOutExpo(1) = %v, want 1", got)
	}
	if got := EaseOutExpo(1.5); got != 1 {
		t.Errorf("EaseOutExpo(1.5) = %v, want 1", got)
	}
	previous := EaseOutExpo(0)
	for i := 1; i <= 10; i++ {
		current := EaseOutExpo(float64(i) / 10)
		if current <= previous {
			t.Fatalf("EaseOutExpo not increasing at t=%v", float64(i)/10)
		}
		previous = current
	}
}

func TestEaseInExpo(t *testing.T) {
	if got := EaseInExpo(0); got != 0 {
		t.Errorf("EaseInExpo(0) = %v, want 0", got)
	}
	if got := EaseInExpo(-0.5); got != 0 {
		t.Errorf("EaseInExpo(-0.5) = %v, want 0", got)
	}
	if got := EaseInExpo(1); got != 1 {
		t.Errorf("EaseInExpo(1) = %v, want 1", got)
	}
	previous := EaseInExpo(0.0)
	for i := 1; i <= 10; i++ {
		current := EaseInExpo(float64(i) / 10)
		if current <= previous {
			t.Fatalf("EaseInExpo not increasing at t=%v", float64(i)/10)
		}
		previous = current
	}
}
