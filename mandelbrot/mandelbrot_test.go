package mandelbrot

import "testing"

func TestEscapeTimeOriginStaysInSet(t *testing.T) {
	for _, maxIterations := range []int{1, 10, 100, 1000} {
		if got := EscapeTime(0, 0, maxIterations); got != maxIterations {
			t.Errorf("EscapeTime(0, 0, %d) = %d, want %d", maxIterations, got, maxIterations)
		}
	}
}

func TestEscapeTimeKnownPoints(t *testing.T) {
	tests := []struct {
		name          string
		cx, cy        float64
		maxIterations int
		want          int
	}{
		{"far outside escapes immediately", 2, 2, 100, 1},
		{"inside main cardioid", -0.5, 0, 100, 100},
		{"inside period two bulb", -1, 0, 100, 100},
		{"escapes after a few iterations", 0.5, 0.5, 1000, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTime(tt.cx, tt.cy, tt.maxIterations); got != tt.want {
				t.Errorf("EscapeTime(%v, %v, %d) = %d, want %d", tt.cx, tt.cy, tt.maxIterations, got, tt.want)
			}
		})
	}
}

func TestEscapeTimeBoundaryPointEscapesQuickly(t *testing.T) {
	// (1, 0) is just outside the set and should escape within a few
	// iterations
	if got := EscapeTime(1, 0, 100); got >= 10 {
		t.Errorf("EscapeTime(1, 0, 100) = %d, want < 10", got)
	}
}

func TestEscapeTimeRange(t *testing.T) {
	for _, point := range [][2]float64{{0, 0}, {-0.75, 0.1}, {0.3, 0.6}, {2, 2}, {-2.5, 1.5}} {
		got := EscapeTime(point[0], point[1], 100)
		if got < 0 || got > 100 {
			t.Errorf("EscapeTime(%v, %v, 100) = %d, want within [0, 100]", point[0], point[1], got)
		}
	}
}

func TestEscapeTimeNonPositiveDepth(t *testing.T) {
	// A non-positive iteration budget means the loop never runs
	if got := EscapeTime(0, 0, 0); got != 0 {
		t.Errorf("EscapeTime(0, 0, 0) = %d, want 0", got)
	}
	if got := EscapeTime(0, 0, -5); got != 0 {
		t.Errorf("EscapeTime(0, 0, -5) = %d, want 0", got)
	}
}
