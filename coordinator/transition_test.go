package coordinator

import "testing"

func TestTransitionSettingsVerifyDefaults(t *testing.T) {
	ts := transitionSettings{}
	if err := ts.Verify(); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ts.FrameCount != 1 {
		t.Errorf("FrameCount = %d, want 1", ts.FrameCount)
	}
	if ts.ZoomStep != 1.1 {
		t.Errorf("ZoomStep = %v, want 1.1", ts.ZoomStep)
	}
}

func TestTransitionSettingsVerifyClampsFocus(t *testing.T) {
	ts := transitionSettings{StartX: -10, StartY: 5, EndX: 100, EndY: -4.5, FrameCount: 10, ZoomStep: 2}
	if err := ts.Verify(); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ts.StartX != 0 || ts.StartY != 0 || ts.EndX != 0 || ts.EndY != 0 {
		t.Errorf("out of range focus not reset: %+v", ts)
	}
	if ts.FrameCount != 10 || ts.ZoomStep != 2 {
		t.Errorf("in range fields were changed: %+v", ts)
	}
}

func TestTransitionSettingsVerifyKeepsValidFocus(t *testing.T) {
	ts := transitionSettings{StartX: -0.75, StartY: 0.1, EndX: 0.3, EndY: -0.2, FrameCount: 5, ZoomStep: 1.05}
	if err := ts.Verify(); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ts.StartX != -0.75 || ts.StartY != 0.1 || ts.EndX != 0.3 || ts.EndY != -0.2 {
		t.Errorf("valid focus was changed: %+v", ts)
	}
}

func TestTransitionSettingsZoomingIn(t *testing.T) {
	tests := []struct {
		zoomStep float64
		want     bool
	}{
		{1.1, true},
		{2, true},
		{1, false},
		{0.9, false},
	}
	for _, tt := range tests {
		ts := transitionSettings{ZoomStep: tt.zoomStep}
		if got := ts.zoomingIn(); got != tt.want {
			t.Errorf("zoomingIn() with ZoomStep %v = %t, want %t", tt.zoomStep, got, tt.want)
		}
	}
}
