package coordinator

// transitionSettings describe one leg of a zoom animation: the focus point
// glides from (StartX, StartY) to (EndX, EndY) in the complex plane while
// each frame's viewport is rescaled around it by ZoomStep. A ZoomStep above
// 1 zooms in, between 0 and 1 zooms out.
type transitionSettings struct {
	EndX       float64
	EndY       float64
	FrameCount uint
	StartX     float64
	StartY     float64
	ZoomStep   float64
}

func (ts *transitionSettings) Verify() error {
	if ts.StartX < -4 || ts.StartX > 4 {
		ts.StartX = 0
	}
	if ts.StartY < -4 || ts.StartY > 4 {
		ts.StartY = 0
	}
	if ts.EndX < -4 || ts.EndX > 4 {
		ts.EndX = 0
	}
	if ts.EndY < -4 || ts.EndY > 4 {
		ts.EndY = 0
	}
	if ts.FrameCount == 0 {
		ts.FrameCount = 1
	}
	if ts.ZoomStep <= 0 {
		ts.ZoomStep = 1.1
	}
	return nil
}

// zoomingIn reports whether this leg moves deeper into the set.
func (ts *transitionSettings) zoomingIn() bool {
	return ts.ZoomStep > 1
}
