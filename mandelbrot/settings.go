package mandelbrot

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

// Settings describe a render target for the coordinator, worker and viewer.
// The zero value is usable after Verify fills in defaults.
type Settings struct {
	logger bslogger.Logger

	Height        int
	MaxIterations int
	Scheme        ColorScheme
	Viewport      Viewport
	Width         int
}

func (s *Settings) String() string {
	output := "\nRender settings\n"
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Scheme: %s\n", s.Scheme)
	output += fmt.Sprintf("Viewport: %v\n", s.Viewport)
	output += fmt.Sprintf("Width: %d\n", s.Width)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RenderSettings", bslogger.Normal, nil)

	if s.Height <= 0 {
		s.Height = 1080
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.Scheme < Grayscale || s.Scheme > Fire {
		s.logger.Infof("Unknown color scheme %d. Defaulting to grayscale.", int(s.Scheme))
		s.Scheme = Grayscale
	}
	if s.Viewport == (Viewport{}) {
		s.Viewport = DefaultViewport()
	}
	if s.Width <= 0 {
		s.Width = 1920
	}

	return nil
}

// Options returns the per-call render options for these settings.
func (s *Settings) Options() RenderOptions {
	return RenderOptions{
		MaxIterations: s.MaxIterations,
		Scheme:        s.Scheme,
	}
}
