package mandelbrot

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

const (
	Grayscale ColorScheme = iota
	Rainbow
	Fire
)

// ColorScheme names a function mapping normalized iteration depth to a
// color. The set is closed; anything outside it renders black.
type ColorScheme int

func (s ColorScheme) String() string {
	return []string{
		"grayscale", "rainbow", "fire",
	}[s]
}

func ParseColorScheme(name string) (ColorScheme, error) {
	switch strings.ToLower(name) {
	case "grayscale":
		return Grayscale, nil
	case "rainbow":
		return Rainbow, nil
	case "fire":
		return Fire, nil
	}
	return Grayscale, fmt.Errorf("unknown color scheme %q", name)
}

// SchemeColor maps an iteration count to a color. Points that reached
// maxIterations are inside the set and always render black, whatever the
// scheme.
func SchemeColor(iteration int, maxIterations int, scheme ColorScheme) color.RGBA {
	if iteration == maxIterations {
		return color.RGBA{A: 255}
	}

	t := float64(iteration) / float64(maxIterations)
	switch scheme {
	case Grayscale:
		// Brighter means the point escaped sooner
		value := clampChannel(math.Floor(255 * (1 - t)))
		return color.RGBA{R: value, G: value, B: value, A: 255}

	case Rainbow:
		// Three hue bands over the iteration range; negative sine lobes
		// clamp to zero
		return color.RGBA{
			R: clampChannel(math.Floor(255 * math.Sin(math.Pi*t*3))),
			G: clampChannel(math.Floor(255 * math.Sin(math.Pi*t*3+2*math.Pi/3))),
			B: clampChannel(math.Floor(255 * math.Sin(math.Pi*t*3+4*math.Pi/3))),
			A: 255,
		}

	case Fire:
		ramp := t * 4
		var r, g, b float64
		switch {
		case ramp <= 1:
			r = 255 * ramp
		case ramp <= 2:
			r = 255
			g = 255 * (ramp - 1)
		case ramp <= 3:
			r = 255
			g = 255
			b = 255 * (ramp - 2)
		default:
			r = 255
			g = 255
			b = 255 * math.Min(1, 4-ramp)
		}
		return color.RGBA{
			R: clampChannel(math.Floor(r)),
			G: clampChannel(math.Floor(g)),
			B: clampChannel(math.Floor(b)),
			A: 255,
		}
	}

	// Unknown scheme
	return color.RGBA{A: 255}
}

func clampChannel(value float64) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}
