package mandelbrot

import "math"

// Viewport is the axis aligned rectangle of the complex plane currently
// mapped onto the pixel canvas. It is a plain value; every transform returns
// a new Viewport and never mutates the receiver.
type Viewport struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// DefaultViewport frames the entire main body of the set with some margin.
func DefaultViewport() Viewport {
	return Viewport{XMin: -2.5, XMax: 1, YMin: -1.5, YMax: 1.5}
}

func (v Viewport) Width() float64 {
	return v.XMax - v.XMin
}

func (v Viewport) Height() float64 {
	return v.YMax - v.YMin
}

// PixelToComplex converts the (column, row) point on the image to the (x, y)
// point on the complex axis. Pixel coordinates outside the canvas are not
// clamped and simply extrapolate. Zero canvas dimensions and zero sized
// viewports divide by zero; callers are expected to hand in sane values.
func (v Viewport) PixelToComplex(px float64, py float64, width int, height int) (float64, float64) {
	real := v.XMin + px*v.Width()/float64(width)
	imaginary := v.YMin + py*v.Height()/float64(height)
	return real, imaginary
}

// ComplexToPixel is the inverse of PixelToComplex, rounded to the nearest
// integer pixel index.
func (v Viewport) ComplexToPixel(real float64, imaginary float64, width int, height int) (int, int) {
	px := math.Round((real - v.XMin) / v.Width() * float64(width))
	py := math.Round((imaginary - v.YMin) / v.Height() * float64(height))
	return int(px), int(py)
}

// ZoomToSelection returns the viewport covering the pixel rectangle spanned
// by the two corners. The corners may come in any drag order; they are
// normalized so the result is always well ordered. Rejecting zero area
// selections is up to the caller.
func (v Viewport) ZoomToSelection(x1 float64, y1 float64, x2 float64, y2 float64, width int, height int) Viewport {
	left := math.Min(x1, x2)
	right := math.Max(x1, x2)
	top := math.Min(y1, y2)
	bottom := math.Max(y1, y2)

	xMin, yMin := v.PixelToComplex(left, top, width, height)
	xMax, yMax := v.PixelToComplex(right, bottom, width, height)

	return Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// Pan translates the viewport by a pixel delta. Pushing the view right
// (positive dx) reveals content to the left, so all four bounds move down by
// the scaled delta. The sign convention is load bearing for the UI layer.
func (v Viewport) Pan(dx float64, dy float64, width int, height int) Viewport {
	scaleX := v.Width() / float64(width)
	scaleY := v.Height() / float64(height)

	return Viewport{
		XMin: v.XMin - dx*scaleX,
		XMax: v.XMax - dx*scaleX,
		YMin: v.YMin - dy*scaleY,
		YMax: v.YMax - dy*scaleY,
	}
}

// ZoomAt scales the viewport extents around the complex point under the
// given pixel. A factor above 1 zooms in, a factor between 0 and 1 zooms
// out. The factor must be strictly positive.
func (v Viewport) ZoomAt(centerX float64, centerY float64, factor float64, width int, height int) Viewport {
	real, imaginary := v.PixelToComplex(centerX, centerY, width, height)
	halfWidth := v.Width() / 2 / factor
	halfHeight := v.Height() / 2 / factor

	return Viewport{
		XMin: real - halfWidth,
		XMax: real + halfWidth,
		YMin: imaginary - halfHeight,
		YMax: imaginary + halfHeight,
	}
}
