package mandelbrot

import "image"

// RenderOptions configure a single render call. They carry no state between
// calls.
type RenderOptions struct {
	MaxIterations int
	Scheme        ColorScheme
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		MaxIterations: DefaultMaxIterations,
		Scheme:        Grayscale,
	}
}

// Render produces an RGBA pixel buffer of length width*height*4, row major
// with the origin at the top left. Every pixel is mapped to its complex
// point, iterated, and colored; alpha is always fully opaque. The scan is a
// straight full frame pass with no caching, so identical inputs always
// produce identical buffers.
func Render(width int, height int, viewport Viewport, options RenderOptions) []byte {
	buffer := make([]byte, width*height*4)
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			real, imaginary := viewport.PixelToComplex(float64(px), float64(py), width, height)
			iteration := EscapeTime(real, imaginary, options.MaxIterations)
			pixel := SchemeColor(iteration, options.MaxIterations, options.Scheme)

			offset := (py*width + px) * 4
			buffer[offset] = pixel.R
			buffer[offset+1] = pixel.G
			buffer[offset+2] = pixel.B
			buffer[offset+3] = 255
		}
	}

	return buffer
}

// RenderImage wraps a rendered buffer in an image for encoding or drawing.
func RenderImage(width int, height int, viewport Viewport, options RenderOptions) *image.RGBA {
	return &image.RGBA{
		Pix:    Render(width, height, viewport, options),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
