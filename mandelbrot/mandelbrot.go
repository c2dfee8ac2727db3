package mandelbrot

// DefaultMaxIterations is the iteration depth used when the caller does not
// specify one.
const DefaultMaxIterations = 100

// EscapeTime returns the number of iterations it takes for the point
// (cx, cy) to escape the boundary, or maxIterations if it never does at this
// depth. A point that reaches maxIterations is considered inside the set.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func EscapeTime(cx float64, cy float64, maxIterations int) int {
	x, y, x2, y2 := 0.0, 0.0, 0.0, 0.0
	iteration := 0
	for (x2+y2) <= 4 && iteration < maxIterations {
		y = 2*x*y + cy
		x = x2 - y2 + cx
		x2 = x * x
		y2 = y * y
		iteration++
	}

	return iteration
}
