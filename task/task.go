package task

import (
	"fmt"

	"mandelview/mandelbrot"
)

const (
	// Row tasks carry a single image row each; they balance well between
	// workers.
	Row Generation = iota
	// Frame tasks carry a whole frame each; useful when rendering many
	// frames across few workers.
	Frame
)

type Generation int

func (g Generation) String() string {
	return []string{
		"Row", "Frame",
	}[g]
}

// Task is one unit of render work: a span of rows of one animation frame,
// viewed through the frame's viewport. Results accumulate as workers report
// pixels back.
type Task struct {
	FrameNumber   uint
	ID            uint
	Results       []Pixel
	RowCount      int
	StartRow      int
	Viewport      mandelbrot.Viewport
	WorkerAddress string
}

func NewTask(id uint, frameNumber uint, viewport mandelbrot.Viewport) Task {
	return Task{
		ID:          id,
		FrameNumber: frameNumber,
		Viewport:    viewport,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Frame Number: %d ", t.FrameNumber)
	output += fmt.Sprintf("Start Row: %d ", t.StartRow)
	output += fmt.Sprintf("Row Count: %d ", t.RowCount)
	output += fmt.Sprintf("Result Count: %d}", len(t.Results))
	return output
}

// SpanRow marks the task as covering a single row.
func (t *Task) SpanRow(row int) {
	t.StartRow = row
	t.RowCount = 1
}

// SpanFrame marks the task as covering every row of the frame.
func (t *Task) SpanFrame(height int) {
	t.StartRow = 0
	t.RowCount = height
}

func (t *Task) AddResult(pixel Pixel) {
	t.Results = append(t.Results, pixel)
}

// Complete reports whether every pixel of the spanned rows has a result.
func (t *Task) Complete(width int) bool {
	return len(t.Results) >= t.RowCount*width
}
