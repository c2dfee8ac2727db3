package task

import (
	"image/color"
	"strings"
	"testing"

	"mandelview/mandelbrot"
)

func TestNewTask(t *testing.T) {
	viewport := mandelbrot.DefaultViewport()
	taskTodo := NewTask(7, 3, viewport)
	if taskTodo.ID != 7 {
		t.Errorf("ID = %d, want 7", taskTodo.ID)
	}
	if taskTodo.FrameNumber != 3 {
		t.Errorf("FrameNumber = %d, want 3", taskTodo.FrameNumber)
	}
	if taskTodo.Viewport != viewport {
		t.Errorf("Viewport = %v, want %v", taskTodo.Viewport, viewport)
	}
	if len(taskTodo.Results) != 0 {
		t.Errorf("Results has %d entries, want 0", len(taskTodo.Results))
	}
}

func TestSpanRow(t *testing.T) {
	taskTodo := NewTask(0, 0, mandelbrot.DefaultViewport())
	taskTodo.SpanRow(42)
	if taskTodo.StartRow != 42 || taskTodo.RowCount != 1 {
		t.Errorf("SpanRow(42) set StartRow %d RowCount %d, want 42 and 1", taskTodo.StartRow, taskTodo.RowCount)
	}
}

func TestSpanFrame(t *testing.T) {
	taskTodo := NewTask(0, 0, mandelbrot.DefaultViewport())
	taskTodo.SpanFrame(1080)
	if taskTodo.StartRow != 0 || taskTodo.RowCount != 1080 {
		t.Errorf("SpanFrame(1080) set StartRow %d RowCount %d, want 0 and 1080", taskTodo.StartRow, taskTodo.RowCount)
	}
}

func TestCompleteCountsResults(t *testing.T) {
	taskTodo := NewTask(0, 0, mandelbrot.DefaultViewport())
	taskTodo.SpanRow(5)

	width := 4
	for column := 0; column < width; column++ {
		if taskTodo.Complete(width) {
			t.Fatalf("task complete after %d of %d results", column, width)
		}
		taskTodo.AddResult(Pixel{
			Color:  color.RGBA{A: 255},
			Column: column,
			Row:    5,
		})
	}
	if !taskTodo.Complete(width) {
		t.Errorf("task not complete after %d results", width)
	}
}

func TestTaskString(t *testing.T) {
	taskTodo := NewTask(9, 2, mandelbrot.DefaultViewport())
	taskTodo.SpanRow(17)
	got := taskTodo.String()
	for _, fragment := range []string{"ID: 9", "Frame Number: 2", "Start Row: 17", "Row Count: 1"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("String() = %q, missing %q", got, fragment)
		}
	}
}

func TestGenerationString(t *testing.T) {
	if Row.String() != "Row" {
		t.Errorf("Row.String() = %q, want Row", Row.String())
	}
	if Frame.String() != "Frame" {
		t.Errorf("Frame.String() = %q, want Frame", Frame.String())
	}
}
