package viewer

import (
	"fmt"
	"math"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mandelview/mandelbrot"
)

const (
	// Pixels per pan key press
	panStep = 25
	// Wheel and double click zoom factor
	zoomFactor = 1.25
	// Drags smaller than this many pixels on either axis are treated as
	// clicks, not zoom selections
	minimumDrag = 4
)

// Viewer is the interactive window around the render core. All the actual
// math lives in the mandelbrot package; this just wires gestures to viewport
// transforms and blits frames.
type Viewer struct {
	buffer     []byte
	dirty      bool
	dragStartX int
	dragStartY int
	dragging   bool
	logger     bslogger.Logger
	options    mandelbrot.RenderOptions
	settings   mandelbrot.Settings
	viewport   mandelbrot.Viewport
}

func NewViewer(settings mandelbrot.Settings) *Viewer {
	return &Viewer{
		dirty:    true,
		logger:   bslogger.NewLogger("Viewer", bslogger.Normal, nil),
		options:  settings.Options(),
		settings: settings,
		viewport: settings.Viewport,
	}
}

// Run opens the window and blocks until it is closed.
func Run(settings mandelbrot.Settings) error {
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("mandelview")
	return ebiten.RunGame(NewViewer(settings))
}

func (v *Viewer) Update() error {
	width := v.settings.Width
	height := v.settings.Height

	// Reset and scheme cycling
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.setViewport(mandelbrot.DefaultViewport())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.options.Scheme = (v.options.Scheme + 1) % 3
		v.dirty = true
	}

	// Preset jumps
	presetKeys := map[ebiten.Key]mandelbrot.Viewport{
		ebiten.KeyDigit1: mandelbrot.SeahorseValley,
		ebiten.KeyDigit2: mandelbrot.ElephantValley,
		ebiten.KeyDigit3: mandelbrot.SpiralMinibrot,
		ebiten.KeyDigit4: mandelbrot.TripleSpiral,
		ebiten.KeyDigit5: mandelbrot.ValleyOfTheDragon,
	}
	for key, preset := range presetKeys {
		if inpututil.IsKeyJustPressed(key) {
			v.setViewport(preset)
		}
	}

	// Arrow key panning. Moving the window right means revealing content on
	// the right, which is a negative pixel delta under the pan convention.
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.setViewport(v.viewport.Pan(-panStep, 0, width, height))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.setViewport(v.viewport.Pan(panStep, 0, width, height))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.setViewport(v.viewport.Pan(0, -panStep, width, height))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.setViewport(v.viewport.Pan(0, panStep, width, height))
	}

	// Wheel zooming around the cursor
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		cursorX, cursorY := ebiten.CursorPosition()
		factor := zoomFactor
		if wheelY < 0 {
			factor = 1 / zoomFactor
		}
		v.setViewport(v.viewport.ZoomAt(float64(cursorX), float64(cursorY), factor, width, height))
	}

	// Drag selection zooming
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.dragStartX, v.dragStartY = ebiten.CursorPosition()
		v.dragging = true
	}
	if v.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = false
		cursorX, cursorY := ebiten.CursorPosition()
		if math.Abs(float64(cursorX-v.dragStartX)) >= minimumDrag && math.Abs(float64(cursorY-v.dragStartY)) >= minimumDrag {
			v.setViewport(v.viewport.ZoomToSelection(
				float64(v.dragStartX), float64(v.dragStartY),
				float64(cursorX), float64(cursorY),
				width, height))
		}
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.dirty || v.buffer == nil {
		v.buffer = mandelbrot.Render(v.settings.Width, v.settings.Height, v.viewport, v.options)
		v.dirty = false
	}
	screen.WritePixels(v.buffer)

	cursorX, cursorY := ebiten.CursorPosition()
	real, imaginary := v.viewport.PixelToComplex(float64(cursorX), float64(cursorY), v.settings.Width, v.settings.Height)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Scheme: %s | Iterations: %d\nCursor: (%.6f, %.6f)\nViewport: x [%.6f, %.6f] y [%.6f, %.6f]",
		v.options.Scheme, v.options.MaxIterations,
		real, imaginary,
		v.viewport.XMin, v.viewport.XMax, v.viewport.YMin, v.viewport.YMax))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.settings.Width, v.settings.Height
}

func (v *Viewer) setViewport(viewport mandelbrot.Viewport) {
	v.viewport = viewport
	v.dirty = true
}
