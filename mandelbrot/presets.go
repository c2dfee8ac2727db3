package mandelbrot

// Classic regions of the set, handy as jump targets for the viewer and as
// starting viewports for zoom runs.
var (
	// Seahorse Valley - dense filaments and repeating "seahorse" curls
	SeahorseValley = Viewport{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// Elephant Valley - large bulb with trunk-like tendrils
	ElephantValley = Viewport{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	// Spiral Minibrot - small copy of the set with tight spiral arms
	SpiralMinibrot = Viewport{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// Triple Spiral - threefold symmetric spiral structure
	TripleSpiral = Viewport{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}

	// Valley of the Dragon - deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}
)

var presets = map[string]Viewport{
	"default":  DefaultViewport(),
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"minibrot": SpiralMinibrot,
	"spiral":   TripleSpiral,
	"dragon":   ValleyOfTheDragon,
}

// Preset looks up a named viewport.
func Preset(name string) (Viewport, bool) {
	viewport, ok := presets[name]
	return viewport, ok
}

// PresetNames lists the available preset names in no particular order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
