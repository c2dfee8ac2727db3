package main

import (
	"image/png"
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/alexflint/go-arg"

	"mandelview/coordinator"
	"mandelview/mandelbrot"
	"mandelview/misc"
	"mandelview/viewer"
	"mandelview/worker"
)

type renderCommand struct {
	Width         int     `arg:"--width" default:"1920" help:"width of the output image in pixels"`
	Height        int     `arg:"--height" default:"1080" help:"height of the output image in pixels"`
	MaxIterations int     `arg:"--iterations" default:"100" help:"iteration depth per point"`
	Scheme        string  `arg:"--scheme" default:"grayscale" help:"color scheme: grayscale, rainbow or fire"`
	Preset        string  `arg:"--preset" help:"named viewport: default, seahorse, elephant, minibrot, spiral or dragon"`
	XMin          float64 `arg:"--xmin" default:"-2.5" help:"left bound of the viewport"`
	XMax          float64 `arg:"--xmax" default:"1" help:"right bound of the viewport"`
	YMin          float64 `arg:"--ymin" default:"-1.5" help:"top bound of the viewport"`
	YMax          float64 `arg:"--ymax" default:"1.5" help:"bottom bound of the viewport"`
	Output        string  `arg:"positional" default:"mandelbrot.png" help:"output png file"`
}

type coordinatorCommand struct {
	Settings string `arg:"positional,required" help:"json settings file for the run"`
}

type workerCommand struct {
	Settings string `arg:"positional,required" help:"json settings file with the coordinator address"`
	Count    int    `arg:"--count" default:"2" help:"number of workers to create"`
}

type viewCommand struct {
	Width         int    `arg:"--width" default:"960" help:"window width in pixels"`
	Height        int    `arg:"--height" default:"720" help:"window height in pixels"`
	MaxIterations int    `arg:"--iterations" default:"100" help:"iteration depth per point"`
	Scheme        string `arg:"--scheme" default:"grayscale" help:"color scheme: grayscale, rainbow or fire"`
	Preset        string `arg:"--preset" help:"named viewport to open on"`
}

var args struct {
	Render      *renderCommand      `arg:"subcommand:render" help:"render a single frame to a png file"`
	Coordinator *coordinatorCommand `arg:"subcommand:coordinator" help:"run the coordinator for a distributed render"`
	Worker      *workerCommand      `arg:"subcommand:worker" help:"run workers that render rows for a coordinator"`
	View        *viewCommand        `arg:"subcommand:view" help:"open the interactive viewer"`
}

func main() {
	arg.MustParse(&args)
	logger := bslogger.NewLogger("mandelview", bslogger.Normal, nil)

	switch {
	case args.Render != nil:
		runRender(args.Render, logger)

	case args.Coordinator != nil:
		c := coordinator.NewCoordinator(args.Coordinator.Settings)
		<-c.Done

	case args.Worker != nil:
		workers := make([]*worker.Worker, 0, args.Worker.Count)
		for i := 0; i < args.Worker.Count; i++ {
			workers = append(workers, worker.NewWorker(args.Worker.Settings))
		}
		for _, w := range workers {
			<-w.Done
		}

	case args.View != nil:
		settings := mandelbrot.Settings{
			Width:         args.View.Width,
			Height:        args.View.Height,
			MaxIterations: args.View.MaxIterations,
			Scheme:        parseScheme(args.View.Scheme, logger),
			Viewport:      lookupPreset(args.View.Preset, mandelbrot.DefaultViewport(), logger),
		}
		misc.CheckError(settings.Verify(), logger, misc.Fatal)
		misc.CheckError(viewer.Run(settings), logger, misc.Fatal)

	default:
		logger.Fatal("Please specify a subcommand: render, coordinator, worker or view")
	}
}

func runRender(command *renderCommand, logger bslogger.Logger) {
	viewport := mandelbrot.Viewport{
		XMin: command.XMin,
		XMax: command.XMax,
		YMin: command.YMin,
		YMax: command.YMax,
	}
	viewport = lookupPreset(command.Preset, viewport, logger)

	settings := mandelbrot.Settings{
		Width:         command.Width,
		Height:        command.Height,
		MaxIterations: command.MaxIterations,
		Scheme:        parseScheme(command.Scheme, logger),
		Viewport:      viewport,
	}
	misc.CheckError(settings.Verify(), logger, misc.Fatal)

	image := mandelbrot.RenderImage(settings.Width, settings.Height, settings.Viewport, settings.Options())

	file, err := os.Create(command.Output)
	misc.CheckError(err, logger, misc.Fatal)
	misc.CheckError(png.Encode(file, image), logger, misc.Fatal)
	misc.CheckError(file.Close(), logger, misc.Fatal)
	logger.Infof("Saved image to %s", command.Output)
}

func parseScheme(name string, logger bslogger.Logger) mandelbrot.ColorScheme {
	scheme, err := mandelbrot.ParseColorScheme(name)
	misc.CheckError(err, logger, misc.Fatal)
	return scheme
}

func lookupPreset(name string, fallback mandelbrot.Viewport, logger bslogger.Logger) mandelbrot.Viewport {
	if name == "" {
		return fallback
	}
	viewport, ok := mandelbrot.Preset(name)
	if !ok {
		logger.Fatalf("Unknown preset %q. Known presets: %v", name, mandelbrot.PresetNames())
	}
	return viewport
}
