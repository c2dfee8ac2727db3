package coordinator

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelview/mandelbrot"
	"mandelview/misc"
	"mandelview/task"
)

type settings struct {
	logger bslogger.Logger

	RenderSettings     mandelbrot.Settings
	RunName            string
	SavePath           string
	ServerAddress      string
	TaskGeneration     task.Generation
	TransitionSettings []transitionSettings
}

func NewSettings(settingsFile string) settings {
	s := settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	err, fileBytes := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("My Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Run Name: %s\n", s.RunName)
	output += fmt.Sprintf("Save Path: %s\n", s.SavePath)
	output += fmt.Sprintf("Task Generation: %s\n", s.TaskGeneration)
	return output
}

func (s *settings) Verify() error {
	misc.CheckError(s.RenderSettings.Verify(), s.logger, misc.Fatal)
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if s.ServerAddress == "" {
		s.ServerAddress = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Frame {
		s.TaskGeneration = task.Row
	}
	if len(s.TransitionSettings) == 0 {
		// One still frame focused on the middle of the starting viewport
		viewport := s.RenderSettings.Viewport
		s.TransitionSettings = []transitionSettings{
			{
				FrameCount: 1,
				StartX:     (viewport.XMin + viewport.XMax) / 2,
				StartY:     (viewport.YMin + viewport.YMax) / 2,
				EndX:       (viewport.XMin + viewport.XMax) / 2,
				EndY:       (viewport.YMin + viewport.YMax) / 2,
				ZoomStep:   1.1,
			},
		}
	}

	// Verify each of the transition settings objects
	for i := 0; i < len(s.TransitionSettings); i++ {
		misc.CheckError(s.TransitionSettings[i].Verify(), s.logger, misc.Warning)
	}

	return nil
}
