package coordinator

import (
	"encoding/json"
	"errors"
	"fmt"
	gimage "image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"

	"mandelview/mandelbrot"
	"mandelview/misc"
	"mandelview/task"
)

// frameTask tracks one animation frame while its pixels trickle in from
// workers.
type frameTask struct {
	image      *gimage.RGBA
	pixelsLeft int
}

type Coordinator struct {
	clients             map[string]*multirpc.TcpClient
	frames              map[uint]*frameTask
	frameCompletedCount uint
	frameCount          uint
	logger              bslogger.Logger
	mutex               sync.Mutex
	pixelCount          int
	rectangle           gimage.Rectangle
	settings            settings
	taskCount           uint
	taskGeneratedCount  uint
	taskIngestedCount   uint
	tasksHandedOut      map[string]map[uint]task.Task // keep track of all tasks workers have
	tasksDone           chan task.Task
	tasksTodo           chan task.Task
	workerWait          *sync.WaitGroup

	Done   chan struct{}
	Server multirpc.TcpServer
}

func NewCoordinator(settingsFile string) *Coordinator {
	settings := NewSettings(settingsFile)

	coordinator := &Coordinator{
		clients:    make(map[string]*multirpc.TcpClient),
		frames:     make(map[uint]*frameTask),
		logger:     bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		pixelCount: settings.RenderSettings.Width * settings.RenderSettings.Height,
		rectangle: gimage.Rectangle{
			Min: gimage.Point{
				X: 0,
				Y: 0,
			},
			Max: gimage.Point{
				X: settings.RenderSettings.Width,
				Y: settings.RenderSettings.Height,
			},
		},
		settings:       settings,
		tasksHandedOut: make(map[string]map[uint]task.Task),
		tasksDone:      make(chan task.Task, 1000),
		tasksTodo:      make(chan task.Task, 1000),
		workerWait:     &sync.WaitGroup{},
		Done:           make(chan struct{}),
	}

	// Each transition contributes its frames to the run
	for i := 0; i < len(settings.TransitionSettings); i++ {
		coordinator.frameCount += settings.TransitionSettings[i].FrameCount
	}

	// Determine the number of tasks that will be generated so the coordinator knows when to shut down
	switch settings.TaskGeneration {
	case task.Row:
		coordinator.taskCount = uint(settings.RenderSettings.Height) * coordinator.frameCount
	case task.Frame:
		coordinator.taskCount = coordinator.frameCount
	default:
		coordinator.logger.Fatalf("Unknown generation type: %d", settings.TaskGeneration)
	}

	// Start up the rpc tcp server to allow workers to communicate with the coordinator
	coordinator.Server = multirpc.NewTcpServer(coordinator, settings.ServerAddress, "CoordinatorServer")
	misc.CheckError(coordinator.Server.Run(), coordinator.logger, misc.Fatal)

	// Create directory to store files for this run
	if _, err := os.Stat(filepath.Join(settings.SavePath, settings.RunName)); os.IsNotExist(err) {
		err = os.Mkdir(filepath.Join(settings.SavePath, settings.RunName), os.ModePerm)
		if err != nil {
			coordinator.logger.Fatalf("Unable to create folder: %s", err)
		}
	}

	// Copy the settings to the directory so the run can be duplicated in the future
	bytes, err := json.Marshal(settings)
	misc.CheckError(err, coordinator.logger, misc.Fatal)
	bytesWritten, err := misc.WriteFile(filepath.Join(settings.SavePath, settings.RunName, "settings.json"), bytes)
	if err != nil || bytesWritten == 0 {
		coordinator.logger.Fatalf("Unable to make a backup copy of settingsFile: %s", settingsFile)
	}

	// Create a log file to record the run
	logFile, err := os.Create(filepath.Join(settings.SavePath, settings.RunName, "coordinator.log"))
	misc.CheckError(err, coordinator.logger, misc.Warning)
	coordinator.logger = bslogger.NewLogger("Coordinator", bslogger.Normal, logFile)

	go coordinator.tickers()
	go coordinator.generateTasks()
	go coordinator.ingestTasks()

	return coordinator
}

func (c *Coordinator) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			c.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			for _, v := range c.clients {
				var reply bool
				err := v.Call("Worker.RollCall", junk, &reply)
				if err != nil {
					// Cannot communicate with the worker
					c.logger.Warningf("Worker %s missed roll call: %s", v.Name(), err)
					misc.CheckError(v.Disconnect(), c.logger, misc.Warning)

					// Remove worker from pool
					var nothing misc.Nothing
					misc.CheckError(c.DeRegisterWorker(v.Name(), &nothing), c.logger, misc.Warning)
				}
			}

		case <-heartBeat.C:
			c.logger.Debug("Heart beat ticker")
			c.logger.Infof("Tasks [Generated: %d] [Ingested: %d] | Frames [Completed: %d] [WIP: %d] [Todo: %d]", c.taskGeneratedCount, c.taskIngestedCount, c.frameCompletedCount, len(c.frames), c.frameCount-c.frameCompletedCount)
		}
	}
}

func (c *Coordinator) generateTasks() {
	c.logger.Info("Generating tasks")

	var frameNumber uint = 1
	var startTime = time.Now()

	width := c.settings.RenderSettings.Width
	height := c.settings.RenderSettings.Height

	// Transitions chain: each leg picks up the viewport the previous one
	// ended on
	viewport := c.settings.RenderSettings.Viewport

	for transitionStep := 0; transitionStep < len(c.settings.TransitionSettings); transitionStep++ {
		transition := c.settings.TransitionSettings[transitionStep]

		var currentFrame uint
		for currentFrame = 1; currentFrame <= transition.FrameCount; currentFrame++ {
			switch c.settings.TaskGeneration {
			case task.Row:
				for row := 0; row < height; row++ {
					taskTodo := task.NewTask(c.taskGeneratedCount, frameNumber, viewport)
					taskTodo.SpanRow(row)
					c.tasksTodo <- taskTodo
					c.taskGeneratedCount++
				}
			case task.Frame:
				taskTodo := task.NewTask(c.taskGeneratedCount, frameNumber, viewport)
				taskTodo.SpanFrame(height)
				c.tasksTodo <- taskTodo
				c.taskGeneratedCount++
			default:
				c.logger.Fatalf("Unknown generation type: %d", c.settings.TaskGeneration)
			}

			// Glide the focus point along the transition, easing
			// exponentially so the motion matches the zoom rate
			t := float64(currentFrame) / float64(transition.FrameCount)
			var focusX, focusY float64
			if transition.zoomingIn() {
				focusX = misc.LerpFloat64(transition.StartX, transition.EndX, misc.EaseOutExpo(t))
				focusY = misc.LerpFloat64(transition.StartY, transition.EndY, misc.EaseOutExpo(t))
			} else {
				focusX = misc.LerpFloat64(transition.StartX, transition.EndX, misc.EaseInExpo(t))
				focusY = misc.LerpFloat64(transition.StartY, transition.EndY, misc.EaseInExpo(t))
			}

			// Derive the next frame's viewport by rescaling around the
			// focus point's pixel
			px, py := viewport.ComplexToPixel(focusX, focusY, width, height)
			viewport = viewport.ZoomAt(float64(px), float64(py), transition.ZoomStep, width, height)

			frameNumber++
		}
	}

	close(c.tasksTodo)

	c.logger.Debugf("Done generating %d tasks in %s", c.taskGeneratedCount, time.Since(startTime))
}

func (c *Coordinator) ingestTasks() {
	c.logger.Info("Ingesting tasks")

	var startTime = time.Now()

	for {
		if c.taskIngestedCount == c.taskCount {
			// There are no more tasks to ingest
			break
		}

		// Get the next task to work on
		taskReceived := <-c.tasksDone
		c.taskIngestedCount++

		c.mutex.Lock()
		delete(c.tasksHandedOut[taskReceived.WorkerAddress], taskReceived.ID)
		c.mutex.Unlock()

		frame, ok := c.frames[taskReceived.FrameNumber]
		if !ok {
			// Need to create a frame to save the incoming pixels
			frame = &frameTask{
				image:      gimage.NewRGBA(c.rectangle),
				pixelsLeft: c.pixelCount,
			}
			c.frames[taskReceived.FrameNumber] = frame
		}

		// Record each pixel on the frame and decrement the amount of pixels left to be recorded
		for r := 0; r < len(taskReceived.Results); r++ {
			result := taskReceived.Results[r]
			frame.image.SetRGBA(result.Column, result.Row, result.Color)
			frame.pixelsLeft--
		}

		// All pixels have been recorded so save the frame
		if frame.pixelsLeft == 0 {
			path := filepath.Join(c.settings.SavePath, c.settings.RunName, fmt.Sprintf("frame_%04d.png", taskReceived.FrameNumber))
			f, err := os.Create(path)
			if err != nil {
				c.logger.Fatalf("Unable to create image: %s", err)
			}
			err = png.Encode(f, frame.image)
			if err != nil {
				c.logger.Fatalf("Unable to save image: %s", err)
			}
			misc.CheckError(f.Close(), c.logger, misc.Warning)
			c.logger.Infof("Saved frame to %s", path)

			// Remove the frame to conserve memory
			delete(c.frames, taskReceived.FrameNumber)
			c.frameCompletedCount++
		}
	}

	close(c.tasksDone)
	c.logger.Debugf("Done ingesting %d tasks in %s", c.taskIngestedCount, time.Since(startTime))

	c.logger.Infof("Waiting for %d workers to disconnect", len(c.clients))
	c.workerWait.Wait()
	misc.CheckError(c.Server.Stop(), c.logger, misc.Warning)
	close(c.Done)
}

func (c *Coordinator) RegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	// Create a client to communicate with this worker
	client := multirpc.NewTcpClient(workerServerAddress, workerServerAddress)
	c.clients[workerServerAddress] = &client
	misc.CheckError(client.Connect(), c.logger, misc.Warning)

	// Track all tasks this worker checks out
	c.tasksHandedOut[workerServerAddress] = make(map[uint]task.Task)

	c.logger.Infof("Worker joined: %s", workerServerAddress)
	c.workerWait.Add(1)

	return nil
}

func (c *Coordinator) DeRegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	// Put tasks this worker has not returned yet back into the tasksTodo pool
	go func(tasks map[uint]task.Task) {
		for _, v := range tasks {
			c.tasksTodo <- v
		}
	}(c.tasksHandedOut[workerServerAddress])

	// Disconnect from worker
	misc.CheckError(c.clients[workerServerAddress].Disconnect(), c.logger, misc.Warning)

	// Remove stored values associated with this worker
	c.mutex.Lock()
	delete(c.tasksHandedOut, workerServerAddress)
	delete(c.clients, workerServerAddress)
	c.mutex.Unlock()

	c.logger.Infof("Worker left: %s", workerServerAddress)
	c.workerWait.Done()

	return nil
}

func (c *Coordinator) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

func (c *Coordinator) GetTask(workerAddress string, reply *task.Task) error {
	todo, more := <-c.tasksTodo
	if !more {
		c.logger.Info("Telling worker that all tasks are handed out")
		return errors.New("all tasks handed out")
	}
	c.mutex.Lock()
	todo.WorkerAddress = workerAddress
	c.tasksHandedOut[workerAddress][todo.ID] = todo
	c.mutex.Unlock()
	*reply = todo
	return nil
}

func (c *Coordinator) ReturnTask(done task.Task, nothing *misc.Nothing) error {
	c.tasksDone <- done
	return nil
}

func (c *Coordinator) GetRenderSettings(nothing misc.Nothing, settings *mandelbrot.Settings) error {
	*settings = c.settings.RenderSettings
	return nil
}
