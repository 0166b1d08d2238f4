package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/cfdsteps/internal/driver"
	"github.com/san-kum/cfdsteps/internal/sim"
	"github.com/san-kum/cfdsteps/internal/viz"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColExact   = rl.NewColor(230, 80, 80, 255)
)

// Options configures the window.
type Options struct {
	Width, Height int
	FPS           int
	Palette       viz.Palette
}

// App hosts a driver.Driver in a raylib window.
type App struct {
	drv    *driver.Driver
	opts   Options
	clock  *rayClock
	snap   sim.Snapshot
	stats  driver.FrameStats
	logger *log.Logger
}

// rayClock reads raylib's monotonic timer.
type rayClock struct {
	last float64
}

func (c *rayClock) Elapsed() float64 {
	now := rl.GetTime()
	d := now - c.last
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}

// reset drops time that passed while no frame ran.
func (c *rayClock) reset() { c.last = rl.GetTime() }

func initWindow(o Options, title string) {
	rl.InitWindow(int32(o.Width), int32(o.Height), title)
	rl.SetTargetFPS(int32(o.FPS))
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func Run(d *driver.Driver, o Options, logger *log.Logger) {
	initWindow(o, d.Step().Title())
	defer rl.CloseWindow()

	app := &App{drv: d, opts: o, clock: &rayClock{}, logger: logger}
	app.clock.reset()
	app.snap = d.Step().Snapshot()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update polls keys and runs one frame. It returns false on quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}

	var err error
	switch {
	case rl.IsKeyPressed(rl.KeyRight):
		err = a.switchTo(a.drv.Next)
	case rl.IsKeyPressed(rl.KeyLeft):
		err = a.switchTo(a.drv.Prev)
	}
	if err != nil && a.logger != nil {
		a.logger.Printf("switch failed: %v", err)
	}

	a.stats = a.drv.Tick(a.clock, driver.SinkFunc(func(s sim.Snapshot) { a.snap = s }))
	return true
}

func (a *App) switchTo(sel func() error) error {
	if err := sel(); err != nil {
		return err
	}
	rl.SetWindowTitle(a.drv.Step().Title())
	a.clock.reset()
	return nil
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	area := rl.NewRectangle(30, 70, float32(a.opts.Width-60), float32(a.opts.Height-140))
	drawSnapshot(a.snap, a.opts.Palette, area)
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	rl.DrawText(a.snap.Title, 30, 24, 24, ColSelect)

	var status string
	if a.snap.Steady {
		status = fmt.Sprintf("sweeps %d  change %.2e", a.snap.Steps, a.snap.Change)
		if a.snap.Converged {
			status += "  converged"
		}
	} else {
		status = fmt.Sprintf("t %.3f  steps %d  dt %.4g", a.snap.Time, a.snap.Steps, a.drv.Step().FixedTimeStep())
	}
	rl.DrawText(status, 30, int32(a.opts.Height-60), 16, ColText)

	h := int32(a.opts.Height - 30)
	rl.DrawText("LEFT/RIGHT: SCHEME  Q: QUIT", int32(a.opts.Width-300), h, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS  %d/frame  frame %d", rl.GetFPS(), a.stats.Advances, a.drv.Frames()), 30, h, 14, ColTextDim)
}
