/*
Package app brings up the EGL context and the scene on a window, runs the
frame loop and tears everything down again.
*/
package app

import (
	"log"
	"time"

	"github.com/QuestScreen/esdemo/config"
	"github.com/QuestScreen/esdemo/internal/egl"
	"github.com/QuestScreen/esdemo/internal/gles"
	"github.com/QuestScreen/esdemo/internal/logging"
	"github.com/QuestScreen/esdemo/scene"
)

// Window is the native window the demo renders into.
type Window interface {
	NativeHandles() (egl.NativeDisplay, egl.NativeWindow, error)
	DrawableSize() (width, height int32)
	// PollEvents drains pending events. done is true once the window has
	// been asked to close with the given return value.
	PollEvents() (done bool, code int)
}

// App owns the rendering context and the scene. It must be used from the
// thread it was created on.
type App struct {
	cfg    config.Config
	window Window
	drv    egl.Driver
	gl     gles.Functions

	state    *egl.State
	triangle *scene.Triangle
	frames   int64
}

// New creates an app rendering into window. Nothing is initialized before
// Run is called.
func New(cfg config.Config, window Window, drv egl.Driver, gl gles.Functions) *App {
	return &App{cfg: cfg, window: window, drv: drv, gl: gl}
}

// Run sets up the context and the scene and renders until the window is
// asked to close. It returns the requested exit code. If setup fails, the
// error is a *SetupError and the code is ExitCode(err).
//
// Everything is torn down before Run returns.
func (a *App) Run() (int, error) {
	defer a.Close()
	if err := a.setup(); err != nil {
		log.Printf("%s\n", err.Error())
		return ExitCode(err), err
	}
	return a.loop(), nil
}

func (a *App) setup() error {
	native, win, err := a.window.NativeHandles()
	if err != nil {
		return &SetupError{Stage: StageWindow, Inner: err}
	}
	width, height := a.window.DrawableSize()
	a.state, err = egl.Negotiate(a.drv, native, win, width, height,
		egl.DefaultConfigAttribs, egl.DefaultSurfaceAttribs)
	if err != nil {
		return &SetupError{Stage: StageContext, Inner: err}
	}

	var interval int32
	if a.cfg.VSync {
		interval = 1
	}
	if err := a.state.SetSwapInterval(interval); err != nil {
		log.Printf("%s\n", err.Error())
	}

	a.triangle, err = scene.NewTriangle(a.gl, int(width), int(height), a.cfg.GreyStep)
	if err != nil {
		return &SetupError{Stage: StageGraphics, Inner: err}
	}
	return nil
}

func (a *App) loop() int {
	var (
		done       bool
		code       int
		start      = time.Now()
		frameCount = int64(0)
	)
	for !done {
		a.triangle.Render()
		if err := a.state.SwapBuffers(); err != nil {
			log.Printf("%s\n", err.Error())
		}
		a.frames++
		if logging.Debug() {
			frameCount++
			if curTime := time.Now(); curTime.Sub(start) >= time.Second {
				logging.Debugf("FPS: %d", frameCount)
				start = curTime
				frameCount = 0
			}
		}
		done, code = a.window.PollEvents()
	}
	log.Printf("closing after %d frames with return value %d\n", a.frames, code)
	return code
}

// Frames returns the number of frames rendered so far.
func (a *App) Frames() int64 {
	return a.frames
}

// Close releases the scene, then the context, surface and display. It is
// safe to call more than once.
func (a *App) Close() {
	if a.triangle != nil {
		a.triangle.Release()
		a.triangle = nil
	}
	if a.state != nil {
		a.state.Destroy()
		a.state = nil
	}
}
