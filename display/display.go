/*
Package display owns the SDL window the demo renders into and translates
SDL events into the demo's exit codes.

All functions must be called from the main thread after sdl.Init.
*/
package display

import (
	"log"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/QuestScreen/esdemo/config"
	"github.com/QuestScreen/esdemo/internal/egl"
)

// Window is a native window EGL can create a surface for.
type Window struct {
	Window  *sdl.Window
	actions []config.KeyAction
}

// NewWindow creates and shows the window described by cfg. The window is
// created without SDL's own GL support since EGL manages the context.
func NewWindow(cfg config.Config) (*Window, error) {
	var flags uint32 = sdl.WINDOW_SHOWN
	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
		width, height = 0, 0
	}
	w, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create window")
	}
	ww, wh := w.GetSize()
	log.Printf("created window %q (%dx%d)\n", cfg.Title, ww, wh)
	return &Window{Window: w, actions: cfg.KeyActions}, nil
}

// NativeHandles returns the platform display connection and window handle
// backing the SDL window.
func (w *Window) NativeHandles() (egl.NativeDisplay, egl.NativeWindow, error) {
	info, err := w.Window.GetWMInfo()
	if err != nil {
		return 0, 0, errors.Wrap(err, "unable to query window manager info")
	}
	return handlesFromInfo(info)
}

func handlesFromInfo(info *sdl.SysWMInfo) (egl.NativeDisplay, egl.NativeWindow, error) {
	switch info.Subsystem {
	case sdl.SYSWM_X11:
		x11 := info.GetX11Info()
		return egl.NativeDisplay(uintptr(x11.Display)), egl.NativeWindow(x11.Window), nil
	case sdl.SYSWM_WINDOWS:
		win := info.GetWindowsInfo()
		return egl.DefaultDisplay, egl.NativeWindow(uintptr(win.Window)), nil
	default:
		return 0, 0, errors.Errorf("unsupported window subsystem %d", info.Subsystem)
	}
}

// DrawableSize returns the size of the window's client area in pixels.
func (w *Window) DrawableSize() (width, height int32) {
	return w.Window.GetSize()
}

// PollEvents processes all pending events. done is true when one of them
// requests the window to close; code is the return value of the first such
// request.
func (w *Window) PollEvents() (done bool, code int) {
	return drain(sdl.PollEvent, w.actions)
}

// drain consumes events from next until it returns nil.
func drain(next func() sdl.Event, actions []config.KeyAction) (done bool, code int) {
	for event := next(); event != nil; event = next() {
		if done {
			continue
		}
		done, code = Classify(event, actions)
	}
	return
}

// Destroy closes the window. Calling it again does nothing.
func (w *Window) Destroy() {
	if w.Window == nil {
		return
	}
	if err := w.Window.Destroy(); err != nil {
		log.Printf("unable to destroy window: %s\n", err.Error())
	}
	w.Window = nil
}
