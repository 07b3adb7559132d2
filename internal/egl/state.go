package egl

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Step names a stage of context negotiation.
type Step string

// Negotiation steps, in order.
const (
	StepGetDisplay    Step = "eglGetDisplay"
	StepInitialize    Step = "eglInitialize"
	StepGetConfigs    Step = "eglGetConfigs"
	StepChooseConfig  Step = "eglChooseConfig"
	StepCreateSurface Step = "eglCreateWindowSurface"
	StepCreateContext Step = "eglCreateContext"
	StepMakeCurrent   Step = "eglMakeCurrent"
)

// NegotiationError describes the step at which negotiation failed and the
// EGL error code reported for it.
type NegotiationError struct {
	Step Step
	Code int32
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("%s failed (EGL error 0x%x)", e.Step, e.Code)
}

// State is the rendering context record. The three platform handles are
// either all valid or all empty.
//
// A State must only be used from the thread that negotiated it.
type State struct {
	Width, Height int32
	Window        NativeWindow

	Display Display
	Context Context
	Surface Surface

	Major, Minor int32

	drv        Driver
	extensions string
}

// Negotiate binds an OpenGL ES 2 context to the given native window. The
// attribute lists must be terminated by NONE.
//
// On failure every handle created so far is released and a
// *NegotiationError is returned.
func Negotiate(drv Driver, native NativeDisplay, win NativeWindow,
	width, height int32, configAttribs, surfaceAttribs AttribList) (*State, error) {
	configAttribs.mustBeTerminated("config")
	surfaceAttribs.mustBeTerminated("surface")

	s := &State{Width: width, Height: height, Window: win, drv: drv}
	fail := func(step Step) (*State, error) {
		err := &NegotiationError{Step: step, Code: drv.GetError()}
		s.Destroy()
		return nil, err
	}

	display := drv.GetDisplay(native)
	if display == NoDisplay {
		return fail(StepGetDisplay)
	}
	major, minor, ok := drv.Initialize(display)
	if !ok {
		return fail(StepInitialize)
	}
	s.Display, s.Major, s.Minor = display, major, minor
	log.Printf("EGL %d.%d initialized (%s)\n", major, minor,
		drv.QueryString(display, VENDOR))

	num, ok := drv.GetConfigs(display)
	if !ok {
		return fail(StepGetConfigs)
	}
	log.Printf("display offers %d configs\n", num)

	config, ok := drv.ChooseConfig(display, configAttribs)
	if !ok || config == NoConfig {
		return fail(StepChooseConfig)
	}

	s.extensions = drv.QueryString(display, EXTENSIONS)
	if _, set := surfaceAttribs.Get(POST_SUB_BUFFER_SUPPORTED_NV); set &&
		!s.HasExtension("EGL_NV_post_sub_buffer") {
		log.Println("EGL_NV_post_sub_buffer not supported, dropping surface attribute")
		surfaceAttribs = surfaceAttribs.Without(POST_SUB_BUFFER_SUPPORTED_NV)
	}

	surface := drv.CreateWindowSurface(display, config, win, surfaceAttribs)
	if surface == NoSurface {
		return fail(StepCreateSurface)
	}
	s.Surface = surface

	context := drv.CreateContext(display, config, NoContext, contextAttribs)
	if context == NoContext {
		return fail(StepCreateContext)
	}
	s.Context = context

	if !drv.MakeCurrent(display, surface, surface, context) {
		return fail(StepMakeCurrent)
	}
	return s, nil
}

// HasExtension reports whether the display advertises the given extension.
func (s *State) HasExtension(name string) bool {
	for _, ext := range strings.Fields(s.extensions) {
		if ext == name {
			return true
		}
	}
	return false
}

// Extensions returns the display's extension string.
func (s *State) Extensions() string {
	return s.extensions
}

// SwapBuffers presents the surface.
func (s *State) SwapBuffers() error {
	if s.Surface == NoSurface {
		return errors.New("eglSwapBuffers: no surface")
	}
	if !s.drv.SwapBuffers(s.Display, s.Surface) {
		return errors.Errorf("eglSwapBuffers failed (EGL error 0x%x)", s.drv.GetError())
	}
	return nil
}

// SetSwapInterval sets the minimum number of video frames per swap.
func (s *State) SetSwapInterval(interval int32) error {
	if !s.drv.SwapInterval(s.Display, interval) {
		return errors.Errorf("eglSwapInterval(%d) failed (EGL error 0x%x)",
			interval, s.drv.GetError())
	}
	return nil
}

// Destroy releases context, surface and display in that order. Handles
// already in their empty state are skipped, so calling Destroy again is a
// no-op.
func (s *State) Destroy() {
	if s.Display != NoDisplay && (s.Context != NoContext || s.Surface != NoSurface) {
		s.drv.MakeCurrent(s.Display, NoSurface, NoSurface, NoContext)
	}
	if s.Context != NoContext {
		s.drv.DestroyContext(s.Display, s.Context)
		s.Context = NoContext
	}
	if s.Surface != NoSurface {
		s.drv.DestroySurface(s.Display, s.Surface)
		s.Surface = NoSurface
	}
	if s.Display != NoDisplay {
		s.drv.Terminate(s.Display)
		s.drv.ReleaseThread()
		s.Display = NoDisplay
	}
}
