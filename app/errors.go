package app

import (
	"github.com/pkg/errors"
)

// Stage names the part of the setup a SetupError originates from.
type Stage string

// Setup stages, in the order they run.
const (
	StageWindow   Stage = "window"
	StageContext  Stage = "context"
	StageGraphics Stage = "graphics"
)

// SetupError is returned when the demo could not be brought up. Everything
// created before the failure has already been released.
type SetupError struct {
	Stage Stage
	// the failure reported by the stage; may be a *egl.NegotiationError,
	// *scene.CompileError or *scene.LinkError.
	Inner error
}

func (e *SetupError) Error() string {
	if e.Inner == nil {
		return string(e.Stage) + " setup failed"
	}
	return string(e.Stage) + " setup failed: " + e.Inner.Error()
}

// Unwrap returns the inner error.
func (e *SetupError) Unwrap() error {
	return e.Inner
}

// Cause returns the inner error.
func (e *SetupError) Cause() error {
	return e.Inner
}

// ExitCode maps the result of a run to a process exit status: 0 for
// success, 2, 3 and 4 for failures in the window, context and graphics
// stages, and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *SetupError
	if errors.As(err, &se) {
		switch se.Stage {
		case StageWindow:
			return 2
		case StageContext:
			return 3
		case StageGraphics:
			return 4
		}
	}
	return 1
}
