package app

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuestScreen/esdemo/config"
	"github.com/QuestScreen/esdemo/internal/egl"
	"github.com/QuestScreen/esdemo/internal/gles"
	"github.com/QuestScreen/esdemo/internal/gles/glestest"
	"github.com/QuestScreen/esdemo/scene"
)

// fakeWindow asks to close after closeAfter polls.
type fakeWindow struct {
	handleErr  error
	closeAfter int
	code       int
	polls      int
}

func (w *fakeWindow) NativeHandles() (egl.NativeDisplay, egl.NativeWindow, error) {
	if w.handleErr != nil {
		return 0, 0, w.handleErr
	}
	return egl.DefaultDisplay, 42, nil
}

func (w *fakeWindow) DrawableSize() (int32, int32) { return 640, 480 }

func (w *fakeWindow) PollEvents() (bool, int) {
	w.polls++
	if w.polls >= w.closeAfter {
		return true, w.code
	}
	return false, 0
}

// fakeEGL tracks live handles. Setting failAt makes that step fail.
type fakeEGL struct {
	failAt    egl.Step
	live      map[string]bool
	swaps     int
	interval  int32
	swapFails bool
	released  int
}

func newFakeEGL() *fakeEGL {
	return &fakeEGL{live: make(map[string]bool), interval: -1}
}

func (f *fakeEGL) GetDisplay(native egl.NativeDisplay) egl.Display {
	if f.failAt == egl.StepGetDisplay {
		return egl.NoDisplay
	}
	return 1
}

func (f *fakeEGL) Initialize(d egl.Display) (int32, int32, bool) {
	if f.failAt == egl.StepInitialize {
		return 0, 0, false
	}
	f.live["display"] = true
	return 1, 4, true
}

func (f *fakeEGL) GetConfigs(d egl.Display) (int32, bool) {
	return 4, f.failAt != egl.StepGetConfigs
}

func (f *fakeEGL) ChooseConfig(d egl.Display, attribs egl.AttribList) (egl.Config, bool) {
	if f.failAt == egl.StepChooseConfig {
		return egl.NoConfig, false
	}
	return 2, true
}

func (f *fakeEGL) CreateWindowSurface(d egl.Display, c egl.Config, win egl.NativeWindow, attribs egl.AttribList) egl.Surface {
	if f.failAt == egl.StepCreateSurface {
		return egl.NoSurface
	}
	f.live["surface"] = true
	return 3
}

func (f *fakeEGL) CreateContext(d egl.Display, c egl.Config, share egl.Context, attribs egl.AttribList) egl.Context {
	if f.failAt == egl.StepCreateContext {
		return egl.NoContext
	}
	f.live["context"] = true
	return 4
}

func (f *fakeEGL) MakeCurrent(d egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	return ctx == egl.NoContext || f.failAt != egl.StepMakeCurrent
}

func (f *fakeEGL) SwapBuffers(d egl.Display, s egl.Surface) bool {
	f.swaps++
	return !f.swapFails
}

func (f *fakeEGL) SwapInterval(d egl.Display, interval int32) bool {
	f.interval = interval
	return true
}

func (f *fakeEGL) DestroyContext(d egl.Display, ctx egl.Context) bool {
	delete(f.live, "context")
	return true
}

func (f *fakeEGL) DestroySurface(d egl.Display, s egl.Surface) bool {
	delete(f.live, "surface")
	return true
}

func (f *fakeEGL) Terminate(d egl.Display) bool {
	delete(f.live, "display")
	return true
}

func (f *fakeEGL) ReleaseThread() bool {
	f.released++
	return true
}

func (f *fakeEGL) GetError() int32 { return 0x3003 }

func (f *fakeEGL) QueryString(d egl.Display, name int32) string {
	if name == egl.EXTENSIONS {
		return "EGL_KHR_image_base EGL_NV_post_sub_buffer"
	}
	return "fake"
}

func newGL() *glestest.Recorder {
	return glestest.New(map[string]gles.Attrib{scene.PositionAttrib: 0})
}

func TestRunUntilClosed(t *testing.T) {
	win := &fakeWindow{closeAfter: 5, code: 3}
	drv := newFakeEGL()
	gl := newGL()
	a := New(config.Default(), win, drv, gl)

	code, err := a.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, int64(5), a.Frames())
	assert.Equal(t, 5, drv.swaps)
	assert.Len(t, gl.Draws, 5)
	assert.Equal(t, int32(1), drv.interval)
	assert.Empty(t, drv.live, "handles left after teardown")
	assert.Equal(t, 1, drv.released)
	assert.Equal(t, 1, gl.Count("DeleteProgram"))
}

func TestRenderBeforeTermination(t *testing.T) {
	// a close request seen while draining events still follows the frame
	// that was rendered before it.
	win := &fakeWindow{closeAfter: 1}
	drv := newFakeEGL()
	gl := newGL()
	code, err := New(config.Default(), win, drv, gl).Run()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Len(t, gl.Draws, 1)
	assert.Equal(t, 1, drv.swaps)
}

func TestSwapFailureIsNotFatal(t *testing.T) {
	win := &fakeWindow{closeAfter: 3}
	drv := newFakeEGL()
	drv.swapFails = true
	code, err := New(config.Default(), win, drv, newGL()).Run()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 3, drv.swaps)
}

func TestVSyncOff(t *testing.T) {
	cfg := config.Default()
	cfg.VSync = false
	drv := newFakeEGL()
	_, err := New(cfg, &fakeWindow{closeAfter: 1}, drv, newGL()).Run()
	require.NoError(t, err)
	assert.Equal(t, int32(0), drv.interval)
}

func TestWindowFailure(t *testing.T) {
	win := &fakeWindow{handleErr: errors.New("unsupported window subsystem")}
	drv := newFakeEGL()
	code, err := New(config.Default(), win, drv, newGL()).Run()
	assert.Equal(t, 2, code)
	var se *SetupError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageWindow, se.Stage)
	assert.Equal(t, 0, win.polls)
}

func TestContextFailure(t *testing.T) {
	for _, step := range []egl.Step{
		egl.StepGetDisplay, egl.StepInitialize, egl.StepChooseConfig,
		egl.StepCreateSurface, egl.StepCreateContext, egl.StepMakeCurrent,
	} {
		t.Run(string(step), func(t *testing.T) {
			drv := newFakeEGL()
			drv.failAt = step
			gl := newGL()
			code, err := New(config.Default(), &fakeWindow{closeAfter: 1}, drv, gl).Run()
			assert.Equal(t, 3, code)

			var ne *egl.NegotiationError
			require.True(t, errors.As(err, &ne))
			assert.Equal(t, step, ne.Step)
			assert.Empty(t, drv.live)
			assert.Empty(t, gl.Calls, "no GL calls without a context")
		})
	}
}

func TestGraphicsFailure(t *testing.T) {
	drv := newFakeEGL()
	gl := newGL()
	gl.FailLink = true
	win := &fakeWindow{closeAfter: 1}
	code, err := New(config.Default(), win, drv, gl).Run()
	assert.Equal(t, 4, code)

	var le *scene.LinkError
	require.True(t, errors.As(err, &le))
	assert.Empty(t, drv.live, "context must be torn down after a graphics failure")
	assert.Equal(t, 0, drv.swaps)
	assert.Equal(t, 0, win.polls)
}

func TestCloseIsIdempotent(t *testing.T) {
	drv := newFakeEGL()
	gl := newGL()
	a := New(config.Default(), &fakeWindow{closeAfter: 1}, drv, gl)
	_, err := a.Run()
	require.NoError(t, err)
	a.Close()
	a.Close()
	assert.Equal(t, 1, drv.released)
	assert.Equal(t, 1, gl.Count("DeleteProgram"))
}
