/*
Package egl negotiates an OpenGL ES 2.0 rendering context for a native window.

The handles are opaque values produced by a Driver. The zero value of each
handle type is the corresponding EGL "empty" sentinel (EGL_NO_DISPLAY,
EGL_NO_CONTEXT, EGL_NO_SURFACE).
*/
package egl

// Handles produced by the driver.
type (
	Display uintptr
	Config  uintptr
	Context uintptr
	Surface uintptr
)

// NativeDisplay and NativeWindow are the platform handles issued by the
// windowing layer. A zero NativeDisplay selects EGL_DEFAULT_DISPLAY.
type (
	NativeDisplay uintptr
	NativeWindow  uintptr
)

// Sentinels.
const (
	NoDisplay Display = 0
	NoContext Context = 0
	NoSurface Surface = 0
	NoConfig  Config  = 0

	DefaultDisplay NativeDisplay = 0
)

// EGL enum values used by this program.
const (
	SUCCESS     = 0x3000
	BAD_DISPLAY = 0x3008
	BAD_MATCH   = 0x3009
	FALSE       = 0
	TRUE        = 1
	DONT_CARE   = -1

	ALPHA_SIZE             = 0x3021
	BLUE_SIZE              = 0x3022
	GREEN_SIZE             = 0x3023
	RED_SIZE               = 0x3024
	DEPTH_SIZE             = 0x3025
	STENCIL_SIZE           = 0x3026
	SAMPLE_BUFFERS         = 0x3032
	NONE                   = 0x3038
	VENDOR                 = 0x3053
	VERSION                = 0x3054
	EXTENSIONS             = 0x3055
	CONTEXT_CLIENT_VERSION = 0x3098

	POST_SUB_BUFFER_SUPPORTED_NV = 0x30BE
)

// Driver is the subset of the EGL API used for negotiation, presentation and
// teardown. Every method maps to the EGL function of the same name; boolean
// results are EGL_TRUE.
type Driver interface {
	GetDisplay(native NativeDisplay) Display
	Initialize(d Display) (major, minor int32, ok bool)
	GetConfigs(d Display) (num int32, ok bool)
	ChooseConfig(d Display, attribs AttribList) (Config, bool)
	CreateWindowSurface(d Display, c Config, win NativeWindow, attribs AttribList) Surface
	CreateContext(d Display, c Config, share Context, attribs AttribList) Context
	MakeCurrent(d Display, draw, read Surface, ctx Context) bool
	SwapBuffers(d Display, s Surface) bool
	SwapInterval(d Display, interval int32) bool
	DestroyContext(d Display, ctx Context) bool
	DestroySurface(d Display, s Surface) bool
	Terminate(d Display) bool
	ReleaseThread() bool
	GetError() int32
	QueryString(d Display, name int32) string
}
