//go:build linux && cgo
// +build linux,cgo

package egl

/*
#cgo pkg-config: egl
#cgo CFLAGS: -DEGL_NO_X11

#include <EGL/egl.h>
#include <EGL/eglext.h>
*/
import "C"

import "unsafe"

type cDriver struct{}

// Load returns the driver backed by the system's libEGL.
func Load() (Driver, error) {
	return cDriver{}, nil
}

func cDisplay(d Display) C.EGLDisplay { return C.EGLDisplay(unsafe.Pointer(d)) }
func cConfig(c Config) C.EGLConfig    { return C.EGLConfig(unsafe.Pointer(c)) }
func cContext(c Context) C.EGLContext { return C.EGLContext(unsafe.Pointer(c)) }
func cSurface(s Surface) C.EGLSurface { return C.EGLSurface(unsafe.Pointer(s)) }

func cAttribs(l AttribList) *C.EGLint {
	if len(l) == 0 {
		return nil
	}
	return (*C.EGLint)(unsafe.Pointer(&l[0]))
}

func (cDriver) GetDisplay(native NativeDisplay) Display {
	return Display(uintptr(unsafe.Pointer(
		C.eglGetDisplay(C.EGLNativeDisplayType(unsafe.Pointer(native))))))
}

func (cDriver) Initialize(d Display) (int32, int32, bool) {
	var maj, min C.EGLint
	ret := C.eglInitialize(cDisplay(d), &maj, &min)
	return int32(maj), int32(min), ret == C.EGL_TRUE
}

func (cDriver) GetConfigs(d Display) (int32, bool) {
	var num C.EGLint
	ret := C.eglGetConfigs(cDisplay(d), nil, 0, &num)
	return int32(num), ret == C.EGL_TRUE
}

func (cDriver) ChooseConfig(d Display, attribs AttribList) (Config, bool) {
	var cfg C.EGLConfig
	var num C.EGLint
	if C.eglChooseConfig(cDisplay(d), cAttribs(attribs), &cfg, 1, &num) != C.EGL_TRUE || num < 1 {
		return NoConfig, false
	}
	return Config(uintptr(unsafe.Pointer(cfg))), true
}

func (cDriver) CreateWindowSurface(d Display, c Config, win NativeWindow, attribs AttribList) Surface {
	surf := C.eglCreateWindowSurface(cDisplay(d), cConfig(c),
		C.EGLNativeWindowType(win), cAttribs(attribs))
	return Surface(uintptr(unsafe.Pointer(surf)))
}

func (cDriver) CreateContext(d Display, c Config, share Context, attribs AttribList) Context {
	ctx := C.eglCreateContext(cDisplay(d), cConfig(c), cContext(share), cAttribs(attribs))
	return Context(uintptr(unsafe.Pointer(ctx)))
}

func (cDriver) MakeCurrent(d Display, draw, read Surface, ctx Context) bool {
	return C.eglMakeCurrent(cDisplay(d), cSurface(draw), cSurface(read), cContext(ctx)) == C.EGL_TRUE
}

func (cDriver) SwapBuffers(d Display, s Surface) bool {
	return C.eglSwapBuffers(cDisplay(d), cSurface(s)) == C.EGL_TRUE
}

func (cDriver) SwapInterval(d Display, interval int32) bool {
	return C.eglSwapInterval(cDisplay(d), C.EGLint(interval)) == C.EGL_TRUE
}

func (cDriver) DestroyContext(d Display, ctx Context) bool {
	return C.eglDestroyContext(cDisplay(d), cContext(ctx)) == C.EGL_TRUE
}

func (cDriver) DestroySurface(d Display, s Surface) bool {
	return C.eglDestroySurface(cDisplay(d), cSurface(s)) == C.EGL_TRUE
}

func (cDriver) Terminate(d Display) bool {
	return C.eglTerminate(cDisplay(d)) == C.EGL_TRUE
}

func (cDriver) ReleaseThread() bool {
	return C.eglReleaseThread() == C.EGL_TRUE
}

func (cDriver) GetError() int32 {
	return int32(C.eglGetError())
}

func (cDriver) QueryString(d Display, name int32) string {
	s := C.eglQueryString(cDisplay(d), C.EGLint(name))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
