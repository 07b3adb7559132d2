package egl

import "fmt"

// AttribList is an EGL attribute list: key/value pairs terminated by NONE
// at a key position.
type AttribList []int32

// DefaultConfigAttribs requests an RGBA8888 configuration without
// multisampling; depth and stencil sizes are left to the driver.
var DefaultConfigAttribs = AttribList{
	RED_SIZE, 8,
	GREEN_SIZE, 8,
	BLUE_SIZE, 8,
	ALPHA_SIZE, 8,
	DEPTH_SIZE, DONT_CARE,
	STENCIL_SIZE, DONT_CARE,
	SAMPLE_BUFFERS, 0,
	NONE,
}

// DefaultSurfaceAttribs disables post-sub-buffer support on the surface.
var DefaultSurfaceAttribs = AttribList{
	POST_SUB_BUFFER_SUPPORTED_NV, FALSE,
	NONE, NONE,
}

var contextAttribs = AttribList{
	CONTEXT_CLIENT_VERSION, 2,
	NONE, NONE,
}

// Terminated reports whether the list contains NONE at a key position.
func (l AttribList) Terminated() bool {
	for i := 0; i < len(l); i += 2 {
		if l[i] == NONE {
			return true
		}
	}
	return false
}

// mustBeTerminated panics if l lacks its sentinel. Passing such a list is a
// programming error, not a runtime condition.
func (l AttribList) mustBeTerminated(name string) {
	if !l.Terminated() {
		panic(fmt.Sprintf("egl: %s attribute list is not terminated by EGL_NONE: %v", name, []int32(l)))
	}
}

// Get returns the value for key, if present before the sentinel.
func (l AttribList) Get(key int32) (int32, bool) {
	for i := 0; i+1 < len(l) && l[i] != NONE; i += 2 {
		if l[i] == key {
			return l[i+1], true
		}
	}
	return 0, false
}

// Without returns a copy of l with every pair for key removed. The result is
// always terminated if l was.
func (l AttribList) Without(key int32) AttribList {
	ret := make(AttribList, 0, len(l))
	i := 0
	for ; i+1 < len(l) && l[i] != NONE; i += 2 {
		if l[i] != key {
			ret = append(ret, l[i], l[i+1])
		}
	}
	return append(ret, l[i:]...)
}
