//go:build linux && cgo
// +build linux,cgo

package gles

/*
#cgo pkg-config: glesv2

#include <stdlib.h>
#include <GLES2/gl2.h>

static const GLfloat esdemo_triangle[] = {
	0.0f, 0.5f,
	-0.5f, -0.5f,
	0.5f, -0.5f,
};

static const GLfloat *esdemo_array(int id, int *len) {
	switch (id) {
	case 1:
		*len = sizeof(esdemo_triangle) / sizeof(esdemo_triangle[0]);
		return esdemo_triangle;
	}
	*len = 0;
	return NULL;
}

// the driver keeps the pointer, so it must never point into Go memory.
static void esdemo_glVertexAttribPointer(GLuint index, GLint size, GLenum type,
		GLboolean normalized, GLsizei stride, int array) {
	int len;
	glVertexAttribPointer(index, size, type, normalized, stride, esdemo_array(array, &len));
}
*/
import "C"

import "unsafe"

type cFunctions struct {
	ints [1]C.GLint
}

// Load returns the function table backed by the system's libGLESv2. A
// context must be current before any of its methods are called.
func Load() (Functions, error) {
	return new(cFunctions), nil
}

func (f *cFunctions) CreateShader(ty Enum) Shader {
	return Shader(C.glCreateShader(C.GLenum(ty)))
}

func (f *cFunctions) ShaderSource(s Shader, src string) {
	csrc := C.CString(src)
	defer C.free(unsafe.Pointer(csrc))
	strlen := C.GLint(len(src))
	C.glShaderSource(C.GLuint(s), 1, &csrc, &strlen)
}

func (f *cFunctions) CompileShader(s Shader) {
	C.glCompileShader(C.GLuint(s))
}

func (f *cFunctions) GetShaderi(s Shader, pname Enum) int {
	C.glGetShaderiv(C.GLuint(s), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *cFunctions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	C.glGetShaderInfoLog(C.GLuint(s), C.GLsizei(len(buf)), nil, (*C.GLchar)(unsafe.Pointer(&buf[0])))
	return C.GoString((*C.char)(unsafe.Pointer(&buf[0])))
}

func (f *cFunctions) DeleteShader(s Shader) {
	C.glDeleteShader(C.GLuint(s))
}

func (f *cFunctions) CreateProgram() Program {
	return Program(C.glCreateProgram())
}

func (f *cFunctions) AttachShader(p Program, s Shader) {
	C.glAttachShader(C.GLuint(p), C.GLuint(s))
}

func (f *cFunctions) DetachShader(p Program, s Shader) {
	C.glDetachShader(C.GLuint(p), C.GLuint(s))
}

func (f *cFunctions) LinkProgram(p Program) {
	C.glLinkProgram(C.GLuint(p))
}

func (f *cFunctions) GetProgrami(p Program, pname Enum) int {
	C.glGetProgramiv(C.GLuint(p), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *cFunctions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	C.glGetProgramInfoLog(C.GLuint(p), C.GLsizei(len(buf)), nil, (*C.GLchar)(unsafe.Pointer(&buf[0])))
	return C.GoString((*C.char)(unsafe.Pointer(&buf[0])))
}

func (f *cFunctions) DeleteProgram(p Program) {
	C.glDeleteProgram(C.GLuint(p))
}

func (f *cFunctions) UseProgram(p Program) {
	C.glUseProgram(C.GLuint(p))
}

func (f *cFunctions) GetAttribLocation(p Program, name string) Attrib {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return Attrib(C.glGetAttribLocation(C.GLuint(p), (*C.GLchar)(unsafe.Pointer(cname))))
}

func (f *cFunctions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride int, data ClientArray) {
	var n C.GLboolean = C.GL_FALSE
	if normalized {
		n = C.GL_TRUE
	}
	C.esdemo_glVertexAttribPointer(C.GLuint(dst), C.GLint(size), C.GLenum(ty), n,
		C.GLsizei(stride), C.int(data))
}

func (f *cFunctions) EnableVertexAttribArray(a Attrib) {
	C.glEnableVertexAttribArray(C.GLuint(a))
}

func (f *cFunctions) ClearColor(red, green, blue, alpha float32) {
	C.glClearColor(C.GLfloat(red), C.GLfloat(green), C.GLfloat(blue), C.GLfloat(alpha))
}

func (f *cFunctions) Clear(mask Enum) {
	C.glClear(C.GLbitfield(mask))
}

func (f *cFunctions) Viewport(x, y, width, height int) {
	C.glViewport(C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
}

func (f *cFunctions) DrawArrays(mode Enum, first, count int) {
	C.glDrawArrays(C.GLenum(mode), C.GLint(first), C.GLsizei(count))
}

func (f *cFunctions) GetString(pname Enum) string {
	s := C.glGetString(C.GLenum(pname))
	if s == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(s)))
}

func (f *cFunctions) GetError() Enum {
	return Enum(C.glGetError())
}

// staticFloats reads a client array back from C storage.
func staticFloats(a ClientArray) []float32 {
	var n C.int
	p := C.esdemo_array(C.int(a), &n)
	if p == nil {
		return nil
	}
	src := (*[1 << 16]C.GLfloat)(unsafe.Pointer(p))[:n:n]
	ret := make([]float32, len(src))
	for i := range src {
		ret[i] = float32(src[i])
	}
	return ret
}
