// Package gles exposes the OpenGL ES 2.0 calls used by the renderer.
package gles

import "log"

type (
	Enum    uint32
	Shader  uint32
	Program uint32
	Attrib  int32
)

// Zero values signal failure for CreateShader and CreateProgram.
const (
	NoShader  Shader  = 0
	NoProgram Program = 0
)

// Valid reports whether a is a resolved attribute location.
func (a Attrib) Valid() bool {
	return a >= 0
}

const (
	NO_ERROR = 0

	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000

	TRIANGLES = 0x0004
	FLOAT     = 0x1406

	VENDOR     = 0x1F00
	RENDERER   = 0x1F01
	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
)

// ClientArray names float data in the binding's static storage.
type ClientArray int

const (
	NoArray ClientArray = iota
	// TriangleArray holds three 2-component positions in clip space.
	TriangleArray
)

// must match the static arrays of the cgo binding.
var clientArrays = map[ClientArray][]float32{
	TriangleArray: {
		0.0, 0.5,
		-0.5, -0.5,
		0.5, -0.5,
	},
}

// Floats returns a copy of the array's contents.
func (a ClientArray) Floats() []float32 {
	return append([]float32(nil), clientArrays[a]...)
}

// Functions is the GL function table. Implementations must only be called
// from the thread the context is current on.
type Functions interface {
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)
	GetAttribLocation(p Program, name string) Attrib

	// VertexAttribPointer points dst at a client array. No buffer object is
	// bound, so GL reads the array directly from static storage.
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride int, data ClientArray)
	EnableVertexAttribArray(a Attrib)

	ClearColor(red, green, blue, alpha float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int)
	DrawArrays(mode Enum, first, count int)

	GetString(pname Enum) string
	GetError() Enum
}

// CheckError drains the GL error queue, logging every pending error
// together with the operation that preceded it. It returns the number of
// errors drained.
func CheckError(f Functions, op string) int {
	n := 0
	for e := f.GetError(); e != NO_ERROR; e = f.GetError() {
		log.Printf("after %s() glError (0x%x)\n", op, uint32(e))
		n++
	}
	return n
}
