/*
Package scene sets up the shader program and draws the demo triangle.

All functions must be called on the thread the GL context is current on.
*/
package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/QuestScreen/esdemo/internal/gles"
)

const vertexShader VertexShader = `attribute vec4 vPosition;
void main() {
  gl_Position = vPosition;
}
`

const fragmentShader FragmentShader = `precision mediump float;
void main() {
  gl_FragColor = vec4(0.0, 1.0, 0.0, 1.0);
}
`

// PositionAttrib is the name of the vertex position input.
const PositionAttrib = "vPosition"

// TriangleVertices returns the corners of the triangle in clip space as
// held by gles.TriangleArray.
func TriangleVertices() []mgl32.Vec2 {
	data := gles.TriangleArray.Floats()
	ret := make([]mgl32.Vec2, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		ret = append(ret, mgl32.Vec2{data[i], data[i+1]})
	}
	return ret
}

// Triangle holds the linked program and the resolved position attribute of
// the demo scene. The vertex data stays in the binding's static storage.
type Triangle struct {
	f        gles.Functions
	program  gles.Program
	position gles.Attrib
	vertices gles.ClientArray
	count    int
	grey     Grey
}

func logGLString(f gles.Functions, name string, s gles.Enum) {
	log.Printf("GL %s = %s\n", name, f.GetString(s))
}

// NewTriangle builds the program, resolves the position attribute and sets
// the viewport to the given size. greyStep is the per-frame increment of
// the background grey.
func NewTriangle(f gles.Functions, width, height int, greyStep float32) (*Triangle, error) {
	logGLString(f, "Version", gles.VERSION)
	logGLString(f, "Vendor", gles.VENDOR)
	logGLString(f, "Renderer", gles.RENDERER)
	logGLString(f, "Extensions", gles.EXTENSIONS)

	log.Printf("setupGraphics(%d, %d)\n", width, height)
	program, err := BuildProgram(f, vertexShader, fragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "could not create program")
	}
	t := &Triangle{f: f, program: program, vertices: gles.TriangleArray,
		count: len(TriangleVertices()), grey: Grey{Step: greyStep}}

	t.position = t.Attrib(PositionAttrib)
	log.Printf("glGetAttribLocation(\"%s\") = %d\n", PositionAttrib, t.position)
	if !t.position.Valid() {
		log.Printf("attribute %s is inactive, the triangle will not be drawn\n", PositionAttrib)
	}

	f.Viewport(0, 0, width, height)
	gles.CheckError(f, "glViewport")
	return t, nil
}

// Attrib queries the location of the named attribute in the program.
func (t *Triangle) Attrib(name string) gles.Attrib {
	a := t.f.GetAttribLocation(t.program, name)
	gles.CheckError(t.f, "glGetAttribLocation")
	return a
}

// Position returns the cached location of the position attribute.
func (t *Triangle) Position() gles.Attrib {
	return t.position
}

// Program returns the linked program.
func (t *Triangle) Program() gles.Program {
	return t.program
}

// Render draws one frame: clear to the next grey level and draw the
// triangle. Presenting the frame is left to the caller.
func (t *Triangle) Render() {
	f := t.f
	grey := t.grey.Next()
	c := mgl32.Vec4{grey, grey, grey, 1.0}

	f.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	gles.CheckError(f, "glClearColor")
	f.Clear(gles.DEPTH_BUFFER_BIT | gles.COLOR_BUFFER_BIT)
	gles.CheckError(f, "glClear")

	f.UseProgram(t.program)
	gles.CheckError(f, "glUseProgram")

	if t.position.Valid() {
		f.VertexAttribPointer(t.position, 2, gles.FLOAT, false, 0, t.vertices)
		gles.CheckError(f, "glVertexAttribPointer")
		f.EnableVertexAttribArray(t.position)
		gles.CheckError(f, "glEnableVertexAttribArray")
	}
	f.DrawArrays(gles.TRIANGLES, 0, t.count)
	gles.CheckError(f, "glDrawArrays")
}

// Release deletes the program. Calling it again does nothing.
func (t *Triangle) Release() {
	if t.program != gles.NoProgram {
		t.f.DeleteProgram(t.program)
		t.program = gles.NoProgram
	}
}
