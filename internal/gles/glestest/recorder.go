/*
Package glestest provides a gles.Functions fake that records the calls made
to it. It hands out sequential object names starting at 1.
*/
package glestest

import (
	"fmt"
	"strings"

	"github.com/QuestScreen/esdemo/internal/gles"
)

// DrawCall is one recorded DrawArrays call.
type DrawCall struct {
	Mode         gles.Enum
	First, Count int
}

// Recorder is a gles.Functions fake. A shader whose source contains
// "#error" fails to compile; FailLink makes every link fail. Attributes not
// listed in Attribs are reported as inactive.
type Recorder struct {
	Calls        []string
	Deleted      map[uint32]bool
	FailLink     bool
	Attribs      map[string]gles.Attrib
	Draws        []DrawCall
	ViewportArgs [4]int
	ClearColors  [][4]float32
	// queued results of GetError, consumed front to back.
	Errors []gles.Enum

	nextID  uint32
	sources map[gles.Shader]string
}

// New returns a Recorder that knows the given active attributes.
func New(attribs map[string]gles.Attrib) *Recorder {
	if attribs == nil {
		attribs = make(map[string]gles.Attrib)
	}
	return &Recorder{
		Deleted: make(map[uint32]bool),
		Attribs: attribs,
		sources: make(map[gles.Shader]string),
	}
}

func (r *Recorder) record(format string, v ...interface{}) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, v...))
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

// Count returns the number of recorded calls starting with prefix.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *Recorder) CreateShader(ty gles.Enum) gles.Shader {
	s := gles.Shader(r.id())
	r.record("CreateShader %d", s)
	return s
}

func (r *Recorder) ShaderSource(s gles.Shader, src string) { r.sources[s] = src }

func (r *Recorder) CompileShader(s gles.Shader) { r.record("CompileShader %d", s) }

func (r *Recorder) GetShaderi(s gles.Shader, pname gles.Enum) int {
	switch pname {
	case gles.COMPILE_STATUS:
		if strings.Contains(r.sources[s], "#error") {
			return 0
		}
		return 1
	case gles.INFO_LOG_LENGTH:
		return len(r.GetShaderInfoLog(s))
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gles.Shader) string {
	if strings.Contains(r.sources[s], "#error") {
		return "0:1(1): error: syntax error, unexpected '#error'\n"
	}
	return ""
}

func (r *Recorder) DeleteShader(s gles.Shader) {
	r.record("DeleteShader %d", s)
	r.Deleted[uint32(s)] = true
}

func (r *Recorder) CreateProgram() gles.Program {
	p := gles.Program(r.id())
	r.record("CreateProgram %d", p)
	return p
}

func (r *Recorder) AttachShader(p gles.Program, s gles.Shader) { r.record("AttachShader %d %d", p, s) }
func (r *Recorder) DetachShader(p gles.Program, s gles.Shader) { r.record("DetachShader %d %d", p, s) }
func (r *Recorder) LinkProgram(p gles.Program)                 { r.record("LinkProgram %d", p) }

func (r *Recorder) GetProgrami(p gles.Program, pname gles.Enum) int {
	if pname == gles.LINK_STATUS && !r.FailLink {
		return 1
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gles.Program) string {
	if r.FailLink {
		return "error: vertex shader output not consumed\n"
	}
	return ""
}

func (r *Recorder) DeleteProgram(p gles.Program) {
	r.record("DeleteProgram %d", p)
	r.Deleted[uint32(p)] = true
}

func (r *Recorder) UseProgram(p gles.Program) { r.record("UseProgram %d", p) }

func (r *Recorder) GetAttribLocation(p gles.Program, name string) gles.Attrib {
	r.record("GetAttribLocation %s", name)
	if a, ok := r.Attribs[name]; ok {
		return a
	}
	return -1
}

func (r *Recorder) VertexAttribPointer(dst gles.Attrib, size int, ty gles.Enum, normalized bool, stride int, data gles.ClientArray) {
	r.record("VertexAttribPointer %d %d %d", dst, size, data)
}

func (r *Recorder) EnableVertexAttribArray(a gles.Attrib) { r.record("EnableVertexAttribArray %d", a) }

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor")
	r.ClearColors = append(r.ClearColors, [4]float32{red, green, blue, alpha})
}

func (r *Recorder) Clear(mask gles.Enum) { r.record("Clear 0x%x", uint32(mask)) }

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport")
	r.ViewportArgs = [4]int{x, y, width, height}
}

func (r *Recorder) DrawArrays(mode gles.Enum, first, count int) {
	r.record("DrawArrays")
	r.Draws = append(r.Draws, DrawCall{mode, first, count})
}

func (r *Recorder) GetString(pname gles.Enum) string { return "fake" }

func (r *Recorder) GetError() gles.Enum {
	if len(r.Errors) == 0 {
		return gles.NO_ERROR
	}
	e := r.Errors[0]
	r.Errors = r.Errors[1:]
	return e
}

var _ gles.Functions = (*Recorder)(nil)
