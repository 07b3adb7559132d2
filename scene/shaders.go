package scene

import (
	"fmt"
	"log"
	"strings"

	"github.com/QuestScreen/esdemo/internal/gles"
)

// VertexShader is the source text of a vertex shader.
type VertexShader string

// FragmentShader is the source text of a fragment shader.
type FragmentShader string

// CompileError is returned when a shader fails to compile. Log holds the
// compiler's diagnostic output.
type CompileError struct {
	Kind string
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("could not compile %s shader: %s", e.Kind, e.Log)
}

// LinkError is returned when a program fails to link. Log holds the
// linker's diagnostic output.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "could not link program: " + e.Log
}

func shaderKind(ty gles.Enum) string {
	if ty == gles.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func compileShader(f gles.Functions, ty gles.Enum, source string) (gles.Shader, error) {
	shader := f.CreateShader(ty)
	gles.CheckError(f, "glCreateShader")
	if shader == gles.NoShader {
		return gles.NoShader, &CompileError{Kind: shaderKind(ty), Log: "glCreateShader failed"}
	}
	f.ShaderSource(shader, source)
	f.CompileShader(shader)
	if f.GetShaderi(shader, gles.COMPILE_STATUS) == 0 {
		infoLog := strings.TrimSpace(f.GetShaderInfoLog(shader))
		log.Printf("Could not compile %s shader %d:\n%s\n", shaderKind(ty), shader, infoLog)
		f.DeleteShader(shader)
		return gles.NoShader, &CompileError{Kind: shaderKind(ty), Log: infoLog}
	}
	return shader, nil
}

// Compile compiles the vertex shader. On failure the zero shader and a
// *CompileError are returned and no shader object remains.
func (s VertexShader) Compile(f gles.Functions) (gles.Shader, error) {
	return compileShader(f, gles.VERTEX_SHADER, string(s))
}

// Compile compiles the fragment shader. On failure the zero shader and a
// *CompileError are returned and no shader object remains.
func (s FragmentShader) Compile(f gles.Functions) (gles.Shader, error) {
	return compileShader(f, gles.FRAGMENT_SHADER, string(s))
}

// CreateProgram links the two shaders into a program. The shaders are
// consumed: they are detached and deleted whether linking succeeds or not.
func CreateProgram(f gles.Functions, vsh, fsh gles.Shader) (gles.Program, error) {
	defer f.DeleteShader(vsh)
	defer f.DeleteShader(fsh)

	program := f.CreateProgram()
	gles.CheckError(f, "glCreateProgram")
	if program == gles.NoProgram {
		return gles.NoProgram, &LinkError{Log: "glCreateProgram failed"}
	}
	f.AttachShader(program, vsh)
	gles.CheckError(f, "glAttachShader")
	f.AttachShader(program, fsh)
	gles.CheckError(f, "glAttachShader")
	f.LinkProgram(program)
	if f.GetProgrami(program, gles.LINK_STATUS) == 0 {
		infoLog := strings.TrimSpace(f.GetProgramInfoLog(program))
		log.Printf("Could not link program:\n%s\n", infoLog)
		f.DeleteProgram(program)
		return gles.NoProgram, &LinkError{Log: infoLog}
	}
	f.DetachShader(program, vsh)
	f.DetachShader(program, fsh)
	return program, nil
}

// BuildProgram compiles both stages and links them. If the fragment shader
// fails, the already compiled vertex shader is released.
func BuildProgram(f gles.Functions, vs VertexShader, fs FragmentShader) (gles.Program, error) {
	vsh, err := vs.Compile(f)
	if err != nil {
		return gles.NoProgram, err
	}
	fsh, err := fs.Compile(f)
	if err != nil {
		f.DeleteShader(vsh)
		return gles.NoProgram, err
	}
	return CreateProgram(f, vsh, fsh)
}
