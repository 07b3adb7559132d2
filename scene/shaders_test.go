package scene

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuestScreen/esdemo/internal/gles"
	"github.com/QuestScreen/esdemo/internal/gles/glestest"
)

func newRecorder() *glestest.Recorder {
	return glestest.New(map[string]gles.Attrib{PositionAttrib: 0})
}

func TestCompileFailureSurfacesLog(t *testing.T) {
	r := newRecorder()
	shader, err := FragmentShader("#error broken\n").Compile(r)
	assert.Equal(t, gles.NoShader, shader)

	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "fragment", cerr.Kind)
	assert.NotEmpty(t, cerr.Log)
	assert.Contains(t, err.Error(), "syntax error")
	// the failed shader object is discarded
	assert.Equal(t, 1, r.Count("DeleteShader"))
}

func TestCompileSuccess(t *testing.T) {
	r := newRecorder()
	shader, err := vertexShader.Compile(r)
	require.NoError(t, err)
	assert.NotEqual(t, gles.NoShader, shader)
	assert.Equal(t, 0, r.Count("DeleteShader"))
}

func TestCreateProgramConsumesShaders(t *testing.T) {
	r := newRecorder()
	program, err := BuildProgram(r, vertexShader, fragmentShader)
	require.NoError(t, err)
	assert.NotEqual(t, gles.NoProgram, program)
	assert.Equal(t, 2, r.Count("AttachShader"))
	assert.Equal(t, 2, r.Count("DetachShader"))
	assert.Equal(t, 2, r.Count("DeleteShader"))
	assert.False(t, r.Deleted[uint32(program)])
}

func TestLinkFailureReleasesProgram(t *testing.T) {
	r := newRecorder()
	r.FailLink = true
	program, err := BuildProgram(r, vertexShader, fragmentShader)
	assert.Equal(t, gles.NoProgram, program)

	var lerr *LinkError
	require.True(t, errors.As(err, &lerr))
	assert.NotEmpty(t, lerr.Log)
	assert.Equal(t, 1, r.Count("DeleteProgram"))
	assert.Equal(t, 2, r.Count("DeleteShader"))
}

func TestFragmentFailureReleasesVertexShader(t *testing.T) {
	r := newRecorder()
	_, err := BuildProgram(r, vertexShader, FragmentShader("#error\n"))
	require.Error(t, err)
	assert.Equal(t, 2, r.Count("DeleteShader"))
	assert.Equal(t, 0, r.Count("CreateProgram"))
}
