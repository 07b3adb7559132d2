package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuestScreen/esdemo/internal/gles"
	"github.com/QuestScreen/esdemo/internal/gles/glestest"
)

func TestNewTriangle(t *testing.T) {
	r := newRecorder()
	tri, err := NewTriangle(r, 640, 480, DefaultGreyStep)
	require.NoError(t, err)
	assert.Equal(t, gles.Attrib(0), tri.Position())
	assert.Equal(t, [4]int{0, 0, 640, 480}, r.ViewportArgs)
}

func TestAttribLocationIsStable(t *testing.T) {
	r := newRecorder()
	r.Attribs[PositionAttrib] = 5
	tri, err := NewTriangle(r, 640, 480, DefaultGreyStep)
	require.NoError(t, err)
	assert.Equal(t, tri.Attrib(PositionAttrib), tri.Attrib(PositionAttrib))
	assert.Equal(t, gles.Attrib(5), tri.Position())
}

func TestDrawCallShape(t *testing.T) {
	for _, size := range [][2]int{{640, 480}, {1, 1}, {3840, 2160}} {
		r := newRecorder()
		tri, err := NewTriangle(r, size[0], size[1], DefaultGreyStep)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			tri.Render()
		}
		require.Len(t, r.Draws, 3)
		for _, d := range r.Draws {
			assert.Equal(t, glestest.DrawCall{Mode: gles.TRIANGLES, First: 0, Count: 3}, d)
		}
	}
}

func TestRenderSequence(t *testing.T) {
	r := newRecorder()
	tri, err := NewTriangle(r, 640, 480, DefaultGreyStep)
	require.NoError(t, err)
	r.Calls = nil

	tri.Render()
	assert.Equal(t, []string{
		"ClearColor",
		"Clear 0x4100",
		"UseProgram 3",
		"VertexAttribPointer 0 2 1",
		"EnableVertexAttribArray 0",
		"DrawArrays",
	}, r.Calls)
	require.Len(t, r.ClearColors, 1)
	assert.InDelta(t, 0.01, r.ClearColors[0][0], 1e-6)
	assert.Equal(t, r.ClearColors[0][0], r.ClearColors[0][1])
	assert.Equal(t, r.ClearColors[0][0], r.ClearColors[0][2])
	assert.Equal(t, float32(1), r.ClearColors[0][3])
}

func TestRenderDrainsErrors(t *testing.T) {
	r := newRecorder()
	tri, err := NewTriangle(r, 640, 480, DefaultGreyStep)
	require.NoError(t, err)
	r.Errors = []gles.Enum{0x0502, 0x0501}
	tri.Render()
	assert.Empty(t, r.Errors)
	assert.Len(t, r.Draws, 1)
}

func TestInactiveAttribute(t *testing.T) {
	r := newRecorder()
	delete(r.Attribs, PositionAttrib)
	tri, err := NewTriangle(r, 640, 480, DefaultGreyStep)
	require.NoError(t, err)
	assert.False(t, tri.Position().Valid())
	tri.Render()
	assert.Equal(t, 0, r.Count("VertexAttribPointer"))
	assert.Len(t, r.Draws, 1)
}

func TestNewTriangleCompileFailure(t *testing.T) {
	r := newRecorder()
	r.FailLink = true
	_, err := NewTriangle(r, 640, 480, DefaultGreyStep)
	var lerr *LinkError
	assert.True(t, errors.As(err, &lerr))
}

func TestReleaseIsIdempotent(t *testing.T) {
	r := newRecorder()
	tri, err := NewTriangle(r, 640, 480, DefaultGreyStep)
	require.NoError(t, err)
	program := tri.Program()

	tri.Release()
	tri.Release()
	assert.Equal(t, 1, r.Count("DeleteProgram"))
	assert.True(t, r.Deleted[uint32(program)])
}

func TestTriangleVertices(t *testing.T) {
	assert.Equal(t, []mgl32.Vec2{{0, 0.5}, {-0.5, -0.5}, {0.5, -0.5}}, TriangleVertices())
}
