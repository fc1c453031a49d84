package shader_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/shadertest"
)

const vertexSrc = `#version 410 core
layout (location = 0) in vec2 aPos;
uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
`

const fragmentSrc = `#version 410 core
out vec4 FragColor;
uniform vec4 color;
uniform float value;
uniform vec3 lights[4];

void main() {
    FragColor = color * value;
}
`

const geometrySrc = `#version 410 core
layout (triangles) in;
layout (triangle_strip, max_vertices = 3) out;
void main() {}
`

const brokenSrc = `#version 410 core
void main() {
#error missing semicolon
}
`

func newManager(t *testing.T, opts ...shader.Option) (*shader.Manager, *shadertest.Driver) {
	t.Helper()
	d := shadertest.New()
	return shader.NewManager(d, opts...), d
}

func addPair(t *testing.T, m *shader.Manager) {
	t.Helper()
	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))
	require.NoError(t, m.AddStage(fragmentSrc, shader.StageFragment))
}

func TestManager_RoundTrip(t *testing.T) {
	m, d := newManager(t)

	addPair(t, m)
	h, err := m.BuildProgram("p1")
	require.NoError(t, err)
	require.NoError(t, m.UseProgram("p1"))
	assert.Equal(t, h, d.Used)

	require.NoError(t, m.SetUniform("color", shader.Vector[float32](1, 0, 0, 1)))

	call, ok := d.LastCall()
	require.True(t, ok)
	assert.Equal(t, "Uniform4fv", call.Name)
	assert.Equal(t, int32(1), call.Count)
	assert.Equal(t, []float32{1, 0, 0, 1}, call.Data)
}

func TestManager_BuildReleasesStages(t *testing.T) {
	m, d := newManager(t)

	addPair(t, m)
	require.Equal(t, 2, d.LiveStages())

	_, err := m.BuildProgram("p1")
	require.NoError(t, err)
	assert.Zero(t, d.LiveStages(), "linked stages should be deleted")
	assert.Empty(t, m.PendingStages())
	assert.Len(t, d.DeletedStages, 2)
}

func TestManager_BuildLinksInPipelineOrder(t *testing.T) {
	m, d := newManager(t)

	// Added out of order on purpose.
	require.NoError(t, m.AddStage(fragmentSrc, shader.StageFragment))
	require.NoError(t, m.AddStage(geometrySrc, shader.StageGeometry))
	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))
	want := []shader.StageKind{shader.StageVertex, shader.StageGeometry, shader.StageFragment}
	assert.Equal(t, want, m.PendingStages())

	h, err := m.BuildProgram("geo")
	require.NoError(t, err)
	assert.Equal(t, want, d.LinkedKinds(h))
	assert.Equal(t, d.LinkedStages(h), d.DeletedStages, "stages are released in link order")
}

func TestManager_DuplicateName(t *testing.T) {
	m, d := newManager(t)

	addPair(t, m)
	first, err := m.BuildProgram("p")
	require.NoError(t, err)

	addPair(t, m)
	_, err = m.BuildProgram("p")
	require.ErrorIs(t, err, shader.ErrDuplicateName)

	got, err := m.Program("p")
	require.NoError(t, err)
	assert.Equal(t, first, got, "first program must survive")
	assert.Equal(t, []string{"p"}, m.Programs())
	assert.Equal(t, 1, d.LivePrograms())

	// The second stage set is still pending and can be built under a new name.
	assert.Len(t, m.PendingStages(), 2)
	_, err = m.BuildProgram("q")
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, m.Programs())
}

func TestManager_IncompleteStages(t *testing.T) {
	m, _ := newManager(t)

	require.NoError(t, m.AddStage(fragmentSrc, shader.StageFragment))
	_, err := m.BuildProgram("p")
	require.ErrorIs(t, err, shader.ErrIncompleteStages)
	assert.Contains(t, err.Error(), "vertex")

	assert.Equal(t, []shader.StageKind{shader.StageFragment}, m.PendingStages(), "fragment stage must be retained")

	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))
	_, err = m.BuildProgram("p")
	require.NoError(t, err)
}

func TestManager_BuildWithNoStages(t *testing.T) {
	m, d := newManager(t)

	_, err := m.BuildProgram("empty")
	require.ErrorIs(t, err, shader.ErrIncompleteStages)
	assert.Zero(t, d.LivePrograms())
}

func TestManager_RequiredStages(t *testing.T) {
	m, _ := newManager(t, shader.WithRequiredStages(shader.StageGeometry))

	addPair(t, m)
	_, err := m.BuildProgram("p")
	require.ErrorIs(t, err, shader.ErrIncompleteStages)
	assert.Contains(t, err.Error(), "geometry")

	require.NoError(t, m.AddStage(geometrySrc, shader.StageGeometry))
	_, err = m.BuildProgram("p")
	require.NoError(t, err)
}

func TestManager_CompileErrorLeavesSlotEmpty(t *testing.T) {
	m, d := newManager(t)

	err := m.AddStage(brokenSrc, shader.StageFragment)
	var cerr *shader.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, shader.StageFragment, cerr.Kind)
	assert.NotEmpty(t, cerr.Log)
	assert.Zero(t, d.LiveStages())

	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))
	_, err = m.BuildProgram("p")
	require.ErrorIs(t, err, shader.ErrIncompleteStages)
}

func TestManager_CompileErrorKeepsPreviousStage(t *testing.T) {
	m, _ := newManager(t)

	addPair(t, m)
	require.Error(t, m.AddStage(brokenSrc, shader.StageFragment))

	assert.Len(t, m.PendingStages(), 2)
	_, err := m.BuildProgram("p")
	require.NoError(t, err)
}

func TestManager_ReplacingStageReleasesPrevious(t *testing.T) {
	m, d := newManager(t)

	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))
	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))

	assert.Equal(t, 1, d.LiveStages())
	assert.Len(t, d.DeletedStages, 1)
	assert.Equal(t, []shader.StageKind{shader.StageVertex}, m.PendingStages())
}

func TestManager_UnsupportedStage(t *testing.T) {
	m, d := newManager(t)

	err := m.AddStage(vertexSrc, shader.StageKind(0))
	require.ErrorIs(t, err, shader.ErrUnsupportedStage)
	err = m.AddStage(vertexSrc, shader.StageKind(42))
	require.ErrorIs(t, err, shader.ErrUnsupportedStage)
	assert.Zero(t, d.LiveStages())
}

func TestManager_LinkErrorIsRetryable(t *testing.T) {
	m, d := newManager(t)
	d.LinkLog = "error: fragment input uv not written by vertex shader"

	addPair(t, m)
	_, err := m.BuildProgram("p")
	var lerr *shader.LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "p", lerr.Program)
	assert.Equal(t, d.LinkLog, lerr.Log)

	assert.Len(t, m.PendingStages(), 2, "stages must survive a failed link")
	assert.Equal(t, 2, d.LiveStages())
	_, err = m.Program("p")
	require.ErrorIs(t, err, shader.ErrNotFound)

	d.LinkLog = ""
	_, err = m.BuildProgram("p")
	require.NoError(t, err)
}

func TestManager_UseProgramNotFound(t *testing.T) {
	m, d := newManager(t)

	require.ErrorIs(t, m.UseProgram("x"), shader.ErrNotFound)
	_, ok := m.Active()
	assert.False(t, ok)

	addPair(t, m)
	h, err := m.BuildProgram("a")
	require.NoError(t, err)
	require.NoError(t, m.UseProgram("a"))

	require.ErrorIs(t, m.UseProgram("x"), shader.ErrNotFound)
	name, ok := m.Active()
	assert.True(t, ok)
	assert.Equal(t, "a", name)
	assert.Equal(t, h, d.Used)
}

func TestManager_ProgramLookupHasNoSideEffect(t *testing.T) {
	m, d := newManager(t)

	addPair(t, m)
	h, err := m.BuildProgram("a")
	require.NoError(t, err)

	got, err := m.Program("a")
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Zero(t, d.Used)
	_, ok := m.Active()
	assert.False(t, ok)

	_, err = m.Program("b")
	require.ErrorIs(t, err, shader.ErrNotFound)
}

func TestManager_SwitchActiveProgram(t *testing.T) {
	m, d := newManager(t)

	addPair(t, m)
	a, err := m.BuildProgram("a")
	require.NoError(t, err)

	// b has no "color" uniform.
	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))
	require.NoError(t, m.AddStage("#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1); }\n", shader.StageFragment))
	b, err := m.BuildProgram("b")
	require.NoError(t, err)

	require.NoError(t, m.UseProgram("a"))
	assert.Equal(t, a, d.Used)
	require.NoError(t, m.SetUniform("color", shader.Vector[float32](0, 1, 0, 1)))

	require.NoError(t, m.UseProgram("b"))
	assert.Equal(t, b, d.Used)
	require.ErrorIs(t, m.SetUniform("color", shader.Vector[float32](0, 1, 0, 1)), shader.ErrUnknownUniform)
}

func TestManager_ResetStages(t *testing.T) {
	m, d := newManager(t)

	addPair(t, m)
	m.ResetStages()
	assert.Empty(t, m.PendingStages())
	assert.Zero(t, d.LiveStages())
}

func TestManager_Delete(t *testing.T) {
	m, d := newManager(t)

	addPair(t, m)
	_, err := m.BuildProgram("a")
	require.NoError(t, err)
	addPair(t, m)
	_, err = m.BuildProgram("b")
	require.NoError(t, err)
	require.NoError(t, m.UseProgram("a"))
	require.NoError(t, m.AddStage(vertexSrc, shader.StageVertex))

	m.Delete()

	assert.Zero(t, d.LivePrograms())
	assert.Zero(t, d.LiveStages())
	assert.Empty(t, m.Programs())
	_, ok := m.Active()
	assert.False(t, ok)
	require.ErrorIs(t, m.SetUniform("color", shader.Scalar[float32](1)), shader.ErrNoActiveProgram)
}

func TestManager_AddShaderFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/basic.vert": {Data: []byte(vertexSrc)},
		"shaders/basic.frag": {Data: []byte(fragmentSrc)},
		"shaders/bad.frag":   {Data: []byte(brokenSrc)},
	}
	m, _ := newManager(t, shader.WithFS(fsys))

	require.NoError(t, m.AddShader("shaders/basic.vert", shader.StageVertex))
	require.NoError(t, m.AddShader("shaders/basic.frag", shader.StageFragment))
	_, err := m.BuildProgram("basic")
	require.NoError(t, err)

	err = m.AddShader("shaders/missing.frag", shader.StageFragment)
	var serr *shader.SourceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "shaders/missing.frag", serr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = m.AddShader("shaders/bad.frag", shader.StageFragment)
	var cerr *shader.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "shaders/bad.frag", cerr.Path)
	assert.Contains(t, err.Error(), "shaders/bad.frag")
}

func TestManager_AddShaderRejectsKindBeforeReading(t *testing.T) {
	read := false
	m, _ := newManager(t, shader.WithLoader(func(string) (string, error) {
		read = true
		return vertexSrc, nil
	}))

	require.ErrorIs(t, m.AddShader("a.comp", shader.StageKind(9)), shader.ErrUnsupportedStage)
	assert.False(t, read)
}
