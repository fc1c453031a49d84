package shader_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/shadertest"
)

// activeManager returns a manager with program "p" built from vertexSrc and
// fragmentSrc and made active.
func activeManager(t *testing.T) (*shader.Manager, *shadertest.Driver) {
	t.Helper()
	m, d := newManager(t)
	addPair(t, m)
	_, err := m.BuildProgram("p")
	require.NoError(t, err)
	require.NoError(t, m.UseProgram("p"))
	return m, d
}

func seq32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

func seq64(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestSetUniform_NoActiveProgram(t *testing.T) {
	m, d := newManager(t)
	addPair(t, m)
	_, err := m.BuildProgram("p")
	require.NoError(t, err)

	require.ErrorIs(t, m.SetUniform("color", shader.Vector[float32](1, 0, 0, 1)), shader.ErrNoActiveProgram)
	_, err = m.UniformLocation("color")
	require.ErrorIs(t, err, shader.ErrNoActiveProgram)
	assert.Empty(t, d.Calls)
}

func TestSetUniform_UnknownUniform(t *testing.T) {
	m, d := activeManager(t)

	err := m.SetUniform("missing", shader.Scalar[float32](1))
	require.ErrorIs(t, err, shader.ErrUnknownUniform)
	assert.Contains(t, err.Error(), "missing")
	assert.Empty(t, d.Calls)
}

func TestSetUniform_Scalars(t *testing.T) {
	tests := []struct {
		value shader.Value
		call  string
		data  any
	}{
		{shader.Scalar[int32](-3), "Uniform1iv", []int32{-3}},
		{shader.Scalar[uint32](7), "Uniform1uiv", []uint32{7}},
		{shader.Scalar[float32](0.5), "Uniform1fv", []float32{0.5}},
		{shader.Scalar(0.25), "Uniform1dv", []float64{0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			m, d := activeManager(t)
			require.NoError(t, m.SetUniform("value", tt.value))

			call, ok := d.LastCall()
			require.True(t, ok)
			assert.Equal(t, tt.call, call.Name)
			assert.Equal(t, int32(1), call.Count)
			assert.Equal(t, tt.data, call.Data)
		})
	}
}

func TestSetUniform_VectorLengths(t *testing.T) {
	suffix := map[shader.NumericKind]string{
		shader.Int32: "iv", shader.Uint32: "uiv", shader.Float32: "fv", shader.Float64: "dv",
	}
	build := func(kind shader.NumericKind, n int) shader.Value {
		switch kind {
		case shader.Int32:
			return shader.Vector(make([]int32, n)...)
		case shader.Uint32:
			return shader.Vector(make([]uint32, n)...)
		case shader.Float32:
			return shader.Vector(make([]float32, n)...)
		default:
			return shader.Vector(make([]float64, n)...)
		}
	}

	for kind := shader.Int32; kind <= shader.Float64; kind++ {
		for n := 0; n <= 6; n++ {
			t.Run(fmt.Sprintf("%s/%d", kind, n), func(t *testing.T) {
				m, d := activeManager(t)
				err := m.SetUniform("color", build(kind, n))

				if n < 1 || n > 4 {
					require.ErrorIs(t, err, shader.ErrInvalidShape)
					assert.Empty(t, d.Calls, "invalid shapes must not upload")
					return
				}
				require.NoError(t, err)
				require.Len(t, d.Calls, 1)
				assert.Equal(t, fmt.Sprintf("Uniform%d%s", n, suffix[kind]), d.Calls[0].Name)
				assert.Equal(t, int32(1), d.Calls[0].Count)
			})
		}
	}
}

func TestSetUniform_VectorBatch(t *testing.T) {
	m, d := activeManager(t)

	lights := shader.VectorArray[float32](3,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
	)
	require.NoError(t, m.SetUniform("lights", lights))

	call, ok := d.LastCall()
	require.True(t, ok)
	assert.Equal(t, "Uniform3fv", call.Name)
	assert.Equal(t, int32(4), call.Count)
	assert.Len(t, call.Data, 12)
}

func TestSetUniform_VectorBatchRagged(t *testing.T) {
	m, d := activeManager(t)

	err := m.SetUniform("lights", shader.VectorArray[float32](3, 1, 0, 0, 1))
	require.ErrorIs(t, err, shader.ErrInvalidShape)

	err = m.SetUniform("lights", shader.VectorArray[float32](3))
	require.ErrorIs(t, err, shader.ErrInvalidShape)

	err = m.SetUniform("lights", shader.VectorArray[float32](0, 1, 2))
	require.ErrorIs(t, err, shader.ErrInvalidShape)
	assert.Empty(t, d.Calls)
}

func TestSetUniform_MatrixShapes(t *testing.T) {
	for rows := 1; rows <= 5; rows++ {
		for cols := 1; cols <= 5; cols++ {
			supported := rows >= 2 && rows <= 4 && cols >= 2 && cols <= 4
			for _, transpose := range []bool{false, true} {
				t.Run(fmt.Sprintf("%dx%d/transpose=%v", rows, cols, transpose), func(t *testing.T) {
					m, d := activeManager(t)
					v := shader.Matrix(rows, cols, seq32(rows*cols)...)
					if transpose {
						v = v.Transposed()
					}
					err := m.SetUniform("value", v)

					if !supported {
						require.ErrorIs(t, err, shader.ErrInvalidShape)
						assert.Empty(t, d.Calls)
						return
					}
					require.NoError(t, err)
					require.Len(t, d.Calls, 1)

					want := fmt.Sprintf("UniformMatrix%dx%dfv", cols, rows)
					if rows == cols {
						want = fmt.Sprintf("UniformMatrix%dfv", rows)
					}
					assert.Equal(t, want, d.Calls[0].Name)
					assert.Equal(t, transpose, d.Calls[0].Transpose)
					assert.Equal(t, int32(1), d.Calls[0].Count)
				})
			}
		}
	}
}

func TestSetUniform_MatrixDouble(t *testing.T) {
	m, d := activeManager(t)

	require.NoError(t, m.SetUniform("value", shader.Matrix(3, 4, seq64(12)...)))
	call, _ := d.LastCall()
	assert.Equal(t, "UniformMatrix4x3dv", call.Name)
	assert.Equal(t, seq64(12), call.Data)
}

func TestSetUniform_MatrixArray(t *testing.T) {
	m, d := activeManager(t)

	require.NoError(t, m.SetUniform("value", shader.MatrixArray(4, 4, 3, seq32(48)...).Transposed()))
	call, _ := d.LastCall()
	assert.Equal(t, "UniformMatrix4fv", call.Name)
	assert.Equal(t, int32(3), call.Count)
	assert.True(t, call.Transpose)

	err := m.SetUniform("value", shader.MatrixArray(4, 4, 3, seq32(32)...))
	require.ErrorIs(t, err, shader.ErrInvalidShape)
	err = m.SetUniform("value", shader.MatrixArray(4, 4, 0, seq32(16)...))
	require.ErrorIs(t, err, shader.ErrInvalidShape)
	assert.Len(t, d.Calls, 1)
}

func TestSetUniform_CachesLocations(t *testing.T) {
	m, _ := activeManager(t)

	first, err := m.UniformLocation("color")
	require.NoError(t, err)
	second, err := m.UniformLocation("color")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := m.UniformLocation("value")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestDispatch_Total(t *testing.T) {
	calls := shader.Uploads()
	require.Len(t, calls, 4*4+2*9)

	seen := make(map[string]shader.Type)
	for _, c := range calls {
		prev, dup := seen[c.Call]
		require.False(t, dup, "%s used by both %s and %s", c.Call, prev, c.Type)
		seen[c.Call] = c.Type
	}

	d := shadertest.New()
	for i, c := range calls {
		v := valueOf(c.Type)
		name, err := shader.CallName(v)
		require.NoError(t, err, c.Type.String())
		assert.Equal(t, c.Call, name)

		require.NoError(t, shader.Dispatch(d, shader.Location(i), v))
		require.Len(t, d.Calls, i+1)
		assert.Equal(t, c.Call, d.Calls[i].Name)
		assert.Equal(t, shader.Location(i), d.Calls[i].Location)
	}
}

func TestDispatch_IntegerTypes(t *testing.T) {
	d := shadertest.New()
	v := shader.VectorArray[int32](4, make([]int32, 16)...)
	require.NoError(t, shader.Dispatch(d, 0, v), "ivec4[4] is fine")

	// Matrices are float only.
	_, err := shader.ParseType("imat4")
	require.ErrorIs(t, err, shader.ErrInvalidShape)
}

func valueOf(t shader.Type) shader.Value {
	n := t.Components()
	switch t.Shape {
	case shader.ShapeMatrix:
		if t.Kind == shader.Float64 {
			return shader.Matrix(t.Rows, t.Cols, seq64(n)...)
		}
		return shader.Matrix(t.Rows, t.Cols, seq32(n)...)
	case shader.ShapeScalar:
		switch t.Kind {
		case shader.Int32:
			return shader.Scalar[int32](1)
		case shader.Uint32:
			return shader.Scalar[uint32](1)
		case shader.Float32:
			return shader.Scalar[float32](1)
		default:
			return shader.Scalar[float64](1)
		}
	default:
		switch t.Kind {
		case shader.Int32:
			return shader.Vector(make([]int32, n)...)
		case shader.Uint32:
			return shader.Vector(make([]uint32, n)...)
		case shader.Float32:
			return shader.Vector(seq32(n)...)
		default:
			return shader.Vector(seq64(n)...)
		}
	}
}
