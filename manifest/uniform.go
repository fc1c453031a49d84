package manifest

import (
	"fmt"
	"math"

	"github.com/go-theft-auto/shader"
)

// ShaderValue converts u into a shader.Value.
func (u Uniform) ShaderValue() (shader.Value, error) {
	t, err := shader.ParseType(u.Type)
	if err != nil {
		return shader.Value{}, fmt.Errorf("uniform %q: %w", u.Name, err)
	}
	count := max(u.Count, 1)
	if want := t.Components() * count; len(u.Value) != want {
		return shader.Value{}, fmt.Errorf("uniform %q: %w: %s needs %d values, got %d",
			u.Name, shader.ErrInvalidShape, t, want, len(u.Value))
	}

	if t.Shape == shader.ShapeMatrix {
		var v shader.Value
		if t.Kind == shader.Float64 {
			v = shader.MatrixArray(t.Rows, t.Cols, count, u.Value...)
		} else {
			v = shader.MatrixArray(t.Rows, t.Cols, count, convert[float32](u.Value)...)
		}
		if u.Transpose {
			v = v.Transposed()
		}
		return v, nil
	}

	if t.Shape == shader.ShapeScalar && count == 1 {
		switch t.Kind {
		case shader.Int32:
			x, err := convertInt[int32](u.Name, u.Value)
			if err != nil {
				return shader.Value{}, err
			}
			return shader.Scalar(x[0]), nil
		case shader.Uint32:
			x, err := convertInt[uint32](u.Name, u.Value)
			if err != nil {
				return shader.Value{}, err
			}
			return shader.Scalar(x[0]), nil
		case shader.Float32:
			return shader.Scalar(float32(u.Value[0])), nil
		default:
			return shader.Scalar(u.Value[0]), nil
		}
	}

	switch t.Kind {
	case shader.Int32:
		x, err := convertInt[int32](u.Name, u.Value)
		if err != nil {
			return shader.Value{}, err
		}
		return shader.VectorArray(t.Size, x...), nil
	case shader.Uint32:
		x, err := convertInt[uint32](u.Name, u.Value)
		if err != nil {
			return shader.Value{}, err
		}
		return shader.VectorArray(t.Size, x...), nil
	case shader.Float32:
		return shader.VectorArray(t.Size, convert[float32](u.Value)...), nil
	default:
		return shader.VectorArray(t.Size, u.Value...), nil
	}
}

// convertInt converts in to T, rejecting fractions and values outside T's
// range.
func convertInt[T int32 | uint32](name string, in []float64) ([]T, error) {
	lo, hi := float64(math.MinInt32), float64(math.MaxInt32)
	if _, unsigned := any(T(0)).(uint32); unsigned {
		lo, hi = 0, math.MaxUint32
	}
	out := make([]T, len(in))
	for i, f := range in {
		if f != math.Trunc(f) || f < lo || f > hi {
			return nil, fmt.Errorf("uniform %q: %w: value %d (%g) is not a %T", name, shader.ErrInvalidShape, i, f, T(0))
		}
		out[i] = T(f)
	}
	return out, nil
}

func convert[T shader.Number](in []float64) []T {
	out := make([]T, len(in))
	for i, f := range in {
		out[i] = T(f)
	}
	return out
}
