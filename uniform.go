package shader

import (
	"fmt"
)

// upload is one entry of the dispatch table.
type upload struct {
	call string
	fn   func(u Uploader, loc Location, v Value)
}

// vectorUploads is indexed by [NumericKind][size-1]. Scalars use the size 1
// entries.
var vectorUploads = [4][4]upload{
	Int32: {
		{"Uniform1iv", func(u Uploader, l Location, v Value) { u.Uniform1iv(l, int32(v.count), v.i32) }},
		{"Uniform2iv", func(u Uploader, l Location, v Value) { u.Uniform2iv(l, int32(v.count), v.i32) }},
		{"Uniform3iv", func(u Uploader, l Location, v Value) { u.Uniform3iv(l, int32(v.count), v.i32) }},
		{"Uniform4iv", func(u Uploader, l Location, v Value) { u.Uniform4iv(l, int32(v.count), v.i32) }},
	},
	Uint32: {
		{"Uniform1uiv", func(u Uploader, l Location, v Value) { u.Uniform1uiv(l, int32(v.count), v.u32) }},
		{"Uniform2uiv", func(u Uploader, l Location, v Value) { u.Uniform2uiv(l, int32(v.count), v.u32) }},
		{"Uniform3uiv", func(u Uploader, l Location, v Value) { u.Uniform3uiv(l, int32(v.count), v.u32) }},
		{"Uniform4uiv", func(u Uploader, l Location, v Value) { u.Uniform4uiv(l, int32(v.count), v.u32) }},
	},
	Float32: {
		{"Uniform1fv", func(u Uploader, l Location, v Value) { u.Uniform1fv(l, int32(v.count), v.f32) }},
		{"Uniform2fv", func(u Uploader, l Location, v Value) { u.Uniform2fv(l, int32(v.count), v.f32) }},
		{"Uniform3fv", func(u Uploader, l Location, v Value) { u.Uniform3fv(l, int32(v.count), v.f32) }},
		{"Uniform4fv", func(u Uploader, l Location, v Value) { u.Uniform4fv(l, int32(v.count), v.f32) }},
	},
	Float64: {
		{"Uniform1dv", func(u Uploader, l Location, v Value) { u.Uniform1dv(l, int32(v.count), v.f64) }},
		{"Uniform2dv", func(u Uploader, l Location, v Value) { u.Uniform2dv(l, int32(v.count), v.f64) }},
		{"Uniform3dv", func(u Uploader, l Location, v Value) { u.Uniform3dv(l, int32(v.count), v.f64) }},
		{"Uniform4dv", func(u Uploader, l Location, v Value) { u.Uniform4dv(l, int32(v.count), v.f64) }},
	},
}

// matrixUploads is indexed by [rows-2][cols-2][kind-Float32]. The GL entry
// point for a matrix with R rows and C columns is UniformMatrixCxR.
var matrixUploads = [3][3][2]upload{
	{ // 2 rows
		{
			{"UniformMatrix2fv", func(u Uploader, l Location, v Value) { u.UniformMatrix2fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix2dv", func(u Uploader, l Location, v Value) { u.UniformMatrix2dv(l, int32(v.count), v.transpose, v.f64) }},
		},
		{
			{"UniformMatrix3x2fv", func(u Uploader, l Location, v Value) { u.UniformMatrix3x2fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix3x2dv", func(u Uploader, l Location, v Value) { u.UniformMatrix3x2dv(l, int32(v.count), v.transpose, v.f64) }},
		},
		{
			{"UniformMatrix4x2fv", func(u Uploader, l Location, v Value) { u.UniformMatrix4x2fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix4x2dv", func(u Uploader, l Location, v Value) { u.UniformMatrix4x2dv(l, int32(v.count), v.transpose, v.f64) }},
		},
	},
	{ // 3 rows
		{
			{"UniformMatrix2x3fv", func(u Uploader, l Location, v Value) { u.UniformMatrix2x3fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix2x3dv", func(u Uploader, l Location, v Value) { u.UniformMatrix2x3dv(l, int32(v.count), v.transpose, v.f64) }},
		},
		{
			{"UniformMatrix3fv", func(u Uploader, l Location, v Value) { u.UniformMatrix3fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix3dv", func(u Uploader, l Location, v Value) { u.UniformMatrix3dv(l, int32(v.count), v.transpose, v.f64) }},
		},
		{
			{"UniformMatrix4x3fv", func(u Uploader, l Location, v Value) { u.UniformMatrix4x3fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix4x3dv", func(u Uploader, l Location, v Value) { u.UniformMatrix4x3dv(l, int32(v.count), v.transpose, v.f64) }},
		},
	},
	{ // 4 rows
		{
			{"UniformMatrix2x4fv", func(u Uploader, l Location, v Value) { u.UniformMatrix2x4fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix2x4dv", func(u Uploader, l Location, v Value) { u.UniformMatrix2x4dv(l, int32(v.count), v.transpose, v.f64) }},
		},
		{
			{"UniformMatrix3x4fv", func(u Uploader, l Location, v Value) { u.UniformMatrix3x4fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix3x4dv", func(u Uploader, l Location, v Value) { u.UniformMatrix3x4dv(l, int32(v.count), v.transpose, v.f64) }},
		},
		{
			{"UniformMatrix4fv", func(u Uploader, l Location, v Value) { u.UniformMatrix4fv(l, int32(v.count), v.transpose, v.f32) }},
			{"UniformMatrix4dv", func(u Uploader, l Location, v Value) { u.UniformMatrix4dv(l, int32(v.count), v.transpose, v.f64) }},
		},
	},
}

// Validate reports whether v has a matching upload call. Errors wrap
// ErrInvalidShape.
func Validate(v Value) error {
	if v.kind > Float64 {
		return fmt.Errorf("%w: unknown component type %s", ErrInvalidShape, v.kind)
	}
	if v.count < 1 {
		return fmt.Errorf("%w: %s count %d", ErrInvalidShape, v.shape, v.count)
	}

	var per int
	switch v.shape {
	case ShapeScalar:
		if v.size != 1 || v.count != 1 {
			return fmt.Errorf("%w: scalar with %d components", ErrInvalidShape, v.size*v.count)
		}
		per = 1
	case ShapeVector:
		if v.size < 1 || v.size > 4 {
			return fmt.Errorf("%w: vector length %d", ErrInvalidShape, v.size)
		}
		per = v.size
	case ShapeMatrix:
		if v.kind != Float32 && v.kind != Float64 {
			return fmt.Errorf("%w: %s matrix", ErrInvalidShape, v.kind)
		}
		if !validMatrixDim(v.rows) || !validMatrixDim(v.cols) {
			return fmt.Errorf("%w: %dx%d matrix", ErrInvalidShape, v.rows, v.cols)
		}
		per = v.rows * v.cols
	default:
		return fmt.Errorf("%w: unknown shape %s", ErrInvalidShape, v.shape)
	}

	if n := v.Len(); n != per*v.count {
		return fmt.Errorf("%w: %s needs %d components, got %d", ErrInvalidShape, v, per*v.count, n)
	}
	return nil
}

func lookup(v Value) (upload, error) {
	if err := Validate(v); err != nil {
		return upload{}, err
	}
	switch v.shape {
	case ShapeScalar, ShapeVector:
		return vectorUploads[v.kind][v.size-1], nil
	case ShapeMatrix:
		return matrixUploads[v.rows-2][v.cols-2][v.kind-Float32], nil
	}
	return upload{}, fmt.Errorf("%w: unknown shape %s", ErrInvalidShape, v.shape)
}

// Dispatch uploads v at loc through the single Uploader call matching its
// component type and shape. Nothing is uploaded when v is invalid.
func Dispatch(u Uploader, loc Location, v Value) error {
	up, err := lookup(v)
	if err != nil {
		return err
	}
	up.fn(u, loc, v)
	return nil
}

// CallName returns the Uploader method Dispatch would use for v.
func CallName(v Value) (string, error) {
	up, err := lookup(v)
	if err != nil {
		return "", err
	}
	return up.call, nil
}

// UploadCall describes one entry of the dispatch table.
type UploadCall struct {
	Type Type
	Call string
}

// Uploads lists every supported uniform type with the Uploader method it is
// routed to, vectors first.
func Uploads() []UploadCall {
	calls := make([]UploadCall, 0, 4*4+3*3*2)
	for kind := Int32; kind <= Float64; kind++ {
		for size := 1; size <= 4; size++ {
			t := Type{Kind: kind, Shape: ShapeVector, Size: size}
			if size == 1 {
				t.Shape = ShapeScalar
			}
			calls = append(calls, UploadCall{Type: t, Call: vectorUploads[kind][size-1].call})
		}
	}
	for kind := Float32; kind <= Float64; kind++ {
		for rows := 2; rows <= 4; rows++ {
			for cols := 2; cols <= 4; cols++ {
				calls = append(calls, UploadCall{
					Type: Type{Kind: kind, Shape: ShapeMatrix, Rows: rows, Cols: cols},
					Call: matrixUploads[rows-2][cols-2][kind-Float32].call,
				})
			}
		}
	}
	return calls
}

// UniformLocation resolves name against the active program. Resolved
// locations are cached per program.
func (m *Manager) UniformLocation(name string) (Location, error) {
	p := m.active
	if p == nil {
		return 0, fmt.Errorf("uniform %q: %w", name, ErrNoActiveProgram)
	}
	if loc, ok := p.locations[name]; ok {
		return loc, nil
	}
	loc, ok := m.driver.UniformLocation(p.handle, name)
	if !ok {
		return 0, fmt.Errorf("program %q: %w %q", p.name, ErrUnknownUniform, name)
	}
	p.locations[name] = loc
	return loc, nil
}

// SetUniform uploads v to the uniform called name in the active program.
func (m *Manager) SetUniform(name string, v Value) error {
	loc, err := m.UniformLocation(name)
	if err != nil {
		return err
	}
	if err := Dispatch(m.driver, loc, v); err != nil {
		return fmt.Errorf("uniform %q: %w", name, err)
	}
	m.logger.Debug("uniform set", "program", m.active.name, "uniform", name, "type", v.String())
	return nil
}
