package shader

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is the set of component types a uniform can carry.
type Number interface {
	int32 | uint32 | float32 | float64
}

// Float is the set of component types a matrix uniform can carry.
type Float interface {
	float32 | float64
}

// Value is a typed uniform payload: a scalar, one or more vectors of 1 to 4
// components, or one or more matrices with 2 to 4 rows and columns.
//
// Values are built with Scalar, Vector, VectorArray, Matrix and MatrixArray.
// Constructors do not validate; an unsupported shape is reported with
// ErrInvalidShape when the value is dispatched. Constructors keep a
// reference to the data slice instead of copying it.
//
// Matrix data is column-major, matching mathgl and GLSL.
type Value struct {
	kind      NumericKind
	shape     Shape
	size      int // components per vector
	rows      int
	cols      int
	count     int
	transpose bool

	i32 []int32
	u32 []uint32
	f32 []float32
	f64 []float64
}

// Scalar returns a single-component value.
func Scalar[T Number](x T) Value {
	v := Value{shape: ShapeScalar, size: 1, count: 1}
	setData(&v, []T{x})
	return v
}

// Vector returns a single vector with len(components) components.
func Vector[T Number](components ...T) Value {
	v := Value{shape: ShapeVector, size: len(components), count: 1}
	setData(&v, components)
	return v
}

// VectorArray returns len(data)/size vectors of size components each, for
// uniforms declared as arrays such as "uniform vec3 lights[8]".
func VectorArray[T Number](size int, data ...T) Value {
	v := Value{shape: ShapeVector, size: size}
	if size > 0 {
		v.count = len(data) / size
	}
	setData(&v, data)
	return v
}

// Matrix returns a single rows x cols matrix.
func Matrix[T Float](rows, cols int, data ...T) Value {
	return MatrixArray(rows, cols, 1, data...)
}

// MatrixArray returns count rows x cols matrices laid out back to back.
func MatrixArray[T Float](rows, cols, count int, data ...T) Value {
	v := Value{shape: ShapeMatrix, rows: rows, cols: cols, count: count}
	setData(&v, data)
	return v
}

func setData[T Number](v *Value, data []T) {
	switch d := any(data).(type) {
	case []int32:
		v.kind, v.i32 = Int32, d
	case []uint32:
		v.kind, v.u32 = Uint32, d
	case []float32:
		v.kind, v.f32 = Float32, d
	case []float64:
		v.kind, v.f64 = Float64, d
	}
}

// Transposed returns a copy of v with the transpose flag set. It only
// affects matrices; the driver transposes the data on upload.
func (v Value) Transposed() Value {
	v.transpose = true
	return v
}

// Kind returns the component type.
func (v Value) Kind() NumericKind { return v.kind }

// Shape returns whether v is a scalar, vector or matrix.
func (v Value) Shape() Shape { return v.shape }

// Size returns the components per vector. It is 1 for scalars and 0 for
// matrices.
func (v Value) Size() int {
	if v.shape == ShapeMatrix {
		return 0
	}
	return v.size
}

// Rows returns the matrix row count, or 0 for non-matrices.
func (v Value) Rows() int { return v.rows }

// Cols returns the matrix column count, or 0 for non-matrices.
func (v Value) Cols() int { return v.cols }

// Count returns how many vectors or matrices v holds.
func (v Value) Count() int { return v.count }

// Transpose reports whether the matrix is uploaded transposed.
func (v Value) Transpose() bool { return v.transpose }

// Len returns the number of components stored in v.
func (v Value) Len() int {
	switch v.kind {
	case Int32:
		return len(v.i32)
	case Uint32:
		return len(v.u32)
	case Float32:
		return len(v.f32)
	case Float64:
		return len(v.f64)
	}
	return 0
}

// Type returns the GLSL type v uploads as.
func (v Value) Type() Type {
	t := Type{Kind: v.kind, Shape: v.shape}
	if v.shape == ShapeMatrix {
		t.Rows, t.Cols = v.rows, v.cols
	} else {
		t.Size = v.size
	}
	return t
}

func (v Value) String() string {
	s := v.Type().String()
	if v.count != 1 {
		s += "[" + strconv.Itoa(v.count) + "]"
	}
	return s
}

// Type describes the shape of a uniform without its data. Its String form
// is the GLSL type name, e.g. "vec3", "uvec2", "mat4", "dmat2x3".
type Type struct {
	Kind  NumericKind
	Shape Shape
	Size  int // vector components; 1 for scalars
	Rows  int
	Cols  int
}

var scalarNames = [...]string{Int32: "int", Uint32: "uint", Float32: "float", Float64: "double"}
var vectorPrefixes = [...]string{Int32: "i", Uint32: "u", Float32: "", Float64: "d"}

func (t Type) String() string {
	if int(t.Kind) >= len(scalarNames) {
		return fmt.Sprintf("invalid(%s)", t.Kind)
	}
	switch t.Shape {
	case ShapeScalar:
		return scalarNames[t.Kind]
	case ShapeVector:
		if t.Size == 1 {
			return scalarNames[t.Kind]
		}
		return fmt.Sprintf("%svec%d", vectorPrefixes[t.Kind], t.Size)
	case ShapeMatrix:
		// GLSL names matrices columns first.
		if t.Rows == t.Cols {
			return fmt.Sprintf("%smat%d", vectorPrefixes[t.Kind], t.Cols)
		}
		return fmt.Sprintf("%smat%dx%d", vectorPrefixes[t.Kind], t.Cols, t.Rows)
	}
	return fmt.Sprintf("invalid(%s)", t.Shape)
}

// Components returns the number of components one element of t holds.
func (t Type) Components() int {
	if t.Shape == ShapeMatrix {
		return t.Rows * t.Cols
	}
	return t.Size
}

// ParseType parses a GLSL uniform type name such as "float", "ivec3",
// "mat4" or "dmat3x2".
func ParseType(name string) (Type, error) {
	bad := fmt.Errorf("%w: unknown type %q", ErrInvalidShape, name)
	switch name {
	case "int":
		return Type{Kind: Int32, Shape: ShapeScalar, Size: 1}, nil
	case "uint":
		return Type{Kind: Uint32, Shape: ShapeScalar, Size: 1}, nil
	case "float":
		return Type{Kind: Float32, Shape: ShapeScalar, Size: 1}, nil
	case "double":
		return Type{Kind: Float64, Shape: ShapeScalar, Size: 1}, nil
	}

	kind := Float32
	rest := name
	switch {
	case strings.HasPrefix(rest, "i"):
		kind, rest = Int32, rest[1:]
	case strings.HasPrefix(rest, "u"):
		kind, rest = Uint32, rest[1:]
	case strings.HasPrefix(rest, "d"):
		kind, rest = Float64, rest[1:]
	}

	switch {
	case strings.HasPrefix(rest, "vec"):
		n, err := strconv.Atoi(rest[len("vec"):])
		if err != nil || n < 2 || n > 4 {
			return Type{}, bad
		}
		return Type{Kind: kind, Shape: ShapeVector, Size: n}, nil
	case strings.HasPrefix(rest, "mat"):
		if kind != Float32 && kind != Float64 {
			return Type{}, bad
		}
		dims := rest[len("mat"):]
		colStr, rowStr, found := strings.Cut(dims, "x")
		if !found {
			rowStr = colStr
		}
		cols, err1 := strconv.Atoi(colStr)
		rows, err2 := strconv.Atoi(rowStr)
		if err1 != nil || err2 != nil || !validMatrixDim(rows) || !validMatrixDim(cols) {
			return Type{}, bad
		}
		return Type{Kind: kind, Shape: ShapeMatrix, Rows: rows, Cols: cols}, nil
	}
	return Type{}, bad
}

func validMatrixDim(n int) bool { return n >= 2 && n <= 4 }
