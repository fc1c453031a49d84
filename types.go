package shader

import (
	"fmt"
	"strings"
)

// StageHandle is a driver-owned reference to a compiled shader stage.
type StageHandle uint32

// ProgramHandle is a driver-owned reference to a linked program.
type ProgramHandle uint32

// Location identifies a uniform within a specific linked program.
// A Location is only meaningful for the program it was resolved against.
type Location int32

// StageKind identifies the pipeline stage a shader source compiles to.
// The zero value is not a valid stage.
type StageKind uint8

const (
	StageVertex StageKind = iota + 1
	StageTessControl
	StageTessEvaluation
	StageGeometry
	StageFragment
)

// stageOrder is the pipeline order stages are handed to the linker in.
var stageOrder = [...]StageKind{
	StageVertex,
	StageTessControl,
	StageTessEvaluation,
	StageGeometry,
	StageFragment,
}

// Valid reports whether k is a stage kind this package can compile.
func (k StageKind) Valid() bool {
	return k >= StageVertex && k <= StageFragment
}

// String returns the lowercase stage name used in logs and manifests.
func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "vertex"
	case StageTessControl:
		return "tess_control"
	case StageTessEvaluation:
		return "tess_evaluation"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%d)", uint8(k))
	}
}

// ParseStageKind converts a stage name (or common file extension such as
// "vert" or "frag") to a StageKind.
func ParseStageKind(s string) (StageKind, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "vertex", "vert", "vs":
		return StageVertex, nil
	case "tess_control", "tesc", "tcs":
		return StageTessControl, nil
	case "tess_evaluation", "tese", "tes":
		return StageTessEvaluation, nil
	case "geometry", "geom", "gs":
		return StageGeometry, nil
	case "fragment", "frag", "fs":
		return StageFragment, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStage, s)
}

// NumericKind is the component type of a uniform value.
type NumericKind uint8

const (
	Int32 NumericKind = iota
	Uint32
	Float32
	Float64
)

var numericKindNames = [...]string{
	Int32:   "int32",
	Uint32:  "uint32",
	Float32: "float32",
	Float64: "float64",
}

func (k NumericKind) String() string {
	if int(k) < len(numericKindNames) {
		return numericKindNames[k]
	}
	return fmt.Sprintf("NumericKind(%d)", uint8(k))
}

// Shape distinguishes scalars, vectors and matrices.
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeVector
	ShapeMatrix
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeVector:
		return "vector"
	case ShapeMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}
