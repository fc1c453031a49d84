package shader

// Driver is the graphics API a Manager compiles, links and uploads through.
// backend/opengl provides the OpenGL implementation; shadertest provides an
// in-memory one for tests.
//
// All methods must be called from the thread that owns the graphics context.
type Driver interface {
	// CompileStage compiles source as a stage of the given kind. A failed
	// compile returns a *CompileError carrying the driver log and must not
	// leak the stage object.
	CompileStage(source string, kind StageKind) (StageHandle, error)
	DeleteStage(h StageHandle)

	// LinkProgram links stages into a program. A failed link returns a
	// *LinkError and must leave the stages intact.
	LinkProgram(stages []StageHandle) (ProgramHandle, error)
	DeleteProgram(h ProgramHandle)
	UseProgram(h ProgramHandle)

	// UniformLocation reports false when the program has no active uniform
	// called name.
	UniformLocation(h ProgramHandle, name string) (Location, bool)

	Uploader
}

// Uploader has one entry point per uniform upload call. Vector calls take
// count vectors of N components; matrix calls take count matrices.
//
// Matrix methods follow the GL naming, where UniformMatrixCxR uploads a
// matrix with C columns and R rows.
type Uploader interface {
	Uniform1iv(loc Location, count int32, v []int32)
	Uniform2iv(loc Location, count int32, v []int32)
	Uniform3iv(loc Location, count int32, v []int32)
	Uniform4iv(loc Location, count int32, v []int32)

	Uniform1uiv(loc Location, count int32, v []uint32)
	Uniform2uiv(loc Location, count int32, v []uint32)
	Uniform3uiv(loc Location, count int32, v []uint32)
	Uniform4uiv(loc Location, count int32, v []uint32)

	Uniform1fv(loc Location, count int32, v []float32)
	Uniform2fv(loc Location, count int32, v []float32)
	Uniform3fv(loc Location, count int32, v []float32)
	Uniform4fv(loc Location, count int32, v []float32)

	Uniform1dv(loc Location, count int32, v []float64)
	Uniform2dv(loc Location, count int32, v []float64)
	Uniform3dv(loc Location, count int32, v []float64)
	Uniform4dv(loc Location, count int32, v []float64)

	UniformMatrix2fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix3fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix4fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix2x3fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix3x2fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix2x4fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix4x2fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix3x4fv(loc Location, count int32, transpose bool, v []float32)
	UniformMatrix4x3fv(loc Location, count int32, transpose bool, v []float32)

	UniformMatrix2dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix3dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix4dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix2x3dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix3x2dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix2x4dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix4x2dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix3x4dv(loc Location, count int32, transpose bool, v []float64)
	UniformMatrix4x3dv(loc Location, count int32, transpose bool, v []float64)
}
