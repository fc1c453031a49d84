package shader

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedStage is returned when a stage kind cannot be compiled.
	ErrUnsupportedStage = errors.New("unsupported shader stage")

	// ErrIncompleteStages is returned by BuildProgram when a required stage
	// (vertex or fragment by default) has not been added.
	ErrIncompleteStages = errors.New("incomplete shader stages")

	// ErrDuplicateName is returned by BuildProgram when the name is taken.
	// Programs are never overwritten.
	ErrDuplicateName = errors.New("program name already registered")

	// ErrNotFound is returned when no program has the requested name.
	ErrNotFound = errors.New("program not found")

	// ErrNoActiveProgram is returned by uniform operations before UseProgram.
	ErrNoActiveProgram = errors.New("no active program")

	// ErrUnknownUniform is returned when the active program has no location
	// for a uniform. Uniforms removed by the driver's optimizer look the same.
	ErrUnknownUniform = errors.New("unknown uniform")

	// ErrInvalidShape is returned when a Value has no matching upload call.
	ErrInvalidShape = errors.New("invalid uniform shape")
)

// SourceError reports a shader source that could not be read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read shader source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// CompileError reports a stage that failed to compile. Log holds the
// driver's info log.
type CompileError struct {
	Kind StageKind
	Path string // empty when compiled from in-memory source
	Log  string
}

func (e *CompileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s shader %s compilation failed: %s", e.Kind, e.Path, e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Kind, e.Log)
}

// LinkError reports a stage set that failed to link. Log holds the
// driver's info log.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	if e.Program != "" {
		return fmt.Sprintf("shader program %q linking failed: %s", e.Program, e.Log)
	}
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}
