/*
Package shader compiles GLSL stages, links them into named programs and
uploads typed uniform values to the active program.

# Overview

A Manager owns every stage and program it creates. Stages are added one at
a time and stay pending until BuildProgram links them under a name. The
program must then be made active with UseProgram before uniforms can be set.

Uniform values are built with Scalar, Vector, VectorArray, Matrix and
MatrixArray (or the mathgl helpers such as Mat4). SetUniform routes each
value to exactly one upload call based on its component type and shape, and
rejects shapes the graphics API has no call for with ErrInvalidShape.

# Quick Start

	window, _ := opengl.NewWindow(opengl.WindowConfig{Width: 800, Height: 600})
	defer window.Close()

	sm := shader.NewManager(opengl.NewDriver())
	defer sm.Delete()

	sm.AddShader("shaders/basic.vert", shader.StageVertex)
	sm.AddShader("shaders/basic.frag", shader.StageFragment)
	if _, err := sm.BuildProgram("basic"); err != nil {
	    var cerr *shader.CompileError
	    if errors.As(err, &cerr) {
	        fmt.Println(cerr.Log)
	    }
	}

	sm.UseProgram("basic")
	sm.SetUniform("color", shader.Vector[float32](1, 0, 0, 1))
	sm.SetUniform("projection", shader.Mat4(mgl32.Ortho2D(0, 800, 600, 0)))

# Pending Stages

At most one stage of each kind is pending. Adding a second stage of the same
kind replaces and deletes the first. Pending stages are only cleared by a
successful BuildProgram or by ResetStages; a failed build (missing stage,
duplicate name, link error) leaves them in place so a stage can be fixed and
the build retried, or the same stages built under another name. A
successful build consumes the whole set, so the next program starts empty.

# Errors

Every operation returns its error; nothing is only logged. Match the cause
with errors.Is against ErrIncompleteStages, ErrDuplicateName, ErrNotFound,
ErrNoActiveProgram, ErrUnknownUniform, ErrInvalidShape and
ErrUnsupportedStage, or with errors.As against *SourceError, *CompileError
and *LinkError, which carry the path and the driver's info log.

# Threading

A Manager is not safe for concurrent use and must be used from the thread
that owns the graphics context.
*/
package shader
