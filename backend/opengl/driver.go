// Package opengl provides an OpenGL 4.1 core profile shader.Driver.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
)

// MaxLogLength bounds how much of a compile or link info log is kept.
const MaxLogLength = 512

// Driver implements shader.Driver with go-gl. gl.Init must have been called
// on the current context before use.
type Driver struct{}

// NewDriver returns a Driver for the current context.
func NewDriver() *Driver {
	return &Driver{}
}

var _ shader.Driver = (*Driver)(nil)

func glStage(kind shader.StageKind) (uint32, bool) {
	switch kind {
	case shader.StageVertex:
		return gl.VERTEX_SHADER, true
	case shader.StageTessControl:
		return gl.TESS_CONTROL_SHADER, true
	case shader.StageTessEvaluation:
		return gl.TESS_EVALUATION_SHADER, true
	case shader.StageGeometry:
		return gl.GEOMETRY_SHADER, true
	case shader.StageFragment:
		return gl.FRAGMENT_SHADER, true
	default:
		return 0, false
	}
}

// CompileStage implements shader.Driver.
func (d *Driver) CompileStage(source string, kind shader.StageKind) (shader.StageHandle, error) {
	xtype, ok := glStage(kind)
	if !ok {
		return 0, shader.ErrUnsupportedStage
	}
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}

	sh := gl.CreateShader(xtype)
	csource, free := gl.Strs(source)
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(func(size int32, length *int32, buf *uint8) {
			gl.GetShaderInfoLog(sh, size, length, buf)
		})
		gl.DeleteShader(sh)
		return 0, &shader.CompileError{Kind: kind, Log: log}
	}
	return shader.StageHandle(sh), nil
}

// DeleteStage implements shader.Driver.
func (d *Driver) DeleteStage(h shader.StageHandle) {
	gl.DeleteShader(uint32(h))
}

// LinkProgram implements shader.Driver. The stages are detached again after
// linking so that deleting them frees them.
func (d *Driver) LinkProgram(stages []shader.StageHandle) (shader.ProgramHandle, error) {
	program := gl.CreateProgram()
	for _, sh := range stages {
		gl.AttachShader(program, uint32(sh))
	}
	gl.LinkProgram(program)
	for _, sh := range stages {
		gl.DetachShader(program, uint32(sh))
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(func(size int32, length *int32, buf *uint8) {
			gl.GetProgramInfoLog(program, size, length, buf)
		})
		gl.DeleteProgram(program)
		return 0, &shader.LinkError{Log: log}
	}
	return shader.ProgramHandle(program), nil
}

// DeleteProgram implements shader.Driver.
func (d *Driver) DeleteProgram(h shader.ProgramHandle) {
	gl.DeleteProgram(uint32(h))
}

// UseProgram implements shader.Driver.
func (d *Driver) UseProgram(h shader.ProgramHandle) {
	gl.UseProgram(uint32(h))
}

// UniformLocation implements shader.Driver.
func (d *Driver) UniformLocation(h shader.ProgramHandle, name string) (shader.Location, bool) {
	loc := gl.GetUniformLocation(uint32(h), gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, false
	}
	return shader.Location(loc), true
}

// infoLog reads at most MaxLogLength bytes of a shader or program log.
func infoLog(get func(size int32, length *int32, buf *uint8)) string {
	buf := make([]byte, MaxLogLength)
	var n int32
	get(MaxLogLength, &n, &buf[0])
	return strings.TrimRight(string(buf[:n]), "\x00\n")
}
