package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
)

// Uploads pass a pointer to the first element; callers must not pass empty
// slices. shader.Dispatch never does.

func (d *Driver) Uniform1iv(l shader.Location, n int32, v []int32) { gl.Uniform1iv(int32(l), n, &v[0]) }
func (d *Driver) Uniform2iv(l shader.Location, n int32, v []int32) { gl.Uniform2iv(int32(l), n, &v[0]) }
func (d *Driver) Uniform3iv(l shader.Location, n int32, v []int32) { gl.Uniform3iv(int32(l), n, &v[0]) }
func (d *Driver) Uniform4iv(l shader.Location, n int32, v []int32) { gl.Uniform4iv(int32(l), n, &v[0]) }

func (d *Driver) Uniform1uiv(l shader.Location, n int32, v []uint32) { gl.Uniform1uiv(int32(l), n, &v[0]) }
func (d *Driver) Uniform2uiv(l shader.Location, n int32, v []uint32) { gl.Uniform2uiv(int32(l), n, &v[0]) }
func (d *Driver) Uniform3uiv(l shader.Location, n int32, v []uint32) { gl.Uniform3uiv(int32(l), n, &v[0]) }
func (d *Driver) Uniform4uiv(l shader.Location, n int32, v []uint32) { gl.Uniform4uiv(int32(l), n, &v[0]) }

func (d *Driver) Uniform1fv(l shader.Location, n int32, v []float32) { gl.Uniform1fv(int32(l), n, &v[0]) }
func (d *Driver) Uniform2fv(l shader.Location, n int32, v []float32) { gl.Uniform2fv(int32(l), n, &v[0]) }
func (d *Driver) Uniform3fv(l shader.Location, n int32, v []float32) { gl.Uniform3fv(int32(l), n, &v[0]) }
func (d *Driver) Uniform4fv(l shader.Location, n int32, v []float32) { gl.Uniform4fv(int32(l), n, &v[0]) }

func (d *Driver) Uniform1dv(l shader.Location, n int32, v []float64) { gl.Uniform1dv(int32(l), n, &v[0]) }
func (d *Driver) Uniform2dv(l shader.Location, n int32, v []float64) { gl.Uniform2dv(int32(l), n, &v[0]) }
func (d *Driver) Uniform3dv(l shader.Location, n int32, v []float64) { gl.Uniform3dv(int32(l), n, &v[0]) }
func (d *Driver) Uniform4dv(l shader.Location, n int32, v []float64) { gl.Uniform4dv(int32(l), n, &v[0]) }

func (d *Driver) UniformMatrix2fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix2fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix3fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix3fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix4fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix4fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix2x3fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix2x3fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix3x2fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix3x2fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix2x4fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix2x4fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix4x2fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix4x2fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix3x4fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix3x4fv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix4x3fv(l shader.Location, n int32, t bool, v []float32) {
	gl.UniformMatrix4x3fv(int32(l), n, t, &v[0])
}

func (d *Driver) UniformMatrix2dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix2dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix3dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix3dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix4dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix4dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix2x3dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix2x3dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix3x2dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix3x2dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix2x4dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix2x4dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix4x2dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix4x2dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix3x4dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix3x4dv(int32(l), n, t, &v[0])
}
func (d *Driver) UniformMatrix4x3dv(l shader.Location, n int32, t bool, v []float64) {
	gl.UniformMatrix4x3dv(int32(l), n, t, &v[0])
}
