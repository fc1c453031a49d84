package shadertest

import "github.com/go-theft-auto/shader"

func (d *Driver) Uniform1iv(l shader.Location, n int32, v []int32) { d.record("Uniform1iv", l, n, false, v) }
func (d *Driver) Uniform2iv(l shader.Location, n int32, v []int32) { d.record("Uniform2iv", l, n, false, v) }
func (d *Driver) Uniform3iv(l shader.Location, n int32, v []int32) { d.record("Uniform3iv", l, n, false, v) }
func (d *Driver) Uniform4iv(l shader.Location, n int32, v []int32) { d.record("Uniform4iv", l, n, false, v) }

func (d *Driver) Uniform1uiv(l shader.Location, n int32, v []uint32) { d.record("Uniform1uiv", l, n, false, v) }
func (d *Driver) Uniform2uiv(l shader.Location, n int32, v []uint32) { d.record("Uniform2uiv", l, n, false, v) }
func (d *Driver) Uniform3uiv(l shader.Location, n int32, v []uint32) { d.record("Uniform3uiv", l, n, false, v) }
func (d *Driver) Uniform4uiv(l shader.Location, n int32, v []uint32) { d.record("Uniform4uiv", l, n, false, v) }

func (d *Driver) Uniform1fv(l shader.Location, n int32, v []float32) { d.record("Uniform1fv", l, n, false, v) }
func (d *Driver) Uniform2fv(l shader.Location, n int32, v []float32) { d.record("Uniform2fv", l, n, false, v) }
func (d *Driver) Uniform3fv(l shader.Location, n int32, v []float32) { d.record("Uniform3fv", l, n, false, v) }
func (d *Driver) Uniform4fv(l shader.Location, n int32, v []float32) { d.record("Uniform4fv", l, n, false, v) }

func (d *Driver) Uniform1dv(l shader.Location, n int32, v []float64) { d.record("Uniform1dv", l, n, false, v) }
func (d *Driver) Uniform2dv(l shader.Location, n int32, v []float64) { d.record("Uniform2dv", l, n, false, v) }
func (d *Driver) Uniform3dv(l shader.Location, n int32, v []float64) { d.record("Uniform3dv", l, n, false, v) }
func (d *Driver) Uniform4dv(l shader.Location, n int32, v []float64) { d.record("Uniform4dv", l, n, false, v) }

func (d *Driver) UniformMatrix2fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix2fv", l, n, t, v)
}
func (d *Driver) UniformMatrix3fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix3fv", l, n, t, v)
}
func (d *Driver) UniformMatrix4fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix4fv", l, n, t, v)
}
func (d *Driver) UniformMatrix2x3fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix2x3fv", l, n, t, v)
}
func (d *Driver) UniformMatrix3x2fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix3x2fv", l, n, t, v)
}
func (d *Driver) UniformMatrix2x4fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix2x4fv", l, n, t, v)
}
func (d *Driver) UniformMatrix4x2fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix4x2fv", l, n, t, v)
}
func (d *Driver) UniformMatrix3x4fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix3x4fv", l, n, t, v)
}
func (d *Driver) UniformMatrix4x3fv(l shader.Location, n int32, t bool, v []float32) {
	d.record("UniformMatrix4x3fv", l, n, t, v)
}

func (d *Driver) UniformMatrix2dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix2dv", l, n, t, v)
}
func (d *Driver) UniformMatrix3dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix3dv", l, n, t, v)
}
func (d *Driver) UniformMatrix4dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix4dv", l, n, t, v)
}
func (d *Driver) UniformMatrix2x3dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix2x3dv", l, n, t, v)
}
func (d *Driver) UniformMatrix3x2dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix3x2dv", l, n, t, v)
}
func (d *Driver) UniformMatrix2x4dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix2x4dv", l, n, t, v)
}
func (d *Driver) UniformMatrix4x2dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix4x2dv", l, n, t, v)
}
func (d *Driver) UniformMatrix3x4dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix3x4dv", l, n, t, v)
}
func (d *Driver) UniformMatrix4x3dv(l shader.Location, n int32, t bool, v []float64) {
	d.record("UniformMatrix4x3dv", l, n, t, v)
}
