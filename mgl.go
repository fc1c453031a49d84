package shader

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Helpers for building values from mathgl types. mathgl matrices are
// column-major and named rows first, so Mat2x3 has 2 rows and 3 columns and
// uploads as a GLSL mat3x2.

// Vec2 returns a vec2 value.
func Vec2(v mgl32.Vec2) Value { return Vector(v[:]...) }

// Vec3 returns a vec3 value.
func Vec3(v mgl32.Vec3) Value { return Vector(v[:]...) }

// Vec4 returns a vec4 value.
func Vec4(v mgl32.Vec4) Value { return Vector(v[:]...) }

// Mat2 returns a mat2 value.
func Mat2(m mgl32.Mat2) Value { return Matrix(2, 2, m[:]...) }

// Mat3 returns a mat3 value.
func Mat3(m mgl32.Mat3) Value { return Matrix(3, 3, m[:]...) }

// Mat4 returns a mat4 value.
func Mat4(m mgl32.Mat4) Value { return Matrix(4, 4, m[:]...) }

// Mat2x3 returns a GLSL mat3x2 value (2 rows, 3 columns).
func Mat2x3(m mgl32.Mat2x3) Value { return Matrix(2, 3, m[:]...) }

// Mat3x2 returns a GLSL mat2x3 value (3 rows, 2 columns).
func Mat3x2(m mgl32.Mat3x2) Value { return Matrix(3, 2, m[:]...) }

// Mat2x4 returns a GLSL mat4x2 value (2 rows, 4 columns).
func Mat2x4(m mgl32.Mat2x4) Value { return Matrix(2, 4, m[:]...) }

// Mat4x2 returns a GLSL mat2x4 value (4 rows, 2 columns).
func Mat4x2(m mgl32.Mat4x2) Value { return Matrix(4, 2, m[:]...) }

// Mat3x4 returns a GLSL mat4x3 value (3 rows, 4 columns).
func Mat3x4(m mgl32.Mat3x4) Value { return Matrix(3, 4, m[:]...) }

// Mat4x3 returns a GLSL mat3x4 value (4 rows, 3 columns).
func Mat4x3(m mgl32.Mat4x3) Value { return Matrix(4, 3, m[:]...) }

// Vec3Array packs vs into a single vec3 array upload.
func Vec3Array(vs []mgl32.Vec3) Value {
	data := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		data = append(data, v[:]...)
	}
	return VectorArray(3, data...)
}

// Mat4Array packs ms into a single mat4 array upload, e.g. for skinning.
func Mat4Array(ms []mgl32.Mat4) Value {
	data := make([]float32, 0, 16*len(ms))
	for _, m := range ms {
		data = append(data, m[:]...)
	}
	return MatrixArray(4, 4, len(ms), data...)
}

// DVec2 returns a dvec2 value.
func DVec2(v mgl64.Vec2) Value { return Vector(v[:]...) }

// DVec3 returns a dvec3 value.
func DVec3(v mgl64.Vec3) Value { return Vector(v[:]...) }

// DVec4 returns a dvec4 value.
func DVec4(v mgl64.Vec4) Value { return Vector(v[:]...) }

// DMat2 returns a dmat2 value.
func DMat2(m mgl64.Mat2) Value { return Matrix(2, 2, m[:]...) }

// DMat3 returns a dmat3 value.
func DMat3(m mgl64.Mat3) Value { return Matrix(3, 3, m[:]...) }

// DMat4 returns a dmat4 value.
func DMat4(m mgl64.Mat4) Value { return Matrix(4, 4, m[:]...) }
