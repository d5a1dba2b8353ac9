package colorfield

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 transformation matrix in column-major order, matching the
// WGSL mat4x4<f32> memory layout. Element (row r, column c) is at index
// c*4 + r. It is defined over the x/image flat-array type so uniform data
// can be copied to GPU buffers without conversion.
type Mat4 f32.Mat4

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scaling returns a per-axis scaling matrix.
func Scaling(x, y, z float32) Mat4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotationX returns a rotation about the X axis (angle in radians).
func RotationX(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity4()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// RotationY returns a rotation about the Y axis (angle in radians).
func RotationY(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity4()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// RotationZ returns a rotation about the Z axis (angle in radians).
func RotationZ(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity4()
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// Perspective returns a perspective projection matrix with the given
// vertical field of view (radians), aspect ratio (width/height) and
// near/far clip distances. Depth maps to [0, 1] (the WebGPU convention).
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovy/2)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = near * far / (near - far)
	return m
}

// Mul returns the matrix product m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVec4 returns the product m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return out
}

// TransformPoint applies the matrix to a point (w = 1) without dividing.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return m.MulVec4(V4(v.X, v.Y, v.Z, 1)).Vec3()
}

// Project applies the matrix to a point (w = 1) and performs the
// perspective divide, yielding normalized device coordinates.
func (m Mat4) Project(v Vec3) Vec3 {
	return m.MulVec4(V4(v.X, v.Y, v.Z, 1)).PerspectiveDivide()
}
