package colorfield

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec3 represents a 3D point or vector. Geometry and color coordinates are
// float32 because both end up in GPU vertex buffers.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Lerp returns the linear interpolation between v and u at parameter t.
func (v Vec3) Lerp(u Vec3, t float32) Vec3 {
	return Vec3{
		X: v.X + (u.X-v.X)*t,
		Y: v.Y + (u.Y-v.Y)*t,
		Z: v.Z + (u.Z-v.Z)*t,
	}
}

// Component returns the i-th component (0 = X, 1 = Y, 2 = Z).
func (v Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SetComponent returns a copy of v with the i-th component replaced.
func (v Vec3) SetComponent(i int, val float32) Vec3 {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// Vec4 represents a homogeneous 4D vector. It is defined over the
// x/image flat-array type so vertex data can be copied to GPU buffers
// without conversion.
type Vec4 f32.Vec4

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec3 drops the W component without dividing.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// PerspectiveDivide returns the vector divided by its W component.
func (v Vec4) PerspectiveDivide() Vec3 {
	return Vec3{X: v[0] / v[3], Y: v[1] / v[3], Z: v[2] / v[3]}
}
