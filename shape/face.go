package shape

import (
	"github.com/gogpu/colorfield"
)

// FaceOrientation returns the rotation keyed on the fixed-axis index that
// maps the slice face onto the camera plane: the first free axis lands on
// screen X, the second free axis on screen Y, and the fixed axis on the
// depth axis. Index 2 is the identity.
func FaceOrientation(fixedAxis int) colorfield.Mat4 {
	switch fixedAxis {
	case 0:
		// (x, y, z) -> (y, z, x)
		return colorfield.Mat4{
			0, 0, 1, 0,
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		}
	case 1:
		// (x, y, z) -> (x, z, y)
		return colorfield.Mat4{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		}
	default:
		return colorfield.Identity4()
	}
}

// SliceFace builds the 2D slice quad: the face whose fixed axis is held at
// the given normalized value while the two free axes span [0, 1]. The quad
// lies on the camera plane (depth 0), sized so the free axes fill the
// viewport: the first free axis spans sizeX on screen X, the second spans
// sizeY on screen Y.
func SliceFace(fixedAxis int, value, sizeX, sizeY float32) Mesh {
	orient := FaceOrientation(fixedAxis)

	var m Mesh
	var vs [4]Vertex
	for j := 0; j < 4; j++ {
		u := float32(j >> 1) // strip order: 00, 01, 10, 11
		v := float32(j & 1)

		free := [2]int{}
		n := 0
		for k := 0; k < 3; k++ {
			if k != fixedAxis {
				free[n] = k
				n++
			}
		}
		c := colorfield.Vec3{}
		c = c.SetComponent(fixedAxis, value)
		c = c.SetComponent(free[0], u)
		c = c.SetComponent(free[1], v)

		p := orient.TransformPoint(colorfield.V3(c.X-0.5, c.Y-0.5, c.Z-0.5))
		p = colorfield.V3(p.X*sizeX, p.Y*sizeY, 0)
		vs[j] = Vertex{Position: p, Coord: c}
	}
	m.AddQuad(vs[0], vs[1], vs[2], vs[3])
	return m
}
