package shape

import (
	"github.com/gogpu/colorfield"
)

// cubeCorner returns the color coordinate of corner i of the box spanned
// by lo and hi. Corners are enumerated by a 3-bit index: bit k selects
// hi[k] (1) versus lo[k] (0) of axis k. Every cube operation in this
// package uses this single convention.
func cubeCorner(i int, lo, hi colorfield.Vec3) colorfield.Vec3 {
	var c colorfield.Vec3
	for k := 0; k < 3; k++ {
		if i&(1<<k) != 0 {
			c = c.SetComponent(k, hi.Component(k))
		} else {
			c = c.SetComponent(k, lo.Component(k))
		}
	}
	return c
}

// faceCorners returns the four corner indices of the face with the given
// fixed axis and direction (0 = lo side, 1 = hi side), ordered by the
// value of the two remaining bits so AddQuad's strip triangulation covers
// the face.
func faceCorners(axis, dir int) [4]int {
	var out [4]int
	n := 0
	for i := 0; i < 8; i++ {
		bit := (i >> axis) & 1
		if bit == dir {
			out[n] = i
			n++
		}
	}
	return out
}

// CubeSurface builds the six faces of the box spanned by the normalized
// slice ranges lo and hi, at the given model size.
func CubeSurface(lo, hi colorfield.Vec3, size float32) Mesh {
	var m Mesh
	for axis := 0; axis < 3; axis++ {
		for dir := 0; dir < 2; dir++ {
			ids := faceCorners(axis, dir)
			var vs [4]Vertex
			for j, id := range ids {
				c := cubeCorner(id, lo, hi)
				vs[j] = Vertex{Position: CoordToPosition(c, size), Coord: c}
			}
			m.AddQuad(vs[0], vs[1], vs[2], vs[3])
		}
	}
	return m
}

// cubeEdges appends the 12 edges of the box spanned by lo and hi. Each
// edge connects corner i to i XOR (1<<axis); emitting only when the axis
// bit of i is 1 visits every edge exactly once.
func cubeEdges(m *LineMesh, lo, hi colorfield.Vec3, size float32) {
	for axis := 0; axis < 3; axis++ {
		for i := 0; i < 8; i++ {
			if (i>>axis)&1 == 0 {
				continue
			}
			a := cubeCorner(i, lo, hi)
			b := cubeCorner(i^(1<<axis), lo, hi)
			m.AddLine(CoordToPosition(a, size), CoordToPosition(b, size))
		}
	}
}

// CubeWireframe builds the 12 edges of the sliced sub-box and the 12
// edges of the full unit cube in one buffer.
func CubeWireframe(lo, hi colorfield.Vec3, size float32) LineMesh {
	var m LineMesh
	cubeEdges(&m, lo, hi, size)
	cubeEdges(&m, colorfield.V3(0, 0, 0), colorfield.V3(1, 1, 1), size)
	return m
}
