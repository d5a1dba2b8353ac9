package shape

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/gogpu/colorfield"
)

// crossHit is one edge/plane intersection, carrying both the unrotated
// model position fed to the vertex stage and the rotated XY used for the
// angular sort.
type crossHit struct {
	pos   colorfield.Vec3
	coord colorfield.Vec3
	rx    float32
	ry    float32
}

// CrossSections slices the unit cube by camera-aligned planes and returns
// the interior polygons as a triangle mesh. The rotation is the current
// model rotation; planes are perpendicular to the rotated Z axis so every
// polygon faces the camera. Vertices are emitted in unrotated model space
// because the vertex stage applies the rotation itself.
func CrossSections(rotation colorfield.Mat4, size float32) Mesh {
	// Cube corners and their rotated images.
	var pos, rot [8]colorfield.Vec3
	var coord [8]colorfield.Vec3
	for i := 0; i < 8; i++ {
		c := cubeCorner(i, colorfield.V3(0, 0, 0), colorfield.V3(1, 1, 1))
		coord[i] = c
		pos[i] = CoordToPosition(c, size)
		rot[i] = rotation.TransformPoint(pos[i])
	}

	zMin, zMax := rot[0].Z, rot[0].Z
	for i := 1; i < 8; i++ {
		zMin = math32.Min(zMin, rot[i].Z)
		zMax = math32.Max(zMax, rot[i].Z)
	}

	var m Mesh
	step := size * CrossSectionScale
	for z := zMin + step/2; z < zMax; z += step {
		hits := intersectCube(pos, rot, coord, z)
		if len(hits) < 3 {
			continue
		}
		triangulateFan(&m, hits)
	}
	return m
}

// intersectCube intersects the 12 cube edges with the rotated plane Z = z.
func intersectCube(pos, rot [8]colorfield.Vec3, coord [8]colorfield.Vec3, z float32) []crossHit {
	hits := make([]crossHit, 0, 6)
	for _, e := range cubeEdgeIndices() {
		a, b := e[0], e[1]
		za, zb := rot[a].Z, rot[b].Z
		if (za <= z) == (zb <= z) {
			continue
		}
		t := (z - za) / (zb - za)
		rp := rot[a].Lerp(rot[b], t)
		hits = append(hits, crossHit{
			pos:   pos[a].Lerp(pos[b], t),
			coord: coord[a].Lerp(coord[b], t),
			rx:    rp.X,
			ry:    rp.Y,
		})
	}
	return hits
}

// cubeEdgeIndices enumerates the 12 edges of the corner numbering used by
// cubeCorner: corner i connects to i with one bit flipped, and each edge
// is emitted once from its high endpoint.
func cubeEdgeIndices() [][2]int {
	edges := make([][2]int, 0, 12)
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				edges = append(edges, [2]int{i &^ (1 << axis), i})
			}
		}
	}
	return edges
}

// triangulateFan sorts the intersection polygon by angle around its
// rotated-XY centroid and appends fan triangles.
func triangulateFan(m *Mesh, hits []crossHit) {
	var cx, cy float32
	for _, h := range hits {
		cx += h.rx
		cy += h.ry
	}
	cx /= float32(len(hits))
	cy /= float32(len(hits))

	sort.Slice(hits, func(i, j int) bool {
		ai := math32.Atan2(hits[i].ry-cy, hits[i].rx-cx)
		aj := math32.Atan2(hits[j].ry-cy, hits[j].rx-cx)
		return ai < aj
	})

	base := uint16(len(m.Vertices))
	for _, h := range hits {
		m.Vertices = append(m.Vertices, Vertex{Position: h.pos, Coord: h.coord})
	}
	for i := 0; i+2 < len(hits); i++ {
		m.Indices = append(m.Indices, base, base+uint16(i)+1, base+uint16(i)+2)
	}
}
