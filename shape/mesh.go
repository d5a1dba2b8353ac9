// Package shape generates the vertex and index buffers consumed by the
// field renderer: 2D slice faces, sliced cubes, sliced cylinder wedges,
// their wireframes, and camera-aligned cross-sections of the cube
// interior.
//
// All geometry lives in a model space centered on the origin; the render
// pipeline applies rotation and projection. Color coordinates stay
// normalized to [0, 1] per axis.
package shape

import (
	"github.com/gogpu/colorfield"
)

// Geometry constants.
const (
	// CubeSize3D is the edge length of the 3D view cube in model units.
	CubeSize3D = 1.1

	// CylinderRadialSegments is the number of segments a full cylinder
	// circle is divided into.
	CylinderRadialSegments = 16

	// CrossSectionScale is the spacing of interior cross-section planes
	// as a fraction of the cube size.
	CrossSectionScale = 1.0 / 64.0
)

// Vertex pairs a model-space position with the color-space coordinates it
// represents.
type Vertex struct {
	Position colorfield.Vec3
	Coord    colorfield.Vec3
}

// Mesh is a triangle list: vertices plus uint16 indices in groups of three.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// LineMesh is a line list for wireframe drawing: positions plus uint16
// indices in pairs. Wireframe geometry carries no color coordinates.
type LineMesh struct {
	Vertices []colorfield.Vec3
	Indices  []uint16
}

// AddQuad appends the four vertices of a quad (in strip order: 00, 01, 10,
// 11) and the two triangles covering it. The index pattern is the one all
// face generators share: (b, b+1, b+2, b+1, b+2, b+3).
func (m *Mesh) AddQuad(v0, v1, v2, v3 Vertex) {
	b := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, v0, v1, v2, v3)
	m.Indices = append(m.Indices, b, b+1, b+2, b+1, b+2, b+3)
}

// AddTriangle appends one triangle over existing vertices.
func (m *Mesh) AddTriangle(a, b, c uint16) {
	m.Indices = append(m.Indices, a, b, c)
}

// Append concatenates another mesh, offsetting its indices.
func (m *Mesh) Append(other Mesh) {
	b := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, b+i)
	}
}

// AddLine appends one line segment to a wireframe.
func (m *LineMesh) AddLine(a, b colorfield.Vec3) {
	i := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, a, b)
	m.Indices = append(m.Indices, i, i+1)
}

// AddPolyline appends the open polyline through the given points.
func (m *LineMesh) AddPolyline(pts []colorfield.Vec3) {
	for i := 0; i+1 < len(pts); i++ {
		m.AddLine(pts[i], pts[i+1])
	}
}

// CoordToPosition centers a [0, 1] color coordinate on the origin at the
// requested model size: p = (c - 0.5) * size.
func CoordToPosition(c colorfield.Vec3, size float32) colorfield.Vec3 {
	return colorfield.V3((c.X-0.5)*size, (c.Y-0.5)*size, (c.Z-0.5)*size)
}
