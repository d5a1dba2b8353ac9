package shape

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/colorfield"
)

// CylinderAxes names the roles the three color-space axes take when the
// space is displayed as a cylinder: Angular wraps around the cylinder,
// Radial spans its diameter, Height runs along its axis. Values are axis
// indices into the color space.
type CylinderAxes struct {
	Angular, Radial, Height int
}

// CylinderRanges holds the normalized slice ranges in cylinder roles:
// Theta over [0, 1] (wrapping), R over [0, 1] (diameter), H over [0, 1].
type CylinderRanges struct {
	ThetaLo, ThetaHi float32
	RLo, RHi         float32
	HLo, HHi         float32
}

// full reports whether the angular range covers the whole circle.
func (r CylinderRanges) full() bool {
	return r.ThetaHi-r.ThetaLo >= 1
}

// diskCoord places a cylinder parameter point into the color-coordinate
// unit square of the two polar axes. The fragment-shader polar remap is
// its exact inverse: angle = atan2(y, x) over the centered components
// recovers theta, the vector length recovers r.
func diskCoord(theta, r float32) (x, y float32) {
	a := 2 * math.Pi * theta
	return math32.Cos(a)*r/2 + 0.5, math32.Sin(a)*r/2 + 0.5
}

// cylCoord builds the full color coordinate for a cylinder parameter
// point under the given axis roles.
func cylCoord(axes CylinderAxes, theta, r, h float32) colorfield.Vec3 {
	x, y := diskCoord(theta, r)
	var c colorfield.Vec3
	c = c.SetComponent(axes.Angular, x)
	c = c.SetComponent(axes.Radial, y)
	c = c.SetComponent(axes.Height, h)
	return c
}

// cylVertex builds a cylinder vertex at the given parameters and model size.
func cylVertex(axes CylinderAxes, theta, r, h, size float32) Vertex {
	c := cylCoord(axes, theta, r, h)
	return Vertex{Position: CoordToPosition(c, size), Coord: c}
}

// segmentCount returns how many segments the angular range spans, keeping
// the full-circle density of CylinderRadialSegments.
func segmentCount(lo, hi float32) int {
	n := int(math32.Ceil((hi - lo) * CylinderRadialSegments))
	if n < 1 {
		n = 1
	}
	return n
}

// RadialAxisOffset returns how far the radial axis must shift inward so
// the outer circle of the segmented cylinder stays visible inside the
// axis-aligned viewport. The sagitta of half a segment arc is the gap
// between the polygon edge and the true circle.
func RadialAxisOffset(diameter float64) float64 {
	radius := diameter / 2
	return radius * (1 - math.Cos(math.Pi/CylinderRadialSegments))
}

// CylinderSurface builds the sliced cylinder wedge: top and bottom annular
// faces, the outer band, an inner band when the radial range starts above
// zero, and two flat wedge faces when the angular range is less than the
// full circle.
func CylinderSurface(axes CylinderAxes, rng CylinderRanges, size float32) Mesh {
	var m Mesh
	n := segmentCount(rng.ThetaLo, rng.ThetaHi)
	step := (rng.ThetaHi - rng.ThetaLo) / float32(n)

	for i := 0; i < n; i++ {
		t0 := rng.ThetaLo + float32(i)*step
		t1 := t0 + step

		// Top and bottom annular faces reuse the cube face
		// triangulation: one quad per segment.
		for _, h := range []float32{rng.HLo, rng.HHi} {
			m.AddQuad(
				cylVertex(axes, t0, rng.RLo, h, size),
				cylVertex(axes, t0, rng.RHi, h, size),
				cylVertex(axes, t1, rng.RLo, h, size),
				cylVertex(axes, t1, rng.RHi, h, size),
			)
		}

		// Outer band.
		m.AddQuad(
			cylVertex(axes, t0, rng.RHi, rng.HLo, size),
			cylVertex(axes, t0, rng.RHi, rng.HHi, size),
			cylVertex(axes, t1, rng.RHi, rng.HLo, size),
			cylVertex(axes, t1, rng.RHi, rng.HHi, size),
		)

		// Inner band, only when a hole exists.
		if rng.RLo > 0 {
			m.AddQuad(
				cylVertex(axes, t0, rng.RLo, rng.HLo, size),
				cylVertex(axes, t0, rng.RLo, rng.HHi, size),
				cylVertex(axes, t1, rng.RLo, rng.HLo, size),
				cylVertex(axes, t1, rng.RLo, rng.HHi, size),
			)
		}
	}

	// Flat wedge faces at the two angular endpoints.
	if !rng.full() {
		for _, t := range []float32{rng.ThetaLo, rng.ThetaHi} {
			m.AddQuad(
				cylVertex(axes, t, rng.RLo, rng.HLo, size),
				cylVertex(axes, t, rng.RLo, rng.HHi, size),
				cylVertex(axes, t, rng.RHi, rng.HLo, size),
				cylVertex(axes, t, rng.RHi, rng.HHi, size),
			)
		}
	}
	return m
}

// circlePoints returns the polyline points of a circle arc at the given
// radius and height, one point per segment boundary.
func circlePoints(axes CylinderAxes, rng CylinderRanges, r, h, size float32) []colorfield.Vec3 {
	n := segmentCount(rng.ThetaLo, rng.ThetaHi)
	step := (rng.ThetaHi - rng.ThetaLo) / float32(n)
	pts := make([]colorfield.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		t := rng.ThetaLo + float32(i)*step
		pts = append(pts, CoordToPosition(cylCoord(axes, t, r, h), size))
	}
	return pts
}

// CylinderWireframe builds the wireframe for the sliced wedge and the full
// cylinder: top and bottom circle polylines for both, wedge-face outlines
// when the angular range is partial, and four generator lines spaced at
// 90 degrees along the full cylinder body.
func CylinderWireframe(axes CylinderAxes, rng CylinderRanges, size float32) LineMesh {
	var m LineMesh

	fullRng := CylinderRanges{ThetaLo: 0, ThetaHi: 1, RLo: 0, RHi: 1, HLo: 0, HHi: 1}
	for _, h := range []float32{rng.HLo, rng.HHi} {
		m.AddPolyline(circlePoints(axes, rng, rng.RHi, h, size))
	}
	for _, h := range []float32{0, 1} {
		m.AddPolyline(circlePoints(axes, fullRng, 1, h, size))
	}

	if !rng.full() {
		for _, t := range []float32{rng.ThetaLo, rng.ThetaHi} {
			corners := []colorfield.Vec3{
				CoordToPosition(cylCoord(axes, t, rng.RLo, rng.HLo), size),
				CoordToPosition(cylCoord(axes, t, rng.RHi, rng.HLo), size),
				CoordToPosition(cylCoord(axes, t, rng.RHi, rng.HHi), size),
				CoordToPosition(cylCoord(axes, t, rng.RLo, rng.HHi), size),
			}
			m.AddPolyline(append(corners, corners[0]))
		}
	}

	// Generator lines at 90 degree spacing along the full body.
	for i := 0; i < 4; i++ {
		t := float32(i) / 4
		m.AddLine(
			CoordToPosition(cylCoord(axes, t, 1, 0), size),
			CoordToPosition(cylCoord(axes, t, 1, 1), size),
		)
	}
	return m
}
