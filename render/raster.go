package render

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/shape"
)

// fragmentFunc shades one fragment from its interpolated color coordinate.
// It returns the four framebuffer bytes.
type fragmentFunc func(coord colorfield.Vec3) (r, g, b, a uint8)

// projected is a vertex after the vertex stage: clip-space position plus
// the color coordinate divided by w for perspective-correct interpolation.
type projected struct {
	sx, sy float32 // screen position, bottom-origin
	z      float32 // NDC depth in [0, 1]
	invW   float32
	coordW colorfield.Vec3 // coord * invW
}

// project runs the vertex stage for one vertex. ok is false when the
// vertex lies behind the near plane; such triangles are dropped rather
// than clipped, which the pipeline's camera setup never produces.
func project(mvp colorfield.Mat4, v shape.Vertex, width, height int) (projected, bool) {
	clip := mvp.MulVec4(colorfield.V4(v.Position.X, v.Position.Y, v.Position.Z, 1))
	if clip[3] <= 0 {
		return projected{}, false
	}
	invW := 1 / clip[3]
	ndcX := clip[0] * invW
	ndcY := clip[1] * invW
	return projected{
		sx:     (ndcX + 1) / 2 * float32(width),
		sy:     (ndcY + 1) / 2 * float32(height),
		z:      clip[2] * invW,
		invW:   invW,
		coordW: v.Coord.Scale(invW),
	}, true
}

// rasterizeMesh draws the mesh's triangles into the framebuffer with a
// depth test (less) and depth writes. Fragment color coordinates are
// interpolated perspective-correct.
func rasterizeMesh(fb *Framebuffer, mvp colorfield.Mat4, m shape.Mesh, shade fragmentFunc) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		p0, ok0 := project(mvp, m.Vertices[m.Indices[i]], fb.width, fb.height)
		p1, ok1 := project(mvp, m.Vertices[m.Indices[i+1]], fb.width, fb.height)
		p2, ok2 := project(mvp, m.Vertices[m.Indices[i+2]], fb.width, fb.height)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		rasterizeTriangle(fb, p0, p1, p2, shade)
	}
}

// edge is the signed area of the screen-space triangle (a, b, p), the
// standard half-plane rasterization function.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func rasterizeTriangle(fb *Framebuffer, p0, p1, p2 projected, shade fragmentFunc) {
	area := edge(p0.sx, p0.sy, p1.sx, p1.sy, p2.sx, p2.sy)
	if area == 0 {
		return
	}
	// Both windings shade: the cube's inward-facing cross-sections and
	// the cylinder's inner band must not be culled.
	inv := 1 / area

	minX := int(math32.Floor(min3(p0.sx, p1.sx, p2.sx)))
	maxX := int(math32.Ceil(max3(p0.sx, p1.sx, p2.sx)))
	minY := int(math32.Floor(min3(p0.sy, p1.sy, p2.sy)))
	maxY := int(math32.Ceil(max3(p0.sy, p1.sy, p2.sy)))
	minX = clampInt(minX, 0, fb.width-1)
	maxX = clampInt(maxX, 0, fb.width-1)
	minY = clampInt(minY, 0, fb.height-1)
	maxY = clampInt(maxY, 0, fb.height-1)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w0 := edge(p1.sx, p1.sy, p2.sx, p2.sy, px, py) * inv
			w1 := edge(p2.sx, p2.sy, p0.sx, p0.sy, px, py) * inv
			w2 := edge(p0.sx, p0.sy, p1.sx, p1.sy, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*p0.z + w1*p1.z + w2*p2.z
			if z < 0 || z > 1 || z >= fb.DepthAt(x, y) {
				continue
			}

			invW := w0*p0.invW + w1*p1.invW + w2*p2.invW
			coord := p0.coordW.Scale(w0).
				Add(p1.coordW.Scale(w1)).
				Add(p2.coordW.Scale(w2)).
				Scale(1 / invW)

			r, g, b, a := shade(coord)
			fb.Set(x, y, r, g, b, a)
			fb.setDepth(x, y, z)
		}
	}
}

func min3(a, b, c float32) float32 { return math32.Min(a, math32.Min(b, c)) }
func max3(a, b, c float32) float32 { return math32.Max(a, math32.Max(b, c)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
