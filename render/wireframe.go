package render

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/shape"
)

// Wireframe overlay constants.
const (
	// wireAlpha is the blend factor of the white wire color.
	wireAlpha = 0.1

	// wireDepthEpsilon is the tolerance when testing a wire fragment
	// against the field pass's depth attachment. Fragments further
	// behind a surface than this are discarded.
	wireDepthEpsilon = 0.0001
)

// renderWireframe draws the line mesh over the display buffer. Lines
// blend white at wireAlpha and are occluded by the depth attachment the
// field pass wrote; depth is sampled, never written.
func renderWireframe(dst []uint8, fb *Framebuffer, mvp colorfield.Mat4, m shape.LineMesh) {
	for i := 0; i+1 < len(m.Indices); i += 2 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		drawLine(dst, fb, mvp, a, b)
	}
}

func drawLine(dst []uint8, fb *Framebuffer, mvp colorfield.Mat4, a, b colorfield.Vec3) {
	pa, oka := project(mvp, shape.Vertex{Position: a}, fb.width, fb.height)
	pb, okb := project(mvp, shape.Vertex{Position: b}, fb.width, fb.height)
	if !oka || !okb {
		return
	}

	dx := pb.sx - pa.sx
	dy := pb.sy - pa.sy
	steps := int(math32.Ceil(math32.Max(math32.Abs(dx), math32.Abs(dy))))
	if steps == 0 {
		steps = 1
	}

	for s := 0; s <= steps; s++ {
		t := float32(s) / float32(steps)
		x := int(pa.sx + dx*t)
		y := int(pa.sy + dy*t)
		if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
			continue
		}
		z := pa.z + (pb.z-pa.z)*t
		if z > fb.DepthAt(x, y)+wireDepthEpsilon {
			continue
		}
		blendWire(dst, fb.width, x, y)
	}
}

// blendWire applies (1, 1, 1, wireAlpha) over dst with standard
// source-over blending. Transparent background pixels gain the wire's
// own alpha so wires stay visible over culled regions.
func blendWire(dst []uint8, width, x, y int) {
	o := (y*width + x) * 4
	da := float64(dst[o+3]) / 255
	for k := 0; k < 3; k++ {
		c := float64(dst[o+k]) / 255
		dst[o+k] = colorByte(wireAlpha + c*(1-wireAlpha))
	}
	dst[o+3] = colorByte(wireAlpha + da*(1-wireAlpha))
}
