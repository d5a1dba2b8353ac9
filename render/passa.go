package render

import (
	"math"

	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/shape"
)

// FieldInputs carries everything the field pass (Pass A) consumes: the
// geometry, the camera, and the per-frame uniforms. A registered
// accelerator receives the same inputs as the software path.
type FieldInputs struct {
	Mesh shape.Mesh
	MVP  colorfield.Mat4

	Space colorfield.Space

	// PolarAngular and PolarRadial are the axis indices taking the
	// angle and radius roles, or -1, -1 for Cartesian display.
	PolarAngular int
	PolarRadial  int

	// Slices are the normalized per-axis [lo, hi] ranges. Fragments
	// outside them classify as outside the color space, which carves
	// the interior cross-sections down to the selected sub-box.
	Slices [3][2]float64

	Palette   colorfield.Palette
	Metric    colorfield.Metric
	Threshold float64

	ShowUnmatched bool
	HideOther     bool

	// HighlightIndex is the resolved highlight palette index, or -1.
	HighlightIndex int
}

// renderField runs Pass A in software: clear to the outside sentinel,
// then rasterize the mesh with the classifying fragment shader.
func renderField(fb *Framebuffer, in FieldInputs) {
	fb.Clear(0, 0, 0, colorfield.OutsideColorSpace, 1)
	rasterizeMesh(fb, in.MVP, in.Mesh, in.shade)
}

// outside is the sentinel fragment for culled and out-of-gamut pixels.
// Depth is still written by the caller, so culling happens through the
// alpha byte rather than the depth test.
func outside() (r, g, b, a uint8) {
	return 0, 0, 0, colorfield.OutsideColorSpace
}

// shade is the Pass-A fragment shader: polar remap, slice masking, color
// computation, classification and the culling rules, in that order.
func (in *FieldInputs) shade(coord colorfield.Vec3) (r, g, b, a uint8) {
	c := [3]float64{float64(coord.X), float64(coord.Y), float64(coord.Z)}

	if in.PolarAngular >= 0 {
		cx := c[in.PolarAngular]*2 - 1
		cy := c[in.PolarRadial]*2 - 1
		radius := math.Sqrt(cx*cx + cy*cy)
		if radius > 1 {
			return outside()
		}
		angle := math.Atan2(cy, cx) / (2 * math.Pi)
		if angle < 0 {
			angle++
		}
		c[in.PolarAngular] = angle
		c[in.PolarRadial] = radius
	}

	for i := 0; i < 3; i++ {
		lo, hi := in.Slices[i][0], in.Slices[i][1]
		if i == in.PolarAngular {
			// The angle wraps: a range like [0.9, 0.2] crosses zero.
			if !angleInRange(c[i], lo, hi) {
				return outside()
			}
			continue
		}
		if c[i] < lo-sliceEpsilon || c[i] > hi+sliceEpsilon {
			return outside()
		}
	}

	rgb := in.Space.ColorAt(c)
	idx := colorfield.Classify(rgb, in.Palette, in.Metric, in.Threshold)

	if idx == colorfield.NoMatch && !in.ShowUnmatched {
		return outside()
	}
	if in.HideOther && in.HighlightIndex >= 0 && int(idx) != in.HighlightIndex {
		return outside()
	}
	return colorByte(rgb.R), colorByte(rgb.G), colorByte(rgb.B), idx
}

// sliceEpsilon absorbs interpolation error at sub-box boundaries, where a
// surface fragment sits exactly on its own slice limit.
const sliceEpsilon = 1e-4

func angleInRange(angle, lo, hi float64) bool {
	if lo <= hi {
		return angle >= lo-sliceEpsilon && angle <= hi+sliceEpsilon
	}
	return angle >= lo-sliceEpsilon || angle <= hi+sliceEpsilon
}

func colorByte(v float64) uint8 {
	b := math.Round(v * 255)
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return uint8(b)
}
