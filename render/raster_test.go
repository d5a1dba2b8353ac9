package render

import (
	"testing"

	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/shape"
)

// viewMVP is the pipeline's standard camera over a unit-aspect canvas.
func viewMVP() colorfield.Mat4 {
	proj := colorfield.Perspective(cameraFOV, 1, cameraNear, cameraFar)
	return proj.Mul(colorfield.Translation(0, 0, -cameraDistance))
}

func flatShade(coord colorfield.Vec3) (uint8, uint8, uint8, uint8) {
	return colorByte(float64(coord.X)), colorByte(float64(coord.Y)), 0, 7
}

func TestRasterizeQuadCoverage(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	fb.Clear(0, 0, 0, colorfield.OutsideColorSpace, 1)

	// A camera-plane quad large enough to cover the whole canvas.
	m := shape.SliceFace(2, 0.5, 4, 4)
	rasterizeMesh(fb, viewMVP(), m, flatShade)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if _, _, _, a := fb.At(x, y); a != 7 {
				t.Fatalf("pixel (%d,%d) not covered", x, y)
			}
		}
	}
}

func TestRasterizeInterpolation(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	fb.Clear(0, 0, 0, colorfield.OutsideColorSpace, 1)

	// Quad exactly filling the viewport: coordinate X grows with screen
	// x, coordinate Y with screen y.
	size := 2 * 0.41421356 * cameraDistance // 2*tan(fov/2)*distance
	m := shape.SliceFace(2, 0.5, float32(size), float32(size))
	rasterizeMesh(fb, viewMVP(), m, flatShade)

	r0, g0, _, _ := fb.At(1, 1)
	r1, g1, _, _ := fb.At(62, 62)
	if r0 >= r1 {
		t.Errorf("coordinate X not increasing along screen x: %d -> %d", r0, r1)
	}
	if g0 >= g1 {
		t.Errorf("coordinate Y not increasing along screen y: %d -> %d", g0, g1)
	}

	// Center of the quad carries the center coordinate.
	rc, gc, _, _ := fb.At(32, 32)
	if rc < 120 || rc > 135 || gc < 120 || gc > 135 {
		t.Errorf("center = (%d, %d), want near (128, 128)", rc, gc)
	}
}

func TestRasterizeDepthTest(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.Clear(0, 0, 0, colorfield.OutsideColorSpace, 1)

	near := quadAtDepth(0.3)
	far := quadAtDepth(-0.3)

	// Far drawn after near must not overwrite it.
	shadeTag := func(tag uint8) fragmentFunc {
		return func(colorfield.Vec3) (uint8, uint8, uint8, uint8) {
			return 0, 0, 0, tag
		}
	}
	rasterizeMesh(fb, viewMVP(), near, shadeTag(1))
	rasterizeMesh(fb, viewMVP(), far, shadeTag(2))

	if _, _, _, a := fb.At(8, 8); a != 1 {
		t.Errorf("center tag = %d, want near quad 1", a)
	}
}

// quadAtDepth builds a small screen-centered quad at model z.
func quadAtDepth(z float32) shape.Mesh {
	var m shape.Mesh
	v := func(x, y float32) shape.Vertex {
		return shape.Vertex{Position: colorfield.V3(x, y, z)}
	}
	m.AddQuad(v(-0.5, -0.5), v(-0.5, 0.5), v(0.5, -0.5), v(0.5, 0.5))
	return m
}

func TestProjectBehindCamera(t *testing.T) {
	v := shape.Vertex{Position: colorfield.V3(0, 0, cameraDistance + 1)}
	if _, ok := project(viewMVP(), v, 16, 16); ok {
		t.Error("vertex behind the camera projected")
	}
}
