package wgpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/render"
	"github.com/gogpu/colorfield/shape"
)

const (
	testFOV      = 45 * math32.Pi / 180
	testDistance = 2.0
)

// sliceInputs builds the field inputs the orchestrator produces for a
// square 2D slice frame: fullscreen quad, camera at the standard
// distance, no rotation.
func sliceInputs(size int, fixedAxis int, value float32) render.FieldInputs {
	sizeY := 2 * math32.Tan(testFOV/2) * testDistance
	proj := colorfield.Perspective(testFOV, 1, 0.1, 10)
	view := colorfield.Translation(0, 0, -testDistance)

	return render.FieldInputs{
		Mesh:           shape.SliceFace(fixedAxis, value, sizeY, sizeY),
		MVP:            proj.Mul(view),
		Space:          colorfield.SpaceRGB,
		PolarAngular:   -1,
		PolarRadial:    -1,
		Slices:         [3][2]float64{{0, 1}, {0, 1}, {0, 1}},
		Metric:         colorfield.MetricRGBEuclidean,
		Threshold:      0.3,
		ShowUnmatched:  true,
		HighlightIndex: -1,
	}
}

func TestPlanSliceFrameAccepts(t *testing.T) {
	for fixedAxis := 0; fixedAxis < 3; fixedAxis++ {
		in := sliceInputs(64, fixedAxis, 0.25)
		plan, ok := planSliceFrame(64, 64, in)
		if !ok {
			t.Fatalf("fixed axis %d: fullscreen slice not planned", fixedAxis)
		}
		if plan.params.fixedAxis != uint32(fixedAxis) {
			t.Errorf("fixed axis %d: planned axis %d", fixedAxis, plan.params.fixedAxis)
		}
		if plan.params.fixedValue != 0.25 {
			t.Errorf("fixed axis %d: planned value %v", fixedAxis, plan.params.fixedValue)
		}
		if plan.params.width != 64 || plan.params.height != 64 {
			t.Errorf("fixed axis %d: planned size %dx%d", fixedAxis, plan.params.width, plan.params.height)
		}
		if plan.depth <= 0 || plan.depth >= 1 {
			t.Errorf("fixed axis %d: depth %v outside (0, 1)", fixedAxis, plan.depth)
		}
	}
}

func TestPlanSliceFrameRejectsVolumeMesh(t *testing.T) {
	in := sliceInputs(64, 2, 0.5)
	in.Mesh = shape.CubeSurface(colorfield.V3(0, 0, 0), colorfield.V3(1, 1, 1), 1.1)
	if _, ok := planSliceFrame(64, 64, in); ok {
		t.Fatal("cube mesh planned as a fullscreen slice")
	}
}

func TestPlanSliceFrameRejectsRotatedQuad(t *testing.T) {
	in := sliceInputs(64, 2, 0.5)
	in.MVP = in.MVP.Mul(colorfield.RotationZ(0.3))
	if _, ok := planSliceFrame(64, 64, in); ok {
		t.Fatal("rotated quad planned as a fullscreen slice")
	}
}

func TestPlanSliceFrameRejectsUnknownSpace(t *testing.T) {
	in := sliceInputs(64, 2, 0.5)
	in.Space = colorfield.Space{ID: "XYZ"}
	if _, ok := planSliceFrame(64, 64, in); ok {
		t.Fatal("unknown color space planned for GPU")
	}
}

func TestPlanSliceFrameRejectsUnknownMetric(t *testing.T) {
	in := sliceInputs(64, 2, 0.5)
	in.Metric = colorfield.Metric{ID: "manhattan"}
	if _, ok := planSliceFrame(64, 64, in); ok {
		t.Fatal("unknown metric planned for GPU")
	}
}

func TestFrameParamsBytesLayout(t *testing.T) {
	p := frameParams{
		width: 640, height: 480,
		fixedAxis:  2,
		spaceID:    1,
		fixedValue: 0.5,
		threshold:  0.3,
		metricID:   1,
		entryIndex: 7,
		polarAngular: 0, polarRadial: 1,
		showUnmatched:  1,
		hideOther:      0,
		highlightIndex: -1,
		paletteCount:   3,
		sliceLo:        [3]float32{0, 0.1, 0.2},
		sliceHi:        [3]float32{1, 0.9, 0.8},
	}
	buf := p.bytes()
	if len(buf) != frameParamsSize {
		t.Fatalf("len = %d, want %d", len(buf), frameParamsSize)
	}
	le := binary.LittleEndian
	if got := le.Uint32(buf[0:]); got != 640 {
		t.Errorf("width = %d", got)
	}
	if got := math.Float32frombits(le.Uint32(buf[16:])); got != 0.5 {
		t.Errorf("fixed value = %v", got)
	}
	if got := le.Uint32(buf[28:]); got != 7 {
		t.Errorf("entry index = %d", got)
	}
	if got := int32(le.Uint32(buf[48:])); got != -1 {
		t.Errorf("highlight index = %d", got)
	}
	if got := math.Float32frombits(le.Uint32(buf[84:])); got != 0.9 {
		t.Errorf("slice hi y = %v", got)
	}
}

func TestPackPalette(t *testing.T) {
	empty := packPalette(nil)
	if len(empty) != 16 {
		t.Fatalf("empty palette packs %d bytes, want 16 placeholder bytes", len(empty))
	}

	pal := colorfield.Palette{
		{Name: "red", RGB: colorfield.RGB{R: 1}},
		{Name: "teal", RGB: colorfield.RGB{G: 0.5, B: 0.5}},
	}
	out := packPalette(pal)
	if len(out) != 32 {
		t.Fatalf("packed %d bytes, want 32", len(out))
	}
	le := binary.LittleEndian
	if got := math.Float32frombits(le.Uint32(out[0:])); got != 1 {
		t.Errorf("entry 0 red = %v", got)
	}
	if got := math.Float32frombits(le.Uint32(out[16+4:])); got != 0.5 {
		t.Errorf("entry 1 green = %v", got)
	}
}
