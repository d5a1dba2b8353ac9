package render

import (
	"testing"

	"github.com/gogpu/colorfield"
)

func rgbSpace(t *testing.T) colorfield.Space {
	t.Helper()
	sp, err := colorfield.SpaceByID("RGB")
	if err != nil {
		t.Fatal(err)
	}
	return sp
}

func hslSpace(t *testing.T) colorfield.Space {
	t.Helper()
	sp, err := colorfield.SpaceByID("HSL")
	if err != nil {
		t.Fatal(err)
	}
	return sp
}

func fullSlices() [3][2]float64 {
	return [3][2]float64{{0, 1}, {0, 1}, {0, 1}}
}

func cartesianInputs(t *testing.T) FieldInputs {
	return FieldInputs{
		Space:          rgbSpace(t),
		PolarAngular:   -1,
		PolarRadial:    -1,
		Slices:         fullSlices(),
		Metric:         colorfield.MetricRGBEuclidean,
		Threshold:      2,
		ShowUnmatched:  true,
		HighlightIndex: -1,
	}
}

func TestShadeCartesian(t *testing.T) {
	in := cartesianInputs(t)

	r, g, b, a := in.shade(colorfield.V3(0.5, 0, 1))
	if r != 128 || g != 0 || b != 255 {
		t.Errorf("rgb = (%d,%d,%d), want (128,0,255)", r, g, b)
	}
	if a != colorfield.NoMatch {
		t.Errorf("alpha = %d, want NoMatch with empty palette", a)
	}
}

func TestShadeUnmatchedCulled(t *testing.T) {
	in := cartesianInputs(t)
	in.ShowUnmatched = false

	if _, _, _, a := in.shade(colorfield.V3(0.5, 0.5, 0.5)); a != colorfield.OutsideColorSpace {
		t.Errorf("alpha = %d, want OutsideColorSpace", a)
	}
}

func TestShadeClassifies(t *testing.T) {
	in := cartesianInputs(t)
	in.Palette = colorfield.Palette{
		{Name: "red", RGB: colorfield.RGB{R: 1}},
		{Name: "blue", RGB: colorfield.RGB{B: 1}},
	}

	if _, _, _, a := in.shade(colorfield.V3(0.9, 0, 0.1)); a != 0 {
		t.Errorf("near-red alpha = %d, want 0", a)
	}
	if _, _, _, a := in.shade(colorfield.V3(0.1, 0, 0.9)); a != 1 {
		t.Errorf("near-blue alpha = %d, want 1", a)
	}
}

func TestShadeHideOther(t *testing.T) {
	in := cartesianInputs(t)
	in.Palette = colorfield.Palette{
		{Name: "red", RGB: colorfield.RGB{R: 1}},
		{Name: "blue", RGB: colorfield.RGB{B: 1}},
	}
	in.HideOther = true
	in.HighlightIndex = 0

	if _, _, _, a := in.shade(colorfield.V3(0.9, 0, 0.1)); a != 0 {
		t.Errorf("highlighted alpha = %d, want 0", a)
	}
	if _, _, _, a := in.shade(colorfield.V3(0.1, 0, 0.9)); a != colorfield.OutsideColorSpace {
		t.Errorf("other alpha = %d, want OutsideColorSpace", a)
	}
}

func TestShadeSliceMask(t *testing.T) {
	in := cartesianInputs(t)
	in.Slices = [3][2]float64{{0.25, 0.75}, {0, 1}, {0, 1}}

	if _, _, _, a := in.shade(colorfield.V3(0.5, 0.5, 0.5)); a == colorfield.OutsideColorSpace {
		t.Error("in-range fragment masked")
	}
	if _, _, _, a := in.shade(colorfield.V3(0.1, 0.5, 0.5)); a != colorfield.OutsideColorSpace {
		t.Error("out-of-range fragment not masked")
	}
}

func TestShadePolarOutsideDisk(t *testing.T) {
	in := FieldInputs{
		Space:          hslSpace(t),
		PolarAngular:   0,
		PolarRadial:    1,
		Slices:         fullSlices(),
		Metric:         colorfield.MetricRGBEuclidean,
		Threshold:      2,
		ShowUnmatched:  true,
		HighlightIndex: -1,
	}

	// Quad corner: radius sqrt(2) > 1.
	if _, _, _, a := in.shade(colorfield.V3(1, 1, 0.5)); a != colorfield.OutsideColorSpace {
		t.Errorf("corner alpha = %d, want OutsideColorSpace", a)
	}
	// Disk center: radius 0, gray at lightness 0.5.
	r, g, b, a := in.shade(colorfield.V3(0.5, 0.5, 0.5))
	if a == colorfield.OutsideColorSpace {
		t.Fatal("center masked")
	}
	if r != g || g != b {
		t.Errorf("center rgb = (%d,%d,%d), want achromatic", r, g, b)
	}
	// Rightmost point of the circumference: hue 0 at full saturation.
	r, g, b, _ = in.shade(colorfield.V3(1, 0.5, 0.5))
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("rightmost rgb = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestShadePolarAngularWrap(t *testing.T) {
	in := FieldInputs{
		Space:        hslSpace(t),
		PolarAngular: 0,
		PolarRadial:  1,
		// Angular range crossing zero: [0.9, 0.1].
		Slices:         [3][2]float64{{0.9, 0.1}, {0, 1}, {0, 1}},
		Metric:         colorfield.MetricRGBEuclidean,
		Threshold:      2,
		ShowUnmatched:  true,
		HighlightIndex: -1,
	}

	// Rightmost point: angle 0, inside the wrapped range.
	if _, _, _, a := in.shade(colorfield.V3(1, 0.5, 0.5)); a == colorfield.OutsideColorSpace {
		t.Error("angle 0 masked by wrapped range")
	}
	// Leftmost point: angle 0.5, outside.
	if _, _, _, a := in.shade(colorfield.V3(0, 0.5, 0.5)); a != colorfield.OutsideColorSpace {
		t.Error("angle 0.5 not masked by wrapped range")
	}
}
