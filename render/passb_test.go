package render

import (
	"testing"

	"github.com/gogpu/colorfield"
)

// splitFB builds a 4x4 framebuffer whose left half classifies as 0 and
// right half as 1.
func splitFB() *Framebuffer {
	fb := NewFramebuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				fb.Set(x, y, 200, 0, 0, 0)
			} else {
				fb.Set(x, y, 0, 0, 200, 1)
			}
		}
	}
	return fb
}

func displayOf(fb *Framebuffer, in DisplayInputs) []uint8 {
	dst := make([]uint8, fb.Width()*fb.Height()*4)
	renderDisplay(dst, fb, in)
	return dst
}

func pixel(dst []uint8, width, x, y int) (r, g, b, a uint8) {
	o := (y*width + x) * 4
	return dst[o], dst[o+1], dst[o+2], dst[o+3]
}

func TestDisplayOpaquePassThrough(t *testing.T) {
	dst := displayOf(splitFB(), DisplayInputs{HighlightIndex: -1, ShowUnmatched: true})

	r, g, b, a := pixel(dst, 4, 0, 0)
	if r != 200 || g != 0 || b != 0 || a != 255 {
		t.Errorf("left pixel = (%d,%d,%d,%d), want (200,0,0,255)", r, g, b, a)
	}
}

func TestDisplayOutsideTransparent(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(9, 9, 9, colorfield.OutsideColorSpace, 1)
	dst := displayOf(fb, DisplayInputs{HighlightIndex: -1, ShowUnmatched: true})

	for i := 0; i < len(dst); i++ {
		if dst[i] != 0 {
			t.Fatalf("byte %d = %d, want fully transparent frame", i, dst[i])
		}
	}
}

func TestDisplayNoMatchCulled(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(100, 100, 100, colorfield.NoMatch, 1)

	dst := displayOf(fb, DisplayInputs{HighlightIndex: -1, ShowUnmatched: false})
	if _, _, _, a := pixel(dst, 2, 0, 0); a != 0 {
		t.Error("unmatched pixel visible with ShowUnmatched off")
	}

	dst = displayOf(fb, DisplayInputs{HighlightIndex: -1, ShowUnmatched: true})
	if _, _, _, a := pixel(dst, 2, 0, 0); a != 255 {
		t.Error("unmatched pixel culled with ShowUnmatched on")
	}
}

func TestDisplayBoundary(t *testing.T) {
	in := DisplayInputs{ShowBoundaries: true, HighlightIndex: -1, ShowUnmatched: true}
	dst := displayOf(splitFB(), in)

	// The first column of the right region has a differing left
	// neighbor: boundary stroke, luminance-contrasted. The underlying
	// blue is dark, so the stroke is near white.
	r, g, b, _ := pixel(dst, 4, 2, 1)
	if r != g || g != b || r < 200 {
		t.Errorf("boundary pixel = (%d,%d,%d), want near-white gray", r, g, b)
	}

	// Away from the boundary the color passes through.
	if r, _, _, _ := pixel(dst, 4, 0, 1); r != 200 {
		t.Errorf("interior pixel = %d, want 200", r)
	}

	// Without ShowBoundaries no stroke appears.
	in.ShowBoundaries = false
	dst = displayOf(splitFB(), in)
	if _, _, b, _ := pixel(dst, 4, 2, 1); b != 200 {
		t.Error("boundary drawn with ShowBoundaries off")
	}
}

func TestDisplayBoundaryIgnoresOutsideNeighbor(t *testing.T) {
	fb := NewFramebuffer(3, 1)
	fb.Set(0, 0, 0, 0, 0, colorfield.OutsideColorSpace)
	fb.Set(1, 0, 200, 0, 0, 0)
	fb.Set(2, 0, 200, 0, 0, 0)

	dst := displayOf(fb, DisplayInputs{ShowBoundaries: true, HighlightIndex: -1, ShowUnmatched: true})
	if r, _, _, _ := pixel(dst, 3, 1, 0); r != 200 {
		t.Error("boundary drawn against outside-space neighbor")
	}
}

func TestDisplayDimOther(t *testing.T) {
	in := DisplayInputs{HighlightMode: colorfield.DimOther, HighlightIndex: 0, ShowUnmatched: true}
	dst := displayOf(splitFB(), in)

	if r, _, _, _ := pixel(dst, 4, 0, 0); r != 200 {
		t.Errorf("highlighted pixel dimmed: r = %d", r)
	}
	if _, _, b, _ := pixel(dst, 4, 3, 0); b != 80 {
		t.Errorf("other pixel b = %d, want 200 * 0.4 = 80", b)
	}
}

func TestDisplayHideOther(t *testing.T) {
	in := DisplayInputs{
		ShowBoundaries: true, // boundaries disabled under HideOther
		HighlightMode:  colorfield.HideOther,
		HighlightIndex: 0,
		ShowUnmatched:  true,
	}
	dst := displayOf(splitFB(), in)

	if _, _, _, a := pixel(dst, 4, 0, 0); a != 255 {
		t.Error("highlighted pixel hidden")
	}
	if _, _, _, a := pixel(dst, 4, 3, 0); a != 0 {
		t.Error("other pixel visible under HideOther")
	}
	// No boundary stroke on the highlighted side either.
	if r, _, _, _ := pixel(dst, 4, 1, 0); r != 200 {
		t.Error("boundary drawn under HideOther")
	}
}

func TestDisplayBoundaryMode(t *testing.T) {
	fb := NewFramebuffer(6, 1)
	for x := 0; x < 6; x++ {
		idx := uint8(x / 2) // regions 0, 1, 2
		fb.Set(x, 0, 100, 100, 100, idx)
	}

	in := DisplayInputs{
		HighlightMode:  colorfield.Boundary,
		HighlightIndex: 1,
		ShowUnmatched:  true,
	}
	dst := displayOf(fb, in)

	// Stroke only where region 1 borders another region: x=2 (0|1) and
	// x=4 (1|2). The 2|... boundary at x=4 touches the highlight via its
	// left neighbor.
	for _, x := range []int{2, 4} {
		if r, g, b, _ := pixel(dst, 6, x, 0); r != g || g != b || r == 100 {
			continue
		} else {
			t.Errorf("x=%d: no stroke at highlight border", x)
		}
	}
	// No stroke inside regions or at non-highlight borders.
	for _, x := range []int{0, 1, 3, 5} {
		if r, _, _, _ := pixel(dst, 6, x, 0); r != 100 {
			t.Errorf("x=%d: unexpected stroke", x)
		}
	}
}
