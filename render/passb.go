package render

import (
	"github.com/gogpu/colorfield"
)

// DisplayInputs carries the per-frame uniforms of the display pass
// (Pass B), which derives the visible image from the classified
// framebuffer.
type DisplayInputs struct {
	ShowBoundaries bool
	HighlightMode  colorfield.HighlightMode
	HighlightIndex int // resolved index, or -1
	ShowUnmatched  bool
}

// renderDisplay runs Pass B in software: a full-frame pass over the
// classified framebuffer writing bottom-origin RGBA8 into dst. Culled
// pixels come out fully transparent; everything else is opaque.
func renderDisplay(dst []uint8, fb *Framebuffer, in DisplayInputs) {
	hideOther := in.HighlightMode == colorfield.HideOther && in.HighlightIndex >= 0

	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			o := (y*fb.width + x) * 4
			r, g, b, idx := fb.At(x, y)

			if culled(idx, hideOther, in) {
				dst[o], dst[o+1], dst[o+2], dst[o+3] = 0, 0, 0, 0
				continue
			}

			fr := float64(r) / 255
			fg := float64(g) / 255
			fbl := float64(b) / 255

			if in.HighlightMode == colorfield.DimOther &&
				in.HighlightIndex >= 0 && int(idx) != in.HighlightIndex {
				fr *= 0.4
				fg *= 0.4
				fbl *= 0.4
			}

			if !hideOther && boundaryAt(fb, x, y, idx, in) {
				fr, fg, fbl = boundaryColor(fr, fg, fbl)
			}

			dst[o] = colorByte(fr)
			dst[o+1] = colorByte(fg)
			dst[o+2] = colorByte(fbl)
			dst[o+3] = 255
		}
	}
}

func culled(idx uint8, hideOther bool, in DisplayInputs) bool {
	if idx == colorfield.OutsideColorSpace {
		return true
	}
	if idx == colorfield.NoMatch && !in.ShowUnmatched {
		return true
	}
	if hideOther && int(idx) != in.HighlightIndex {
		return true
	}
	return false
}

// boundaryAt reports whether (x, y) gets a boundary stroke: the left or
// bottom neighbor carries a different classification and is itself inside
// the color space.
func boundaryAt(fb *Framebuffer, x, y int, idx uint8, in DisplayInputs) bool {
	boundaryOnly := in.HighlightMode == colorfield.Boundary && in.HighlightIndex >= 0
	if !boundaryOnly && !in.ShowBoundaries {
		return false
	}

	check := func(nx, ny int) bool {
		if nx < 0 || ny < 0 {
			return false
		}
		_, _, _, nidx := fb.At(nx, ny)
		if nidx == idx || nidx == colorfield.OutsideColorSpace {
			return false
		}
		if boundaryOnly {
			return int(idx) == in.HighlightIndex || int(nidx) == in.HighlightIndex
		}
		return true
	}
	return check(x-1, y) || check(x, y-1)
}

// boundaryColor contrasts the stroke against the underlying color:
// white over dark pixels, black over light ones, with a smooth ramp
// between luminance 0.3 and 0.7.
func boundaryColor(r, g, b float64) (float64, float64, float64) {
	lum := 0.299*r + 0.587*g + 0.114*b
	t := smoothstep(0.3, 0.7, lum)
	v := 1 - t // mix(white, black, t)
	return v, v, v
}

func smoothstep(lo, hi, x float64) float64 {
	t := (x - lo) / (hi - lo)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
