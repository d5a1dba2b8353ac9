package colorfield

import "fmt"

// MaxPaletteColors is the maximum number of palette entries. The palette
// index is carried in the framebuffer alpha byte, and 254/255 are reserved
// sentinels, so the hard ceiling is 254; 200 leaves headroom and matches
// the fixed-size palette uniform in the shaders.
const MaxPaletteColors = 200

// Classifier sentinels carried in the framebuffer alpha byte.
const (
	// NoMatch means no palette entry lies within the distance threshold.
	NoMatch = 254

	// OutsideColorSpace means the fragment does not lie within the
	// coordinate space being visualized; its RGB bytes are undefined.
	OutsideColorSpace = 255
)

// NamedColor is a palette entry: a display name and its sRGB color.
type NamedColor struct {
	Name string
	RGB  RGB
}

// Palette is an ordered sequence of named colors. The position in the
// sequence is the palette index exposed to the shaders and to pixel
// readback.
type Palette []NamedColor

// NewPalette validates the size limit and returns the palette.
func NewPalette(colors ...NamedColor) (Palette, error) {
	if len(colors) > MaxPaletteColors {
		return nil, fmt.Errorf("%w: %d entries, max %d", ErrPaletteTooLarge, len(colors), MaxPaletteColors)
	}
	return Palette(colors), nil
}

// IndexOf returns the index of the first entry with exactly the given RGB
// color, or -1 when the palette has no such entry.
func (p Palette) IndexOf(c RGB) int {
	for i, nc := range p {
		if nc.RGB == c {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the palette. The orchestrator snapshots the
// palette per render so pixel-oracle results stay stable until the next
// render begins.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}
