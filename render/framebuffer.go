package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// FramebufferFormat is the stable texture format of the classified
// framebuffer. The alpha channel carries the classifier byte, so the
// format must stay 8 bits per channel.
const FramebufferFormat = gputypes.TextureFormatRGBA8Unorm

// Framebuffer is the classified framebuffer: an RGBA8 color attachment
// plus a float32 depth attachment. Rows are stored bottom-origin, the
// convention of GPU readback, so y = 0 is the bottom row.
type Framebuffer struct {
	width  int
	height int
	pix    []uint8
	depth  []float32
}

// NewFramebuffer allocates a framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
		depth:  make([]float32, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Clear fills the color attachment with the given bytes and the depth
// attachment with the far value.
func (f *Framebuffer) Clear(r, g, b, a uint8, depth float32) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = r
		f.pix[i+1] = g
		f.pix[i+2] = b
		f.pix[i+3] = a
	}
	for i := range f.depth {
		f.depth[i] = depth
	}
}

// At reads the four bytes at (x, y), bottom-origin. Callers must bounds
// check; the orchestrator's ColorAt does.
func (f *Framebuffer) At(x, y int) (r, g, b, a uint8) {
	i := (y*f.width + x) * 4
	return f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]
}

// Set writes the four bytes at (x, y), bottom-origin.
func (f *Framebuffer) Set(x, y int, r, g, b, a uint8) {
	i := (y*f.width + x) * 4
	f.pix[i] = r
	f.pix[i+1] = g
	f.pix[i+2] = b
	f.pix[i+3] = a
}

// DepthAt reads the depth attachment at (x, y).
func (f *Framebuffer) DepthAt(x, y int) float32 {
	return f.depth[y*f.width+x]
}

// setDepth writes the depth attachment at (x, y).
func (f *Framebuffer) setDepth(x, y int, d float32) {
	f.depth[y*f.width+x] = d
}

// Pix exposes the raw color bytes for full-frame passes and readback.
// The layout is bottom-origin RGBA8, width*4 bytes per row.
func (f *Framebuffer) Pix() []uint8 { return f.pix }

// CopyFrom copies another framebuffer's contents. It returns
// ErrFramebufferIncomplete when the dimensions differ, since a partial
// copy would leave the target inconsistent.
func (f *Framebuffer) CopyFrom(other *Framebuffer) error {
	if f.width != other.width || f.height != other.height {
		return fmt.Errorf("%w: copy %dx%d into %dx%d",
			ErrFramebufferIncomplete, other.width, other.height, f.width, f.height)
	}
	copy(f.pix, other.pix)
	copy(f.depth, other.depth)
	return nil
}
