package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/render"
)

// frameParams mirrors the FrameParams uniform block in
// field_compute.wgsl, including its std140 padding.
type frameParams struct {
	width, height  uint32
	fixedAxis      uint32
	spaceID        uint32
	fixedValue     float32
	threshold      float32
	metricID       uint32
	entryIndex     uint32
	polarAngular   int32
	polarRadial    int32
	showUnmatched  uint32
	hideOther      uint32
	highlightIndex int32
	paletteCount   uint32
	sliceLo        [3]float32
	sliceHi        [3]float32
}

const frameParamsSize = 96

func (p *frameParams) bytes() []byte {
	buf := make([]byte, frameParamsSize)
	le := binary.LittleEndian
	le.PutUint32(buf[0:], p.width)
	le.PutUint32(buf[4:], p.height)
	le.PutUint32(buf[8:], p.fixedAxis)
	le.PutUint32(buf[12:], p.spaceID)
	le.PutUint32(buf[16:], math.Float32bits(p.fixedValue))
	le.PutUint32(buf[20:], math.Float32bits(p.threshold))
	le.PutUint32(buf[24:], p.metricID)
	le.PutUint32(buf[28:], p.entryIndex)
	le.PutUint32(buf[32:], uint32(p.polarAngular))
	le.PutUint32(buf[36:], uint32(p.polarRadial))
	le.PutUint32(buf[40:], p.showUnmatched)
	le.PutUint32(buf[44:], p.hideOther)
	le.PutUint32(buf[48:], uint32(p.highlightIndex))
	le.PutUint32(buf[52:], p.paletteCount)
	// Bytes 56..63 pad the vec4 members to 16-byte alignment.
	for i := 0; i < 3; i++ {
		le.PutUint32(buf[64+i*4:], math.Float32bits(p.sliceLo[i]))
		le.PutUint32(buf[80+i*4:], math.Float32bits(p.sliceHi[i]))
	}
	return buf
}

// slicePlan is a frame proven to be a fullscreen 2D slice: the compute
// grid covers the framebuffer one texel per pixel at a single depth.
type slicePlan struct {
	params frameParams
	depth  float32
}

// Screen positions are recomputed from the MVP in float32, so corners
// land within a small fraction of a pixel of the exact grid.
const planPixelTolerance = 0.1

// planSliceFrame checks whether the field inputs describe a fullscreen
// axis-aligned slice quad and, if so, builds the kernel uniforms for it.
// Anything else (volume geometry, rotated or partial quads, unknown
// spaces) reports ok == false and stays on the software rasterizer.
func planSliceFrame(width, height int, in render.FieldInputs) (slicePlan, bool) {
	var plan slicePlan

	spaceID, ok := gpuSpaceID(in.Space.ID)
	if !ok {
		return plan, false
	}
	metricID, ok := gpuMetricID(in.Metric.ID)
	if !ok {
		return plan, false
	}

	m := in.Mesh
	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		return plan, false
	}

	// Exactly one coordinate axis must be constant across the quad.
	fixedAxis := -1
	var fixedValue float32
	for axis := 0; axis < 3; axis++ {
		v := m.Vertices[0].Coord.Component(axis)
		same := true
		for _, vert := range m.Vertices[1:] {
			if vert.Coord.Component(axis) != v {
				same = false
				break
			}
		}
		if !same {
			continue
		}
		if fixedAxis >= 0 {
			return plan, false
		}
		fixedAxis = axis
		fixedValue = v
	}
	if fixedAxis < 0 {
		return plan, false
	}
	freeA := 0
	if fixedAxis == 0 {
		freeA = 1
	}
	freeB := 3 - fixedAxis - freeA

	// Every corner must project onto the screen position its free
	// coordinates predict, at one shared depth. That is exactly the
	// mapping the kernel inverts per pixel.
	var depth float32
	for j, vert := range m.Vertices {
		clip := in.MVP.MulVec4(colorfield.V4(vert.Position.X, vert.Position.Y, vert.Position.Z, 1))
		if clip[3] <= 0 {
			return plan, false
		}
		invW := 1 / clip[3]
		sx := (clip[0]*invW + 1) / 2 * float32(width)
		sy := (clip[1]*invW + 1) / 2 * float32(height)
		z := clip[2] * invW
		if z < 0 || z > 1 {
			return plan, false
		}
		wantX := vert.Coord.Component(freeA) * float32(width)
		wantY := vert.Coord.Component(freeB) * float32(height)
		if abs32(sx-wantX) > planPixelTolerance || abs32(sy-wantY) > planPixelTolerance {
			return plan, false
		}
		if j == 0 {
			depth = z
		} else if abs32(z-depth) > 1e-5 {
			return plan, false
		}
	}

	plan.depth = depth
	plan.params = frameParams{
		width:          uint32(width),
		height:         uint32(height),
		fixedAxis:      uint32(fixedAxis),
		spaceID:        spaceID,
		fixedValue:     fixedValue,
		threshold:      float32(in.Threshold),
		metricID:       metricID,
		polarAngular:   int32(in.PolarAngular),
		polarRadial:    int32(in.PolarRadial),
		showUnmatched:  boolUint32(in.ShowUnmatched),
		hideOther:      boolUint32(in.HideOther),
		highlightIndex: int32(in.HighlightIndex),
		paletteCount:   uint32(len(in.Palette)),
	}
	for i := 0; i < 3; i++ {
		plan.params.sliceLo[i] = float32(in.Slices[i][0])
		plan.params.sliceHi[i] = float32(in.Slices[i][1])
	}
	return plan, true
}

func gpuSpaceID(id colorfield.SpaceID) (uint32, bool) {
	switch id {
	case colorfield.RGBSpace:
		return 0, true
	case colorfield.HSVSpace:
		return 1, true
	case colorfield.HSLSpace:
		return 2, true
	}
	return 0, false
}

func gpuMetricID(id colorfield.MetricID) (uint32, bool) {
	switch id {
	case colorfield.DeltaEMetric:
		return 0, true
	case colorfield.RGBEuclideanMetric:
		return 1, true
	}
	return 0, false
}

func boolUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
