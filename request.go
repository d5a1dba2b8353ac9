package colorfield

import "fmt"

// Mode selects between a flat 2D slice and a 3D volume view.
type Mode int

const (
	// Slice2D renders a single face of the color space with one axis fixed.
	Slice2D Mode = iota

	// Volume3D renders the sliced color-space volume as a cube or cylinder.
	Volume3D
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case Slice2D:
		return "Slice2D"
	case Volume3D:
		return "Volume3D"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// HighlightMode selects how the highlighted palette region is emphasized.
type HighlightMode int

const (
	// DimOther darkens every pixel whose palette index differs from the
	// highlighted one.
	DimOther HighlightMode = iota

	// HideOther culls every pixel whose palette index differs from the
	// highlighted one.
	HideOther

	// Boundary strokes only the perimeter of the highlighted region.
	Boundary
)

// String returns the string representation of HighlightMode.
func (m HighlightMode) String() string {
	switch m {
	case DimOther:
		return "DimOther"
	case HideOther:
		return "HideOther"
	case Boundary:
		return "Boundary"
	default:
		return fmt.Sprintf("HighlightMode(%d)", int(m))
	}
}

// AxisRange is an inclusive integer [Lo, Hi] range over one axis.
type AxisRange struct {
	Lo, Hi int
}

// AxisSlices maps axis keys to their selected ranges. A 2D request holds
// exactly one entry with Lo == Hi (the fixed slice value); a 3D request
// holds all three axes and selects a sub-box of the unit cube.
type AxisSlices map[string]AxisRange

// RenderRequest is the unit of work handed to the render orchestrator.
// The zero Rotation is treated as the identity.
type RenderRequest struct {
	Space  Space
	Slices AxisSlices
	Mode   Mode

	// Polar displays the space's hue axis as a polar angle. When the
	// space has no polar axis available (see Space.PolarAxis) the
	// orchestrator silently falls back to Cartesian.
	Polar bool

	ShowBoundaries bool

	Palette   Palette
	Metric    Metric
	Threshold float64

	HighlightMode HighlightMode

	// HighlightIndex selects the highlighted palette entry directly;
	// nil means no highlight (unless Highlight resolves one).
	HighlightIndex *int

	// Highlight optionally names the highlighted entry by color; the
	// orchestrator resolves it with a linear palette scan when
	// HighlightIndex is nil.
	Highlight *NamedColor

	// ShowUnmatched keeps fragments whose classification is NoMatch
	// visible; when false they are culled like out-of-gamut fragments.
	ShowUnmatched bool

	Rotation Mat4
}

// Validate checks the request invariants. It does not mutate the request.
func (r *RenderRequest) Validate() error {
	switch r.Mode {
	case Slice2D:
		if len(r.Slices) != 1 {
			return fmt.Errorf("%w: 2D request needs exactly one axis slice, got %d", ErrAxisCountMismatch, len(r.Slices))
		}
	case Volume3D:
		if len(r.Slices) != 3 {
			return fmt.Errorf("%w: 3D request needs all three axis slices, got %d", ErrAxisCountMismatch, len(r.Slices))
		}
	default:
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidRequest, r.Mode)
	}

	for key, rng := range r.Slices {
		ax, ok := r.Space.AxisByKey(key)
		if !ok {
			return fmt.Errorf("%w: axis %q not in space %s", ErrInvalidRequest, key, r.Space.ID)
		}
		if err := ax.Validate(rng.Lo); err != nil {
			return err
		}
		if err := ax.Validate(rng.Hi); err != nil {
			return err
		}
		if rng.Lo > rng.Hi {
			return fmt.Errorf("%w: axis %q range [%d, %d] inverted", ErrInvalidRequest, key, rng.Lo, rng.Hi)
		}
		if r.Mode == Slice2D && rng.Lo != rng.Hi {
			return fmt.Errorf("%w: 2D slice of %q must fix a single value", ErrInvalidRequest, key)
		}
	}

	if len(r.Palette) > MaxPaletteColors {
		return fmt.Errorf("%w: %d entries, max %d", ErrPaletteTooLarge, len(r.Palette), MaxPaletteColors)
	}
	if r.HighlightIndex != nil {
		if i := *r.HighlightIndex; i < 0 || i >= len(r.Palette) {
			return fmt.Errorf("%w: highlight index %d out of palette range %d", ErrInvalidRequest, i, len(r.Palette))
		}
	}
	return nil
}

// CurrentAxis returns the single sliced axis of a 2D request.
func (r *RenderRequest) CurrentAxis() (Axis, bool) {
	if r.Mode != Slice2D {
		return Axis{}, false
	}
	for key := range r.Slices {
		return r.Space.AxisByKey(key)
	}
	return Axis{}, false
}

// NormalizedSlices returns the per-axis [lo, hi] ranges normalized to
// [0, 1] and ordered by axis index. Axes absent from the request (the two
// free axes of a 2D slice) span the full range.
func (r *RenderRequest) NormalizedSlices() [3][2]float64 {
	var out [3][2]float64
	for i, ax := range r.Space.Axes {
		out[i] = [2]float64{0, 1}
		if rng, ok := r.Slices[ax.Key]; ok {
			out[i] = [2]float64{ax.Normalize(rng.Lo), ax.Normalize(rng.Hi)}
		}
	}
	return out
}

// EffectivePolar reports whether polar display is actually possible for
// this request: requested, supported by the space, and (for 2D) not
// slicing the polar axis itself.
func (r *RenderRequest) EffectivePolar() bool {
	if !r.Polar {
		return false
	}
	if r.Mode == Slice2D {
		current, ok := r.CurrentAxis()
		if !ok {
			return false
		}
		_, ok = r.Space.PolarAxis(current)
		return ok
	}
	_, _, _, ok := r.Space.PolarRoles()
	return ok
}

// ResolveHighlight returns the highlighted palette index against the given
// palette snapshot, or -1 when nothing is highlighted.
func (r *RenderRequest) ResolveHighlight(p Palette) int {
	if r.HighlightIndex != nil {
		if i := *r.HighlightIndex; i >= 0 && i < len(p) {
			return i
		}
		return -1
	}
	if r.Highlight != nil {
		return p.IndexOf(r.Highlight.RGB)
	}
	return -1
}
