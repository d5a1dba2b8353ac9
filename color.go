package colorfield

import (
	"fmt"
	"math"
	"strings"
)

// RGB is a color in the sRGB color space with each component normalized
// to [0, 1].
type RGB struct {
	R, G, B float64
}

// HSV is a color in hue/saturation/value coordinates, each normalized
// to [0, 1]. Hue wraps: 0 and 1 are the same angle.
type HSV struct {
	H, S, V float64
}

// HSL is a color in hue/saturation/lightness coordinates, each normalized
// to [0, 1]. Hue wraps: 0 and 1 are the same angle.
type HSL struct {
	H, S, L float64
}

// NewRGB creates an RGB color, validating that every component lies
// in [0, 1].
func NewRGB(r, g, b float64) (RGB, error) {
	if err := checkCoords(r, g, b); err != nil {
		return RGB{}, err
	}
	return RGB{R: r, G: g, B: b}, nil
}

// NewHSV creates an HSV color, validating that every component lies
// in [0, 1].
func NewHSV(h, s, v float64) (HSV, error) {
	if err := checkCoords(h, s, v); err != nil {
		return HSV{}, err
	}
	return HSV{H: h, S: s, V: v}, nil
}

// NewHSL creates an HSL color, validating that every component lies
// in [0, 1].
func NewHSL(h, s, l float64) (HSL, error) {
	if err := checkCoords(h, s, l); err != nil {
		return HSL{}, err
	}
	return HSL{H: h, S: s, L: l}, nil
}

func checkCoords(coords ...float64) error {
	for i, c := range coords {
		if c < 0 || c > 1 || math.IsNaN(c) {
			return fmt.Errorf("%w: component %d = %v", ErrInvalidCoordinate, i, c)
		}
	}
	return nil
}

// String prints the color scaled to its axis ranges, e.g. "RGB: 128 64 255".
func (c RGB) String() string {
	return formatColor(SpaceRGB, [3]float64{c.R, c.G, c.B})
}

// String prints the color scaled to its axis ranges, e.g. "HSV: 210° 50% 75%".
func (c HSV) String() string {
	return formatColor(SpaceHSV, [3]float64{c.H, c.S, c.V})
}

// String prints the color scaled to its axis ranges, e.g. "HSL: 210° 50% 75%".
func (c HSL) String() string {
	return formatColor(SpaceHSL, [3]float64{c.H, c.S, c.L})
}

// formatColor is the shared serializer: each component is rounded to its
// axis maximum and suffixed with the axis unit.
func formatColor(sp Space, coords [3]float64) string {
	var b strings.Builder
	b.WriteString(string(sp.ID))
	b.WriteString(":")
	for i, ax := range sp.Axes {
		fmt.Fprintf(&b, " %d%s", int(math.Round(coords[i]*float64(ax.Max))), ax.Unit)
	}
	return b.String()
}

// Coords returns the color's components as an array ordered by axis.
func (c RGB) Coords() [3]float64 { return [3]float64{c.R, c.G, c.B} }

// Coords returns the color's components as an array ordered by axis.
func (c HSV) Coords() [3]float64 { return [3]float64{c.H, c.S, c.V} }

// Coords returns the color's components as an array ordered by axis.
func (c HSL) Coords() [3]float64 { return [3]float64{c.H, c.S, c.L} }

// RGBToHSV converts an RGB color using the min/max-of-components
// formulation. Achromatic inputs yield hue 0.
func RGBToHSV(c RGB) HSV {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	h := hueOf(c, maxC, minC)

	var s float64
	if maxC > 0 {
		s = (maxC - minC) / maxC
	}
	return HSV{H: h, S: s, V: maxC}
}

// RGBToHSL converts an RGB color using the min/max-of-components
// formulation. Achromatic inputs yield hue 0.
func RGBToHSL(c RGB) HSL {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	h := hueOf(c, maxC, minC)

	l := (maxC + minC) / 2
	var s float64
	if d := maxC - minC; d > 0 {
		s = d / (1 - math.Abs(2*l-1))
	}
	return HSL{H: h, S: s, L: l}
}

// hueOf computes the normalized hue in [0, 1) shared by HSV and HSL.
func hueOf(c RGB, maxC, minC float64) float64 {
	d := maxC - minC
	if d == 0 {
		return 0
	}
	var h float64
	switch maxC {
	case c.R:
		h = (c.G - c.B) / d
		if h < 0 {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h /= 6
	if h >= 1 {
		h -= 1
	}
	return h
}

// HueToRGB converts a hue in [0, 1] to the fully saturated RGB color on the
// color wheel using the triangle-wave formulation. This is the exact
// formulation the fragment shaders use, so boundary pixels match between
// CPU and GPU.
func HueToRGB(h float64) RGB {
	return RGB{R: huePulse(h, 1), G: huePulse(h, 2.0/3.0), B: huePulse(h, 1.0/3.0)}
}

// huePulse is p(h) = clamp(|fract(h + k)*6 - 3| - 1, 0, 1).
func huePulse(h, k float64) float64 {
	f := h + k
	f -= math.Floor(f)
	return clamp01(math.Abs(f*6-3) - 1)
}

// HSVToRGB converts an HSV color via the triangle-wave formulation:
// rgb = v * (p*s - s + 1).
func HSVToRGB(c HSV) RGB {
	p := HueToRGB(c.H)
	return RGB{
		R: c.V * (p.R*c.S - c.S + 1),
		G: c.V * (p.G*c.S - c.S + 1),
		B: c.V * (p.B*c.S - c.S + 1),
	}
}

// HSLToRGB converts an HSL color via the triangle-wave formulation:
// rgb = l + chroma * (p - 0.5) with chroma = (1 - |2l - 1|) * s.
func HSLToRGB(c HSL) RGB {
	p := HueToRGB(c.H)
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	return RGB{
		R: clamp01(c.L + chroma*(p.R-0.5)),
		G: clamp01(c.L + chroma*(p.G-0.5)),
		B: clamp01(c.L + chroma*(p.B-0.5)),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
