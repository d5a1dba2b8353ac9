package colorfield

import "fmt"

// Axis describes one semantic dimension of a color space: its stable key,
// human-readable name, display unit, and the integer value range the UI
// may slice it over.
type Axis struct {
	Key     string
	Name    string
	Unit    string
	Min     int
	Max     int
	Default int
}

// Validate checks that an integer axis value lies within [Min, Max].
func (a Axis) Validate(v int) error {
	if v < a.Min || v > a.Max {
		return fmt.Errorf("%w: %s = %d, want [%d, %d]", ErrAxisValueOutOfRange, a.Key, v, a.Min, a.Max)
	}
	return nil
}

// Normalize maps an integer axis value to the normalized [0, 1] coordinate
// used by the renderers. The serializer in formatColor is its inverse.
func (a Axis) Normalize(v int) float64 {
	return float64(v) / float64(a.Max)
}

// SpaceID identifies one of the supported color spaces.
type SpaceID string

// Supported color space ids.
const (
	RGBSpace SpaceID = "RGB"
	HSVSpace SpaceID = "HSV"
	HSLSpace SpaceID = "HSL"
)

// Space is an immutable descriptor of a color space: its three axes in
// order, the axis a fresh view slices over, and which axis (if any) may be
// displayed as a polar angle.
type Space struct {
	ID             SpaceID
	Axes           [3]Axis
	DefaultAxisKey string

	// polarKey names the axis that can be shown as a polar angle
	// (the hue axis), empty for Cartesian-only spaces.
	polarKey string
	// radialKey names the axis that takes the radial role when polar
	// display is active.
	radialKey string
}

// The three supported color spaces.
var (
	SpaceRGB = Space{
		ID: RGBSpace,
		Axes: [3]Axis{
			{Key: "r", Name: "Red", Max: 255, Default: 128},
			{Key: "g", Name: "Green", Max: 255, Default: 128},
			{Key: "b", Name: "Blue", Max: 255, Default: 128},
		},
		DefaultAxisKey: "r",
	}

	SpaceHSV = Space{
		ID: HSVSpace,
		Axes: [3]Axis{
			{Key: "h", Name: "Hue", Unit: "°", Max: 360, Default: 0},
			{Key: "s", Name: "Saturation", Unit: "%", Max: 100, Default: 100},
			{Key: "v", Name: "Value", Unit: "%", Max: 100, Default: 100},
		},
		DefaultAxisKey: "v",
		polarKey:       "h",
		radialKey:      "s",
	}

	SpaceHSL = Space{
		ID: HSLSpace,
		Axes: [3]Axis{
			{Key: "h", Name: "Hue", Unit: "°", Max: 360, Default: 0},
			{Key: "s", Name: "Saturation", Unit: "%", Max: 100, Default: 100},
			{Key: "l", Name: "Lightness", Unit: "%", Max: 100, Default: 50},
		},
		DefaultAxisKey: "l",
		polarKey:       "h",
		radialKey:      "s",
	}
)

// Spaces returns all supported color spaces in display order.
func Spaces() []Space {
	return []Space{SpaceRGB, SpaceHSV, SpaceHSL}
}

// SpaceByID looks up a color space by its id string.
func SpaceByID(id string) (Space, error) {
	for _, sp := range Spaces() {
		if string(sp.ID) == id {
			return sp, nil
		}
	}
	return Space{}, fmt.Errorf("%w: %q", ErrUnknownSpace, id)
}

// AxisIndex returns the position of the axis with the given key, or -1.
func (sp Space) AxisIndex(key string) int {
	for i, ax := range sp.Axes {
		if ax.Key == key {
			return i
		}
	}
	return -1
}

// AxisByKey returns the axis with the given key.
func (sp Space) AxisByKey(key string) (Axis, bool) {
	if i := sp.AxisIndex(key); i >= 0 {
		return sp.Axes[i], true
	}
	return Axis{}, false
}

// DefaultAxis returns the axis a fresh view slices over.
func (sp Space) DefaultAxis() Axis {
	ax, _ := sp.AxisByKey(sp.DefaultAxisKey)
	return ax
}

// PolarAxis returns the axis that may be displayed as a polar angle while
// the given axis is the current (sliced) one. It returns false when the
// space has no polar axis or when the current axis is the polar axis
// itself, which would leave the remap without two free axes.
func (sp Space) PolarAxis(current Axis) (Axis, bool) {
	if sp.polarKey == "" || sp.polarKey == current.Key {
		return Axis{}, false
	}
	ax, ok := sp.AxisByKey(sp.polarKey)
	return ax, ok
}

// PolarRoles returns the axis indices taking the angular, radial and height
// roles when the space is displayed as a cylinder. It returns false for
// Cartesian-only spaces.
func (sp Space) PolarRoles() (angular, radial, height int, ok bool) {
	if sp.polarKey == "" {
		return 0, 0, 0, false
	}
	angular = sp.AxisIndex(sp.polarKey)
	radial = sp.AxisIndex(sp.radialKey)
	for i := range sp.Axes {
		if i != angular && i != radial {
			height = i
		}
	}
	return angular, radial, height, true
}

// ColorAt evaluates the space's color at normalized coordinates, ordered
// by axis. This is the CPU twin of the fragment-shader color computation.
func (sp Space) ColorAt(coord [3]float64) RGB {
	switch sp.ID {
	case HSVSpace:
		return HSVToRGB(HSV{H: coord[0], S: coord[1], V: coord[2]})
	case HSLSpace:
		return HSLToRGB(HSL{H: coord[0], S: coord[1], L: coord[2]})
	default:
		return RGB{R: coord[0], G: coord[1], B: coord[2]}
	}
}
