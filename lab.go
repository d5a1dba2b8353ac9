package colorfield

import "math"

// Lab is a color in CIE L*a*b* coordinates under the D65 reference white.
type Lab struct {
	L, A, B float64
}

// D65 reference white in XYZ.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// labKappa and labEpsilon are the CIE constants for the f(t) transfer
// function: epsilon = (6/29)^3, kappa = 903.3.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 903.3
)

// srgbToLinear removes the sRGB gamma from one component using the standard
// piecewise curve.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RGBToLab converts an sRGB color to CIE L*a*b* via linear sRGB and
// XYZ (D65).
func RGBToLab(c RGB) Lab {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	// sRGB -> XYZ, D65.
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// DeltaE returns the CIE76 color difference between two sRGB colors:
// the Euclidean distance between their L*a*b* forms.
func DeltaE(a, b RGB) float64 {
	return a.Lab().Distance(b.Lab())
}

// Lab converts the color to CIE L*a*b*.
func (c RGB) Lab() Lab {
	return RGBToLab(c)
}

// Distance returns the Euclidean distance between two Lab colors.
func (l Lab) Distance(o Lab) float64 {
	dl := l.L - o.L
	da := l.A - o.A
	db := l.B - o.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// RGBDistance returns the straight Euclidean distance between two sRGB
// colors on their [0, 1] components.
func RGBDistance(a, b RGB) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
