package colorfield

// Classify returns the palette index of the nearest entry to the color
// under the given metric, or NoMatch when no entry lies within the
// threshold (or the palette is empty). Ties resolve to the lowest index.
//
// The fragment shaders implement the same rule, so pixel readback agrees
// with on-screen region boundaries.
func Classify(c RGB, p Palette, m Metric, threshold float64) uint8 {
	if len(p) == 0 {
		return NoMatch
	}

	// For ΔE the sample converts to Lab once; each palette scan step is
	// then a plain Euclidean distance.
	var sampleLab Lab
	useLab := m.ID == DeltaEMetric
	if useLab {
		sampleLab = c.Lab()
	}

	best := -1
	bestDist := 0.0
	for i, nc := range p {
		var d float64
		if useLab {
			d = sampleLab.Distance(nc.RGB.Lab())
		} else {
			d = RGBDistance(c, nc.RGB)
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	if bestDist > threshold {
		return NoMatch
	}
	return uint8(best)
}
