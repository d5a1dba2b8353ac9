package colorfield

import "fmt"

// MetricID identifies a distance metric.
type MetricID string

// Supported metric ids.
const (
	DeltaEMetric       MetricID = "deltaE"
	RGBEuclideanMetric MetricID = "rgbEuclidean"
)

// Metric describes a color distance metric and the threshold range the UI
// may offer for it.
type Metric struct {
	ID               MetricID
	MinThreshold     float64
	MaxThreshold     float64
	DefaultThreshold float64
}

// The supported metrics. ΔE thresholds are in CIE76 units; RGB-Euclidean
// thresholds are distances on the [0,1]^3 cube (the diagonal is √3).
var (
	MetricDeltaE = Metric{
		ID:               DeltaEMetric,
		MinThreshold:     1,
		MaxThreshold:     100,
		DefaultThreshold: 20,
	}

	MetricRGBEuclidean = Metric{
		ID:               RGBEuclideanMetric,
		MinThreshold:     0.01,
		MaxThreshold:     2,
		DefaultThreshold: 0.3,
	}
)

// Metrics returns all supported metrics in display order.
func Metrics() []Metric {
	return []Metric{MetricDeltaE, MetricRGBEuclidean}
}

// MetricByID looks up a metric by its id string.
func MetricByID(id string) (Metric, bool) {
	for _, m := range Metrics() {
		if string(m.ID) == id {
			return m, true
		}
	}
	return Metric{}, false
}

// Distance returns the metric's distance between two sRGB colors.
func (m Metric) Distance(a, b RGB) float64 {
	if m.ID == DeltaEMetric {
		return DeltaE(a, b)
	}
	return RGBDistance(a, b)
}

// DisplayThreshold formats a threshold value for UI display: ΔE as an
// integer, RGB-Euclidean with two decimals.
func (m Metric) DisplayThreshold(t float64) string {
	if m.ID == DeltaEMetric {
		return fmt.Sprintf("%.0f", t)
	}
	return fmt.Sprintf("%.2f", t)
}
