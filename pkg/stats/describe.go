package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DescriptiveStats summarizes a sample.
type DescriptiveStats struct {
	Mean         float64
	Median       float64
	StdDev       float64
	Min          float64
	Max          float64
	Percentile95 float64
}

// Describe computes a descriptive summary of xs. The zero value is
// returned for empty input.
func Describe(xs []float64) DescriptiveStats {
	if len(xs) == 0 {
		return DescriptiveStats{}
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return DescriptiveStats{
		Mean:         stat.Mean(xs, nil),
		Median:       median(sorted),
		StdDev:       stat.StdDev(xs, nil),
		Min:          sorted[0],
		Max:          sorted[len(sorted)-1],
		Percentile95: percentile(sorted, 0.95),
	}
}

// median calculates the median of a sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// percentile calculates the p-th percentile of a sorted slice using
// linear interpolation.
func percentile(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
