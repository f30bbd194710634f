package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	xs := []float64{4, 1, 3, 2, 5}

	d := Describe(xs)
	assert.InDelta(t, 3.0, d.Mean, tol)
	assert.InDelta(t, 3.0, d.Median, tol)
	assert.InDelta(t, 1.5811388300841898, d.StdDev, tol) // sqrt(2.5)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 5.0, d.Max)
	assert.InDelta(t, 4.8, d.Percentile95, tol)
}

func TestDescribeEvenLengthMedian(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, d.Median, tol)
}

func TestDescribeEmpty(t *testing.T) {
	assert.Equal(t, DescriptiveStats{}, Describe(nil))
}

func TestDescribeDoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Describe(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}
