package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat"
)

func TestDrawNormalShapeAndMoments(t *testing.T) {
	xs := DrawNormal(1000, NewSource(7))
	require.Len(t, xs, 1000)

	mean := stat.Mean(xs, nil)
	variance := stat.Variance(xs, nil)

	// Loose tolerances: n=1000 puts the sample mean within ~0.1 of zero
	// and the sample variance within ~0.2 of one with high probability.
	assert.Less(t, math.Abs(mean), 0.1)
	assert.InDelta(t, 1.0, variance, 0.2)
}

func TestDrawNormalSeededReproducibility(t *testing.T) {
	a := DrawNormal(100, NewSource(12345))
	b := DrawNormal(100, NewSource(12345))
	assert.Equal(t, a, b)
}

func TestDrawNormalConsecutiveDrawsDiffer(t *testing.T) {
	src := NewSource(0)
	a := DrawNormal(100, src)
	b := DrawNormal(100, src)
	assert.NotEqual(t, a, b)
}

func TestDrawNormalEmpty(t *testing.T) {
	assert.Empty(t, DrawNormal(0, NewSource(1)))
}
