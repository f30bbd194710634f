package stats

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a random source for sampling. A non-zero seed gives
// reproducible draws; seed 0 seeds from the wall clock.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// DrawNormal returns n independent draws from the standard normal
// distribution N(0, 1).
func DrawNormal(n int, src rand.Source) []float64 {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = normal.Rand()
	}
	return xs
}
