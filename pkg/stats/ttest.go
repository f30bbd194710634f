package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrSampleSize indicates a sample with fewer than two observations.
	ErrSampleSize = errors.New("sample size too small")
	// ErrZeroVariance indicates degenerate input with a vanishing standard error.
	ErrZeroVariance = errors.New("sample has zero variance")
)

// TTestResult contains the outcome of a two-sided t-test.
type TTestResult struct {
	T   float64 // test statistic
	DoF float64 // degrees of freedom
	P   float64 // two-sided p-value, in [0, 1]
}

// TwoSampleTTest performs Student's independent two-sample t-test,
// assuming equal population variances.
func TwoSampleTTest(a, b []float64) (*TTestResult, error) {
	n1, n2 := len(a), len(b)
	if n1 < 2 || n2 < 2 {
		return nil, ErrSampleSize
	}

	mean1 := stat.Mean(a, nil)
	mean2 := stat.Mean(b, nil)
	var1 := stat.Variance(a, nil)
	var2 := stat.Variance(b, nil)

	df := float64(n1 + n2 - 2)
	pooledVar := (float64(n1-1)*var1 + float64(n2-1)*var2) / df
	se := math.Sqrt(pooledVar * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return nil, ErrZeroVariance
	}

	t := (mean1 - mean2) / se
	return &TTestResult{T: t, DoF: df, P: pValue(t, df)}, nil
}

// TwoSampleWelchTTest performs Welch's independent two-sample t-test,
// which does not assume equal population variances. Degrees of freedom
// follow the Welch-Satterthwaite approximation.
func TwoSampleWelchTTest(a, b []float64) (*TTestResult, error) {
	n1, n2 := len(a), len(b)
	if n1 < 2 || n2 < 2 {
		return nil, ErrSampleSize
	}

	mean1 := stat.Mean(a, nil)
	mean2 := stat.Mean(b, nil)
	var1 := stat.Variance(a, nil)
	var2 := stat.Variance(b, nil)

	se2 := var1/float64(n1) + var2/float64(n2)
	if se2 == 0 {
		return nil, ErrZeroVariance
	}

	t := (mean1 - mean2) / math.Sqrt(se2)
	df := se2 * se2 /
		(math.Pow(var1/float64(n1), 2)/float64(n1-1) + math.Pow(var2/float64(n2), 2)/float64(n2-1))

	return &TTestResult{T: t, DoF: df, P: pValue(t, df)}, nil
}

// OneSampleTTest tests whether the mean of xs differs from mu0.
func OneSampleTTest(xs []float64, mu0 float64) (*TTestResult, error) {
	n := len(xs)
	if n < 2 {
		return nil, ErrSampleSize
	}

	mean := stat.Mean(xs, nil)
	stdDev := stat.StdDev(xs, nil)
	se := stdDev / math.Sqrt(float64(n))
	if se == 0 {
		return nil, ErrZeroVariance
	}

	t := (mean - mu0) / se
	df := float64(n - 1)
	return &TTestResult{T: t, DoF: df, P: pValue(t, df)}, nil
}

// pValue computes the two-sided p-value of t under Student's
// t-distribution with df degrees of freedom.
func pValue(t, df float64) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * tDist.CDF(-math.Abs(t))
}
