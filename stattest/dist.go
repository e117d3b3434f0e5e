package stattest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquaredQuantile returns the p-quantile of the chi-square distribution
// with df degrees of freedom: the x with P(X <= x) = p.
func ChiSquaredQuantile(p float64, df int) float64 {
	return distuv.ChiSquared{K: float64(df)}.Quantile(p)
}

// ksCritical is the asymptotic two-sided Kolmogorov–Smirnov critical value.
func ksCritical(alpha float64, n int) float64 {
	return math.Sqrt(-math.Log(alpha/2) / (2 * float64(n)))
}

// checkFinite reports the first NaN or ±Inf in sample.
func checkFinite(sample []float64) error {
	for i, x := range sample {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w (index %d)", ErrNonFinite, i)
		}
	}
	return nil
}

// Cochran's rule thresholds for chi-square approximations.
const (
	minExpected      = 1.0
	smallExpected    = 5.0
	maxSmallFraction = 0.2
)

// cochranNote returns a non-empty note when the expected counts are too
// small for the chi-square approximation.
func cochranNote(expected []float64) string {
	var small int
	for _, e := range expected {
		if e < minExpected {
			return fmt.Sprintf("expected count %.3g below %g; increase the sample size", e, minExpected)
		}
		if e < smallExpected {
			small++
		}
	}
	if float64(small) > maxSmallFraction*float64(len(expected)) {
		return fmt.Sprintf("%d of %d cells expect fewer than %g observations", small, len(expected), smallExpected)
	}
	return ""
}

// pearson returns Σ (O-E)²/E.
func pearson(observed []int, expected []float64) float64 {
	var chi float64
	for i, o := range observed {
		d := float64(o) - expected[i]
		chi += d * d / expected[i]
	}
	return chi
}
