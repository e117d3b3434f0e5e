// SPDX-License-Identifier: MIT

package stattest

import "gonum.org/v1/gonum/stat"

// UniformVariance is the variance of the continuous uniform distribution on [0,1].
const UniformVariance = 1.0 / 12.0

// Variance tests dispersion: (n-1)·S²/σ₀² follows χ² with n-1 degrees of
// freedom, so S² must fall inside
//
//	[χ²_{α/2, n-1} / (n-1) · σ₀²,  χ²_{1-α/2, n-1} / (n-1) · σ₀²]
//
// with σ₀² = 1/12 and S² the unbiased sample variance.
//
// Verdict:
//   - Pass iff Lower <= S² <= Upper.
//   - Inconclusive (Passed == false) when S² == 0: every value is equal.
//
// Errors:
//   - ErrTooFewObservations for n < 2, ErrNonFinite.
//
// Complexity: O(n).
func Variance(sample []float64, opts ...Option) (VarianceResult, error) {
	cfg := newConfig(opts...)

	n := len(sample)
	if n < 2 {
		return VarianceResult{}, statErrorf(opVariance, ErrTooFewObservations)
	}
	if err := checkFinite(sample); err != nil {
		return VarianceResult{}, statErrorf(opVariance, err)
	}

	df := n - 1
	s2 := stat.Variance(sample, nil)
	lower := ChiSquaredQuantile(cfg.alpha/2, df) / float64(df) * UniformVariance
	upper := ChiSquaredQuantile(1-cfg.alpha/2, df) / float64(df) * UniformVariance

	res := VarianceResult{
		Result: Result{
			Name:      "variance",
			N:         n,
			Statistic: s2,
			Critical:  upper,
			Alpha:     cfg.alpha,
		},
		Variance:    s2,
		Theoretical: UniformVariance,
		Lower:       lower,
		Upper:       upper,
	}

	var note string
	if s2 == 0 {
		note = "sample variance is zero; all observations are equal"
	}
	res.settle(lower <= s2 && s2 <= upper, note)
	return res, nil
}
