// SPDX-License-Identifier: MIT

package stattest

import "gonum.org/v1/gonum/floats"

// ChiSquare tests uniformity by histogram.
// Implementation:
//   - Stage 1: Validate (non-empty, finite) and find [min, max].
//   - Stage 2: Split [min, max] into k equal-width half-open bins, the last
//     one closed, and count observations per bin.
//   - Stage 3: Statistic Σ(O-E)²/E with E = n/k; critical value is the
//     (1-α)-quantile of χ² with k-1 degrees of freedom.
//
// Verdict:
//   - Pass iff Statistic <= Critical.
//   - Inconclusive when max == min (every value lands in the last bin) or
//     when n/k is too small for the χ² approximation.
//
// Errors:
//   - ErrEmptySample, ErrNonFinite.
//
// Complexity: O(n + k).
func ChiSquare(sample []float64, opts ...Option) (ChiSquareResult, error) {
	cfg := newConfig(opts...)

	// Stage 1 (Validate).
	n := len(sample)
	if n == 0 {
		return ChiSquareResult{}, statErrorf(opChiSquare, ErrEmptySample)
	}
	if err := checkFinite(sample); err != nil {
		return ChiSquareResult{}, statErrorf(opChiSquare, err)
	}
	lo, hi := floats.Min(sample), floats.Max(sample)

	// Stage 2 (Histogram).
	k := cfg.intervals
	width := (hi - lo) / float64(k)
	intervals := make([]Interval, k)
	for i := range intervals {
		intervals[i] = Interval{Lower: lo + float64(i)*width, Upper: lo + float64(i+1)*width}
	}
	intervals[k-1].Upper = hi

	observed := make([]int, k)
	for _, x := range sample {
		observed[bin(x, lo, width, k)]++
	}

	// Stage 3 (Statistic and decision).
	expected := make([]float64, k)
	e := float64(n) / float64(k)
	for i := range expected {
		expected[i] = e
	}

	res := ChiSquareResult{
		Result: Result{
			Name:      "chi-square",
			N:         n,
			Statistic: pearson(observed, expected),
			Critical:  ChiSquaredQuantile(1-cfg.alpha, k-1),
			Alpha:     cfg.alpha,
		},
		Intervals: intervals,
		Observed:  observed,
		Expected:  expected,
	}

	note := cochranNote(expected)
	if hi == lo {
		note = "all observations are equal; the histogram range is empty"
	}
	res.settle(res.Statistic <= res.Critical, note)
	return res, nil
}

// bin maps x onto [0, k). A zero width (degenerate range) sends everything
// to the last bin, which is the one closed on both ends.
func bin(x, lo, width float64, k int) int {
	if width == 0 {
		return k - 1
	}
	i := int((x - lo) / width)
	if i >= k {
		i = k - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
