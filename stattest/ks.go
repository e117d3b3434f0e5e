// SPDX-License-Identifier: MIT

package stattest

import (
	"fmt"
	"math"
	"slices"
)

// minKSObservations is where the asymptotic critical value becomes usable.
const minKSObservations = 35

// KolmogorovSmirnov tests the sample against the uniform CDF on [0,1].
// Implementation:
//   - Stage 1: Validate (non-empty, finite, inside [0,1]) and sort a copy.
//   - Stage 2: For rank i = 1..n: D+ = max(i/n - x_i), D- = max(x_i - (i-1)/n).
//   - Stage 3: Statistic D = max(D+, D-); critical sqrt(-ln(α/2) / 2n).
//
// Verdict:
//   - Pass iff D <= Critical.
//   - Inconclusive for n < 35, where the asymptotic critical value is unreliable.
//
// Errors:
//   - ErrEmptySample, ErrNonFinite, ErrOutOfUnitRange.
//
// Complexity: O(n log n) time, O(n) extra space for the sorted copy.
func KolmogorovSmirnov(sample []float64, opts ...Option) (KSResult, error) {
	cfg := newConfig(opts...)

	// Stage 1 (Validate).
	n := len(sample)
	if n == 0 {
		return KSResult{}, statErrorf(opKS, ErrEmptySample)
	}
	if err := checkFinite(sample); err != nil {
		return KSResult{}, statErrorf(opKS, err)
	}
	for i, x := range sample {
		if x < 0 || x > 1 {
			return KSResult{}, statErrorf(opKS, fmt.Errorf("%w (index %d: %g)", ErrOutOfUnitRange, i, x))
		}
	}
	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	// Stage 2 (One-sided deviations).
	fn := float64(n)
	var dPlus, dMinus float64
	for i, x := range sorted {
		dPlus = math.Max(dPlus, float64(i+1)/fn-x)
		dMinus = math.Max(dMinus, x-float64(i)/fn)
	}

	// Stage 3 (Decision).
	res := KSResult{
		Result: Result{
			Name:      "kolmogorov-smirnov",
			N:         n,
			Statistic: math.Max(dPlus, dMinus),
			Critical:  ksCritical(cfg.alpha, n),
			Alpha:     cfg.alpha,
		},
		DPlus:  dPlus,
		DMinus: dMinus,
	}

	var note string
	if n < minKSObservations {
		note = fmt.Sprintf("n = %d is below %d; the asymptotic critical value is unreliable", n, minKSObservations)
	}
	res.settle(res.Statistic <= res.Critical, note)
	return res, nil
}
