// SPDX-License-Identifier: MIT
// Package: lvrand/stattest
//
// types.go — result types shared by all tests.
//
// Invariants:
//   • Result.Passed == (Result.Verdict == Pass) for every constructed result.
//   • Results are values; nothing in them aliases the caller's sample.

package stattest

import "fmt"

// Verdict is the outcome of one test.
type Verdict int

const (
	// Pass: the statistic lies inside the acceptance region.
	Pass Verdict = iota
	// Fail: the statistic lies outside the acceptance region.
	Fail
	// Inconclusive: the sample is too degenerate for the test to be
	// meaningful; Result.Note says why.
	Inconclusive
)

// String returns "pass", "fail" or "inconclusive".
func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Inconclusive:
		return "inconclusive"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Result is the header every test reports.
type Result struct {
	Name      string  // test name, e.g. "chi-square"
	N         int     // number of observations
	Statistic float64 // test statistic
	Critical  float64 // critical value (upper bound of the acceptance region)
	Alpha     float64 // significance level
	Verdict   Verdict
	Passed    bool
	Note      string // set when Verdict == Inconclusive
}

// settle fixes Verdict and Passed. A non-empty note wins over ok and marks
// the result Inconclusive.
func (r *Result) settle(ok bool, note string) {
	switch {
	case note != "":
		r.Verdict, r.Note = Inconclusive, note
	case ok:
		r.Verdict = Pass
	default:
		r.Verdict = Fail
	}
	r.Passed = r.Verdict == Pass
}

// Interval is one histogram bin [Lower, Upper). The last bin of a
// ChiSquareResult is closed on both ends.
type Interval struct {
	Lower, Upper float64
}

// ChiSquareResult carries the histogram behind the chi-square statistic.
type ChiSquareResult struct {
	Result
	Intervals []Interval
	Observed  []int
	Expected  []float64
}

// KSResult carries both one-sided deviations; Statistic = max(DPlus, DMinus).
type KSResult struct {
	Result
	DPlus  float64
	DMinus float64
}

// VarianceResult carries the acceptance interval for S².
// Statistic == Variance and Critical == Upper.
type VarianceResult struct {
	Result
	Variance    float64 // unbiased sample variance S²
	Theoretical float64 // σ₀² = 1/12
	Lower       float64
	Upper       float64
}

// PokerResult carries per-hand counts, indexed by Hand.
type PokerResult struct {
	Result
	Observed []int
	Expected []float64
}
