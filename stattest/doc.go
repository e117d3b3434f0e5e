// Package stattest validates a materialized sample of uniform [0,1) draws.
//
// 🚀 What is it?
//
//	Four classical empirical tests for pseudo-random number generators:
//	  • ChiSquare          – histogram uniformity over k equal-width bins
//	  • KolmogorovSmirnov  – maximum deviation from the uniform CDF
//	  • Variance           – sample variance against σ₀² = 1/12
//	  • Poker              – digit-pattern independence over 5 digits
//	plus Run, which evaluates all four on one sample concurrently.
//
// ✨ Contract
//
//   - Every test consumes a []float64 it never mutates and never calls a
//     generator itself; collect the sample first (prng.Draw).
//   - Each result embeds a Result header {Statistic, Critical, Alpha,
//     Verdict, Passed}. Passed is true exactly when Verdict == Pass.
//   - Degenerate inputs (too few observations for the bin count, a
//     zero-width range, zero variance) yield Verdict == Inconclusive with a
//     Note instead of a misleading pass/fail.
//   - Inputs a test cannot evaluate at all are reported as errors:
//     ErrEmptySample, ErrTooFewObservations, ErrNonFinite, ErrOutOfUnitRange.
//
// ⚙️ Options
//
//	WithAlpha(α)      – significance level, default 0.05
//	WithIntervals(k)  – ChiSquare bin count, default 10
//
// Critical values come from the chi-square quantile function of
// gonum.org/v1/gonum/stat/distuv; the KS critical value uses the asymptotic
// form sqrt(-ln(α/2) / 2n).
//
// 📚 Example
//
//	g, _ := lcg.New(lcg.WithSeed(12345))
//	sample, _ := prng.Draw(g, 10000)
//	rep, err := stattest.Run(sample)
//	if err == nil && rep.AllPassed() {
//	    fmt.Println("generator looks uniform")
//	}
package stattest
