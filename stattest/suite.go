package stattest

import "golang.org/x/sync/errgroup"

// Report bundles the four test results for one sample.
type Report struct {
	ChiSquare ChiSquareResult
	KS        KSResult
	Variance  VarianceResult
	Poker     PokerResult
}

// Results returns the four headers in a fixed order: chi-square,
// kolmogorov-smirnov, variance, poker.
func (r Report) Results() []Result {
	return []Result{r.ChiSquare.Result, r.KS.Result, r.Variance.Result, r.Poker.Result}
}

// AllPassed reports whether every test passed. Inconclusive counts as not passed.
func (r Report) AllPassed() bool {
	for _, res := range r.Results() {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Run evaluates ChiSquare, KolmogorovSmirnov, Variance and Poker on sample
// concurrently. The tests only read sample and each writes its own Report
// field. When tests fail with errors, the error of the first failing test in
// the fixed order chi-square, kolmogorov-smirnov, variance, poker is
// returned with a zero Report, independent of goroutine scheduling.
func Run(sample []float64, opts ...Option) (Report, error) {
	var (
		rep  Report
		errs [4]error
		g    errgroup.Group
	)
	g.Go(func() error {
		rep.ChiSquare, errs[0] = ChiSquare(sample, opts...)
		return errs[0]
	})
	g.Go(func() error {
		rep.KS, errs[1] = KolmogorovSmirnov(sample, opts...)
		return errs[1]
	})
	g.Go(func() error {
		rep.Variance, errs[2] = Variance(sample, opts...)
		return errs[2]
	})
	g.Go(func() error {
		rep.Poker, errs[3] = Poker(sample, opts...)
		return errs[3]
	})
	if g.Wait() == nil {
		return rep, nil
	}
	for _, err := range errs {
		if err != nil {
			return Report{}, err
		}
	}
	return rep, nil
}
