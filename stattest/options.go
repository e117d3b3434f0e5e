// SPDX-License-Identifier: MIT
// Package: lvrand/stattest
//
// options.go — functional options shared by every test.
//
// Contract:
//   • Constructors panic only on nonsensical values (programmer error).
//   • Options irrelevant to a test are ignored by it (WithIntervals only
//     affects ChiSquare).

package stattest

import "math"

// Defaults.
const (
	// DefaultAlpha is the significance level of every test.
	DefaultAlpha = 0.05

	// DefaultIntervals is the ChiSquare bin count.
	DefaultIntervals = 10
)

const (
	panicAlphaInvalid     = "stattest: WithAlpha: alpha must lie in (0,1)"
	panicIntervalsInvalid = "stattest: WithIntervals: k must be >= 2"
)

// config is the resolved option set.
type config struct {
	alpha     float64
	intervals int
}

// Option customizes a test run.
type Option func(*config)

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{alpha: DefaultAlpha, intervals: DefaultIntervals}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithAlpha sets the significance level. Panics unless 0 < alpha < 1.
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		panic(panicAlphaInvalid)
	}
	return func(c *config) {
		c.alpha = alpha
	}
}

// WithIntervals sets the ChiSquare bin count. Panics for k < 2 (one bin
// leaves zero degrees of freedom).
func WithIntervals(k int) Option {
	if k < 2 {
		panic(panicIntervalsInvalid)
	}
	return func(c *config) {
		c.intervals = k
	}
}
