// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// options.go — functional options for New.
//
// Contract:
//   • Options mutate a private config; later options override earlier ones.
//   • Parameter values are validated by New (they surface as
//     ErrConfiguration errors, never as panics), because presets and
//     user-supplied moduli share one validation path.
//   • WithClock(nil) is a programmer error and panics.
//   • Without WithSeed the seed comes from the clock (see DefaultSeed).

package lcg

import "time"

// DefaultWarmup is the conventional number of values discarded after seeding
// to move away from small-seed correlations. It is opt-in via WithWarmup.
const DefaultWarmup = 20

// config aggregates everything New needs.
type config struct {
	params  Params
	seed    int64
	seeded  bool // seed was set explicitly
	warmup  int
	nowFunc func() time.Time
}

// Option customizes a Generator at construction time.
type Option func(*config)

// newConfig applies opts over deterministic defaults (MinStd2, no warm-up,
// wall clock).
func newConfig(opts ...Option) config {
	cfg := config{
		params:  MinStd2,
		warmup:  0,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithParams selects the recurrence parameters.
func WithParams(p Params) Option {
	return func(c *config) {
		c.params = p
	}
}

// WithModulus overrides only M.
func WithModulus(m int64) Option {
	return func(c *config) {
		c.params.M = m
	}
}

// WithMultiplier overrides only A.
func WithMultiplier(a int64) Option {
	return func(c *config) {
		c.params.A = a
	}
}

// WithIncrement overrides only C.
func WithIncrement(inc int64) Option {
	return func(c *config) {
		c.params.C = inc
	}
}

// WithSeed fixes the initial seed. The usual Seed policy applies.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithWarmup discards n values after every successful Seed, including the
// initial one. n must be >= 0.
func WithWarmup(n int) Option {
	return func(c *config) {
		c.warmup = n
	}
}

// WithClock replaces the time source used for the default seed.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("lcg: WithClock(nil)")
	}
	return func(c *config) {
		c.nowFunc = now
	}
}
