// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// generator.go — the Generator type.
//
// Invariants held after New and after every Seed/Random call:
//   • 0 <= x < m;
//   • x != 0 when c == 0;
//   • params satisfy Params.Validate.
//
// Determinism: identical Params, warm-up and seed ⇒ identical stream.
// Concurrency: not goroutine-safe; wrap with prng.NewLocked when shared.

package lcg

import (
	"math"

	"github.com/katalvlaran/lvrand/prng"
)

// Generator is a linear congruential generator stepping with Schrage's
// decomposition. The zero value is not usable; construct with New.
type Generator struct {
	params Params
	s      schrage
	warmup int
	x      int64
}

var _ prng.Source = (*Generator)(nil)

// New validates the configuration and returns a seeded generator.
//
// Defaults: MinStd2 parameters, no warm-up, clock-derived seed.
//
// Errors:
//   - ErrModulus, ErrMultiplier, ErrIncrement, ErrSchrage, ErrWarmup
//     (all match ErrConfiguration).
//   - ErrZeroState if an explicit seed reduces to 0 and c == 0.
//
// Example:
//
//	g, err := lcg.New(lcg.WithParams(lcg.MinStd), lcg.WithSeed(12345))
func New(opts ...Option) (*Generator, error) {
	cfg := newConfig(opts...)

	if err := cfg.params.Validate(); err != nil {
		return nil, lcgErrorf(opNew, err)
	}
	if cfg.warmup < 0 {
		return nil, lcgErrorf(opNew, ErrWarmup)
	}

	g := &Generator{
		params: cfg.params,
		s:      newSchrage(cfg.params.M, cfg.params.A),
		warmup: cfg.warmup,
	}

	seed := cfg.seed
	if !cfg.seeded {
		seed = DefaultSeed(cfg.nowFunc(), cfg.params)
	}
	if err := g.Seed(seed); err != nil {
		return nil, lcgErrorf(opNew, err)
	}
	return g, nil
}

// Seed sets the state to value mod m (Euclidean, so negative seeds wrap into
// [0, m)) and then discards the configured warm-up values.
//
// Errors:
//   - ErrZeroState if the reduced seed is 0 and the generator is purely
//     multiplicative. The state is left unchanged.
func (g *Generator) Seed(value int64) error {
	x := reduce(value, g.params.M)
	if x == 0 && g.params.Multiplicative() {
		return lcgErrorf(opSeed, ErrZeroState)
	}
	g.x = x
	for i := 0; i < g.warmup; i++ {
		g.step()
	}
	return nil
}

// step advances the state once.
func (g *Generator) step() {
	y := g.s.mulMod(g.x)
	if g.params.C != 0 {
		y = addMod(y, g.params.C, g.params.M)
	}
	g.x = y
}

// Next advances the state and returns it, an integer in [0, m).
func (g *Generator) Next() int64 {
	g.step()
	return g.x
}

// Random advances the state and returns x/m, a float in [0, 1).
// For multiplicative parameters the result is never 0.
func (g *Generator) Random() float64 {
	g.step()
	v := float64(g.x) / float64(g.params.M)
	if v >= 1 { // moduli above 2^53 can round (m-1)/m up to 1
		v = math.Nextafter(1, 0)
	}
	return v
}

// State returns the current state without advancing it.
func (g *Generator) State() int64 {
	return g.x
}

// Params returns the recurrence parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Warmup returns the number of values discarded after each Seed.
func (g *Generator) Warmup() int {
	return g.warmup
}
