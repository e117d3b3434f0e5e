// Package prng defines the uniform-source contract and the sampling layer
// built on top of it.
//
// 🚀 What is a Source?
//
//	Anything that can be seeded and returns a float64 in [0,1).
//	The concrete generator lives in package lcg; tests and consumers may
//	plug in their own implementation.
//
// ✨ Sampling operations (all pure functions of a Source):
//   - Randint(src, a, b)          — integer in [a, b], inclusive
//   - Uniform(src, a, b)          — float in [a, b)
//   - Choice(src, seq)            — one element, uniformly
//   - Choices(src, pop, w, k)     — k elements with replacement, optionally weighted
//   - Shuffle(src, x)             — in-place Fisher–Yates
//   - Sample(src, pop, k)         — k distinct elements, partial Fisher–Yates
//   - Gauss(src, mu, sigma)       — normal variate via Box–Muller
//   - Perm(src, n)                — shuffled 0..n-1
//   - Draw(src, n)                — materialized sample for statistical tests
//
// ⚙️ Usage:
//
//	g, err := lcg.New(lcg.WithSeed(12345))
//	if err != nil {
//	  // handle lcg.ErrConfiguration
//	}
//	n, _ := prng.Randint(g, 1, 6)
//	prng.Shuffle(g, players)
//
// Concurrency:
//
//	A Source is not assumed to be goroutine-safe. Give every goroutine its
//	own generator, or wrap a shared one with NewLocked.
//
// There is no package-level default generator: callers own an instance and
// pass it explicitly, which keeps runs reproducible.
package prng
