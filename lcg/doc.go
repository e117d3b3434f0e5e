// Package lcg implements a deterministic linear congruential generator
//
//	x_{n+1} = (a·x_n + c) mod m
//
// whose multiplication is computed with Schrage's decomposition, so a·x is
// never formed and no intermediate leaves [−m, m].
//
// ✨ Key features:
//   - presets MinStd (a=16807), MinStd2 (a=48271, default) and Classic
//     (a=1597, c=51749), all over the Mersenne prime 2^31−1
//   - arbitrary validated parameters via WithParams / WithModulus / ...
//   - optional warm-up after each Seed (WithWarmup, DefaultWarmup = 20)
//   - implements prng.Source, so every prng sampling function accepts it
//
// Policies:
//
//	Seed reduces any int64 modulo m (negative seeds wrap). A reduced seed of 0
//	is rejected with ErrZeroState when c == 0, because 0 maps to itself.
//	Random returns x/m, the half-open range [0,1); for c == 0 it is (0,1).
//
// ⚙️ Usage:
//
//	g, err := lcg.New(lcg.WithSeed(12345))
//	if err != nil {
//	  // errors.Is(err, lcg.ErrConfiguration) for bad parameters
//	}
//	u := g.Random()
//
// Not suitable for cryptographic use.
package lcg
