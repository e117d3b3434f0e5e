// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// params.go — recurrence parameters, presets and validation.

package lcg

// Mersenne31 is 2^31 - 1, the prime modulus shared by all presets.
const Mersenne31 int64 = 1<<31 - 1

// Params fixes the recurrence x' = (A·x + C) mod M.
type Params struct {
	M int64 // modulus, > 0
	A int64 // multiplier, 0 < A < M
	C int64 // increment, 0 <= C < M; 0 selects the multiplicative variant
}

var (
	// MinStd is the Park–Miller "minimal standard" generator (1988).
	MinStd = Params{M: Mersenne31, A: 16807, C: 0}

	// MinStd2 is the Park–Miller revision with a = 48271 (1993).
	// It is the default preset.
	MinStd2 = Params{M: Mersenne31, A: 48271, C: 0}

	// Classic is a mixed generator (c != 0) over the same modulus.
	// Its state can reach 0, so Random may return exactly 0.
	Classic = Params{M: Mersenne31, A: 1597, C: 51749}
)

// presets indexes the named parameter sets.
var presets = map[string]Params{
	"minstd":  MinStd,
	"minstd2": MinStd2,
	"classic": Classic,
}

// Preset looks up a named parameter set ("minstd", "minstd2", "classic").
func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the accepted preset names in a stable order.
func PresetNames() []string {
	return []string{"minstd", "minstd2", "classic"}
}

// Multiplicative reports whether the increment is zero.
func (p Params) Multiplicative() bool {
	return p.C == 0
}

// Validate checks the invariants in a fixed order and returns the first
// violation: modulus → multiplier → increment → Schrage condition.
//
// Errors: ErrModulus, ErrMultiplier, ErrIncrement, ErrSchrage (all match
// ErrConfiguration).
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.M <= 0 {
		return ErrModulus
	}
	if p.A <= 0 || p.A >= p.M {
		return ErrMultiplier
	}
	if p.C < 0 || p.C >= p.M {
		return ErrIncrement
	}
	if q, r := p.M/p.A, p.M%p.A; r >= q {
		return ErrSchrage
	}
	return nil
}
