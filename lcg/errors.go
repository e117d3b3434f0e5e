// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// errors.go — sentinel errors for the lcg package.
//
// Error policy:
//   • Two classes: ErrConfiguration (bad parameters, raised once by New) and
//     prng.ErrDomain (bad runtime arguments, e.g. a zero seed for c == 0).
//   • Every detail sentinel wraps its class, so errors.Is works on both.
//   • Context is attached with lcgErrorf(op, err); sentinels are never
//     rebuilt with formatted parameter values.

package lcg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrand/prng"
)

// ErrConfiguration is the class of every construction-time parameter error.
// It is fatal: New never returns a usable generator alongside it.
var ErrConfiguration = errors.New("lcg: invalid configuration")

var (
	// ErrModulus indicates m <= 0.
	ErrModulus = fmt.Errorf("%w: modulus must be positive", ErrConfiguration)

	// ErrMultiplier indicates a <= 0 or a >= m.
	ErrMultiplier = fmt.Errorf("%w: multiplier must satisfy 0 < a < m", ErrConfiguration)

	// ErrIncrement indicates c < 0 or c >= m.
	ErrIncrement = fmt.Errorf("%w: increment must satisfy 0 <= c < m", ErrConfiguration)

	// ErrSchrage indicates r >= q for q = m div a, r = m mod a. Without r < q
	// the decomposition can no longer bound its intermediates by m.
	ErrSchrage = fmt.Errorf("%w: Schrage condition r < q violated", ErrConfiguration)

	// ErrWarmup indicates a negative warm-up count.
	ErrWarmup = fmt.Errorf("%w: warm-up must be non-negative", ErrConfiguration)
)

// ErrZeroState indicates a seed that reduces to 0 modulo m on a purely
// multiplicative generator (c == 0), where 0 is a fixed point.
// It matches prng.ErrDomain.
var ErrZeroState = fmt.Errorf("%w: seed reduces to the absorbing zero state", prng.ErrDomain)

// Operation names used as error prefixes.
const (
	opNew  = "New"
	opSeed = "Seed"
)

// lcgErrorf prefixes err with the operation name.
func lcgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
