// SPDX-License-Identifier: MIT

package stattest

import (
	"errors"
	"fmt"
)

// ErrInvalidSample is the class of every input a test cannot evaluate.
// Degenerate-but-evaluable samples are not errors; they produce an
// Inconclusive verdict.
var ErrInvalidSample = errors.New("stattest: invalid sample")

var (
	// ErrEmptySample indicates a sample with no observations.
	ErrEmptySample = fmt.Errorf("%w: empty sample", ErrInvalidSample)

	// ErrTooFewObservations indicates Variance received fewer than 2 values.
	ErrTooFewObservations = fmt.Errorf("%w: at least two observations required", ErrInvalidSample)

	// ErrNonFinite indicates a NaN or ±Inf observation.
	ErrNonFinite = fmt.Errorf("%w: non-finite observation", ErrInvalidSample)

	// ErrOutOfUnitRange indicates an observation outside the unit interval
	// (KolmogorovSmirnov: [0,1]; Poker: [0,1)).
	ErrOutOfUnitRange = fmt.Errorf("%w: observation outside the unit interval", ErrInvalidSample)
)

// Operation names used as error prefixes.
const (
	opChiSquare = "ChiSquare"
	opKS        = "KolmogorovSmirnov"
	opVariance  = "Variance"
	opPoker     = "Poker"
	opClassify  = "Classify"
)

// statErrorf prefixes err with the operation name.
func statErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
