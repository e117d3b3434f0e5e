package prng

import (
	"errors"
	"fmt"
)

// ErrDomain is the umbrella for out-of-domain arguments passed to a Source
// or to a sampling function. Every other sentinel in this package matches it
// through errors.Is, so callers can branch on the class or on the detail.
var ErrDomain = errors.New("prng: argument out of domain")

var (
	// ErrEmptySequence indicates Choice/Choices was given nothing to pick from.
	ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrDomain)

	// ErrInvalidRange indicates a range whose lower bound exceeds its upper bound.
	ErrInvalidRange = fmt.Errorf("%w: lower bound greater than upper bound", ErrDomain)

	// ErrInvalidSampleSize indicates a negative k, or k larger than the population.
	ErrInvalidSampleSize = fmt.Errorf("%w: invalid sample size", ErrDomain)

	// ErrInvalidWeights indicates a weight vector that cannot be normalized:
	// length mismatch, a negative or non-finite entry, or a zero total.
	ErrInvalidWeights = fmt.Errorf("%w: invalid weights", ErrDomain)
)

// Operation names used as error prefixes.
const (
	opRandint = "Randint"
	opUniform = "Uniform"
	opChoice  = "Choice"
	opChoices = "Choices"
	opSample  = "Sample"
	opPerm    = "Perm"
	opDraw    = "Draw"
)

// prngErrorf prefixes err with the operation name, keeping the sentinel
// reachable for errors.Is.
func prngErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
