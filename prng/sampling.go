package prng

import (
	"math"
)

// Randint returns an integer N with a <= N <= b, computed as
// a + floor(Random()*(b-a+1)).
//
// Errors:
//   - ErrInvalidRange if a > b.
//
// Complexity: O(1), one draw.
func Randint(src Source, a, b int) (int, error) {
	if a > b {
		return 0, prngErrorf(opRandint, ErrInvalidRange)
	}
	return a + offset(src, uint64(b-a)+1), nil
}

// offset maps one draw onto [0, span). The clamp only matters for spans so
// wide that the product rounds up to span itself. span == 0 stands for the
// full 2^64 range (Randint(math.MinInt, math.MaxInt)); the caller's addition
// wraps back into [a, b].
func offset(src Source, span uint64) int {
	if span == 0 {
		return int(uint64(src.Random() * two64))
	}
	k := uint64(src.Random() * float64(span))
	if k >= span {
		k = span - 1
	}
	return int(k)
}

// Uniform returns a + (b-a)*Random(), a float in [a, b).
// Uniform(a, a) returns a.
//
// Errors:
//   - ErrInvalidRange if a > b.
//
// Complexity: O(1), one draw.
func Uniform(src Source, a, b float64) (float64, error) {
	if a > b {
		return 0, prngErrorf(opUniform, ErrInvalidRange)
	}
	return a + (b-a)*src.Random(), nil
}

// Choice returns seq[Randint(0, len(seq)-1)].
//
// Errors:
//   - ErrEmptySequence if seq is empty.
func Choice[T any](src Source, seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, prngErrorf(opChoice, ErrEmptySequence)
	}
	return seq[offset(src, uint64(len(seq)))], nil
}

// Choices draws k elements from population with replacement.
//
// With weights == nil every element is equally likely (k calls to Choice).
// Otherwise weights[i] is the relative weight of population[i]: the weights
// are normalized into a cumulative table and, for each draw, the first
// cumulative entry >= Random() selects the element.
//
// Errors:
//   - ErrEmptySequence     if population is empty.
//   - ErrInvalidSampleSize if k < 0.
//   - ErrInvalidWeights    if len(weights) != len(population), any weight is
//     negative, NaN or infinite, or all weights are zero.
//
// Complexity: O(n + k·n) time for the weighted path, O(n) extra space.
func Choices[T any](src Source, population []T, weights []float64, k int) ([]T, error) {
	if len(population) == 0 {
		return nil, prngErrorf(opChoices, ErrEmptySequence)
	}
	if k < 0 {
		return nil, prngErrorf(opChoices, ErrInvalidSampleSize)
	}

	out := make([]T, k)
	if weights == nil {
		for i := range out {
			out[i] = population[offset(src, uint64(len(population)))]
		}
		return out, nil
	}

	cum, err := cumulativeWeights(weights, len(population))
	if err != nil {
		return nil, prngErrorf(opChoices, err)
	}

	last := len(cum) - 1
	for i := range out {
		r := src.Random()
		pick := last // rounding can leave cum[last] a hair below 1
		for j, cw := range cum {
			if r <= cw {
				pick = j
				break
			}
		}
		out[i] = population[pick]
	}
	return out, nil
}

// cumulativeWeights validates weights and returns the normalized running sums.
func cumulativeWeights(weights []float64, n int) ([]float64, error) {
	if len(weights) != n {
		return nil, ErrInvalidWeights
	}

	var total float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrInvalidWeights
		}
		total += w
	}
	if total <= 0 || math.IsInf(total, 0) {
		return nil, ErrInvalidWeights
	}

	cum := make([]float64, n)
	var run float64
	for i, w := range weights {
		run += w
		cum[i] = run / total
	}
	return cum, nil
}

// Shuffle permutes x in place with the Fisher–Yates algorithm, walking i
// from len(x)-1 down to 1 and swapping x[i] with x[Randint(0, i)].
// The multiset of elements is never changed.
//
// Complexity: O(n) time, O(1) extra space, n-1 draws.
func Shuffle[T any](src Source, x []T) {
	for i := len(x) - 1; i > 0; i-- {
		j := offset(src, uint64(i)+1)
		x[i], x[j] = x[j], x[i]
	}
}

// Sample returns k distinct positions of population, chosen without
// replacement. It runs a partial Fisher–Yates pass over a copy: for i in
// 0..k-1, swap position i with Randint(i, n-1), then keep the prefix.
// population itself is not modified.
//
// Errors:
//   - ErrInvalidSampleSize if k < 0 or k > len(population).
//
// Complexity: O(n) time and space for the copy, k draws.
func Sample[T any](src Source, population []T, k int) ([]T, error) {
	n := len(population)
	if k < 0 || k > n {
		return nil, prngErrorf(opSample, ErrInvalidSampleSize)
	}

	pool := make([]T, n)
	copy(pool, population)
	for i := 0; i < k; i++ {
		j := i + offset(src, uint64(n-i))
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k], nil
}

// Gauss returns mu + sigma*z0, where z0 is a standard normal variate from
// the Box–Muller transform:
//
//	z0 = sqrt(-2·ln(u1)) · cos(2π·u2)
//
// Two fresh draws are consumed per call. A u1 of exactly 0 (possible only for
// sources that can emit 0) is redrawn, since ln(0) is undefined.
func Gauss(src Source, mu, sigma float64) float64 {
	u1 := src.Random()
	for u1 == 0 {
		u1 = src.Random()
	}
	u2 := src.Random()
	z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	return mu + sigma*z0
}

// Perm returns a uniformly shuffled permutation of 0..n-1.
//
// Errors:
//   - ErrInvalidSampleSize if n < 0.
func Perm(src Source, n int) ([]int, error) {
	if n < 0 {
		return nil, prngErrorf(opPerm, ErrInvalidSampleSize)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(src, p)
	return p, nil
}

// Draw collects n successive Random values. The returned slice is owned by
// the caller and is what the stattest package consumes.
//
// Errors:
//   - ErrInvalidSampleSize if n < 0.
func Draw(src Source, n int) ([]float64, error) {
	if n < 0 {
		return nil, prngErrorf(opDraw, ErrInvalidSampleSize)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = src.Random()
	}
	return out, nil
}
