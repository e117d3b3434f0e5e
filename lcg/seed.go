// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// seed.go — seed derivation helpers.

package lcg

import "time"

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer. Nearby inputs (consecutive milliseconds,
// consecutive stream ids) map to well-separated outputs, which matters for a
// generator whose first outputs are a linear function of the seed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DefaultSeed derives a seed from a point in time (Unix milliseconds),
// reduced into [1, m-1] for the given parameters so it is always accepted by
// Seed, including for multiplicative generators.
func DefaultSeed(t time.Time, p Params) int64 {
	s := reduce(DeriveSeed(t.UnixMilli(), 0), p.M)
	if s == 0 {
		s = 1
	}
	return s
}

// reduce returns v mod m in [0, m) (Euclidean remainder).
func reduce(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
