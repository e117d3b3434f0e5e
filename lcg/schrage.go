// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// schrage.go — overflow-free modular multiplication.
//
// Schrage's identity: with m = a·q + r (q = m div a, r = m mod a) and
// x = k·q + (x mod q),
//
//	a·x mod m = a·(x mod q) − k·r           (+m if negative)
//
// Both terms are bounded by m when r < q:
//   - a·(x mod q) <= a·(q−1) < m
//   - k·r = (x div q)·r <= x·r/q < x < m
//
// so the computation never forms a·x and never leaves [−m, m].

package lcg

// schrage holds the precomputed decomposition of one modulus/multiplier pair.
type schrage struct {
	m, a, q, r int64
}

// newSchrage precomputes q and r. The caller guarantees 0 < a < m and r < q.
func newSchrage(m, a int64) schrage {
	return schrage{m: m, a: a, q: m / a, r: m % a}
}

// mulMod returns (a·x) mod m for 0 <= x < m.
//
// Complexity: O(1), two divisions.
func (s schrage) mulMod(x int64) int64 {
	k := x / s.q
	y := s.a*(x-k*s.q) - k*s.r
	if y < 0 {
		y += s.m
	}
	return y
}

// addMod returns (y + c) mod m for 0 <= y, c < m without overflowing.
func addMod(y, c, m int64) int64 {
	if y >= m-c {
		return y - (m - c)
	}
	return y + c
}

// MulMod computes (a·x) mod m with Schrage's method. It validates nothing
// beyond what the decomposition needs and reports ok == false when the
// inputs fall outside 0 < a < m, 0 <= x < m, r < q.
func MulMod(a, x, m int64) (y int64, ok bool) {
	if m <= 0 || a <= 0 || a >= m || x < 0 || x >= m {
		return 0, false
	}
	s := newSchrage(m, a)
	if s.r >= s.q {
		return 0, false
	}
	return s.mulMod(x), true
}
