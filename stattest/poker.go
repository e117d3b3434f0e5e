// SPDX-License-Identifier: MIT

package stattest

import (
	"bytes"
	"fmt"
	"strconv"
)

// Hand is the repetition pattern of the first PokerDigits decimal digits.
type Hand int

// Hands, ordered from most to least distinct digits.
const (
	AllDifferent Hand = iota // abcde
	OnePair                  // aabcd
	TwoPairs                 // aabbc
	ThreeOfAKind             // aaabc
	FullHouse                // aaabb
	FourOfAKind              // aaaab
	FiveOfAKind              // aaaaa

	numHands = int(FiveOfAKind) + 1
)

// PokerDigits is the number of decimal digits classified per value.
const PokerDigits = 5

// handProbabilities for 5 digits over 10 equiprobable symbols.
var handProbabilities = [numHands]float64{
	AllDifferent: 0.3024,
	OnePair:      0.5040,
	TwoPairs:     0.1080,
	ThreeOfAKind: 0.0720,
	FullHouse:    0.0090,
	FourOfAKind:  0.0045,
	FiveOfAKind:  0.0001,
}

var handNames = [numHands]string{
	AllDifferent: "all-different",
	OnePair:      "one-pair",
	TwoPairs:     "two-pairs",
	ThreeOfAKind: "three-of-a-kind",
	FullHouse:    "full-house",
	FourOfAKind:  "four-of-a-kind",
	FiveOfAKind:  "five-of-a-kind",
}

// String returns the hyphenated hand name, e.g. "full-house".
func (h Hand) String() string {
	if h < 0 || int(h) >= numHands {
		return fmt.Sprintf("Hand(%d)", int(h))
	}
	return handNames[h]
}

// Hands lists every hand in order.
func Hands() []Hand {
	out := make([]Hand, numHands)
	for i := range out {
		out[i] = Hand(i)
	}
	return out
}

// HandProbability returns the probability of h under independence, or 0 for
// an unknown hand.
func HandProbability(h Hand) float64 {
	if h < 0 || int(h) >= numHands {
		return 0
	}
	return handProbabilities[h]
}

// Classify returns the hand of x's first five decimal digits, read from the
// shortest decimal representation of x and right-padded with zeros
// (0.0123 → "01230").
//
// Errors:
//   - ErrOutOfUnitRange unless 0 <= x < 1 (NaN included).
func Classify(x float64) (Hand, error) {
	if !(x >= 0 && x < 1) {
		return 0, statErrorf(opClassify, fmt.Errorf("%w: %g", ErrOutOfUnitRange, x))
	}
	return classifyDigits(digitsOf(x)), nil
}

// digitsOf extracts the first PokerDigits decimal digits of x in [0,1)
// from its shortest decimal form, so a value parsed from "0.00030" yields
// 0,0,0,3,0 rather than the 0,0,0,2,9 of its binary expansion. Missing
// digits are zero.
func digitsOf(x float64) [PokerDigits]int {
	var buf [32]byte
	s := strconv.AppendFloat(buf[:0], x, 'f', -1, 64)
	var d [PokerDigits]int
	if dot := bytes.IndexByte(s, '.'); dot >= 0 {
		frac := s[dot+1:]
		for i := 0; i < PokerDigits && i < len(frac); i++ {
			d[i] = int(frac[i] - '0')
		}
	}
	return d
}

// classifyDigits maps the multiset of digit repetitions onto a Hand using
// the number of distinct digits and the largest repetition.
func classifyDigits(d [PokerDigits]int) Hand {
	var counts [10]int
	for _, v := range d {
		counts[v]++
	}
	distinct, most := 0, 0
	for _, c := range counts {
		if c > 0 {
			distinct++
		}
		if c > most {
			most = c
		}
	}

	switch distinct {
	case 5:
		return AllDifferent
	case 4:
		return OnePair
	case 3:
		if most == 2 {
			return TwoPairs
		}
		return ThreeOfAKind
	case 2:
		if most == 3 {
			return FullHouse
		}
		return FourOfAKind
	default:
		return FiveOfAKind
	}
}

// Poker tests independence by classifying each value into a Hand and
// comparing the hand counts with their probabilities.
// Implementation:
//   - Stage 1: Validate (non-empty, every value in [0,1)) and classify.
//   - Stage 2: Statistic Σ(O-E)²/E over all seven hands, E = n·p(hand);
//     critical value is the (1-α)-quantile of χ² with 6 degrees of freedom.
//
// Verdict:
//   - Pass iff Statistic <= Critical.
//   - Inconclusive when the expected counts are too small (Cochran's rule);
//     five-of-a-kind needs n >= 10,000 to expect one observation.
//
// Errors:
//   - ErrEmptySample, ErrOutOfUnitRange.
//
// Complexity: O(n).
func Poker(sample []float64, opts ...Option) (PokerResult, error) {
	cfg := newConfig(opts...)

	// Stage 1 (Validate and classify).
	n := len(sample)
	if n == 0 {
		return PokerResult{}, statErrorf(opPoker, ErrEmptySample)
	}
	observed := make([]int, numHands)
	for i, x := range sample {
		h, err := Classify(x)
		if err != nil {
			return PokerResult{}, statErrorf(opPoker, fmt.Errorf("index %d: %w", i, err))
		}
		observed[h]++
	}

	// Stage 2 (Statistic and decision).
	expected := make([]float64, numHands)
	for h, p := range handProbabilities {
		expected[h] = float64(n) * p
	}

	res := PokerResult{
		Result: Result{
			Name:      "poker",
			N:         n,
			Statistic: pearson(observed, expected),
			Critical:  ChiSquaredQuantile(1-cfg.alpha, numHands-1),
			Alpha:     cfg.alpha,
		},
		Observed: observed,
		Expected: expected,
	}
	res.settle(res.Statistic <= res.Critical, cochranNote(expected))
	return res, nil
}
