// SPDX-License-Identifier: MIT

package stattest_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvrand/stattest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromDigits parses "0.ddddd" for v in [0, 99999], the way a sample file
// spells the value.
func fromDigits(v int) float64 {
	x, err := strconv.ParseFloat(fmt.Sprintf("0.%05d", v), 64)
	if err != nil {
		panic(err)
	}
	return x
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		digits int
		want   stattest.Hand
	}{
		{12345, stattest.AllDifferent},
		{98760, stattest.AllDifferent},
		{11234, stattest.OnePair},
		{1230, stattest.OnePair}, // "01230": leading zero counts
		{11223, stattest.TwoPairs},
		{12121, stattest.FullHouse},
		{11123, stattest.ThreeOfAKind},
		{30313, stattest.ThreeOfAKind},
		{11122, stattest.FullHouse},
		{11112, stattest.FourOfAKind},
		{20000, stattest.FourOfAKind},
		{77777, stattest.FiveOfAKind},
		{0, stattest.FiveOfAKind},
		{99999, stattest.FiveOfAKind},
	}
	for _, tc := range tests {
		got, err := stattest.Classify(fromDigits(tc.digits))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "digits %05d", tc.digits)
	}

	h, err := stattest.Classify(0)
	require.NoError(t, err)
	assert.Equal(t, stattest.FiveOfAKind, h)

	h, err = stattest.Classify(math.Nextafter(1, 0))
	require.NoError(t, err)
	assert.Equal(t, stattest.FiveOfAKind, h, "0.99999...")

	for _, bad := range []float64{-0.1, 1, 2, math.NaN(), math.Inf(-1)} {
		_, err := stattest.Classify(bad)
		assert.ErrorIs(t, err, stattest.ErrOutOfUnitRange, "%g", bad)
	}
}

// TestHandProbability_MatchesEnumeration classifies all 10^5 digit strings
// and compares the frequencies with the probability table.
func TestHandProbability_MatchesEnumeration(t *testing.T) {
	t.Parallel()

	counts := make(map[stattest.Hand]int)
	for v := 0; v < 100000; v++ {
		h, err := stattest.Classify(fromDigits(v))
		require.NoError(t, err)
		counts[h]++
	}

	var total float64
	for _, h := range stattest.Hands() {
		p := stattest.HandProbability(h)
		total += p
		assert.InDelta(t, p, float64(counts[h])/100000, 1e-12, h.String())
	}
	assert.InDelta(t, 1.0, total, 1e-12)
	assert.Zero(t, stattest.HandProbability(stattest.Hand(42)))
}

// TestClassify_ExactDecimals covers values whose binary expansion falls just
// below the decimal grid point they were written as.
func TestClassify_ExactDecimals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want stattest.Hand
	}{
		{"0.00030", stattest.FourOfAKind},  // 0.000299999...
		{"0.00120", stattest.ThreeOfAKind}, // 0.001199999...
		{"0.00056", stattest.ThreeOfAKind},
		{"0.29000", stattest.ThreeOfAKind},
		{"0.0003", stattest.FourOfAKind}, // short form pads with zeros
		{"0.57", stattest.ThreeOfAKind},
		{"0.123456789", stattest.AllDifferent}, // extra digits are ignored
		{"1e-7", stattest.FiveOfAKind},
	}
	for _, tc := range tests {
		x, err := strconv.ParseFloat(tc.text, 64)
		require.NoError(t, err)
		got, err := stattest.Classify(x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.text)
	}
}

func TestHand_String(t *testing.T) {
	t.Parallel()

	want := []string{
		"all-different", "one-pair", "two-pairs", "three-of-a-kind",
		"full-house", "four-of-a-kind", "five-of-a-kind",
	}
	for i, h := range stattest.Hands() {
		assert.Equal(t, want[i], h.String())
	}
	assert.Equal(t, "Hand(-1)", stattest.Hand(-1).String())
}

func TestPoker_Counts(t *testing.T) {
	t.Parallel()

	sample := []float64{fromDigits(12345), fromDigits(11234), fromDigits(11234), fromDigits(77777)}
	res, err := stattest.Poker(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 1}, res.Observed)
	assert.InDelta(t, 4*0.3024, res.Expected[stattest.AllDifferent], 1e-12)
	assert.InDelta(t, stattest.ChiSquaredQuantile(0.95, 6), res.Critical, 1e-12)
}
