package statistics

import (
	"math"
	"testing"

	"github.com/lox/drawround/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.ClearRate())
	assert.Zero(t, stats.HandTypeRate(poker.Pair))
	assert.Error(t, stats.Validate())
}

func TestStatistics_SingleRound(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{
		Seed:      12345,
		Chips:     27,
		Target:    100,
		Discards:  2,
		HandTypes: []poker.HandType{poker.FullHouse, poker.Pair, poker.HighCard},
	})

	require.NoError(t, stats.Validate())
	assert.Equal(t, 1, stats.Rounds)
	assert.Equal(t, 27.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 27.0, stats.Median())
	assert.Equal(t, 3, stats.Hands)
	assert.Equal(t, 2, stats.Discards)
	assert.Equal(t, 27, stats.MaxChips)
	assert.Equal(t, int64(12345), stats.BestSeed)
	assert.InDelta(t, 1.0/3.0, stats.HandTypeRate(poker.Pair), 1e-9)
}

func TestStatistics_MultipleRounds(t *testing.T) {
	stats := &Statistics{}
	chips := []int{10, 20, 30, 40, 150}
	for i, c := range chips {
		stats.Add(RoundResult{
			Seed:      int64(i),
			Chips:     c,
			Target:    100,
			Cleared:   c >= 100,
			HandTypes: []poker.HandType{poker.HighCard},
		})
	}

	require.NoError(t, stats.Validate())
	assert.Equal(t, 50.0, stats.Mean())
	assert.Equal(t, 30.0, stats.Median())
	assert.InDelta(t, 0.2, stats.ClearRate(), 1e-9)
	assert.Equal(t, 150, stats.MaxChips)
	assert.Equal(t, int64(4), stats.BestSeed)

	// Sample variance of {10,20,30,40,150}
	assert.InDelta(t, 3250.0, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(3250.0), stats.StdDev(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())

	assert.Equal(t, 10.0, stats.Percentile(0))
	assert.Equal(t, 150.0, stats.Percentile(1))
	assert.Equal(t, 15.0, stats.Percentile(0.125))
}

func TestStatistics_Summary(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Chips: 120, Target: 100, Cleared: true, HandTypes: []poker.HandType{poker.FourOfAKind, poker.FourOfAKind, poker.TwoPair}})

	sum := stats.Summary()
	assert.Equal(t, 1, sum.Rounds)
	assert.Equal(t, 1.0, sum.ClearRate)
	assert.Equal(t, 2, sum.HandTypes["Four of a Kind"])
	assert.Equal(t, 1, sum.HandTypes["Two Pair"])
	assert.Equal(t, 0, sum.HandTypes["High Card"])
	assert.Len(t, sum.HandTypes, len(poker.HandTypes))
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Chips: 3, HandTypes: []poker.HandType{poker.Pair}})
	stats.Hands = 5
	assert.ErrorContains(t, stats.Validate(), "hand type total")
}
