package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		hand      string
		wantType  HandType
		wantLabel string
		wantValue int
	}{
		{"four of a kind", "AsAhAdAcKs", FourOfAKind, "Four of a Kind", 50},
		{"full house", "2s2h2d5c5s", FullHouse, "Full House", 25},
		{"three of a kind", "3s3h3d7c9s", ThreeOfAKind, "Three of a Kind", 10},
		{"two pair", "4s4h9d9c2s", TwoPair, "Two Pair", 5},
		{"pair", "6s6h2d8cKs", Pair, "Pair", 2},
		{"high card", "2s5h7d9cJs", HighCard, "High Card", 1},
		{"order does not matter", "5c2s5s2h2d", FullHouse, "Full House", 25},
		{"flush is not recognised", "2h5h7h9hJh", HighCard, "High Card", 1},
		{"straight is not recognised", "9sTh Jd Qc Ks", HighCard, "High Card", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(MustParseCards(tt.hand))
			assert.Equal(t, tt.wantType, score.Type)
			assert.Equal(t, tt.wantLabel, score.Label)
			assert.Equal(t, tt.wantValue, score.Value)
		})
	}
}

func TestEvaluateNonStandardSizes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, HighCard, Evaluate(nil).Type)
	assert.Equal(t, Pair, Evaluate(MustParseCards("AsAh")).Type)
}

func TestHandTypeOrdering(t *testing.T) {
	t.Parallel()
	for i := 1; i < len(HandTypes); i++ {
		assert.Greater(t, HandTypes[i].Chips(), HandTypes[i-1].Chips(),
			"%s should outscore %s", HandTypes[i], HandTypes[i-1])
	}
	assert.Equal(t, "Unknown", HandType(99).String())
}
