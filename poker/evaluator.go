package poker

import "sort"

// HandSize is the number of cards in a playable hand.
const HandSize = 5

// HandType enumerates the recognised hand categories ordered from weakest to
// strongest. Straights and flushes are not part of this variant.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
)

// HandTypes lists every hand type from weakest to strongest.
var HandTypes = []HandType{HighCard, Pair, TwoPair, ThreeOfAKind, FullHouse, FourOfAKind}

// String returns a human-readable hand description.
func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	default:
		return "Unknown"
	}
}

// Chips returns the number of chips the hand type is worth.
func (ht HandType) Chips() int {
	switch ht {
	case FourOfAKind:
		return 50
	case FullHouse:
		return 25
	case ThreeOfAKind:
		return 10
	case TwoPair:
		return 5
	case Pair:
		return 2
	default:
		return 1
	}
}

// Score is the result of evaluating a hand.
type Score struct {
	Type  HandType
	Label string
	Value int
}

// Evaluate classifies a hand by how often each rank occurs. Suits are
// ignored. The most specific category wins.
func Evaluate(hand []Card) Score {
	ht := classify(rankCounts(hand))
	return Score{Type: ht, Label: ht.String(), Value: ht.Chips()}
}

// rankCounts returns the occurrence count of every rank present, highest first.
func rankCounts(hand []Card) []int {
	var tally [NumRanks + 1]int
	for _, c := range hand {
		if c.Rank.Valid() {
			tally[c.Rank]++
		}
	}

	counts := make([]int, 0, HandSize)
	for _, n := range tally {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

func classify(counts []int) HandType {
	first, second := 0, 0
	if len(counts) > 0 {
		first = counts[0]
	}
	if len(counts) > 1 {
		second = counts[1]
	}

	switch {
	case first >= 4:
		return FourOfAKind
	case first == 3 && second == 2:
		return FullHouse
	case first == 3:
		return ThreeOfAKind
	case first == 2 && second == 2:
		return TwoPair
	case first == 2:
		return Pair
	default:
		return HighCard
	}
}
