package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/lox/drawround/poker"
)

// Strategy decides which cards to hold before a discard.
type Strategy interface {
	Name() string
	Holds(hand []poker.Card, rng *rand.Rand) [poker.HandSize]bool
}

// PairsStrategy holds every card whose rank appears more than once and
// redraws the rest.
type PairsStrategy struct{}

func (PairsStrategy) Name() string { return "pairs" }

func (PairsStrategy) Holds(hand []poker.Card, _ *rand.Rand) [poker.HandSize]bool {
	counts := make(map[poker.Rank]int, len(hand))
	for _, c := range hand {
		counts[c.Rank]++
	}

	var held [poker.HandSize]bool
	for i, c := range hand {
		if i < poker.HandSize && counts[c.Rank] >= 2 {
			held[i] = true
		}
	}
	return held
}

// StandStrategy never discards.
type StandStrategy struct{}

func (StandStrategy) Name() string { return "stand" }

func (StandStrategy) Holds(hand []poker.Card, _ *rand.Rand) [poker.HandSize]bool {
	var held [poker.HandSize]bool
	for i := range hand {
		if i < poker.HandSize {
			held[i] = true
		}
	}
	return held
}

// RandomStrategy holds each card with even odds.
type RandomStrategy struct{}

func (RandomStrategy) Name() string { return "random" }

func (RandomStrategy) Holds(hand []poker.Card, rng *rand.Rand) [poker.HandSize]bool {
	var held [poker.HandSize]bool
	for i := range hand {
		if i < poker.HandSize {
			held[i] = rng.IntN(2) == 1
		}
	}
	return held
}

var strategies = map[string]Strategy{
	"pairs":  PairsStrategy{},
	"stand":  StandStrategy{},
	"random": RandomStrategy{},
}

// StrategyNames returns the registered strategy names, sorted.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupStrategy returns the strategy registered under name.
func LookupStrategy(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, StrategyNames())
	}
	return s, nil
}
