// Package statistics aggregates the results of simulated rounds.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/drawround/poker"
)

// RoundResult represents the outcome of a single simulated round
type RoundResult struct {
	Seed      int64            // RNG seed for this round (for replay)
	Chips     int              // Final chip count
	Target    int              // Chips needed to clear
	Cleared   bool             // Chips >= Target after the last hand
	Discards  int              // Discards actually used
	HandTypes []poker.HandType // Category of every hand played
}

// Statistics tracks aggregate results over many rounds
type Statistics struct {
	Rounds   int
	Cleared  int
	SumChips float64
	SumSq    float64   // Sum of squares for variance calculation
	Values   []float64 // Final chips of every round for median/percentiles

	Discards  int                    // Total discards used
	HandTypes map[poker.HandType]int // Occurrences of each played hand type
	Hands     int                    // Total hands played
	MaxChips  int
	BestSeed  int64 // Seed of the round with MaxChips
}

// Add incorporates a round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	chips := float64(result.Chips)
	s.Rounds++
	s.SumChips += chips
	s.SumSq += chips * chips
	s.Values = append(s.Values, chips)

	if result.Cleared {
		s.Cleared++
	}
	s.Discards += result.Discards

	if s.HandTypes == nil {
		s.HandTypes = make(map[poker.HandType]int)
	}
	for _, ht := range result.HandTypes {
		s.HandTypes[ht]++
		s.Hands++
	}

	if s.Rounds == 1 || result.Chips > s.MaxChips {
		s.MaxChips = result.Chips
		s.BestSeed = result.Seed
	}
}

// ClearRate returns the fraction of rounds that reached the target
func (s *Statistics) ClearRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Cleared) / float64(s.Rounds)
}

// Mean returns the mean final chip count
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumChips / float64(s.Rounds)
}

// Variance returns the sample variance of final chips
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of final chips
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median final chip count
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// HandTypeRate returns how often a hand type was played, per hand
func (s *Statistics) HandTypeRate(ht poker.HandType) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.HandTypes[ht]) / float64(s.Hands)
}

// Validate checks that the aggregates are consistent
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match rounds (%d)", len(s.Values), s.Rounds)
	}
	if s.Cleared > s.Rounds {
		return fmt.Errorf("cleared rounds (%d) exceed total rounds (%d)", s.Cleared, s.Rounds)
	}

	total := 0
	for _, n := range s.HandTypes {
		total += n
	}
	if total != s.Hands {
		return fmt.Errorf("hand type total (%d) does not match hands played (%d)", total, s.Hands)
	}
	return nil
}

// Summary is a serialisable view of the statistics.
type Summary struct {
	Rounds      int            `json:"rounds"`
	Cleared     int            `json:"cleared"`
	ClearRate   float64        `json:"clear_rate"`
	MeanChips   float64        `json:"mean_chips"`
	MedianChips float64        `json:"median_chips"`
	StdDev      float64        `json:"std_dev"`
	CI95Low     float64        `json:"ci95_low"`
	CI95High    float64        `json:"ci95_high"`
	MaxChips    int            `json:"max_chips"`
	BestSeed    int64          `json:"best_seed"`
	Discards    int            `json:"discards"`
	HandTypes   map[string]int `json:"hand_types"`
}

// Summary returns the aggregate figures keyed for reporting
func (s *Statistics) Summary() Summary {
	low, high := s.ConfidenceInterval95()
	types := make(map[string]int, len(poker.HandTypes))
	for _, ht := range poker.HandTypes {
		types[ht.String()] = s.HandTypes[ht]
	}
	return Summary{
		Rounds:      s.Rounds,
		Cleared:     s.Cleared,
		ClearRate:   s.ClearRate(),
		MeanChips:   s.Mean(),
		MedianChips: s.Median(),
		StdDev:      s.StdDev(),
		CI95Low:     low,
		CI95High:    high,
		MaxChips:    s.MaxChips,
		BestSeed:    s.BestSeed,
		Discards:    s.Discards,
		HandTypes:   types,
	}
}
