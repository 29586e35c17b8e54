package game

import "fmt"

// Rules holds the per-round budgets.
type Rules struct {
	Hands    int // Hands that may be played in a round
	Discards int // Discard-and-redraw actions shared by the whole round
	Target   int // Chips needed to clear the round
}

// DefaultRules returns the standard round: 3 hands, 2 discards, 100 chips.
func DefaultRules() Rules {
	return Rules{
		Hands:    3,
		Discards: 2,
		Target:   100,
	}
}

// Validate checks that the rules describe a playable round.
func (r Rules) Validate() error {
	if r.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", r.Hands)
	}
	if r.Discards < 0 {
		return fmt.Errorf("discards cannot be negative, got %d", r.Discards)
	}
	if r.Target <= 0 {
		return fmt.Errorf("target must be positive, got %d", r.Target)
	}
	return nil
}
