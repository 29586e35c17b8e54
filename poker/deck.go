package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumSuits * NumRanks

// ErrInsufficientCards is returned when a draw asks for more cards than remain.
var ErrInsufficientCards = errors.New("poker: insufficient cards in deck")

// Deck is an ordered sequence of unique cards drawn from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for reproducible shuffling
}

// NewDeck creates a full 52-card deck and shuffles it with rng.
func NewDeck(rng *rand.Rand) *Deck {
	return NewDeckWithout(rng, nil)
}

// NewDeckWithout creates a shuffled deck holding every card except those in
// exclude. Used when a fresh deck is needed while some cards are still in play.
func NewDeckWithout(rng *rand.Rand, exclude []Card) *Deck {
	skip := make(map[Card]struct{}, len(exclude))
	for _, c := range exclude {
		skip[c] = struct{}{}
	}

	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for suit := range Suit(NumSuits) {
		for rank := Ace; rank <= King; rank++ {
			card := NewCard(rank, suit)
			if _, ok := skip[card]; ok {
				continue
			}
			d.cards = append(d.cards, card)
		}
	}

	d.Shuffle()
	return d
}

// Shuffle permutes the remaining cards uniformly using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the first n cards in order. If fewer than n cards
// remain the deck is left untouched and ErrInsufficientCards is returned.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("poker: negative draw count %d", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(d.cards))
	}

	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// DrawOne removes and returns the top card.
func (d *Deck) DrawOne() (Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
