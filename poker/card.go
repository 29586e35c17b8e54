package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("poker: invalid card")

// Suit is one of the four card suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is Hearts or Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank from Ace (1) to King (13).
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks per suit.
const NumRanks = 13

// String returns the rank label used on the card face.
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	default:
		return "?"
	}
}

// Valid reports whether r is within Ace..King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// IsFace reports whether the rank is Jack, Queen or King.
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// Card is an immutable playing card. Two cards are equal when both suit and
// rank match, so Card can be compared with == and used as a map key.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card as rank followed by suit symbol, e.g. "A♠" or "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed reports whether the card is a red suit.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a card such as "As", "Th", "10h" or "Q♦".
// Ranks: A 2-9 T/10 J Q K. Suits: s h d c or their symbols.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 || len(runes) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, ok := parseRank(string(runes[:len(runes)-1]))
	if !ok {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}
	suit, ok := parseSuit(runes[len(runes)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}
	return NewCard(rank, suit), nil
}

func parseRank(s string) (Rank, bool) {
	switch strings.ToUpper(s) {
	case "A", "1":
		return Ace, true
	case "2":
		return Two, true
	case "3":
		return Three, true
	case "4":
		return Four, true
	case "5":
		return Five, true
	case "6":
		return Six, true
	case "7":
		return Seven, true
	case "8":
		return Eight, true
	case "9":
		return Nine, true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	}
	return 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 's', 'S', '♠':
		return Spades, true
	case 'h', 'H', '♥':
		return Hearts, true
	case 'd', 'D', '♦':
		return Diamonds, true
	case 'c', 'C', '♣':
		return Clubs, true
	}
	return 0, false
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas ("As Kd 10h") or concatenated two characters at a time ("AsKdTh").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	cards := make([]Card, 0, 5)
	for _, field := range fields {
		tokens := []string{field}
		if runes := []rune(field); len(runes) > 3 {
			if len(runes)%2 != 0 {
				return nil, fmt.Errorf("%w: odd length %q", ErrInvalidCard, field)
			}
			tokens = tokens[:0]
			for i := 0; i < len(runes); i += 2 {
				tokens = append(tokens, string(runes[i:i+2]))
			}
		}
		for _, tok := range tokens {
			card, err := ParseCard(tok)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
