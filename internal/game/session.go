package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/drawround/internal/randutil"
	"github.com/lox/drawround/poker"
)

// Outcome describes where a round stands.
type Outcome int

const (
	InProgress Outcome = iota
	Cleared
	Failed
)

// String returns a human-readable outcome
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Cleared:
		return "cleared"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// PlayedHand records a hand that was scored.
type PlayedHand struct {
	Cards []poker.Card
	Score poker.Score
}

// SessionConfig configures a new Session. Zero values fall back to defaults:
// DefaultRules, a clock-seeded RNG, the real clock and a discarding logger.
type SessionConfig struct {
	Rules      Rules
	RNG        *rand.Rand
	Clock      quartz.Clock
	Logger     *log.Logger
	MaxEntries int
}

// Session owns the state of one round: deck, hand, held flags, chips and the
// hands/discards budgets. It is not safe for concurrent use; commands are
// expected to arrive one at a time from a single caller.
type Session struct {
	rules  Rules
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger
	events *EventLog

	deck         *poker.Deck
	hand         []poker.Card
	held         [poker.HandSize]bool
	chips        int
	handsLeft    int
	discardsLeft int
	played       []PlayedHand
}

// NewSession creates a session ready to deal.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Rules == (Rules{}) {
		cfg.Rules = DefaultRules()
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.RNG == nil {
		cfg.RNG, _ = randutil.Resolve(nil, cfg.Clock)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	s := &Session{
		rules:  cfg.Rules,
		rng:    cfg.RNG,
		clock:  cfg.Clock,
		logger: cfg.Logger.WithPrefix("game"),
		events: NewEventLog(cfg.MaxEntries),
	}
	s.resetState()
	return s, nil
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// Events returns the session's event log.
func (s *Session) Events() *EventLog {
	return s.events
}

// Deal draws a fresh hand of five cards and clears every hold.
func (s *Session) Deal() error {
	if len(s.hand) > 0 {
		return s.reject(ErrAlreadyDealt, "Already dealt: play or discard")
	}
	if s.handsLeft <= 0 {
		return s.reject(ErrRoundOver, "Out of hands: Reset to start a new round")
	}

	if s.deck.Remaining() < poker.HandSize {
		s.deck = poker.NewDeck(s.rng)
		s.record(EventShuffle, "Shuffled new deck")
	}

	cards, err := s.deck.Draw(poker.HandSize)
	if err != nil {
		return fmt.Errorf("game: deal: %w", err)
	}
	s.hand = cards
	s.held = [poker.HandSize]bool{}

	s.logger.Debug("Dealt hand", "cards", poker.FormatCards(cards), "deck", s.deck.Remaining())
	s.record(EventDeal, "Dealt 5 cards")
	return nil
}

// ToggleHold flips the held flag of slot i. It does not write to the event
// log; the presentation layer is expected to gate it on a dealt hand.
func (s *Session) ToggleHold(i int) error {
	if len(s.hand) == 0 {
		return ErrNotDealt
	}
	if i < 0 || i >= len(s.hand) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, i)
	}
	s.held[i] = !s.held[i]
	s.logger.Debug("Toggled hold", "slot", i, "held", s.held[i])
	return nil
}

// Discard replaces every card that is not held with a card from the deck,
// keeping each replacement in the slot it fills, and spends one discard.
func (s *Session) Discard() error {
	if len(s.hand) == 0 {
		return s.reject(ErrNotDealt, "Deal first")
	}
	if s.discardsLeft <= 0 {
		return s.reject(ErrNoDiscardsLeft, "No discards left")
	}

	slots := s.unheldSlots()
	if len(slots) == 0 {
		return s.reject(ErrNothingSelected, "Nothing to discard: every card is held")
	}

	if s.deck.Remaining() < len(slots) {
		// New epoch without the cards in hand so the hand stays duplicate-free.
		s.deck = poker.NewDeckWithout(s.rng, s.hand)
		s.record(EventShuffle, "Shuffled new deck")
	}

	replacements, err := s.deck.Draw(len(slots))
	if err != nil {
		return fmt.Errorf("game: discard: %w", err)
	}
	for k, i := range slots {
		s.hand[i] = replacements[k]
	}
	s.discardsLeft--

	s.logger.Debug("Replaced cards", "slots", slots, "hand", poker.FormatCards(s.hand), "discardsLeft", s.discardsLeft)
	s.record(EventDiscard, "Discarded and drew replacements")
	return nil
}

// Play scores the current hand, adds its value to the chips, spends one hand
// and clears the hand. After the last hand the round outcome is logged.
func (s *Session) Play() (poker.Score, error) {
	if len(s.hand) == 0 {
		return poker.Score{}, s.reject(ErrNotDealt, "Deal first")
	}

	score := poker.Evaluate(s.hand)
	s.chips += score.Value
	s.handsLeft--
	s.played = append(s.played, PlayedHand{Cards: s.hand, Score: score})
	s.hand = nil

	s.record(EventPlay, fmt.Sprintf("Played: %s → +%d chips", score.Label, score.Value))

	switch s.outcome() {
	case Cleared:
		s.record(EventCleared, "Round cleared! You beat the blind!")
	case Failed:
		s.record(EventFailed, "Round failed. Try Reset")
	}
	return score, nil
}

// Reset starts a new round with a fresh deck. It never fails.
func (s *Session) Reset() {
	s.resetState()
	s.record(EventReset, "Reset game")
}

// Snapshot is a read-only copy of the session state for display.
type Snapshot struct {
	Hand          []poker.Card
	Held          [poker.HandSize]bool
	Chips         int
	HandsLeft     int
	DiscardsLeft  int
	Target        int
	DeckRemaining int
	Outcome       Outcome
	Played        []PlayedHand
}

// Dealt reports whether a hand is in play.
func (s Snapshot) Dealt() bool {
	return len(s.Hand) > 0
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	hand := make([]poker.Card, len(s.hand))
	copy(hand, s.hand)
	played := make([]PlayedHand, len(s.played))
	copy(played, s.played)

	return Snapshot{
		Hand:          hand,
		Held:          s.held,
		Chips:         s.chips,
		HandsLeft:     s.handsLeft,
		DiscardsLeft:  s.discardsLeft,
		Target:        s.rules.Target,
		DeckRemaining: s.deck.Remaining(),
		Outcome:       s.outcome(),
		Played:        played,
	}
}

func (s *Session) resetState() {
	s.deck = poker.NewDeck(s.rng)
	s.hand = nil
	s.held = [poker.HandSize]bool{}
	s.chips = 0
	s.handsLeft = s.rules.Hands
	s.discardsLeft = s.rules.Discards
	s.played = nil
}

func (s *Session) outcome() Outcome {
	switch {
	case s.handsLeft > 0:
		return InProgress
	case s.chips >= s.rules.Target:
		return Cleared
	default:
		return Failed
	}
}

func (s *Session) unheldSlots() []int {
	slots := make([]int, 0, len(s.hand))
	for i := range s.hand {
		if !s.held[i] {
			slots = append(slots, i)
		}
	}
	return slots
}

func (s *Session) record(kind EventKind, msg string) {
	s.events.Append(Entry{Time: s.clock.Now(), Kind: kind, Message: msg})
	s.logger.Info(msg, "event", kind, "chips", s.chips, "handsLeft", s.handsLeft, "discardsLeft", s.discardsLeft)
}

func (s *Session) reject(err error, msg string) error {
	s.events.Append(Entry{Time: s.clock.Now(), Kind: EventRejected, Message: msg, Err: err})
	s.logger.Warn("Command rejected", "reason", msg, "error", err)
	return err
}
