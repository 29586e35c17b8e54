// Package game implements the round engine for a single-player draw poker
// game played against a chip target.
//
// The main type is Session, which owns the deck, the current hand, the held
// flags and the round budgets (hands and discards left). Every player command
// runs to completion before the next one and never panics: a command that is
// not allowed in the current state leaves the session untouched, records a
// message in the event log and returns one of the sentinel errors.
//
// # Basic Usage
//
//	s, err := game.NewSession(game.SessionConfig{Rules: game.DefaultRules()})
//	_ = s.Deal()
//	_ = s.ToggleHold(0)
//	_ = s.Discard()
//	score, _ := s.Play()
//	fmt.Println(score.Label, s.Snapshot().Chips)
//
// # Deterministic Testing
//
// Inject a seeded source and a mock clock so shuffles and event timestamps
// are reproducible:
//
//	s, _ := game.NewSession(game.SessionConfig{
//	    RNG:   randutil.New(42),
//	    Clock: quartz.NewMock(t),
//	})
//
// # Deck Epochs
//
// A session draws from one shuffled deck until fewer cards remain than a
// command needs, then starts a new deck. Cards played in earlier hands may
// reappear in a later epoch; cards currently in hand never do.
package game
