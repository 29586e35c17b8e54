package game

import "errors"

var (
	// ErrAlreadyDealt is returned by Deal while a hand is in play.
	ErrAlreadyDealt = errors.New("game: hand already dealt")
	// ErrNotDealt is returned by commands that need a hand in play.
	ErrNotDealt = errors.New("game: no hand dealt")
	// ErrNoDiscardsLeft is returned by Discard once the budget is spent.
	ErrNoDiscardsLeft = errors.New("game: no discards left")
	// ErrNothingSelected is returned by Discard when every card is held.
	ErrNothingSelected = errors.New("game: nothing selected to discard")
	// ErrRoundOver is returned by Deal once every hand of the round is played.
	ErrRoundOver = errors.New("game: no hands left in round")
	// ErrInvalidSlot is returned by ToggleHold for an index outside the hand.
	ErrInvalidSlot = errors.New("game: invalid hand slot")
)
