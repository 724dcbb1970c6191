package whrcore

import "errors"

// Sentinel errors returned by whrcore. Callers should branch on these with
// errors.Is, never on the formatted message.
var (
	// ErrEmptyName indicates a black or white player name was empty after
	// trimming whitespace.
	ErrEmptyName = errors.New("whrcore: player name is empty")

	// ErrInvalidWinner indicates a winner value outside {B, W}. Drawn
	// results are outside this module's scope by design.
	ErrInvalidWinner = errors.New("whrcore: winner must be \"B\" or \"W\"")

	// ErrInvalidDay indicates a non-positive day number.
	ErrInvalidDay = errors.New("whrcore: day must be a positive integer")

	// ErrUnknownPlayer indicates a query referenced a player not present
	// in the Base.
	ErrUnknownPlayer = errors.New("whrcore: unknown player")

	// ErrInvalidW2 indicates a non-positive configured rating-variance-per-day.
	ErrInvalidW2 = errors.New("whrcore: w2 must be positive")
)
