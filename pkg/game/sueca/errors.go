package sueca

import "errors"

var (
	// ErrInvalidState means a game state breaks the model's invariants,
	// which points at a bug upstream of the bot.
	ErrInvalidState = errors.New("invalid game state")
	// ErrNoLegalMoves means a strategy was asked to choose from nothing.
	ErrNoLegalMoves = errors.New("no legal moves")
)
