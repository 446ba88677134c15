package game

import "errors"

var (
	// ErrInvalidBoard indicates an imported board violates the tile
	// invariants: wrong dimensions, a negative value, or a nonzero value
	// that is not a power of two.
	ErrInvalidBoard = errors.New("game: invalid board state")

	// ErrNoEmptyCell indicates a spawn was requested on a full board.
	// Spawning is only legal after a move that changed the board, so this
	// is a caller contract violation, not a recoverable condition.
	ErrNoEmptyCell = errors.New("game: no empty cell to spawn into")

	// ErrBadDirection indicates a direction value outside 0-3.
	ErrBadDirection = errors.New("game: invalid move direction")
)
