package search

import "errors"

// The side to move has no legal moves, the game is already decided
var ErrNoLegalMoves = errors.New("search: no legal moves in the root position")
