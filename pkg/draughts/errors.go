package draughts

import "errors"

var (
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidNotation = errors.New("invalid notation")
)
