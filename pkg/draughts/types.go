package draughts

import "fmt"

// Type defines for the board
type Square int   // index into the packed (playable squares only) board
type Direction int8
type Color uint8
type Rank uint8

// Enum for the colors, White starts on the low rows and moves up the board
const (
	White Color = iota
	Black
)

// Enum for the piece rank, RankNone marks an empty cell
const (
	RankNone Rank = iota
	RankMan
	RankKing
)

// The four diagonal directions, as (row, col) steps:
//
//	0: (+1, +1)  1: (+1, -1)  2: (-1, -1)  3: (-1, +1)
const (
	DirUpRight Direction = iota
	DirUpLeft
	DirDownLeft
	DirDownRight

	nDirections = 4
)

const SquareNone Square = -1

var _dirSteps = [nDirections][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

// Get the opposite color
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Get the direction pointing back along the same diagonal
func (d Direction) Reverse() Direction {
	return (d + 2) % nDirections
}

// Whether a man of this color may step in this direction with a quiet move
func (d Direction) Forward(c Color) bool {
	if c == White {
		return d == DirUpRight || d == DirUpLeft
	}
	return d == DirDownLeft || d == DirDownRight
}

// Single piece on the board, zero value is an empty cell
type Piece struct {
	Color    Color
	Rank     Rank
	Square   Square
	Captured bool // set only while a capture chain is being explored
}

// Create a new man or king standing on given square
func NewPiece(sq Square, color Color, king bool) Piece {
	rank := RankMan
	if king {
		rank = RankKing
	}
	return Piece{Color: color, Rank: rank, Square: sq}
}

func (p Piece) Empty() bool {
	return p.Rank == RankNone
}

func (p Piece) IsKing() bool {
	return p.Rank == RankKing
}

// Compare two pieces ignoring the transient capture flag
func (p Piece) Same(other Piece) bool {
	if p.Empty() || other.Empty() {
		return p.Empty() == other.Empty()
	}
	return p.Color == other.Color && p.Rank == other.Rank && p.Square == other.Square
}

// Single character representation, as used in the board rendering
func (p Piece) Rune() rune {
	switch {
	case p.Empty():
		return '.'
	case p.Color == White && p.IsKing():
		return 'W'
	case p.Color == White:
		return 'w'
	case p.IsKing():
		return 'B'
	default:
		return 'b'
	}
}

func (p Piece) String() string {
	if p.Empty() {
		return "(none)"
	}
	rank := "man"
	if p.IsKing() {
		rank = "king"
	}
	return fmt.Sprintf("%s %s@%d", p.Color, rank, p.Square)
}
