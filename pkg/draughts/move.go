package draughts

import (
	"strconv"
	"strings"
)

type MoveKind uint8

const (
	QuietMove MoveKind = iota
	CaptureChain
)

// Single jump of a capture chain, 'Captured' is the square of the taken piece
type Hop struct {
	From     Square
	To       Square
	Captured Square
}

// Either a quiet move (From -> To) or a capture chain (Hops), depending on Kind.
// Use the accessors instead of reading From/To/Hops directly, they work for both kinds.
type Move struct {
	Kind       MoveKind
	From       Square
	To         Square
	Hops       []Hop
	BecameKing bool

	// Pieces removed by Position.Apply, indexed by hop, used by Revert
	Taken []Piece
}

// Create a quiet move
func NewQuietMove(from, to Square, becameKing bool) Move {
	return Move{Kind: QuietMove, From: from, To: to, BecameKing: becameKing}
}

// Create a capture chain, hops are copied
func NewCaptureChain(hops []Hop, becameKing bool) Move {
	return Move{Kind: CaptureChain, Hops: append([]Hop(nil), hops...), BecameKing: becameKing}
}

func (m *Move) IsCapture() bool {
	return m.Kind == CaptureChain
}

// Square the moving piece starts on
func (m *Move) Origin() Square {
	switch m.Kind {
	case CaptureChain:
		return m.Hops[0].From
	default:
		return m.From
	}
}

// Square the moving piece ends on
func (m *Move) Destination() Square {
	switch m.Kind {
	case CaptureChain:
		return m.Hops[len(m.Hops)-1].To
	default:
		return m.To
	}
}

// Number of pieces taken by this move
func (m *Move) Captures() int {
	if m.Kind == CaptureChain {
		return len(m.Hops)
	}
	return 0
}

// Squares visited by the moving piece: origin, then every landing square
func (m *Move) Path() []Square {
	switch m.Kind {
	case CaptureChain:
		path := make([]Square, 0, len(m.Hops)+1)
		path = append(path, m.Hops[0].From)
		for _, h := range m.Hops {
			path = append(path, h.To)
		}
		return path
	default:
		return []Square{m.From, m.To}
	}
}

// Make an independent copy, safe to keep after the move list is reused
func (m Move) Clone() Move {
	m.Hops = append([]Hop(nil), m.Hops...)
	m.Taken = nil
	return m
}

// Whether both moves describe the same piece path and captures
func (m *Move) Same(other *Move) bool {
	if m.Kind != other.Kind || m.BecameKing != other.BecameKing {
		return false
	}
	if m.Kind == QuietMove {
		return m.From == other.From && m.To == other.To
	}
	if len(m.Hops) != len(other.Hops) {
		return false
	}
	for i := range m.Hops {
		if m.Hops[i] != other.Hops[i] {
			return false
		}
	}
	return true
}

// Notation with 1-based packed squares, '-' for quiet moves and 'x' for captures,
// for example: 9-13, 14x23x32
func (m Move) String() string {
	sep := "-"
	if m.Kind == CaptureChain {
		sep = "x"
	}

	path := m.Path()
	parts := make([]string, len(path))
	for i, sq := range path {
		parts[i] = strconv.Itoa(int(sq) + 1)
	}
	return strings.Join(parts, sep)
}

type MoveList struct {
	moves []Move
}

func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, 16)}
}

func (ml *MoveList) Append(m Move) {
	ml.moves = append(ml.moves, m)
}

// Get the actual slice of generated moves
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

func (ml *MoveList) Size() int {
	return len(ml.moves)
}

// Reset the list, keeping the allocated memory
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
}

// Whether the list consists of capture chains
func (ml *MoveList) Captures() bool {
	return len(ml.moves) > 0 && ml.moves[0].IsCapture()
}

// Find the move whose path matches given squares, coordinate by coordinate
func (ml *MoveList) Match(path []Square) (Move, bool) {
	for i := range ml.moves {
		candidate := ml.moves[i].Path()
		if len(candidate) != len(path) {
			continue
		}
		ok := true
		for j := range path {
			if candidate[j] != path[j] {
				ok = false
				break
			}
		}
		if ok {
			return ml.moves[i].Clone(), true
		}
	}
	return Move{}, false
}

func (ml *MoveList) String() string {
	if len(ml.moves) == 0 {
		return "empty"
	}

	strMoves := make([]string, len(ml.moves))
	for i, m := range ml.moves {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}
