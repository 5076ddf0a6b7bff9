package draughts

import "strings"

// Piece counts per color and rank
type Material struct {
	counts [2][3]int // [color][rank], rank RankNone is unused
}

func (m *Material) add(p Piece, sign int) {
	m.counts[p.Color][p.Rank] += sign
}

func (m Material) Kings(c Color) int {
	return m.counts[c][RankKing]
}

func (m Material) Men(c Color) int {
	return m.counts[c][RankMan]
}

// Total pieces of given color
func (m Material) Pieces(c Color) int {
	return m.counts[c][RankMan] + m.counts[c][RankKing]
}

// Total pieces on the board
func (m Material) Total() int {
	return m.Pieces(White) + m.Pieces(Black)
}

// Material balance from White's point of view, men are worth 100 and kings 300
func (m Material) Value(manValue, kingValue int) int {
	return (m.Men(White)-m.Men(Black))*manValue + (m.Kings(White)-m.Kings(Black))*kingValue
}

// Main position struct, one optional piece per packed square.
// Copying the struct shares the cells, use Clone for an independent value.
type Position struct {
	topo     *Topology
	cells    []Piece
	material Material
	turn     Color
}

// Create an empty position, White to move
func NewPosition(topo *Topology) *Position {
	return &Position{
		topo:  topo,
		cells: make([]Piece, topo.PackedCount()),
	}
}

// Standard opening set-up: each side fills its first size/2-1 rows with men
func StartingPosition(topo *Topology) *Position {
	pos := NewPosition(topo)
	rows := topo.Size()/2 - 1
	for sq := range pos.cells {
		row, _ := topo.RowCol(Square(sq))
		if row < rows {
			pos.InsertPiece(NewPiece(Square(sq), White, false))
		} else if row >= topo.Size()-rows {
			pos.InsertPiece(NewPiece(Square(sq), Black, false))
		}
	}
	return pos
}

// Make a deep copy of the position (has no shared memory with this object)
func (p *Position) Clone() *Position {
	pos := &Position{
		topo:     p.topo,
		cells:    make([]Piece, len(p.cells)),
		material: p.material,
		turn:     p.turn,
	}
	copy(pos.cells, p.cells)
	return pos
}

// Getters
func (p *Position) Topology() *Topology {
	return p.topo
}

func (p *Position) Turn() Color {
	return p.turn
}

func (p *Position) SetTurn(c Color) {
	p.turn = c
}

func (p *Position) Material() Material {
	return p.material
}

// Get the piece on given square, Empty() if there is none
func (p *Position) Piece(sq Square) Piece {
	return p.cells[sq]
}

// Get the squares of all pieces with given color, in packed order
func (p *Position) Pieces(c Color) []Square {
	squares := make([]Square, 0, p.material.Pieces(c))
	for i := range p.cells {
		if !p.cells[i].Empty() && p.cells[i].Color == c {
			squares = append(squares, Square(i))
		}
	}
	return squares
}

// Put the piece on its square, replacing the previous occupant
func (p *Position) InsertPiece(piece Piece) {
	if old := p.cells[piece.Square]; !old.Empty() {
		p.material.add(old, -1)
	}
	piece.Captured = false
	p.cells[piece.Square] = piece
	p.material.add(piece, 1)
}

// Remove the piece from given square, returns false if it was empty
func (p *Position) RemovePiece(sq Square) bool {
	piece := p.cells[sq]
	if piece.Empty() {
		return false
	}
	p.material.add(piece, -1)
	p.cells[sq] = Piece{}
	return true
}

// Cell-wise comparison, the transient capture flags are ignored
func (p *Position) Equal(other *Position) bool {
	if len(p.cells) != len(other.cells) || p.material != other.material {
		return false
	}
	for i := range p.cells {
		if !p.cells[i].Same(other.cells[i]) {
			return false
		}
	}
	return true
}

// Move the piece between two squares, keeping its stored square in sync
func (p *Position) swap(i, j Square) {
	p.cells[i], p.cells[j] = p.cells[j], p.cells[i]
	if !p.cells[i].Empty() {
		p.cells[i].Square = i
	}
	if !p.cells[j].Empty() {
		p.cells[j].Square = j
	}
}

func (p *Position) promote(sq Square, king bool) {
	piece := &p.cells[sq]
	p.material.add(*piece, -1)
	if king {
		piece.Rank = RankKing
	} else {
		piece.Rank = RankMan
	}
	p.material.add(*piece, 1)
}

// Make the move on the board and pass the turn. The move must come from
// this position's legal move list, nothing is validated here.
func (p *Position) Apply(m *Move) {
	switch m.Kind {
	case QuietMove:
		p.swap(m.From, m.To)
	case CaptureChain:
		if cap(m.Taken) < len(m.Hops) {
			m.Taken = make([]Piece, len(m.Hops))
		}
		m.Taken = m.Taken[:len(m.Hops)]
		for i, hop := range m.Hops {
			taken := p.cells[hop.Captured]
			taken.Captured = false
			m.Taken[i] = taken
			p.material.add(taken, -1)
			p.cells[hop.Captured] = Piece{}
			p.swap(hop.From, hop.To)
		}
	}

	if m.BecameKing {
		p.promote(m.Destination(), true)
	}
	p.turn = p.turn.Opposite()
}

// Exact inverse of Apply
func (p *Position) Revert(m *Move) {
	p.turn = p.turn.Opposite()
	if m.BecameKing {
		p.promote(m.Destination(), false)
	}

	switch m.Kind {
	case QuietMove:
		p.swap(m.From, m.To)
	case CaptureChain:
		for i := len(m.Hops) - 1; i >= 0; i-- {
			hop := m.Hops[i]
			p.swap(hop.From, hop.To)
			p.cells[hop.Captured] = m.Taken[i]
			p.material.add(m.Taken[i], 1)
		}
	}
}

// Board rendering, White's first row at the bottom:
//
//	. b . b
//	...
//	w . w .
func (p *Position) String() string {
	size := p.topo.Size()
	builder := strings.Builder{}
	for row := size - 1; row >= 0; row-- {
		for col := 0; col < size; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			sq, ok := p.topo.ToPack(row*size + col)
			switch {
			case !ok:
				builder.WriteByte(' ')
			default:
				builder.WriteRune(p.cells[sq].Rune())
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
