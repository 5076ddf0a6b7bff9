package draughts

import (
	"fmt"
	"slices"
	"testing"
)

func newTestPosition(t *testing.T, turn Color, pieces ...Piece) *Position {
	t.Helper()
	pos := NewPosition(MustTopology(8))
	pos.SetTurn(turn)
	for _, p := range pieces {
		pos.InsertPiece(p)
	}
	return pos
}

// Convert full-board indexes to pieces of given color
func boardPieces(topo *Topology, color Color, king bool, indexes ...int) []Piece {
	pieces := make([]Piece, len(indexes))
	for i, idx := range indexes {
		sq, ok := topo.ToPack(idx)
		if !ok {
			panic(fmt.Sprintf("board index %d is not playable", idx))
		}
		pieces[i] = NewPiece(sq, color, king)
	}
	return pieces
}

func paths(ml *MoveList) []string {
	res := make([]string, ml.Size())
	for i, m := range ml.Slice() {
		res[i] = m.String()
	}
	slices.Sort(res)
	return res
}

func TestQuietMovesKingAndMen(t *testing.T) {
	pos := newTestPosition(t, White,
		NewPiece(13, White, true),
		NewPiece(2, White, false),
		NewPiece(27, White, false),
		NewPiece(24, White, false),
	)

	moves := LegalMoves(pos, White, true)
	if moves.Size() != 15 {
		t.Fatalf("got %d moves, want 15: %s", moves.Size(), moves)
	}
	if moves.Captures() {
		t.Fatal("expected quiet moves only")
	}

	// Men on the second to last row promote
	promotions := 0
	for _, m := range moves.Slice() {
		if m.BecameKing {
			promotions++
		}
	}
	if promotions != 3 {
		t.Errorf("got %d promoting moves, want 3", promotions)
	}
}

func TestQuietMovesBlackMenGoDown(t *testing.T) {
	pos := newTestPosition(t, Black, NewPiece(13, Black, false))
	moves := LegalMoves(pos, Black, false)

	if moves.Size() != 2 {
		t.Fatalf("got %d moves, want 2: %s", moves.Size(), moves)
	}
	for _, m := range moves.Slice() {
		fromRow, _ := pos.topo.RowCol(m.Origin())
		toRow, _ := pos.topo.RowCol(m.Destination())
		if toRow != fromRow-1 {
			t.Errorf("black man moved from row %d to %d", fromRow, toRow)
		}
	}
}

func TestCaptureChainsMixedPieces(t *testing.T) {
	topo := MustTopology(8)
	pieces := boardPieces(topo, White, false, 47, 63)
	pieces = append(pieces, boardPieces(topo, White, true, 15)...)
	pieces = append(pieces, boardPieces(topo, Black, false, 54, 43, 20)...)
	pos := newTestPosition(t, White, pieces...)

	for _, frontend := range []bool{true, false} {
		moves := LegalMoves(pos, White, frontend)
		if moves.Size() != 5 {
			t.Fatalf("frontend=%v: got %d chains, want 5: %s", frontend, moves.Size(), moves)
		}
		for _, m := range moves.Slice() {
			if !m.IsCapture() {
				t.Fatalf("quiet move %s offered while captures exist", m)
			}
		}
	}
}

func TestCaptureChainsMenPromoteMidChain(t *testing.T) {
	pos := newTestPosition(t, White,
		NewPiece(22, White, false),
		NewPiece(4, Black, true),
		NewPiece(21, Black, true),
		NewPiece(20, Black, true),
		NewPiece(12, Black, true),
		NewPiece(13, Black, true),
		NewPiece(26, Black, true),
	)

	want := []string{"23x30x17x10x1", "23x30x17x10x19x26", "23x30x17x10x19x29"}
	for _, frontend := range []bool{true, false} {
		moves := Captures(pos, 22, frontend)
		if got := paths(moves); !slices.Equal(got, want) {
			t.Fatalf("frontend=%v: got %v, want %v", frontend, got, want)
		}
		for _, m := range moves.Slice() {
			if !m.BecameKing {
				t.Errorf("chain %s passed the last row but is not promoting", m)
			}
		}
	}
}

func TestCaptureChainsMaximalOnly(t *testing.T) {
	positions := []string{
		"W:W23:BK5,K21,K22,K13,K14,K27",
		"W:WK1:B5,6,7,13,14,15,21,22,23",
		"W:W9,10,11,K1:B14,15,22,23,30",
		"B:W14,15,18,19,K27:B22,23,K32",
	}

	topo := MustTopology(8)
	for _, notation := range positions {
		t.Run(notation, func(t *testing.T) {
			pos, err := ParseNotation(topo, notation)
			if err != nil {
				t.Fatal(err)
			}
			moves := LegalMoves(pos, pos.Turn(), true)
			list := moves.Slice()
			for i := range list {
				for j := range list {
					if i == j || !list[i].IsCapture() || !list[j].IsCapture() {
						continue
					}
					a, b := list[i].Path(), list[j].Path()
					if len(a) < len(b) && slices.Equal(a, b[:len(a)]) {
						t.Fatalf("chain %s is a prefix of %s", list[i], list[j])
					}
				}
			}
		})
	}
}

func TestCaptureIsMandatory(t *testing.T) {
	pos := newTestPosition(t, White,
		NewPiece(9, White, false),
		NewPiece(0, White, false),
		NewPiece(13, Black, false),
	)

	moves := LegalMoves(pos, White, false)
	if moves.Size() != 1 || !moves.Captures() {
		t.Fatalf("got %s, want a single capture", moves)
	}
}

func TestKingCannotJumpTwoPieces(t *testing.T) {
	pos := newTestPosition(t, White,
		NewPiece(0, White, true),
		NewPiece(9, Black, false),
		NewPiece(13, Black, false),
	)

	moves := LegalMoves(pos, White, true)
	if moves.Captures() {
		t.Fatalf("got captures %s, want none", moves)
	}
	if moves.Size() != 1 || moves.Slice()[0].Destination() != 4 {
		t.Fatalf("got %s, want the single step 1-5", moves)
	}
}

func TestKingLandsAnywhereBehindVictim(t *testing.T) {
	pos := newTestPosition(t, White,
		NewPiece(0, White, true),
		NewPiece(9, Black, false),
	)

	moves := LegalMoves(pos, White, false)
	if got, want := paths(moves), []string{"1x14", "1x19", "1x23", "1x28", "1x32"}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// Destination and captured squares of every chain, without the intermediate landings
func outcomes(ml *MoveList) []string {
	res := make([]string, 0, ml.Size())
	for _, m := range ml.Slice() {
		captured := make([]int, len(m.Hops))
		for i, hop := range m.Hops {
			captured[i] = int(hop.Captured)
		}
		slices.Sort(captured)
		res = append(res, fmt.Sprint(m.Destination(), captured))
	}
	slices.Sort(res)
	return slices.Compact(res)
}

func TestFrontendKeepsIntermediateLandings(t *testing.T) {
	// King on the main road, both victims on it too: after the first capture
	// the king may stop on 14 or 19 and go on along the same line
	pos := newTestPosition(t, White,
		NewPiece(0, White, true),
		NewPiece(9, Black, false),
		NewPiece(22, Black, false),
	)

	engine := LegalMoves(pos, White, false)
	frontend := LegalMoves(pos, White, true)

	if got, want := paths(engine), []string{"1x14x28", "1x14x32"}; !slices.Equal(got, want) {
		t.Errorf("engine: got %v, want %v", got, want)
	}
	if got, want := paths(frontend), []string{"1x14x28", "1x14x32", "1x19x28", "1x19x32"}; !slices.Equal(got, want) {
		t.Errorf("frontend: got %v, want %v", got, want)
	}
	if e, f := outcomes(engine), outcomes(frontend); !slices.Equal(e, f) {
		t.Errorf("outcomes differ: engine %v, frontend %v", e, f)
	}
}

func TestMoveGenerationLeavesPositionIntact(t *testing.T) {
	pos := newTestPosition(t, White,
		NewPiece(22, White, false),
		NewPiece(4, Black, true),
		NewPiece(21, Black, true),
		NewPiece(20, Black, true),
		NewPiece(12, Black, true),
		NewPiece(13, Black, true),
		NewPiece(26, Black, true),
	)
	before := pos.Clone()

	LegalMoves(pos, White, true)
	LegalMoves(pos, White, false)

	if !pos.Equal(before) || pos.Material() != before.Material() {
		t.Fatalf("position changed by move generation:\n%s\nwas:\n%s", pos, before)
	}
	for i := range pos.cells {
		if pos.cells[i].Captured {
			t.Fatalf("capture flag left on square %d", i)
		}
	}
}

func TestMoveListMatch(t *testing.T) {
	topo := MustTopology(8)
	pos, err := ParseNotation(topo, "W:W23:BK5,K21,K22,K13,K14,K27")
	if err != nil {
		t.Fatal(err)
	}

	moves := LegalMoves(pos, White, true)
	for _, m := range moves.Slice() {
		got, ok := moves.Match(m.Path())
		if !ok || !got.Same(&m) {
			t.Fatalf("Match(%v)=%s,%v", m.Path(), got, ok)
		}
	}

	if _, ok := moves.Match([]Square{22, 29}); ok {
		t.Fatal("matched a prefix of a chain")
	}
	if _, ok := moves.Match([]Square{22, 26}); ok {
		t.Fatal("matched a quiet move while a capture is mandatory")
	}
}
