package game

import (
	"errors"
	"testing"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
	"github.com/IlikeChooros/go-draughts/pkg/rules"
)

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(7); !errors.Is(err, draughts.ErrInvalidSize) {
		t.Fatalf("err=%v, want=%v", err, draughts.ErrInvalidSize)
	}
}

func TestMakeMove(t *testing.T) {
	g, err := NewStarting(8)
	if err != nil {
		t.Fatal(err)
	}

	// (2,0) -> (3,1)
	finish, err := g.MakeMove([]int{16, 25})
	if err != nil || finish != rules.FinishNone {
		t.Fatalf("MakeMove: finish=%v err=%v", finish, err)
	}
	if g.Turn() != draughts.Black || g.History().Len() != 2 {
		t.Fatalf("turn=%v history=%d", g.Turn(), g.History().Len())
	}

	for _, path := range [][]int{{41, 48}, {40, 33}, {56}, {}, {46, 37, 28}} {
		if _, err := g.MakeMove(path); !errors.Is(err, ErrNoMatch) {
			t.Errorf("MakeMove(%v) err=%v, want=%v", path, err, ErrNoMatch)
		}
	}
	if g.Turn() != draughts.Black {
		t.Fatal("rejected move changed the turn")
	}
}

func TestWinAndFinishedGame(t *testing.T) {
	g, _ := New(8)
	g.InsertPiece(draughts.NewPiece(9, draughts.White, false))
	g.InsertPiece(draughts.NewPiece(13, draughts.Black, false))

	// (2,2)x(3,3)->(4,4)
	finish, err := g.MakeMove([]int{18, 36})
	if err != nil || finish != rules.WhiteWin {
		t.Fatalf("finish=%v err=%v, want %v", finish, err, rules.WhiteWin)
	}

	if _, err := g.MakeMove([]int{36, 45}); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("err=%v, want=%v", err, ErrGameFinished)
	}
	if _, err := g.BestMove(2); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("err=%v, want=%v", err, ErrGameFinished)
	}
}

func TestUndo(t *testing.T) {
	g, _ := NewStarting(8)
	if g.Undo() {
		t.Fatal("Undo on a new game")
	}

	before := g.Position()
	if _, err := g.MakeMove([]int{16, 25}); err != nil {
		t.Fatal(err)
	}
	if !g.Undo() {
		t.Fatal("Undo after a move")
	}

	if pos := g.Position(); !pos.Equal(before) || pos.Turn() != before.Turn() {
		t.Fatalf("position after undo:\n%s", pos)
	}
	if g.History().Len() != 1 || g.Undo() {
		t.Fatalf("history=%d after undo", g.History().Len())
	}
}

func TestPlayBestMoveCapturesAll(t *testing.T) {
	pos, err := draughts.ParseNotation(draughts.MustTopology(8), "W:WK1:B5,6,7,13,14,15,21,22,23")
	if err != nil {
		t.Fatal(err)
	}

	g := NewFromPosition(pos)
	result, finish, err := g.PlayBestMove(3)
	if err != nil {
		t.Fatal(err)
	}
	if result.Move.Captures() != 9 || finish != rules.WhiteWin {
		t.Fatalf("move=%v finish=%v", result.Move, finish)
	}
}

func TestApplyRejectsForeignMove(t *testing.T) {
	g, _ := NewStarting(8)
	moves := g.LegalMoves(false)
	if _, err := g.Apply(moves.Slice()[0]); err != nil {
		t.Fatal(err)
	}

	// Same move again, now it's Black's turn
	if _, err := g.Apply(moves.Slice()[0]); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err=%v, want=%v", err, ErrNoMatch)
	}
}

func TestDrawByUnchangedMaterial(t *testing.T) {
	g, _ := New(8)
	g.InsertPiece(draughts.NewPiece(0, draughts.White, true))
	g.InsertPiece(draughts.NewPiece(28, draughts.Black, true))

	// Kings shuffle on diagonals that never cross
	paths := [][]int{{0, 9}, {57, 50}, {9, 0}, {50, 57}, {0, 9}, {57, 50}}
	for i, path := range paths {
		finish, err := g.MakeMove(path)
		if err != nil {
			t.Fatalf("ply %d: %v", i+1, err)
		}
		if i < len(paths)-1 && finish != rules.FinishNone {
			t.Fatalf("ply %d: finished early with %v", i+1, finish)
		}
		if i == len(paths)-1 && finish != rules.DrawPowerEqual {
			t.Fatalf("ply %d: finish=%v, want %v", i+1, finish, rules.DrawPowerEqual)
		}
	}
}
