package search

import (
	"context"
	"errors"
	"testing"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
)

var _topo = draughts.MustTopology(8)

func mustParse(t *testing.T, notation string) *draughts.Position {
	t.Helper()
	pos, err := draughts.ParseNotation(_topo, notation)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

// Plain minimax with the same extension rules, used to check the pruning
func minimax(pos *draughts.Position, depth, ply, extensions int) int {
	moves := draughts.LegalMoves(pos, pos.Turn(), false)
	if moves.Size() == 0 {
		return terminalScore(pos.Turn(), ply)
	}
	if moves.Size() < ShallowBranchThreshold && extensions < MaxExtensions {
		depth++
		extensions++
	}
	if depth <= 0 {
		return Evaluate(pos)
	}

	white := pos.Turn() == draughts.White
	best := 0
	for i := range moves.Slice() {
		m := &moves.Slice()[i]
		pos.Apply(m)
		score := minimax(pos, depth-1, ply+1, extensions)
		pos.Revert(m)
		if i == 0 || (white && score > best) || (!white && score < best) {
			best = score
		}
	}
	return best
}

func TestEvaluate(t *testing.T) {
	if eval := Evaluate(draughts.StartingPosition(_topo)); eval != 0 {
		t.Errorf("starting position eval=%d, want 0", eval)
	}

	// Corner king is blocked by the man after two squares, the man has two steps
	pos := mustParse(t, "W:WK1:B14")
	if eval, want := Evaluate(pos), KingValue-ManValue+2-2; eval != want {
		t.Errorf("eval=%d, want=%d", eval, want)
	}
}

func TestEvaluateMaterialFirst(t *testing.T) {
	SetMobilityWeight(20)
	defer SetMobilityWeight(1)

	// Central king against a cornered king and a man: 12 squares against 5
	pos := draughts.NewPosition(_topo)
	pos.InsertPiece(draughts.NewPiece(13, draughts.White, true))
	pos.InsertPiece(draughts.NewPiece(31, draughts.Black, true))
	pos.InsertPiece(draughts.NewPiece(30, draughts.Black, false))

	eval := Evaluate(pos)
	if eval >= 0 {
		t.Fatalf("eval=%d, mobility outweighs the missing man", eval)
	}
	if want := -ManValue + mobilityBound; eval != want {
		t.Errorf("eval=%d, want=%d", eval, want)
	}

	SetPieceValues(100, 250)
	defer SetPieceValues(100, 300)
	if mobilityBound != 24 {
		t.Errorf("mobility bound=%d, want 24", mobilityBound)
	}
}

func TestBestMoveTakesEverything(t *testing.T) {
	pos := mustParse(t, "W:WK1:B5,6,7,13,14,15,21,22,23")
	before := pos.Clone()

	result, err := NewEngine().BestMove(pos, 4)
	if err != nil {
		t.Fatal(err)
	}
	if result.Move.Captures() != 9 {
		t.Fatalf("best move %v takes %d pieces, want 9", result.Move, result.Move.Captures())
	}
	if result.Eval != WinScore-1 {
		t.Errorf("eval=%d, want=%d", result.Eval, WinScore-1)
	}
	if !pos.Equal(before) || pos.Turn() != before.Turn() {
		t.Fatalf("position changed by the search:\n%s", pos)
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	pos := mustParse(t, "B:WK1:B")

	result, err := NewEngine().BestMove(pos, 3)
	if !errors.Is(err, ErrNoLegalMoves) {
		t.Fatalf("err=%v, want=%v", err, ErrNoLegalMoves)
	}
	if result.Eval != WinScore {
		t.Errorf("eval=%d, want=%d", result.Eval, WinScore)
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	notations := []string{
		draughts.StartingPosition(_topo).Notation(),
		"W:W9,10,11,K1:B14,15,22,23,30",
		"B:W14,15,18,19,K27:B22,23,K32",
		"W:W18,K29:BK4,K13",
	}

	for _, notation := range notations {
		t.Run(notation, func(t *testing.T) {
			pos := mustParse(t, notation)
			for depth := 1; depth <= 3; depth++ {
				want := minimax(pos, depth, 0, 0)
				result, err := NewEngine().BestMove(pos, depth)
				if err != nil {
					t.Fatal(err)
				}
				if result.Eval != want {
					t.Fatalf("depth %d: alpha-beta=%d, minimax=%d", depth, result.Eval, want)
				}
				if result.StopReason != StopDepth {
					t.Errorf("depth %d: reason=%v", depth, result.StopReason)
				}
			}
		})
	}
}

func TestSearchNodeLimit(t *testing.T) {
	pos := draughts.StartingPosition(_topo)
	engine := NewEngine()
	engine.SetLimits(DefaultLimits().SetNodes(200).SetDepth(MaxDepth))

	result, err := engine.Search(pos)
	if err != nil {
		t.Fatal(err)
	}
	if result.StopReason&StopNodes == 0 {
		t.Errorf("reason=%v, want Nodes", result.StopReason)
	}
	if _, ok := draughts.LegalMoves(pos, pos.Turn(), true).Match(result.Move.Path()); !ok {
		t.Errorf("illegal best move %v", result.Move)
	}
	if engine.IsSearching() {
		t.Error("engine still searching after Search returned")
	}
}

func TestSearchCancelled(t *testing.T) {
	pos := draughts.StartingPosition(_topo)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine()
	engine.SetContext(ctx)
	result, err := engine.Search(pos)
	if err != nil {
		t.Fatal(err)
	}
	if result.StopReason&StopInterrupt == 0 {
		t.Errorf("reason=%v, want Interrupt", result.StopReason)
	}
	if _, ok := draughts.LegalMoves(pos, pos.Turn(), true).Match(result.Move.Path()); !ok {
		t.Errorf("illegal fallback move %v", result.Move)
	}
}

func TestSearchListener(t *testing.T) {
	depths, rootMoves, stops := 0, 0, 0
	listener := NewStatsListener()
	listener.
		OnDepth(func(stats SearchStats) {
			depths++
			if stats.Depth != depths {
				t.Errorf("OnDepth: depth=%d, want=%d", stats.Depth, depths)
			}
		}).
		OnRootMove(func(SearchStats) { rootMoves++ }).
		OnStop(func(stats SearchStats) {
			stops++
			t.Logf("stopped: depth=%d nodes=%d nps=%d reason=%v", stats.Depth, stats.Nodes, stats.Nps, stats.StopReason)
		})

	engine := NewEngine()
	engine.SetListener(listener)
	engine.SetLimits(DefaultLimits().SetDepth(3))

	pos := draughts.StartingPosition(_topo)
	rootCount := draughts.LegalMoves(pos, pos.Turn(), false).Size()
	if _, err := engine.Search(pos); err != nil {
		t.Fatal(err)
	}

	if depths != 3 || stops != 1 || rootMoves != 3*rootCount {
		t.Errorf("depths=%d stops=%d rootMoves=%d, want 3, 1, %d", depths, stops, rootMoves, 3*rootCount)
	}
}
