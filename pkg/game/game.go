package game

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
	"github.com/IlikeChooros/go-draughts/pkg/rules"
	"github.com/IlikeChooros/go-draughts/pkg/search"
)

var (
	// The submitted path doesn't match any legal move
	ErrNoMatch = errors.New("game: no legal move matches the path")

	ErrGameFinished = errors.New("game: the game is already finished")
)

// Single game: the live position, the played history with its draw state
// and a search engine for the computer moves
type Game struct {
	topo    *draughts.Topology
	pos     *draughts.Position
	history *rules.History
	engine  *search.Engine
	finish  rules.FinishType
}

// Create a game on an empty board of given size, White to move
func New(size int) (*Game, error) {
	topo, err := draughts.NewTopology(size)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return NewFromPosition(draughts.NewPosition(topo)), nil
}

// Create a game with the standard set-up
func NewStarting(size int) (*Game, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	g.pos = draughts.StartingPosition(g.topo)
	return g, nil
}

// Create a game continuing from a copy of the position
func NewFromPosition(pos *draughts.Position) *Game {
	return &Game{
		topo:    pos.Topology(),
		pos:     pos.Clone(),
		history: rules.NewHistory(),
		engine:  search.NewEngine(),
	}
}

// Board set-up invalidates the history, play starts again from the edited position
func (g *Game) edited() {
	g.history.Clear()
	g.finish = rules.FinishNone
}

func (g *Game) InsertPiece(piece draughts.Piece) {
	g.pos.InsertPiece(piece)
	g.edited()
}

func (g *Game) RemovePiece(sq draughts.Square) bool {
	removed := g.pos.RemovePiece(sq)
	if removed {
		g.edited()
	}
	return removed
}

func (g *Game) SetTurn(c draughts.Color) {
	g.pos.SetTurn(c)
	g.edited()
}

func (g *Game) Turn() draughts.Color {
	return g.pos.Turn()
}

// Get a copy of the current position
func (g *Game) Position() *draughts.Position {
	return g.pos.Clone()
}

func (g *Game) Topology() *draughts.Topology {
	return g.topo
}

func (g *Game) ToBoard(sq draughts.Square) int {
	return g.topo.ToBoard(sq)
}

func (g *Game) ToPack(index int) (draughts.Square, bool) {
	return g.topo.ToPack(index)
}

// Engine used by BestMove, set its limits or listener to tune the computer player
func (g *Game) Engine() *search.Engine {
	return g.engine
}

func (g *Game) History() *rules.History {
	return g.history
}

func (g *Game) Finish() rules.FinishType {
	return g.finish
}

func (g *Game) LegalMoves(forFrontend bool) *draughts.MoveList {
	return draughts.LegalMoves(g.pos, g.pos.Turn(), forFrontend)
}

// Play the move given by full-board indexes of the visited squares,
// for example [16, 25] or [18, 36, 54] for a double capture
func (g *Game) MakeMove(path []int) (rules.FinishType, error) {
	if g.finish.Finished() {
		return g.finish, ErrGameFinished
	}

	squares := make([]draughts.Square, len(path))
	for i, index := range path {
		sq, ok := g.topo.ToPack(index)
		if !ok {
			return rules.FinishNone, fmt.Errorf("%w: square %d is not playable", ErrNoMatch, index)
		}
		squares[i] = sq
	}

	move, ok := g.LegalMoves(true).Match(squares)
	if !ok {
		return rules.FinishNone, fmt.Errorf("%w: %v", ErrNoMatch, path)
	}
	return g.commit(move), nil
}

// Play a move generated for the current position
func (g *Game) Apply(move draughts.Move) (rules.FinishType, error) {
	if g.finish.Finished() {
		return g.finish, ErrGameFinished
	}

	// Engine moves come from the pruned generation, accept both
	for _, forFrontend := range []bool{true, false} {
		moves := g.LegalMoves(forFrontend).Slice()
		for i := range moves {
			if moves[i].Same(&move) {
				return g.commit(move.Clone()), nil
			}
		}
	}
	return rules.FinishNone, fmt.Errorf("%w: %v", ErrNoMatch, move)
}

func (g *Game) commit(move draughts.Move) rules.FinishType {
	if g.history.Len() == 0 {
		g.history.Push(g.pos, nil)
	}

	g.pos.Apply(&move)
	g.finish = g.history.Push(g.pos, &move)

	// The side that can't move has lost, this outranks any draw
	if g.LegalMoves(false).Size() == 0 {
		g.finish = rules.WhiteWin
		if g.pos.Turn() == draughts.White {
			g.finish = rules.BlackWin
		}
	}
	return g.finish
}

// Search the current position to given depth
func (g *Game) BestMove(depth int) (search.Result, error) {
	if g.finish.Finished() {
		return search.Result{}, ErrGameFinished
	}
	return g.engine.BestMove(g.pos, depth)
}

// Search and play the best move
func (g *Game) PlayBestMove(depth int) (search.Result, rules.FinishType, error) {
	result, err := g.BestMove(depth)
	if err != nil {
		return result, g.finish, err
	}
	return result, g.commit(result.Move), nil
}

// Take back the last move, false if there is nothing to take back
func (g *Game) Undo() bool {
	if g.history.Len() < 2 {
		return false
	}

	g.history.Truncate(g.history.Len() - 1)
	last, _ := g.history.Last()
	g.pos = last.Position.Clone()
	g.finish = rules.FinishNone
	return true
}

func (g *Game) String() string {
	return fmt.Sprintf("%s%s to move, %v", g.pos, g.pos.Turn(), g.finish)
}
