package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
)

// Outcome of a search, Eval is always from White's point of view
type Result struct {
	Move       draughts.Move
	Eval       int
	Depth      int
	Nodes      uint32
	StopReason StopReason
}

func (r Result) String() string {
	return fmt.Sprintf("Result={Move=%v, Eval=%d, Depth=%d, Nodes=%d, StopReason=%v}",
		r.Move, r.Eval, r.Depth, r.Nodes, r.StopReason)
}

// Minimax search with alpha-beta pruning. The searched position is
// mutated in place (apply, recurse, revert) and restored before returning.
// An engine is not safe for concurrent use, give every goroutine its own.
type Engine struct {
	limiter  *Limiter
	listener *StatsListener
	nodes    uint32
}

func NewEngine() *Engine {
	engine := &Engine{
		limiter:  NewLimiter(),
		listener: &StatsListener{},
	}

	// Not searching yet
	engine.limiter.SetStop(true)
	return engine
}

func (e *Engine) SetLimits(limits *Limits) {
	e.limiter.SetLimits(limits)
}

func (e *Engine) Limits() *Limits {
	return e.limiter.Limits()
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//
//	engine.SetContext(ctx)
//	result, err := engine.Search(pos)
func (e *Engine) SetContext(ctx context.Context) {
	e.limiter.SetContext(ctx)
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

func (e *Engine) StatsListener() *StatsListener {
	return e.listener
}

func (e *Engine) ResetListener() {
	e.listener.OnDepth(nil).OnRootMove(nil).OnStop(nil)
}

func (e *Engine) IsSearching() bool {
	return !e.limiter.Stop()
}

// Stop the search, can be called from another goroutine
func (e *Engine) Stop() {
	e.limiter.SetStop(true)
}

// Number of nodes visited by the last search
func (e *Engine) Nodes() uint32 {
	return e.nodes
}

// Get the reason why the search was stopped, valid after search ends
func (e *Engine) StopReason() StopReason {
	return e.limiter.StopReason()
}

func (e *Engine) invokeListener(f ListenerFunc, best draughts.Move, eval, depth int) {
	if f != nil {
		f(toSearchStats(e, best, eval, depth))
	}
}

func (e *Engine) setupSearch() {
	e.limiter.Reset()
	e.nodes = 0
}

func (e *Engine) finishSearch(result *Result, completed bool) {
	e.limiter.EvaluateStopReason(e.nodes, completed)
	result.Nodes = e.nodes
	result.StopReason = e.limiter.StopReason()
	e.invokeListener(e.listener.onStop, result.Move, result.Eval, result.Depth)
	e.limiter.SetStop(true)
}

// Search the position to a fixed depth (plus shallow-branch extensions), the node
// and time limits still apply. Returns ErrNoLegalMoves if the side to move has
// no moves, in that case the result's Eval holds the lost score.
func (e *Engine) BestMove(pos *draughts.Position, maxDepth int) (Result, error) {
	e.setupSearch()

	moves := draughts.LegalMoves(pos, pos.Turn(), false)
	if moves.Size() == 0 {
		result := Result{Eval: terminalScore(pos.Turn(), 0)}
		e.finishSearch(&result, true)
		return result, ErrNoLegalMoves
	}

	ordered := e.orderMoves(pos, moves)
	result, completed := e.searchRoot(pos, ordered, clamp(maxDepth, 1, MaxDepth))
	e.finishSearch(&result, completed)
	return result, nil
}

// Iterative deepening search, bounded by the engine's limits. On interruption,
// the result of the last completed iteration is returned.
func (e *Engine) Search(pos *draughts.Position) (Result, error) {
	e.setupSearch()

	moves := draughts.LegalMoves(pos, pos.Turn(), false)
	if moves.Size() == 0 {
		result := Result{Eval: terminalScore(pos.Turn(), 0)}
		e.finishSearch(&result, true)
		return result, ErrNoLegalMoves
	}

	ordered := e.orderMoves(pos, moves)
	maxDepth := e.Limits().MaxIterationDepth()

	var result Result
	completed := false
	for depth := 1; depth <= maxDepth; depth++ {
		res, ok := e.searchRoot(pos, ordered, depth)
		if !ok {
			if depth == 1 {
				result = res
			}
			completed = false
			break
		}

		result, completed = res, true
		e.invokeListener(e.listener.onDepth, result.Move, result.Eval, depth)

		// A forced result won't change with more depth
		if IsMateScore(result.Eval) {
			break
		}

		// Search the previous best move first
		if i := slices.IndexFunc(ordered, func(m draughts.Move) bool { return m.Same(&result.Move) }); i > 0 {
			best := ordered[i]
			copy(ordered[1:i+1], ordered[:i])
			ordered[0] = best
		}
	}

	e.finishSearch(&result, completed)
	return result, nil
}

// Search every root move, returns false if the limiter cut the search short,
// the result then holds the best of the fully searched moves
func (e *Engine) searchRoot(pos *draughts.Position, ordered []draughts.Move, depth int) (Result, bool) {
	white := pos.Turn() == draughts.White
	bestWhite, bestBlack := -(WinScore + 1), WinScore+1

	result := Result{
		Move:  ordered[0].Clone(),
		Eval:  e.staticScore(pos, &ordered[0]),
		Depth: depth,
	}

	extensions := 0
	if len(ordered) < ShallowBranchThreshold && MaxExtensions > 0 {
		depth++
		extensions++
	}

	for i := range ordered {
		m := &ordered[i]
		pos.Apply(m)
		score, ok := e.alphaBeta(pos, depth-1, 1, extensions, bestWhite, bestBlack)
		pos.Revert(m)

		if !ok {
			return result, false
		}

		if i == 0 || (white && score > result.Eval) || (!white && score < result.Eval) {
			result.Move = m.Clone()
			result.Eval = score
		}

		if white {
			bestWhite = max(bestWhite, score)
		} else {
			bestBlack = min(bestBlack, score)
		}
		e.invokeListener(e.listener.onRootMove, *m, score, result.Depth)
	}
	return result, true
}

// Minimax with alpha-beta pruning: White maximizes, Black minimizes. 'bestWhite' is
// the score White can already force, 'bestBlack' the one Black can. Returns false
// if the search was stopped, the score is meaningless then.
func (e *Engine) alphaBeta(pos *draughts.Position, depth, ply, extensions, bestWhite, bestBlack int) (int, bool) {
	e.nodes++
	if !e.limiter.Ok(e.nodes) {
		return 0, false
	}

	moves := draughts.LegalMoves(pos, pos.Turn(), false)
	if moves.Size() == 0 {
		return terminalScore(pos.Turn(), ply), true
	}

	// Forced or nearly forced continuations don't use up the depth
	if moves.Size() < ShallowBranchThreshold && extensions < MaxExtensions {
		depth++
		extensions++
	}

	if depth <= 0 {
		return Evaluate(pos), true
	}

	white := pos.Turn() == draughts.White
	best := WinScore + 1
	if white {
		best = -best
	}

	ordered := e.orderMoves(pos, moves)
	for i := range ordered {
		m := &ordered[i]
		pos.Apply(m)
		score, ok := e.alphaBeta(pos, depth-1, ply+1, extensions, bestWhite, bestBlack)
		pos.Revert(m)

		if !ok {
			return 0, false
		}

		if white {
			best = max(best, score)
			bestWhite = max(bestWhite, best)
		} else {
			best = min(best, score)
			bestBlack = min(bestBlack, best)
		}

		if bestWhite >= bestBlack {
			break
		}
	}
	return best, true
}

// Evaluation of the position after the move
func (e *Engine) staticScore(pos *draughts.Position, m *draughts.Move) int {
	pos.Apply(m)
	score := Evaluate(pos)
	pos.Revert(m)
	return score
}

type scoredMove struct {
	move  draughts.Move
	score int
}

// Sort the moves best first for the side to move, by the one-ply static evaluation
func (e *Engine) orderMoves(pos *draughts.Position, moves *draughts.MoveList) []draughts.Move {
	list := moves.Slice()
	scored := make([]scoredMove, len(list))
	for i := range list {
		scored[i] = scoredMove{move: list[i], score: e.staticScore(pos, &list[i])}
	}

	sign := 1
	if pos.Turn() == draughts.Black {
		sign = -1
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return sign * (b.score - a.score)
	})

	ordered := make([]draughts.Move, len(scored))
	for i := range scored {
		ordered[i] = scored[i].move
	}
	return ordered
}
