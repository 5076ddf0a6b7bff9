package bench

import (
	"context"
	"math/rand"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
	"github.com/IlikeChooros/go-draughts/pkg/search"
)

// Arena participant, every worker plays with its own clone
type Player interface {
	Name() string
	// Choose a move for the side to move, the position must not be kept
	Search(ctx context.Context, pos *draughts.Position) (draughts.Move, error)
	Clone() Player
}

// Search engine with fixed limits
type EnginePlayer struct {
	name   string
	limits search.Limits
	engine *search.Engine
}

func NewEnginePlayer(name string, limits *search.Limits) *EnginePlayer {
	return &EnginePlayer{
		name:   name,
		limits: *limits,
		engine: search.NewEngine(),
	}
}

func (p *EnginePlayer) Name() string {
	return p.name
}

func (p *EnginePlayer) Search(ctx context.Context, pos *draughts.Position) (draughts.Move, error) {
	limits := p.limits
	p.engine.SetLimits(&limits)
	p.engine.SetContext(ctx)

	result, err := p.engine.Search(pos)
	if err != nil {
		return draughts.Move{}, err
	}
	return result.Move, nil
}

func (p *EnginePlayer) Clone() Player {
	return NewEnginePlayer(p.name, &p.limits)
}

// Plays uniformly random legal moves
type RandomPlayer struct {
	name string
	rand *rand.Rand
}

func NewRandomPlayer(name string) *RandomPlayer {
	return &RandomPlayer{name: name, rand: rand.New(rand.NewSource(SeedGeneratorFn()))}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) Search(_ context.Context, pos *draughts.Position) (draughts.Move, error) {
	moves := draughts.LegalMoves(pos, pos.Turn(), false)
	if moves.Size() == 0 {
		return draughts.Move{}, search.ErrNoLegalMoves
	}
	return moves.Slice()[p.rand.Intn(moves.Size())].Clone(), nil
}

func (p *RandomPlayer) Clone() Player {
	return &RandomPlayer{name: p.name, rand: rand.New(rand.NewSource(p.rand.Int63()))}
}
