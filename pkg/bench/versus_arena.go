package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
	"github.com/IlikeChooros/go-draughts/pkg/game"
	"github.com/IlikeChooros/go-draughts/pkg/rules"
	"github.com/IlikeChooros/go-draughts/pkg/search"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, plays a series of games between two players
(usually differently configured search engines) on several workers.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Player
	Player2  Player
	NGames   int
	NWorkers int
	MaxPlies int
	Position *draughts.Position
	ctx      context.Context
	done     chan error
}

func NewVersusArena(topo *draughts.Topology, p1, p2 Player) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NWorkers: 2,
		MaxPlies: 200,
		Position: draughts.StartingPosition(topo),
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

// Set the number of games, workers and the ply cap after which a game is a draw
func (va *VersusArena) Setup(nGames, nWorkers, maxPlies int) {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
	va.MaxPlies = max(maxPlies, 1)
}

// Start the games in the background, use Wait to get the result
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = &DefaultListener{}
	}

	va.done = make(chan error, 1)
	group, ctx := errgroup.WithContext(va.ctx)
	listener.OnStart()

	// Equally distributed work between the workers
	nGames := va.NGames / va.NWorkers
	rest := va.NGames % va.NWorkers
	for i := range va.NWorkers {
		games := nGames
		if i < rest {
			games++
		}

		// Clone everything here, workers must not share players
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		l := listener.Clone()
		l.SetRow(i + statsRowStart)
		seed := SeedGeneratorFn() + int64(i)

		group.Go(func() error {
			return va.worker(ctx, i, games, seed, l, p1, p2)
		})
	}

	go func() {
		err := group.Wait()
		listener.Summary(VersusSummaryInfo{
			TotalGames:       va.Total(),
			P1Wins:           va.P1Wins(),
			P2Wins:           va.P2Wins(),
			FirstToMoveWins:  va.FirstToMoveWins(),
			SecondToMoveWins: va.SecondToMoveWins(),
			Draws:            va.Draws(),
			Workers:          va.NWorkers,
			P1Name:           va.Player1.Name(),
			P2Name:           va.Player2.Name(),
		})
		listener.OnEnd()
		va.done <- err
	}()
}

// Block until every game is played, returns the first worker error
// (context.Canceled if the arena was cancelled)
func (va *VersusArena) Wait() error {
	return <-va.done
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, seed int64, listener ListenerLike, p1, p2 Player) error {
	r := rand.New(rand.NewSource(seed))
	local := VersusArenaStats{}

	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   p1.Name(),
		P2Name:   p2.Name(),
	}

	for i := range nGames {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Alternate who moves first
		p1First := i%2 == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		info.FinishedGames = i
		outcome, err := va.playGame(ctx, r, first, second, listener, info)
		if err != nil {
			return err
		}
		// Interrupted game doesn't count
		if err := ctx.Err(); err != nil {
			return err
		}

		result := toAgentResult(outcome, p1First)
		va.add(result, outcome)
		local.add(result, outcome)
		info.P1Wins, info.P2Wins, info.Draws = local.P1Wins(), local.P2Wins(), local.Draws()
	}

	info.FinishedGames = nGames
	listener.OnFinishedWork(info)
	return nil
}

func (va *VersusArena) playGame(
	ctx context.Context, r *rand.Rand, first, second Player,
	listener ListenerLike, info VersusWorkerInfo,
) (GameOutcome, error) {
	listener.OnGameStart()
	g := game.NewFromPosition(va.Position)
	moves := make([]draughts.Move, 0, va.MaxPlies)

	// Random opening, a game decided already counts as a draw
	finish := rules.FinishNone
	for range RandomPlies {
		legal := g.LegalMoves(false)
		if legal.Size() == 0 || finish.Finished() {
			break
		}
		move := legal.Slice()[r.Intn(legal.Size())].Clone()
		var err error
		if finish, err = g.Apply(move); err != nil {
			return GameOutcome{}, err
		}
		moves = append(moves, move)
	}
	opening := finish.Finished()

	firstColor := g.Turn()
	players := [2]Player{first, second}

	for ply := 0; ply < va.MaxPlies && !finish.Finished(); ply++ {
		if ctx.Err() != nil {
			break
		}

		move, err := players[ply%2].Search(ctx, g.Position())
		if err != nil {
			if errors.Is(err, search.ErrNoLegalMoves) {
				break
			}
			return GameOutcome{}, fmt.Errorf("worker %d, %s: %w", info.WorkerID, players[ply%2].Name(), err)
		}

		if finish, err = g.Apply(move); err != nil {
			return GameOutcome{}, fmt.Errorf("worker %d, %s played %v: %w", info.WorkerID, players[ply%2].Name(), move, err)
		}
		moves = append(moves, move)

		info.Moves = moves
		info.GameMoveNum = len(moves)
		listener.OnMoveMade(info)
	}

	info.Moves = moves
	info.GameMoveNum = len(moves)
	info.Position = g.Position()
	info.Finish = finish
	listener.OnFinishedGame(info)

	if opening {
		return GameOutcome{IsDraw: true, Finish: finish}, nil
	}
	return computeOutcome(finish, firstColor), nil
}
