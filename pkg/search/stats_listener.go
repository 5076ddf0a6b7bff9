package search

import "github.com/IlikeChooros/go-draughts/pkg/draughts"

type SearchStats struct {
	Depth      int
	Nodes      uint32
	TimeMs     int
	Nps        uint32
	BestMove   draughts.Move
	Eval       int
	StopReason StopReason
}

func toSearchStats(engine *Engine, best draughts.Move, eval, depth int) SearchStats {
	elapsed := engine.limiter.Elapsed()
	return SearchStats{
		Depth:      depth,
		Nodes:      engine.nodes,
		TimeMs:     int(elapsed),
		Nps:        uint32(uint64(engine.nodes) * 1000 / uint64(elapsed)),
		BestMove:   best,
		Eval:       eval,
		StopReason: engine.limiter.StopReason(),
	}
}

// Listener function callback, receives current search statistics
type ListenerFunc func(SearchStats)

type StatsListener struct {
	// called after every completed iteration of the iterative deepening
	onDepth ListenerFunc

	// called after every fully searched root move, with that move and its score
	onRootMove ListenerFunc

	// called once when the search stops (either by limiter or 'stop' signal)
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

func (listener *StatsListener) OnRootMove(onRootMove ListenerFunc) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}
