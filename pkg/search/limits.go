package search

import (
	"encoding/json"
	"math"
	"strings"
)

// Search budget, any combination of the limits can be set,
// the search stops as soon as the first one is reached
type Limits struct {
	Depth    int
	Nodes    uint32
	Movetime int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultNodeLimit     uint32 = math.MaxUint32
	DefaultMovetimeLimit int    = -1

	// Deepest iteration ever started, also used by infinite searches
	MaxDepth int = 64
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepth,
		Nodes:    DefaultNodeLimit,
		Movetime: DefaultMovetimeLimit,
	}
}

// Set the maximum depth of the search (in plies, not counting extensions)
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = clamp(depth, 1, MaxDepth)
	l.Infinite = false
	return l
}

// Set the maximum number of nodes engine can visit
func (l *Limits) SetNodes(nodes uint32) *Limits {
	l.Nodes = max(nodes, 1)
	l.Infinite = false
	return l
}

// Set the maximum time for engine to think, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

// Search until stopped, ignores the depth limit
func (l *Limits) SetInfinite(infinite bool) *Limits {
	l.Infinite = infinite
	return l
}

// The deepest iteration allowed by these limits
func (l *Limits) MaxIterationDepth() int {
	if l.Infinite {
		return MaxDepth
	}
	return clamp(l.Depth, 1, MaxDepth)
}
