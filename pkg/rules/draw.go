package rules

import "github.com/IlikeChooros/go-draughts/pkg/draughts"

// Marker value of a condition that doesn't currently hold
const Unset = -1

// Start plies of the draw conditions, each one is the ply at which the condition
// started to hold without a break, Unset otherwise
type DrawState struct {
	KingsSince int // both sides own a king, the other markers require it
	KingsOnly  int
	Triangle   int
	PowerEqual int
	MainRoad   int

	// Occurrences of the current position since KingsSince, including itself
	Repeats int
}

func UnsetState() DrawState {
	return DrawState{
		KingsSince: Unset,
		KingsOnly:  Unset,
		Triangle:   Unset,
		PowerEqual: Unset,
		MainRoad:   Unset,
	}
}

// Single ply of the game: the position and the move that produced it
// (nil for the first entry)
type Entry struct {
	Position *draughts.Position
	Move     *draughts.Move
	State    DrawState
}

func since(marker, ply int) int {
	if marker == Unset {
		return ply
	}
	return marker
}

// Compute the draw state of the last entry and report the first draw clause
// that fires. The ply index is the entry index. States stored in the entries
// are ignored, every one of them is derived again from the positions and moves.
func Check(entries []Entry) (DrawState, FinishType) {
	state, finish := UnsetState(), FinishNone
	for ply := range entries {
		state, finish = next(entries[:ply+1], state)
	}
	return state, finish
}

// Draw state of the last entry, given the state of the entry before it
func next(entries []Entry, prev DrawState) (DrawState, FinishType) {
	state := UnsetState()
	if len(entries) == 0 {
		return state, FinishNone
	}

	ply := len(entries) - 1
	current := entries[ply]
	if ply == 0 {
		prev = UnsetState()
	}

	material := current.Position.Material()
	if material.Kings(draughts.White) == 0 || material.Kings(draughts.Black) == 0 {
		return state, FinishNone
	}

	finish := FinishNone
	fire := func(clause FinishType) {
		if finish == FinishNone {
			finish = clause
		}
	}

	state.KingsSince = since(prev.KingsSince, ply)

	if kingMove(current) {
		state.KingsOnly = since(prev.KingsOnly, ply)
		if ply-state.KingsOnly >= KingsOnlyPlies {
			fire(DrawKingsOnly)
		}
	}

	state.Repeats = repeats(entries, state.KingsSince)
	if state.Repeats >= RepetitionCount {
		fire(DrawRepetition)
	}

	if triangle(material) {
		state.Triangle = since(prev.Triangle, ply)
		if ply-state.Triangle >= TrianglePlies {
			fire(DrawTriangle)
		}
	}

	if ply > 0 && entries[ply-1].Position.Material() == material {
		state.PowerEqual = since(prev.PowerEqual, ply)
		if threshold, ok := powerEqualThreshold(material.Total()); ok && ply-state.PowerEqual >= threshold {
			fire(DrawPowerEqual)
		}
	}

	if loneKingOnMainRoad(current.Position) {
		state.MainRoad = since(prev.MainRoad, ply)
		if ply-state.MainRoad >= MainRoadPlies {
			fire(DrawMainRoad)
		}
	}

	return state, finish
}

// Quiet move of a piece that already was a king
func kingMove(e Entry) bool {
	m := e.Move
	if m == nil || m.IsCapture() || m.BecameKing {
		return false
	}
	return e.Position.Piece(m.Destination()).IsKing()
}

// Count the positions equal to the last one, going back no further than 'from'.
// Material never comes back once changed, so the scan stops at the first difference.
func repeats(entries []Entry, from int) int {
	last := len(entries) - 1
	current := entries[last].Position
	count := 1
	for j := last - 1; j >= from && j >= 0; j-- {
		pos := entries[j].Position
		if pos.Material() != current.Material() {
			break
		}
		if pos.Equal(current) {
			count++
		}
	}
	return count
}

// One side has a single king, the other at least three
func triangle(m draughts.Material) bool {
	w, b := m.Kings(draughts.White), m.Kings(draughts.Black)
	return (w == 1 && b >= 3) || (b == 1 && w >= 3)
}

// Four pieces on the board, one side owns just a king and it stands on the main road
func loneKingOnMainRoad(pos *draughts.Position) bool {
	m := pos.Material()
	if m.Total() != 4 {
		return false
	}

	for _, c := range [2]draughts.Color{draughts.White, draughts.Black} {
		if m.Pieces(c) != 1 || m.Kings(c) != 1 {
			continue
		}
		king := pos.Pieces(c)[0]
		return pos.Topology().OnMainRoad(king)
	}
	return false
}
