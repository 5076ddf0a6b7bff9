package rules

import "github.com/IlikeChooros/go-draughts/pkg/draughts"

// Append-only log of the played positions, entries are removed only by Truncate
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{entries: make([]Entry, 0, 64)}
}

// Store a copy of the position with the move that produced it (nil for the
// first position), returns the draw clause that fired, if any
func (h *History) Push(pos *draughts.Position, move *draughts.Move) FinishType {
	entry := Entry{Position: pos.Clone()}
	if move != nil {
		m := move.Clone()
		entry.Move = &m
	}

	prev := UnsetState()
	if n := len(h.entries); n > 0 {
		prev = h.entries[n-1].State
	}

	h.entries = append(h.entries, entry)
	state, finish := next(h.entries, prev)
	h.entries[len(h.entries)-1].State = state
	return finish
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) At(i int) Entry {
	return h.entries[i]
}

func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Keep only the first n entries
func (h *History) Truncate(n int) {
	if n < len(h.entries) {
		clear(h.entries[max(n, 0):])
		h.entries = h.entries[:max(n, 0)]
	}
}

func (h *History) Clear() {
	h.Truncate(0)
}

// Get the actual slice of entries, must not be modified
func (h *History) Entries() []Entry {
	return h.entries
}
