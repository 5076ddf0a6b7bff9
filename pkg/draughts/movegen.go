package draughts

// Set of banned directions for the next hop of a capture chain
type dirMask uint8

func (m dirMask) has(d Direction) bool {
	return m&(1<<d) != 0
}

func (m dirMask) with(d Direction) dirMask {
	return m | (1 << d)
}

func (m dirMask) count() int {
	n := 0
	for d := Direction(0); d < nDirections; d++ {
		if m.has(d) {
			n++
		}
	}
	return n
}

// One hop of the chain currently being explored
type chainLink struct {
	hop      Hop
	promoted bool
}

// Capture chain search state, works directly on the position: every explored
// hop is applied to the board and reverted before trying the next one
type generator struct {
	pos      *Position
	list     *MoveList
	chain    []chainLink
	frontend bool
}

// Generate all legal moves for the given color. If any capture exists, only
// (maximal) capture chains are returned, otherwise the quiet moves.
//
// 'forFrontend' disables the extra direction ban used to avoid generating
// equivalent chains, so that a user interface sees every complete chain.
func LegalMoves(pos *Position, color Color, forFrontend bool) *MoveList {
	movelist := NewMoveList()
	gen := generator{pos: pos, list: movelist, frontend: forFrontend}
	squares := pos.Pieces(color)

	for _, sq := range squares {
		gen.captures(sq, 0)
	}

	if movelist.Size() == 0 {
		for _, sq := range squares {
			appendQuietMoves(pos, sq, movelist)
		}
	}
	return movelist
}

// Generate quiet moves of the piece on given square, ignores the mandatory capture rule
func QuietMoves(pos *Position, sq Square) *MoveList {
	movelist := NewMoveList()
	appendQuietMoves(pos, sq, movelist)
	return movelist
}

// Generate maximal capture chains of the piece on given square
func Captures(pos *Position, sq Square, forFrontend bool) *MoveList {
	movelist := NewMoveList()
	gen := generator{pos: pos, list: movelist, frontend: forFrontend}
	gen.captures(sq, 0)
	return movelist
}

func appendQuietMoves(pos *Position, sq Square, movelist *MoveList) {
	piece := pos.cells[sq]
	if piece.Empty() {
		return
	}

	topo := pos.topo
	for _, ray := range topo.Rays(sq) {
		if piece.IsKing() {
			// Kings fly until the first obstacle
			for _, to := range ray.Squares {
				if !pos.cells[to].Empty() {
					break
				}
				movelist.Append(NewQuietMove(sq, to, false))
			}
			continue
		}

		if !ray.Dir.Forward(piece.Color) {
			continue
		}
		if to := ray.Squares[0]; pos.cells[to].Empty() {
			movelist.Append(NewQuietMove(sq, to, topo.IsKingRow(piece.Color, to)))
		}
	}
}

// Find the piece that can be jumped along the ray, returns its index in the ray
// and the landing squares behind it. Men look only at the adjacent square and
// land right behind it, kings scan up to the first piece and may land on any
// empty square behind it, up to the next obstacle.
func (g *generator) strike(piece Piece, ray []Square) (int, []Square) {
	if len(ray) < 2 {
		return -1, nil
	}

	limit := 2
	if piece.IsKing() {
		limit = len(ray)
	}

	victim := -1
	for i := 0; i < limit-1; i++ {
		if candidate := g.pos.cells[ray[i]]; !candidate.Empty() {
			if candidate.Color == piece.Color || candidate.Captured {
				return -1, nil
			}
			victim = i
			break
		}
	}

	if victim == -1 {
		return -1, nil
	}

	end := victim + 1
	for end < limit && g.pos.cells[ray[end]].Empty() {
		end++
	}
	return victim, ray[victim+1 : end]
}

// Search capture chains of the piece on 'sq', emitting only maximal ones.
// Returns true if at least one capture was possible from this square.
func (g *generator) captures(sq Square, banned dirMask) bool {
	piece := g.pos.cells[sq]
	if piece.Empty() {
		return false
	}

	found := false
	for _, ray := range g.pos.topo.Rays(sq) {
		if banned.has(ray.Dir) {
			continue
		}

		victim, landings := g.strike(piece, ray.Squares)
		if len(landings) == 0 {
			continue
		}

		found = true
		captured := ray.Squares[victim]
		nextBan := dirMask(0).with(ray.Dir.Reverse())
		continued := false

		for _, to := range landings {
			if g.explore(Hop{From: sq, To: to, Captured: captured}, nextBan) {
				continued = true
			}
			// Going on in the same direction from a further landing square
			// repeats chains already found from the nearer one
			if !g.frontend && nextBan.count() < 2 {
				nextBan = nextBan.with(ray.Dir)
			}
		}

		// Only leaves of the capture tree are legal moves
		if !continued {
			for _, to := range landings {
				g.emit(Hop{From: sq, To: to, Captured: captured}, piece)
			}
		}
	}
	return found
}

// Speculatively make the hop, look for continuations and take the hop back
func (g *generator) explore(hop Hop, banned dirMask) bool {
	promoted := g.applyHop(hop)
	defer g.revertHop(hop, promoted)

	g.chain = append(g.chain, chainLink{hop: hop, promoted: promoted})
	defer func() { g.chain = g.chain[:len(g.chain)-1] }()

	return g.captures(hop.To, banned)
}

func (g *generator) applyHop(hop Hop) bool {
	pos := g.pos
	pos.swap(hop.From, hop.To)
	pos.cells[hop.Captured].Captured = true

	piece := &pos.cells[hop.To]
	if !piece.IsKing() && pos.topo.IsKingRow(piece.Color, hop.To) {
		// A man reaching the last row mid-chain goes on capturing as a king
		piece.Rank = RankKing
		return true
	}
	return false
}

func (g *generator) revertHop(hop Hop, promoted bool) {
	pos := g.pos
	if promoted {
		pos.cells[hop.To].Rank = RankMan
	}
	pos.cells[hop.Captured].Captured = false
	pos.swap(hop.From, hop.To)
}

// Append the current chain, finished with the last hop, to the move list
func (g *generator) emit(last Hop, piece Piece) {
	hops := make([]Hop, 0, len(g.chain)+1)
	becameKing := false
	for _, link := range g.chain {
		hops = append(hops, link.hop)
		becameKing = becameKing || link.promoted
	}
	hops = append(hops, last)

	if !piece.IsKing() && g.pos.topo.IsKingRow(piece.Color, last.To) {
		becameKing = true
	}

	g.list.Append(Move{Kind: CaptureChain, Hops: hops, BecameKing: becameKing})
}
