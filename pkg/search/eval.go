package search

import "github.com/IlikeChooros/go-draughts/pkg/draughts"

// Static evaluation from White's point of view: material balance plus
// mobility, the number of empty squares each piece could step onto.
// The mobility term is capped, so it never outweighs a material difference.
func Evaluate(pos *draughts.Position) int {
	score := pos.Material().Value(ManValue, KingValue)
	if MobilityWeight != 0 {
		diff := MobilityWeight * (mobility(pos, draughts.White) - mobility(pos, draughts.Black))
		score += clamp(diff, -mobilityBound, mobilityBound)
	}
	return score
}

func mobility(pos *draughts.Position, color draughts.Color) int {
	topo := pos.Topology()
	count := 0
	for _, sq := range pos.Pieces(color) {
		piece := pos.Piece(sq)
		for _, ray := range topo.Rays(sq) {
			if !piece.IsKing() {
				if ray.Dir.Forward(color) && pos.Piece(ray.Squares[0]).Empty() {
					count++
				}
				continue
			}
			for _, to := range ray.Squares {
				if !pos.Piece(to).Empty() {
					break
				}
				count++
			}
		}
	}
	return count
}

// Score of a position where the side to move has no legal moves
func terminalScore(loser draughts.Color, ply int) int {
	if loser == draughts.White {
		return -(WinScore - ply)
	}
	return WinScore - ply
}

// Whether the score is a forced win or loss
func IsMateScore(score int) bool {
	return score >= WinScore-MaxDepth*4 || score <= -(WinScore-MaxDepth*4)
}
