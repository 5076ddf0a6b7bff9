package search

import "golang.org/x/exp/constraints"

// Piece values used by the static evaluation
var (
	ManValue  = 100
	KingValue = 300
)

// Weight of a single reachable empty square in the mobility term
var MobilityWeight = 1

// Limit of the mobility term. Any two material balances differ by at least
// gcd(ManValue, KingValue), so mobility only breaks ties between equal material.
var mobilityBound = (gcd(ManValue, KingValue) - 1) / 2

// Score of a won position, faster wins get higher scores: WinScore - ply
var WinScore = 1_000_000

// Nodes with fewer legal moves than this are searched one ply deeper
var ShallowBranchThreshold = 3

// Maximum number of shallow-branch extensions along a single line
var MaxExtensions = 8

// Depth used when no other limit is given
var DefaultDepth = 6

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Set the values of men and kings, kings are never worth less than men
func SetPieceValues(man, king int) {
	ManValue = max(1, man)
	KingValue = max(ManValue, king)
	mobilityBound = (gcd(ManValue, KingValue) - 1) / 2
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func SetMobilityWeight(w int) {
	MobilityWeight = max(0, w)
}

// Set the win score, must stay far above any material evaluation
func SetWinScore(score int) {
	WinScore = max(score, 1000*KingValue)
}

func SetShallowBranchThreshold(n int) {
	ShallowBranchThreshold = max(0, n)
}

func SetMaxExtensions(n int) {
	MaxExtensions = clamp(n, 0, MaxDepth)
}

func SetDefaultDepth(depth int) {
	DefaultDepth = clamp(depth, 1, MaxDepth)
}
