package rules

// Draw thresholds, in plies of an unbroken streak
var (
	KingsOnlyPlies = 15
	TrianglePlies  = 15
	MainRoadPlies  = 10

	// Occurrences of the same position that make a draw
	RepetitionCount = 3
)

// Power-equal thresholds, by the total number of pieces on the board
var (
	PowerEqualTiny   = 5  // fewer than 4 pieces
	PowerEqualSmall  = 30 // fewer than 6 pieces
	PowerEqualMedium = 60 // fewer than 8 pieces
)

// Streak needed for the power-equal draw, false if the clause doesn't apply
func powerEqualThreshold(total int) (int, bool) {
	switch {
	case total < 4:
		return PowerEqualTiny, true
	case total < 6:
		return PowerEqualSmall, true
	case total < 8:
		return PowerEqualMedium, true
	}
	return 0, false
}
