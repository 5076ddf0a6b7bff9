package bench

import "time"

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random openings and random players,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// Number of random plies played before the players take over,
// so that deterministic engines don't replay the same game
var RandomPlies = 4

func SetRandomPlies(n int) {
	RandomPlies = max(0, n)
}

// First terminal row used by the per-worker progress lines
const statsRowStart = 2
