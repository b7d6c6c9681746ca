package engine

import (
	"math"
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// sampleGoals draws a game's regulation goal total for one side from
// a Poisson-like distribution centered on strength, perturbed by
// uniform noise scaled by randScale, clamped to a plausible lambda
// range before sampling and truncated at zero.
func sampleGoals(rng *rand.Rand, strength, randScale float64) int {
	noise := (rng.Float64()*2 - 1) * 0.18 * randScale
	lambda := core.Clamp(strength+noise, 1.5, 3.5)
	return poisson(rng, lambda)
}

// poisson draws from a Poisson distribution via Knuth's algorithm.
func poisson(rng *rand.Rand, lambda float64) int {
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= rng.Float64()
		if p <= l {
			break
		}
	}
	return k - 1
}

// resolveOvertime flips a coin with a slight home bias for a
// regulation tie. Returns true if home wins.
func resolveOvertime(rng *rand.Rand) bool {
	return rng.Float64() < 0.52
}
