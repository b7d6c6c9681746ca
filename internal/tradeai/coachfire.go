package tradeai

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// FiringReviewInputs carries the per-team facts the weekly CPU
// coach-firing review reads beyond the coach's own rating and tenure.
type FiringReviewInputs struct {
	PointPct       float64
	ExpectedPointPct float64
	MissedPlayoffsLastSeason bool
}

// firingCap is the hard ceiling on weekly firing probability; no
// combination of inputs can push a review above it.
const firingCap = 0.62

// FiringProbability computes the weekly probability that `team`'s
// coach is dismissed, given how the team is performing relative to
// its own expectation.
func FiringProbability(c *core.Coach, in FiringReviewInputs) float64 {
	if c.HoneymoonGamesLeft > 0 {
		return 0
	}

	gap := in.ExpectedPointPct - in.PointPct
	if gap <= 0 {
		return 0
	}

	prob := gap * 1.4

	if in.MissedPlayoffsLastSeason {
		prob += 0.08
	}
	if c.TenureSeasons >= 4 {
		prob += 0.05
	}
	if c.Rating >= 4.2 {
		prob *= 0.6
	}

	if prob > firingCap {
		prob = firingCap
	}
	if prob < 0 {
		prob = 0
	}
	return prob
}

// ReviewFiring rolls the weekly firing decision for one team's coach.
// On dismissal it increments the coach's RecentChangesCount and
// returns true; it does not install a replacement coach and leaves
// tenure and honeymoon counters unchanged.
func ReviewFiring(team *core.Team, in FiringReviewInputs, rng *rand.Rand) bool {
	prob := FiringProbability(&team.Coach, in)
	if prob <= 0 {
		return false
	}
	if rng.Float64() >= prob {
		return false
	}
	team.Coach.RecentChangesCount++
	return true
}
