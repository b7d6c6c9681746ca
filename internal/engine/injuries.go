package engine

import (
	"math"
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// injuryRate returns the §4.2 per-player-game baseline injury event
// rate, modulated by the team's strategy multiplier and the player's
// own durability.
func injuryRate(p *core.Player, strategyMult, injuryMult float64) float64 {
	typeFactor := 1.0
	if p.IsGoalie() {
		typeFactor = 0.65
	}
	base := 0.01357 * strategyMult * (1.35 - p.Skills.Durability/10) * typeFactor
	return base * injuryMult
}

// strategyInjuryMultiplier maps a strategy stance onto the injury
// baseline: aggressive play draws more contact.
func strategyInjuryMultiplier(s core.Strategy) float64 {
	switch s {
	case core.StrategyAggressive:
		return 1.35
	case core.StrategyDefensive:
		return 0.82
	default:
		return 1.0
	}
}

// rollInjury decides whether p is injured this game and, if so, how
// many games they will miss. injuryMult folds in schedule/back-to-back
// overrides applied by the league layer.
func rollInjury(rng *rand.Rand, p *core.Player, strategy core.Strategy, injuryMult float64) (injured bool, gamesOut int) {
	rate := injuryRate(p, strategyInjuryMultiplier(strategy), injuryMult)
	if rng.Float64() >= rate {
		return false, 0
	}

	mean := 8.04 * (0.92 + 0.16*strategyInjuryMultiplier(strategy))
	drawn := geometricLike(rng, mean)
	if drawn > 30 {
		drawn = 30
	}
	return true, drawn
}

// geometricLike draws a positive integer from a geometric-like
// distribution with the requested mean via inverse-CDF sampling of
// an exponential, rounded up, which approximates the source's
// distribution without requiring its exact shape parameters.
func geometricLike(rng *rand.Rand, mean float64) int {
	u := rng.Float64()
	if u <= 0 {
		u = 1e-9
	}
	v := -mean * math.Log(u)
	n := int(math.Ceil(v))
	if n < 1 {
		n = 1
	}
	return n
}

// applyInjury updates p's injury bookkeeping after rollInjury reports
// a new injury.
func applyInjury(p *core.Player, gamesOut int) {
	if gamesOut > p.InjuredGamesRemaining {
		p.InjuredGamesRemaining = gamesOut
	}
	p.Injuries++
	if p.Status == core.StatusHealthy {
		p.Status = core.StatusDTD
	}
}
