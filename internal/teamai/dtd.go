package teamai

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// DTDContext carries the per-day facts the §4.3 play-today formula
// reads beyond the player's own severity and the team's coach
// quality.
type DTDContext struct {
	NoHealthyDepthAtPosition bool
	InPlayoffs               bool
	EliminationGame           bool
	Underdog                  bool
	ImpactPlayer              bool
}

// DecidePlayToday rolls the Bernoulli play-today decision for one DTD
// player. Goalies with no healthy backup always play.
func DecidePlayToday(p *core.Player, style core.Strategy, ctx DTDContext, coachQuality float64, severity float64, rng *rand.Rand) bool {
	if p.IsGoalie() && ctx.NoHealthyDepthAtPosition {
		return true
	}

	prob := 0.34 + 0.22*coachQuality

	if ctx.ImpactPlayer {
		prob += 0.08
	}
	if ctx.Underdog {
		prob += 0.06
	}
	prob -= severity

	switch style {
	case core.StrategyAggressive:
		prob += 0.08
	case core.StrategyDefensive:
		prob -= 0.07
	}

	if ctx.NoHealthyDepthAtPosition {
		prob += 0.20
	}
	if ctx.InPlayoffs {
		prob += 0.11
	}
	if ctx.EliminationGame {
		prob += 0.10
	}

	prob = core.Clamp(prob, 0.12, 0.94)
	return rng.Float64() < prob
}
