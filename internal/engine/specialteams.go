package engine

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// disciplineRating is the per-side penalty-drawing rate, derived from
// forward/defense physical ratings (more physical play draws more
// penalties) modulated by strategy.
func disciplineRating(forwards, defense []*core.Player, strategy core.Strategy) float64 {
	skaters := append(append([]*core.Player{}, forwards...), defense...)
	base := average(skaters, func(p *core.Player) float64 { return p.Skills.Physical })
	mod := 0.0
	switch strategy {
	case core.StrategyAggressive:
		mod = 0.95
	case core.StrategyDefensive:
		mod = -0.45
	}
	return base + mod
}

// samplePenalties draws the number of power-play chances a side earns
// against its opponent, from the opponent's discipline rating plus
// referee variance.
func samplePenalties(rng *rand.Rand, opponentDiscipline float64) int {
	base := 2.4 + opponentDiscipline*0.35
	variance := (rng.Float64()*2 - 1) * 1.1
	n := int(base + variance)
	if n < 0 {
		return 0
	}
	if n > 8 {
		return 8
	}
	return n
}

// ppConversionRate is the §4.2 power-play conversion-rate formula.
func ppConversionRate(pp, oppPK, oppGoalie, coachOffense float64) float64 {
	rate := 0.135 + 0.024*(pp-3.0) - 0.020*(oppPK-3.0) - 0.015*(oppGoalie-3.0) + 0.05*coachOffense
	return core.Clamp(rate, 0.05, 0.31)
}

// ppRating is the average playmaking+shooting of a side's dressed
// forwards, used as the "pp" input to ppConversionRate.
func ppRating(forwards []*core.Player) float64 {
	return average(forwards, func(p *core.Player) float64 {
		return (p.Skills.Shooting + p.Skills.Playmaking) / 2
	})
}

// pkRating is the average defense rating of a side's dressed defense,
// used as the "pk" input to the opponent's ppConversionRate.
func pkRating(defense []*core.Player) float64 {
	return average(defense, func(p *core.Player) float64 { return p.Skills.Defense })
}

// simulateSpecialTeams draws each side's power-play chances and
// independently resolves each chance, returning (chances, goals) for
// each side.
func simulateSpecialTeams(rng *rand.Rand, home, away strengthInputs) (homePP, homePPGoals, awayPP, awayPPGoals int) {
	homePP = samplePenalties(rng, disciplineRating(away.Forwards, away.Defense, away.Strategy))
	awayPP = samplePenalties(rng, disciplineRating(home.Forwards, home.Defense, home.Strategy))

	awayGoalieRating := 0.0
	if away.Goalie != nil {
		awayGoalieRating = away.Goalie.Skills.Goaltending
	}
	homeGoalieRating := 0.0
	if home.Goalie != nil {
		homeGoalieRating = home.Goalie.Skills.Goaltending
	}

	homeRate := ppConversionRate(ppRating(home.Forwards), pkRating(away.Defense), awayGoalieRating, home.CoachOffense)
	awayRate := ppConversionRate(ppRating(away.Forwards), pkRating(home.Defense), homeGoalieRating, away.CoachOffense)

	for i := 0; i < homePP; i++ {
		if rng.Float64() < homeRate {
			homePPGoals++
		}
	}
	for i := 0; i < awayPP; i++ {
		if rng.Float64() < awayRate {
			awayPPGoals++
		}
	}
	return
}
