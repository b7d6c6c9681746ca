package engine

import "foundersleague.dev/sim/internal/core"

// strategyModifier returns the (offense, defense) bonus a team's
// strategic stance contributes to its own strength formula: an
// aggressive team trades defense for offense, a defensive team the
// reverse, balanced contributes neither.
func strategyModifier(s core.Strategy) (offense, defense float64) {
	switch s {
	case core.StrategyAggressive:
		return 0.40, -0.20
	case core.StrategyDefensive:
		return -0.15, 0.30
	default:
		return 0, 0
	}
}

func skaterOffenseScore(p *core.Player) float64 {
	s := p.Skills
	return 0.64*s.Shooting + 0.36*s.Playmaking + 0.10*s.Physical
}

func defensemanOffenseScore(p *core.Player) float64 {
	s := p.Skills
	return 0.36*s.Shooting + 0.64*s.Playmaking + 0.08*s.Defense
}

func average(players []*core.Player, score func(*core.Player) float64) float64 {
	if len(players) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range players {
		total += score(p)
	}
	return total / float64(len(players))
}

// weightedGroups averages up to three ordered player groups using the
// supplied weights, renormalizing across whichever groups are
// non-empty so a short bench (missing the "depth" group) doesn't
// silently depress the score.
func weightedGroups(groups [][]*core.Player, weights []float64, score func(*core.Player) float64) float64 {
	var weightedSum, weightTotal float64
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		weightedSum += weights[i] * average(g, score)
		weightTotal += weights[i]
	}
	if weightTotal == 0 {
		return 0
	}
	return weightedSum / weightTotal
}

func splitForwards(forwards []*core.Player) (top6, mid6, depth []*core.Player) {
	n := len(forwards)
	if n > 6 {
		top6 = forwards[:6]
	} else {
		top6 = forwards[:n]
	}
	if n > 6 {
		end := n
		if end > 12 {
			end = 12
		}
		mid6 = forwards[6:end]
	}
	if n > 12 {
		depth = forwards[12:]
	}
	return
}

func splitDefense(defense []*core.Player) (top4, depth []*core.Player) {
	n := len(defense)
	if n > 4 {
		top4 = defense[:4]
		depth = defense[4:]
	} else {
		top4 = defense[:n]
	}
	return
}

func forwardOffense(forwards []*core.Player) float64 {
	top6, mid6, depth := splitForwards(forwards)
	return weightedGroups([][]*core.Player{top6, mid6, depth}, []float64{0.56, 0.29, 0.15}, skaterOffenseScore)
}

func defenseOffense(defense []*core.Player) float64 {
	top4, depth := splitDefense(defense)
	return weightedGroups([][]*core.Player{top4, depth}, []float64{0.72, 0.28}, defensemanOffenseScore)
}

// topHeavyFatigue penalizes a team that leans entirely on its top
// group relative to its depth: the bigger the usage gap between the
// top and bottom forward groups, the more the top group tires.
func topHeavyFatigue(forwards []*core.Player) float64 {
	top6, _, depth := splitForwards(forwards)
	if len(top6) == 0 || len(depth) == 0 {
		return 0
	}
	topAvg := average(top6, skaterOffenseScore)
	depthAvg := average(depth, skaterOffenseScore)
	gap := topAvg - depthAvg
	if gap < 0 {
		gap = 0
	}
	return core.Clamp(gap*0.05, 0, 0.15)
}

func teamOffense(forwards, defense []*core.Player) float64 {
	fwOff := forwardOffense(forwards)
	dOff := defenseOffense(defense)
	return fwOff*0.84 + dOff*0.16 - topHeavyFatigue(forwards)
}

func forwardDefenseAvg(forwards []*core.Player) float64 {
	return average(forwards, func(p *core.Player) float64 { return p.Skills.Defense })
}

func defensePairAvg(defense []*core.Player) float64 {
	top4, depth := splitDefense(defense)
	return weightedGroups([][]*core.Player{top4, depth}, []float64{0.72, 0.28}, func(p *core.Player) float64 { return p.Skills.Defense })
}

// GoaltendingPenalty describes the strength adjustment applied when a
// side has no true goaltender dressed.
type GoaltendingPenalty int

const (
	GoalieNormal GoaltendingPenalty = iota
	GoalieEmergencySkater
	GoalieNone
)

func (g GoaltendingPenalty) selfPenalty() float64 {
	switch g {
	case GoalieEmergencySkater:
		return -0.10
	case GoalieNone:
		return -0.12
	default:
		return 0
	}
}

func (g GoaltendingPenalty) opponentBonus() float64 {
	switch g {
	case GoalieEmergencySkater:
		return 0.95
	case GoalieNone:
		return 1.15
	default:
		return 0
	}
}

func teamDefense(forwards, defense []*core.Player, goalie *core.Player) float64 {
	goaltending := 0.0
	if goalie != nil {
		goaltending = goalie.Skills.Goaltending
	}
	return defensePairAvg(defense)*0.45 + goaltending*0.35 + forwardDefenseAvg(forwards)*0.20
}

// strengthInputs bundles everything the §4.2 home/away strength
// formula reads from one side of a matchup.
type strengthInputs struct {
	Forwards []*core.Player
	Defense  []*core.Player
	Goalie   *core.Player
	Status   GoaltendingPenalty

	Strategy      core.Strategy
	CoachOffense  float64
	CoachDefense  float64
	ContextBonus  float64
	LineupPenalty float64
}

func homeStrength(home, away strengthInputs) float64 {
	off := teamOffense(home.Forwards, home.Defense)
	oppDef := teamDefense(away.Forwards, away.Defense, away.Goalie)
	stratOff, _ := strategyModifier(home.Strategy)
	_, oppStratDef := strategyModifier(away.Strategy)

	return off*0.55 + (5-oppDef)*0.36 - 0.08 +
		stratOff - oppStratDef +
		home.CoachOffense - away.CoachDefense +
		home.ContextBonus -
		home.LineupPenalty +
		home.Status.selfPenalty() + away.Status.opponentBonus()
}

func awayStrength(away, home strengthInputs) float64 {
	off := teamOffense(away.Forwards, away.Defense)
	oppDef := teamDefense(home.Forwards, home.Defense, home.Goalie)
	stratOff, _ := strategyModifier(away.Strategy)
	_, oppStratDef := strategyModifier(home.Strategy)

	return off*0.55 + (5-oppDef)*0.36 - 0.22 +
		stratOff - oppStratDef +
		away.CoachOffense - home.CoachDefense +
		away.ContextBonus -
		away.LineupPenalty +
		away.Status.selfPenalty() + home.Status.opponentBonus()
}
