package teamai

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// GoalieContext carries the scheduling facts the starter-selection
// formulas need beyond the two goaltenders' own ratings and recent
// workload.
type GoalieContext struct {
	BackToBack bool
	InPlayoffs bool
}

// ChooseStarter picks between a team's top two dressed goaltenders
// for today's game, applying the regular-season rest/hot-hand rules
// or the playoff switch rule depending on ctx.
func ChooseStarter(team *core.Team, starter, backup *core.Player, ctx GoalieContext, rng *rand.Rand) *core.Player {
	if backup == nil {
		return starter
	}
	if starter == nil {
		return backup
	}

	if ctx.InPlayoffs {
		if shouldSwitchInPlayoffs(starter, backup) {
			return backup
		}
		return starter
	}

	quality := team.Coach.CoachQuality()

	if ctx.BackToBack {
		gap := starter.Skills.Goaltending - backup.Skills.Goaltending
		restProb := core.Clamp(0.88-gap*0.1, 0.5, 0.95)
		if rng.Float64() < restProb {
			return backup
		}
		return starter
	}

	gpGap := starter.GoalieStats.GP - backup.GoalieStats.GP
	fatigue := 0.0
	if gpGap > 6 {
		fatigue = float64(gpGap-6) * 0.01
	}
	startProb := core.Clamp(0.70+0.12*quality-fatigue, 0.52, 0.94)
	if rng.Float64() < startProb {
		return starter
	}
	return backup
}

// shouldSwitchInPlayoffs implements the §4.3 playoff starter-switch
// trigger: a cold recent window or a single disaster start benches
// the incumbent in favor of a backup who has been hot.
func shouldSwitchInPlayoffs(starter, backup *core.Player) bool {
	starterSV := starter.GoalieStats.SavePct()
	backupSV := backup.GoalieStats.SavePct()

	coldWindow := starter.GoalieStats.GP >= 2 && starterSV < 0.885
	disaster := starter.GoalieStats.GoalsAgainst >= 4 && starterSV < 0.860
	backupHot := backup.GoalieStats.GP > 0 && backupSV >= 0.895

	return (coldWindow || disaster) && backupHot
}
