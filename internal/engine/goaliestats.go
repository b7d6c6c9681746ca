package engine

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// sampleShots draws shots-against for a goalie from the §4.2 formula.
func sampleShots(rng *rand.Rand, goalsAgainst int, goaltending float64) int {
	base := 22 + 1.6*float64(goalsAgainst) + rng.Float64()*10 + (3.5-goaltending)*1.0
	floor := float64(goalsAgainst + 8)
	if base < floor {
		base = floor
	}
	return int(base)
}

// recordGoalieDecision updates a goalie's season stats for one game.
func recordGoalieDecision(g *core.Player, goalsAgainst int, won, overtimeLoss bool, shots int) {
	g.GoalieStats.GP++
	g.GoalieStats.ShotsAgainst += shots
	g.GoalieStats.GoalsAgainst += goalsAgainst
	saves := shots - goalsAgainst
	if saves < 0 {
		saves = 0
	}
	g.GoalieStats.Saves += saves

	switch {
	case won:
		g.GoalieStats.Wins++
		if goalsAgainst == 0 {
			g.GoalieStats.Shutouts++
		}
	case overtimeLoss:
		g.GoalieStats.OTLosses++
	default:
		g.GoalieStats.Losses++
	}
}
