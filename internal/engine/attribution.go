package engine

import (
	"math"
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// deploymentUsage approximates ice-time share from a skater's index in
// its group: the first six get full usage (as does everyone in a group
// of six or fewer) and the rest get 0.55.
func deploymentUsage(idx, groupSize int) float64 {
	if groupSize <= 6 {
		return 1.0
	}
	if idx < 6 {
		return 1.0
	}
	return 0.55
}

func roleMod(pos core.Position) float64 {
	if pos.IsForward() {
		return 1.10
	}
	return 0.68
}

func positionMod(pos core.Position) float64 {
	if pos.IsForward() {
		return 1.0
	}
	return 0.75
}

// weightedPick samples one index from weights (must be non-negative,
// not all zero) proportionally.
func weightedPick(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return i
		}
	}
	return len(weights) - 1
}

// scorerWeights computes the §4.2 scorer-weight for every dressed
// skater (forwards then defense, in that order).
func scorerWeights(skaters []*core.Player) []float64 {
	weights := make([]float64, len(skaters))
	for i, p := range skaters {
		scoringWeight := (p.Skills.Shooting + p.Skills.Playmaking) / 2
		usage := deploymentUsage(i, len(skaters))
		w := scoringWeight * roleMod(p.Position) * usage
		weights[i] = math.Pow(math.Max(w, 0), 2.25)
	}
	return weights
}

func assistWeights(skaters []*core.Player) []float64 {
	weights := make([]float64, len(skaters))
	for i, p := range skaters {
		w := p.Skills.Playmaking*positionMod(p.Position) + 0.05*p.Skills.Defense
		weights[i] = math.Pow(math.Max(w, 0), 1.55)
	}
	return weights
}

// attributeGoal picks a scorer and 0-2 distinct assisters from the
// dressed forwards+defense of the scoring team.
func attributeGoal(rng *rand.Rand, teamName string, forwards, defense []*core.Player, powerPlay bool) core.GoalEvent {
	skaters := append(append([]*core.Player{}, forwards...), defense...)
	if len(skaters) == 0 {
		return core.GoalEvent{TeamName: teamName, PowerPlay: powerPlay}
	}

	scorerW := scorerWeights(skaters)
	scorerIdx := weightedPick(rng, scorerW)
	scorer := skaters[scorerIdx]

	event := core.GoalEvent{TeamName: teamName, Scorer: scorer.Name, PowerPlay: powerPlay}

	remaining := make([]*core.Player, 0, len(skaters)-1)
	for i, p := range skaters {
		if i != scorerIdx {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) > 0 && rng.Float64() < 0.79 {
		aw := assistWeights(remaining)
		idx := weightedPick(rng, aw)
		primary := remaining[idx]
		event.Assists = append(event.Assists, primary.Name)

		remaining2 := make([]*core.Player, 0, len(remaining)-1)
		for i, p := range remaining {
			if i != idx {
				remaining2 = append(remaining2, p)
			}
		}
		if len(remaining2) > 0 && rng.Float64() < 0.43 {
			aw2 := assistWeights(remaining2)
			idx2 := weightedPick(rng, aw2)
			event.Assists = append(event.Assists, remaining2[idx2].Name)
		}
	}

	return event
}
