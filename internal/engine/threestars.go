package engine

import (
	"sort"

	"foundersleague.dev/sim/internal/core"
)

type gameStatLine struct {
	player  *core.Player
	goals   int
	assists int
}

type goalieLine struct {
	player       *core.Player
	shots, saves int
	goalsAgainst int
	won, shutout bool
}

func skaterStarScore(goals, assists int) float64 {
	points := goals + assists
	score := 52.0*float64(points) + 18.0*float64(goals) + 8.0*float64(assists)
	if points >= 3 {
		score += 18
	}
	if goals >= 2 {
		score += 12
	}
	return score
}

func goalieStarScore(shots, saves, goalsAgainst int, won, shutout bool) float64 {
	savePct := 0.0
	if shots > 0 {
		savePct = float64(saves) / float64(shots)
	}

	var score float64
	switch {
	case savePct >= 0.95:
		score = 95
	case savePct >= 0.92:
		score = 70
	case savePct >= 0.89:
		score = 45
	case savePct >= 0.86:
		score = 28
	default:
		score = 12
	}

	score += 2 * float64(saves)

	if shots >= 35 {
		score += 15
	} else if shots >= 28 {
		score += 6
	}

	if won {
		score += 34
	}
	if shutout {
		score += 135
	}
	if goalsAgainst >= 4 && shots < 28 {
		score -= 30
	}
	return score
}

// rankThreeStars ranks every skater and goalie candidate from the
// game and returns the top three.
func rankThreeStars(skaters []gameStatLine, goalies []goalieLine) []core.StarSnapshot {
	type candidate struct {
		name  string
		team  string
		score float64
	}

	var candidates []candidate
	for _, s := range skaters {
		if s.goals == 0 && s.assists == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			name:  s.player.Name,
			team:  s.player.TeamName,
			score: skaterStarScore(s.goals, s.assists),
		})
	}
	for _, g := range goalies {
		candidates = append(candidates, candidate{
			name:  g.player.Name,
			team:  g.player.TeamName,
			score: goalieStarScore(g.shots, g.saves, g.goalsAgainst, g.won, g.shutout),
		})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	n := 3
	if len(candidates) < n {
		n = len(candidates)
	}
	out := make([]core.StarSnapshot, n)
	for i := 0; i < n; i++ {
		out[i] = core.StarSnapshot{PlayerName: candidates[i].name, TeamName: candidates[i].team, Score: candidates[i].score}
	}
	return out
}
