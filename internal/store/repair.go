package store

import (
	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/league"
)

// repairLeagueState runs the §4.6 load-time repair pass over a
// freshly-loaded league.State: a legacy save may carry more than 22
// active roster slots, may be missing emergency-goalie coverage, may
// have duplicate or missing jersey numbers, and may have contract
// fields a still-older save format never wrote.
func repairLeagueState(s *league.State) {
	if s == nil {
		return
	}
	for _, team := range s.Teams {
		demoteExcessRoster(team, s.Players)
		ensureEmergencyGoalie(team, s.Players)
		regenerateJerseyNumbers(team, s.Players)
		backfillContracts(team, s.Players)
	}
}

// demoteExcessRoster pushes the lowest-overall active-roster players
// down to the minors until the active roster is back at or under
// MaxRoster, never demoting a goalie while one or fewer are healthy.
func demoteExcessRoster(team *core.Team, players map[core.PlayerID]*core.Player) {
	for len(team.Roster) > core.MaxRoster {
		worst, worstVal := -1, 1e9
		healthyGoalies := 0
		for _, id := range team.Roster {
			if p, ok := players[id]; ok && p.IsGoalie() && p.IsAvailableToday() {
				healthyGoalies++
			}
		}
		for i, id := range team.Roster {
			p, ok := players[id]
			if !ok {
				continue
			}
			if p.IsGoalie() && healthyGoalies <= 1 {
				continue
			}
			if v := p.Overall(); v < worstVal {
				worst, worstVal = i, v
			}
		}
		if worst < 0 {
			break
		}
		id := team.Roster[worst]
		team.Roster = append(team.Roster[:worst], team.Roster[worst+1:]...)
		team.MinorRoster = append(team.MinorRoster, id)
	}
}

// ensureEmergencyGoalie promotes the best available minor goaltender
// onto the active roster whenever a legacy save was left with no
// healthy goalie at all.
func ensureEmergencyGoalie(team *core.Team, players map[core.PlayerID]*core.Player) {
	for _, id := range team.Roster {
		if p, ok := players[id]; ok && p.IsGoalie() && p.IsAvailableToday() {
			return
		}
	}
	best, bestVal := -1, -1.0
	for i, id := range team.MinorRoster {
		p, ok := players[id]
		if !ok || !p.IsGoalie() || !p.IsAvailableToday() {
			continue
		}
		if v := p.Overall(); v > bestVal {
			best, bestVal = i, v
		}
	}
	if best < 0 {
		return
	}
	id := team.MinorRoster[best]
	team.MinorRoster = append(team.MinorRoster[:best], team.MinorRoster[best+1:]...)
	team.Roster = append(team.Roster, id)
}

// regenerateJerseyNumbers assigns a number to every active-roster
// player missing one and resolves any duplicate, honoring numbers the
// franchise has already retired.
func regenerateJerseyNumbers(team *core.Team, players map[core.PlayerID]*core.Player) {
	used := make(map[int]bool, len(team.Roster))
	var missing []core.PlayerID
	for _, id := range team.Roster {
		p, ok := players[id]
		if !ok {
			continue
		}
		if p.JerseyNumber == nil || team.NumberRetired(*p.JerseyNumber) || used[*p.JerseyNumber] {
			missing = append(missing, id)
			continue
		}
		used[*p.JerseyNumber] = true
	}

	next := 1
	for _, id := range missing {
		p := players[id]
		for next <= 98 && (used[next] || team.NumberRetired(next)) {
			next++
		}
		if next > 98 {
			break
		}
		n := next
		p.JerseyNumber = &n
		used[next] = true
	}
}

// backfillContracts gives any player with a zero-value Contract a
// sane default rather than leaving an entry/veteran distinction a
// pre-contract-fields save never recorded.
func backfillContracts(team *core.Team, players map[core.PlayerID]*core.Player) {
	allIDs := append(append([]core.PlayerID{}, team.Roster...), team.MinorRoster...)
	for _, id := range allIDs {
		p, ok := players[id]
		if !ok {
			continue
		}
		if p.Contract.Type == "" {
			p.Contract = core.Contract{YearsLeft: 2, CapHit: p.Overall() * 0.8, Type: core.ContractVeteran}
		}
	}
}
