// Package teamai implements the autonomous team-management decisions
// the league simulator delegates per game: default and manual lineup
// construction, starter-goalie selection, day-to-day play decisions,
// and the per-game coach modifier derivation.
package teamai

import (
	"math/rand"
	"sort"

	"foundersleague.dev/sim/internal/core"
)

// healthyByPosition splits a team's healthy active-roster players by
// position, preserving a stable rank order (best first) within each
// group.
func healthyByPosition(team *core.Team, players map[core.PlayerID]*core.Player, style core.Strategy, rng *rand.Rand) map[core.Position][]*core.Player {
	quality := team.Coach.CoachQuality()
	groups := make(map[core.Position][]*core.Player)

	for _, id := range team.Roster {
		p, ok := players[id]
		if !ok || !p.IsAvailableToday() {
			continue
		}
		groups[p.Position] = append(groups[p.Position], p)
	}

	for pos, list := range groups {
		scored := make([]*core.Player, len(list))
		copy(scored, list)
		scores := make(map[core.PlayerID]float64, len(scored))
		for _, p := range scored {
			noise := (rng.Float64()*2 - 1) * 0.15 * (1 - quality)
			scores[p.ID] = styleScore(p, style) + noise
		}
		sort.SliceStable(scored, func(i, j int) bool { return scores[scored[i].ID] > scores[scored[j].ID] })
		groups[pos] = scored
	}

	return groups
}

// styleScore ranks a player for lineup-construction purposes using a
// style-weighted combination of ratings.
func styleScore(p *core.Player, style core.Strategy) float64 {
	s := p.Skills
	if p.IsGoalie() {
		return s.Goaltending*0.8 + s.Durability*0.2
	}

	offWeight, defWeight := 0.55, 0.45
	switch style {
	case core.StrategyAggressive:
		offWeight, defWeight = 0.68, 0.32
	case core.StrategyDefensive:
		offWeight, defWeight = 0.42, 0.58
	}

	offense := s.Shooting*0.55 + s.Playmaking*0.45
	defense := s.Defense
	if p.Position == core.PositionDefenseman {
		offense = s.Playmaking*0.6 + s.Shooting*0.4
	}
	return offense*offWeight + defense*defWeight + s.Physical*0.05
}

// combinedForwardPool concatenates the C, LW and RW groups in that
// order, each keeping its own rank order; it is not re-ranked across
// positions. Forward slots fall back to it once their own position
// group is used up.
func combinedForwardPool(groups map[core.Position][]*core.Player) []*core.Player {
	var all []*core.Player
	for _, pos := range []core.Position{core.PositionCenter, core.PositionLeftWing, core.PositionRightWing} {
		all = append(all, groups[pos]...)
	}
	return all
}

// SetDefaultLineup fills every slot in team.LineAssignments from the
// healthy active roster, best-ranked player first, falling back to
// the best remaining skater when a slot's natural position pool is
// exhausted. Captain/assistants are re-verified as still active.
func SetDefaultLineup(team *core.Team, players map[core.PlayerID]*core.Player, rng *rand.Rand) {
	groups := healthyByPosition(team, players, team.Coach.Style, rng)
	forwardPool := combinedForwardPool(groups)
	defensePool := append([]*core.Player{}, groups[core.PositionDefenseman]...)
	goaliePool := append([]*core.Player{}, groups[core.PositionGoaltender]...)

	used := make(map[core.PlayerID]bool)
	assignments := make(map[core.Slot]string, len(core.AllSlots()))

	takeFrom := func(pool []*core.Player) *core.Player {
		for _, p := range pool {
			if !used[p.ID] {
				used[p.ID] = true
				return p
			}
		}
		return nil
	}

	for _, slot := range core.ForwardSlots {
		p := takeFrom(groups[core.Position(slot[:len(slot)-1])])
		if p == nil {
			p = takeFrom(forwardPool)
		}
		if p == nil {
			p = takeFrom(defensePool)
		}
		if p != nil {
			assignments[slot] = p.Name
		}
	}
	for _, slot := range core.DefenseSlots {
		p := takeFrom(defensePool)
		if p == nil {
			p = takeFrom(forwardPool)
		}
		if p != nil {
			assignments[slot] = p.Name
		}
	}
	for _, slot := range core.GoalieSlots {
		p := takeFrom(goaliePool)
		if p == nil {
			p = takeFrom(forwardPool)
			if p == nil {
				p = takeFrom(defensePool)
			}
		}
		if p != nil {
			assignments[slot] = p.Name
		}
	}

	team.LineAssignments = assignments
	team.DressedPlayerNames = dressedNames(assignments)
	verifyLeadership(team, players)
}

func dressedNames(assignments map[core.Slot]string) []string {
	names := make([]string, 0, len(assignments))
	for _, n := range assignments {
		if n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// verifyLeadership clears the captain/assistant designation if the
// named player is no longer on the active roster.
func verifyLeadership(team *core.Team, players map[core.PlayerID]*core.Player) {
	onRoster := make(map[string]bool, len(team.Roster))
	for _, id := range team.Roster {
		if p, ok := players[id]; ok {
			onRoster[p.Name] = true
		}
	}
	if !onRoster[team.CaptainName] {
		team.CaptainName = ""
	}
	kept := team.AssistantNames[:0]
	for _, name := range team.AssistantNames {
		if onRoster[name] {
			kept = append(kept, name)
		}
	}
	team.AssistantNames = kept
}

// SetLineAssignments applies a manual (user-requested) lineup: for
// each slot in fill order, honor the requested name if that player is
// healthy and not already used elsewhere in the lineup; otherwise
// keep the computed default. Returns the total §4.3 lineup-position
// penalty for the resulting assignment.
func SetLineAssignments(team *core.Team, requested map[core.Slot]string, players map[core.PlayerID]*core.Player, rng *rand.Rand) float64 {
	SetDefaultLineup(team, players, rng)
	defaults := team.LineAssignments

	byName := make(map[string]*core.Player, len(players))
	for _, p := range players {
		byName[p.Name] = p
	}

	used := make(map[string]bool, len(defaults))
	final := make(map[core.Slot]string, len(defaults))

	healthyAndFree := func(name string) bool {
		p, ok := byName[name]
		return ok && p.IsAvailableToday() && !used[name]
	}

	for _, slot := range core.AllSlots() {
		name := requested[slot]
		if name != "" && healthyAndFree(name) {
			final[slot] = name
		} else {
			final[slot] = defaults[slot]
		}
		used[final[slot]] = true
	}

	penalty := 0.0
	for slot, name := range final {
		if p, ok := byName[name]; ok {
			penalty += core.LineupPositionPenalty(slot, p.Position)
		}
	}
	if penalty > core.MaxLineupPenalty {
		penalty = core.MaxLineupPenalty
	}

	team.LineAssignments = final
	team.DressedPlayerNames = dressedNames(final)
	return penalty
}
