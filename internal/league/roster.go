package league

import "foundersleague.dev/sim/internal/core"

// Promote moves a player from team's minor roster to its active
// roster, refusing if the active roster is already at MaxRoster.
func (s *State) Promote(teamName, playerID string) error {
	team, ok := s.Teams[teamName]
	if !ok {
		return core.Rejection(core.ReasonTeamNotFound, "team %q not found", teamName)
	}
	if len(team.Roster) >= core.MaxRoster {
		return core.Rejection(core.ReasonRosterFull, "team %s roster is already at the %d-player cap", teamName, core.MaxRoster)
	}
	id := core.PlayerID(playerID)
	idx := indexOfPlayer(team.MinorRoster, id)
	if idx < 0 {
		return core.Rejection(core.ReasonPlayerNotFound, "player %q not found on %s's minor roster", playerID, teamName)
	}
	team.MinorRoster = append(team.MinorRoster[:idx], team.MinorRoster[idx+1:]...)
	team.Roster = append(team.Roster, id)
	return nil
}

// Demote moves a player from team's active roster to its minor
// roster, refusing if it would leave the team with no healthy goalie.
func (s *State) Demote(teamName, playerID string) error {
	team, ok := s.Teams[teamName]
	if !ok {
		return core.Rejection(core.ReasonTeamNotFound, "team %q not found", teamName)
	}
	id := core.PlayerID(playerID)
	idx := indexOfPlayer(team.Roster, id)
	if idx < 0 {
		return core.Rejection(core.ReasonPlayerNotFound, "player %q not found on %s's roster", playerID, teamName)
	}
	if p, ok := s.Players[id]; ok && p.IsGoalie() && isLastHealthyGoalie(team, s.Players, id) {
		return core.Rejection(core.ReasonLastHealthyGoalie, "player %s is the last healthy goalie", p.Name)
	}
	team.Roster = append(team.Roster[:idx], team.Roster[idx+1:]...)
	team.MinorRoster = append(team.MinorRoster, id)
	return nil
}

func indexOfPlayer(list []core.PlayerID, id core.PlayerID) int {
	for i, x := range list {
		if x == id {
			return i
		}
	}
	return -1
}

// Sign extends a free agent or a player whose contract just expired
// onto teamName, refusing if there is no cap space for the requested
// capHit.
func (s *State) Sign(teamName, playerID string, years int, capHit float64) error {
	team, ok := s.Teams[teamName]
	if !ok {
		return core.Rejection(core.ReasonTeamNotFound, "team %q not found", teamName)
	}
	p, ok := s.Players[core.PlayerID(playerID)]
	if !ok {
		return core.Rejection(core.ReasonPlayerNotFound, "player %q not found", playerID)
	}
	if capSpace(team, s.Players) < capHit {
		return core.Rejection(core.ReasonNoCapSpace, "team %s has no cap space for a $%.2f contract", teamName, capHit)
	}

	removeFromFreeAgents(s, p.ID)
	p.TeamName = teamName
	p.Contract = core.Contract{YearsLeft: years, CapHit: capHit, Type: core.ContractVeteran}
	team.MinorRoster = append(team.MinorRoster, p.ID)
	return nil
}

// Extend re-signs a player already on teamName's roster to a new term
// without touching roster membership.
func (s *State) Extend(teamName, playerID string, years int, capHit float64) error {
	team, ok := s.Teams[teamName]
	if !ok {
		return core.Rejection(core.ReasonTeamNotFound, "team %q not found", teamName)
	}
	p, ok := s.Players[core.PlayerID(playerID)]
	if !ok || p.TeamName != teamName {
		return core.Rejection(core.ReasonPlayerNotFound, "player %q not found on %s", playerID, teamName)
	}
	if capSpace(team, s.Players)+p.Contract.CapHit < capHit {
		return core.Rejection(core.ReasonNoCapSpace, "team %s has no cap space for a $%.2f extension", teamName, capHit)
	}
	p.Contract = core.Contract{YearsLeft: years, CapHit: capHit, Type: core.ContractCore}
	return nil
}

func capSpace(team *core.Team, players map[core.PlayerID]*core.Player) float64 {
	used := 0.0
	for _, id := range team.Roster {
		if p, ok := players[id]; ok {
			used += p.Contract.CapHit
		}
	}
	return team.CapLimit - used
}

func removeFromFreeAgents(s *State, id core.PlayerID) {
	for i, fa := range s.FreeAgents {
		if fa == id {
			s.FreeAgents = append(s.FreeAgents[:i], s.FreeAgents[i+1:]...)
			return
		}
	}
}
