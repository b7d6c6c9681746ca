package league

import (
	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/teamai"
)

// SetUserLines installs a requested line assignment on team and
// records whatever lineup_position_penalty the assignment incurs
// (position-slot mismatches), so the next game that team plays picks
// it up through takeLineupPenalty.
func (s *State) SetUserLines(teamName string, requested map[core.Slot]string) (float64, error) {
	team, ok := s.Teams[teamName]
	if !ok {
		return 0, core.Rejection(core.ReasonTeamNotFound, "team %q not found", teamName)
	}
	penalty := teamai.SetLineAssignments(team, requested, s.Players, s.Rng)
	s.PendingLineupPenalty[teamName] = penalty
	return penalty, nil
}

// AutoLines regenerates team's default lineup via the same AI logic
// CPU teams use, clearing any pending manual-lineup penalty.
func (s *State) AutoLines(teamName string) error {
	team, ok := s.Teams[teamName]
	if !ok {
		return core.Rejection(core.ReasonTeamNotFound, "team %q not found", teamName)
	}
	teamai.SetDefaultLineup(team, s.Players, s.Rng)
	delete(s.PendingLineupPenalty, teamName)
	return nil
}
