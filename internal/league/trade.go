package league

import (
	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/tradeai"
)

// positionNeedTargets mirrors ensureDepth's dressed-position floors; a team
// short of a floor scores a need in that category.
var positionNeedTargets = map[core.Position]int{
	core.PositionCenter: 4, core.PositionLeftWing: 4, core.PositionRightWing: 4,
	core.PositionDefenseman: 6, core.PositionGoaltender: 2,
}

func buildTradeSide(team *core.Team, players map[core.PlayerID]*core.Player) tradeai.TeamSide {
	capUsed := 0.0
	counts := make(map[core.Position]int)
	overallSum := make(map[core.Position]float64)
	for _, id := range team.Roster {
		p, ok := players[id]
		if !ok {
			continue
		}
		capUsed += p.Contract.CapHit
		counts[p.Position]++
		overallSum[p.Position] += p.Overall()
	}

	posAvg := make(map[core.Position]float64, len(overallSum))
	for pos, sum := range overallSum {
		if counts[pos] > 0 {
			posAvg[pos] = sum / float64(counts[pos])
		}
	}

	shortage := func(pos core.Position) float64 {
		target := positionNeedTargets[pos]
		have := counts[pos]
		if have >= target {
			return 0
		}
		return float64(target-have) / float64(target)
	}

	needs := tradeai.NeedVector{
		Top6F:    shortage(core.PositionCenter)*0.5 + shortage(core.PositionLeftWing)*0.25 + shortage(core.PositionRightWing)*0.25,
		Top4D:    shortage(core.PositionDefenseman),
		StarterG: shortage(core.PositionGoaltender),
	}

	return tradeai.TeamSide{
		Team:        team,
		Players:     players,
		CapSpace:    team.CapLimit - capUsed,
		Needs:       needs,
		PositionAvg: posAvg,
	}
}

// ProposeTrade commits a one-for-one swap of giveID (fromTeam's
// player) for getID (toTeam's player) iff both sides' acceptance rule
// passes; otherwise state is left unchanged and a rejection error
// reports why.
func (s *State) ProposeTrade(fromTeam, giveID, toTeam, getID string) error {
	from, ok := s.Teams[fromTeam]
	if !ok {
		return core.Rejection(core.ReasonTeamNotFound, "team %q not found", fromTeam)
	}
	to, ok := s.Teams[toTeam]
	if !ok {
		return core.Rejection(core.ReasonTeamNotFound, "team %q not found", toTeam)
	}
	give, ok := s.Players[core.PlayerID(giveID)]
	if !ok {
		return core.Rejection(core.ReasonPlayerNotFound, "player %q not found", giveID)
	}
	get, ok := s.Players[core.PlayerID(getID)]
	if !ok {
		return core.Rejection(core.ReasonPlayerNotFound, "player %q not found", getID)
	}

	for _, p := range []*core.Player{give, get} {
		if p.IsInjured() {
			return core.Rejection(core.ReasonInjuredInTrade, "player %s is injured", p.Name)
		}
		if p.TradePreference == core.TradeUntouchable {
			return core.Rejection(core.ReasonUntouchable, "player %s is untouchable", p.Name)
		}
		if p.IsGoalie() && isLastHealthyGoalie(s.Teams[p.TeamName], s.Players, p.ID) {
			return core.Rejection(core.ReasonLastHealthyGoalie, "player %s is the last healthy goalie", p.Name)
		}
	}

	fromSide := buildTradeSide(from, s.Players)
	toSide := buildTradeSide(to, s.Players)

	offer := tradeai.Offer{
		FromTeam: fromTeam, ToTeam: toTeam,
		FromAssets: []core.PlayerID{give.ID}, ToAssets: []core.PlayerID{get.ID},
	}
	if !tradeai.Evaluate(offer, fromSide, toSide, tradeai.ModeBalanced) {
		return core.Rejection(core.ReasonPartnerRejects, "team %s declines the offer", toTeam)
	}
	reverse := tradeai.Offer{
		FromTeam: toTeam, ToTeam: fromTeam,
		FromAssets: []core.PlayerID{get.ID}, ToAssets: []core.PlayerID{give.ID},
	}
	if !tradeai.Evaluate(reverse, toSide, fromSide, tradeai.ModeBalanced) {
		return core.Rejection(core.ReasonPartnerRejects, "team %s declines the offer", fromTeam)
	}

	swapRosterMembership(from, give.ID, get.ID)
	swapRosterMembership(to, get.ID, give.ID)
	give.TeamName, get.TeamName = toTeam, fromTeam
	give.Contract.FreeAgentOriginTeam, get.Contract.FreeAgentOriginTeam = "", ""
	return nil
}

func isLastHealthyGoalie(team *core.Team, players map[core.PlayerID]*core.Player, excluding core.PlayerID) bool {
	if team == nil {
		return false
	}
	for _, id := range team.Roster {
		if id == excluding {
			continue
		}
		if p, ok := players[id]; ok && p.IsGoalie() && p.IsAvailableToday() {
			return false
		}
	}
	return true
}

func swapRosterMembership(team *core.Team, outgoing, incoming core.PlayerID) {
	for i, id := range team.Roster {
		if id == outgoing {
			team.Roster[i] = incoming
			return
		}
	}
	for i, id := range team.MinorRoster {
		if id == outgoing {
			team.MinorRoster[i] = incoming
			return
		}
	}
}
