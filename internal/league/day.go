package league

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/engine"
	"foundersleague.dev/sim/internal/schedule"
	"foundersleague.dev/sim/internal/teamai"
)

// backToBackOffensePenalty and backToBackInjuryBonus are the
// schedule-context penalties applied when a team played yesterday;
// both offense and injury multiplier pick up a flat penalty
// regardless of opponent.
const (
	backToBackOffensePenalty = 0.06
	backToBackInjuryBonus    = 0.06
)

// takeLineupPenalty returns and clears the pending lineup penalty for
// team, so a user SetLines call only taxes the very next game.
func (s *State) takeLineupPenalty(team string) float64 {
	p := s.PendingLineupPenalty[team]
	delete(s.PendingLineupPenalty, team)
	return p
}

func (s *State) playedYesterday(team string) bool {
	if s.DayIndex == 0 {
		return false
	}
	for _, m := range s.Schedule[s.DayIndex-1] {
		if m.Home == team || m.Away == team {
			return true
		}
	}
	return false
}

// ensureDepth promotes minor-roster players into the active roster
// when a position group's healthy count falls below the dressed
// target, then demotes the lowest-value surplus player if promotion
// pushed the active count past MaxRoster, honoring emergency-goalie
// protection (never demote the only healthy goalie).
func ensureDepth(team *core.Team, players map[core.PlayerID]*core.Player) {
	healthyCount := func(pos core.Position) int {
		n := 0
		for _, id := range team.Roster {
			if p, ok := players[id]; ok && p.Position == pos && p.IsAvailableToday() {
				n++
			}
		}
		return n
	}

	targets := map[core.Position]int{
		core.PositionCenter: 4, core.PositionLeftWing: 4, core.PositionRightWing: 4,
		core.PositionDefenseman: 6, core.PositionGoaltender: 2,
	}

	for pos, target := range targets {
		for healthyCount(pos) < target {
			idx := bestMinorAt(team, players, pos)
			if idx < 0 {
				break
			}
			id := team.MinorRoster[idx]
			team.MinorRoster = append(team.MinorRoster[:idx], team.MinorRoster[idx+1:]...)
			team.Roster = append(team.Roster, id)
		}
	}

	for len(team.Roster) > core.MaxRoster {
		idx := worstDemotable(team, players)
		if idx < 0 {
			break
		}
		id := team.Roster[idx]
		team.Roster = append(team.Roster[:idx], team.Roster[idx+1:]...)
		team.MinorRoster = append(team.MinorRoster, id)
	}
}

func bestMinorAt(team *core.Team, players map[core.PlayerID]*core.Player, pos core.Position) int {
	best, bestVal := -1, -1.0
	for i, id := range team.MinorRoster {
		p, ok := players[id]
		if !ok || p.Position != pos || !p.IsAvailableToday() {
			continue
		}
		if v := p.Overall(); v > bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

func worstDemotable(team *core.Team, players map[core.PlayerID]*core.Player) int {
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
	return worst
}

func buildSideInput(teamName string, team *core.Team, players map[core.PlayerID]*core.Player, coachMods teamai.Modifiers, lineupPenalty float64, injuryMult float64) engine.SideInput {
	byName := make(map[string]*core.Player, len(players))
	for _, id := range team.Roster {
		if p, ok := players[id]; ok {
			byName[p.Name] = p
		}
	}

	var forwards, defense []*core.Player
	var goalie *core.Player
	for _, slot := range core.ForwardSlots {
		if p := byName[team.LineAssignments[slot]]; p != nil {
			forwards = append(forwards, p)
		}
	}
	for _, slot := range core.DefenseSlots {
		if p := byName[team.LineAssignments[slot]]; p != nil {
			defense = append(defense, p)
		}
	}
	if p := byName[team.LineAssignments[core.SlotG1]]; p != nil {
		goalie = p
	}

	return engine.SideInput{
		TeamName:      teamName,
		Forwards:      forwards,
		Defense:       defense,
		Goalie:        goalie,
		Strategy:      team.Coach.Style,
		CoachOffense:  coachMods.Offense,
		CoachDefense:  coachMods.Defense,
		LineupPenalty: lineupPenalty,
		InjuryMult:    coachMods.InjuryMult * injuryMult,
	}
}

func (s *State) pickGoalieStarter(team *core.Team, players map[core.PlayerID]*core.Player, backToBack, playoffs bool) *core.Player {
	var starter, backup *core.Player
	for _, id := range team.Roster {
		p, ok := players[id]
		if !ok || !p.IsGoalie() || !p.IsAvailableToday() {
			continue
		}
		if starter == nil || p.GoalieStats.GP <= starter.GoalieStats.GP {
			backup = starter
			starter = p
		} else if backup == nil {
			backup = p
		}
	}
	ctx := teamai.GoalieContext{BackToBack: backToBack, InPlayoffs: playoffs}
	return teamai.ChooseStarter(team, starter, backup, ctx, s.Rng)
}

// simulateMatchup runs one scheduled game end to end: depth, AI
// lineup/starter/DTD (for non-user teams), coach modifiers, schedule
// context, and the engine call itself. It folds the result into both
// teams' records.
func (s *State) simulateMatchup(m schedule.Matchup, opts engine.Options) engine.Result {
	home, away := s.Teams[m.Home], s.Teams[m.Away]

	ensureDepth(home, s.Players)
	ensureDepth(away, s.Players)

	homeB2B := s.playedYesterday(m.Home)
	awayB2B := s.playedYesterday(m.Away)

	if m.Home != s.Config.UserTeam {
		rollDTD(home, s.Players, s.Rng)
		teamai.SetDefaultLineup(home, s.Players, s.Rng)
		if g := s.pickGoalieStarter(home, s.Players, homeB2B, false); g != nil {
			home.LineAssignments[core.SlotG1] = g.Name
		}
	}
	if m.Away != s.Config.UserTeam {
		rollDTD(away, s.Players, s.Rng)
		teamai.SetDefaultLineup(away, s.Players, s.Rng)
		if g := s.pickGoalieStarter(away, s.Players, awayB2B, false); g != nil {
			away.LineAssignments[core.SlotG1] = g.Name
		}
	}

	homeMods := teamai.ComputeModifiers(home, teamai.CoachModifierInputs{})
	awayMods := teamai.ComputeModifiers(away, teamai.CoachModifierInputs{})

	homeInjuryMult, awayInjuryMult := 1.0, 1.0
	if homeB2B {
		homeMods.Offense -= backToBackOffensePenalty
		homeInjuryMult += backToBackInjuryBonus
	}
	if awayB2B {
		awayMods.Offense -= backToBackOffensePenalty
		awayInjuryMult += backToBackInjuryBonus
	}

	homeSide := buildSideInput(m.Home, home, s.Players, homeMods, s.takeLineupPenalty(m.Home), homeInjuryMult)
	awaySide := buildSideInput(m.Away, away, s.Players, awayMods, s.takeLineupPenalty(m.Away), awayInjuryMult)

	result := engine.Simulate(s.Rng, homeSide, awaySide, opts)

	registerResult(s.Records[m.Home], true, result)
	registerResult(s.Records[m.Away], false, result)

	teamai.DecayHoneymoon(&home.Coach)
	teamai.DecayHoneymoon(&away.Coach)

	return result
}

func registerResult(rec *core.TeamRecord, isHome bool, result engine.Result) {
	var gf, ga int
	var won bool
	if isHome {
		gf, ga, won = result.HomeScore, result.AwayScore, result.HomeWon()
	} else {
		gf, ga, won = result.AwayScore, result.HomeScore, !result.HomeWon()
	}
	rec.RegisterGame(isHome, gf, ga, result.Overtime, won)

	if isHome {
		rec.PPChances += result.SpecialTeams.HomePPChances
		rec.PPGoals += result.SpecialTeams.HomePPGoals
		rec.PKChances += result.SpecialTeams.AwayPPChances
		rec.PKGoalsAgainst += result.SpecialTeams.AwayPPGoals
	} else {
		rec.PPChances += result.SpecialTeams.AwayPPChances
		rec.PPGoals += result.SpecialTeams.AwayPPGoals
		rec.PKChances += result.SpecialTeams.HomePPChances
		rec.PKGoalsAgainst += result.SpecialTeams.HomePPGoals
	}
}

func rollDTD(team *core.Team, players map[core.PlayerID]*core.Player, rng *rand.Rand) {
	quality := team.Coach.CoachQuality()
	for _, id := range team.Roster {
		p, ok := players[id]
		if !ok || p.Status != core.StatusDTD {
			continue
		}
		severity := 0.1
		ctx := teamai.DTDContext{}
		p.PlayToday = teamai.DecidePlayToday(p, team.Coach.Style, ctx, quality, severity, rng)
	}
}

func decrementInjuries(players map[core.PlayerID]*core.Player) {
	for _, p := range players {
		if p.InjuredGamesRemaining > 0 {
			p.InjuredGamesRemaining--
			if p.InjuredGamesRemaining == 0 && p.Status == core.StatusIR {
				p.Status = core.StatusHealthy
			}
		}
		p.PlayToday = false
	}
}

// AdvanceDay runs one calendar day of the regular season: injury
// decay, every scheduled matchup, and the post-day integrity check.
// On any detected inconsistency the pre-advance snapshot is restored
// and an invariant error is returned; the day index is not advanced.
func (s *State) AdvanceDay() ([]engine.Result, error) {
	if !s.InRegularSeason() {
		return nil, core.Invariant(core.ReasonInvariantGPProgression, "day advance called past the end of the regular season")
	}

	for name, r := range s.Records {
		if r.GP() > s.DayIndex {
			return nil, core.Invariant(core.ReasonInvariantGPProgression, "team %s GP %d already exceeds calendar day index %d before today's simulation", name, r.GP(), s.DayIndex)
		}
	}

	snap := s.snapshot()
	preGP := make(map[string]int, len(s.Records))
	for name, r := range s.Records {
		preGP[name] = r.GP()
	}

	decrementInjuries(s.Players)

	today := s.Schedule[s.DayIndex]
	scheduled := make(map[string]bool, len(today)*2)
	var results []engine.Result
	for _, m := range today {
		scheduled[m.Home] = true
		scheduled[m.Away] = true
		results = append(results, s.simulateMatchup(m, engine.Options{Day: s.DayIndex, RandScale: 1.0, RecordStats: true}))
	}

	for name, r := range s.Records {
		delta := r.GP() - preGP[name]
		wantDelta := 0
		if scheduled[name] {
			wantDelta = 1
		}
		if delta != wantDelta {
			s.restore(snap)
			return nil, core.Invariant(core.ReasonInvariantGPProgression, "team %s gained %d GP, expected %d", name, delta, wantDelta)
		}
	}
	for name, r := range s.Records {
		if r.GP() > s.DayIndex+1 {
			s.restore(snap)
			return nil, core.Invariant(core.ReasonInvariantGPProgression, "team %s GP %d exceeds calendar day index %d", name, r.GP(), s.DayIndex+1)
		}
	}

	s.DayIndex++
	return results, nil
}
