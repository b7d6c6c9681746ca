package league

import (
	"math/rand"
	"sort"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/namegen"
	"foundersleague.dev/sim/internal/schedule"
)

// SeasonSummary is the snapshot written to season_history.json at the
// top of the offseason pipeline.
type SeasonSummary struct {
	Season      core.SeasonNumber
	Standings   map[string]core.TeamRecord
	CupChampion string
	MVP         string
	Retired     []core.Player
	HallOfFame  []core.HallOfFameEntry
}

// RunOffseason executes the full §4.4 offseason pipeline: history
// snapshot, player aging/retirement, the entry draft, contract
// decrement and free agency, coach aging/retirement, and season
// rollover. It returns the season summary for the caller to persist.
func (s *State) RunOffseason() SeasonSummary {
	summary := s.snapshotSeason()

	s.agePlayersAndResolveProspects()
	retired, inducted := s.processRetirements()
	s.runDraft()
	s.clearFreeAgencyAndContracts()
	s.ageCoaches()
	s.rollover()

	summary.Retired = retired
	summary.HallOfFame = inducted
	return summary
}

func (s *State) snapshotSeason() SeasonSummary {
	standings := make(map[string]core.TeamRecord, len(s.Records))
	for name, r := range s.Records {
		standings[name] = *r
	}
	champion, mvp := "", ""
	if s.Playoffs != nil && s.Playoffs.Bracket != nil {
		champion = s.Playoffs.Bracket.CupChampion
		mvp = s.Playoffs.Bracket.MVP
	}

	for _, p := range s.Players {
		snap := core.SeasonSnapshot{
			Season: s.Season, TeamName: p.TeamName,
			GP: p.GP, Goals: p.Goals, Assists: p.Assists,
		}
		if p.IsGoalie() {
			snap.GoalieStats = p.GoalieStats
		}
		p.CareerSeasons = append(p.CareerSeasons, snap)
	}

	return SeasonSummary{Season: s.Season, Standings: standings, CupChampion: champion, MVP: mvp}
}

// aging curve: skaters peak 23-29 and decline after 30, goalies
// decline after 32; durability/skill decay is weighted by games
// missed to injury.
func (s *State) agePlayersAndResolveProspects() {
	for _, p := range s.Players {
		p.Age++

		missedWear := core.Clamp(float64(p.GamesMissed)*0.002, 0, 0.06)
		peakEnd, declineStart := 29, 30
		if p.IsGoalie() {
			peakEnd, declineStart = 31, 32
		}

		switch {
		case p.Age <= peakEnd:
			growth := 0.01
			if p.GP > 0 {
				growth += 0.005
			}
			p.Skills.Shooting += growth
			p.Skills.Playmaking += growth
			p.Skills.Defense += growth * 0.6
			p.Skills.Goaltending += growth
		case p.Age >= declineStart:
			decline := 0.015 + missedWear
			p.Skills.Shooting -= decline
			p.Skills.Playmaking -= decline
			p.Skills.Defense -= decline * 0.8
			p.Skills.Goaltending -= decline
			p.Skills.Durability -= missedWear
		}
		p.Skills.Clamp()

		if p.Prospect != nil && !p.Prospect.Resolved {
			p.Prospect.SeasonsToNHL--
			if p.Prospect.SeasonsToNHL <= 0 {
				resolveProspect(p)
			}
		}
	}
}

func resolveProspect(p *core.Player) {
	p.Prospect.Resolved = true
	delta := (p.Prospect.Potential - 0.5) * 1.4
	p.Skills.Shooting += delta
	p.Skills.Playmaking += delta
	p.Skills.Defense += delta * 0.8
	p.Skills.Goaltending += delta
	p.Skills.Clamp()
}

func retirementProbability(p *core.Player) float64 {
	age := p.Age
	base := 0.0
	switch {
	case p.IsGoalie():
		if age < 36 {
			return 0
		}
		base = float64(age-35) * 0.08
	default:
		if age < 34 {
			return 0
		}
		base = float64(age-33) * 0.10
	}
	return core.Clamp(base, 0, 0.9)
}

func meetsFranchiseThreshold(p *core.Player, seasonsWithTeam int) bool {
	if seasonsWithTeam < 6 {
		return false
	}
	pts := p.Points()
	if p.IsGoalie() {
		return p.GoalieStats.Wins >= 350 || p.GoalieStats.Shutouts >= 55
	}
	if pts >= 950 || p.Goals >= 500 {
		return true
	}
	if p.GP >= 700 && (pts >= 650 || p.Goals >= 280) {
		return true
	}
	return false
}

// processRetirements removes players who roll a retirement decision,
// retiring their jersey number with the franchise when they meet the
// §4.4 threshold.
func (s *State) processRetirements() ([]core.Player, []core.HallOfFameEntry) {
	var retired []core.Player
	var inducted []core.HallOfFameEntry
	for _, team := range s.Teams {
		kept := team.Roster[:0]
		for _, id := range team.Roster {
			p, ok := s.Players[id]
			if !ok {
				continue
			}
			prob := retirementProbability(p)
			if prob > 0 && s.Rng.Float64() < prob {
				seasonsWithTeam := len(p.CareerSeasons)
				if meetsFranchiseThreshold(p, seasonsWithTeam) {
					reason := "career totals"
					if p.JerseyNumber != nil {
						team.RetiredNumbers = append(team.RetiredNumbers, core.RetiredNumber{
							Number: *p.JerseyNumber, PlayerName: p.Name, SeasonRetired: s.Season,
						})
						reason = "career totals, number retired"
					}
					inducted = append(inducted, core.HallOfFameEntry{
						PlayerID: p.ID, PlayerName: p.Name, TeamName: team.Name,
						SeasonRetired: s.Season, Reason: reason,
					})
				}
				retired = append(retired, *p)
				delete(s.Players, id)
				continue
			}
			kept = append(kept, id)
		}
		team.Roster = kept
	}
	return retired, inducted
}

// runDraft gives each team exactly one round-1 pick, in reverse order
// of final standings, then tops rosters up from the minors.
func (s *State) runDraft() {
	var teamNames []string
	for name := range s.Teams {
		teamNames = append(teamNames, name)
	}
	order := rankTeams(teamNames, s.Records)
	// Reverse: worst team picks first.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	gen := namegen.New(s.Rng)
	for _, p := range s.Players {
		gen.Reserve(p.Name)
	}

	roundSize := len(order)
	for i, teamName := range order {
		team := s.Teams[teamName]
		quality := draftPickQuality(i, roundSize, s.Rng)
		player := s.generateDraftPlayer(gen, teamName, i+1, quality)
		s.Players[player.ID] = player
		team.MinorRoster = append(team.MinorRoster, player.ID)
	}

	for _, team := range s.Teams {
		for len(team.Roster) < core.MaxRoster {
			idx := bestMinorOverall(team, s.Players)
			if idx < 0 {
				break
			}
			id := team.MinorRoster[idx]
			team.MinorRoster = append(team.MinorRoster[:idx], team.MinorRoster[idx+1:]...)
			team.Roster = append(team.Roster, id)
		}
		for len(team.MinorRoster) < core.MinMinor {
			quality := 0.5 + (s.Rng.Float64()*2-1)*0.1
			player := s.generateDraftPlayer(gen, team.Name, 0, quality)
			s.Players[player.ID] = player
			team.MinorRoster = append(team.MinorRoster, player.ID)
		}
	}
}

func draftPickQuality(pickIndex, roundSize int, rng *rand.Rand) float64 {
	if roundSize <= 1 {
		roundSize = 1
	}
	frac := float64(pickIndex) / float64(roundSize)
	base := 0.90 - frac*(0.90-0.56)
	noise := (rng.Float64()*2 - 1) * 0.07
	quality := base + noise
	roll := rng.Float64()
	switch {
	case roll < 0.10:
		quality -= 0.18
	case roll > 0.90:
		quality += 0.18
	}
	return core.Clamp(quality, 0.2, 1.0)
}

func bestMinorOverall(team *core.Team, players map[core.PlayerID]*core.Player) int {
	best, bestVal := -1, -1.0
	for i, id := range team.MinorRoster {
		p, ok := players[id]
		if !ok {
			continue
		}
		if v := p.Overall(); v > bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

func (s *State) generateDraftPlayer(gen *namegen.Generator, teamName string, overallPick int, quality float64) *core.Player {
	pos := []core.Position{core.PositionCenter, core.PositionLeftWing, core.PositionRightWing, core.PositionDefenseman, core.PositionGoaltender}[s.Rng.Intn(5)]

	base := core.MinSkill + quality*(core.MaxSkill-core.MinSkill)
	jitter := func() float64 { return (s.Rng.Float64()*2 - 1) * 0.3 }

	return &core.Player{
		ID:           core.NewPlayerID(),
		Name:         gen.Next(),
		TeamName:     teamName,
		Position:     pos,
		Age:          18,
		PrimeAge:     26,
		BirthCountry: namegen.SampleBirthCountry(s.Rng),
		Status:       core.StatusHealthy,
		Skills: core.Skills{
			Shooting:    core.ClampSkill(base + jitter()),
			Playmaking:  core.ClampSkill(base + jitter()),
			Defense:     core.ClampSkill(base + jitter()),
			Goaltending: core.ClampSkill(base + jitter()),
			Physical:    core.ClampSkill(base + jitter()),
			Durability:  core.ClampSkill(base + jitter()),
		},
		Draft: core.DraftProvenance{Season: s.Season, Round: 1, Overall: overallPick, Team: teamName},
		Prospect: &core.Prospect{
			Tier:         core.TierJunior,
			SeasonsToNHL: 1 + s.Rng.Intn(3),
			Potential:    quality,
			BoomProb:     0.1,
			BustProb:     0.1,
		},
		Contract: core.Contract{YearsLeft: 3, CapHit: 0.9, Type: core.ContractEntry},
	}
}

// clearFreeAgencyAndContracts decrements every contract by one year;
// players hitting zero either re-sign with their own team or enter
// the free-agent pool, which CPU teams then bid over.
func (s *State) clearFreeAgencyAndContracts() {
	var hitMarket []core.PlayerID

	for _, team := range s.Teams {
		for _, id := range append(append([]core.PlayerID{}, team.Roster...), team.MinorRoster...) {
			p, ok := s.Players[id]
			if !ok || p.Contract.YearsLeft <= 0 {
				continue
			}
			p.Contract.YearsLeft--
			if p.Contract.YearsLeft > 0 {
				continue
			}
			resignProb := core.Clamp(0.5+0.1*(p.Overall()-3.0)+0.01*float64(30-p.Age), 0.05, 0.92)
			if team.Name == s.Config.UserTeam {
				continue
			}
			if s.Rng.Float64() < resignProb {
				p.Contract = core.Contract{YearsLeft: 2 + s.Rng.Intn(3), CapHit: p.Overall() * 0.8, Type: core.ContractCore}
				continue
			}
			p.Contract.IsRFA = false
			p.Contract.FreeAgentOriginTeam = team.Name
			if i := indexOfPlayer(team.Roster, id); i >= 0 {
				team.Roster = append(team.Roster[:i], team.Roster[i+1:]...)
			} else if i := indexOfPlayer(team.MinorRoster, id); i >= 0 {
				team.MinorRoster = append(team.MinorRoster[:i], team.MinorRoster[i+1:]...)
			}
			p.TeamName = ""
			hitMarket = append(hitMarket, id)
		}
	}

	s.FreeAgents = append(s.FreeAgents, hitMarket...)
	s.clearFreeAgentMarket()
}

// clearFreeAgentMarket runs up to 10 bidding rounds; each team may
// sign at most one player per round and each player accepts the
// highest-scored offer it receives that round.
func (s *State) clearFreeAgentMarket() {
	var teamNames []string
	for name := range s.Teams {
		teamNames = append(teamNames, name)
	}
	sort.Strings(teamNames)

	for round := 0; round < 10 && len(s.FreeAgents) > 0; round++ {
		signedThisRound := make(map[string]bool, len(teamNames))
		var stillAvailable []core.PlayerID

		for _, id := range s.FreeAgents {
			p, ok := s.Players[id]
			if !ok {
				stillAvailable = append(stillAvailable, id)
				continue
			}
			bestTeam, bestScore := "", -1.0
			for _, name := range teamNames {
				if signedThisRound[name] || name == s.Config.UserTeam {
					continue
				}
				score := p.Overall() + s.Rng.Float64()*0.2
				if score > bestScore {
					bestScore, bestTeam = score, name
				}
			}
			if bestTeam == "" {
				stillAvailable = append(stillAvailable, id)
				continue
			}
			signedThisRound[bestTeam] = true
			team := s.Teams[bestTeam]
			p.TeamName = bestTeam
			p.Contract = core.Contract{YearsLeft: 2 + s.Rng.Intn(3), CapHit: p.Overall() * 0.8, Type: core.ContractVeteran}
			team.MinorRoster = append(team.MinorRoster, id)
		}
		s.FreeAgents = stillAvailable
	}
}

func coachRetirementProbability(c *core.Coach) float64 {
	if c.Age < 58 {
		return 0
	}
	base := float64(c.Age-57) * 0.045
	if c.Rating >= 4.0 {
		base *= 0.7
	}
	return core.Clamp(base, 0, 0.95)
}

// ageCoaches ages every coach by one season and rolls retirement,
// replacing any who retire with a freshly generated candidate.
func (s *State) ageCoaches() {
	for _, team := range s.Teams {
		team.Coach.Age++
		team.Coach.TenureSeasons++
		if s.Rng.Float64() < coachRetirementProbability(&team.Coach) {
			team.Coach = generateReplacementCoach(s.Rng)
		}
	}
}

func generateReplacementCoach(rng *rand.Rand) core.Coach {
	styles := []core.Strategy{core.StrategyAggressive, core.StrategyBalanced, core.StrategyDefensive}
	return core.Coach{
		ID:      core.NewCoachID(),
		Age:     40 + rng.Intn(20),
		Rating:  2.0 + rng.Float64()*3.0,
		Style:   styles[rng.Intn(len(styles))],
		Offense: rng.Float64(),
		Defense: rng.Float64(),
	}
}

// rollover resets every player's season counters, rebuilds the
// regular-season calendar, advances the season number, and clears
// pending playoff state.
func (s *State) rollover() {
	for _, p := range s.Players {
		p.GP, p.Goals, p.Assists = 0, 0, 0
		p.GamesMissed = 0
		p.GoalieStats = core.GoalieStats{}
	}
	for name, r := range s.Records {
		s.Records[name] = &core.TeamRecord{TeamName: r.TeamName}
	}

	var teamNames []string
	for name := range s.Teams {
		teamNames = append(teamNames, name)
	}
	sort.Strings(teamNames)
	gamesPerMatchup := s.Config.GamesPerMatchup
	if gamesPerMatchup < 1 {
		gamesPerMatchup = 1
	}
	s.Schedule = schedule.Build(teamNames, gamesPerMatchup, s.Config.CalendarDensity)

	s.Season++
	s.DayIndex = 0
	s.Playoffs = nil
}
