package league

import (
	"sort"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/engine"
	"foundersleague.dev/sim/internal/teamai"
)

const (
	eliminationBonus    = 0.010
	playoffRandScale    = 1.32
	game7RandScale      = 1.40
	divisionsPerConfKey = 2
)

type seed struct {
	team string
	rec  *core.TeamRecord
}

func rankTeams(teams []string, records map[string]*core.TeamRecord) []string {
	ranked := make([]seed, len(teams))
	for i, t := range teams {
		ranked[i] = seed{t, records[t]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].rec, ranked[j].rec
		if a.PointPct() != b.PointPct() {
			return a.PointPct() > b.PointPct()
		}
		return a.GoalDiff() > b.GoalDiff()
	})
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.team
	}
	return out
}

// conferenceAlignment groups every team by conference, and within a
// conference by division (empty division key if the league carries
// no divisions).
func conferenceAlignment(teams map[string]*core.Team) map[string]map[string][]string {
	out := make(map[string]map[string][]string)
	for name, t := range teams {
		if out[t.Conference] == nil {
			out[t.Conference] = make(map[string][]string)
		}
		out[t.Conference][t.Division] = append(out[t.Conference][t.Division], name)
	}
	return out
}

func newSeries(higher, lower, round string) core.PlayoffSeries {
	return core.PlayoffSeries{Round: round, HigherSeed: higher, LowerSeed: lower}
}

// buildConferenceFirstRound implements the §4.4 bracket-construction
// rule: a 2-division conference seeds top-3-per-division plus two
// wildcards in the fixed divisional pattern; any other conference
// shape falls back to straight 1-8 seeding.
func buildConferenceFirstRound(divisions map[string][]string, records map[string]*core.TeamRecord) []core.PlayoffSeries {
	if len(divisions) == divisionsPerConfKey {
		var divNames []string
		for d := range divisions {
			divNames = append(divNames, d)
		}
		sort.Strings(divNames)
		d1, d2 := rankTeams(divisions[divNames[0]], records), rankTeams(divisions[divNames[1]], records)

		var confAll []string
		confAll = append(confAll, divisions[divNames[0]]...)
		confAll = append(confAll, divisions[divNames[1]]...)
		confRanked := rankTeams(confAll, records)

		remaining := func(top3a, top3b []string) []string {
			used := map[string]bool{}
			for _, t := range top3a {
				used[t] = true
			}
			for _, t := range top3b {
				used[t] = true
			}
			var rest []string
			for _, t := range confRanked {
				if !used[t] {
					rest = append(rest, t)
				}
			}
			return rest
		}
		top3 := func(div []string) []string {
			if len(div) > 3 {
				return div[:3]
			}
			return div
		}
		d1Top, d2Top := top3(d1), top3(d2)
		wc := remaining(d1Top, d2Top)
		wc1, wc2 := "", ""
		if len(wc) > 0 {
			wc1 = wc[0]
		}
		if len(wc) > 1 {
			wc2 = wc[1]
		}
		// WC1 goes to the conference's better #1 seed.
		d1IsBetter := indexOf(confRanked, d1Top[0]) < indexOf(confRanked, d2Top[0])
		var d1Opp, d2Opp string
		if d1IsBetter {
			d1Opp, d2Opp = wc1, wc2
		} else {
			d1Opp, d2Opp = wc2, wc1
		}

		var out []core.PlayoffSeries
		if len(d1Top) > 0 && d1Opp != "" {
			out = append(out, newSeries(d1Top[0], d1Opp, "Round 1"))
		}
		if len(d1Top) > 2 {
			out = append(out, newSeries(d1Top[1], d1Top[2], "Round 1"))
		}
		if len(d2Top) > 0 && d2Opp != "" {
			out = append(out, newSeries(d2Top[0], d2Opp, "Round 1"))
		}
		if len(d2Top) > 2 {
			out = append(out, newSeries(d2Top[1], d2Top[2], "Round 1"))
		}
		return out
	}

	var all []string
	for _, list := range divisions {
		all = append(all, list...)
	}
	ranked := rankTeams(all, records)
	var out []core.PlayoffSeries
	for i := 0; i < len(ranked)/2; i++ {
		out = append(out, newSeries(ranked[i], ranked[len(ranked)-1-i], "Round 1"))
	}
	return out
}

func indexOf(list []string, v string) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return len(list)
}

// higherSeedHosts reports whether the higher seed hosts game n
// (1-indexed) of a best-of-7 under the 2-2-1-1-1 pattern.
func higherSeedHosts(gameNo int) bool {
	switch gameNo {
	case 1, 2, 5, 7:
		return true
	default:
		return false
	}
}

func (s *State) simulatePlayoffSeries(series *core.PlayoffSeries) {
	for !series.IsComplete() {
		gameNo := len(series.Games) + 1
		home, away := series.HigherSeed, series.LowerSeed
		if !higherSeedHosts(gameNo) {
			home, away = away, home
		}

		scale := playoffRandScale
		if gameNo == 7 {
			scale = game7RandScale
		}

		homeTeam, awayTeam := s.Teams[home], s.Teams[away]
		ensureDepth(homeTeam, s.Players)
		ensureDepth(awayTeam, s.Players)
		if home != s.Config.UserTeam {
			teamai.SetDefaultLineup(homeTeam, s.Players, s.Rng)
		}
		if away != s.Config.UserTeam {
			teamai.SetDefaultLineup(awayTeam, s.Players, s.Rng)
		}

		homeGoalie := s.pickGoalieStarter(homeTeam, s.Players, false, true)
		awayGoalie := s.pickGoalieStarter(awayTeam, s.Players, false, true)
		if homeGoalie != nil {
			homeTeam.LineAssignments[core.SlotG1] = homeGoalie.Name
		}
		if awayGoalie != nil {
			awayTeam.LineAssignments[core.SlotG1] = awayGoalie.Name
		}

		homeMods := teamai.ComputeModifiers(homeTeam, teamai.CoachModifierInputs{})
		awayMods := teamai.ComputeModifiers(awayTeam, teamai.CoachModifierInputs{})

		homeBonus, awayBonus := 0.0, 0.0
		if home == series.HigherSeed {
			homeBonus = eliminationBonus
		} else {
			awayBonus = eliminationBonus
		}

		homeSide := buildSideInput(home, homeTeam, s.Players, homeMods, s.takeLineupPenalty(home), 1.0)
		homeSide.ContextBonus = homeBonus
		awaySide := buildSideInput(away, awayTeam, s.Players, awayMods, s.takeLineupPenalty(away), 1.0)
		awaySide.ContextBonus = awayBonus

		result := engine.Simulate(s.Rng, homeSide, awaySide, engine.Options{Day: s.DayIndex, RandScale: scale, RecordStats: true})

		game := core.PlayoffSeriesGame{GameResult: result.GameResult, GameNo: gameNo}
		series.Games = append(series.Games, game)

		if result.HomeWon() == (home == series.HigherSeed) {
			series.HigherSeedWins++
		} else {
			series.LowerSeedWins++
		}

		teamai.DecayHoneymoon(&homeTeam.Coach)
		teamai.DecayHoneymoon(&awayTeam.Coach)
	}
	if series.HigherSeedWins == 4 {
		series.Winner = series.HigherSeed
	} else {
		series.Winner = series.LowerSeed
	}
}

// BuildAndSimulatePlayoffs constructs the full postseason bracket from
// current standings, pre-simulates every series to completion, and
// installs a reveal queue that RevealNextDay drains one game at a
// time. Called once, on the first advance past the regular season.
func (s *State) BuildAndSimulatePlayoffs() {
	alignment := conferenceAlignment(s.Teams)
	var confNames []string
	for c := range alignment {
		confNames = append(confNames, c)
	}
	sort.Strings(confNames)

	bracket := &core.PlayoffBracket{CupName: core.FoundersCup}

	round1 := core.PlayoffRound{Name: "Round 1"}
	for _, conf := range confNames {
		round1.Series = append(round1.Series, buildConferenceFirstRound(alignment[conf], s.Records)...)
	}
	for i := range round1.Series {
		s.simulatePlayoffSeries(&round1.Series[i])
	}
	bracket.Rounds = append(bracket.Rounds, round1)

	// Division Finals / Round 2: pair adjacent winners within each
	// conference's bracket half.
	prevRound := round1
	roundNames := []string{"Round 2", "Conference Final"}
	for _, name := range roundNames {
		var next core.PlayoffRound
		next.Name = name
		for i := 0; i+1 < len(prevRound.Series); i += 2 {
			a, b := prevRound.Series[i].Winner, prevRound.Series[i+1].Winner
			higher, lower := a, b
			if indexOf(rankTeams([]string{a, b}, s.Records), b) == 0 {
				higher, lower = b, a
			}
			next.Series = append(next.Series, newSeries(higher, lower, name))
		}
		for i := range next.Series {
			s.simulatePlayoffSeries(&next.Series[i])
		}
		bracket.Rounds = append(bracket.Rounds, next)
		prevRound = next
		if len(prevRound.Series) <= 1 {
			break
		}
	}

	if len(prevRound.Series) >= 2 {
		a, b := prevRound.Series[0].Winner, prevRound.Series[1].Winner
		higher, lower := a, b
		if indexOf(rankTeams([]string{a, b}, s.Records), b) == 0 {
			higher, lower = b, a
		}
		final := core.PlayoffRound{Name: "Cup Final"}
		series := newSeries(higher, lower, "Cup Final")
		s.simulatePlayoffSeries(&series)
		final.Series = append(final.Series, series)
		bracket.Rounds = append(bracket.Rounds, final)
		bracket.CupChampion = series.Winner
	} else if len(prevRound.Series) == 1 {
		bracket.CupChampion = prevRound.Series[0].Winner
	}

	bracket.MVPRace, bracket.MVP = computeMVP(bracket)

	var queue [][]core.GameResult
	for _, round := range bracket.Rounds {
		for _, series := range round.Series {
			for _, g := range series.Games {
				queue = append(queue, []core.GameResult{g.GameResult})
			}
		}
	}

	s.Playoffs = &PlayoffState{Bracket: bracket, RevealQueue: queue}
}

// computeMVP scores every skater who recorded a point and every
// goalie who started a game across the bracket. Skaters score
// 6·P + 2.2·G + 2·P/GP, where GP counts the playoff games in which the
// skater recorded a point: the game log does not list dressed skaters,
// so games without a point are not counted. Goalie scoring uses wins
// and starts rather than the full SV%/GAA formula: per-goalie
// shots/saves are only tracked cumulatively on core.Player across the
// whole season, not isolated to the playoff window, so an isolated
// playoff SV%/GAA isn't recoverable from the game log alone.
func computeMVP(bracket *core.PlayoffBracket) ([]core.MVPCandidate, string) {
	type tally struct {
		points, goals, gp int
		teamName          string
	}
	skaterTally := make(map[string]*tally)
	goalieWins := make(map[string]int)
	goalieStarts := make(map[string]int)
	goalieTeam := make(map[string]string)

	for _, round := range bracket.Rounds {
		for _, series := range round.Series {
			for _, g := range series.Games {
				pointIn := make(map[string]bool)
				for _, goal := range g.Goals {
					t := skaterTally[goal.Scorer]
					if t == nil {
						t = &tally{teamName: goal.TeamName}
						skaterTally[goal.Scorer] = t
					}
					t.goals++
					t.points++
					pointIn[goal.Scorer] = true
					for _, a := range goal.Assists {
						at := skaterTally[a]
						if at == nil {
							at = &tally{teamName: goal.TeamName}
							skaterTally[a] = at
						}
						at.points++
						pointIn[a] = true
					}
				}
				for name := range pointIn {
					skaterTally[name].gp++
				}
				if g.HomeGoalie != "" {
					goalieStarts[g.HomeGoalie]++
					goalieTeam[g.HomeGoalie] = g.HomeTeam
					if g.HomeWon() {
						goalieWins[g.HomeGoalie]++
					}
				}
				if g.AwayGoalie != "" {
					goalieStarts[g.AwayGoalie]++
					goalieTeam[g.AwayGoalie] = g.AwayTeam
					if !g.HomeWon() {
						goalieWins[g.AwayGoalie]++
					}
				}
			}
		}
	}

	var candidates []core.MVPCandidate
	for name, t := range skaterTally {
		gp := t.gp
		if gp == 0 {
			gp = 1
		}
		score := 6*float64(t.points) + 2.2*float64(t.goals) + 2*float64(t.points)/float64(gp)
		candidates = append(candidates, core.MVPCandidate{PlayerName: name, TeamName: t.teamName, Score: score})
	}
	for name, starts := range goalieStarts {
		score := 7.5*float64(goalieWins[name]) + 0.8*float64(starts)
		candidates = append(candidates, core.MVPCandidate{PlayerName: name, TeamName: goalieTeam[name], Score: score})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })

	mvp := ""
	if len(candidates) > 0 {
		mvp = candidates[0].PlayerName
	}
	return candidates, mvp
}

// RevealNextDay pops the next pre-simulated game off the reveal queue
// and decays injury timers so UI status stays coherent with a normal
// day advance, even though the outcome was already determined.
func (s *State) RevealNextDay() []core.GameResult {
	if s.Playoffs == nil || s.Playoffs.RevealedDays >= len(s.Playoffs.RevealQueue) {
		return nil
	}
	decrementInjuries(s.Players)
	day := s.Playoffs.RevealQueue[s.Playoffs.RevealedDays]
	s.Playoffs.RevealedDays++
	return day
}

// PlayoffsComplete reports whether every pre-simulated playoff game
// has been revealed.
func (s *State) PlayoffsComplete() bool {
	return s.Playoffs != nil && s.Playoffs.RevealedDays >= len(s.Playoffs.RevealQueue)
}
