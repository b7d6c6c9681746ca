// Package engine simulates a single hockey game: it turns two dressed
// lineups plus coaching/context inputs into a final score, a goal-by-
// goal event log with scorer/assist attribution, goaltender
// decisions, injuries, and a three-stars snapshot. It never mutates
// its inputs beyond the *core.Player stat counters it is explicitly
// asked to update (RecordStats); lineup selection and persistence are
// the caller's responsibility.
package engine

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
)

// SideInput is everything the engine needs from one side of a
// matchup. Forwards and Defense must already be in dressed slot
// order (top line first) since strength weighting depends on it.
type SideInput struct {
	TeamName string
	Forwards []*core.Player
	Defense  []*core.Player
	Goalie   *core.Player

	Strategy     core.Strategy
	CoachOffense float64
	CoachDefense float64

	ContextBonus  float64
	LineupPenalty float64

	// InjuryMult folds in schedule-context overrides (e.g. a back to
	// back penalty) on top of the formula's baseline rate.
	InjuryMult float64
}

func (s SideInput) goalieStatus() GoaltendingPenalty {
	switch {
	case s.Goalie == nil:
		return GoalieNone
	case !s.Goalie.IsGoalie():
		return GoalieEmergencySkater
	default:
		return GoalieNormal
	}
}

func (s SideInput) strengthInputs() strengthInputs {
	return strengthInputs{
		Forwards:      s.Forwards,
		Defense:       s.Defense,
		Goalie:        s.Goalie,
		Status:        s.goalieStatus(),
		Strategy:      s.Strategy,
		CoachOffense:  s.CoachOffense,
		CoachDefense:  s.CoachDefense,
		ContextBonus:  s.ContextBonus,
		LineupPenalty: s.LineupPenalty,
	}
}

// Options controls global knobs for one simulated game.
type Options struct {
	Day int
	// RandScale is 1.0 for a normal game, up to ~1.4 for a deciding
	// playoff game.
	RandScale float64
	// RecordStats gates whether player/goalie counters are updated;
	// pre-simulating a playoff bracket for reveal still wants this on
	// so the revealed box scores are internally consistent.
	RecordStats bool
	// AttendanceBase seeds the attendance figure; actual attendance
	// adds small random variance around it.
	AttendanceBase int
}

// SpecialTeamsTally carries each side's power-play chances and
// conversions for one game, which the league layer folds into
// TeamRecord's PP/PK counters.
type SpecialTeamsTally struct {
	HomePPChances, HomePPGoals int
	AwayPPChances, AwayPPGoals int
}

// Result is a simulated game's full outcome: the persisted box score
// plus the special-teams tally the league layer needs but does not
// belong on the persisted GameResult itself.
type Result struct {
	core.GameResult
	SpecialTeams SpecialTeamsTally
}

// Simulate plays out one game and returns the full result.
func Simulate(rng *rand.Rand, home, away SideInput, opts Options) Result {
	hs := home.strengthInputs()
	as := away.strengthInputs()

	homeStr := homeStrength(hs, as)
	awayStr := awayStrength(as, hs)

	homeGoals := sampleGoals(rng, homeStr, opts.RandScale)
	awayGoals := sampleGoals(rng, awayStr, opts.RandScale)

	homePP, homePPGoals, awayPP, awayPPGoals := simulateSpecialTeams(rng, hs, as)
	homeGoals += homePPGoals
	awayGoals += awayPPGoals

	overtime := false
	if homeGoals == awayGoals {
		overtime = true
		if resolveOvertime(rng) {
			homeGoals++
		} else {
			awayGoals++
		}
	}

	var goals []core.GoalEvent
	for i := 0; i < homeGoals; i++ {
		goals = append(goals, attributeGoal(rng, home.TeamName, home.Forwards, home.Defense, i < homePPGoals))
	}
	for i := 0; i < awayGoals; i++ {
		goals = append(goals, attributeGoal(rng, away.TeamName, away.Forwards, away.Defense, i < awayPPGoals))
	}

	winner := home.TeamName
	homeWon := homeGoals > awayGoals
	if !homeWon {
		winner = away.TeamName
	}

	homeGoalieName, awayGoalieName := "", ""
	if home.Goalie != nil {
		homeGoalieName = home.Goalie.Name
	}
	if away.Goalie != nil {
		awayGoalieName = away.Goalie.Name
	}

	result := core.GameResult{
		Day:        opts.Day,
		HomeTeam:   home.TeamName,
		AwayTeam:   away.TeamName,
		HomeScore:  homeGoals,
		AwayScore:  awayGoals,
		Overtime:   overtime,
		HomeGoalie: homeGoalieName,
		AwayGoalie: awayGoalieName,
		Attendance: sampleAttendance(rng, opts.AttendanceBase),
		Goals:      goals,
		Winner:     winner,
	}

	var skaterLines []gameStatLine
	goalCounts := make(map[string]*gameStatLine)
	for _, g := range goals {
		for _, p := range append(append([]*core.Player{}, home.Forwards...), home.Defense...) {
			if p.Name == g.Scorer || contains(g.Assists, p.Name) {
				line := goalCounts[p.Name]
				if line == nil {
					line = &gameStatLine{player: p}
					goalCounts[p.Name] = line
				}
				if p.Name == g.Scorer {
					line.goals++
				} else {
					line.assists++
				}
			}
		}
		for _, p := range append(append([]*core.Player{}, away.Forwards...), away.Defense...) {
			if p.Name == g.Scorer || contains(g.Assists, p.Name) {
				line := goalCounts[p.Name]
				if line == nil {
					line = &gameStatLine{player: p}
					goalCounts[p.Name] = line
				}
				if p.Name == g.Scorer {
					line.goals++
				} else {
					line.assists++
				}
			}
		}
	}
	for _, l := range goalCounts {
		skaterLines = append(skaterLines, *l)
	}

	var goalieLines []goalieLine
	var homeShots, awayShots int

	if home.Goalie != nil {
		homeShots = sampleShots(rng, awayGoals, home.Goalie.Skills.Goaltending)
		goalieLines = append(goalieLines, goalieLine{home.Goalie, homeShots, homeShots - awayGoals, awayGoals, homeWon, homeWon && awayGoals == 0})
	}
	if away.Goalie != nil {
		awayShots = sampleShots(rng, homeGoals, away.Goalie.Skills.Goaltending)
		goalieLines = append(goalieLines, goalieLine{away.Goalie, awayShots, awayShots - homeGoals, homeGoals, !homeWon, !homeWon && homeGoals == 0})
	}

	result.ThreeStars = rankThreeStars(skaterLines, goalieLines)

	if opts.RecordStats {
		for _, l := range skaterLines {
			l.player.GP++
			l.player.Goals += l.goals
			l.player.Assists += l.assists
		}
		if home.Goalie != nil {
			recordGoalieDecision(home.Goalie, awayGoals, homeWon, !homeWon && overtime, homeShots)
		}
		if away.Goalie != nil {
			recordGoalieDecision(away.Goalie, homeGoals, !homeWon, homeWon && overtime, awayShots)
		}

		applyInjuries(rng, home)
		applyInjuries(rng, away)
	}

	return Result{
		GameResult: result,
		SpecialTeams: SpecialTeamsTally{
			HomePPChances: homePP, HomePPGoals: homePPGoals,
			AwayPPChances: awayPP, AwayPPGoals: awayPPGoals,
		},
	}
}

func applyInjuries(rng *rand.Rand, side SideInput) {
	all := append(append([]*core.Player{}, side.Forwards...), side.Defense...)
	if side.Goalie != nil {
		all = append(all, side.Goalie)
	}
	injuryMult := side.InjuryMult
	if injuryMult == 0 {
		injuryMult = 1.0
	}
	for _, p := range all {
		if injured, gamesOut := rollInjury(rng, p, side.Strategy, injuryMult); injured {
			applyInjury(p, gamesOut)
		}
	}
}

func sampleAttendance(rng *rand.Rand, base int) int {
	if base == 0 {
		base = 15000
	}
	variance := int(float64(base) * 0.1 * (rng.Float64()*2 - 1))
	return base + variance
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
