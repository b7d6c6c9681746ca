package league

import (
	"sort"

	"foundersleague.dev/sim/internal/core"
)

// StandingsMode selects how Standings groups and sorts teams.
type StandingsMode string

const (
	ModeLeague     StandingsMode = "league"
	ModeConference StandingsMode = "conference"
	ModeDivision   StandingsMode = "division"
	ModeWildcard   StandingsMode = "wildcard"
)

// StandingsRow is one team's row in a standings table.
type StandingsRow struct {
	TeamName string
	GP, W, L, OTL int
	Points   int
	PointPct float64
	GF, GA, GD int
	Streak   string
	Clinch   string
}

// clinchPlayoffSpot reports whether team cannot mathematically miss
// the playoffs: its current points already exceed the maximum
// possible points of whichever team currently sits just below the
// conference's playoff line. This is a simplified version of the
// "x/y/z/p" tag family — it only resolves the baseline playoff-berth
// tag (x), not the finer division/conference/presidents'-trophy
// clinches, since those need the full bracket-seeding rule replayed
// per day rather than a single remaining-points comparison.
func (s *State) clinchPlayoffSpot(teamName string, playoffSpots int) bool {
	conf := s.Teams[teamName].Conference
	var confTeams []string
	for name, t := range s.Teams {
		if t.Conference == conf {
			confTeams = append(confTeams, name)
		}
	}
	if playoffSpots <= 0 || playoffSpots >= len(confTeams) {
		return false
	}
	ranked := rankTeams(confTeams, s.Records)

	gamesRemaining := func(name string) int {
		n := 0
		for day := s.DayIndex; day < len(s.Schedule); day++ {
			for _, m := range s.Schedule[day] {
				if m.Home == name || m.Away == name {
					n++
				}
			}
		}
		return n
	}

	teamPoints := s.Records[teamName].Points()
	cutoffTeam := ranked[playoffSpots]
	if cutoffTeam == teamName {
		return false
	}
	maxPossible := s.Records[cutoffTeam].Points() + 2*gamesRemaining(cutoffTeam)
	return teamPoints > maxPossible
}

// Standings builds one table for the requested mode. value names the
// conference/division when mode requires it, and is ignored for
// ModeLeague.
func (s *State) Standings(mode StandingsMode, value string) []StandingsRow {
	var names []string
	for name, t := range s.Teams {
		switch mode {
		case ModeConference, ModeWildcard:
			if t.Conference == value {
				names = append(names, name)
			}
		case ModeDivision:
			if t.Division == value {
				names = append(names, name)
			}
		default:
			names = append(names, name)
		}
	}
	ranked := rankTeams(names, s.Records)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := s.Records[ranked[i]], s.Records[ranked[j]]
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		return a.GF > b.GF
	})

	playoffSpots := 8
	if mode == ModeDivision {
		playoffSpots = 3
	}

	rows := make([]StandingsRow, 0, len(ranked))
	for _, name := range ranked {
		r := s.Records[name]
		row := StandingsRow{
			TeamName: name, GP: r.GP(), W: r.Wins, L: r.Losses, OTL: r.OTLosses,
			Points: r.Points(), PointPct: r.PointPct(), GF: r.GF, GA: r.GA, GD: r.GoalDiff(),
			Streak: r.Streak(),
		}
		if s.clinchPlayoffSpot(name, playoffSpots) {
			row.Clinch = "x"
		}
		rows = append(rows, row)
	}
	return rows
}

// Meta is the lightweight status projection the service facade's meta
// operation reports: season, day, playoff state, and team list.
type Meta struct {
	Season      core.SeasonNumber
	DayIndex    int
	InPlayoffs  bool
	TotalDays   int
	TeamNames   []string
	UserTeam    string
}

func (s *State) Meta() Meta {
	names := make([]string, 0, len(s.Teams))
	for name := range s.Teams {
		names = append(names, name)
	}
	return Meta{
		Season:     s.Season,
		DayIndex:   s.DayIndex,
		InPlayoffs: !s.InRegularSeason() && s.Playoffs != nil && !s.PlayoffsComplete(),
		TotalDays:  s.TotalDays(),
		TeamNames:  names,
		UserTeam:   s.Config.UserTeam,
	}
}
