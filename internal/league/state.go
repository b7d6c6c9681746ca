// Package league owns the season-long aggregate: the day-advance
// loop, playoff bracket construction and reveal, and the offseason
// pipeline. It consumes internal/core's entities, internal/schedule's
// calendar, internal/engine's single-game simulation, and
// internal/teamai's per-team decisions, and never duplicates any of
// their logic.
package league

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/schedule"
)

// Config carries the knobs the league layer needs that don't belong
// on any single entity.
type Config struct {
	CalendarDensity float64
	GamesPerMatchup int
	UserTeam        string
}

// PlayoffState holds the pre-simulated bracket and the queue of days
// still waiting to be revealed to the caller one at a time.
type PlayoffState struct {
	Bracket      *core.PlayoffBracket
	RevealQueue  [][]core.GameResult
	RevealedDays int
}

// State is the full live league aggregate, the in-memory shape of
// league_state.json.
type State struct {
	Config Config

	Season   core.SeasonNumber
	DayIndex int

	Teams   map[string]*core.Team
	Players map[core.PlayerID]*core.Player

	FreeAgents []core.PlayerID

	Records  map[string]*core.TeamRecord
	Schedule []schedule.Day

	Playoffs *PlayoffState

	Rng *rand.Rand

	// PendingLineupPenalty carries the lineup_position_penalty a user
	// SetLines call produced, consumed and cleared by the next
	// simulated game for that team.
	PendingLineupPenalty map[string]float64
}

// snapshot is the pre-advance state the integrity check restores from
// on failure; it is a deep-enough copy to undo a single day's worth of
// TeamRecord/roster-health mutation.
type snapshot struct {
	dayIndex int
	records  map[string]core.TeamRecord
	injuries map[core.PlayerID]int
	statuses map[core.PlayerID]core.InjuryStatus
	playToday map[core.PlayerID]bool
}

func (s *State) snapshot() snapshot {
	snap := snapshot{
		dayIndex:  s.DayIndex,
		records:   make(map[string]core.TeamRecord, len(s.Records)),
		injuries:  make(map[core.PlayerID]int, len(s.Players)),
		statuses:  make(map[core.PlayerID]core.InjuryStatus, len(s.Players)),
		playToday: make(map[core.PlayerID]bool, len(s.Players)),
	}
	for name, r := range s.Records {
		snap.records[name] = *r
	}
	for id, p := range s.Players {
		snap.injuries[id] = p.InjuredGamesRemaining
		snap.statuses[id] = p.Status
		snap.playToday[id] = p.PlayToday
	}
	return snap
}

func (s *State) restore(snap snapshot) {
	s.DayIndex = snap.dayIndex
	for name, rec := range snap.records {
		r := rec
		s.Records[name] = &r
	}
	for id, p := range s.Players {
		p.InjuredGamesRemaining = snap.injuries[id]
		p.Status = snap.statuses[id]
		p.PlayToday = snap.playToday[id]
	}
}

// TotalDays is the length of the regular-season calendar.
func (s *State) TotalDays() int { return len(s.Schedule) }

// InRegularSeason reports whether the day index has not yet reached
// the end of the regular-season calendar.
func (s *State) InRegularSeason() bool { return s.DayIndex < s.TotalDays() }

// New builds a fresh league state for the given team names and
// config, constructing the regular-season calendar and zeroed
// records. Teams, players and rosters are left empty for the caller to
// populate; NewLeague does so for a brand-new generated league.
func New(teamNames []string, cfg Config, seed int64) *State {
	teams := make(map[string]*core.Team, len(teamNames))
	records := make(map[string]*core.TeamRecord, len(teamNames))
	for _, name := range teamNames {
		records[name] = &core.TeamRecord{TeamName: name}
	}

	gamesPerMatchup := cfg.GamesPerMatchup
	if gamesPerMatchup < 1 {
		gamesPerMatchup = 1
	}

	return &State{
		Config:               cfg,
		Season:               1,
		Teams:                teams,
		Players:              make(map[core.PlayerID]*core.Player),
		Records:              records,
		Schedule:             schedule.Build(teamNames, gamesPerMatchup, cfg.CalendarDensity),
		Rng:                  rand.New(rand.NewSource(seed)),
		PendingLineupPenalty: make(map[string]float64),
	}
}
