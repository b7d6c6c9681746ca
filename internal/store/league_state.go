package store

import (
	"math/rand"
	"path/filepath"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/league"
	"foundersleague.dev/sim/internal/schedule"
)

const leagueStateFile = "league_state.json"

// leagueStateDoc is the JSON shape of league_state.json's payload. It
// mirrors league.State field-for-field rather than embedding it
// directly, so the on-disk shape is decoupled from the in-memory
// rand.Rand-carrying struct (which doesn't marshal meaningfully).
type leagueStateDoc struct {
	Config   league.Config                  `json:"config"`
	Season   core.SeasonNumber              `json:"season_number"`
	DayIndex int                            `json:"day_index"`
	Teams    map[string]*core.Team          `json:"teams"`
	Players  map[core.PlayerID]*core.Player `json:"players"`

	FreeAgents []core.PlayerID `json:"free_agents"`

	Records  map[string]*core.TeamRecord `json:"records"`
	Schedule []schedule.Day              `json:"schedule"`

	Playoffs *league.PlayoffState `json:"pending_playoffs,omitempty"`

	RngSeed int64 `json:"rng_seed"`
}

// SaveLeagueState writes the live league aggregate to
// <dir>/league_state.json. Day-advance autosaves skip the backup copy
// for throughput; any other caller should pass withBackup=true.
func SaveLeagueState(dir string, s *league.State, seed int64, withBackup bool) error {
	doc := leagueStateDoc{
		Config:     s.Config,
		Season:     s.Season,
		DayIndex:   s.DayIndex,
		Teams:      s.Teams,
		Players:    s.Players,
		FreeAgents: s.FreeAgents,
		Records:    s.Records,
		Schedule:   s.Schedule,
		Playoffs:   s.Playoffs,
		RngSeed:    seed,
	}
	return writeEnvelope(filepath.Join(dir, leagueStateFile), "league_state", doc, withBackup)
}

// LoadLeagueState reads league_state.json and rebuilds a live
// league.State from it, returning defaults (a nil *league.State, zero
// seed) with no error if the file is missing. A repair pass runs
// after a successful parse: see repair.go.
func LoadLeagueState(dir string) (*league.State, int64, error) {
	var doc leagueStateDoc
	if err := readEnvelope(filepath.Join(dir, leagueStateFile), "league_state", &doc); err != nil {
		return nil, 0, err
	}
	if doc.Teams == nil {
		return nil, 0, nil
	}

	s := &league.State{
		Config:     doc.Config,
		Season:     doc.Season,
		DayIndex:   doc.DayIndex,
		Teams:      doc.Teams,
		Players:    doc.Players,
		FreeAgents: doc.FreeAgents,
		Records:    doc.Records,
		Schedule:   doc.Schedule,
		Playoffs:   doc.Playoffs,
		Rng:        rand.New(rand.NewSource(doc.RngSeed)),
	}
	repairLeagueState(s)
	return s, doc.RngSeed, nil
}
