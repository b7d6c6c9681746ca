package store

import (
	"path/filepath"

	"foundersleague.dev/sim/internal/core"
)

const careerHistoryFile = "career_history.json"

// CareerHistory maps a stable player_id to its full season-by-season
// log, including retired players who no longer appear in any team's
// roster.
type CareerHistory map[core.PlayerID][]core.SeasonSnapshot

// SaveCareerHistory rewrites career_history.json from the current
// in-memory player set (active and retired), merging each player's
// CareerSeasons onto whatever was already on disk by player_id so a
// retired player's history from a prior season isn't lost once they
// leave s.Players.
func SaveCareerHistory(dir string, players map[core.PlayerID]*core.Player, retired []core.Player) error {
	hist, err := LoadCareerHistory(dir)
	if err != nil {
		return err
	}
	if hist == nil {
		hist = make(CareerHistory)
	}
	for id, p := range players {
		if len(p.CareerSeasons) > 0 {
			hist[id] = p.CareerSeasons
		}
	}
	for _, p := range retired {
		if len(p.CareerSeasons) > 0 {
			hist[p.ID] = p.CareerSeasons
		}
	}
	return writeEnvelope(filepath.Join(dir, careerHistoryFile), "career_history", hist, true)
}

// LoadCareerHistory reads career_history.json, returning nil with no
// error if the file doesn't exist.
func LoadCareerHistory(dir string) (CareerHistory, error) {
	var hist CareerHistory
	if err := readEnvelope(filepath.Join(dir, careerHistoryFile), "career_history", &hist); err != nil {
		if core.IsKind(err, core.KindRejection) {
			return nil, err
		}
		return nil, nil
	}
	return hist, nil
}

// RehydrateCareerSeasons backfills CareerSeasons onto every player
// currently in s.Players from the career history file, the other half
// of the §4.6 repair pass: a player record loaded fresh from
// league_state.json carries no history of its own.
func RehydrateCareerSeasons(players map[core.PlayerID]*core.Player, hist CareerHistory) {
	for id, p := range players {
		if seasons, ok := hist[id]; ok && len(p.CareerSeasons) == 0 {
			p.CareerSeasons = seasons
		}
	}
}
