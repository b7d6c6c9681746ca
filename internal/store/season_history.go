package store

import (
	"path/filepath"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/league"
)

const seasonHistoryFile = "season_history.json"

// SeasonHistory is the append-only log written to season_history.json,
// one entry per completed season.
type SeasonHistory struct {
	Entries []league.SeasonSummary `json:"entries"`
}

// AppendSeasonSummary loads the existing history, appends summary, and
// writes the file back. Season history writes always keep a backup:
// unlike the live state autosave, this file is rewritten once a
// season rather than once a day, so the extra I/O is immaterial.
func AppendSeasonSummary(dir string, summary league.SeasonSummary) error {
	hist, err := LoadSeasonHistory(dir)
	if err != nil {
		return err
	}
	hist.Entries = append(hist.Entries, summary)
	return writeEnvelope(filepath.Join(dir, seasonHistoryFile), "season_history", hist.Entries, true)
}

// LoadSeasonHistory reads season_history.json, returning an empty
// history if the file doesn't exist or fails to parse.
func LoadSeasonHistory(dir string) (SeasonHistory, error) {
	var entries []league.SeasonSummary
	if err := readEnvelope(filepath.Join(dir, seasonHistoryFile), "season_history", &entries); err != nil {
		if core.IsKind(err, core.KindRejection) {
			return SeasonHistory{}, err
		}
		return SeasonHistory{}, nil
	}
	return SeasonHistory{Entries: entries}, nil
}
