package store

import (
	"path/filepath"

	"foundersleague.dev/sim/internal/core"
)

const hallOfFameFile = "hall_of_fame.json"

// AppendHallOfFame loads the existing induction list, appends
// newlyInducted, and writes the file back.
func AppendHallOfFame(dir string, newlyInducted []core.HallOfFameEntry) error {
	if len(newlyInducted) == 0 {
		return nil
	}
	entries, err := LoadHallOfFame(dir)
	if err != nil {
		return err
	}
	entries = append(entries, newlyInducted...)
	return writeEnvelope(filepath.Join(dir, hallOfFameFile), "hall_of_fame", entries, true)
}

// LoadHallOfFame reads hall_of_fame.json, returning an empty list if
// the file doesn't exist or fails to parse.
func LoadHallOfFame(dir string) ([]core.HallOfFameEntry, error) {
	var entries []core.HallOfFameEntry
	if err := readEnvelope(filepath.Join(dir, hallOfFameFile), "hall_of_fame", &entries); err != nil {
		if core.IsKind(err, core.KindRejection) {
			return nil, err
		}
		return nil, nil
	}
	return entries, nil
}
