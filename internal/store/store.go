package store

import (
	"os"
	"path/filepath"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/league"
)

// World is every persisted file loaded together, the unit the service
// facade starts a process from.
type World struct {
	League        *league.State
	Seed          int64
	SeasonHistory SeasonHistory
	CareerHistory CareerHistory
	HallOfFame    []core.HallOfFameEntry
}

// LoadWorld reads every envelope file under dir and rehydrates a full
// World, running the cross-file half of the repair pass (backfilling
// CareerSeasons from career_history.json) once both files are in
// memory.
func LoadWorld(dir string) (World, error) {
	leagueState, seed, err := LoadLeagueState(dir)
	if err != nil {
		return World{}, err
	}
	history, err := LoadSeasonHistory(dir)
	if err != nil {
		return World{}, err
	}
	careers, err := LoadCareerHistory(dir)
	if err != nil {
		return World{}, err
	}
	hof, err := LoadHallOfFame(dir)
	if err != nil {
		return World{}, err
	}

	if leagueState != nil && careers != nil {
		RehydrateCareerSeasons(leagueState.Players, careers)
	}

	return World{
		League:        leagueState,
		Seed:          seed,
		SeasonHistory: history,
		CareerHistory: careers,
		HallOfFame:    hof,
	}, nil
}

// Reset deletes every envelope file under dir, matching the "reset"
// service operation's "wipes all persisted files" contract. A missing
// file is not an error.
func Reset(dir string) error {
	for _, name := range []string{leagueStateFile, seasonHistoryFile, careerHistoryFile, hallOfFameFile} {
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		os.Remove(path + ".bak")
	}
	return nil
}
