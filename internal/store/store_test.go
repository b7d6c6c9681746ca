package store

import (
	"os"
	"path/filepath"
	"testing"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/league"
)

func buildTestState(t *testing.T) *league.State {
	t.Helper()
	teams := []string{"Alpha", "Bravo"}
	s := league.New(teams, league.Config{CalendarDensity: 0.6, GamesPerMatchup: 1}, 7)
	for _, name := range teams {
		team := core.NewTeam(name, "Div", "Conf")
		s.Teams[name] = team
		p := &core.Player{
			ID: core.NewPlayerID(), Name: name + "-P1", TeamName: name,
			Position: core.PositionCenter, Age: 25, Status: core.StatusHealthy,
			Contract: core.Contract{YearsLeft: 2, CapHit: 1.0, Type: core.ContractCore},
		}
		s.Players[p.ID] = p
		team.Roster = append(team.Roster, p.ID)
	}
	return s
}

func TestSaveAndLoadLeagueStateRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := buildTestState(t)
	s.DayIndex = 3

	if err := SaveLeagueState(dir, s, 7, true); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, seed, err := LoadLeagueState(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a non-nil loaded state")
	}
	if seed != 7 {
		t.Errorf("seed = %d, want 7", seed)
	}
	if loaded.DayIndex != 3 {
		t.Errorf("day index = %d, want 3", loaded.DayIndex)
	}
	if len(loaded.Teams) != 2 {
		t.Errorf("teams = %d, want 2", len(loaded.Teams))
	}
}

func TestLoadLeagueStateMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loaded, seed, err := LoadLeagueState(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded != nil {
		t.Error("expected nil state for a missing file")
	}
	if seed != 0 {
		t.Errorf("seed = %d, want 0", seed)
	}
}

func TestLoadLeagueStateRefusesNewerVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, leagueStateFile)
	future := `{"save_version": 999, "league_state": {"teams": {}}}`
	if err := os.WriteFile(path, []byte(future), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_, _, err := LoadLeagueState(dir)
	if err == nil {
		t.Fatal("expected a version-mismatch error")
	}
	if core.ReasonOf(err) != core.ReasonVersionMismatch {
		t.Errorf("reason = %q, want %q", core.ReasonOf(err), core.ReasonVersionMismatch)
	}
}

func TestLoadLeagueStateMalformedJSONReturnsDefaultsAndError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, leagueStateFile)
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, _, err := LoadLeagueState(dir)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if loaded != nil {
		t.Error("expected a nil state on parse failure")
	}
}

func TestWriteEnvelopeCreatesBackupOnOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := buildTestState(t)

	if err := SaveLeagueState(dir, s, 1, false); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := SaveLeagueState(dir, s, 1, true); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, leagueStateFile+".bak")); err != nil {
		t.Errorf("expected a .bak file: %v", err)
	}
}

func TestDemoteExcessRosterCapsAt22(t *testing.T) {
	team := core.NewTeam("Alpha", "Div", "Conf")
	players := make(map[core.PlayerID]*core.Player)
	for i := 0; i < 25; i++ {
		p := &core.Player{
			ID: core.NewPlayerID(), Name: "P", Position: core.PositionCenter,
			Status: core.StatusHealthy, Skills: core.Skills{Shooting: float64(i) * 0.1},
		}
		players[p.ID] = p
		team.Roster = append(team.Roster, p.ID)
	}

	demoteExcessRoster(team, players)

	if len(team.Roster) != core.MaxRoster {
		t.Errorf("roster size = %d, want %d", len(team.Roster), core.MaxRoster)
	}
	if len(team.MinorRoster) != 3 {
		t.Errorf("minor roster size = %d, want 3", len(team.MinorRoster))
	}
}

func TestEnsureEmergencyGoaliePromotesWhenNoneHealthy(t *testing.T) {
	team := core.NewTeam("Alpha", "Div", "Conf")
	players := make(map[core.PlayerID]*core.Player)

	skater := &core.Player{ID: core.NewPlayerID(), Position: core.PositionCenter, Status: core.StatusHealthy}
	players[skater.ID] = skater
	team.Roster = append(team.Roster, skater.ID)

	goalie := &core.Player{ID: core.NewPlayerID(), Position: core.PositionGoaltender, Status: core.StatusHealthy}
	players[goalie.ID] = goalie
	team.MinorRoster = append(team.MinorRoster, goalie.ID)

	ensureEmergencyGoalie(team, players)

	found := false
	for _, id := range team.Roster {
		if id == goalie.ID {
			found = true
		}
	}
	if !found {
		t.Error("expected the goalie to be promoted onto the active roster")
	}
}

func TestAppendHallOfFamePersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()
	entry := core.HallOfFameEntry{PlayerID: core.NewPlayerID(), PlayerName: "Legend", Reason: "career totals"}

	if err := AppendHallOfFame(dir, []core.HallOfFameEntry{entry}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	loaded, err := LoadHallOfFame(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].PlayerName != "Legend" {
		t.Errorf("unexpected hall of fame contents: %+v", loaded)
	}
}

func TestResetDeletesAllEnvelopeFiles(t *testing.T) {
	dir := t.TempDir()
	s := buildTestState(t)
	if err := SaveLeagueState(dir, s, 1, false); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := AppendHallOfFame(dir, []core.HallOfFameEntry{{PlayerName: "X"}}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if err := Reset(dir); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	for _, name := range []string{leagueStateFile, hallOfFameFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed", name)
		}
	}
}
