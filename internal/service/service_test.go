package service

import (
	"context"
	"os"
	"testing"

	"github.com/charmbracelet/log"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/league"
	"foundersleague.dev/sim/internal/store"
)

func buildTestService(t *testing.T, teamNames []string) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := league.Config{CalendarDensity: 0.6, GamesPerMatchup: 1, UserTeam: teamNames[0]}
	s := league.New(teamNames, cfg, 7)

	for _, name := range teamNames {
		team := core.NewTeam(name, "Div", "Conf")
		team.Coach = core.Coach{Rating: 3.0, Style: core.StrategyBalanced, Age: 45}
		team.CapLimit = 100
		s.Teams[name] = team

		positions := []core.Position{core.PositionCenter, core.PositionLeftWing, core.PositionRightWing, core.PositionDefenseman, core.PositionGoaltender}
		for j := 0; j < 20; j++ {
			pos := positions[j%len(positions)]
			p := &core.Player{
				ID:       core.NewPlayerID(),
				Name:     name + "-P",
				TeamName: name,
				Position: pos,
				Age:      25,
				Status:   core.StatusHealthy,
				Skills:   core.Skills{Shooting: 3.0, Playmaking: 3.0, Defense: 3.0, Goaltending: 3.0, Physical: 3.0, Durability: 3.0},
				Contract: core.Contract{YearsLeft: 3, CapHit: 1.0},
			}
			s.Players[p.ID] = p
			team.Roster = append(team.Roster, p.ID)
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	svc := New(dir, store.World{League: s, Seed: 7}, logger)
	return svc, dir
}

func TestMetaReportsTeamNamesAndUserTeam(t *testing.T) {
	teams := []string{"Alpha", "Bravo"}
	svc, _ := buildTestService(t, teams)

	meta, err := svc.Meta(context.Background())
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if meta.UserTeam != "Alpha" {
		t.Errorf("UserTeam = %q, want Alpha", meta.UserTeam)
	}
	if len(meta.TeamNames) != 2 {
		t.Errorf("len(TeamNames) = %d, want 2", len(meta.TeamNames))
	}
}

func TestStandingsReturnsOneRowPerTeam(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie"}
	svc, _ := buildTestService(t, teams)

	rows, err := svc.Standings(context.Background(), league.ModeLeague, "")
	if err != nil {
		t.Fatalf("Standings: %v", err)
	}
	if len(rows) != len(teams) {
		t.Errorf("len(rows) = %d, want %d", len(rows), len(teams))
	}
}

func TestAdvancePersistsLeagueState(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	svc, dir := buildTestService(t, teams)

	if _, err := svc.Advance(context.Background()); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if _, err := os.Stat(dir + "/league_state.json"); err != nil {
		t.Errorf("league_state.json was not written: %v", err)
	}
}

func TestAdvanceRespectsCanceledContext(t *testing.T) {
	svc, _ := buildTestService(t, []string{"Alpha", "Bravo"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Advance(ctx); err == nil {
		t.Error("expected an error from a canceled context, got nil")
	}
}

func TestSignRefusesWithoutCapSpace(t *testing.T) {
	svc, _ := buildTestService(t, []string{"Alpha", "Bravo"})

	fa := &core.Player{
		ID: core.NewPlayerID(), Name: "Free Agent", Position: core.PositionCenter,
		Status: core.StatusHealthy, Contract: core.Contract{},
	}
	svc.state.Players[fa.ID] = fa
	svc.state.FreeAgents = append(svc.state.FreeAgents, fa.ID)
	svc.state.Teams["Alpha"].CapLimit = 0

	err := svc.Sign(context.Background(), "Alpha", string(fa.ID), 1, 5.0)
	if core.ReasonOf(err) != core.ReasonNoCapSpace {
		t.Errorf("ReasonOf(err) = %v, want ReasonNoCapSpace", core.ReasonOf(err))
	}
}

func TestPromoteUnknownTeamReturnsTeamNotFound(t *testing.T) {
	svc, _ := buildTestService(t, []string{"Alpha", "Bravo"})

	err := svc.Promote(context.Background(), "Nonexistent", "whoever")
	if core.ReasonOf(err) != core.ReasonTeamNotFound {
		t.Errorf("ReasonOf(err) = %v, want ReasonTeamNotFound", core.ReasonOf(err))
	}
}

func TestSetLinesRecordsPendingPenalty(t *testing.T) {
	svc, _ := buildTestService(t, []string{"Alpha", "Bravo"})

	var anyID string
	for id := range svc.state.Players {
		if svc.state.Players[id].TeamName == "Alpha" {
			anyID = string(id)
			break
		}
	}

	_, err := svc.SetLines(context.Background(), "Alpha", map[core.Slot]string{core.SlotC1: anyID})
	if err != nil {
		t.Fatalf("SetLines: %v", err)
	}
	if _, ok := svc.state.PendingLineupPenalty["Alpha"]; !ok {
		t.Error("expected a pending lineup penalty to be recorded for Alpha")
	}
}

func TestResetReplacesStateAndClearsFiles(t *testing.T) {
	svc, dir := buildTestService(t, []string{"Alpha", "Bravo"})
	if err := svc.autosave(); err != nil {
		t.Fatalf("autosave: %v", err)
	}

	newSpecs := []league.TeamSpec{
		{Name: "Echo", Division: "Div", Conference: "Conf"},
		{Name: "Foxtrot", Division: "Div", Conference: "Conf"},
	}
	if err := svc.Reset(context.Background(), newSpecs, league.Config{UserTeam: "Echo"}, 1); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if team, ok := svc.state.Teams["Echo"]; !ok {
		t.Error("expected Echo to be a team after Reset")
	} else if len(team.Roster) == 0 {
		t.Error("expected Echo to have a generated roster after Reset")
	}
	if _, err := os.Stat(dir + "/league_state.json"); err != nil {
		t.Errorf("expected league_state.json to be (re)written by Reset, stat err = %v", err)
	}
}
