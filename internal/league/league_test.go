package league

import (
	"testing"

	"foundersleague.dev/sim/internal/core"
)

func buildTestLeague(t *testing.T, teamNames []string) *State {
	t.Helper()
	cfg := Config{CalendarDensity: 0.6, GamesPerMatchup: 1}
	s := New(teamNames, cfg, 42)

	for _, name := range teamNames {
		team := core.NewTeam(name, "Div", "Conf")
		team.Coach = core.Coach{Rating: 3.0, Style: core.StrategyBalanced, Age: 45}
		s.Teams[name] = team

		positions := []core.Position{core.PositionCenter, core.PositionLeftWing, core.PositionRightWing, core.PositionDefenseman, core.PositionGoaltender}
		for j := 0; j < 25; j++ {
			pos := positions[j%len(positions)]
			p := &core.Player{
				ID:       core.NewPlayerID(),
				Name:     name + "-P" + string(rune('A'+j)),
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
	return s
}

func TestAdvanceDayIncrementsGPForScheduledTeamsOnly(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	s := buildTestLeague(t, teams)

	if len(s.Schedule) == 0 {
		t.Fatal("expected a non-empty schedule for 4 teams")
	}

	before := make(map[string]int, len(teams))
	for _, name := range teams {
		before[name] = s.Records[name].GP()
	}

	results, err := s.AdvanceDay()
	if err != nil {
		t.Fatalf("unexpected error advancing day: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one game result")
	}

	scheduled := make(map[string]bool)
	for _, m := range s.Schedule[0] {
		scheduled[m.Home] = true
		scheduled[m.Away] = true
	}
	for _, name := range teams {
		delta := s.Records[name].GP() - before[name]
		want := 0
		if scheduled[name] {
			want = 1
		}
		if delta != want {
			t.Errorf("team %s GP delta = %d, want %d", name, delta, want)
		}
	}
}

func TestAdvanceDayRefusesPastRegularSeason(t *testing.T) {
	teams := []string{"Alpha", "Bravo"}
	s := buildTestLeague(t, teams)
	s.DayIndex = s.TotalDays()

	if _, err := s.AdvanceDay(); err == nil {
		t.Error("expected an error advancing past the end of the regular season")
	}
}

func TestAdvanceDayRefusesOnCorruptedGPEvenForUnscheduledTeam(t *testing.T) {
	// Five teams: the round-robin gives one team a bye on day 0.
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}
	s := buildTestLeague(t, teams)

	scheduled := make(map[string]bool)
	for _, m := range s.Schedule[s.DayIndex] {
		scheduled[m.Home] = true
		scheduled[m.Away] = true
	}
	var unscheduled string
	for _, name := range teams {
		if !scheduled[name] {
			unscheduled = name
			break
		}
	}
	if unscheduled == "" {
		t.Skip("no unscheduled team on day 0 for this team count")
	}

	s.Records[unscheduled].Wins = s.DayIndex + 1

	files := make(map[string]int, len(s.Players))
	for id, p := range s.Players {
		files[string(id)] = p.GP
	}

	if _, err := s.AdvanceDay(); err == nil {
		t.Fatal("expected AdvanceDay to refuse when a team's persisted GP already exceeds the calendar day index")
	} else if core.ReasonOf(err) != core.ReasonInvariantGPProgression {
		t.Errorf("got reason %q, want %q", core.ReasonOf(err), core.ReasonInvariantGPProgression)
	}

	if s.DayIndex != 0 {
		t.Errorf("DayIndex advanced to %d despite the refusal", s.DayIndex)
	}
	for id, p := range s.Players {
		if p.GP != files[string(id)] {
			t.Errorf("player %s GP changed despite the refusal", id)
		}
	}
}

func TestBuildAndSimulatePlayoffsProducesChampion(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	s := buildTestLeague(t, teams)
	for _, name := range teams {
		s.Records[name].RegisterGame(true, 3, 2, false, true)
	}

	s.BuildAndSimulatePlayoffs()

	if s.Playoffs == nil || s.Playoffs.Bracket == nil {
		t.Fatal("expected a built playoff bracket")
	}
	if s.Playoffs.Bracket.CupChampion == "" {
		t.Error("expected a cup champion to be decided")
	}
	if len(s.Playoffs.RevealQueue) == 0 {
		t.Error("expected a non-empty reveal queue")
	}
}

func TestRevealNextDayDrainsQueueInOrder(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	s := buildTestLeague(t, teams)
	for _, name := range teams {
		s.Records[name].RegisterGame(true, 3, 2, false, true)
	}
	s.BuildAndSimulatePlayoffs()

	total := len(s.Playoffs.RevealQueue)
	count := 0
	for !s.PlayoffsComplete() {
		day := s.RevealNextDay()
		if day == nil {
			t.Fatal("expected a non-nil day before the queue is drained")
		}
		count++
	}
	if count != total {
		t.Errorf("revealed %d days, expected %d", count, total)
	}
	if day := s.RevealNextDay(); day != nil {
		t.Error("expected nil once the reveal queue is exhausted")
	}
}

func TestRunOffseasonAdvancesSeasonAndResetsRecords(t *testing.T) {
	teams := []string{"Alpha", "Bravo"}
	s := buildTestLeague(t, teams)
	s.Records["Alpha"].RegisterGame(true, 4, 1, false, true)

	startSeason := s.Season
	summary := s.RunOffseason()

	if s.Season != startSeason+1 {
		t.Errorf("expected season to advance from %d to %d, got %d", startSeason, startSeason+1, s.Season)
	}
	if s.DayIndex != 0 {
		t.Errorf("expected day index reset to 0, got %d", s.DayIndex)
	}
	if s.Records["Alpha"].GP() != 0 {
		t.Errorf("expected records reset after offseason, GP=%d", s.Records["Alpha"].GP())
	}
	if summary.Standings["Alpha"].Wins != 1 {
		t.Errorf("expected the season summary to preserve the pre-reset standings")
	}
	if len(s.Teams["Alpha"].Roster) == 0 {
		t.Error("expected the roster to be topped back up after the draft")
	}
}
