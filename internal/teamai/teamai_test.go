package teamai

import (
	"math/rand"
	"testing"

	"foundersleague.dev/sim/internal/core"
)

func buildTeamWithRoster(n int) (*core.Team, map[core.PlayerID]*core.Player) {
	team := core.NewTeam("Testers", "Atlantic", "Eastern")
	team.Coach = core.Coach{Rating: 3.5, Style: core.StrategyBalanced}
	players := make(map[core.PlayerID]*core.Player, n)

	positions := []core.Position{core.PositionCenter, core.PositionLeftWing, core.PositionRightWing, core.PositionDefenseman, core.PositionGoaltender}
	for i := 0; i < n; i++ {
		pos := positions[i%len(positions)]
		p := &core.Player{
			ID:       core.NewPlayerID(),
			Name:     "Player" + string(rune('A'+i)),
			Position: pos,
			Skills:   core.Skills{Shooting: 3.0, Playmaking: 3.0, Defense: 3.0, Goaltending: 3.0, Physical: 3.0, Durability: 3.0},
			Status:   core.StatusHealthy,
		}
		players[p.ID] = p
		team.Roster = append(team.Roster, p.ID)
	}
	return team, players
}

func TestSetDefaultLineupDressesFullStrength(t *testing.T) {
	team, players := buildTeamWithRoster(25)
	rng := rand.New(rand.NewSource(1))

	SetDefaultLineup(team, players, rng)

	if len(team.LineAssignments) != len(core.AllSlots()) {
		t.Fatalf("expected every slot filled, got %d of %d", len(team.LineAssignments), len(core.AllSlots()))
	}
	for _, slot := range core.AllSlots() {
		if team.LineAssignments[slot] == "" {
			t.Errorf("slot %s left empty with a 25-player healthy roster", slot)
		}
	}
}

func TestSetLineAssignmentsPenalizesPositionMismatch(t *testing.T) {
	team, players := buildTeamWithRoster(25)
	rng := rand.New(rand.NewSource(2))

	SetDefaultLineup(team, players, rng)

	var defenseman string
	for _, p := range players {
		if p.Position == core.PositionDefenseman {
			defenseman = p.Name
			break
		}
	}

	requested := map[core.Slot]string{core.SlotLW1: defenseman}
	penalty := SetLineAssignments(team, requested, players, rng)

	if penalty <= 0 {
		t.Errorf("expected a positive penalty for slotting a defenseman at LW1, got %f", penalty)
	}
}

func TestDecidePlayTodayClampsToRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := &core.Player{Status: core.StatusDTD}
	ctx := DTDContext{}

	// A severity of 1.0 drives the raw probability below zero, so any
	// true decision comes from the 0.12 floor.
	trueCount := 0
	for i := 0; i < 1000; i++ {
		if DecidePlayToday(p, core.StrategyBalanced, ctx, 0.5, 1.0, rng) {
			trueCount++
		}
	}
	if trueCount == 0 || trueCount == 1000 {
		t.Errorf("expected a mixed distribution of play-today decisions, got %d/1000 true", trueCount)
	}
}
