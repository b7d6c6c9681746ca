package tradeai

import (
	"math/rand"
	"testing"

	"foundersleague.dev/sim/internal/core"
)

func makeForward(name string, overall float64) *core.Player {
	return &core.Player{
		ID:       core.NewPlayerID(),
		Name:     name,
		Position: core.PositionCenter,
		Age:      26,
		Status:   core.StatusHealthy,
		Skills:   core.Skills{Shooting: overall, Playmaking: overall, Defense: overall, Physical: overall, Durability: 3.0},
		Contract: core.Contract{YearsLeft: 2, CapHit: 2.5},
	}
}

func TestValueRewardsYoungerPlayer(t *testing.T) {
	young := makeForward("Young", 3.5)
	young.Age = 21
	old := makeForward("Old", 3.5)
	old.Age = 37

	ctx := ValuationContext{PositionAvg: 3.0}
	if Value(young, ctx) <= Value(old, ctx) {
		t.Errorf("expected a 21-year-old to value higher than an otherwise identical 37-year-old")
	}
}

func TestValuePenalizesInjury(t *testing.T) {
	healthy := makeForward("Healthy", 3.2)
	hurt := makeForward("Hurt", 3.2)
	hurt.Status = core.StatusIR
	hurt.InjuredGamesRemaining = 10

	ctx := ValuationContext{PositionAvg: 3.0}
	if Value(hurt, ctx) >= Value(healthy, ctx) {
		t.Errorf("expected an injured player to value lower than an identical healthy one")
	}
}

func TestEvaluateAcceptsEqualValueBalancedTrade(t *testing.T) {
	a := makeForward("A", 3.4)
	b := makeForward("B", 3.4)

	fromTeam := core.NewTeam("Senders", "Atlantic", "Eastern")
	toTeam := core.NewTeam("Receivers", "Metro", "Eastern")

	from := TeamSide{Team: fromTeam, Players: map[core.PlayerID]*core.Player{a.ID: a}, PositionAvg: map[core.Position]float64{core.PositionCenter: 3.0}}
	to := TeamSide{Team: toTeam, Players: map[core.PlayerID]*core.Player{b.ID: b}, PositionAvg: map[core.Position]float64{core.PositionCenter: 3.0}}

	offer := Offer{FromTeam: fromTeam.Name, ToTeam: toTeam.Name, FromAssets: []core.PlayerID{a.ID}, ToAssets: []core.PlayerID{b.ID}}

	if !Evaluate(offer, from, to, ModeBalanced) {
		t.Errorf("expected a near-identical 1-for-1 to clear the balanced tolerance")
	}
}

func TestEvaluateRejectsLopsidedBalancedTrade(t *testing.T) {
	star := makeForward("Star", 4.6)
	scrub := makeForward("Scrub", 1.2)

	fromTeam := core.NewTeam("Senders", "Atlantic", "Eastern")
	toTeam := core.NewTeam("Receivers", "Metro", "Eastern")

	from := TeamSide{Team: fromTeam, Players: map[core.PlayerID]*core.Player{star.ID: star}, PositionAvg: map[core.Position]float64{core.PositionCenter: 3.0}}
	to := TeamSide{Team: toTeam, Players: map[core.PlayerID]*core.Player{scrub.ID: scrub}, PositionAvg: map[core.Position]float64{core.PositionCenter: 3.0}}

	offer := Offer{FromTeam: fromTeam.Name, ToTeam: toTeam.Name, FromAssets: []core.PlayerID{scrub.ID}, ToAssets: []core.PlayerID{star.ID}}

	if Evaluate(offer, from, to, ModeBalanced) {
		t.Errorf("expected a star-for-scrub offer to fail the balanced tolerance")
	}
}

func TestFindOneForOneReturnsNilWithEmptyPool(t *testing.T) {
	team := core.NewTeam("Solo", "Pacific", "Western")
	side := TeamSide{Team: team, Players: map[core.PlayerID]*core.Player{}, PositionAvg: map[core.Position]float64{}}
	give := makeForward("Give", 3.0)
	rng := rand.New(rand.NewSource(1))

	if found := FindOneForOne(side, give, nil, true, rng); found != nil {
		t.Errorf("expected a nil result scanning an empty candidate pool")
	}
}

func TestFiringProbabilityZeroDuringHoneymoon(t *testing.T) {
	c := &core.Coach{Rating: 3.0, HoneymoonGamesLeft: 5}
	in := FiringReviewInputs{PointPct: 0.3, ExpectedPointPct: 0.6}

	if p := FiringProbability(c, in); p != 0 {
		t.Errorf("expected zero firing probability during honeymoon, got %f", p)
	}
}

func TestFiringProbabilityNeverExceedsCap(t *testing.T) {
	c := &core.Coach{Rating: 2.0, TenureSeasons: 6}
	in := FiringReviewInputs{PointPct: 0.0, ExpectedPointPct: 1.0, MissedPlayoffsLastSeason: true}

	if p := FiringProbability(c, in); p > firingCap {
		t.Errorf("expected firing probability capped at %f, got %f", firingCap, p)
	}
}

func TestReviewFiringIncrementsRecentChangesOnDismissal(t *testing.T) {
	team := core.NewTeam("Hot Seat", "Central", "Western")
	team.Coach = core.Coach{Rating: 2.0, TenureSeasons: 6}
	in := FiringReviewInputs{PointPct: 0.0, ExpectedPointPct: 1.0, MissedPlayoffsLastSeason: true}
	rng := rand.New(rand.NewSource(7))

	fired := false
	for i := 0; i < 50 && !fired; i++ {
		fired = ReviewFiring(team, in, rng)
	}
	if !fired {
		t.Skip("coach was not dismissed within 50 rolls at this seed")
	}
	if team.Coach.RecentChangesCount == 0 {
		t.Errorf("expected RecentChangesCount to increment on dismissal")
	}
}
