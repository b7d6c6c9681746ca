package league

import (
	"math/rand"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/namegen"
	"foundersleague.dev/sim/internal/teamai"
)

// DefaultCapLimit is the starting salary cap every bootstrapped team
// is assigned; nothing in core names a league-wide default, so a new
// league needs one to make Sign/Extend's cap check meaningful from
// day one.
const DefaultCapLimit = 82.5

// TeamSpec is one franchise's identity for NewLeague: its name and
// the division/conference it plays in.
type TeamSpec struct {
	Name       string
	Division   string
	Conference string
}

// NewLeague builds a full, immediately-simulatable State: one Team
// per TeamSpec, each with a freshly generated MaxRoster (22) player
// roster and MinMinor (10) player minor-league pool, jersey numbers assigned,
// default lines set, and a coach hired. It is the entry point `reset`
// and first-run use to go from a bare team list to a playable league,
// the way RunOffseason's draft step generates new players but never
// starts from nothing.
func NewLeague(specs []TeamSpec, cfg Config, seed int64) *State {
	names := make([]string, len(specs))
	for i, sp := range specs {
		names[i] = sp.Name
	}
	s := New(names, cfg, seed)

	gen := namegen.New(s.Rng)
	for _, sp := range specs {
		team := core.NewTeam(sp.Name, sp.Division, sp.Conference)
		team.CapLimit = DefaultCapLimit
		team.Coach = generateCoach(gen, s.Rng)
		s.Teams[sp.Name] = team

		for i := 0; i < core.MaxRoster; i++ {
			p := generateVeteran(gen, s.Rng, sp.Name, s.Season)
			s.Players[p.ID] = p
			team.Roster = append(team.Roster, p.ID)
		}
		for i := 0; i < core.MinMinor; i++ {
			p := generateVeteran(gen, s.Rng, sp.Name, s.Season)
			p.Age = 20 + s.Rng.Intn(4)
			s.Players[p.ID] = p
			team.MinorRoster = append(team.MinorRoster, p.ID)
		}

		regenerateJerseyNumbers(team, s.Players)
		teamai.SetDefaultLineup(team, s.Players, s.Rng)
	}
	return s
}

func generateCoach(gen *namegen.Generator, rng *rand.Rand) core.Coach {
	styles := []core.Strategy{core.StrategyAggressive, core.StrategyDefensive, core.StrategyBalanced}
	return core.Coach{
		ID:      core.NewCoachID(),
		Name:    gen.Next(),
		Age:     40 + rng.Intn(25),
		Rating:  2.0 + rng.Float64()*3.0,
		Style:   styles[rng.Intn(len(styles))],
		Offense: rng.Float64(),
		Defense: rng.Float64(),
	}
}

func generateVeteran(gen *namegen.Generator, rng *rand.Rand, teamName string, season core.SeasonNumber) *core.Player {
	pos := []core.Position{core.PositionCenter, core.PositionLeftWing, core.PositionRightWing, core.PositionDefenseman, core.PositionGoaltender}[rng.Intn(5)]
	quality := 0.3 + rng.Float64()*0.6
	base := core.MinSkill + quality*(core.MaxSkill-core.MinSkill)
	jitter := func() float64 { return (rng.Float64()*2 - 1) * 0.4 }

	return &core.Player{
		ID:           core.NewPlayerID(),
		Name:         gen.Next(),
		TeamName:     teamName,
		Position:     pos,
		Age:          20 + rng.Intn(16),
		PrimeAge:     26,
		BirthCountry: namegen.SampleBirthCountry(rng),
		Status:       core.StatusHealthy,
		Skills: core.Skills{
			Shooting:    core.ClampSkill(base + jitter()),
			Playmaking:  core.ClampSkill(base + jitter()),
			Defense:     core.ClampSkill(base + jitter()),
			Goaltending: core.ClampSkill(base + jitter()),
			Physical:    core.ClampSkill(base + jitter()),
			Durability:  core.ClampSkill(base + jitter()),
		},
		Draft:    core.DraftProvenance{Season: season, Round: 0, Overall: 0, Team: teamName},
		Contract: core.Contract{YearsLeft: 1 + rng.Intn(4), CapHit: 0.7 + quality*3.5, Type: core.ContractVeteran},
	}
}
