package teamai

import "foundersleague.dev/sim/internal/core"

// CoachModifierInputs carries the comparison the in-game coach
// modifier derives a matchup preference from.
type CoachModifierInputs struct {
	OwnTop6Offense      float64
	OpponentTop6Offense float64
	RecentFirings       int
}

// Modifiers is the (offense, defense, injury) tuple §4.3 feeds into
// the engine's strength formula.
type Modifiers struct {
	Offense    float64
	Defense    float64
	InjuryMult float64
}

// ComputeModifiers derives one team's per-game coach modifiers from
// its coach's rating/style/specialties, a matchup preference, and
// honeymoon/instability state.
func ComputeModifiers(team *core.Team, inputs CoachModifierInputs) Modifiers {
	c := team.Coach
	ratingEdge := (c.Rating - 3.0) * 0.04

	offense := ratingEdge + c.Offense*0.03
	defense := ratingEdge + c.Defense*0.03
	injuryMult := 1.0

	switch {
	case inputs.OwnTop6Offense-inputs.OpponentTop6Offense >= 0.16:
		offense += 0.03
	case inputs.OpponentTop6Offense-inputs.OwnTop6Offense >= 0.16:
		defense += 0.03
	}

	if c.HoneymoonGamesLeft > 0 {
		boost := 0.05 * (float64(c.HoneymoonGamesLeft) / 24.0)
		offense += boost
		defense += boost
	}

	if c.RecentChangesCount > 0 {
		instability := 0.02 * float64(c.RecentChangesCount)
		offense -= instability
		defense -= instability
		injuryMult += 0.02 * float64(c.RecentChangesCount)
	}

	return Modifiers{Offense: offense, Defense: defense, InjuryMult: injuryMult}
}

// DecayHoneymoon decrements a coach's honeymoon counter by one game,
// floored at zero.
func DecayHoneymoon(c *core.Coach) {
	if c.HoneymoonGamesLeft > 0 {
		c.HoneymoonGamesLeft--
	}
}
