package core

import "strconv"

const (
	// MaxRoster is the active-roster cap (healthy count may never
	// exceed this).
	MaxRoster = 22
	// MinMinor is the floor the minor roster is replenished to at
	// every offseason roll.
	MinMinor = 10
	// DressedForwards, DressedDefense, DressedGoalies are the target
	// dressed counts for a full-strength lineup (20 total).
	DressedForwards = 12
	DressedDefense  = 6
	DressedGoalies  = 2
)

// RetiredNumber records a jersey number a franchise has taken out of
// circulation.
type RetiredNumber struct {
	Number        int    `json:"number"`
	PlayerName    string `json:"player_name"`
	SeasonRetired SeasonNumber `json:"season_retired"`
}

// Coach is a team's bench boss. Rating is roughly in [2.0, 5.0];
// CoachQuality normalizes it to [0,1] for use in lineup and DTD
// formulas.
type Coach struct {
	ID       CoachID  `json:"id"`
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Rating   float64  `json:"rating"`
	Style    Strategy `json:"style"`
	Offense  float64  `json:"offense_specialty"`
	Defense  float64  `json:"defense_specialty"`

	TenureSeasons       int `json:"tenure_seasons"`
	RecentChangesCount  int `json:"recent_changes_count"`
	HoneymoonGamesLeft  int `json:"honeymoon_games_left"`

	Cups int `json:"cups"`
}

// CoachQuality maps Rating in ~[2.0,5.0] onto [0,1].
func (c *Coach) CoachQuality() float64 {
	q := (c.Rating - 2.0) / 3.0
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1
	}
	return q
}

// Team is a franchise: its name, branding, two player pools, current
// dressed lineup, bench staff, and leadership.
type Team struct {
	Name       string `json:"name"`
	Division   string `json:"division"`
	Conference string `json:"conference"`
	Arena      string `json:"arena"`
	ArenaCap   int    `json:"arena_capacity"`

	Roster      []PlayerID `json:"roster"`
	MinorRoster []PlayerID `json:"minor_roster"`

	DressedPlayerNames []string        `json:"dressed_player_names"`
	LineAssignments    map[Slot]string `json:"line_assignments"`

	Coach Coach `json:"coach"`

	CaptainName    string   `json:"captain_name"`
	AssistantNames []string `json:"assistant_names"`

	RetiredNumbers []RetiredNumber `json:"retired_numbers"`

	IsUserControlled bool `json:"is_user_controlled"`

	CapLimit float64 `json:"cap_limit"`
}

// NewTeam constructs a Team with initialized maps/slices so callers
// never need a nil check before assigning into LineAssignments.
func NewTeam(name, division, conference string) *Team {
	return &Team{
		Name:            name,
		Division:        division,
		Conference:      conference,
		LineAssignments: make(map[Slot]string, len(ForwardSlots)+len(DefenseSlots)+len(GoalieSlots)),
	}
}

// NumberRetired reports whether number is in RetiredNumbers.
func (t *Team) NumberRetired(number int) bool {
	for _, rn := range t.RetiredNumbers {
		if rn.Number == number {
			return true
		}
	}
	return false
}

// TeamRecord is the per-season running tally for one team.
type TeamRecord struct {
	TeamName string `json:"team_name"`

	Wins     int `json:"wins"`
	Losses   int `json:"losses"`
	OTLosses int `json:"ot_losses"`

	GF int `json:"gf"`
	GA int `json:"ga"`

	HomeWins, HomeLosses, HomeOTLosses int `json:"-"`
	AwayWins, AwayLosses, AwayOTLosses int `json:"-"`

	PPGoals        int `json:"pp_goals"`
	PPChances      int `json:"pp_chances"`
	PKGoalsAgainst int `json:"pk_goals_against"`
	PKChances      int `json:"pk_chances"`

	Last10 []string `json:"last10"`

	GamesPlayed int `json:"games_played"`
}

// GP is the games-played count, derived from Wins+Losses+OTLosses so
// it can never drift from the decision counters.
func (r *TeamRecord) GP() int { return r.Wins + r.Losses + r.OTLosses }

// Points returns 2*Wins + OTLosses.
func (r *TeamRecord) Points() int { return 2*r.Wins + r.OTLosses }

// PointPct returns Points/(2*GP), or 0 with no games played.
func (r *TeamRecord) PointPct() float64 {
	gp := r.GP()
	if gp == 0 {
		return 0
	}
	return float64(r.Points()) / float64(2*gp)
}

// GoalDiff returns GF-GA.
func (r *TeamRecord) GoalDiff() int { return r.GF - r.GA }

// PPPct returns PPGoals/PPChances, or 0 with no chances.
func (r *TeamRecord) PPPct() float64 {
	if r.PPChances == 0 {
		return 0
	}
	return float64(r.PPGoals) / float64(r.PPChances)
}

// PKPct returns 1 - PKGoalsAgainst/PKChances, or 1 with no chances
// against.
func (r *TeamRecord) PKPct() float64 {
	if r.PKChances == 0 {
		return 1
	}
	return 1 - float64(r.PKGoalsAgainst)/float64(r.PKChances)
}

// Streak derives the current streak token ("W3", "L2", ...) from the
// tail of Last10, which records "W", "L", or "OTL" per game in
// chronological order.
func (r *TeamRecord) Streak() string {
	if len(r.Last10) == 0 {
		return ""
	}
	last := r.Last10[len(r.Last10)-1]
	isWin := last == "W"
	count := 0
	for i := len(r.Last10) - 1; i >= 0; i-- {
		w := r.Last10[i] == "W"
		if w != isWin {
			break
		}
		count++
	}
	letter := "L"
	if isWin {
		letter = "W"
	}
	return letter + strconv.Itoa(count)
}

// RegisterGame folds one game's result into the record: win/loss/OTL
// decision, goals for/against, home/away split, and the trimmed
// last-10 window.
func (r *TeamRecord) RegisterGame(isHome bool, goalsFor, goalsAgainst int, overtime, won bool) {
	r.GF += goalsFor
	r.GA += goalsAgainst

	var result string
	switch {
	case won:
		r.Wins++
		result = "W"
		if isHome {
			r.HomeWins++
		} else {
			r.AwayWins++
		}
	case overtime:
		r.OTLosses++
		result = "OTL"
		if isHome {
			r.HomeOTLosses++
		} else {
			r.AwayOTLosses++
		}
	default:
		r.Losses++
		result = "L"
		if isHome {
			r.HomeLosses++
		} else {
			r.AwayLosses++
		}
	}

	r.Last10 = append(r.Last10, result)
	if len(r.Last10) > 10 {
		r.Last10 = r.Last10[len(r.Last10)-10:]
	}
	r.GamesPlayed++
}
