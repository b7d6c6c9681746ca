package tradeai

import "foundersleague.dev/sim/internal/core"

// Offer is a proposed trade of one or more players and future
// considerations between two teams.
type Offer struct {
	FromTeam   string
	ToTeam     string
	FromAssets []core.PlayerID
	ToAssets   []core.PlayerID
}

// TeamSide is a team's valuation-relevant state for one side of an
// evaluated trade.
type TeamSide struct {
	Team        *core.Team
	Players     map[core.PlayerID]*core.Player
	CapSpace    float64
	Needs       NeedVector
	PositionAvg map[core.Position]float64
}

func sideValue(assets []core.PlayerID, recipient TeamSide) float64 {
	total := 0.0
	for _, id := range assets {
		p, ok := recipient.Players[id]
		if !ok {
			continue
		}
		need, weight := recipient.Needs.PrimaryNeed()
		shortage := 0.0
		if matchesNeed(p, need) {
			shortage = weight
		}
		ctx := ValuationContext{
			AskCap:       recipient.CapSpace,
			PositionAvg:  recipient.PositionAvg[p.Position],
			NeedWeight:   weight,
			NeedShortage: shortage,
		}
		total += Value(p, ctx)
	}
	return total
}

func matchesNeed(p *core.Player, need string) bool {
	switch need {
	case "top6_f", "depth_f":
		return p.Position.IsForward()
	case "top4_d", "depth_d":
		return p.Position == core.PositionDefenseman
	case "starter_g":
		return p.IsGoalie()
	default:
		return false
	}
}

// EvaluationMode controls how tightly the receiving GM must come out
// ahead for an offer to clear.
type EvaluationMode int

const (
	// ModeBalanced requires the receiving side's incoming value to be
	// at least as large as what it gives up, within a small tolerance.
	ModeBalanced EvaluationMode = iota
	// ModeRelaxed widens that tolerance; used once a balanced search
	// has failed to find any accepted offer for a team in urgent need.
	ModeRelaxed
)

func tolerance(mode EvaluationMode) float64 {
	if mode == ModeRelaxed {
		return 0.45
	}
	return 0.12
}

// Evaluate reports whether `to` accepts the offer: the value of the
// assets it receives (FromAssets, valued against its own needs) must
// meet or exceed the value of what it gives up (ToAssets, valued
// against the sender's needs), within mode's tolerance.
func Evaluate(offer Offer, from, to TeamSide, mode EvaluationMode) bool {
	incoming := sideValue(offer.FromAssets, to)
	outgoing := sideValue(offer.ToAssets, from)
	return incoming >= outgoing-tolerance(mode)
}
