package tradeai

import (
	"math/rand"
	"sort"

	"foundersleague.dev/sim/internal/core"
)

// Candidate is a trade asset offered up for search: a player plus the
// team currently holding them.
type Candidate struct {
	TeamName string
	Player   *core.Player
}

func tradeable(p *core.Player) bool {
	return p.TradePreference != core.TradeUntouchable
}

// FindOneForOne searches `pool` (every tradeable player across the
// league other than `side`'s own roster) for a single player whose
// inclusion in a 1-for-1 offer against `give` clears side's
// acceptance rule. It first tries ModeBalanced, then falls back to
// ModeRelaxed if nothing clears and urgent is set.
//
// Candidates are shuffled before scanning so that ties in value don't
// always resolve toward the same team.
func FindOneForOne(side TeamSide, give *core.Player, pool []Candidate, urgent bool, rng *rand.Rand) *Candidate {
	shuffled := make([]Candidate, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	if found := scanOneForOne(side, give, shuffled, ModeBalanced); found != nil {
		return found
	}
	if urgent {
		return scanOneForOne(side, give, shuffled, ModeRelaxed)
	}
	return nil
}

func scanOneForOne(side TeamSide, give *core.Player, pool []Candidate, mode EvaluationMode) *Candidate {
	for i := range pool {
		cand := pool[i]
		if !tradeable(cand.Player) || !tradeable(give) {
			continue
		}
		offer := Offer{
			FromTeam:   cand.TeamName,
			ToTeam:     side.Team.Name,
			FromAssets: []core.PlayerID{cand.Player.ID},
			ToAssets:   []core.PlayerID{give.ID},
		}
		// The other GM's own needs aren't modeled here; `give` is
		// valued against a neutral context so the search reflects
		// only whether the deal clears side's own acceptance rule.
		neutralFrom := TeamSide{Players: map[core.PlayerID]*core.Player{give.ID: give}}
		if Evaluate(offer, neutralFrom, side, mode) {
			return &cand
		}
	}
	return nil
}

// RankByNeed sorts a team's own tradeable players by ascending value to
// the team itself, so the weakest surface first as trade bait. Each
// player is valued against the team's position average only; `need`
// does not affect the order.
func RankByNeed(players []*core.Player, need string, self TeamSide) []*core.Player {
	out := make([]*core.Player, 0, len(players))
	for _, p := range players {
		if tradeable(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		vi := Value(out[i], ValuationContext{PositionAvg: self.PositionAvg[out[i].Position]})
		vj := Value(out[j], ValuationContext{PositionAvg: self.PositionAvg[out[j].Position]})
		return vi < vj
	})
	return out
}
