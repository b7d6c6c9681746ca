// Package tradeai implements trade valuation and acceptance, the
// balanced/relaxed trade search CPU GMs use to find deals, and the
// weekly coach hot-seat review.
package tradeai

import "foundersleague.dev/sim/internal/core"

// NeedVector scores a team's shortage at each roster category; the
// primary need is whichever entry scores highest.
type NeedVector struct {
	Top6F     float64
	Top4D     float64
	StarterG  float64
	DepthF    float64
	DepthD    float64
	CapRelief float64
}

// PrimaryNeed returns the highest-scored category and its value.
func (n NeedVector) PrimaryNeed() (category string, weight float64) {
	best := "top6_f"
	bestVal := n.Top6F
	candidates := map[string]float64{
		"top6_f": n.Top6F, "top4_d": n.Top4D, "starter_g": n.StarterG,
		"depth_f": n.DepthF, "depth_d": n.DepthD, "cap_relief": n.CapRelief,
	}
	for k, v := range candidates {
		if v > bestVal {
			best, bestVal = k, v
		}
	}
	return best, bestVal
}

// ValuationContext carries the acquiring team's context that the
// valuation formula needs beyond the player's own attributes.
type ValuationContext struct {
	AskCap       float64
	PositionAvg  float64
	NeedWeight   float64
	NeedShortage float64
}

func ageAdjustment(p *core.Player) float64 {
	age := p.Age
	if p.IsGoalie() {
		switch {
		case age <= 23:
			return 0.22
		case age <= 30:
			return 0.12
		case age <= 35:
			return -0.03
		default:
			return -0.18
		}
	}
	switch {
	case age <= 21:
		return 0.24
	case age <= 27:
		return 0.11
	case age <= 31:
		return 0
	case age <= 35:
		return -0.12
	default:
		return -0.25
	}
}

// Value computes the §4.5 trade valuation of player p for the
// acquiring team described by ctx.
func Value(p *core.Player, ctx ValuationContext) float64 {
	base := p.Overall()
	age := ageAdjustment(p)
	costEff := core.Clamp(ctx.AskCap-p.Contract.CapHit, -0.35, 0.35)
	termBonus := core.Clamp(float64(p.Contract.YearsLeft-1)*0.04, 0, 0.2)
	needBonus := ctx.NeedShortage*0.08 + max(0, 2.9-ctx.PositionAvg)*0.09 + ctx.NeedWeight*0.16

	prospectBonus := 0.0
	if p.Prospect != nil && p.Prospect.SeasonsToNHL > 0 {
		prospectBonus = core.Clamp((p.Prospect.Potential-0.5)*0.6, -0.05, 0.28)
	}

	injuryPen := 0.0
	if p.IsInjured() {
		injuryPen = min(0.35, 0.03*float64(p.InjuredGamesRemaining))
	} else if p.Status == core.StatusDTD {
		injuryPen = 0.06
	}

	return base + age + costEff + termBonus + needBonus + prospectBonus - injuryPen
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
