package core

import "github.com/google/uuid"

// PlayerID is a stable opaque identifier for a player, preserved across
// trades, promotions, retirement, and save/load round trips.
type PlayerID string

// CoachID is a stable opaque identifier for a coach (active or sitting
// in the retired/candidate pool).
type CoachID string

// NewPlayerID mints a fresh stable player identifier.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.New().String())
}

// NewCoachID mints a fresh stable coach identifier.
func NewCoachID() CoachID {
	return CoachID(uuid.New().String())
}

// SeasonNumber is a 1-indexed season counter.
type SeasonNumber int

// Position is a player's primary position.
type Position string

const (
	PositionCenter      Position = "C"
	PositionLeftWing    Position = "LW"
	PositionRightWing   Position = "RW"
	PositionDefenseman  Position = "D"
	PositionGoaltender  Position = "G"
)

// IsForward reports whether pos is one of the three forward slots.
func (p Position) IsForward() bool {
	return p == PositionCenter || p == PositionLeftWing || p == PositionRightWing
}

// Strategy is a team or per-game coaching stance.
type Strategy string

const (
	StrategyAggressive Strategy = "aggressive"
	StrategyBalanced   Strategy = "balanced"
	StrategyDefensive  Strategy = "defensive"
)

// InjuryStatus is a player's current health state.
type InjuryStatus string

const (
	StatusHealthy InjuryStatus = "Healthy"
	StatusDTD     InjuryStatus = "DTD"
	StatusIR      InjuryStatus = "IR"
)

// ProspectTier classifies a prospect's readiness for the top league.
type ProspectTier string

const (
	TierNHL    ProspectTier = "NHL"
	TierAHL    ProspectTier = "AHL"
	TierJunior ProspectTier = "Junior"
)

// ContractType classifies the kind of contract a player is on.
type ContractType string

const (
	ContractEntry    ContractType = "entry"
	ContractBridge   ContractType = "bridge"
	ContractCore     ContractType = "core"
	ContractVeteran  ContractType = "veteran"
)

// TradePreference governs whether a player can be offered in trade
// negotiations.
type TradePreference string

const (
	TradeAvailable  TradePreference = "available"
	TradeShop       TradePreference = "shop"
	TradeUntouchable TradePreference = "untouchable"
)
