package core

// Slot names every position in a team's dressed lineup: four forward
// lines of LW/C/RW, three defense pairs of LD/RD, and two goalie
// slots (starter, backup). Order matters: it is the fill order used
// by lineup construction and the penalty-scoring order used by manual
// line assignment.
type Slot string

const (
	SlotLW1 Slot = "LW1"
	SlotC1  Slot = "C1"
	SlotRW1 Slot = "RW1"
	SlotLW2 Slot = "LW2"
	SlotC2  Slot = "C2"
	SlotRW2 Slot = "RW2"
	SlotLW3 Slot = "LW3"
	SlotC3  Slot = "C3"
	SlotRW3 Slot = "RW3"
	SlotLW4 Slot = "LW4"
	SlotC4  Slot = "C4"
	SlotRW4 Slot = "RW4"

	SlotLD1 Slot = "LD1"
	SlotRD1 Slot = "RD1"
	SlotLD2 Slot = "LD2"
	SlotRD2 Slot = "RD2"
	SlotLD3 Slot = "LD3"
	SlotRD3 Slot = "RD3"

	SlotG1 Slot = "G1"
	SlotG2 Slot = "G2"
)

// ForwardSlots is every forward line slot in fill order.
var ForwardSlots = []Slot{SlotLW1, SlotC1, SlotRW1, SlotLW2, SlotC2, SlotRW2, SlotLW3, SlotC3, SlotRW3, SlotLW4, SlotC4, SlotRW4}

// DefenseSlots is every defense-pair slot in fill order.
var DefenseSlots = []Slot{SlotLD1, SlotRD1, SlotLD2, SlotRD2, SlotLD3, SlotRD3}

// GoalieSlots is the starter/backup slot pair.
var GoalieSlots = []Slot{SlotG1, SlotG2}

// AllSlots concatenates Forward, Defense, and Goalie slots in fill order.
func AllSlots() []Slot {
	out := make([]Slot, 0, len(ForwardSlots)+len(DefenseSlots)+len(GoalieSlots))
	out = append(out, ForwardSlots...)
	out = append(out, DefenseSlots...)
	out = append(out, GoalieSlots...)
	return out
}

// IsForwardSlot, IsDefenseSlot, IsGoalieSlot classify a slot by kind.
func (s Slot) IsForwardSlot() bool {
	for _, f := range ForwardSlots {
		if f == s {
			return true
		}
	}
	return false
}

func (s Slot) IsDefenseSlot() bool {
	for _, d := range DefenseSlots {
		if d == s {
			return true
		}
	}
	return false
}

func (s Slot) IsGoalieSlot() bool {
	return s == SlotG1 || s == SlotG2
}

// LineupPositionPenalty returns the §4.3 position-mismatch penalty for
// dressing a player whose position is actual into slot.
func LineupPositionPenalty(slot Slot, actual Position) float64 {
	wantsForward := slot.IsForwardSlot()
	wantsDefense := slot.IsDefenseSlot()
	wantsGoalie := slot.IsGoalieSlot()

	switch {
	case wantsGoalie && actual != PositionGoaltender:
		return 0.25
	case !wantsGoalie && actual == PositionGoaltender:
		return 0.18
	case wantsForward && actual.IsForward():
		if string(slot[:len(slot)-1]) == string(actual) {
			return 0.0
		}
		return 0.03
	case wantsDefense && actual == PositionDefenseman:
		return 0.0
	case wantsDefense && actual.IsForward():
		return 0.08
	case wantsForward && actual == PositionDefenseman:
		return 0.07
	default:
		return 0.0
	}
}

// MaxLineupPenalty is the cap applied to the summed penalty across all
// slots.
const MaxLineupPenalty = 0.40
