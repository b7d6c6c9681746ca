package core

import "fmt"

// ErrorKind classifies a SimError by response policy, per the error
// handling taxonomy: invariant violations abort the operation, contract
// rejections are recoverable no-ops, persistence failures fall back to
// defaults, and legacy-migration notes are informational only.
type ErrorKind int

const (
	// KindInvariant is a fatal-to-the-operation integrity violation
	// (impossible standings delta, duplicate team in a day, save
	// version too new). No mutation persists.
	KindInvariant ErrorKind = iota
	// KindRejection is a recoverable contract/roster rejection (roster
	// full, no cap space, last healthy goalie, untouchable player,
	// injured player in trade, partner declines).
	KindRejection
	// KindPersistence is a recoverable I/O or parse failure; the
	// caller falls back to defaults for the affected file.
	KindPersistence
	// KindMigration marks a silent legacy-shape migration; never
	// returned as a failure, only used for logging.
	KindMigration
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "invariant_violation"
	case KindRejection:
		return "contract_rejection"
	case KindPersistence:
		return "persistence_failure"
	case KindMigration:
		return "legacy_migration"
	default:
		return "unknown"
	}
}

// SimError is the single error type returned across the core's
// component boundaries. Reason is a short machine-checkable token
// (e.g. "partner_player_untouchable"); Message is the human-readable
// diagnostic logged alongside it.
type SimError struct {
	Kind    ErrorKind
	Reason  string
	Message string
	Cause   error
}

func (e *SimError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Reason
}

func (e *SimError) Unwrap() error { return e.Cause }

func newSimError(kind ErrorKind, reason, format string, args ...any) *SimError {
	return &SimError{Kind: kind, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Invariant constructs a KindInvariant SimError.
func Invariant(reason, format string, args ...any) error {
	return newSimError(KindInvariant, reason, format, args...)
}

// Rejection constructs a KindRejection SimError.
func Rejection(reason, format string, args ...any) error {
	return newSimError(KindRejection, reason, format, args...)
}

// Persistence constructs a KindPersistence SimError, wrapping cause.
func Persistence(reason string, cause error) error {
	return &SimError{Kind: KindPersistence, Reason: reason, Message: cause.Error(), Cause: cause}
}

// IsKind reports whether err is a *SimError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	se, ok := err.(*SimError)
	return ok && se.Kind == kind
}

// ReasonOf extracts the Reason token from a *SimError, or "" if err is
// not one.
func ReasonOf(err error) string {
	if se, ok := err.(*SimError); ok {
		return se.Reason
	}
	return ""
}

// Common rejection reason tokens used at the service boundary, named
// so CLI and test code never hardcode the literal strings.
const (
	ReasonTeamNotFound           = "team_not_found"
	ReasonPlayerNotFound         = "player_not_found"
	ReasonRosterFull             = "roster_full"
	ReasonNoCapSpace             = "no_cap_space"
	ReasonInjuredInTrade         = "player_injured_in_trade"
	ReasonUntouchable            = "partner_player_untouchable"
	ReasonLastHealthyGoalie      = "last_healthy_goalie"
	ReasonPartnerRejects         = "partner_rejects_trade"
	ReasonSchedulingDuplicate    = "scheduling_duplicate"
	ReasonVersionMismatch        = "save_version_mismatch"
	ReasonInvariantGPProgression = "gp_progression_violation"
)
