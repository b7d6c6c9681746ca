// Package service is the single-writer facade over internal/league:
// one process-wide mutex guards every mutation, a singleflight.Group
// collapses concurrent identical read projections, and every method
// takes a context.Context so a caller's deadline is observed at entry
// even though nothing inside actually suspends.
package service

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/engine"
	"foundersleague.dev/sim/internal/league"
	"foundersleague.dev/sim/internal/store"
)

// Service wraps a live league.State with the concurrency and
// persistence guarantees spec.md §5 requires.
type Service struct {
	mu  sync.Mutex
	sf  singleflight.Group
	dir string
	log *log.Logger

	state *league.State
	seed  int64
}

// New constructs a Service over an already-loaded world. saveDir is
// where every subsequent mutation autosaves to. world.League may be
// nil (no save exists yet); every method but Reset requires a caller
// to have checked for that first.
func New(saveDir string, world store.World, logger *log.Logger) *Service {
	return &Service{dir: saveDir, state: world.League, seed: world.Seed, log: logger}
}

// withLock runs fn holding the facade's exclusive mutex, honoring
// ctx's deadline at entry — advance/offseason hold the lock for their
// entire duration, by design: partial application would break
// TeamRecord integrity.
func (s *Service) withLock(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// autosave persists league_state.json without a backup copy, matching
// the "frequent autosaves ... skip the backup step" rule.
func (s *Service) autosave() error {
	return store.SaveLeagueState(s.dir, s.state, s.seed, false)
}

// Meta reports season/day/playoff status and the team list.
func (s *Service) Meta(ctx context.Context) (league.Meta, error) {
	v, err, _ := s.sf.Do("meta", func() (any, error) {
		var m league.Meta
		err := s.withLock(ctx, func() error {
			m = s.state.Meta()
			return nil
		})
		return m, err
	})
	if err != nil {
		return league.Meta{}, err
	}
	return v.(league.Meta), nil
}

// Standings reports one standings table, collapsing concurrent
// identical calls against an unchanged day through singleflight
// before falling through to the lock.
func (s *Service) Standings(ctx context.Context, mode league.StandingsMode, value string) ([]league.StandingsRow, error) {
	key := string(mode) + "|" + value + "|" + dayKey(s.state)
	v, err, _ := s.sf.Do(key, func() (any, error) {
		var rows []league.StandingsRow
		err := s.withLock(ctx, func() error {
			rows = s.state.Standings(mode, value)
			return nil
		})
		return rows, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]league.StandingsRow), nil
}

func dayKey(s *league.State) string {
	if s == nil {
		return "nil"
	}
	if s.Playoffs != nil {
		return "playoffs-" + itoa(s.Playoffs.RevealedDays)
	}
	return itoa(s.DayIndex)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// AdvanceResult reports what kind of day the advance operation ran.
type AdvanceResult struct {
	GameResults   []engine.Result
	PlayoffDay    []core.GameResult
	SeasonSummary *league.SeasonSummary
}

// Advance runs exactly one unit of simulation: a regular-season game
// day, a playoff reveal day, or (once the bracket is exhausted) the
// full offseason pipeline. Every branch autosaves on success; a
// failed regular-season advance (the integrity check tripped) is not
// persisted, matching the "either completes fully ... or fails before
// any mutation" guarantee.
func (s *Service) Advance(ctx context.Context) (AdvanceResult, error) {
	var result AdvanceResult
	err := s.withLock(ctx, func() error {
		switch {
		case s.state.InRegularSeason():
			results, err := s.state.AdvanceDay()
			if err != nil {
				return err
			}
			if s.state.InRegularSeason() {
				result.GameResults = results
				return s.autosave()
			}
			s.state.BuildAndSimulatePlayoffs()
			result.GameResults = results
			return s.autosave()
		case s.state.Playoffs != nil && !s.state.PlayoffsComplete():
			day := s.state.RevealNextDay()
			result.PlayoffDay = day
			return s.autosave()
		default:
			summary := s.state.RunOffseason()
			if err := store.AppendSeasonSummary(s.dir, summary); err != nil {
				return err
			}
			if err := store.AppendHallOfFame(s.dir, summary.HallOfFame); err != nil {
				return err
			}
			if err := store.SaveCareerHistory(s.dir, s.state.Players, summary.Retired); err != nil {
				return err
			}
			result.SeasonSummary = &summary
			return store.SaveLeagueState(s.dir, s.state, s.seed, true)
		}
	})
	return result, err
}

// Reset wipes every persisted file and generates a fresh, fully
// rostered league at season 1 from specs, replacing the in-memory
// state in place.
func (s *Service) Reset(ctx context.Context, specs []league.TeamSpec, cfg league.Config, seed int64) error {
	return s.withLock(ctx, func() error {
		if err := store.Reset(s.dir); err != nil {
			return err
		}
		s.state = league.NewLeague(specs, cfg, seed)
		s.seed = seed
		return s.autosave()
	})
}

// Promote moves a player from team's minor roster to its active
// roster; callers are responsible for enforcing the "team owned by
// user" precondition before calling this for a human-facing request.
func (s *Service) Promote(ctx context.Context, teamName, playerID string) error {
	return s.withLock(ctx, func() error {
		if err := s.state.Promote(teamName, playerID); err != nil {
			return err
		}
		return s.autosave()
	})
}

// Demote moves a player from team's active roster to its minor roster.
func (s *Service) Demote(ctx context.Context, teamName, playerID string) error {
	return s.withLock(ctx, func() error {
		if err := s.state.Demote(teamName, playerID); err != nil {
			return err
		}
		return s.autosave()
	})
}

// Sign signs a free agent to teamName.
func (s *Service) Sign(ctx context.Context, teamName, playerID string, years int, capHit float64) error {
	return s.withLock(ctx, func() error {
		if err := s.state.Sign(teamName, playerID, years, capHit); err != nil {
			return err
		}
		return s.autosave()
	})
}

// Extend re-signs a rostered player to a new term.
func (s *Service) Extend(ctx context.Context, teamName, playerID string, years int, capHit float64) error {
	return s.withLock(ctx, func() error {
		if err := s.state.Extend(teamName, playerID, years, capHit); err != nil {
			return err
		}
		return s.autosave()
	})
}

// ProposeTrade commits a 1-for-1 trade iff both sides' acceptance rule
// passes.
func (s *Service) ProposeTrade(ctx context.Context, fromTeam, giveID, toTeam, getID string) error {
	return s.withLock(ctx, func() error {
		if err := s.state.ProposeTrade(fromTeam, giveID, toTeam, getID); err != nil {
			return err
		}
		return s.autosave()
	})
}

// SetLines installs a manual line assignment for teamName, returning
// whatever lineup_position_penalty it incurs.
func (s *Service) SetLines(ctx context.Context, teamName string, assignments map[core.Slot]string) (float64, error) {
	var penalty float64
	err := s.withLock(ctx, func() error {
		var err error
		penalty, err = s.state.SetUserLines(teamName, assignments)
		if err != nil {
			return err
		}
		return s.autosave()
	})
	return penalty, err
}

// AutoLines regenerates teamName's lineup with the same AI every CPU
// team uses.
func (s *Service) AutoLines(ctx context.Context, teamName string) error {
	return s.withLock(ctx, func() error {
		if err := s.state.AutoLines(teamName); err != nil {
			return err
		}
		return s.autosave()
	})
}

// HallOfFame lists every inducted player on disk.
func (s *Service) HallOfFame(ctx context.Context) ([]core.HallOfFameEntry, error) {
	var entries []core.HallOfFameEntry
	err := s.withLock(ctx, func() error {
		var err error
		entries, err = store.LoadHallOfFame(s.dir)
		return err
	})
	return entries, err
}
