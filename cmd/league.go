package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"foundersleague.dev/sim/internal/echo"
	"foundersleague.dev/sim/internal/league"
)

// defaultDivisions is the operator-CLI's built-in 24-team structure
// (4 divisions of 6, 2 conferences), used by `league reset` unless
// --teams names a different roll call.
var defaultDivisions = []struct {
	Division   string
	Conference string
	Teams      []string
}{
	{"Atlantic", "Eastern", []string{"Harbor City Mariners", "Granite Forge", "Lakeside Union", "Northgate Rangers", "Redline Athletic", "Summit Crows"}},
	{"Metro", "Eastern", []string{"Ironclad FC", "Bayview Sentinels", "Crescent Mechanics", "Foundry Row", "Highline Voyagers", "Vantage Point"}},
	{"Central", "Western", []string{"Prairie Wolves", "Copper Basin", "Frontier Marshals", "Millstone Drillers", "Silverline Accord", "Timberland Co."}},
	{"Pacific", "Western", []string{"Tidewater Current", "Cascade Aces", "Driftwood Union", "Meridian Sharks", "Sundown Pioneers", "Westgate Pilots"}},
}

// LeagueCmd creates the league command group: the operations spec.md
// §6 attaches to no single team (meta, standings, advance, reset).
func LeagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "League-wide operations",
		Long:  "Inspect league status and standings, advance the simulation, and start a new league.",
	}
	cmd.AddCommand(LeagueMetaCmd())
	cmd.AddCommand(LeagueStandingsCmd())
	cmd.AddCommand(LeagueAdvanceCmd())
	cmd.AddCommand(LeagueResetCmd())
	cmd.AddCommand(LeagueTeamsCmd())
	return cmd
}

// LeagueMetaCmd creates the meta command
func LeagueMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meta",
		Short: "Show season, day, and playoff status",
		RunE:  leagueMeta,
	}
}

func leagueMeta(cmd *cobra.Command, args []string) error {
	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	meta, err := svc.Meta(cmd.Context())
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}

	echo.Header("League Status")
	echo.Infof("Season: %d", meta.Season)
	echo.Infof("Day: %d / %d", meta.DayIndex, meta.TotalDays)
	if meta.InPlayoffs {
		echo.Info("Phase: Playoffs")
	} else if meta.DayIndex < meta.TotalDays {
		echo.Info("Phase: Regular season")
	} else {
		echo.Info("Phase: Offseason pending")
	}
	echo.Infof("Your team: %s", meta.UserTeam)
	echo.Infof("Teams: %s", strings.Join(meta.TeamNames, ", "))
	return nil
}

// LeagueStandingsCmd creates the standings command
func LeagueStandingsCmd() *cobra.Command {
	var mode string
	var value string
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Show a standings table",
		Long:  "Show league, conference, division, or wildcard standings. Use --mode and --value (conference/division name) to scope the table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return leagueStandings(cmd, mode, value)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "league", "Standings mode: league, conference, division, wildcard")
	cmd.Flags().StringVar(&value, "value", "", "Conference or division name (required for conference/division/wildcard modes)")
	return cmd
}

func leagueStandings(cmd *cobra.Command, mode, value string) error {
	svc, err := openService(cmd)
	if err != nil {
		return err
	}

	rows, err := svc.Standings(cmd.Context(), league.StandingsMode(mode), value)
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}

	echo.Header("Standings")
	echo.Infof("%-28s %3s %3s %3s %4s %6s %5s %5s %5s %6s", "Team", "GP", "W", "L", "OTL", "PTS", "GF", "GA", "DIFF", "CLINCH")
	for _, r := range rows {
		echo.Infof("%-28s %3d %3d %3d %4d %6d %5d %5d %5d %6s", r.TeamName, r.GP, r.W, r.L, r.OTL, r.Points, r.GF, r.GA, r.GD, r.Clinch)
	}
	return nil
}

// LeagueAdvanceCmd creates the advance command
func LeagueAdvanceCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance the simulation by one or more units",
		Long:  "Each unit is one regular-season game day, one playoff reveal day, or (once the bracket is exhausted) the full offseason pipeline.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return leagueAdvance(cmd, days)
		},
	}
	cmd.Flags().IntVar(&days, "days", 1, "Number of units to advance")
	return cmd
}

func leagueAdvance(cmd *cobra.Command, days int) error {
	svc, err := openService(cmd)
	if err != nil {
		return err
	}

	for i := 0; i < days; i++ {
		result, err := svc.Advance(cmd.Context())
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
		switch {
		case result.SeasonSummary != nil:
			echo.Successf("✓ Offseason complete — season %d begins. Cup champion: %s, MVP: %s", result.SeasonSummary.Season, result.SeasonSummary.CupChampion, result.SeasonSummary.MVP)
		case result.PlayoffDay != nil:
			echo.Successf("✓ Revealed %d playoff game(s)", len(result.PlayoffDay))
			for _, g := range result.PlayoffDay {
				echo.Infof("  %s %d @ %s %d", g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore)
			}
		default:
			echo.Successf("✓ Simulated %d game(s)", len(result.GameResults))
		}
	}
	return nil
}

// LeagueResetCmd creates the reset command
func LeagueResetCmd() *cobra.Command {
	var userTeam string
	var seed int64
	var calendarDensity float64
	var gamesPerMatchup int
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start a brand-new league, discarding any existing save",
		RunE: func(cmd *cobra.Command, args []string) error {
			return leagueReset(cmd, userTeam, seed, calendarDensity, gamesPerMatchup)
		},
	}
	cmd.Flags().StringVar(&userTeam, "user-team", "", "Team you control as GM/coach (required)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed for reproducible generation")
	cmd.Flags().Float64Var(&calendarDensity, "calendar-density", 0.60, "Target fraction of teams playing on each calendar day (0.35-1.0)")
	cmd.Flags().IntVar(&gamesPerMatchup, "games-per-matchup", 3, "Games scheduled per opposing pair")
	cmd.MarkFlagRequired("user-team")
	return cmd
}

func leagueReset(cmd *cobra.Command, userTeam string, seed int64, calendarDensity float64, gamesPerMatchup int) error {
	cfg, err := loadConfigForCmd(cmd)
	if err != nil {
		return fmt.Errorf("error: failed to load config: %w", err)
	}

	var specs []league.TeamSpec
	found := false
	for _, div := range defaultDivisions {
		for _, name := range div.Teams {
			specs = append(specs, league.TeamSpec{Name: name, Division: div.Division, Conference: div.Conference})
			if name == userTeam {
				found = true
			}
		}
	}
	if !found {
		return fmt.Errorf("error: %q is not one of the built-in franchise names; run `leagued league teams` to list them", userTeam)
	}

	lcfg := league.Config{CalendarDensity: calendarDensity, GamesPerMatchup: gamesPerMatchup, UserTeam: userTeam}

	svc, err := openServiceForReset(cfg)
	if err != nil {
		return err
	}
	if err := svc.Reset(cmd.Context(), specs, lcfg, seed); err != nil {
		return fmt.Errorf("error: %w", err)
	}

	echo.Header("New League")
	echo.Successf("✓ Generated %d teams (seed %d)", len(specs), seed)
	echo.Infof("You control: %s", userTeam)
	return nil
}

// LeagueTeamsCmd lists the built-in franchise roll call, so a caller
// knows what name to pass to --user-team.
func LeagueTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List the built-in franchise names",
		RunE: func(cmd *cobra.Command, args []string) error {
			echo.Header("Franchises")
			for _, div := range defaultDivisions {
				echo.Infof("%s (%s):", div.Division, div.Conference)
				for _, name := range div.Teams {
					echo.Infof("  %s", name)
				}
			}
			return nil
		},
	}
}
