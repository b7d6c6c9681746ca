package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"foundersleague.dev/sim/internal/echo"
	"foundersleague.dev/sim/internal/service"
)

// RosterCmd creates the roster command group: promote/demote between
// a team's active and minor roster, and sign/extend contracts.
func RosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster and contract operations",
		Long:  "Promote or demote players between a team's active and minor rosters, and sign or extend contracts.",
	}
	cmd.AddCommand(RosterPromoteCmd())
	cmd.AddCommand(RosterDemoteCmd())
	cmd.AddCommand(RosterSignCmd())
	cmd.AddCommand(RosterExtendCmd())
	return cmd
}

// RosterPromoteCmd creates the promote command
func RosterPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <team> <player-id>",
		Short: "Move a player from the minor roster to the active roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserTeamAction(cmd, args[0], func(svc *service.Service) error {
				return svc.Promote(cmd.Context(), args[0], args[1])
			})
		},
	}
}

// RosterDemoteCmd creates the demote command
func RosterDemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demote <team> <player-id>",
		Short: "Move a player from the active roster to the minor roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserTeamAction(cmd, args[0], func(svc *service.Service) error {
				return svc.Demote(cmd.Context(), args[0], args[1])
			})
		},
	}
}

// RosterSignCmd creates the sign command
func RosterSignCmd() *cobra.Command {
	var years int
	var capHit float64
	cmd := &cobra.Command{
		Use:   "sign <team> <player-id>",
		Short: "Sign a free agent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserTeamAction(cmd, args[0], func(svc *service.Service) error {
				return svc.Sign(cmd.Context(), args[0], args[1], years, capHit)
			})
		},
	}
	cmd.Flags().IntVar(&years, "years", 2, "Contract length in years")
	cmd.Flags().Float64Var(&capHit, "cap-hit", 1.0, "Annual cap hit")
	return cmd
}

// RosterExtendCmd creates the extend command
func RosterExtendCmd() *cobra.Command {
	var years int
	var capHit float64
	cmd := &cobra.Command{
		Use:   "extend <team> <player-id>",
		Short: "Re-sign a rostered player to a new term",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserTeamAction(cmd, args[0], func(svc *service.Service) error {
				return svc.Extend(cmd.Context(), args[0], args[1], years, capHit)
			})
		},
	}
	cmd.Flags().IntVar(&years, "years", 2, "Contract length in years")
	cmd.Flags().Float64Var(&capHit, "cap-hit", 1.0, "Annual cap hit")
	return cmd
}

func withUserTeamAction(cmd *cobra.Command, teamName string, action func(*service.Service) error) error {
	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	if err := requireUserTeam(svc, cmd.Context(), teamName); err != nil {
		return err
	}
	if err := action(svc); err != nil {
		return fmt.Errorf("error: %w", err)
	}
	echo.Success("✓ Done")
	return nil
}
