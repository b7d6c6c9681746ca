package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"foundersleague.dev/sim/internal/core"
	"foundersleague.dev/sim/internal/echo"
	"foundersleague.dev/sim/internal/service"
)

// LinesCmd creates the lines command group.
func LinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Line-assignment operations",
		Long:  "Set a manual lineup for your team, or hand it back to the default auto-assignment AI.",
	}
	cmd.AddCommand(LinesSetCmd())
	cmd.AddCommand(LinesAutoCmd())
	return cmd
}

// LinesSetCmd creates the set command
func LinesSetCmd() *cobra.Command {
	var slotFlags []string
	cmd := &cobra.Command{
		Use:   "set <team>",
		Short: "Install a manual line assignment",
		Long:  "Each --slot flag assigns one slot, e.g. --slot C1=<player-name>. A mismatched slot-for-position assignment incurs lineup_position_penalty on the team's next simulated game.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return linesSet(cmd, args[0], slotFlags)
		},
	}
	cmd.Flags().StringArrayVar(&slotFlags, "slot", nil, "slot=player-name, repeatable")
	return cmd
}

func linesSet(cmd *cobra.Command, teamName string, slotFlags []string) error {
	assignments := make(map[core.Slot]string, len(slotFlags))
	for _, raw := range slotFlags {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("error: --slot must be slot=player-name, got %q", raw)
		}
		assignments[core.Slot(parts[0])] = parts[1]
	}

	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	if err := requireUserTeam(svc, cmd.Context(), teamName); err != nil {
		return err
	}

	penalty, err := svc.SetLines(cmd.Context(), teamName, assignments)
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}

	echo.Successf("✓ Lines set (lineup_position_penalty: %.3f applied to next game)", penalty)
	return nil
}

// LinesAutoCmd creates the auto command
func LinesAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto <team>",
		Short: "Regenerate the default lineup via the same AI CPU teams use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserTeamAction(cmd, args[0], func(svc *service.Service) error {
				return svc.AutoLines(cmd.Context(), args[0])
			})
		},
	}
}
