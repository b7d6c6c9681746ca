package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"foundersleague.dev/sim/internal/echo"
)

// HallOfFameCmd creates the hall-of-fame command group.
func HallOfFameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hall-of-fame",
		Short: "Hall of fame operations",
		Long:  "List every player inducted into the hall of fame across past offseasons.",
	}
	cmd.AddCommand(HallOfFameListCmd())
	return cmd
}

// HallOfFameListCmd creates the list command
func HallOfFameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inductees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(cmd)
			if err != nil {
				return err
			}
			entries, err := svc.HallOfFame(cmd.Context())
			if err != nil {
				return fmt.Errorf("error: %w", err)
			}
			if len(entries) == 0 {
				echo.Info("No inductees yet.")
				return nil
			}
			echo.Header("Hall of Fame")
			for _, e := range entries {
				echo.Infof("%-24s %-20s season %d (%s)", e.PlayerName, e.TeamName, e.SeasonRetired, e.Reason)
			}
			return nil
		},
	}
}
