package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"foundersleague.dev/sim/internal/echo"
)

// TradeCmd creates the trade command group.
func TradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade operations",
		Long:  "Propose a one-for-one player trade between two teams.",
	}
	cmd.AddCommand(TradeProposeCmd())
	return cmd
}

// TradeProposeCmd creates the propose command
func TradeProposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "propose <from-team> <give-player-id> <to-team> <get-player-id>",
		Short: "Propose a 1-for-1 trade",
		Long:  "Commits the swap iff both sides' acceptance rule passes; otherwise leaves the league unchanged and reports why.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(cmd)
			if err != nil {
				return err
			}
			if err := svc.ProposeTrade(cmd.Context(), args[0], args[1], args[2], args[3]); err != nil {
				return fmt.Errorf("error: %w", err)
			}
			echo.Success("✓ Trade accepted by both sides")
			return nil
		},
	}
}
