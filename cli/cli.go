// Package main wires the operator CLI: one command group per
// concern, mirroring the teacher's ETL/DB/Server grouping.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foundersleague.dev/sim/cmd"
	"foundersleague.dev/sim/internal/echo"
)

// RootCmd is the root command for the league CLI.
var RootCmd = &cobra.Command{
	Use:   "leagued",
	Short: "Founders League operator toolkit",
	Long: echo.HeaderStyle().Render("Founders League") + "\n\n" +
		"An operator CLI for running a season-long professional hockey league simulation:\n" +
		"advance the schedule, manage rosters and trades, set lines, and review history.",
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "path to a config file (default: search $HOME/.foundersleague, /etc/foundersleague, ./)")
	RootCmd.AddCommand(cmd.LeagueCmd())
	RootCmd.AddCommand(cmd.RosterCmd())
	RootCmd.AddCommand(cmd.TradeCmd())
	RootCmd.AddCommand(cmd.LinesCmd())
	RootCmd.AddCommand(cmd.HallOfFameCmd())
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
