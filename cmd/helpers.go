package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"foundersleague.dev/sim/internal/config"
	"foundersleague.dev/sim/internal/service"
	"foundersleague.dev/sim/internal/store"
)

// findConfigPath walks up from cmd to the root looking for a --config
// flag, the same lookup the teacher's command tree used.
func findConfigPath(cmd *cobra.Command) string {
	if cmd == nil {
		return ""
	}
	if flag := cmd.Flags().Lookup("config"); flag != nil {
		return flag.Value.String()
	}
	return findConfigPath(cmd.Parent())
}

func loadConfigForCmd(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(findConfigPath(cmd))
}

// openService loads the on-disk world and wraps it in a service
// facade, the one entry point every league/roster/trade/lines command
// below goes through.
func openService(cmd *cobra.Command) (*service.Service, error) {
	cfg, err := loadConfigForCmd(cmd)
	if err != nil {
		return nil, fmt.Errorf("error: failed to load config: %w", err)
	}

	world, err := store.LoadWorld(cfg.Save.Dir)
	if err != nil {
		return nil, fmt.Errorf("error: failed to load save: %w", err)
	}
	if world.League == nil {
		return nil, fmt.Errorf("error: no save found at %s; run `leagued league reset` first", cfg.Save.Dir)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	return service.New(cfg.Save.Dir, world, logger), nil
}

// openServiceForReset loads whatever save exists (or none) without
// refusing on a missing file, since `league reset` is the one command
// that is valid to run against an empty save directory.
func openServiceForReset(cfg *config.Config) (*service.Service, error) {
	world, err := store.LoadWorld(cfg.Save.Dir)
	if err != nil {
		return nil, fmt.Errorf("error: failed to load save: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	return service.New(cfg.Save.Dir, world, logger), nil
}

// requireUserTeam enforces the "team owned by user" precondition
// spec.md §6 attaches to promote/demote/sign/extend/set-lines.
func requireUserTeam(svc *service.Service, ctx context.Context, teamName string) error {
	meta, err := svc.Meta(ctx)
	if err != nil {
		return err
	}
	if meta.UserTeam != teamName {
		return fmt.Errorf("error: %s is not your team (you control %s)", teamName, meta.UserTeam)
	}
	return nil
}
