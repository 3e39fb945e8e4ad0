package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

func backupCommand() *cli.Command {
	return &cli.Command{
		Name:      "backup",
		Usage:     "back up index.html in all sets or a named set",
		ArgsUsage: "[set]",
		Action:    backupAction,
	}
}

func backupAction(ctx context.Context, cmd *cli.Command) error {
	return runAction(ctx, cmd, actionBackup)
}
