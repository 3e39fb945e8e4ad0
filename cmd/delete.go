package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete backup files in all sets or a named set",
		ArgsUsage: "[set]",
		Action:    deleteAction,
	}
}

func deleteAction(ctx context.Context, cmd *cli.Command) error {
	return runAction(ctx, cmd, actionDelete)
}
