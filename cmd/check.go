package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "check for newer index.html revisions on the remote",
		ArgsUsage: "[set]",
		Action:    checkAction,
	}
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	return runAction(ctx, cmd, actionCheck)
}
