package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/okabe/htmlbak/pkg/sets"
	"github.com/okabe/htmlbak/pkg/version"
)

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:        "htmlbak",
		Usage:       "back up index.html files tracked in an svn working copy",
		Version:     version.Version,
		ArgsUsage:   "[set]",
		Description: setsDescription(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print per-folder progress",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit non-zero when any folder fails",
			},
		},
		// Running with no subcommand backs up; a bare set name selects it.
		Action: backupAction,
		Commands: []*cli.Command{
			backupCommand(),
			deleteCommand(),
			checkCommand(),
			setsCommand(),
			versionCommand(),
		},
	}

	return app.Run(ctx, args)
}

// setsDescription lists the registered set names in the help output. Falls
// back to the built-in sets if the working directory's sets file is
// unreadable; help should never fail on a broken config.
func setsDescription() string {
	registry := sets.Default()
	if base, err := os.Getwd(); err == nil {
		if loaded, err := sets.LoadRegistry(base); err == nil {
			registry = loaded
		}
	}
	return "Available sets: " + strings.Join(registry.Names(), ", ")
}
