package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/okabe/htmlbak/pkg/backup"
	"github.com/okabe/htmlbak/pkg/sets"
	"github.com/okabe/htmlbak/pkg/svn"
	"github.com/okabe/htmlbak/pkg/utils/fileutils"
)

type action int

const (
	actionBackup action = iota
	actionDelete
	actionCheck
)

func (a action) verb() string {
	switch a {
	case actionDelete:
		return "deleting backups in"
	case actionCheck:
		return "checking"
	default:
		return "backing up"
	}
}

// runAction resolves the selector, drives the executor over every folder in
// order and renders the batched report. An unknown set aborts before any
// folder is touched.
func runAction(ctx context.Context, cmd *cli.Command, act action) error {
	selector, err := selectorArg(cmd)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	base, err := fileutils.AbsPath(wd)
	if err != nil {
		return err
	}

	registry, err := sets.LoadRegistry(base)
	if err != nil {
		return err
	}

	folders, err := registry.Resolve(selector)
	if err != nil {
		return err
	}

	executor := backup.New(base, svn.NewClient())
	verbose := isVerbose(cmd)

	outcomes := make([]backup.Outcome, 0, len(folders))
	for _, folder := range folders {
		rel := sets.NormalizeRel(folder)
		if verbose {
			fmt.Printf("%s %s\n", act.verb(), rel)
		}

		var out backup.Outcome
		switch act {
		case actionDelete:
			out = executor.DeleteBackups(rel)
		case actionCheck:
			out = executor.Check(ctx, rel)
		default:
			out = executor.Backup(ctx, rel)
		}
		outcomes = append(outcomes, out)
	}

	failed := renderReport(act, outcomes)
	if failed > 0 && isStrict(cmd) {
		return fmt.Errorf("%d folder(s) failed", failed)
	}
	return nil
}

func selectorArg(cmd *cli.Command) (string, error) {
	args := cmd.Args().Slice()
	if len(args) > 1 {
		return "", fmt.Errorf("%s accepts at most one set argument", cmd.Name)
	}
	return cmd.Args().First(), nil
}

func isVerbose(cmd *cli.Command) bool {
	return boolFlag(cmd, "verbose")
}

func isStrict(cmd *cli.Command) bool {
	return boolFlag(cmd, "strict")
}

func boolFlag(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if cmd.Bool(name) {
		return true
	}
	root := cmd.Root()
	return root != nil && root.Bool(name)
}
