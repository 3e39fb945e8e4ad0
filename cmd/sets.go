package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/okabe/htmlbak/pkg/sets"
)

func setsCommand() *cli.Command {
	return &cli.Command{
		Name:   "sets",
		Usage:  "list registered sets and their folders",
		Action: setsAction,
	}
}

func setsAction(_ context.Context, cmd *cli.Command) error {
	if len(cmd.Args().Slice()) > 0 {
		return fmt.Errorf("sets does not accept arguments")
	}

	base, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	registry, err := sets.LoadRegistry(base)
	if err != nil {
		return err
	}

	fmt.Println("Available sets:")
	for _, name := range registry.Names() {
		folders, _ := registry.Folders(name)
		fmt.Printf("  %s: %s\n", name, strings.Join(folders, ", "))
	}
	return nil
}
