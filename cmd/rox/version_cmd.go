package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Glubus/Rhythm-Open-Exchange/version"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version and build information",
		Action: func(_ context.Context, _ *cli.Command) error {
			fmt.Fprintf(os.Stdout, "%s %s (%s)\n", version.Name(), version.Version(), version.Commit())

			return nil
		},
	}
}
