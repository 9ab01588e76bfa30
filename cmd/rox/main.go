package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Glubus/Rhythm-Open-Exchange/version"
)

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:    version.Name(),
		Usage:   "Convert VSRG charts between osu!, StepMania, Quaver, FNF, and ROX",
		Version: version.Version() + " " + version.Commit(),
		Commands: []*cli.Command{
			convertCommand(),
			infoCommand(),
			validateCommand(),
			versionCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
