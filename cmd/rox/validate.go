package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var errValidateArgs = errors.New("expected exactly one argument: file path")

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Decode a chart and check its invariants",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input-format",
				Usage: "Force the input format instead of detecting it from the file extension/content: rox, jrox, yrox, osu, sm, qua, fnf",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errValidateArgs, cmd.NArg())
			}

			path := cmd.Args().First()

			chart, err := decodeInput(cmd, path)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", path, err)
			}

			meta := map[string]any{
				"note_count": chart.NoteCount(),
			}

			if err := chart.Validate(); err != nil {
				meta["valid"] = false
				meta["error"] = err.Error()

				if printErr := printData(os.Stdout, cmd.String("format"), &Data{Object: path, Meta: meta}); printErr != nil {
					return printErr
				}

				return fmt.Errorf("%s: %w", path, err)
			}

			meta["valid"] = true

			return printData(os.Stdout, cmd.String("format"), &Data{Object: path, Meta: meta})
		},
	}
}
