package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/auto"
)

var errConvertArgs = errors.New("expected exactly two arguments: input and output paths")

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a chart from one format to another",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input-format",
				Usage: "Force the input format instead of detecting it from the file extension/content: rox, jrox, yrox, osu, sm, qua, fnf",
			},
			&cli.StringFlag{
				Name:  "output-format",
				Usage: "Force the output format instead of detecting it from the file extension: rox, jrox, yrox, osu, sm, qua, fnf",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("%w: got %d", errConvertArgs, cmd.NArg())
			}

			inputPath := cmd.Args().Get(0)
			outputPath := cmd.Args().Get(1)

			chart, err := decodeInput(cmd, inputPath)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", inputPath, err)
			}

			data, err := encodeOutput(cmd, chart, outputPath)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", outputPath, err)
			}

			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}

			fmt.Fprintf(os.Stdout, "converted %s -> %s (%d notes)\n", inputPath, outputPath, chart.NoteCount())

			return nil
		},
	}
}

func decodeInput(cmd *cli.Command, path string) (*rox.Chart, error) {
	if formatName := cmd.String("input-format"); formatName != "" {
		format, err := parseInputFormat(formatName)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		return auto.DecodeWithFormat(data, format)
	}

	return auto.AutoDecodeFile(path)
}

func encodeOutput(cmd *cli.Command, chart *rox.Chart, path string) ([]byte, error) {
	if formatName := cmd.String("output-format"); formatName != "" {
		format, err := parseOutputFormat(formatName)
		if err != nil {
			return nil, err
		}

		return auto.EncodeWithFormat(chart, format)
	}

	format, err := auto.OutputFormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return auto.EncodeWithFormat(chart, format)
}
