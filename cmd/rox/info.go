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

var errInfoArgs = errors.New("expected exactly one argument: file path")

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print a chart's metadata, note count, and duration",
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
				return fmt.Errorf("%w: got %d", errInfoArgs, cmd.NArg())
			}

			path := cmd.Args().First()

			chart, err := decodeInput(cmd, path)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", path, err)
			}

			return printData(os.Stdout, cmd.String("format"), &Data{
				Object: path,
				Meta:   chartToMap(chart),
			})
		},
	}
}

func chartToMap(chart *rox.Chart) map[string]any {
	meta := map[string]any{
		"title":       chart.Title,
		"artist":      chart.Artist,
		"creator":     chart.Creator,
		"difficulty":  chart.DifficultyName,
		"key_count":   chart.KeyCount,
		"is_coop":     chart.IsCoop,
		"note_count":  chart.NoteCount(),
		"duration_us": chart.DurationUS(),
		"bpm_count":   countBPMPoints(chart),
	}

	if hint := chart.FormatHint(); hint != "" {
		meta["format_hint"] = hint
	}

	if chart.ChartID != nil {
		meta["chart_id"] = *chart.ChartID
	}

	if chart.ChartsetID != nil {
		meta["chartset_id"] = *chart.ChartsetID
	}

	return meta
}

func countBPMPoints(chart *rox.Chart) int {
	n := 0

	for _, tp := range chart.TimingPoints {
		if !tp.IsInherited {
			n++
		}
	}

	return n
}
