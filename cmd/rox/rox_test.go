package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const sampleOsuMania = `osu file format v14

[General]
Mode: 3

[Metadata]
Title:CLI Test

[Difficulty]
CircleSize:4

[TimingPoints]
0,500,4,1,0,100,1,0

[HitObjects]
64,192,1000,1,0,0:0:0:0:
`

func newTestApp() *cli.Command {
	return &cli.Command{
		Name: "rox",
		Commands: []*cli.Command{
			convertCommand(),
			infoCommand(),
			validateCommand(),
			versionCommand(),
		},
	}
}

func TestConvertCommandAutoDetect(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.osu")
	output := filepath.Join(dir, "chart.sm")

	require.NoError(t, os.WriteFile(input, []byte(sampleOsuMania), 0o644))

	app := newTestApp()
	require.NoError(t, app.Run(context.Background(), []string{"rox", "convert", input, output}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#TITLE:CLI Test")
}

func TestConvertCommandForcedFormats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.dat")
	output := filepath.Join(dir, "chart.out")

	require.NoError(t, os.WriteFile(input, []byte(sampleOsuMania), 0o644))

	app := newTestApp()
	err := app.Run(context.Background(), []string{
		"rox", "convert",
		"--input-format", "osu", "--output-format", "qua",
		input, output,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CLI Test")
}

func TestConvertCommandRejectsWrongArgCount(t *testing.T) {
	app := newTestApp()
	err := app.Run(context.Background(), []string{"rox", "convert", "onlyone"})
	require.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.osu")
	require.NoError(t, os.WriteFile(input, []byte(sampleOsuMania), 0o644))

	app := newTestApp()
	require.NoError(t, app.Run(context.Background(), []string{"rox", "info", "--format", "json", input}))
}

func TestValidateCommandValidChart(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.osu")
	require.NoError(t, os.WriteFile(input, []byte(sampleOsuMania), 0o644))

	app := newTestApp()
	require.NoError(t, app.Run(context.Background(), []string{"rox", "validate", input}))
}

func TestValidateCommandInvalidChart(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.osu")

	badOsu := `osu file format v14

[General]
Mode: 3

[Metadata]
Title:Bad Chart

[Difficulty]
CircleSize:4

[HitObjects]
64,192,1000,1,0,0:0:0:0:
`
	require.NoError(t, os.WriteFile(input, []byte(badOsu), 0o644))

	app := newTestApp()
	err := app.Run(context.Background(), []string{"rox", "validate", input})
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	app := newTestApp()
	require.NoError(t, app.Run(context.Background(), []string{"rox", "version"}))
}
