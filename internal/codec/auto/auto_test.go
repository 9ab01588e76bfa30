package auto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

func TestInputFormatFromExtension(t *testing.T) {
	f, err := InputFormatFromExtension("OSU")
	require.NoError(t, err)
	assert.Equal(t, InputOsu, f)

	f, err = InputFormatFromExtension("sm")
	require.NoError(t, err)
	assert.Equal(t, InputSM, f)

	_, err = InputFormatFromExtension("mp3")
	require.Error(t, err)
}

func TestOutputFormatFromExtension(t *testing.T) {
	f, err := OutputFormatFromExtension("qua")
	require.NoError(t, err)
	assert.Equal(t, OutputQua, f)

	_, err = OutputFormatFromExtension("mp3")
	require.Error(t, err)
}

func TestDetectOsuMode(t *testing.T) {
	assert.Equal(t, uint8(3), detectOsuMode([]byte("Mode: 3\n[Metadata]")))
	assert.Equal(t, uint8(1), detectOsuMode([]byte("Mode: 1\n[Metadata]")))
	assert.Equal(t, uint8(3), detectOsuMode(nil))
}

const sampleOsuMania = `osu file format v14

[General]
Mode: 3

[Metadata]
Title:Auto Test

[Difficulty]
CircleSize:4

[TimingPoints]
0,500,4,1,0,100,1,0

[HitObjects]
64,192,1000,1,0,0:0:0:0:
`

func TestDecodeWithFormatOsu(t *testing.T) {
	chart, err := DecodeWithFormat([]byte(sampleOsuMania), InputOsu)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), chart.KeyCount)
}

func TestFromBytesDetectsOsu(t *testing.T) {
	chart, err := FromBytes([]byte(sampleOsuMania))
	require.NoError(t, err)
	assert.Equal(t, uint8(4), chart.KeyCount)
	assert.Equal(t, "Auto Test", chart.Title)
}

func TestFromStringDetectsOsu(t *testing.T) {
	chart, err := FromString(sampleOsuMania)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), chart.KeyCount)
}

func TestAutoEncodeFileAndDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.osu")

	chart := rox.NewChart(4)
	chart.Title = "File Round Trip"
	chart.AddTimingPoint(rox.BPMPoint(0, 150.0))
	chart.AddNote(rox.TapNote(0, 0))

	require.NoError(t, AutoEncodeFile(chart, path))

	decoded, err := AutoDecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "File Round Trip", decoded.Title)
}

func TestAutoConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.osu")
	output := filepath.Join(dir, "output.sm")

	require.NoError(t, os.WriteFile(input, []byte(sampleOsuMania), 0o644))
	require.NoError(t, AutoConvertFile(input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#TITLE:")
}
