package osu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

func TestColumnToXRoundTrip(t *testing.T) {
	for _, keyCount := range []uint8{4, 5, 6, 7, 8, 9, 10} {
		for col := uint8(0); col < keyCount; col++ {
			x := ColumnToX(col, keyCount)
			decoded := HitObject{X: x}.Column(keyCount)
			assert.Equalf(t, col, decoded, "%dK column %d round-trip", keyCount, col)
		}
	}
}

func TestColumnToX7K(t *testing.T) {
	expected := []int{36, 109, 182, 256, 329, 402, 475}
	for col, want := range expected {
		assert.Equal(t, want, ColumnToX(uint8(col), 7))
	}
}

const sampleBeatmap = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 0
PreviewTime: 5000
Mode: 3

[Metadata]
Title:Test
Artist:Artist
Creator:Mapper
Version:Hard
Tags:one two

[Difficulty]
CircleSize:4
OverallDifficulty:8

[Events]
0,0,"bg.jpg",0,0

[TimingPoints]
0,333.333,4,1,0,100,1,0

[HitObjects]
64,192,1000,1,0,0:0:0:0:
192,192,1500,128,0,2500:0:0:0:0:
`

func TestDecodeBasic(t *testing.T) {
	chart, err := Decoder{}.Decode([]byte(sampleBeatmap))
	require.NoError(t, err)

	assert.Equal(t, uint8(4), chart.KeyCount)
	assert.Equal(t, "Test", chart.Title)
	assert.Equal(t, "Hard", chart.DifficultyName)
	require.Len(t, chart.Notes, 2)
	assert.Equal(t, rox.Tap, chart.Notes[0].Kind)
	assert.Equal(t, rox.Hold, chart.Notes[1].Kind)
	assert.Equal(t, int64(1_000_000), chart.Notes[1].DurationUS)
	require.NotNil(t, chart.BackgroundFile)
	assert.Equal(t, "bg.jpg", *chart.BackgroundFile)
	require.Len(t, chart.TimingPoints, 1)
	assert.InDelta(t, 180.0, chart.TimingPoints[0].BPM, 0.5)
}

func TestDecodeRejectsNonMania(t *testing.T) {
	data := strings.Replace(sampleBeatmap, "Mode: 3", "Mode: 1", 1)

	_, err := Decoder{}.Decode([]byte(data))
	require.Error(t, err)
}

func TestEncodeBasic(t *testing.T) {
	chart := rox.NewChart(7)
	chart.Title = "Test"
	chart.Artist = "Artist"
	chart.Creator = "Mapper"
	chart.DifficultyName = "Hard"
	chart.AddTimingPoint(rox.BPMPoint(0, 180.0))
	chart.AddNote(rox.TapNote(1_000_000, 0))
	chart.AddNote(rox.TapNote(1_500_000, 3))
	chart.AddNote(rox.HoldNote(2_000_000, 500_000, 6))

	encoded, err := Encoder{}.Encode(chart)
	require.NoError(t, err)

	output := string(encoded)
	assert.Contains(t, output, "osu file format v14")
	assert.Contains(t, output, "Mode: 3")
	assert.Contains(t, output, "CircleSize:7")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	chart := rox.NewChart(4)
	chart.Title = "Round Trip"
	chart.AddTimingPoint(rox.BPMPoint(0, 150.0))
	chart.AddNote(rox.TapNote(500_000, 1))
	chart.AddNote(rox.HoldNote(1_000_000, 250_000, 2))

	encoded, err := Encoder{}.Encode(chart)
	require.NoError(t, err)

	decoded, err := Decoder{}.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, chart.KeyCount, decoded.KeyCount)
	require.Len(t, decoded.Notes, 2)
	assert.Equal(t, chart.Notes[0].TimeUS, decoded.Notes[0].TimeUS)
	assert.Equal(t, chart.Notes[1].Column, decoded.Notes[1].Column)
}

func TestParseRejectsOversizedInput(t *testing.T) {
	data := make([]byte, maxFileSize+1)

	_, err := Parse(data)
	require.Error(t, err)
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{0xff, 0xfe, 0x00})
	require.Error(t, err)
}
