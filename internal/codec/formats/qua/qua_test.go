package qua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

const sampleQua = `AudioFile: audio.mp3
SongPreviewTime: 5000
BackgroundFile: bg.jpg
MapId: 12345
MapSetId: 678
Mode: Keys4
Title: Test Song
Artist: Test Artist
Source: some album
Tags: fast, technical
Creator: Mapper
DifficultyName: Hard
TimingPoints:
  - StartTime: 0
    Bpm: 180
SliderVelocities:
  - StartTime: 1000
    Multiplier: 1.5
HitObjects:
  - StartTime: 1000
    Lane: 1
  - StartTime: 1500
    Lane: 2
    EndTime: 2500
`

func TestDecodeBasic(t *testing.T) {
	chart, err := Decoder{}.Decode([]byte(sampleQua))
	require.NoError(t, err)

	assert.Equal(t, uint8(4), chart.KeyCount)
	assert.Equal(t, "Test Song", chart.Title)
	assert.Equal(t, "Hard", chart.DifficultyName)
	require.NotNil(t, chart.ChartID)
	assert.Equal(t, uint64(12345), *chart.ChartID)
	require.NotNil(t, chart.Source)
	assert.Equal(t, "some album", *chart.Source)
	assert.Equal(t, []string{"fast", "technical"}, chart.Tags)

	require.Len(t, chart.TimingPoints, 2)
	assert.False(t, chart.TimingPoints[0].IsInherited)
	assert.InDelta(t, 180.0, chart.TimingPoints[0].BPM, 0.01)
	assert.True(t, chart.TimingPoints[1].IsInherited)
	assert.InDelta(t, 1.5, chart.TimingPoints[1].ScrollSpeed, 0.01)

	require.Len(t, chart.Notes, 2)
	assert.Equal(t, rox.Tap, chart.Notes[0].Kind)
	assert.Equal(t, uint8(0), chart.Notes[0].Column) // lane 1 -> column 0
	assert.Equal(t, rox.Hold, chart.Notes[1].Kind)
	assert.Equal(t, uint8(1), chart.Notes[1].Column) // lane 2 -> column 1
	assert.Equal(t, int64(1_000_000), chart.Notes[1].DurationUS)
}

func TestDecodeKeys7(t *testing.T) {
	data := `Mode: Keys7
Title: Seven
`
	chart, err := Decoder{}.Decode([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, uint8(7), chart.KeyCount)
}

func TestEncodeBasic(t *testing.T) {
	chart := rox.NewChart(4)
	chart.Title = "Encoded"
	chart.Artist = "Artist"
	chart.Creator = "Mapper"
	chart.AddTimingPoint(rox.BPMPoint(0, 174.0))
	chart.AddTimingPoint(rox.SVPoint(1_000_000, 2.0))
	chart.AddNote(rox.TapNote(0, 0))
	chart.AddNote(rox.HoldNote(500_000, 250_000, 3))

	encoded, err := Encoder{}.Encode(chart)
	require.NoError(t, err)

	output := string(encoded)
	assert.Contains(t, output, "Mode: Keys4")
	assert.Contains(t, output, "Title: Encoded")
}

func TestEncodeKeys7Mode(t *testing.T) {
	chart := rox.NewChart(7)
	encoded, err := Encoder{}.Encode(chart)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "Mode: Keys7")
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
	assert.Equal(t, chart.Notes[1].DurationUS, decoded.Notes[1].DurationUS)
}

func TestDecodeRejectsOversizedInput(t *testing.T) {
	data := make([]byte, maxFileSize+1)

	_, err := Decoder{}.Decode(data)
	require.Error(t, err)
}
