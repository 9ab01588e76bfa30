package jrox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	chart := rox.NewChart(4)
	chart.Title = "Jrox Test"
	chart.AddTimingPoint(rox.BPMPoint(0, 150.0))
	chart.AddNote(rox.TapNote(0, 0))
	chart.AddNote(rox.HoldNote(500_000, 250_000, 1))

	encoded, err := Encoder{}.Encode(chart)
	require.NoError(t, err)

	decoded, err := Decoder{}.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, chart.KeyCount, decoded.KeyCount)
	assert.Equal(t, chart.Title, decoded.Title)
	require.Len(t, decoded.Notes, 2)
	assert.Equal(t, chart.Notes[1].DurationUS, decoded.Notes[1].DurationUS)
	assert.Equal(t, "jrox", decoded.FormatHint())
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decoder{}.Decode([]byte("{not json"))
	require.Error(t, err)
}

func TestDecodeRejectsOversizedInput(t *testing.T) {
	data := make([]byte, maxFileSize+1)
	_, err := Decoder{}.Decode(data)
	require.Error(t, err)
}
