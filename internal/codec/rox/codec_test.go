package roxbin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

func sampleChart() *rox.Chart {
	c := rox.NewChart(4)
	c.Title = "Test Song"
	c.TimingPoints = []rox.TimingPoint{
		rox.BPMPoint(0, 180.0),
		rox.SVPoint(60_000_000, 1.5),
	}
	c.Notes = []rox.Note{
		rox.TapNote(1_000_000, 0),
		rox.TapNote(1_500_000, 1),
		rox.HoldNote(2_000_000, 1_000_000, 2),
	}

	return c
}

func TestBinaryRoundTrip(t *testing.T) {
	c := sampleChart()

	encoded, err := Codec{}.Encode(c)
	require.NoError(t, err)
	require.Len(t, encoded, len(encoded))
	assert.Equal(t, []byte{0x52, 0x4F, 0x58, 0x00}, encoded[:4])

	decoded, err := Codec{}.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, c.Version, decoded.Version)
	assert.Equal(t, c.Title, decoded.Title)
	assert.Equal(t, c.KeyCount, decoded.KeyCount)
	assert.Equal(t, c.TimingPoints, decoded.TimingPoints)
	assert.Equal(t, c.Notes, decoded.Notes)
}

func TestDecodeRejectsMissingMagic(t *testing.T) {
	_, err := Codec{}.Decode([]byte{0, 1, 2, 3, 4})
	require.Error(t, err)
}

func TestDecodeRejectsTruncated(t *testing.T) {
	_, err := Codec{}.Decode([]byte{0x52, 0x4F})
	require.Error(t, err)
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	c := sampleChart()
	c.Version = 99

	payload := serializeChart(c, deltaEncodeNotes(c.Notes))
	compressed, err := defaultCompressor.Compress(payload)
	require.NoError(t, err)

	data := append(append([]byte{}, magic[:]...), compressed...)

	_, err = Codec{}.Decode(data)
	require.Error(t, err)
}

func TestEncodeRejectsInvalidChart(t *testing.T) {
	c := rox.NewChart(4)
	c.Notes = []rox.Note{rox.TapNote(0, 4)} // column out of range

	_, err := Codec{}.Encode(c)
	require.Error(t, err)
}

func TestDeltaEncodeIdempotentRoundTrip(t *testing.T) {
	notes := []rox.Note{
		rox.TapNote(100, 0),
		rox.TapNote(250, 1),
		rox.TapNote(400, 2),
		rox.TapNote(1000, 3),
	}

	encoded := deltaEncodeNotes(notes)
	deltaDecodeNotes(encoded)

	assert.Equal(t, notes, encoded)
}
