package fnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

const sampleFNF = `{
  "song": {
    "song": "Test Song",
    "bpm": 150,
    "speed": 1.2,
    "player1": "bf",
    "player2": "dad",
    "notes": [
      {
        "mustHitSection": true,
        "sectionNotes": [
          [1000, 1, 0],
          [1500, 5, 0],
          [2000, 2, 500]
        ]
      },
      {
        "mustHitSection": false,
        "changeBPM": true,
        "bpm": 180,
        "sectionNotes": [
          [3000, 0, 0],
          [3500, 4, 0]
        ]
      }
    ]
  }
}`

func TestDecodePlayerSideOnly(t *testing.T) {
	chart, err := Decoder{Side: SidePlayer}.Decode([]byte(sampleFNF))
	require.NoError(t, err)

	assert.Equal(t, uint8(4), chart.KeyCount)
	assert.False(t, chart.IsCoop)

	// Player notes: section1 lanes <4 with mustHit=true (lane1), section1
	// lane2 hold; section2 lanes >=4 with mustHit=false (lane4 -> base0).
	require.Len(t, chart.Notes, 3)

	var sawHold bool

	for _, n := range chart.Notes {
		if n.IsHold() {
			sawHold = true
			assert.Equal(t, uint8(2), n.Column)
		}
	}

	assert.True(t, sawHold)
}

func TestDecodeOpponentSideOnly(t *testing.T) {
	chart, err := Decoder{Side: SideOpponent}.Decode([]byte(sampleFNF))
	require.NoError(t, err)

	assert.Equal(t, uint8(4), chart.KeyCount)
	require.Len(t, chart.Notes, 2) // section1 lane5->base1, section2 lane0
}

func TestDecodeBothSidesIsCoop(t *testing.T) {
	chart, err := Decoder{Side: SideBoth}.Decode([]byte(sampleFNF))
	require.NoError(t, err)

	assert.Equal(t, uint8(8), chart.KeyCount)
	assert.True(t, chart.IsCoop)
	require.Len(t, chart.Notes, 5)
}

func TestDecodeBPMChangeAndSpeed(t *testing.T) {
	chart, err := Decoder{Side: SidePlayer}.Decode([]byte(sampleFNF))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(chart.TimingPoints), 2)

	var sawBase, sawChange, sawSV bool

	for _, tp := range chart.TimingPoints {
		if tp.IsInherited {
			sawSV = true
			assert.InDelta(t, 1.2, tp.ScrollSpeed, 0.01)

			continue
		}

		if tp.TimeUS == 0 {
			sawBase = true
			assert.InDelta(t, 150.0, tp.BPM, 0.01)
		}

		if tp.BPM == 180 {
			sawChange = true
		}
	}

	assert.True(t, sawBase)
	assert.True(t, sawChange)
	assert.True(t, sawSV)
}

func TestEncodeDecodeRoundTripBoth(t *testing.T) {
	chart := rox.NewChart(8)
	chart.Title = "Round Trip"
	chart.Creator = "dad"
	chart.IsCoop = true
	chart.AddTimingPoint(rox.BPMPoint(0, 150.0))
	chart.AddNote(rox.TapNote(0, 1))
	chart.AddNote(rox.TapNote(500_000, 6))
	chart.AddNote(rox.HoldNote(1_000_000, 250_000, 3))

	encoded, err := Encoder{}.Encode(chart)
	require.NoError(t, err)

	decoded, err := Decoder{Side: SideBoth}.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, uint8(8), decoded.KeyCount)
	require.Len(t, decoded.Notes, 3)
}

func TestParseRejectsOversizedInput(t *testing.T) {
	data := make([]byte, maxFileSize+1)

	_, err := Parse(data)
	require.Error(t, err)
}
