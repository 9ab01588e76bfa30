package taiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

const sampleTaiko = `osu file format v14

[General]
AudioFilename: audio.mp3
Mode: 1

[Metadata]
Title:Drum Test
Creator:Mapper
Version:Oni

[Difficulty]
CircleSize:1

[TimingPoints]
0,333.333,4,1,0,100,1,0

[HitObjects]
256,192,1000,1,0,0:0:0:0:
256,192,1200,1,2,0:0:0:0:
256,192,1400,1,1,0:0:0:0:
256,192,1600,1,4,0:0:0:0:
256,192,1800,1,8,0:0:0:0:
`

func TestDecodeTaikoDefaultLayout(t *testing.T) {
	chart, err := Decoder{}.Decode([]byte(sampleTaiko))
	require.NoError(t, err)

	assert.Equal(t, uint8(4), chart.KeyCount)
	require.Len(t, chart.Notes, 6) // don, kat, don, big-don(x2), kat

	byTime := make(map[int64][]rox.Note)
	for _, n := range chart.Notes {
		byTime[n.TimeUS] = append(byTime[n.TimeUS], n)
	}

	assert.Equal(t, uint8(0), byTime[1_000_000][0].Column) // first don -> col 0
	assert.Equal(t, uint8(1), byTime[1_200_000][0].Column) // first kat -> col 1
	assert.Equal(t, uint8(3), byTime[1_400_000][0].Column) // second don -> col 3
	assert.Len(t, byTime[1_600_000], 2)                    // big don -> both don columns
	assert.Equal(t, uint8(2), byTime[1_800_000][0].Column) // clap kat -> col 2
}

func TestDecodeTaikoRejectsNonTaiko(t *testing.T) {
	data := []byte(`osu file format v14

[General]
Mode: 3

[Difficulty]
CircleSize:4
`)

	_, err := Decoder{}.Decode(data)
	require.Error(t, err)
}

func TestDecodeTaikoAlternateLayout(t *testing.T) {
	chart, err := Decoder{Layout: LayoutDKDK}.Decode([]byte(sampleTaiko))
	require.NoError(t, err)

	var firstDon, secondDon uint8

	seen := 0

	for _, n := range chart.Notes {
		if n.TimeUS == 1_000_000 {
			firstDon = n.Column
			seen++
		}

		if n.TimeUS == 1_400_000 {
			secondDon = n.Column
			seen++
		}
	}

	require.Equal(t, 2, seen)
	assert.Equal(t, uint8(0), firstDon)
	assert.Equal(t, uint8(2), secondDon)
}
