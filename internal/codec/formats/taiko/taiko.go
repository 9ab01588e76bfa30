// Package taiko implements osu!taiko (.osu, Mode: 1) decoding, folding the
// two-input drum layout into a 4-column mania chart. There is no encoder:
// taiko's don/kat vocabulary has no faithful inverse from an arbitrary
// 4K chart.
package taiko

import (
	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/osu"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// Taiko hitsound bitflags, per the osu! standard sample set.
const (
	hitNormal  uint8 = 1 // Don (center)
	hitWhistle uint8 = 2 // Kat (rim)
	hitFinish  uint8 = 4 // big note, hit with both hands
	hitClap    uint8 = 8 // Kat (rim)
)

// spinnerBit marks a spinner hit object; spinners carry no drum semantics
// and are skipped entirely.
const spinnerBit uint8 = 1 << 3

// ColumnLayout selects which pair of columns Dons and Kats alternate across
// in the emitted 4K chart.
type ColumnLayout int

const (
	// LayoutDKKD alternates Dons across {0, 3} and Kats across {1, 2}.
	LayoutDKKD ColumnLayout = iota
	// LayoutDKDK alternates Dons across {0, 2} and Kats across {1, 3}.
	LayoutDKDK
	// LayoutKDDK alternates Kats across {0, 3} and Dons across {1, 2}.
	LayoutKDDK
)

// DefaultColumnLayout is used when a Decoder is constructed with the zero
// value.
const DefaultColumnLayout = LayoutDKKD

func (l ColumnLayout) donColumns() [2]uint8 {
	switch l {
	case LayoutDKDK:
		return [2]uint8{0, 2}
	case LayoutKDDK:
		return [2]uint8{1, 2}
	case LayoutDKKD:
		fallthrough
	default:
		return [2]uint8{0, 3}
	}
}

func (l ColumnLayout) katColumns() [2]uint8 {
	switch l {
	case LayoutDKDK:
		return [2]uint8{1, 3}
	case LayoutKDDK:
		return [2]uint8{0, 3}
	case LayoutDKKD:
		fallthrough
	default:
		return [2]uint8{1, 2}
	}
}

// Decoder converts osu!taiko (.osu, Mode: 1) beatmaps into 4K Charts.
type Decoder struct {
	// Layout picks the column alternation. The zero value uses
	// DefaultColumnLayout (DKKD).
	Layout ColumnLayout
}

// Decode parses the beatmap, rejects anything not in taiko mode, and maps
// hit objects onto a 4-column layout.
func (d Decoder) Decode(data []byte) (*rox.Chart, error) {
	beatmap, err := osu.Parse(data)
	if err != nil {
		return nil, fault.InvalidFormatf("taiko: %s", err)
	}

	if beatmap.General.Mode != 1 {
		return nil, fault.InvalidFormatf("not a taiko beatmap (mode=%d, expected 1)", beatmap.General.Mode)
	}

	layout := d.Layout

	chart := osu.FromBeatmap(beatmap)
	chart.KeyCount = 4
	chart.ClearNotes()

	donCols := layout.donColumns()
	katCols := layout.katColumns()

	var donIdx, katIdx int

	for _, ho := range beatmap.HitObjects {
		if ho.ObjectType&spinnerBit != 0 {
			continue
		}

		timeUS := int64(ho.TimeMS) * 1000
		isKat := ho.HitSound&(hitWhistle|hitClap) != 0
		isBig := ho.HitSound&hitFinish != 0

		if isBig {
			var columns [2]uint8
			if isKat {
				columns = katCols
			} else {
				columns = donCols
			}

			chart.AddNote(rox.TapNote(timeUS, columns[0]))
			chart.AddNote(rox.TapNote(timeUS, columns[1]))

			continue
		}

		var column uint8
		if isKat {
			column = katCols[katIdx%2]
			katIdx++
		} else {
			column = donCols[donIdx%2]
			donIdx++
		}

		chart.AddNote(rox.TapNote(timeUS, column))
	}

	chart.SortNotes()
	chart.SetFormatHint("taiko")

	return chart, nil
}
