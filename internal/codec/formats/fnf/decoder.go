package fnf

import (
	"github.com/Glubus/Rhythm-Open-Exchange"
)

// Decoder converts FNF .json charts into Charts, extracting one Side.
type Decoder struct {
	Side Side
}

// Decode parses data and converts the selected side.
func (d Decoder) Decode(data []byte) (*rox.Chart, error) {
	song, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return FromSong(song, d.Side), nil
}

// FromSong converts a parsed Song into a Chart, keeping only notes that
// belong to the requested side.
func FromSong(song *Song, side Side) *rox.Chart {
	keyCount := uint8(4)
	if side == SideBoth {
		keyCount = 8
	}

	chart := rox.NewChart(keyCount)
	chart.Title = song.Name
	chart.Creator = song.Player2
	chart.IsCoop = side == SideBoth

	currentBPM := song.BPM
	addedInitialBPM := false

	for _, section := range song.Sections {
		if section.ChangeBPM && section.BPM > 0 {
			if len(section.Notes) > 0 {
				timeUS := int64(section.Notes[0].TimeMS * 1000.0)
				chart.AddTimingPoint(rox.BPMPoint(timeUS, section.BPM))
				currentBPM = section.BPM
				addedInitialBPM = true
			}
		} else if !addedInitialBPM {
			chart.AddTimingPoint(rox.BPMPoint(0, currentBPM))
			addedInitialBPM = true
		}

		for _, note := range section.Notes {
			column, ok := mapLane(note.Lane, section.MustHitSection, side)
			if !ok {
				continue
			}

			timeUS := int64(note.TimeMS * 1000.0)

			if note.IsHold() {
				durationUS := int64(note.DurationMS * 1000.0)
				chart.AddNote(rox.HoldNote(timeUS, durationUS, column))
			} else {
				chart.AddNote(rox.TapNote(timeUS, column))
			}
		}
	}

	if !addedInitialBPM {
		chart.AddTimingPoint(rox.BPMPoint(0, song.BPM))
	}

	if song.Speed > 0 {
		chart.AddTimingPoint(rox.SVPoint(0, song.Speed))
	}

	chart.SortNotes()
	chart.SortTimingPoints()
	chart.SetFormatHint("fnf")

	return chart
}

// mapLane resolves a raw 0-7 FNF lane into a normalized column for the
// requested side, or reports that the note belongs to the other side.
//
// mustHitSection true means lanes 0-3 belong to the player and 4-7 to the
// opponent; false reverses that.
func mapLane(rawLane uint8, mustHitSection bool, side Side) (uint8, bool) {
	isPlayerNote := mustHitSection
	baseLane := rawLane

	if rawLane >= 4 {
		isPlayerNote = !mustHitSection
		baseLane = rawLane - 4
	}

	switch side {
	case SidePlayer:
		if !isPlayerNote {
			return 0, false
		}

		return baseLane, true
	case SideOpponent:
		if isPlayerNote {
			return 0, false
		}

		return baseLane, true
	case SideBoth:
		if isPlayerNote {
			return baseLane + 4, true
		}

		return baseLane, true
	default:
		return 0, false
	}
}
