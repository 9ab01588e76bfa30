package fnf

import (
	"encoding/json"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

// jsonNote is the [time_ms, lane, duration_ms] wire shape.
type jsonNote [3]float64

type jsonSection struct {
	SectionNotes   []jsonNote `json:"sectionNotes"`
	LengthInSteps  int32      `json:"lengthInSteps"`
	MustHitSection bool       `json:"mustHitSection"`
	ChangeBPM      bool       `json:"changeBPM"`
	BPM            float32    `json:"bpm"`
	TypeOfSection  int32      `json:"typeOfSection"`
}

type jsonSong struct {
	Song           string        `json:"song"`
	BPM            float32       `json:"bpm"`
	Speed          float32       `json:"speed"`
	Player1        string        `json:"player1"`
	Player2        string        `json:"player2"`
	NeedsVoices    bool          `json:"needsVoices"`
	ValidScore     bool          `json:"validScore"`
	Notes          []jsonSection `json:"notes"`
	Sections       int32         `json:"sections"`
	SectionLengths []int32       `json:"sectionLengths"`
}

type jsonChart struct {
	Song jsonSong `json:"song"`
}

// Encoder writes a Chart out as a single giant section (must-hit for charts
// under 8 keys, not must-hit for 8K and wider): experimental,
// and a lossy round-trip since real FNF charts are authored section by
// section rather than as one block.
type Encoder struct{}

// Encode is best-effort and does not require chart.Validate() to pass.
func (Encoder) Encode(chart *rox.Chart) ([]byte, error) {
	baseBPM := float32(120.0)

	for _, tp := range chart.TimingPoints {
		if !tp.IsInherited {
			baseBPM = tp.BPM

			break
		}
	}

	isBoth := chart.KeyCount >= 8

	notes := make([]jsonNote, 0, len(chart.Notes))

	for _, note := range chart.Notes {
		timeMS := float64(note.TimeUS) / 1000.0
		durationMS := 0.0

		if note.IsHold() || note.IsBurst() {
			durationMS = float64(note.DurationUS) / 1000.0
		}

		notes = append(notes, jsonNote{timeMS, float64(note.Column), durationMS})
	}

	section := jsonSection{
		SectionNotes:   notes,
		LengthInSteps:  160_000,
		MustHitSection: !isBoth,
		ChangeBPM:      true,
		BPM:            baseBPM,
	}

	speed := float32(1.0)
	for _, tp := range chart.TimingPoints {
		if tp.IsInherited {
			speed = tp.ScrollSpeed

			break
		}
	}

	out := jsonChart{
		Song: jsonSong{
			Song:        chart.Title,
			BPM:         baseBPM,
			Speed:       speed,
			Player1:     "bf",
			Player2:     chart.Creator,
			NeedsVoices: false,
			ValidScore:  true,
			Notes:       []jsonSection{section},
			Sections:    1,
		},
	}

	return json.MarshalIndent(out, "", "  ")
}
