package fnf

import (
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// maxFileSize bounds parser input, matching the ceiling every translator in
// this codebase enforces.
const maxFileSize = 100 * 1024 * 1024

// Parse reads an FNF .json document. Notes are [time_ms, lane, duration_ms]
// tuples of varying length (a tap omits duration_ms), which gjson reads by
// index without a fixed-arity struct.
func Parse(data []byte) (*Song, error) {
	if len(data) > maxFileSize {
		return nil, fault.InvalidFormatf("input exceeds %d byte ceiling", maxFileSize)
	}

	if !utf8.Valid(data) {
		return nil, fault.InvalidFormat("fnf: invalid UTF-8")
	}

	if !gjson.ValidBytes(data) {
		return nil, fault.InvalidFormat("fnf: invalid JSON")
	}

	root := gjson.ParseBytes(data)
	songField := root.Get("song")

	song := &Song{
		Name:    songField.Get("song").String(),
		BPM:     float32(songField.Get("bpm").Float()),
		Speed:   1.0,
		Player1: "bf",
		Player2: "dad",
	}

	if v := songField.Get("speed"); v.Exists() {
		song.Speed = float32(v.Float())
	}

	if v := songField.Get("player1"); v.Exists() {
		song.Player1 = v.String()
	}

	if v := songField.Get("player2"); v.Exists() {
		song.Player2 = v.String()
	}

	song.NeedsVoices = songField.Get("needsVoices").Bool()

	for _, sectionField := range songField.Get("notes").Array() {
		section := Section{
			LengthInSteps:  16,
			MustHitSection: sectionField.Get("mustHitSection").Bool(),
			ChangeBPM:      sectionField.Get("changeBPM").Bool(),
			BPM:            float32(sectionField.Get("bpm").Float()),
		}

		if v := sectionField.Get("lengthInSteps"); v.Exists() {
			section.LengthInSteps = int32(v.Int())
		}

		for _, noteField := range sectionField.Get("sectionNotes").Array() {
			elems := noteField.Array()
			if len(elems) < 2 {
				continue
			}

			note := Note{
				TimeMS: elems[0].Float(),
				Lane:   uint8(elems[1].Float()),
			}

			if len(elems) >= 3 {
				note.DurationMS = elems[2].Float()
			}

			section.Notes = append(section.Notes, note)
		}

		song.Sections = append(song.Sections, section)
	}

	return song, nil
}
