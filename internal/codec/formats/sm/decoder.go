package sm

import (
	"sort"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// Decoder converts StepMania (.sm) files into Charts. A file may declare
// several difficulty charts; Decode always returns the first one.
type Decoder struct{}

// Decode parses the file and converts its first chart.
func (Decoder) Decode(data []byte) (*rox.Chart, error) {
	file, err := Parse(data)
	if err != nil {
		return nil, fault.InvalidFormatf("sm: %s", err)
	}

	if len(file.Charts) == 0 {
		return nil, fault.InvalidFormat("no charts found in SM file")
	}

	chart := FromChart(file, &file.Charts[0])
	chart.SetFormatHint("sm")

	return chart, nil
}

// DecodeAll converts every difficulty chart in the file.
func DecodeAll(data []byte) ([]*rox.Chart, error) {
	file, err := Parse(data)
	if err != nil {
		return nil, fault.InvalidFormatf("sm: %s", err)
	}

	charts := make([]*rox.Chart, len(file.Charts))
	for i := range file.Charts {
		charts[i] = FromChart(file, &file.Charts[i])
		charts[i].SetFormatHint("sm")
	}

	return charts, nil
}

// FromChart converts one parsed difficulty chart, paired with its parent
// file's shared metadata and tempo timeline, into a Chart.
func FromChart(file *File, smChart *Chart) *rox.Chart {
	chart := rox.NewChart(smChart.ColumnCount)

	chart.Title = file.Metadata.Title
	chart.Artist = file.Metadata.Artist
	chart.Creator = file.Metadata.Credit
	chart.DifficultyName = smChart.Difficulty

	difficultyValue := float32(smChart.Meter)
	chart.DifficultyValue = &difficultyValue

	chart.AudioFile = file.Metadata.Music
	if file.Metadata.Background != "" {
		background := file.Metadata.Background
		chart.BackgroundFile = &background
	}

	// SM's #OFFSET: uses the opposite sign convention from ROX's
	// audio_offset_us (positive SM offset = music starts before notes).
	chart.AudioOffsetUS = -file.OffsetUS
	chart.PreviewTimeUS = int64(file.Metadata.SampleStart * 1_000_000.0)
	chart.PreviewDurationUS = int64(file.Metadata.SampleLength * 1_000_000.0)

	for _, bpm := range file.BPMs {
		chart.AddTimingPoint(rox.BPMPoint(bpm.TimeUS, bpm.BPM))
	}

	convertNotes(chart, smChart.Notes)

	chart.SortNotes()

	return chart
}

type pendingNote struct {
	timeUS int64
	column uint8
}

// convertNotes pairs hold/roll heads with their closing tails in FIFO order
// per column; a tail with no matching head is dropped silently.
func convertNotes(chart *rox.Chart, notes []Note) {
	sorted := make([]Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TimeUS != sorted[j].TimeUS {
			return sorted[i].TimeUS < sorted[j].TimeUS
		}

		return sorted[i].Column < sorted[j].Column
	})

	var pendingHolds, pendingRolls []pendingNote

	for _, note := range sorted {
		switch note.Kind {
		case NoteTap:
			chart.AddNote(rox.TapNote(note.TimeUS, note.Column))
		case NoteHoldHead:
			pendingHolds = append(pendingHolds, pendingNote{note.TimeUS, note.Column})
		case NoteRollHead:
			pendingRolls = append(pendingRolls, pendingNote{note.TimeUS, note.Column})
		case NoteTail:
			if idx := indexByColumn(pendingHolds, note.Column); idx >= 0 {
				head := pendingHolds[idx]
				pendingHolds = append(pendingHolds[:idx], pendingHolds[idx+1:]...)
				chart.AddNote(rox.HoldNote(head.timeUS, note.TimeUS-head.timeUS, head.column))
			} else if idx := indexByColumn(pendingRolls, note.Column); idx >= 0 {
				head := pendingRolls[idx]
				pendingRolls = append(pendingRolls[:idx], pendingRolls[idx+1:]...)
				chart.AddNote(rox.BurstNote(head.timeUS, note.TimeUS-head.timeUS, head.column))
			}
		case NoteMine:
			chart.AddNote(rox.MineNote(note.TimeUS, note.Column))
		case NoteLift:
			chart.AddNote(rox.TapNote(note.TimeUS, note.Column))
		case NoteEmpty, NoteFake:
		}
	}
}

func indexByColumn(pending []pendingNote, column uint8) int {
	for i, p := range pending {
		if p.column == column {
			return i
		}
	}

	return -1
}
