// Package sm implements the StepMania (.sm) translator: a tag/value
// metadata grammar plus a row-based measure notation for notes.
package sm

// Row-based timing constants. StepMania divides every measure into 192
// rows regardless of how finely the chart actually snaps notes; 48 rows
// make up one quarter-note beat.
const (
	RowsPerBeat    = 48.0
	RowsPerMeasure = 192.0
)

// RowsToUS converts a row offset to microseconds at a constant BPM.
func RowsToUS(rows float64, bpm float32) int64 {
	beats := rows / RowsPerBeat
	seconds := beats / (float64(bpm) / 60.0)

	return int64(seconds * 1_000_000.0)
}

// USToRows converts a microsecond offset to rows at a constant BPM.
func USToRows(us int64, bpm float32) float64 {
	seconds := float64(us) / 1_000_000.0
	beats := seconds * (float64(bpm) / 60.0)

	return beats * RowsPerBeat
}

// NoteKind is a single character in an SM note line.
type NoteKind byte

const (
	NoteEmpty    NoteKind = '0'
	NoteTap      NoteKind = '1'
	NoteHoldHead NoteKind = '2'
	NoteTail     NoteKind = '3'
	NoteRollHead NoteKind = '4'
	NoteMine     NoteKind = 'M'
	NoteLift     NoteKind = 'L'
	NoteFake     NoteKind = 'F'
)

// ParseNoteKind maps a note character to its kind, folding lowercase
// aliases and treating anything unrecognized as empty.
func ParseNoteKind(c byte) NoteKind {
	switch c {
	case '0':
		return NoteEmpty
	case '1':
		return NoteTap
	case '2':
		return NoteHoldHead
	case '3':
		return NoteTail
	case '4':
		return NoteRollHead
	case 'M', 'm':
		return NoteMine
	case 'L', 'l':
		return NoteLift
	case 'F', 'f':
		return NoteFake
	default:
		return NoteEmpty
	}
}

// IsActionable reports whether the kind represents a real gameplay event
// (not empty, not decorative fake).
func (k NoteKind) IsActionable() bool {
	return k != NoteEmpty && k != NoteFake
}

// BPMChange is one entry of a cumulative BPM timeline: the BPM takes effect
// at TimeUS and holds until the next entry.
type BPMChange struct {
	TimeUS int64
	BPM    float32
}

// Note is a single parsed event from a measure grid, before hold/roll
// head-tail pairing has been applied.
type Note struct {
	TimeUS int64
	Column uint8
	Kind   NoteKind
}

// Chart is one difficulty block parsed from a .sm file's #NOTES section.
type Chart struct {
	StepsType    string
	Description  string
	Difficulty   string
	Meter        int
	RadarValues  []float64
	ColumnCount  uint8
	Notes        []Note
}

// ColumnCountForStepsType maps a StepMania steps type to its column count.
// Unrecognized types default to 4 and may widen if wider note lines are
// observed during parsing.
func ColumnCountForStepsType(stepsType string) uint8 {
	switch stepsType {
	case "dance-single", "pump-single":
		return 4
	case "dance-double", "pump-double", "dance-couple":
		return 8
	case "dance-solo", "pump-halfdouble":
		return 6
	default:
		return 4
	}
}

// File is a fully parsed StepMania document: song-level metadata, the
// tempo/stop timeline, and every difficulty chart it declares.
type File struct {
	Metadata Metadata
	OffsetUS int64
	BPMs     []BPMChange
	Stops    []Stop
	Charts   []Chart
}

// Stop is a StepMania freeze: the song pauses for DurationUS at TimeUS.
// Parsed but not accounted for in beat-to-time conversion — see DESIGN.md.
type Stop struct {
	TimeUS     int64
	DurationUS int64
}

// Metadata holds the song-level #TAG:value; fields relevant to ROX.
type Metadata struct {
	Title          string
	Subtitle       string
	Artist         string
	TitleTranslit  string
	ArtistTranslit string
	Credit         string
	Music          string
	Banner         string
	Background     string
	SampleStart    float64
	SampleLength   float64
}
