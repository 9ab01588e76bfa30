// Package fnf implements the Friday Night Funkin' (.json) translator.
// Its charts have no fixed key count: a Decoder picks one side (player,
// opponent, or both combined into an 8-column coop layout) out of a file
// whose two halves are interleaved by a per-section must-hit flag.
//
// This translator is experimental: the original converter it is grounded on
// carries the same warning, and the one-big-section encoding strategy below
// is a lossy round-trip, not a faithful inverse of how real charts are
// authored section by section.
package fnf

// Side selects which half of an FNF chart a Decoder extracts.
type Side int

const (
	// SidePlayer extracts the player's notes only (4 columns).
	SidePlayer Side = iota
	// SideOpponent extracts the opponent's notes only (4 columns).
	SideOpponent
	// SideBoth combines both sides into 8 columns: opponent on 0-3, player on 4-7.
	SideBoth
)

// Note is one FNF note: [time_ms, lane, duration_ms]. duration_ms is 0 for a tap.
type Note struct {
	TimeMS     float64
	Lane       uint8
	DurationMS float64
}

// IsHold reports whether the note has a positive duration.
func (n Note) IsHold() bool {
	return n.DurationMS > 0
}

// Section is one block of the song: a run of notes, optionally carrying a
// BPM change, tagged with which side is "must hit" for that block.
type Section struct {
	Notes           []Note
	LengthInSteps   int32
	MustHitSection  bool
	ChangeBPM       bool
	BPM             float32
}

// Song is the full parsed chart: top-level metadata plus its sections.
type Song struct {
	Name        string
	BPM         float32
	Speed       float32
	Player1     string
	Player2     string
	NeedsVoices bool
	Sections    []Section
}
