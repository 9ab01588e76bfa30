package rox

import (
	"sort"

	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// Version is the current ROX binary format revision.
const Version uint8 = 2

// Magic is the four-byte prefix identifying a ROX binary container.
var Magic = [4]byte{0x52, 0x4F, 0x58, 0x00}

// Chart is one playable arrangement of notes at one difficulty: the
// normalized form every format translator decodes into and encodes from.
type Chart struct {
	Version uint8
	Metadata
	TimingPoints []TimingPoint
	Notes        []Note
	Hitsounds    []Hitsound

	// formatHint records which translator produced this chart, if any.
	// Informational only: it is never round-tripped through the binary
	// codec, and construction via NewChart leaves it empty.
	formatHint string
}

// NewChart creates an empty chart with the given key count.
func NewChart(keyCount uint8) *Chart {
	meta := DefaultMetadata()
	meta.KeyCount = keyCount

	return &Chart{
		Version:  Version,
		Metadata: meta,
	}
}

// DurationUS returns the chart's total duration: the end time of its last
// note, or 0 if the chart has no notes.
func (c *Chart) DurationUS() int64 {
	var max int64

	for _, n := range c.Notes {
		if end := n.EndTimeUS(); end > max {
			max = end
		}
	}

	return max
}

// EndTimeUS is an alias for DurationUS kept for parity with the original
// format's accessor surface, where callers compute the chart's end time
// directly rather than through a "duration" concept.
func (c *Chart) EndTimeUS() int64 {
	return c.DurationUS()
}

// NoteCount returns the number of notes in the chart.
func (c *Chart) NoteCount() int {
	return len(c.Notes)
}

// FormatHint reports which translator produced this chart ("" if built
// directly via NewChart or a caller).
func (c *Chart) FormatHint() string {
	return c.formatHint
}

// SetFormatHint is used by translators to record their origin on decode.
func (c *Chart) SetFormatHint(hint string) {
	c.formatHint = hint
}

// SortNotes sorts notes by time, stable so that same-instant notes keep
// their relative column ordering from decode.
func (c *Chart) SortNotes() {
	sort.SliceStable(c.Notes, func(i, j int) bool {
		return c.Notes[i].TimeUS < c.Notes[j].TimeUS
	})
}

// SortTimingPoints sorts timing points by time.
func (c *Chart) SortTimingPoints() {
	sort.SliceStable(c.TimingPoints, func(i, j int) bool {
		return c.TimingPoints[i].TimeUS < c.TimingPoints[j].TimeUS
	})
}

// ClearNotes removes all notes.
func (c *Chart) ClearNotes() {
	c.Notes = nil
}

// ClearTimingPoints removes all timing points.
func (c *Chart) ClearTimingPoints() {
	c.TimingPoints = nil
}

// AddNote appends a note.
func (c *Chart) AddNote(n Note) {
	c.Notes = append(c.Notes, n)
}

// AddTimingPoint appends a timing point.
func (c *Chart) AddTimingPoint(tp TimingPoint) {
	c.TimingPoints = append(c.TimingPoints, tp)
}

// Validate checks every invariant in the data model: column bounds, coop/even
// key count, hold/burst duration positivity, timing-point ordering, BPM
// presence when notes exist, and no overlapping notes on the same column.
// Only the binary encoder calls this unconditionally; textual encoders are
// best-effort and do not require a valid chart.
func (c *Chart) Validate() error {
	keyCount := c.Metadata.KeyCount

	for _, n := range c.Notes {
		if n.Column >= keyCount {
			return &fault.InvalidColumnError{Column: n.Column, KeyCount: keyCount}
		}
	}

	if c.IsCoop && keyCount%2 != 0 {
		return fault.InvalidFormatf("coop mode requires even key count, got %d", keyCount)
	}

	for _, n := range c.Notes {
		duration := n.Duration()
		if (n.IsHold() || n.IsBurst()) && duration <= 0 {
			return &fault.InvalidHoldDurationError{TimeUS: n.TimeUS, DurationUS: duration}
		}
	}

	prevTime := int64(-1) << 63

	for _, tp := range c.TimingPoints {
		if tp.TimeUS < prevTime {
			return &fault.TimingPointsNotSortedError{PrevTimeUS: prevTime, TimeUS: tp.TimeUS}
		}

		prevTime = tp.TimeUS
	}

	if len(c.Notes) > 0 {
		hasBPM := false

		for _, tp := range c.TimingPoints {
			if !tp.IsInherited {
				hasBPM = true

				break
			}
		}

		if !hasBPM {
			return &fault.NoBpmTimingPointError{}
		}
	}

	for col := uint8(0); col < keyCount; col++ {
		colNotes := make([]Note, 0)

		for _, n := range c.Notes {
			if n.Column == col {
				colNotes = append(colNotes, n)
			}
		}

		sort.Slice(colNotes, func(i, j int) bool {
			return colNotes[i].TimeUS < colNotes[j].TimeUS
		})

		for i := 1; i < len(colNotes); i++ {
			prevEnd := colNotes[i-1].EndTimeUS()
			if colNotes[i].TimeUS < prevEnd {
				return &fault.OverlappingNotesError{Column: col, TimeUS: colNotes[i].TimeUS}
			}
		}
	}

	return nil
}
