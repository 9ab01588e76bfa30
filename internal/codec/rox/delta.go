package roxbin

import "github.com/Glubus/Rhythm-Open-Exchange"

// deltaEncodeNotes returns a copy of notes with TimeUS replaced by the
// difference from the previous note's original absolute time; the first
// note keeps its absolute value. Only Note.TimeUS is transformed — timing
// points and every other field stay absolute. The transformation is lossless
// and idempotent when paired with deltaDecodeNotes: notes must already be
// sorted by time for the deltas to stay small, but sortedness is not
// required for correctness of the round-trip itself.
func deltaEncodeNotes(notes []rox.Note) []rox.Note {
	out := make([]rox.Note, len(notes))

	var prevAbsolute int64

	for i, n := range notes {
		out[i] = n
		if i == 0 {
			out[i].TimeUS = n.TimeUS
		} else {
			out[i].TimeUS = n.TimeUS - prevAbsolute
		}

		prevAbsolute = n.TimeUS
	}

	return out
}

// deltaDecodeNotes reverses deltaEncodeNotes in place via a prefix sum.
func deltaDecodeNotes(notes []rox.Note) {
	var running int64

	for i := range notes {
		if i == 0 {
			running = notes[i].TimeUS
		} else {
			running += notes[i].TimeUS
			notes[i].TimeUS = running
		}
	}
}
