package sm

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

// canonicalDifficulties is StepMania's fixed difficulty-name vocabulary.
// Anything else falls back to "Hard" on encode.
var canonicalDifficulties = map[string]bool{
	"Beginner": true, "Easy": true, "Medium": true,
	"Hard": true, "Challenge": true, "Edit": true,
}

// lineDivisors are the measure-line counts the encoder tries, smallest
// first, when quantizing a chart's notes onto a grid.
var lineDivisors = []int{4, 8, 12, 16, 24, 32, 48, 64, 96, 192}

// Encoder writes a Chart out as a single-difficulty StepMania (.sm) file.
type Encoder struct{}

// Encode is best-effort and does not require chart.Validate() to pass.
func (Encoder) Encode(chart *rox.Chart) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "#TITLE:%s;\n", chart.Title)
	b.WriteString("#SUBTITLE:;\n")
	fmt.Fprintf(&b, "#ARTIST:%s;\n", chart.Artist)
	b.WriteString("#TITLETRANSLIT:;\n")
	b.WriteString("#ARTISTTRANSLIT:;\n")
	b.WriteString("#GENRE:;\n")
	fmt.Fprintf(&b, "#CREDIT:%s;\n", chart.Creator)
	b.WriteString("#BANNER:;\n")

	if chart.BackgroundFile != nil {
		fmt.Fprintf(&b, "#BACKGROUND:%s;\n", *chart.BackgroundFile)
	} else {
		b.WriteString("#BACKGROUND:;\n")
	}

	b.WriteString("#LYRICSPATH:;\n")
	b.WriteString("#CDTITLE:;\n")
	fmt.Fprintf(&b, "#MUSIC:%s;\n", chart.AudioFile)

	offsetSeconds := -float64(chart.AudioOffsetUS) / 1_000_000.0
	fmt.Fprintf(&b, "#OFFSET:%.6f;\n", offsetSeconds)

	sampleStart := float64(chart.PreviewTimeUS) / 1_000_000.0
	sampleLength := float64(chart.PreviewDurationUS) / 1_000_000.0
	fmt.Fprintf(&b, "#SAMPLESTART:%.3f;\n", sampleStart)
	fmt.Fprintf(&b, "#SAMPLELENGTH:%.3f;\n", sampleLength)

	b.WriteString("#SELECTABLE:YES;\n")

	bpms := nonInheritedBPMs(chart)

	b.WriteString("#BPMS:")

	for i, bpm := range bpms {
		beat := usToBeat(bpm.TimeUS, bpms)
		if i > 0 {
			b.WriteByte(',')
		}

		fmt.Fprintf(&b, "%.3f=%.3f", beat, bpm.BPM)
	}

	b.WriteString(";\n")
	b.WriteString("#STOPS:;\n\n")

	stepsType := "dance-single"

	switch chart.KeyCount {
	case 8:
		stepsType = "dance-double"
	case 6:
		stepsType = "dance-solo"
	}

	difficulty := chart.DifficultyName
	if !canonicalDifficulties[difficulty] {
		difficulty = "Hard"
	}

	meter := uint32(1)
	if chart.DifficultyValue != nil {
		meter = uint32(*chart.DifficultyValue)
	}

	b.WriteString("#NOTES:\n")
	fmt.Fprintf(&b, "     %s:\n", stepsType)
	b.WriteString("     :\n")
	fmt.Fprintf(&b, "     %s:\n", difficulty)
	fmt.Fprintf(&b, "     %d:\n", meter)
	b.WriteString("     0,0,0,0,0:\n")

	encodeMeasures(&b, chart, bpms)

	b.WriteString(";\n")

	return []byte(b.String()), nil
}

func nonInheritedBPMs(chart *rox.Chart) []BPMChange {
	var bpms []BPMChange

	for _, tp := range chart.TimingPoints {
		if !tp.IsInherited {
			bpms = append(bpms, BPMChange{TimeUS: tp.TimeUS, BPM: tp.BPM})
		}
	}

	if len(bpms) == 0 {
		bpms = []BPMChange{{TimeUS: 0, BPM: 120.0}}
	}

	return bpms
}

func usToBeatsAtBPM(us int64, bpm float32) float64 {
	return float64(us) / 1_000_000.0 * float64(bpm) / 60.0
}

// usToBeat converts an absolute time to a beat position by walking the BPM
// timeline forward.
func usToBeat(timeUS int64, bpms []BPMChange) float64 {
	if len(bpms) == 0 || timeUS == 0 {
		return 0
	}

	currentUS := int64(0)
	currentBeat := 0.0
	currentBPM := bpms[0].BPM

	for i := 1; i < len(bpms); i++ {
		bpm := bpms[i]
		if bpm.TimeUS > timeUS {
			break
		}

		currentBeat += usToBeatsAtBPM(bpm.TimeUS-currentUS, currentBPM)
		currentUS = bpm.TimeUS
		currentBPM = bpm.BPM
	}

	return currentBeat + usToBeatsAtBPM(timeUS-currentUS, currentBPM)
}

type gridEvent struct {
	row    int
	column uint8
	char   byte
}

// encodeMeasures snaps every note onto a beat grid, picks the coarsest
// divisor from lineDivisors that still represents every event exactly
// (within 1/1000 beat), and writes the resulting measures.
func encodeMeasures(b *strings.Builder, chart *rox.Chart, bpms []BPMChange) {
	if len(chart.Notes) == 0 {
		for i := 0; i < 4; i++ {
			b.WriteString(strings.Repeat("0", int(chart.KeyCount)))
			b.WriteByte('\n')
		}

		return
	}

	beats := make([]float64, len(chart.Notes))
	maxBeat := 0.0

	for i, note := range chart.Notes {
		beat := snapToGrid(usToBeat(note.TimeUS, bpms))
		beats[i] = beat

		endBeat := beat
		if note.IsHold() || note.IsBurst() {
			endBeat = snapToGrid(usToBeat(note.EndTimeUS(), bpms))
		}

		if endBeat > maxBeat {
			maxBeat = endBeat
		}
	}

	divisor := chooseDivisor(chart, bpms, beats)
	rowsPerLine := RowsPerMeasure / float64(divisor)

	grid := buildGrid(chart, bpms, beats)

	totalMeasures := int(math.Ceil(maxBeat/4.0)) + 1

	for measure := 0; measure < totalMeasures; measure++ {
		if measure > 0 {
			b.WriteString(",\n")
		}

		for line := 0; line < divisor; line++ {
			row := measure*int(RowsPerMeasure) + int(float64(line)*rowsPerLine)

			lineChars := make([]byte, chart.KeyCount)
			for i := range lineChars {
				lineChars[i] = '0'
			}

			for _, ev := range grid {
				if ev.row == row && int(ev.column) < len(lineChars) {
					lineChars[ev.column] = ev.char
				}
			}

			b.Write(lineChars)
			b.WriteByte('\n')
		}
	}
}

// snapToGrid rounds a beat position to the nearest 48th-note (1/48 beat)
// increment, matching the row resolution the rest of the format uses.
func snapToGrid(beat float64) float64 {
	return math.Round(beat*RowsPerBeat) / RowsPerBeat
}

// chooseDivisor finds the smallest divisor for which every note's beat
// position lands within 1/1000 beat of a grid line.
func chooseDivisor(chart *rox.Chart, bpms []BPMChange, beats []float64) int {
	for _, divisor := range lineDivisors {
		step := 4.0 / float64(divisor)

		fits := true

		for i, note := range chart.Notes {
			if !fitsGrid(beats[i], step) {
				fits = false

				break
			}

			if note.IsHold() || note.IsBurst() {
				endBeat := snapToGrid(usToBeat(note.EndTimeUS(), bpms))
				if !fitsGrid(endBeat, step) {
					fits = false

					break
				}
			}
		}

		if fits {
			return divisor
		}
	}

	return 192
}

func fitsGrid(beat, step float64) bool {
	remainder := math.Mod(beat, step)
	if remainder > step/2 {
		remainder = step - remainder
	}

	return remainder < 0.001
}

func buildGrid(chart *rox.Chart, bpms []BPMChange, beats []float64) []gridEvent {
	beatToRow := func(beat float64) int {
		return int(math.Round(beat / 4.0 * RowsPerMeasure))
	}

	occupied := make(map[[2]int]bool)

	// Mark every note's starting cell up front so a hold tail is caught
	// colliding with a note that starts there regardless of slice order.
	for i, note := range chart.Notes {
		occupied[[2]int{beatToRow(beats[i]), int(note.Column)}] = true
	}

	var events []gridEvent

	for i, note := range chart.Notes {
		row := beatToRow(beats[i])

		switch note.Kind {
		case rox.Tap:
			events = append(events, gridEvent{row, note.Column, '1'})
			occupied[[2]int{row, int(note.Column)}] = true
		case rox.Mine:
			events = append(events, gridEvent{row, note.Column, 'M'})
			occupied[[2]int{row, int(note.Column)}] = true
		case rox.Hold, rox.Burst:
			endBeat := snapToGrid(usToBeat(note.EndTimeUS(), bpms))
			endRow := beatToRow(endBeat)

			headChar := byte('2')
			if note.Kind == rox.Burst {
				headChar = '4'
			}

			if endRow == row || occupied[[2]int{endRow, int(note.Column)}] {
				// Degrade to a tap: either the hold collapsed to zero
				// length after snapping, or its tail collides with
				// another note's start or an earlier hold's tail.
				events = append(events, gridEvent{row, note.Column, '1'})
				occupied[[2]int{row, int(note.Column)}] = true

				continue
			}

			events = append(events, gridEvent{row, note.Column, headChar})
			events = append(events, gridEvent{endRow, note.Column, '3'})
			occupied[[2]int{row, int(note.Column)}] = true
			occupied[[2]int{endRow, int(note.Column)}] = true
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].row < events[j].row })

	return events
}
