package osu

import (
	"fmt"
	"strings"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

// Encoder writes a Chart out as an osu!mania (.osu, Mode: 3) beatmap.
type Encoder struct{}

// Encode is best-effort: unlike the binary codec, it does not require
// chart.Validate() to pass, since a textual format is a reasonable place to
// inspect an otherwise-invalid chart.
func (Encoder) Encode(chart *rox.Chart) ([]byte, error) {
	var b strings.Builder

	b.WriteString("osu file format v14\n\n")

	writeGeneral(&b, chart)
	writeEditor(&b)
	writeMetadata(&b, chart)
	writeDifficulty(&b, chart)
	writeEvents(&b, chart)
	writeTimingPoints(&b, chart)
	writeHitObjects(&b, chart)

	return []byte(b.String()), nil
}

func writeGeneral(b *strings.Builder, chart *rox.Chart) {
	b.WriteString("[General]\n")
	fmt.Fprintf(b, "AudioFilename: %s\n", chart.AudioFile)
	fmt.Fprintf(b, "AudioLeadIn: %d\n", chart.AudioOffsetUS/1000)
	fmt.Fprintf(b, "PreviewTime: %d\n", chart.PreviewTimeUS/1000)
	b.WriteString("Countdown: 0\n")
	b.WriteString("SampleSet: Normal\n")
	b.WriteString("StackLeniency: 0.7\n")
	b.WriteString("Mode: 3\n")
	b.WriteString("LetterboxInBreaks: 0\n")
	b.WriteString("SpecialStyle: 0\n")
	b.WriteString("WidescreenStoryboard: 0\n\n")
}

func writeEditor(b *strings.Builder) {
	b.WriteString("[Editor]\n")
	b.WriteString("DistanceSpacing: 1\n")
	b.WriteString("BeatDivisor: 4\n")
	b.WriteString("GridSize: 4\n")
	b.WriteString("TimelineZoom: 1\n\n")
}

func writeMetadata(b *strings.Builder, chart *rox.Chart) {
	b.WriteString("[Metadata]\n")
	fmt.Fprintf(b, "Title:%s\n", chart.Title)
	fmt.Fprintf(b, "TitleUnicode:%s\n", chart.Title)
	fmt.Fprintf(b, "Artist:%s\n", chart.Artist)
	fmt.Fprintf(b, "ArtistUnicode:%s\n", chart.Artist)
	fmt.Fprintf(b, "Creator:%s\n", chart.Creator)
	fmt.Fprintf(b, "Version:%s\n", chart.DifficultyName)

	if chart.Source != nil {
		fmt.Fprintf(b, "Source:%s\n", *chart.Source)
	}

	if len(chart.Tags) > 0 {
		fmt.Fprintf(b, "Tags:%s\n", strings.Join(chart.Tags, " "))
	}

	var chartID uint64
	if chart.ChartID != nil {
		chartID = *chart.ChartID
	}

	fmt.Fprintf(b, "BeatmapID:%d\n", chartID)

	chartsetID := int64(-1)
	if chart.ChartsetID != nil {
		chartsetID = int64(*chart.ChartsetID)
	}

	fmt.Fprintf(b, "BeatmapSetID:%d\n\n", chartsetID)
}

func writeDifficulty(b *strings.Builder, chart *rox.Chart) {
	b.WriteString("[Difficulty]\n")
	b.WriteString("HPDrainRate:8\n")
	fmt.Fprintf(b, "CircleSize:%d\n", chart.KeyCount)

	difficultyValue := float32(8.0)
	if chart.DifficultyValue != nil {
		difficultyValue = *chart.DifficultyValue
	}

	fmt.Fprintf(b, "OverallDifficulty:%g\n", difficultyValue)
	b.WriteString("ApproachRate:5\n")
	b.WriteString("SliderMultiplier:1.4\n")
	b.WriteString("SliderTickRate:1\n\n")
}

func writeEvents(b *strings.Builder, chart *rox.Chart) {
	b.WriteString("[Events]\n")
	b.WriteString("//Background and Video events\n")

	if chart.BackgroundFile != nil {
		fmt.Fprintf(b, "0,0,\"%s\",0,0\n", *chart.BackgroundFile)
	}

	b.WriteString("//Break Periods\n")
	b.WriteString("//Storyboard Layer 0 (Background)\n")
	b.WriteString("//Storyboard Layer 1 (Fail)\n")
	b.WriteString("//Storyboard Layer 2 (Pass)\n")
	b.WriteString("//Storyboard Layer 3 (Foreground)\n")
	b.WriteString("//Storyboard Sound Samples\n\n")
}

func writeTimingPoints(b *strings.Builder, chart *rox.Chart) {
	b.WriteString("[TimingPoints]\n")

	for _, tp := range chart.TimingPoints {
		timeMS := float64(tp.TimeUS) / 1000.0

		if tp.IsInherited {
			beatLength := -100.0 / float64(tp.ScrollSpeed)
			fmt.Fprintf(b, "%g,%g,4,1,0,100,0,0\n", timeMS, beatLength)

			continue
		}

		beatLength := 60000.0 / float64(tp.BPM)
		fmt.Fprintf(b, "%g,%g,%d,1,0,100,1,0\n", timeMS, beatLength, tp.Signature)
	}

	b.WriteString("\n\n")
}

func writeHitObjects(b *strings.Builder, chart *rox.Chart) {
	b.WriteString("[HitObjects]\n")

	for _, note := range chart.Notes {
		timeMS := note.TimeUS / 1000
		x := ColumnToX(note.Column, chart.KeyCount)

		switch note.Kind {
		case rox.Hold:
			endTime := timeMS + note.DurationUS/1000
			fmt.Fprintf(b, "%d,192,%d,128,0,%d:0:0:0:0:\n", x, timeMS, endTime)
		default:
			// Tap, Burst, and Mine all degrade to a plain circle: osu!mania
			// has no native equivalent for rolls or penalty notes.
			fmt.Fprintf(b, "%d,192,%d,1,0,0:0:0:0:\n", x, timeMS)
		}
	}
}
