package osu

import (
	"strconv"
	"strings"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// Decoder converts osu!mania (.osu, Mode: 3) beatmaps into Charts.
type Decoder struct{}

// Decode parses the beatmap and rejects anything not in mania mode. Taiko
// beatmaps (Mode: 1) are handled by the sibling taiko package, which reuses
// Parse directly rather than going through this Decoder.
func (Decoder) Decode(data []byte) (*rox.Chart, error) {
	beatmap, err := Parse(data)
	if err != nil {
		return nil, fault.InvalidFormatf("osu: %s", err)
	}

	if beatmap.General.Mode != 3 {
		return nil, fault.InvalidFormatf("not a mania beatmap (mode=%d, expected 3)", beatmap.General.Mode)
	}

	chart := FromBeatmap(beatmap)
	chart.SetFormatHint("osu")

	return chart, nil
}

// FromBeatmap maps a parsed beatmap onto a Chart. Exported so the taiko
// decoder can reuse the timing/metadata portion and only override the note
// conversion.
func FromBeatmap(beatmap *Beatmap) *rox.Chart {
	keyCount := uint8(beatmap.Difficulty.CircleSize)

	chart := rox.NewChart(keyCount)
	applyMetadata(chart, beatmap)
	applyTimingPoints(chart, beatmap)
	applyHitObjects(chart, beatmap, keyCount)

	chart.SortNotes()

	return chart
}

func applyMetadata(chart *rox.Chart, beatmap *Beatmap) {
	title := beatmap.Metadata.Title
	if beatmap.Metadata.TitleUnicode != "" {
		title = beatmap.Metadata.TitleUnicode
	}

	artist := beatmap.Metadata.Artist
	if beatmap.Metadata.ArtistUnicode != "" {
		artist = beatmap.Metadata.ArtistUnicode
	}

	chart.Title = title
	chart.Artist = artist
	chart.Creator = beatmap.Metadata.Creator
	chart.DifficultyName = beatmap.Metadata.Version

	difficultyValue := float32(beatmap.Difficulty.OverallDifficulty)
	chart.DifficultyValue = &difficultyValue

	chart.AudioFile = beatmap.General.AudioFilename
	if beatmap.Background != "" {
		background := beatmap.Background
		chart.BackgroundFile = &background
	}

	chart.AudioOffsetUS = int64(beatmap.General.AudioLeadIn) * 1000
	if beatmap.General.PreviewTime > 0 {
		chart.PreviewTimeUS = int64(beatmap.General.PreviewTime) * 1000
	}

	if beatmap.Metadata.Source != "" {
		source := beatmap.Metadata.Source
		chart.Source = &source
	}

	chart.Tags = beatmap.Metadata.Tags

	if beatmap.Metadata.BeatmapID != nil {
		id := uint64(*beatmap.Metadata.BeatmapID)
		chart.ChartID = &id
	}

	if beatmap.Metadata.BeatmapSetID != nil {
		id := uint64(*beatmap.Metadata.BeatmapSetID)
		chart.ChartsetID = &id
	}
}

func applyTimingPoints(chart *rox.Chart, beatmap *Beatmap) {
	for _, tp := range beatmap.TimingPoints {
		timeUS := int64(tp.TimeMS * 1000.0)

		if tp.Uninherited {
			bpm, ok := tp.BPM()
			if !ok {
				continue
			}

			point := rox.BPMPoint(timeUS, bpm)
			point.Signature = tp.Meter
			chart.AddTimingPoint(point)

			continue
		}

		chart.AddTimingPoint(rox.SVPoint(timeUS, tp.ScrollVelocity()))
	}
}

func applyHitObjects(chart *rox.Chart, beatmap *Beatmap, keyCount uint8) {
	hitsoundIndex := make(map[string]uint16)

	for _, ho := range beatmap.HitObjects {
		column := ho.Column(keyCount)
		timeUS := int64(ho.TimeMS) * 1000

		var note rox.Note
		if ho.IsHold() {
			note = rox.HoldNote(timeUS, int64(ho.DurationMS())*1000, column)
		} else {
			note = rox.TapNote(timeUS, column)
		}

		if filename, volume, ok := parseHitsoundExtras(ho); ok {
			idx, exists := hitsoundIndex[filename]
			if !exists {
				var hs rox.Hitsound
				if volume > 0 {
					hs = rox.NewHitsoundWithVolume(filename, volume)
				} else {
					hs = rox.NewHitsound(filename)
				}

				idx = uint16(len(chart.Hitsounds))
				chart.Hitsounds = append(chart.Hitsounds, hs)
				hitsoundIndex[filename] = idx
			}

			note.HitsoundIndex = &idx
		}

		chart.AddNote(note)
	}
}

// parseHitsoundExtras reads the trailing "sampleSet:additions:customIndex:
// volume:filename" tuple. Holds have an extra leading endTime field, so the
// filename/volume indices shift by one.
func parseHitsoundExtras(ho HitObject) (filename string, volume uint8, ok bool) {
	if ho.Extras == "" {
		return "", 0, false
	}

	parts := strings.Split(ho.Extras, ":")

	filenameIdx, volumeIdx := 4, 3
	if ho.IsHold() {
		filenameIdx, volumeIdx = 5, 4
	}

	if filenameIdx >= len(parts) {
		return "", 0, false
	}

	name := strings.TrimSpace(parts[filenameIdx])
	if name == "" {
		return "", 0, false
	}

	if volumeIdx < len(parts) {
		if v, err := strconv.ParseUint(strings.TrimSpace(parts[volumeIdx]), 10, 8); err == nil && v > 0 && v <= 100 {
			volume = uint8(v)
		}
	}

	return name, volume, true
}
