package qua

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// maxFileSize bounds decoder input, matching the ceiling every translator in
// this codebase enforces.
const maxFileSize = 100 * 1024 * 1024

// Decoder converts Quaver (.qua) YAML documents into Charts.
type Decoder struct{}

// Decode parses data and converts the result.
func (Decoder) Decode(data []byte) (*rox.Chart, error) {
	if len(data) > maxFileSize {
		return nil, fault.InvalidFormatf("input exceeds %d byte ceiling", maxFileSize)
	}

	var quaChart Chart
	if err := yaml.Unmarshal(data, &quaChart); err != nil {
		return nil, fault.InvalidFormatf("qua: %s", err)
	}

	return FromQua(&quaChart), nil
}

// FromQua converts a parsed Chart into a normalized one.
func FromQua(qua *Chart) *rox.Chart {
	chart := rox.NewChart(qua.Mode.KeyCount())

	chart.Title = qua.Title
	chart.Artist = qua.Artist
	chart.Creator = qua.Creator
	chart.DifficultyName = qua.DifficultyName
	chart.AudioFile = qua.AudioFile
	chart.PreviewTimeUS = int64(qua.SongPreviewTime) * 1000

	if qua.BackgroundFile != "" {
		background := qua.BackgroundFile
		chart.BackgroundFile = &background
	}

	if qua.MapID > 0 {
		chartID := uint64(qua.MapID)
		chart.ChartID = &chartID
	}

	if qua.MapSetID > 0 {
		chartsetID := uint64(qua.MapSetID)
		chart.ChartsetID = &chartsetID
	}

	if qua.Source != "" {
		source := qua.Source
		chart.Source = &source
	}

	if qua.Tags != "" {
		chart.Tags = splitTags(qua.Tags)
	}

	for _, tp := range qua.TimingPoints {
		timeUS := int64(tp.StartTime * 1000.0)
		chart.AddTimingPoint(rox.BPMPoint(timeUS, tp.BPM))
	}

	for _, sv := range qua.SliderVelocities {
		timeUS := int64(sv.StartTime * 1000.0)
		chart.AddTimingPoint(rox.SVPoint(timeUS, float32(sv.Multiplier)))
	}

	chart.SortTimingPoints()

	for _, ho := range qua.HitObjects {
		timeUS := int64(ho.StartTime * 1000.0)
		column := ho.Lane - 1

		if ho.EndTime != nil {
			endUS := int64(*ho.EndTime * 1000.0)
			chart.AddNote(rox.HoldNote(timeUS, endUS-timeUS, column))
		} else {
			chart.AddNote(rox.TapNote(timeUS, column))
		}
	}

	chart.SortNotes()
	chart.SetFormatHint("qua")

	return chart
}

func splitTags(raw string) []string {
	var tags []string

	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
