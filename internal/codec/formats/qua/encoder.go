package qua

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

// Encoder writes a Chart out as a Quaver (.qua) YAML document.
type Encoder struct{}

// Encode is best-effort and does not require chart.Validate() to pass.
func (Encoder) Encode(chart *rox.Chart) ([]byte, error) {
	quaChart := &Chart{
		AudioFile:             chart.AudioFile,
		SongPreviewTime:       int32(chart.PreviewTimeUS / 1000),
		Mode:                  ModeForKeyCount(chart.KeyCount),
		Title:                 chart.Title,
		Artist:                chart.Artist,
		Creator:               chart.Creator,
		DifficultyName:        chart.DifficultyName,
		InitialScrollVelocity: 1.0,
		BPMDoesNotAffectSV:    true,
		MapID:                 -1,
		MapSetID:              -1,
	}

	if chart.BackgroundFile != nil {
		quaChart.BackgroundFile = *chart.BackgroundFile
	}

	if chart.ChartID != nil {
		quaChart.MapID = int32(*chart.ChartID)
	}

	if chart.ChartsetID != nil {
		quaChart.MapSetID = int32(*chart.ChartsetID)
	}

	if chart.Source != nil {
		quaChart.Source = *chart.Source
	}

	if len(chart.Tags) > 0 {
		quaChart.Tags = strings.Join(chart.Tags, ",")
	}

	for _, tp := range chart.TimingPoints {
		startTime := float64(tp.TimeUS) / 1000.0

		if tp.IsInherited {
			quaChart.SliderVelocities = append(quaChart.SliderVelocities, SliderVelocity{
				StartTime:  startTime,
				Multiplier: float64(tp.ScrollSpeed),
			})
		} else {
			quaChart.TimingPoints = append(quaChart.TimingPoints, TimingPoint{
				StartTime: startTime,
				BPM:       tp.BPM,
			})
		}
	}

	for _, note := range chart.Notes {
		startTime := float64(note.TimeUS) / 1000.0
		lane := note.Column + 1

		ho := HitObject{StartTime: startTime, Lane: lane}

		if note.IsHold() || note.IsBurst() {
			endTime := float64(note.EndTimeUS()) / 1000.0
			ho.EndTime = &endTime
		}

		quaChart.HitObjects = append(quaChart.HitObjects, ho)
	}

	out, err := yaml.Marshal(quaChart)
	if err != nil {
		return nil, err
	}

	return out, nil
}
