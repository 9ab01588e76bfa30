// Package qua implements the Quaver (.qua) translator: a YAML document with
// BPM timing points and slider velocities as independent lists, merged into
// ROX's single timing-point timeline on decode.
package qua

// Mode is Quaver's fixed set of key-count layouts.
type Mode string

const (
	ModeKeys4 Mode = "Keys4"
	ModeKeys7 Mode = "Keys7"
)

// KeyCount returns the column count for the mode, defaulting unrecognized
// values to 4.
func (m Mode) KeyCount() uint8 {
	if m == ModeKeys7 {
		return 7
	}

	return 4
}

// ModeForKeyCount picks Keys7 for a 7-column chart and Keys4 for anything
// else, matching Quaver's own two-mode vocabulary.
func ModeForKeyCount(keyCount uint8) Mode {
	if keyCount == 7 {
		return ModeKeys7
	}

	return ModeKeys4
}

// Chart is a parsed .qua document.
type Chart struct {
	AudioFile             string           `yaml:"AudioFile"`
	SongPreviewTime       int32            `yaml:"SongPreviewTime"`
	BackgroundFile        string           `yaml:"BackgroundFile"`
	BannerFile            string           `yaml:"BannerFile"`
	MapID                 int32            `yaml:"MapId"`
	MapSetID              int32            `yaml:"MapSetId"`
	Mode                  Mode             `yaml:"Mode"`
	Title                 string           `yaml:"Title"`
	Artist                string           `yaml:"Artist"`
	Source                string           `yaml:"Source"`
	Tags                  string           `yaml:"Tags"`
	Creator               string           `yaml:"Creator"`
	DifficultyName        string           `yaml:"DifficultyName"`
	Description           string           `yaml:"Description"`
	BPMDoesNotAffectSV    bool             `yaml:"BPMDoesNotAffectScrollVelocity"`
	InitialScrollVelocity float64          `yaml:"InitialScrollVelocity"`
	TimingPoints          []TimingPoint    `yaml:"TimingPoints"`
	SliderVelocities      []SliderVelocity `yaml:"SliderVelocities"`
	HitObjects            []HitObject      `yaml:"HitObjects"`
}

// TimingPoint is a BPM change, timestamped in milliseconds.
type TimingPoint struct {
	StartTime float64 `yaml:"StartTime"`
	BPM       float32 `yaml:"Bpm"`
}

// SliderVelocity is a scroll-speed-only change with no effect on tempo.
type SliderVelocity struct {
	StartTime  float64 `yaml:"StartTime"`
	Multiplier float64 `yaml:"Multiplier"`
}

// HitObject is a note or hold. Lane is 1-indexed; EndTime is nil for taps.
type HitObject struct {
	StartTime float64  `yaml:"StartTime"`
	Lane      uint8    `yaml:"Lane"`
	EndTime   *float64 `yaml:"EndTime,omitempty"`
}
