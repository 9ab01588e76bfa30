package rox

// Metadata describes a chart and the media it is played against. String
// fields are plain Go strings; ROX charts are short-lived in-memory objects
// so the small-string interning the original format uses for allocation
// pressure has no equivalent need here.
type Metadata struct {
	ChartID    *uint64
	ChartsetID *uint64

	KeyCount uint8

	Title          string
	Artist         string
	Creator        string
	DifficultyName string
	DifficultyValue *float32

	AudioFile      string
	BackgroundFile *string

	AudioOffsetUS      int64
	PreviewTimeUS      int64
	PreviewDurationUS  int64

	Source   *string
	Genre    *string
	Language *string
	Tags     []string

	// IsCoop marks a two-player chart. When true, KeyCount must be even:
	// columns 0..KeyCount/2 belong to player one, the rest to player two.
	IsCoop bool
}

// DefaultMetadata returns the metadata NewChart starts from: 4K, "Normal"
// difficulty, a 15-second preview window.
func DefaultMetadata() Metadata {
	return Metadata{
		KeyCount:          4,
		DifficultyName:    "Normal",
		PreviewDurationUS: 15_000_000,
	}
}
