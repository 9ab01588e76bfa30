package rox

// Hitsound is a keysound sample a note may reference by index.
type Hitsound struct {
	// File is the relative path to the audio sample.
	File string
	// Volume is an optional 0-100 override; nil means "use the format default".
	Volume *uint8
}

// NewHitsound creates a hitsound with no volume override.
func NewHitsound(file string) Hitsound {
	return Hitsound{File: file}
}

// NewHitsoundWithVolume creates a hitsound with a volume clamped to [0, 100].
func NewHitsoundWithVolume(file string, volume uint8) Hitsound {
	if volume > 100 {
		volume = 100
	}

	return Hitsound{File: file, Volume: &volume}
}
