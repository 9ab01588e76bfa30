package osu

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// maxFileSize bounds parser input, matching the ceiling every translator in
// this codebase enforces.
const maxFileSize = 100 * 1024 * 1024

type section int

const (
	sectionNone section = iota
	sectionGeneral
	sectionEditor
	sectionMetadata
	sectionDifficulty
	sectionEvents
	sectionTimingPoints
	sectionHitObjects
)

// Parse reads a .osu file into a Beatmap. Unknown keys and malformed lines
// within a known section are silently skipped, matching the format's own
// tolerance for forward-compatible fields.
func Parse(data []byte) (*Beatmap, error) {
	if len(data) > maxFileSize {
		return nil, fault.InvalidFormatf("input exceeds %d byte ceiling", maxFileSize)
	}

	if !utf8.Valid(data) {
		return nil, fault.InvalidFormat("input is not valid UTF-8")
	}

	beatmap := &Beatmap{FormatVersion: 14}
	cur := sectionNone

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "osu file format v") {
			if v, err := strconv.Atoi(strings.TrimPrefix(line, "osu file format v")); err == nil {
				beatmap.FormatVersion = v
			}

			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			cur = parseSectionHeader(line[1 : len(line)-1])
			continue
		}

		switch cur {
		case sectionGeneral:
			parseGeneralLine(line, &beatmap.General)
		case sectionMetadata:
			parseMetadataLine(line, &beatmap.Metadata)
		case sectionDifficulty:
			parseDifficultyLine(line, &beatmap.Difficulty)
		case sectionEvents:
			parseEventLine(line, &beatmap.Background)
		case sectionTimingPoints:
			if tp, ok := parseTimingPointLine(line); ok {
				beatmap.TimingPoints = append(beatmap.TimingPoints, tp)
			}
		case sectionHitObjects:
			if ho, ok := parseHitObjectLine(line); ok {
				beatmap.HitObjects = append(beatmap.HitObjects, ho)
			}
		case sectionNone, sectionEditor:
		}
	}

	return beatmap, scanner.Err()
}

func parseSectionHeader(name string) section {
	switch name {
	case "General":
		return sectionGeneral
	case "Editor":
		return sectionEditor
	case "Metadata":
		return sectionMetadata
	case "Difficulty":
		return sectionDifficulty
	case "Events":
		return sectionEvents
	case "TimingPoints":
		return sectionTimingPoints
	case "HitObjects":
		return sectionHitObjects
	default:
		return sectionNone
	}
}

func splitKV(line string) (string, string, bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}

	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

func parseGeneralLine(line string, g *General) {
	key, value, ok := splitKV(line)
	if !ok {
		return
	}

	switch key {
	case "AudioFilename":
		g.AudioFilename = value
	case "AudioLeadIn":
		g.AudioLeadIn, _ = strconv.Atoi(value)
	case "PreviewTime":
		g.PreviewTime, _ = strconv.Atoi(value)
	case "Mode":
		g.Mode, _ = strconv.Atoi(value)
	}
}

func parseMetadataLine(line string, m *Metadata) {
	key, value, ok := splitKV(line)
	if !ok {
		return
	}

	switch key {
	case "Title":
		m.Title = value
	case "TitleUnicode":
		m.TitleUnicode = value
	case "Artist":
		m.Artist = value
	case "ArtistUnicode":
		m.ArtistUnicode = value
	case "Creator":
		m.Creator = value
	case "Version":
		m.Version = value
	case "Source":
		if value != "" {
			m.Source = value
		}
	case "Tags":
		if value != "" {
			m.Tags = strings.Fields(value)
		}
	case "BeatmapID":
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			m.BeatmapID = &id
		}
	case "BeatmapSetID":
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			m.BeatmapSetID = &id
		}
	}
}

func parseDifficultyLine(line string, d *Difficulty) {
	key, value, ok := splitKV(line)
	if !ok {
		return
	}

	switch key {
	case "CircleSize":
		d.CircleSize, _ = strconv.ParseFloat(value, 64)
	case "OverallDifficulty":
		d.OverallDifficulty, _ = strconv.ParseFloat(value, 64)
	case "HPDrainRate":
		d.HPDrainRate, _ = strconv.ParseFloat(value, 64)
	}
}

// parseEventLine looks for the background event: "0,0,"filename.jpg",0,0".
func parseEventLine(line string, background *string) {
	parts := strings.Split(line, ",")
	if len(parts) >= 3 && parts[0] == "0" && parts[1] == "0" {
		filename := strings.Trim(parts[2], "\"")
		if filename != "" {
			*background = filename
		}
	}
}

func parseTimingPointLine(line string) (TimingPoint, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 8 {
		return TimingPoint{}, false
	}

	timeMS, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return TimingPoint{}, false
	}

	beatLength, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return TimingPoint{}, false
	}

	meter, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
	if meter == 0 {
		meter = 4
	}

	sampleSet, _ := strconv.Atoi(strings.TrimSpace(parts[3]))
	sampleIndex, _ := strconv.Atoi(strings.TrimSpace(parts[4]))

	volume := 100
	if v, err := strconv.Atoi(strings.TrimSpace(parts[5])); err == nil {
		volume = v
	}

	effects, _ := strconv.Atoi(strings.TrimSpace(parts[7]))

	return TimingPoint{
		TimeMS:      timeMS,
		BeatLength:  beatLength,
		Meter:       uint8(meter),
		SampleSet:   uint8(sampleSet),
		SampleIndex: uint8(sampleIndex),
		Volume:      uint8(volume),
		Uninherited: strings.TrimSpace(parts[6]) == "1",
		Effects:     uint8(effects),
	}, true
}

func parseHitObjectLine(line string) (HitObject, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return HitObject{}, false
	}

	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return HitObject{}, false
	}

	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return HitObject{}, false
	}

	timeMS, err := strconv.Atoi(parts[2])
	if err != nil {
		return HitObject{}, false
	}

	objectType, err := strconv.ParseUint(parts[3], 10, 8)
	if err != nil {
		return HitObject{}, false
	}

	hitSound, err := strconv.ParseUint(parts[4], 10, 8)
	if err != nil {
		return HitObject{}, false
	}

	ho := HitObject{
		X:          x,
		Y:          y,
		TimeMS:     timeMS,
		ObjectType: uint8(objectType),
		HitSound:   uint8(hitSound),
	}

	if ho.ObjectType&128 != 0 && len(parts) > 5 {
		extras := parts[5]
		if endStr, _, ok := strings.Cut(extras, ":"); ok {
			if end, err := strconv.Atoi(endStr); err == nil {
				ho.EndTimeMS = &end
			}
		} else if end, err := strconv.Atoi(extras); err == nil {
			ho.EndTimeMS = &end
		}
	}

	if len(parts) > 5 {
		ho.Extras = strings.Join(parts[5:], ",")
	}

	return ho, true
}
