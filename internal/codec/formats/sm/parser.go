package sm

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// maxFileSize bounds parser input, matching the ceiling every translator in
// this codebase enforces.
const maxFileSize = 100 * 1024 * 1024

// Parse reads a .sm document into a File: metadata, the BPM/stop timeline,
// and every #NOTES: chart it contains.
func Parse(data []byte) (*File, error) {
	if len(data) > maxFileSize {
		return nil, fault.InvalidFormatf("input exceeds %d byte ceiling", maxFileSize)
	}

	if !utf8.Valid(data) {
		return nil, fault.InvalidFormat("input is not valid UTF-8")
	}

	content := string(data)

	file := &File{}
	parseMetadata(content, &file.Metadata)

	if offset, ok := parseFloatField(content, "#OFFSET:"); ok {
		file.OffsetUS = int64(offset * 1_000_000.0)
	}

	file.BPMs = parseBPMs(content)
	file.Stops = parseStops(content, file.BPMs)
	file.Charts = parseCharts(content, file.BPMs)

	return file, nil
}

func parseMetadata(content string, m *Metadata) {
	if v, ok := parseStringField(content, "#TITLE:"); ok {
		m.Title = v
	}

	if v, ok := parseStringField(content, "#SUBTITLE:"); ok {
		m.Subtitle = v
	}

	if v, ok := parseStringField(content, "#ARTIST:"); ok {
		m.Artist = v
	}

	if v, ok := parseStringField(content, "#TITLETRANSLIT:"); ok {
		m.TitleTranslit = v
	}

	if v, ok := parseStringField(content, "#ARTISTTRANSLIT:"); ok {
		m.ArtistTranslit = v
	}

	if v, ok := parseStringField(content, "#CREDIT:"); ok {
		m.Credit = v
	}

	if v, ok := parseStringField(content, "#MUSIC:"); ok {
		m.Music = v
	}

	if v, ok := parseStringField(content, "#BANNER:"); ok {
		m.Banner = v
	}

	if v, ok := parseStringField(content, "#BACKGROUND:"); ok {
		m.Background = v
	}

	if v, ok := parseFloatField(content, "#SAMPLESTART:"); ok {
		m.SampleStart = v
	}

	if v, ok := parseFloatField(content, "#SAMPLELENGTH:"); ok {
		m.SampleLength = v
	}
}

func parseStringField(content, tag string) (string, bool) {
	start := strings.Index(content, tag)
	if start < 0 {
		return "", false
	}

	rest := content[start+len(tag):]

	end := strings.IndexByte(rest, ';')
	if end < 0 {
		return "", false
	}

	return strings.TrimSpace(rest[:end]), true
}

func parseFloatField(content, tag string) (float64, bool) {
	raw, ok := parseStringField(content, tag)
	if !ok {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// parsePairs reads a comma-separated "beat=value,beat=value" field, sorted
// by beat. Malformed pairs are silently dropped.
func parsePairs(content, tag string) [][2]float64 {
	raw, ok := parseStringField(content, tag)
	if !ok {
		return nil
	}

	var pairs [][2]float64

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}

		beat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}

		pairs = append(pairs, [2]float64{beat, value})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	return pairs
}

// parseBPMs converts #BPMS: beat=bpm pairs into an absolute-time timeline
// by walking the pairs cumulatively, converting the elapsed beats at the
// previous BPM into microseconds before switching tempo.
func parseBPMs(content string) []BPMChange {
	pairs := parsePairs(content, "#BPMS:")

	var (
		result     []BPMChange
		currentUS  int64
		currentBt  float64
		currentBPM float32 = 120.0
	)

	for _, pair := range pairs {
		beat, bpm := pair[0], pair[1]

		if beat > currentBt {
			rows := (beat - currentBt) * RowsPerBeat
			currentUS += RowsToUS(rows, currentBPM)
			currentBt = beat
		}

		currentBPM = float32(bpm)
		result = append(result, BPMChange{TimeUS: currentUS, BPM: currentBPM})
	}

	if len(result) == 0 || result[0].TimeUS > 0 {
		result = append([]BPMChange{{TimeUS: 0, BPM: 120.0}}, result...)
	}

	return result
}

func parseStops(content string, bpms []BPMChange) []Stop {
	pairs := parsePairs(content, "#STOPS:")

	stops := make([]Stop, 0, len(pairs))
	for _, pair := range pairs {
		beat, durationSeconds := pair[0], pair[1]
		stops = append(stops, Stop{
			TimeUS:     beatToUS(beat, bpms),
			DurationUS: int64(durationSeconds * 1_000_000.0),
		})
	}

	return stops
}

// beatToUS walks the BPM timeline to find the absolute time of a beat
// position. Does not account for #STOPS:.
func beatToUS(targetBeat float64, bpms []BPMChange) int64 {
	if len(bpms) == 0 {
		return RowsToUS(targetBeat*RowsPerBeat, 120.0)
	}

	currentUS := int64(0)
	currentBeat := 0.0
	currentBPM := bpms[0].BPM

	for i := 1; i < len(bpms); i++ {
		change := bpms[i]

		elapsedRows := USToRows(change.TimeUS-currentUS, currentBPM)
		changeBeat := currentBeat + elapsedRows/RowsPerBeat

		if changeBeat >= targetBeat {
			break
		}

		currentUS = change.TimeUS
		currentBeat = changeBeat
		currentBPM = change.BPM
	}

	if targetBeat > currentBeat {
		remainingRows := (targetBeat - currentBeat) * RowsPerBeat
		currentUS += RowsToUS(remainingRows, currentBPM)
	}

	return currentUS
}

// rowToUS converts an absolute row position (measure_index*192 + offset)
// to microseconds via the BPM timeline.
func rowToUS(row float64, bpms []BPMChange) int64 {
	if len(bpms) == 0 {
		return RowsToUS(row, 120.0)
	}

	currentUS := int64(0)
	currentRow := 0.0
	currentBPM := bpms[0].BPM

	for i := 1; i < len(bpms); i++ {
		change := bpms[i]

		changeRow := currentRow + USToRows(change.TimeUS-currentUS, currentBPM)
		if changeRow >= row {
			break
		}

		currentUS = change.TimeUS
		currentRow = changeRow
		currentBPM = change.BPM
	}

	return currentUS + RowsToUS(row-currentRow, currentBPM)
}

func parseCharts(content string, bpms []BPMChange) []Chart {
	var charts []Chart

	sections := strings.Split(content, "#NOTES:")
	for _, section := range sections[1:] {
		end := strings.IndexByte(section, '#')
		if end < 0 {
			end = len(section)
		}

		if chart, ok := parseChart(section[:end], bpms); ok {
			charts = append(charts, chart)
		}
	}

	return charts
}

func parseChart(content string, bpms []BPMChange) (Chart, bool) {
	lines := splitTrimmedLines(content)

	var chart Chart

	idx := 0
	for idx < len(lines) && lines[idx] == "" {
		idx++
	}

	var header []string
	for idx < len(lines) && len(header) < 5 {
		line := lines[idx]
		if line == "" {
			idx++
			continue
		}

		header = append(header, strings.TrimSuffix(line, ":"))
		idx++
	}

	if len(header) < 5 {
		return Chart{}, false
	}

	chart.StepsType = header[0]
	chart.Description = header[1]
	chart.Difficulty = header[2]

	meter, err := strconv.Atoi(strings.TrimSpace(header[3]))
	if err != nil {
		meter = 1
	}

	chart.Meter = meter

	for _, raw := range strings.Split(header[4], ",") {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			chart.RadarValues = append(chart.RadarValues, v)
		}
	}

	chart.ColumnCount = ColumnCountForStepsType(chart.StepsType)

	measureNum := 0

	var currentMeasure []string

	flush := func() {
		parseMeasureNotes(currentMeasure, measureNum, bpms, &chart.Notes)
	}

	for idx < len(lines) {
		line := lines[idx]
		if pos := strings.Index(line, "//"); pos >= 0 {
			line = line[:pos]
		}

		line = strings.TrimSpace(line)

		if line == "" {
			idx++
			continue
		}

		if line == ";" {
			if len(currentMeasure) > 0 {
				flush()
			}

			break
		}

		if line == "," {
			flush()
			currentMeasure = nil
			measureNum++

			idx++

			continue
		}

		if isNoteLine(line) {
			if uint8(len(line)) > chart.ColumnCount {
				chart.ColumnCount = uint8(len(line))
			}

			currentMeasure = append(currentMeasure, line)
		}

		idx++
	}

	return chart, true
}

func isNoteLine(line string) bool {
	if line == "" {
		return false
	}

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '0', '1', '2', '3', '4', 'M', 'm', 'L', 'l', 'F', 'f':
		default:
			return false
		}
	}

	return true
}

func parseMeasureNotes(lines []string, measureNum int, bpms []BPMChange, notes *[]Note) {
	if len(lines) == 0 {
		return
	}

	rowsPerLine := RowsPerMeasure / float64(len(lines))

	for lineIdx, line := range lines {
		row := float64(measureNum)*RowsPerMeasure + float64(lineIdx)*rowsPerLine
		timeUS := rowToUS(row, bpms)

		for col := 0; col < len(line); col++ {
			kind := ParseNoteKind(line[col])
			if !kind.IsActionable() {
				continue
			}

			*notes = append(*notes, Note{TimeUS: timeUS, Column: uint8(col), Kind: kind})
		}
	}
}

func splitTrimmedLines(content string) []string {
	rawLines := strings.Split(content, "\n")
	lines := make([]string, len(rawLines))

	for i, l := range rawLines {
		lines[i] = strings.TrimSpace(l)
	}

	return lines
}
