package auto

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/fnf"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/jrox"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/osu"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/qua"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/sm"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/taiko"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/yrox"
	roxbin "github.com/Glubus/Rhythm-Open-Exchange/internal/codec/rox"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// AutoDecodeFile reads path and decodes it, picking a translator from the
// file's extension. .osu files are additionally routed to the mania or
// taiko decoder by sniffing the Mode: field.
func AutoDecodeFile(path string) (*rox.Chart, error) {
	format, err := InputFormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.IO(err)
	}

	if format == InputOsu {
		return decodeOsuByMode(data)
	}

	return DecodeWithFormat(data, format)
}

func decodeOsuByMode(data []byte) (*rox.Chart, error) {
	mode := detectOsuMode(data)

	switch mode {
	case 1:
		return taiko.Decoder{}.Decode(data)
	case 3:
		return osu.Decoder{}.Decode(data)
	default:
		return nil, fault.UnsupportedFormatf("osu! mode %d is not supported (only taiko=1 and mania=3)", mode)
	}
}

// detectOsuMode scans lines up to "[Metadata]" for a "Mode:" field, defaulting
// to 3 (mania) when absent or the data is not decodable as text.
func detectOsuMode(data []byte) uint8 {
	content := string(data)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if line == "[Metadata]" {
			break
		}

		if value, ok := strings.CutPrefix(line, "Mode:"); ok {
			if mode, err := strconv.ParseUint(strings.TrimSpace(value), 10, 8); err == nil {
				return uint8(mode)
			}
		}
	}

	return 3
}

// DecodeWithFormat decodes data using a specific, already-known format.
func DecodeWithFormat(data []byte, format InputFormat) (*rox.Chart, error) {
	switch format {
	case InputRox:
		return roxbin.Codec{}.Decode(data)
	case InputJrox:
		return jrox.Decoder{}.Decode(data)
	case InputYrox:
		return yrox.Decoder{}.Decode(data)
	case InputOsu:
		return osu.Decoder{}.Decode(data)
	case InputTaiko:
		return taiko.Decoder{}.Decode(data)
	case InputSM:
		return sm.Decoder{}.Decode(data)
	case InputQua:
		return qua.Decoder{}.Decode(data)
	case InputFnf:
		return fnf.Decoder{Side: fnf.SidePlayer}.Decode(data)
	default:
		return nil, fault.UnsupportedFormatf("unhandled input format %d", format)
	}
}

// FromString auto-detects a chart's format from its content and decodes it,
// trying formats in a fixed order until one succeeds.
func FromString(data string) (*rox.Chart, error) {
	return FromBytes([]byte(data))
}

// FromBytes auto-detects a chart's format from its content and decodes it,
// trying the binary container first, then text formats in descending order
// of how distinctive their grammar is.
func FromBytes(data []byte) (*rox.Chart, error) {
	probes := []struct {
		name   string
		decode func([]byte) (*rox.Chart, error)
	}{
		{"rox", roxbin.Codec{}.Decode},
		{"osu", decodeOsuByMode},
		{"stepmania", sm.Decoder{}.Decode},
		{"quaver", qua.Decoder{}.Decode},
		{"fnf", (fnf.Decoder{Side: fnf.SidePlayer}).Decode},
		{"jrox", jrox.Decoder{}.Decode},
		{"yrox", yrox.Decoder{}.Decode},
	}

	for _, probe := range probes {
		chart, err := probe.decode(data)
		if err == nil {
			return chart, nil
		}

		slog.Debug("auto-decode: probe failed", "format", probe.name, "error", err)
	}

	return nil, fault.InvalidFormat("no format decoder succeeded")
}
