package auto

import (
	"os"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/fnf"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/jrox"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/osu"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/qua"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/sm"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/formats/yrox"
	roxbin "github.com/Glubus/Rhythm-Open-Exchange/internal/codec/rox"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// AutoEncodeFile encodes chart and writes it to path, picking a translator
// from the file's extension.
func AutoEncodeFile(chart *rox.Chart, path string) error {
	format, err := OutputFormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := EncodeWithFormat(chart, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fault.IO(err)
	}

	return nil
}

// EncodeWithFormat encodes chart using a specific, already-known format.
func EncodeWithFormat(chart *rox.Chart, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputRox:
		return roxbin.Codec{}.Encode(chart)
	case OutputJrox:
		return jrox.Encoder{}.Encode(chart)
	case OutputYrox:
		return yrox.Encoder{}.Encode(chart)
	case OutputOsu:
		return osu.Encoder{}.Encode(chart)
	case OutputSM:
		return sm.Encoder{}.Encode(chart)
	case OutputQua:
		return qua.Encoder{}.Encode(chart)
	case OutputFnf:
		return fnf.Encoder{}.Encode(chart)
	default:
		return nil, fault.UnsupportedFormatf("unhandled output format %d", format)
	}
}

// AutoConvertFile decodes input and re-encodes it to output, auto-detecting
// both formats from their extensions.
func AutoConvertFile(input, output string) error {
	chart, err := AutoDecodeFile(input)
	if err != nil {
		return err
	}

	return AutoEncodeFile(chart, output)
}
