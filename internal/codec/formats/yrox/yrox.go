// Package yrox implements YROX: a direct YAML dump of a Chart. It exists for
// human-readable, hand-editable charts, not interchange with any other
// rhythm game.
package yrox

import (
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// maxFileSize matches the ceiling every translator in this codebase enforces.
const maxFileSize = 100 * 1024 * 1024

// Decoder reads a Chart back from its YAML dump.
type Decoder struct{}

// Decode parses data directly into a Chart.
func (Decoder) Decode(data []byte) (*rox.Chart, error) {
	if len(data) > maxFileSize {
		return nil, fault.InvalidFormatf("yrox: input exceeds %d byte ceiling", maxFileSize)
	}

	if !utf8.Valid(data) {
		return nil, fault.InvalidFormat("yrox: invalid UTF-8")
	}

	var chart rox.Chart
	if err := yaml.Unmarshal(data, &chart); err != nil {
		return nil, fault.InvalidFormatf("yrox: %s", err)
	}

	chart.SetFormatHint("yrox")

	return &chart, nil
}

// Encoder writes a Chart out as YAML.
type Encoder struct{}

// Encode is best-effort and does not require chart.Validate() to pass.
func (Encoder) Encode(chart *rox.Chart) ([]byte, error) {
	data, err := yaml.Marshal(chart)
	if err != nil {
		return nil, fault.InvalidFormatf("yrox: %s", err)
	}

	return data, nil
}
