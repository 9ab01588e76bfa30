// Package jrox implements JROX: a direct JSON dump of a Chart. It exists for
// debugging and manual editing, not interchange with any other rhythm game.
package jrox

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// maxFileSize matches the ceiling every translator in this codebase enforces.
const maxFileSize = 100 * 1024 * 1024

// Decoder reads a Chart back from its JSON dump.
type Decoder struct{}

// Decode parses data directly into a Chart.
func (Decoder) Decode(data []byte) (*rox.Chart, error) {
	if len(data) > maxFileSize {
		return nil, fault.InvalidFormatf("jrox: input exceeds %d byte ceiling", maxFileSize)
	}

	if !utf8.Valid(data) {
		return nil, fault.InvalidFormat("jrox: invalid UTF-8")
	}

	var chart rox.Chart
	if err := json.Unmarshal(data, &chart); err != nil {
		return nil, fault.InvalidFormatf("jrox: %s", err)
	}

	chart.SetFormatHint("jrox")

	return &chart, nil
}

// Encoder writes a Chart out as pretty-printed JSON.
type Encoder struct{}

// Encode is best-effort and does not require chart.Validate() to pass.
func (Encoder) Encode(chart *rox.Chart) ([]byte, error) {
	data, err := json.MarshalIndent(chart, "", "  ")
	if err != nil {
		return nil, fault.InvalidFormatf("jrox: %s", err)
	}

	return data, nil
}
