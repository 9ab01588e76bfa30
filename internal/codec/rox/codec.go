// Package roxbin implements the binary .rox container: the structural
// serialization of a Chart, delta-encoded note times, and zstd compression
// behind the four-byte "ROX\0" magic.
package roxbin

import (
	"github.com/Glubus/Rhythm-Open-Exchange"
	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// maxFileSize bounds both encoder output sanity and decoder input, matching
// the 100 MiB ceiling every translator in this codebase enforces.
const maxFileSize = 100 * 1024 * 1024

// SupportedVersions is the set of binary format versions this decoder
// accepts. Resolves the open question left in the reference implementation
// (a version byte existed but nothing ever rejected an unknown one): any
// version outside this set now fails with UnsupportedVersionError.
var SupportedVersions = map[uint8]bool{2: true}

var magic = [4]byte{0x52, 0x4F, 0x58, 0x00}

// Codec implements rox.Decoder and rox.Encoder for the binary container.
type Codec struct{}

// Encode validates the chart, delta-encodes note times on a copy so the
// caller's chart is untouched, serializes, compresses, and prepends the
// magic bytes.
func (Codec) Encode(chart *rox.Chart) ([]byte, error) {
	if err := chart.Validate(); err != nil {
		return nil, err
	}

	deltaNotes := deltaEncodeNotes(chart.Notes)

	payload := serializeChart(chart, deltaNotes)
	if len(payload) > maxFileSize {
		return nil, fault.InvalidFormatf("serialized chart exceeds %d byte ceiling", maxFileSize)
	}

	compressed, err := defaultCompressor.Compress(payload)
	if err != nil {
		return nil, fault.Serialize(err.Error())
	}

	out := make([]byte, 0, len(magic)+len(compressed))
	out = append(out, magic[:]...)
	out = append(out, compressed...)

	return out, nil
}

// Decode verifies the magic, enforces the size ceiling, decompresses,
// deserializes, and undoes the note-time delta encoding via prefix sum.
func (Codec) Decode(data []byte) (*rox.Chart, error) {
	if len(data) > maxFileSize {
		return nil, fault.InvalidFormatf("input exceeds %d byte ceiling", maxFileSize)
	}

	if len(data) < len(magic) {
		return nil, fault.InvalidFormat("truncated: shorter than magic header")
	}

	for i := range magic {
		if data[i] != magic[i] {
			return nil, fault.InvalidFormat("missing ROX magic bytes")
		}
	}

	payload, err := defaultCompressor.Decompress(data[len(magic):])
	if err != nil {
		return nil, fault.Deserialize(err.Error())
	}

	chart, err := deserializeChart(payload)
	if err != nil {
		return nil, fault.Deserialize(err.Error())
	}

	if !SupportedVersions[chart.Version] {
		return nil, &fault.UnsupportedVersionError{Version: chart.Version}
	}

	deltaDecodeNotes(chart.Notes)

	return chart, nil
}
