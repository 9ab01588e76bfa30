package rox

// Decoder parses raw bytes of some textual or binary chart format into a
// Chart. Implementations return a fault.ErrInvalidFormat-wrapped error on
// malformed input.
type Decoder interface {
	Decode(data []byte) (*Chart, error)
}

// Encoder serializes a Chart into the bytes of some textual or binary chart
// format.
type Encoder interface {
	Encode(chart *Chart) ([]byte, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(data []byte) (*Chart, error)

// Decode calls f(data).
func (f DecoderFunc) Decode(data []byte) (*Chart, error) { return f(data) }

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(chart *Chart) ([]byte, error)

// Encode calls f(chart).
func (f EncoderFunc) Encode(chart *Chart) ([]byte, error) { return f(chart) }
