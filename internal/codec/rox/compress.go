package roxbin

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// compressor abstracts the general-purpose compression stage of the binary
// container so a build targeting an environment without a compressor can
// substitute passthroughCompressor without touching the container format.
type compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// zstdCompressor is the default compressor: zstd at the SpeedDefault level,
// the closest match in klauspost/compress's API to the reference level-3
// setting.
type zstdCompressor struct{}

func (zstdCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		w.Close()

		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (zstdCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// passthroughCompressor performs no compression. It exists for constrained
// targets that cannot carry a compression dependency; the container's magic
// bytes are unchanged, so both sides must agree out of band on which
// compressor is in use.
type passthroughCompressor struct{}

func (passthroughCompressor) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func (passthroughCompressor) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// defaultCompressor is the compressor used by Encode/Decode.
var defaultCompressor compressor = zstdCompressor{}
