package jsonprinter

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewCompressedStreamSink wraps w in a zstd encoder and returns a stream
// Context writing through it, the same compressor internal/storage.go uses
// for snapshot bytes, applied here to JSON output instead. The returned
// closer must be closed after the Context's final Flush to emit zstd's
// trailing frame.
func NewCompressedStreamSink(w io.Writer, opts Options, zstdOpts ...zstd.EOption) (*Context, io.Closer, error) {
	enc, err := zstd.NewWriter(w, zstdOpts...)
	if err != nil {
		return nil, nil, err
	}
	return NewStreamContext(enc, opts), enc, nil
}
