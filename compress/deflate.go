package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// DeflateCompressor implements Compressor/Decompressor using raw DEFLATE
// (no zlib or gzip framing), the compression WeakAuras import strings use
// under both the `!` (V1) and `!WA:2!` (V2) prefixes.
//
// MaxDecompressedSize caps how many bytes Decompress will inflate before
// giving up with ErrDecompressedSizeExceeded; zero means the package
// default (16 MiB) applies.
type DeflateCompressor struct {
	MaxDecompressedSize int64
}

var _ Codec = (*DeflateCompressor)(nil)

// DefaultMaxDecompressedSize is the cap applied when MaxDecompressedSize
// is left at its zero value.
const DefaultMaxDecompressedSize = 16 * 1024 * 1024

// ErrDecompressedSizeExceeded is returned when a DEFLATE stream would
// inflate to more bytes than the configured maximum.
var ErrDecompressedSizeExceeded = fmt.Errorf("compress: decompressed size exceeds configured maximum")

// NewDeflateCompressor creates a DeflateCompressor with the default
// decompressed-size cap.
func NewDeflateCompressor() *DeflateCompressor {
	return &DeflateCompressor{}
}

var flateWriterPool = sync.Pool{
	New: func() any {
		w, _ := flate.NewWriter(io.Discard, flate.BestCompression)
		return w
	},
}

// Compress deflates data at the best-compression level, matching the
// level WeakAuras' own LibDeflate-based encoder uses.
func (c *DeflateCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := flateWriterPool.Get().(*flate.Writer)
	defer flateWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: deflate write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: deflate close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates data, refusing to produce more than
// MaxDecompressedSize (or DefaultMaxDecompressedSize) bytes.
func (c *DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	limit := c.MaxDecompressedSize
	if limit <= 0 {
		limit = DefaultMaxDecompressedSize
	}

	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	limited := io.LimitReader(r, limit+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("compress: deflate read: %w", err)
	}
	if int64(len(out)) > limit {
		return nil, ErrDecompressedSizeExceeded
	}

	return out, nil
}
