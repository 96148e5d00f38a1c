package compress

import (
	"errors"

	"github.com/weakauras/wacodec/legacy"
)

// ErrLegacyEncodeUnsupported is returned by LegacyCodec.Compress: the
// legacy pre-DEFLATE scheme is decode-only, matching strings that predate
// WeakAuras switching to DEFLATE.
var ErrLegacyEncodeUnsupported = errors.New("compress: legacy compression is decode-only")

// LegacyCodec adapts the legacy package's Decompress function to the
// Codec interface so callers can select a compression backend uniformly
// by format.CompressionType.
type LegacyCodec struct {
	// MaxSize caps the decompressed size; zero means DefaultMaxDecompressedSize.
	MaxSize int
}

var _ Codec = (*LegacyCodec)(nil)

// NewLegacyCodec creates a LegacyCodec with the default max size.
func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{}
}

func (c *LegacyCodec) Compress(data []byte) ([]byte, error) {
	return nil, ErrLegacyEncodeUnsupported
}

func (c *LegacyCodec) Decompress(data []byte) ([]byte, error) {
	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxDecompressedSize
	}

	return legacy.Decompress(data, maxSize)
}
