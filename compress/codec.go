package compress

import (
	"fmt"

	"github.com/weakauras/wacodec/format"
)

// Compressor compresses a byte slice, returning a newly allocated result.
// The input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice, returning a newly allocated
// result. The input slice is never modified.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given
// compression type. Only CompressionNone and CompressionDeflate support
// both directions; CompressionLegacy is decode-only and returns a Codec
// whose Compress method always errors (see NewLegacyCodec).
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionDeflate:
		return NewDeflateCompressor(), nil
	case format.CompressionLegacy:
		return NewLegacyCodec(), nil
	default:
		return nil, fmt.Errorf("compress: invalid compression type: %s", compressionType)
	}
}
