package wacodec

import (
	"errors"
	"fmt"
)

// ErrInvalidPrefix is returned when the input string starts with neither
// `!WA:2!` nor `!`, and either the wa_legacy build tag is not enabled or
// the remaining bytes fail legacy decompression's own prefix check.
var ErrInvalidPrefix = errors.New("wacodec: invalid or unsupported string prefix")

// ErrDataExceedsMaxSize is returned when decompression would produce more
// bytes than Config.MaxSize allows.
var ErrDataExceedsMaxSize = errors.New("wacodec: decompressed data exceeds configured max size")

// ErrUnsupportedEncodeVersion is returned by Encode for an OutputVersion
// that has no encoder, currently OutputVersion values built from
// format.VersionLegacy (the legacy compressor is decode-only).
var ErrUnsupportedEncodeVersion = errors.New("wacodec: output version has no encoder")

// LegacyDecompressError wraps a failure from the legacy pre-DEFLATE
// decompressor (enabled only under the wa_legacy build tag).
type LegacyDecompressError struct {
	Err error
}

func (e *LegacyDecompressError) Error() string {
	return fmt.Sprintf("wacodec: legacy decompress: %v", e.Err)
}

func (e *LegacyDecompressError) Unwrap() error { return e.Err }

// V1Error wraps a failure from the textual (V1) value serializer or
// deserializer, identifying which direction failed.
type V1Error struct {
	Stage string // "decode" or "encode"
	Err   error
}

func (e *V1Error) Error() string {
	return fmt.Sprintf("wacodec: v1 %s: %v", e.Stage, e.Err)
}

func (e *V1Error) Unwrap() error { return e.Err }

// V2Error wraps a failure from the dense binary (V2) tag-stream
// serializer or deserializer, identifying which direction failed.
type V2Error struct {
	Stage string // "decode" or "encode"
	Err   error
}

func (e *V2Error) Error() string {
	return fmt.Sprintf("wacodec: v2 %s: %v", e.Stage, e.Err)
}

func (e *V2Error) Unwrap() error { return e.Err }
