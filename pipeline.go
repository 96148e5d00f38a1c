// Package wacodec decodes and encodes WeakAuras import/export strings: a
// compact, self-delimiting textual format that round-trips Lua-like
// values (null, boolean, number, string, array, map) through a printable
// ASCII channel.
//
// # Pipeline
//
// An encoded string has three layers, applied outermost-to-innermost on
// decode: an ASCII prefix selecting the format variant, a custom base64
// alphabet (package base64), a compression stage (package compress, or
// package legacy under the wa_legacy build tag), and a value
// deserializer (package text for the textual V1 format, package binary
// for the dense V2 tag-stream format). Encode is the mirror, always via
// DEFLATE.
//
// # Versions
//
//	!WA:2!<base64>   V2: DEFLATE + dense binary tag stream.
//	!<base64>        V1: DEFLATE + textual tag stream.
//	<base64>         V1: legacy pre-DEFLATE compressor (decode-only,
//	                 requires the wa_legacy build tag).
package wacodec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/weakauras/wacodec/base64"
	"github.com/weakauras/wacodec/binary"
	"github.com/weakauras/wacodec/compress"
	"github.com/weakauras/wacodec/internal/pool"
	"github.com/weakauras/wacodec/text"
	"github.com/weakauras/wacodec/value"
)

const (
	prefixV2      = "!WA:2!"
	prefixDeflate = "!"
)

// Decode parses a WeakAuras import/export string into a value tree. It
// returns nil, nil if the stream has a valid prefix but carries no value
// after it.
func Decode(data []byte, opts ...Option) (*value.Value, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger

	switch {
	case bytes.HasPrefix(data, []byte(prefixV2)):
		log.Debug("wacodec: decode", "prefix", "v2")
		return decodeCompressed(data[len(prefixV2):], cfg, true)

	case bytes.HasPrefix(data, []byte(prefixDeflate)):
		log.Debug("wacodec: decode", "prefix", "deflate-v1")
		return decodeCompressed(data[len(prefixDeflate):], cfg, false)

	default:
		log.Debug("wacodec: decode", "prefix", "legacy")
		return decodeLegacy(data, cfg)
	}
}

func decodeCompressed(payload []byte, cfg *Config, v2 bool) (*value.Value, error) {
	rawLen, err := base64.DecodedLen(len(payload))
	if err != nil {
		return nil, err
	}

	// Stage the base64-decoded bytes in a pooled scratch buffer: they
	// are only read synchronously by Decompress below and never escape
	// this function, so the buffer can go back to the pool immediately.
	bb := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(bb)
	bb.ExtendOrGrow(rawLen)
	raw := bb.Bytes()

	if _, err := base64.Decode(raw, payload); err != nil {
		var decErr *base64.DecodeError
		if errors.As(err, &decErr) {
			// Report the offset within the whole input, prefix included.
			prefixLen := len(prefixDeflate)
			if v2 {
				prefixLen = len(prefixV2)
			}
			return nil, &base64.DecodeError{Offset: decErr.Offset + prefixLen}
		}
		return nil, err
	}

	decompressor := &compress.DeflateCompressor{MaxDecompressedSize: int64(cfg.MaxSize)}
	decompressed, err := decompressor.Decompress(raw)
	if err != nil {
		if errors.Is(err, compress.ErrDecompressedSizeExceeded) {
			return nil, ErrDataExceedsMaxSize
		}
		return nil, fmt.Errorf("wacodec: deflate decompress: %w", err)
	}

	if !cfg.BorrowStrings {
		decompressed = append([]byte(nil), decompressed...)
	}

	if v2 {
		v, err := binary.Decode(decompressed)
		if err != nil {
			return nil, &V2Error{Stage: "decode", Err: err}
		}
		return v, nil
	}

	v, err := text.Decode(decompressed)
	if err != nil {
		return nil, &V1Error{Stage: "decode", Err: err}
	}
	return v, nil
}

// Encode serializes v into a WeakAuras import/export string using the
// given OutputVersion. OutputVersion values built from
// format.VersionLegacy return ErrUnsupportedEncodeVersion: the legacy
// compressor is decode-only.
func Encode(v *value.Value, version OutputVersion, opts ...Option) (string, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return "", err
	}

	var (
		serialized []byte
		serErr     error
		prefix     string
	)

	switch version {
	case OutputV2:
		serialized, serErr = binary.Encode(v)
		if serErr != nil {
			return "", &V2Error{Stage: "encode", Err: serErr}
		}
		prefix = prefixV2

	case OutputDeflate:
		serialized, serErr = text.Encode(v)
		if serErr != nil {
			return "", &V1Error{Stage: "encode", Err: serErr}
		}
		prefix = prefixDeflate

	default:
		return "", ErrUnsupportedEncodeVersion
	}

	compressor := compress.NewDeflateCompressor()
	compressed, err := compressor.Compress(serialized)
	if err != nil {
		return "", fmt.Errorf("wacodec: deflate compress: %w", err)
	}

	encodedLen, err := base64.EncodedLen(len(compressed))
	if err != nil {
		return "", err
	}

	// Stage the base64-encoded bytes in a pooled scratch buffer; they
	// are copied into the final string below and then the buffer goes
	// back to the pool.
	bb := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(bb)
	bb.ExtendOrGrow(encodedLen)
	encodedBytes := bb.Bytes()
	base64.Encode(encodedBytes, compressed)

	cfg.Logger.Debug("wacodec: encode", "version", version.String(), "bytes", len(compressed))

	var b bytes.Buffer
	b.Grow(len(prefix) + len(encodedBytes))
	b.WriteString(prefix)
	b.Write(encodedBytes)
	return b.String(), nil
}
