//go:build wa_legacy

package wacodec

import (
	"errors"

	"github.com/weakauras/wacodec/base64"
	"github.com/weakauras/wacodec/internal/pool"
	"github.com/weakauras/wacodec/legacy"
	"github.com/weakauras/wacodec/text"
	"github.com/weakauras/wacodec/value"
)

// decodeLegacy handles a no-prefix string: base64-decode, decompress
// with the legacy pre-DEFLATE scheme, then deserialize with the textual
// (V1) format. Only compiled in under the wa_legacy build tag.
func decodeLegacy(data []byte, cfg *Config) (*value.Value, error) {
	rawLen, err := base64.DecodedLen(len(data))
	if err != nil {
		return nil, err
	}

	// legacy.Decompress's store mode returns a slice aliasing raw
	// directly, so this buffer must stay alive (and out of the pool)
	// until text.Decode has finished consuming decompressed below.
	bb := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(bb)
	bb.ExtendOrGrow(rawLen)
	raw := bb.Bytes()

	if _, err := base64.Decode(raw, data); err != nil {
		return nil, err
	}

	decompressed, err := legacy.Decompress(raw, cfg.MaxSize)
	if err != nil {
		if errors.Is(err, legacy.ErrDataExceedsMaxSize) {
			return nil, ErrDataExceedsMaxSize
		}
		if errors.Is(err, legacy.ErrInvalidPrefix) {
			return nil, ErrInvalidPrefix
		}
		return nil, &LegacyDecompressError{Err: err}
	}

	if !cfg.BorrowStrings {
		decompressed = append([]byte(nil), decompressed...)
	}

	v, err := text.Decode(decompressed)
	if err != nil {
		return nil, &V1Error{Stage: "decode", Err: err}
	}
	return v, nil
}
