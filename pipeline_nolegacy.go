//go:build !wa_legacy

package wacodec

import "github.com/weakauras/wacodec/value"

// decodeLegacy rejects no-prefix strings: the legacy pre-DEFLATE
// decompressor is only compiled in under the wa_legacy build tag.
func decodeLegacy(data []byte, cfg *Config) (*value.Value, error) {
	return nil, ErrInvalidPrefix
}
