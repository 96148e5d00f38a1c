// Package compress provides the compression codecs used by the two
// layers of a WeakAuras import/export string that need one: the DEFLATE
// stage shared by the `!` and `!WA:2!` prefixes, and the legacy
// pre-DEFLATE scheme used by unprefixed strings.
//
// # Architecture
//
// Three interfaces describe the shape every backend implements:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Backends
//
// NoOpCompressor bypasses compression entirely; it exists for tests and
// for any future diagnostic path that wants to skip the DEFLATE stage.
//
// DeflateCompressor wraps github.com/klauspost/compress/flate to produce
// and consume raw DEFLATE streams (no zlib or gzip framing), enforcing a
// decompressed-size cap so a crafted stream cannot exhaust memory before
// the value deserializer ever sees the bytes.
//
// LegacyCodec adapts the legacy package's decode-only decompressor to the
// Codec interface; its Compress method always errors, since no WeakAuras
// client has produced strings in that format since DEFLATE support landed.
package compress
