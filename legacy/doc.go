// Package legacy implements the decode-only pre-DEFLATE decompressor
// used by WeakAuras strings carrying no `!` prefix. The format is a
// store/compressed mode byte, a symbol-count and original-size header,
// a canonical-code table extracted bit by bit from the stream (codes
// are delimited by two consecutive set bits and then "unescaped" by
// dropping every other bit), and a payload decoded through a lookup
// table built from that code table.
//
// This package's bit-accumulator and lookup-table construction are a
// structurally faithful reconstruction of the reference decompressor's
// externally observable behavior (see DESIGN.md); the reference's own
// internal bit-buffer and table-builder sources were not available to
// ground against byte-for-byte.
package legacy
