// Package text implements the "V1" textual serialization codec for
// WeakAuras values: a `^1…^^` tag stream where every value is introduced
// by a 2-byte identifier (`^` plus a second byte drawn from a small
// documented set), strings use a `~X` escape encoding for bytes outside
// the format's printable range, and nested tables are written as
// `^T…^t` blocks that decode to either a Map or an Array depending on
// whether their keys form the sequence 1.0, 2.0, …, n.0.
//
// Decode copies each string's bytes into a new Go string, so the returned
// value.Value never aliases the input slice; a string with no escapes is
// converted directly, without an intermediate unescape buffer.
package text
