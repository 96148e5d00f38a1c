// Package binary implements the "V2" dense binary tag-stream codec for
// WeakAuras values: a one-byte version header followed by a sequence of
// tag-prefixed values using three packed tag-byte layouts (a 7-bit fast
// path for small non-negative integers, a 4-bit-count embedded-type
// short form for small strings/maps/arrays/mixed containers, a 12-bit
// compact signed integer, and a full 5-bit type tag for everything
// else), plus back-reference tables: Encode writes a repeated string
// (longer than two bytes) once and refers to it thereafter, and Decode
// resolves both string and table back-references. Encode does not
// deduplicate composite containers.
package binary
