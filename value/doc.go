// Package value implements the in-memory tree used to represent a decoded
// WeakAuras import string: a tagged union of Null, Boolean, Number, String,
// Array and Map, mirroring the handful of types a Lua table serializer needs
// to round-trip.
//
// Composite values (Array, Map) compare and hash by identity, never by
// structural content: two independently constructed empty maps are distinct
// values. Identity is modeled as a monotonically increasing handle allocated
// at construction time rather than a pointer address, so the package stays
// free of unsafe and the handles remain stable across a GC compaction.
//
// Three map flavors are selectable at build time (insertion-ordered by
// default, sorted-by-key with -tags wa_mapflavor_sorted, or
// insertion-ordered-with-hash-index with -tags wa_mapflavor_hashed). All
// three satisfy the same external behavior; only iteration order differs.
package value
