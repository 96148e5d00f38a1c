// Package base64 implements the custom base64 variant used by WeakAuras
// import/export strings.
//
// It differs from RFC 4648 in two ways: the 64-symbol alphabet is ordered
// a..z, A..Z, 0..9, (, ) instead of A..Z, a..z, 0..9, +, /, and the bit
// packing within each 3-byte/4-symbol group is little-endian (the mirror
// of standard base64's big-endian grouping). There is no padding
// character.
//
// The package provides a pure-Go scalar reference implementation, always
// available and used to resolve invalid-byte offsets precisely. Decoding
// and encoding are routed through a one-method kernel interface and a
// process-wide, lazily-initialized dispatch cache (see dispatch.go) so
// that ISA-specific vectorized kernels (SSE4.1/AVX2 on amd64, NEON on
// arm64) can be registered later without touching call sites; every
// registered kernel must be bit-exact with the scalar path for every
// input, per the package's bit-exactness property. No vectorized kernel
// has been verified bit-exact for this alphabet's non-standard ordering
// and little-endian packing yet, so selectKernel on every architecture
// currently returns the scalar kernel.
package base64
