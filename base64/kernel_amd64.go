//go:build amd64

package base64

// No SSE4.1/AVX2 kernel in this package has been verified bit-exact
// against the scalar reference for this alphabet's non-standard symbol
// ordering and little-endian 6-bit packing (see DESIGN.md). Until one is
// written and checked byte-for-byte against scalar.go's validate/roll/pack
// tables, amd64 falls back to the portable scalar kernel rather than risk
// a vector path that silently disagrees with it.
func selectKernel() *kernel {
	return scalarKernel
}
