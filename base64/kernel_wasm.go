//go:build wasm

package base64

// Go's compiler emits no SIMD128 opcodes for GOARCH=wasm, so there is no
// assembly kernel to write here (see DESIGN.md and SPEC_FULL.md §9 for
// the open question this resolves). This file registers the scalar
// reference implementation under the "simd128-fallback" name so the
// dispatch interface and ActiveKernelName() behave identically across
// platforms; it is bit-exact with scalarKernel by construction, since it
// *is* scalarKernel wearing a different name.
func selectKernel() *kernel {
	return &kernel{
		name:   "simd128-fallback",
		encode: EncodeScalar,
		decode: DecodeScalarUnchecked,
	}
}
