package base64

// kernel is one ISA-specific (or portable-fallback) implementation of the
// encode/decode algorithm. Every compiled kernel must be bit-exact with
// the scalar reference for every input, per the package's bit-exactness
// property; see dispatch.go for how one is selected and cached.
type kernel struct {
	name   string
	encode func(dst, src []byte) int
	decode func(dst, src []byte) (written int, invalidOffset int, ok bool)
}

// scalarKernel is the reference implementation, always available
// regardless of target architecture.
var scalarKernel = &kernel{
	name:   "scalar",
	encode: EncodeScalar,
	decode: DecodeScalarUnchecked,
}
