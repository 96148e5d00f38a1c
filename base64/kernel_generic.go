//go:build !amd64 && !arm64 && !wasm

package base64

// selectKernel on architectures without a vectorized kernel in this
// package always returns the scalar reference implementation.
func selectKernel() *kernel {
	return scalarKernel
}
