package base64

import "sync/atomic"

// activeKernel caches the kernel chosen by selectKernel on first use.
//
// Initialization is intentionally racy: two goroutines may each run
// selectKernel concurrently and store their own (identical) choice with
// relaxed ordering. This is safe because every candidate kernel is a pure
// function producing identical output for identical input — there is no
// partially-constructed state to observe, only redundant work on a cold
// start. See the package's governing specification, §5.
var activeKernel atomic.Pointer[kernel]

// currentKernel returns the cached kernel, selecting and storing one on
// first call.
func currentKernel() *kernel {
	if k := activeKernel.Load(); k != nil {
		return k
	}

	k := selectKernel()
	activeKernel.Store(k)

	return k
}

// ActiveKernelName reports the name of the kernel currently in use
// ("simd128-fallback" on wasm, "scalar" everywhere else). Exposed for
// diagnostics (cmd/wacli -v) and for tests that assert a specific kernel
// was exercised.
func ActiveKernelName() string {
	return currentKernel().name
}
