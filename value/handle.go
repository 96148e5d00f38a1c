package value

import "sync/atomic"

// nextHandle is a process-wide counter used to allocate identity handles for
// composite values (Array, Map). It never wraps in practice: at one
// allocation per nanosecond it would take 500+ years to exhaust a uint64.
var nextHandle atomic.Uint64

// allocHandle returns a new, never-reused identity handle.
func allocHandle() uint64 {
	return nextHandle.Add(1)
}
