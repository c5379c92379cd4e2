package block

import "errors"

// Sentinel errors for block construction. Callers MUST use errors.Is to
// branch on these; the engine never wraps them with string context at
// the definition site (wrap with fmt.Errorf("%w: ...") at call sites
// that need extra context).
var (
	// ErrNotIncreasing indicates two adjacent timestamps are not strictly
	// increasing (equal or out of order). Duplicate timestamps within a
	// single block are always a construction error, never a runtime one.
	ErrNotIncreasing = errors.New("block: timestamps are not strictly increasing")
)
