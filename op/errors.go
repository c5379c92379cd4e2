package op

import "errors"

// Sentinel errors for operation descriptors. Callers use errors.Is.
var (
	// ErrNegativeWindow indicates a window size or lag amount below the
	// operator's minimum (lag < 0, window size < 1, or — for variance and
	// covariance family reducers — window size < 2, since a one-knot
	// window cannot produce a variance).
	ErrNegativeWindow = errors.New("op: window or lag size too small")

	// ErrNilFunction indicates a user supplied a nil function where an
	// operator or combiner was required.
	ErrNilFunction = errors.New("op: function argument is nil")
)
