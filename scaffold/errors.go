package scaffold

import "errors"

// ErrWindowTooSmall indicates a fixed-window or time-window size below
// the scaffold's minimum of 1 knot / a positive Duration.
var ErrWindowTooSmall = errors.New("scaffold: window size must be positive")
