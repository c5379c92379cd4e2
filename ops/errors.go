package ops

import "errors"

// ErrEmptyMerge indicates Merge or ActiveCount was called with zero
// input nodes.
var ErrEmptyMerge = errors.New("ops: at least one input node is required")
