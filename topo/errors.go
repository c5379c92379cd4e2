package topo

import "errors"

// ErrCycleDetected indicates the traversal revisited a node still being
// explored. Since Nodes are immutable and always built from already-
// existing parents, this is a defensive check, not a user-recoverable
// error — it would only fire if something bypassed graph.Obtain to
// hand-construct a cyclic Node.
var ErrCycleDetected = errors.New("topo: cycle detected in node graph")
