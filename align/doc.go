// Package align implements the alignment kernel: the state machine that
// joins one or more parent blocks with strictly-increasing but not
// necessarily aligned timestamps, and invokes an op.Operator at the
// resulting merged times.
//
// Three policies are supported for an ordered tuple of inputs — Union,
// Intersect, Left. The kernel is
// written once against the type-erased op.Operator/block.Block[any]
// boundary and dispatches purely on op.Flags, never on concrete Op
// identity, so every built-in reduction in package ops and every
// user-defined Operator share one merge loop per policy.
//
// State crossing batch boundaries (the latest value and validity bit
// per non-trivially-aligned input) lives in State, constructed once per
// node by the scheduler and threaded through every call to Run for that
// node. Intersect needs no such state; Run still accepts a State value
// for API uniformity but ignores its contents under that policy.
package align
