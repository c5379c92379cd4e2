package ops

import (
	"fmt"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
)

// Constant builds the Node whose value is v over all time, ticking
// exactly once at the start of evaluation. Two calls with equal v
// return the identical Node, since op.NewConstant derives its key from
// v itself.
func Constant[T any](v T) *graph.Node {
	return graph.Obtain(nil, op.NewConstant(any(v)))
}

// EmptyNode builds a Node of value type T that never ticks.
func EmptyNode[T any]() *graph.Node {
	var zero T

	return graph.Obtain(nil, op.NewEmptySource(fmt.Sprintf("%T", zero)))
}

// FromBlock wraps a fixed, fully in-memory Block[T] as a source Node.
// Each call over a distinct underlying Block allocation produces a
// distinct Node, even if the two blocks happen to carry equal knots —
// the identity map dedups on structural Op identity, not on block
// content equality, which would cost O(n) per Obtain.
func FromBlock[T any](b block.Block[T]) *graph.Node {
	return graph.Obtain(nil, op.NewBlockSource(block.ToAny(b), blockKey(b)))
}

// blockKey derives a stable-within-process identity tag for a Block's
// backing storage, so two FromBlock calls over the SAME Go slice value
// (e.g. a Duplicate'd source reused across sessions) collapse to one
// Node, while two independently-built blocks never collide.
func blockKey[T any](b block.Block[T]) string {
	times := b.Times()
	if len(times) == 0 {
		return fmt.Sprintf("block:empty:%T", *new(T))
	}

	return fmt.Sprintf("block:%p:%d", &times[0], len(times))
}
