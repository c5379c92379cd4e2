package ops

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
)

// Align co-drives xs under Union policy: it ticks at the time of any
// input, once every input has ticked at least once, forwarding the
// anchor (first parent)'s value. align(x, x) == x: both parents share
// one underlying block, so the kernel's fast path applies the identity
// operator element-wise over x's own times.
func Align(xs ...*graph.Node) (*graph.Node, error) {
	return alignWith(op.Union, xs)
}

// AlignOnce co-drives xs under Left policy, with xs[0] as the anchor:
// it ticks at the anchor's own times, once every other input has ticked
// at least once — but, unlike Align, it is never retriggered by a later
// tick on a non-anchor input alone.
func AlignOnce(xs ...*graph.Node) (*graph.Node, error) {
	return alignWith(op.Left, xs)
}

// Coalign co-drives xs under Intersect policy: it ticks only at times
// where every input has a knot in the same batch.
func Coalign(xs ...*graph.Node) (*graph.Node, error) {
	return alignWith(op.Intersect, xs)
}

func alignWith(policy op.AlignPolicy, xs []*graph.Node) (*graph.Node, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyMerge
	}
	if len(xs) == 1 {
		return xs[0], nil
	}

	return graph.Obtain(xs, alignIdentityOp{policy: policy}), nil
}

// alignIdentityOp forwards the anchor's own value once the alignment
// kernel's validity rule for its policy admits a tuple; it performs no
// computation of its own, existing purely to force a join.
type alignIdentityOp struct{ policy op.AlignPolicy }

func (o alignIdentityOp) Key() string { return "align:" + o.policy.String() }
func (o alignIdentityOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true, Align: o.policy}
}
func (alignIdentityOp) NewState() any { return nil }

func (alignIdentityOp) Apply(_ any, _ block.Timestamp, xs []any) (any, bool) {
	return xs[0], true
}
