package ops

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
)

// Filter keeps only the knots of x for which pred reports true. key
// must be stable and unique for a given pred, mirroring
// op.NewExternalOperator's contract — Go function values are not
// comparable, so the caller supplies the structural identity.
func Filter(x *graph.Node, key string, pred func(v any) bool) *graph.Node {
	if pred == nil {
		panic("ops: Filter(pred=nil)")
	}

	return graph.Obtain([]*graph.Node{x}, filterOp{key: key, pred: pred})
}

type filterOp struct {
	key  string
	pred func(any) bool
}

func (o filterOp) Key() string { return "filter(" + o.key + ")" }
func (filterOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: false, StatelessOperator: true, TimeAgnostic: true}
}
func (filterOp) NewState() any { return nil }

func (o filterOp) Apply(_ any, _ block.Timestamp, xs []any) (any, bool) {
	if o.pred(xs[0]) {
		return xs[0], true
	}

	return nil, false
}

// SkipMissing drops every knot whose value is the nil interface — the
// engine's representation of the absent "bottom" value. The output
// value type narrows from T∪⊥ to T in the sense that no nil ever
// survives to a downstream consumer.
func SkipMissing(x *graph.Node) *graph.Node {
	return graph.Obtain([]*graph.Node{x}, skipMissingOp{})
}

type skipMissingOp struct{}

func (skipMissingOp) Key() string { return "skip_missing" }
func (skipMissingOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: false, StatelessOperator: true, TimeAgnostic: true}
}
func (skipMissingOp) NewState() any { return nil }

func (skipMissingOp) Apply(_ any, _ block.Timestamp, xs []any) (any, bool) {
	if xs[0] == nil {
		return nil, false
	}

	return xs[0], true
}

// FirstKnot emits only x's very first knot and suppresses everything
// after. first_knot(first_knot(x)) == first_knot(x): the inner call
// already reduces to a single knot, so the outer call's "emit once"
// degenerates to forwarding that same knot unchanged.
func FirstKnot(x *graph.Node) *graph.Node {
	return graph.Obtain([]*graph.Node{x}, firstKnotOp{})
}

type firstKnotOp struct{}

func (firstKnotOp) Key() string { return "first_knot" }
func (firstKnotOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: false, StatelessOperator: false, TimeAgnostic: true}
}
func (firstKnotOp) NewState() any { emitted := false; return &emitted }

func (firstKnotOp) Apply(state any, _ block.Timestamp, xs []any) (any, bool) {
	emitted := state.(*bool)
	if *emitted {
		return nil, false
	}
	*emitted = true

	return xs[0], true
}
