package scaffold

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/op"
)

// inceptionState is the per-node mutable state an InceptionOp threads
// across batches: the accumulator, whether it has been seeded yet, and
// how many knots have been folded in (some ShouldTick predicates care
// about knot count, e.g. "tick only after the second knot").
type inceptionState[Data any] struct {
	acc    Data
	seeded bool
	seen   int
}

// InceptionOp accumulates a single running value since the first
// observation. Seed initializes the accumulator from the very first
// input; every subsequent input is folded in via Combine, which must be
// pure and associative with however Seed is defined (Combine(Seed(x),
// y) must equal folding x then y in whatever order the reduction
// semantically requires).
type InceptionOp[In, Data, Out any] struct {
	key        string
	seed       func(In) Data
	combine    func(acc Data, x In) Data
	extract    func(acc Data) Out
	shouldTick func(acc Data, seen int) bool
	unfiltered bool
}

// NewInception builds an InceptionOp. When unfiltered is true,
// shouldTick is never consulted and every input produces an output
// knot; otherwise shouldTick gates emission (e.g. "need at least 2
// knots to report a variance").
func NewInception[In, Data, Out any](
	key string,
	seed func(In) Data,
	combine func(acc Data, x In) Data,
	extract func(acc Data) Out,
	shouldTick func(acc Data, seen int) bool,
	unfiltered bool,
) *InceptionOp[In, Data, Out] {
	if seed == nil || combine == nil || extract == nil {
		panic("scaffold: NewInception requires non-nil seed/combine/extract")
	}

	return &InceptionOp[In, Data, Out]{
		key: key, seed: seed, combine: combine, extract: extract,
		shouldTick: shouldTick, unfiltered: unfiltered,
	}
}

func (o *InceptionOp[In, Data, Out]) Key() string { return o.key }

func (o *InceptionOp[In, Data, Out]) Flags() op.Flags {
	return op.Flags{AlwaysTicks: o.unfiltered, StatelessOperator: false, TimeAgnostic: true}
}

func (o *InceptionOp[In, Data, Out]) NewState() any {
	return &inceptionState[Data]{}
}

func (o *InceptionOp[In, Data, Out]) Apply(state any, _ block.Timestamp, xs []any) (any, bool) {
	st := state.(*inceptionState[Data])
	x := xs[0].(In)

	if !st.seeded {
		st.acc = o.seed(x)
		st.seeded = true
	} else {
		st.acc = o.combine(st.acc, x)
	}
	st.seen++

	if !o.unfiltered && (o.shouldTick == nil || !o.shouldTick(st.acc, st.seen)) {
		return nil, false
	}

	return any(o.extract(st.acc)), true
}
