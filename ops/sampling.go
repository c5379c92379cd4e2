package ops

import (
	"fmt"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
	"github.com/katalvlaran/chronon/scaffold"
)

// Throttle forwards x's knots at most once per interval: a knot is
// suppressed if less than interval has elapsed since the last forwarded
// knot. Returns op.ErrNegativeWindow for interval <= 0.
func Throttle(x *graph.Node, interval block.Duration) (*graph.Node, error) {
	if interval <= 0 {
		return nil, op.ErrNegativeWindow
	}

	return graph.Obtain([]*graph.Node{x}, throttleOp{interval: interval}), nil
}

type throttleOp struct{ interval block.Duration }

func (o throttleOp) Key() string { return fmt.Sprintf("throttle(%d)", o.interval) }
func (throttleOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: false, StatelessOperator: false, TimeAgnostic: false}
}

type throttleState struct {
	last  block.Timestamp
	fired bool
}

func (throttleOp) NewState() any { return &throttleState{} }

func (o throttleOp) Apply(state any, t block.Timestamp, xs []any) (any, bool) {
	st := state.(*throttleState)
	if st.fired && t.Sub(st.last) < o.interval {
		return nil, false
	}
	st.last = t
	st.fired = true

	return xs[0], true
}

// CountKnots emits the running count of knots x has produced so far,
// ticking once per input knot starting from the first.
func CountKnots(x *graph.Node) *graph.Node {
	counter := scaffold.NewInception[any, int, any](
		"count_knots",
		func(any) int { return 1 },
		func(acc int, _ any) int { return acc + 1 },
		func(acc int) any { return acc },
		nil,
		true,
	)

	return graph.Obtain([]*graph.Node{x}, counter)
}

// History emits, at every knot, a snapshot slice of the last n values
// seen (oldest first), growing until it reaches n and then sliding.
// Returns op.ErrNegativeWindow for n < 1.
func History(x *graph.Node, n int) (*graph.Node, error) {
	if n < 1 {
		return nil, op.ErrNegativeWindow
	}

	return graph.Obtain([]*graph.Node{x}, historyOp{n: n}), nil
}

type historyOp struct{ n int }

func (o historyOp) Key() string { return fmt.Sprintf("history(%d)", o.n) }
func (historyOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: false, TimeAgnostic: true}
}

type historyState struct {
	buf []any
}

func (historyOp) NewState() any { return &historyState{} }

func (o historyOp) Apply(state any, _ block.Timestamp, xs []any) (any, bool) {
	st := state.(*historyState)
	st.buf = append(st.buf, xs[0])
	if len(st.buf) > o.n {
		st.buf = st.buf[len(st.buf)-o.n:]
	}

	out := make([]any, len(st.buf))
	copy(out, st.buf)

	return out, true
}

// ActiveCount emits, at every time any input first or again ticks, the
// number of distinct inputs that have ticked at least once so far. It
// is a Combiner rather than an aligned Operator since it must observe a
// single input's tick without waiting for the others to validate too.
func ActiveCount(xs ...*graph.Node) (*graph.Node, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyMerge
	}

	return graph.Obtain(xs, activeCountOp{}), nil
}

type activeCountOp struct{}

func (activeCountOp) Key() string { return "active_count" }
func (activeCountOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: false, TimeAgnostic: true}
}

type activeCountState struct {
	active []bool
	count  int
}

func (activeCountOp) NewState() any { return &activeCountState{} }

func (activeCountOp) Combine(state any, _, _ block.Timestamp, inputs []block.Block[any]) block.Block[any] {
	st := state.(*activeCountState)
	if st.active == nil {
		st.active = make([]bool, len(inputs))
	}
	k := len(inputs)
	idx := make([]int, k)

	times := make([]block.Timestamp, 0)
	values := make([]any, 0)

	for {
		hasNext := false
		var minT block.Timestamp
		for i := 0; i < k; i++ {
			if idx[i] < inputs[i].Len() {
				if t := inputs[i].Times()[idx[i]]; !hasNext || t < minT {
					minT = t
					hasNext = true
				}
			}
		}
		if !hasNext {
			break
		}

		for i := 0; i < k; i++ {
			if idx[i] < inputs[i].Len() && inputs[i].Times()[idx[i]] == minT {
				if !st.active[i] {
					st.active[i] = true
					st.count++
				}
				idx[i]++
			}
		}

		times = append(times, minT)
		values = append(values, st.count)
	}

	return block.NewUnchecked(times, values)
}
