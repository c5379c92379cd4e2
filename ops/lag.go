package ops

import (
	"fmt"

	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
)

// Lag delays x by n knots: the knot emitted at the time of the (k+n)'th
// input knot carries the value of the k'th. Lag(x, 0) and lagging a
// constant node are both identities, returned without building a new
// node.
func Lag(x *graph.Node, n int) (*graph.Node, error) {
	if n < 0 {
		return nil, op.ErrNegativeWindow
	}
	if n == 0 {
		return x, nil
	}
	if _, isConst := x.Op.(op.ConstantOp); isConst {
		return x, nil
	}

	return graph.Obtain([]*graph.Node{x}, lagOp{n: n}), nil
}

type lagOp struct{ n int }

func (o lagOp) Key() string { return fmt.Sprintf("lag(%d)", o.n) }
func (o lagOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: false, StatelessOperator: false, TimeAgnostic: true}
}

type lagState struct {
	buf   []any
	head  int
	count int
}

func (o lagOp) NewState() any { return &lagState{buf: make([]any, o.n)} }

func (o lagOp) Apply(state any, _ block.Timestamp, xs []any) (any, bool) {
	st := state.(*lagState)
	x := xs[0]

	if st.count < o.n {
		st.buf[st.count] = x
		st.count++

		return nil, false
	}

	out := st.buf[st.head]
	st.buf[st.head] = x
	st.head = (st.head + 1) % o.n

	return out, true
}

// TimeLag delays x by a fixed duration: the knot originally at time t is
// re-emitted at time t+delta. Unlike Lag, the output time differs from
// the input time, so TimeLag is a Reshaper rather than an Operator — it
// must hold knots back across a batch boundary until their shifted time
// falls inside the batch being evaluated, becoming visible only once
// that shifted time falls in [tStart, tEnd) of the current batch, never
// early. TimeLag(x, 0) and lagging a constant node are identities.
func TimeLag(x *graph.Node, delta block.Duration) (*graph.Node, error) {
	if delta < 0 {
		return nil, op.ErrNegativeWindow
	}
	if delta == 0 {
		return x, nil
	}
	if _, isConst := x.Op.(op.ConstantOp); isConst {
		return x, nil
	}

	return graph.Obtain([]*graph.Node{x}, timeLagOp{delta: delta}), nil
}

type timeLagOp struct{ delta block.Duration }

func (o timeLagOp) Key() string { return fmt.Sprintf("time_lag(%d)", o.delta) }
func (o timeLagOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: false, StatelessOperator: false, TimeAgnostic: false}
}

type timeLagState struct {
	times  []block.Timestamp
	values []any
}

func (o timeLagOp) NewState() any { return &timeLagState{} }

func (o timeLagOp) Apply(state any, _, tEnd block.Timestamp, in block.Block[any]) block.Block[any] {
	st := state.(*timeLagState)

	outTimes := make([]block.Timestamp, 0, len(st.times)+in.Len())
	outValues := make([]any, 0, len(st.values)+in.Len())

	i := 0
	for i < len(st.times) && st.times[i] < tEnd {
		outTimes = append(outTimes, st.times[i])
		outValues = append(outValues, st.values[i])
		i++
	}
	st.times = st.times[i:]
	st.values = st.values[i:]

	for j := 0; j < in.Len(); j++ {
		k := in.At(j)
		shifted := k.Time.Add(o.delta)
		if shifted < tEnd {
			outTimes = append(outTimes, shifted)
			outValues = append(outValues, k.Value)
		} else {
			st.times = append(st.times, shifted)
			st.values = append(st.values, k.Value)
		}
	}

	return block.NewUnchecked(outTimes, outValues)
}
