package ops

import (
	"github.com/katalvlaran/chronon/block"
	"github.com/katalvlaran/chronon/graph"
	"github.com/katalvlaran/chronon/op"
)

// Merge interleaves the knot streams of xs into one, in time order. A
// knot from any single input is forwarded on its own — merging never
// waits for the others to tick too, unlike an aligned Operator. Ties
// (two or more inputs ticking at the same time) are broken by input
// order: the earliest-listed input's knot wins and the rest are
// dropped, which is what makes merge(x, x, ..., x) == x: every copy of
// x ticks at the same times with the same values, so only the first
// copy's knot at each time ever survives.
func Merge(xs ...*graph.Node) (*graph.Node, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyMerge
	}
	if len(xs) == 1 {
		return xs[0], nil
	}

	return graph.Obtain(xs, mergeOp{}), nil
}

type mergeOp struct{}

func (mergeOp) Key() string { return "merge" }
func (mergeOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: true, TimeAgnostic: true}
}
func (mergeOp) NewState() any { return nil }

func (mergeOp) Combine(_ any, _, _ block.Timestamp, inputs []block.Block[any]) block.Block[any] {
	k := len(inputs)
	idx := make([]int, k)
	capHint := 0
	for _, in := range inputs {
		capHint += in.Len()
	}
	times := make([]block.Timestamp, 0, capHint)
	values := make([]any, 0, capHint)

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

		winner := -1
		for i := 0; i < k; i++ {
			if idx[i] < inputs[i].Len() && inputs[i].Times()[idx[i]] == minT {
				if winner == -1 {
					winner = i
				}
				idx[i]++
			}
		}

		times = append(times, minT)
		values = append(values, inputs[winner].Values()[idx[winner]-1])
	}

	return block.NewUnchecked(times, values)
}

// Prepend forwards x's knots until y ticks for the first time; from
// then on, every subsequent x knot is suppressed and only y's knots are
// forwarded. Useful for seeding a stream with a warm-up value until a
// "real" source comes online.
func Prepend(x, y *graph.Node) *graph.Node {
	return graph.Obtain([]*graph.Node{x, y}, prependOp{})
}

type prependOp struct{}

func (prependOp) Key() string { return "prepend" }
func (prependOp) Flags() op.Flags {
	return op.Flags{AlwaysTicks: true, StatelessOperator: false, TimeAgnostic: true}
}

type prependState struct{ switched bool }

func (prependOp) NewState() any { return &prependState{} }

func (prependOp) Combine(state any, _, _ block.Timestamp, inputs []block.Block[any]) block.Block[any] {
	st := state.(*prependState)
	x, y := inputs[0], inputs[1]

	times := make([]block.Timestamp, 0, x.Len()+y.Len())
	values := make([]any, 0, x.Len()+y.Len())

	i, j := 0, 0
	for i < x.Len() || j < y.Len() {
		var xt, yt block.Timestamp
		hasX, hasY := i < x.Len(), j < y.Len()
		if hasX {
			xt = x.Times()[i]
		}
		if hasY {
			yt = y.Times()[j]
		}

		takeY := hasY && (!hasX || yt <= xt)
		if takeY {
			times = append(times, yt)
			values = append(values, y.Values()[j])
			st.switched = true
			j++
			continue
		}

		if !st.switched {
			times = append(times, xt)
			values = append(values, x.Values()[i])
		}
		i++
	}

	return block.NewUnchecked(times, values)
}
